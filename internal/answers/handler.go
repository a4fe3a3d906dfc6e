package answers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"insightforge-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches answer routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/generate-answer", h.generateAnswer)
}

type generateRequest struct {
	Question  string `json:"question"`
	FileToken string `json:"fileToken"`
	Email     string `json:"email"`
}

func (h *Handler) generateAnswer(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	req.Question = strings.TrimSpace(req.Question)
	req.FileToken = strings.TrimSpace(req.FileToken)

	c.Set("fileToken", req.FileToken)

	result, err := h.Svc.Generate(c.Request.Context(), req.Question, req.FileToken, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "missing question or token", nil)
		case errors.Is(err, ErrUnknownToken):
			respond.Error(c, http.StatusBadRequest, "unknown_token", "invalid file token", nil)
		case errors.Is(err, ErrGenerationFailed):
			respond.Error(c, http.StatusInternalServerError, "generation_failed", "AI generation failed", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "AI generation failed", nil)
		}
		return
	}

	respond.OK(c, gin.H{"result": result})
}
