package answers

import (
	"context"
	"errors"
	"fmt"

	"insightforge-backend/internal/documents"
	"insightforge-backend/internal/llm"
	"insightforge-backend/internal/shared/telemetry"
	"insightforge-backend/internal/webhook"
)

const groundingPrefix = "Answer strictly based on this document:\n\n"

// Service contains answer-generation business logic.
type Service struct {
	Docs     documents.TextStore
	LLM      llm.Client
	Notifier webhook.Notifier

	// MaxGroundingChars bounds the document text placed in the system
	// message. Zero or negative disables truncation.
	MaxGroundingChars int
}

// Generate resolves the token, asks the model the question grounded on the
// stored document text, notifies the webhook best-effort and returns the
// model's answer. The webhook outcome never affects the returned answer.
func (s *Service) Generate(ctx context.Context, question, token, email string) (string, error) {
	if question == "" || token == "" {
		return "", ErrMissingInput
	}

	text, err := s.Docs.Get(ctx, token)
	if err != nil {
		if errors.Is(err, documents.ErrUnknownToken) {
			return "", ErrUnknownToken
		}
		return "", err
	}

	grounding := text
	if s.MaxGroundingChars > 0 && len(grounding) > s.MaxGroundingChars {
		grounding = grounding[:s.MaxGroundingChars]
		telemetry.Info("answers.grounding.truncated", map[string]any{
			"file_token":  token,
			"text_chars":  len(text),
			"limit_chars": s.MaxGroundingChars,
		})
	}

	answer, err := s.LLM.Complete(ctx, groundingPrefix+grounding, question)
	if err != nil {
		telemetry.Error("answers.generate.failed", map[string]any{
			"err":        err.Error(),
			"file_token": token,
		})
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	s.notify(ctx, question, answer, email)

	return answer, nil
}

// notify is fire-and-forget: failures are logged and swallowed so they can
// never reach the caller.
func (s *Service) notify(ctx context.Context, question, answer, email string) {
	if s.Notifier == nil {
		return
	}
	err := s.Notifier.Notify(ctx, webhook.Notification{
		Question: question,
		Answer:   answer,
		Email:    email,
	})
	if err != nil {
		telemetry.Error("answers.webhook.failed", map[string]any{
			"err": err.Error(),
		})
		return
	}
	telemetry.Info("answers.webhook.sent", nil)
}
