package bootstrap

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"insightforge-backend/internal/answers"
	"insightforge-backend/internal/documents"
	"insightforge-backend/internal/extract"
	"insightforge-backend/internal/llm"
	openai "insightforge-backend/internal/llm/openai"
	"insightforge-backend/internal/shared/config"
	"insightforge-backend/internal/shared/server"
	"insightforge-backend/internal/shared/storage/db"
	"insightforge-backend/internal/webhook"
)

// App holds shared dependencies.
type App struct {
	Config           config.Config
	Router           *gin.Engine
	DB               *sql.DB
	TextStore        documents.TextStore
	LLM              llm.Client
	Notifier         webhook.Notifier
	DocumentsService *documents.Service
	AnswersService   *answers.Service
	DocumentsHandler *documents.Handler
	AnswersHandler   *answers.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var store documents.TextStore
	if sqlDB != nil {
		store = &documents.PGStore{DB: sqlDB}
	} else {
		store = documents.NewMemoryStore()
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	notifier, err := buildNotifier(cfg)
	if err != nil {
		return nil, err
	}

	docSvc := &documents.Service{
		Store:   store,
		Extract: documents.ExtractorFunc(extract.Text),
	}
	answerSvc := &answers.Service{
		Docs:              store,
		LLM:               llmClient,
		Notifier:          notifier,
		MaxGroundingChars: cfg.MaxGroundingChars,
	}

	app := &App{
		Config:           cfg,
		DB:               sqlDB,
		TextStore:        store,
		LLM:              llmClient,
		Notifier:         notifier,
		DocumentsService: docSvc,
		AnswersService:   answerSvc,
		DocumentsHandler: documents.NewHandler(docSvc),
		AnswersHandler:   answers.NewHandler(answerSvc),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:           cfg,
		DocumentsHandler: app.DocumentsHandler,
		AnswersHandler:   app.AnswersHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		log.Printf("bootstrap: DATABASE_URL empty; using in-memory document store")
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory document store: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.LLMAPIKey) == "" {
		log.Printf("bootstrap: LLM_API_KEY empty; using placeholder LLM client")
		return llm.PlaceholderClient{}, nil
	}
	return openai.NewClient(
		cfg.LLMAPIKey,
		cfg.LLMBaseURL,
		cfg.LLMModel,
		time.Duration(cfg.LLMTimeoutSeconds)*time.Second,
	)
}

func buildNotifier(cfg config.Config) (webhook.Notifier, error) {
	if strings.TrimSpace(cfg.WebhookURL) == "" {
		log.Printf("bootstrap: WEBHOOK_URL empty; webhook notifications disabled")
		return webhook.Nop{}, nil
	}
	return webhook.New(cfg.WebhookURL, time.Duration(cfg.WebhookTimeoutSec)*time.Second)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
