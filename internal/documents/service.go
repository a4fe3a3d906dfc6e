package documents

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"insightforge-backend/internal/shared/telemetry"
)

// UUID collisions are effectively impossible; the retry loop exists so a
// collision surfaces as a fresh token rather than a silent overwrite.
const maxTokenAttempts = 3

// Extractor turns raw document bytes into plain text.
type Extractor interface {
	Text(ctx context.Context, data []byte) (string, error)
}

// ExtractorFunc adapts a function to the Extractor interface.
type ExtractorFunc func(ctx context.Context, data []byte) (string, error)

// Text calls f.
func (f ExtractorFunc) Text(ctx context.Context, data []byte) (string, error) {
	return f(ctx, data)
}

// Service contains ingestion business logic.
type Service struct {
	Store   TextStore
	Extract Extractor
}

// Ingest extracts text from the uploaded bytes, issues a fresh token and
// stores the token to text mapping. Nothing is stored when extraction fails.
func (s *Service) Ingest(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrMissingInput
	}

	text, err := s.Extract.Text(ctx, data)
	if err != nil {
		telemetry.Error("documents.extract.failed", map[string]any{
			"err":        err.Error(),
			"size_bytes": len(data),
		})
		return "", fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	var token string
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		token = uuid.NewString()
		err = s.Store.Put(ctx, token, text)
		if err == nil {
			telemetry.Info("documents.ingested", map[string]any{
				"file_token": token,
				"text_chars": len(text),
			})
			return token, nil
		}
		if !errors.Is(err, ErrTokenExists) {
			return "", err
		}
	}
	return "", err
}
