// Package extraction defines the engine contract shared by the local OCR
// pipeline and the delegated vision-model pipeline.
package extraction

import (
	"context"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// Engine turns a profile screenshot into a structured extraction result.
// Implementations return domain.ErrTransientExtraction (possibly wrapped)
// for failures worth retrying; anything readable at all should come back as
// a result with gaps rather than an error.
type Engine interface {
	// Name identifies the engine in logs and metrics.
	Name() string

	// Extract reads the screenshot bytes and returns what it could parse.
	Extract(ctx context.Context, image []byte) (*domain.ExtractionResult, error)
}
