package repository

import (
	"context"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// SubjectRepository persists the players a user tracks.
type SubjectRepository interface {
	// Create stores a subject and returns its id. Names are unique per owner.
	Create(ctx context.Context, ownerID, name string) (int64, error)

	// GetByID returns the subject or domain.ErrSubjectNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Subject, error)

	// ListByOwner returns the owner's subjects ordered by name.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Subject, error)
}
