package repository

import (
	"context"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// SnapshotRepository persists validated stat history. Snapshots are
// append-only; there is no update or delete.
type SnapshotRepository interface {
	// Insert stores a snapshot and its equipment rows, returning the new id.
	Insert(ctx context.Context, snapshot *domain.StatSnapshot) (int64, error)

	// Latest returns the subject's most recent snapshot, or nil when the
	// subject has none.
	Latest(ctx context.Context, subjectID int64) (*domain.StatSnapshot, error)

	// LatestForBuild returns the subject's most recent snapshot of the named
	// character with the given build label, or nil when there is none.
	LatestForBuild(ctx context.Context, subjectID int64, characterName, buildLabel string) (*domain.StatSnapshot, error)

	// History returns the subject's snapshots oldest first, capped at limit.
	History(ctx context.Context, subjectID int64, limit int) ([]*domain.StatSnapshot, error)

	// LatestByCharacter returns each subject's most recent snapshot of the
	// named character, strongest first. Equipment rows are not loaded.
	LatestByCharacter(ctx context.Context, characterName string) ([]*domain.StatSnapshot, error)
}
