// Package repository defines the persistence interfaces implemented by the
// postgres layer and faked in tests.
package repository

import (
	"context"
	"time"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// CaptureRepository persists the screenshot work queue.
type CaptureRepository interface {
	// Insert stores a new pending capture and returns its id.
	Insert(ctx context.Context, capture *domain.Capture) (int64, error)

	// GetByID returns the capture or domain.ErrCaptureNotFound.
	GetByID(ctx context.Context, id int64) (*domain.Capture, error)

	// ClaimOldestPending returns the oldest pending capture, or
	// domain.ErrCaptureNotFound when the queue is empty. Claiming does not
	// change status; the row stays pending until completion succeeds.
	ClaimOldestPending(ctx context.Context) (*domain.Capture, error)

	// CompletePending stores the extraction result and moves the row from
	// pending to completed. Returns domain.ErrInvalidTransition when the row
	// is no longer pending.
	CompletePending(ctx context.Context, id int64, result *domain.ExtractionResult) error

	// FinalizeCompleted moves a completed row to validated or rejected.
	// Returns domain.ErrInvalidTransition when the row is not completed.
	FinalizeCompleted(ctx context.Context, id int64, status domain.CaptureStatus) error

	// RecordError stores the failure message on a pending row without
	// changing its status, so a later scan retries it.
	RecordError(ctx context.Context, id int64, message string) error

	// ListUnnotifiedCompleted returns completed rows with no notified_at,
	// oldest first, capped at limit.
	ListUnnotifiedCompleted(ctx context.Context, limit int) ([]*domain.Capture, error)

	// MarkNotified stamps notified_at; ClearNotified resets it so a
	// timed-out session is offered again.
	MarkNotified(ctx context.Context, id int64, at time.Time) error
	ClearNotified(ctx context.Context, id int64) error

	// CountByStatus returns the number of rows in the given status.
	CountByStatus(ctx context.Context, status domain.CaptureStatus) (int, error)

	// ListBySubmitter returns the submitter's recent captures, newest first.
	ListBySubmitter(ctx context.Context, submitterID string, limit int) ([]*domain.Capture, error)
}
