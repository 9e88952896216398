// Package postgres implements the repository interfaces over pgx.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
	"github.com/Lestat2Lioncourt/discord-bot/internal/repository"
)

type captureRepository struct {
	db *pgxpool.Pool
}

// NewCaptureRepository creates a capture queue repository backed by Postgres
func NewCaptureRepository(db *pgxpool.Pool) repository.CaptureRepository {
	return &captureRepository{db: db}
}

func (r *captureRepository) Insert(ctx context.Context, capture *domain.Capture) (int64, error) {
	submittedAt := capture.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now()
	}

	var id int64
	err := r.db.QueryRow(ctx, SQLInsertCapture,
		capture.SubmitterID,
		capture.SubmitterName,
		capture.SubjectID,
		capture.BuildLabel,
		capture.ImageData,
		capture.ImageFilename,
		submittedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInsertCaptureFailed, err)
	}
	return id, nil
}

func (r *captureRepository) GetByID(ctx context.Context, id int64) (*domain.Capture, error) {
	capture, err := scanCapture(r.db.QueryRow(ctx, SQLSelectCapture, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCaptureNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetCaptureFailed, err)
	}
	return capture, nil
}

func (r *captureRepository) ClaimOldestPending(ctx context.Context) (*domain.Capture, error) {
	capture, err := scanCapture(r.db.QueryRow(ctx, SQLSelectOldestPending))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCaptureNotFound
		}
		return nil, fmt.Errorf(ErrMsgGetCaptureFailed, err)
	}
	return capture, nil
}

func (r *captureRepository) CompletePending(ctx context.Context, id int64, result *domain.ExtractionResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeResultFailed, err)
	}

	tag, err := r.db.Exec(ctx, SQLCompletePending, id, payload, time.Now())
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateCaptureFailed, err)
	}
	// Zero rows means the row vanished or was finalized by someone else;
	// the status guard in the WHERE clause is what makes completion safe
	// to run from concurrent workers.
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *captureRepository) FinalizeCompleted(ctx context.Context, id int64, status domain.CaptureStatus) error {
	if status != domain.CaptureStatusValidated && status != domain.CaptureStatusRejected {
		return domain.ErrInvalidTransition
	}

	tag, err := r.db.Exec(ctx, SQLFinalizeCompleted, id, string(status), time.Now())
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateCaptureFailed, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

func (r *captureRepository) RecordError(ctx context.Context, id int64, message string) error {
	_, err := r.db.Exec(ctx, SQLRecordError, id, message)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateCaptureFailed, err)
	}
	return nil
}

func (r *captureRepository) ListUnnotifiedCompleted(ctx context.Context, limit int) ([]*domain.Capture, error) {
	rows, err := r.db.Query(ctx, SQLSelectUnnotifiedCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCapturesFailed, err)
	}
	defer rows.Close()

	return collectCaptures(rows)
}

func (r *captureRepository) MarkNotified(ctx context.Context, id int64, at time.Time) error {
	_, err := r.db.Exec(ctx, SQLMarkNotified, id, at)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateCaptureFailed, err)
	}
	return nil
}

func (r *captureRepository) ClearNotified(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, SQLClearNotified, id)
	if err != nil {
		return fmt.Errorf(ErrMsgUpdateCaptureFailed, err)
	}
	return nil
}

func (r *captureRepository) CountByStatus(ctx context.Context, status domain.CaptureStatus) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, SQLCountByStatus, string(status)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgCountCapturesFailed, err)
	}
	return count, nil
}

func (r *captureRepository) ListBySubmitter(ctx context.Context, submitterID string, limit int) ([]*domain.Capture, error) {
	rows, err := r.db.Query(ctx, SQLSelectBySubmitter, submitterID, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListCapturesFailed, err)
	}
	defer rows.Close()

	return collectCaptures(rows)
}
