// Package queue owns the capture lifecycle: submission, claiming for
// extraction, completion, and final validation or rejection.
package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
	"github.com/Lestat2Lioncourt/discord-bot/internal/logger"
	"github.com/Lestat2Lioncourt/discord-bot/internal/metrics"
	"github.com/Lestat2Lioncourt/discord-bot/internal/repository"
)

// Service manages the screenshot work queue.
type Service interface {
	// Enqueue stores a new pending capture and returns its id together with
	// the number of captures now waiting.
	Enqueue(ctx context.Context, capture *domain.Capture) (int64, int, error)

	// ClaimPending returns the oldest pending capture, or
	// domain.ErrCaptureNotFound when the queue is empty.
	ClaimPending(ctx context.Context) (*domain.Capture, error)

	// MarkCompleted attaches the extraction result and moves the capture to
	// completed, where it waits for validation.
	MarkCompleted(ctx context.Context, id int64, result *domain.ExtractionResult) error

	// MarkValidated and MarkRejected finalize a completed capture.
	MarkValidated(ctx context.Context, id int64) error
	MarkRejected(ctx context.Context, id int64) error

	// RecordFailure stores the error on a pending capture without changing
	// its status; the next claim retries it.
	RecordFailure(ctx context.Context, id int64, cause error) error

	// UnnotifiedCompleted lists completed captures nobody has been prompted
	// about yet, oldest first.
	UnnotifiedCompleted(ctx context.Context) ([]*domain.Capture, error)

	// MarkNotified records that a validation prompt was sent; ClearNotified
	// undoes it when the prompt times out so the capture is offered again.
	MarkNotified(ctx context.Context, id int64) error
	ClearNotified(ctx context.Context, id int64) error

	// Get returns a capture by id.
	Get(ctx context.Context, id int64) (*domain.Capture, error)

	// PendingCount returns the current queue depth.
	PendingCount(ctx context.Context) (int, error)

	// RecentBySubmitter returns a submitter's latest captures, newest first.
	RecentBySubmitter(ctx context.Context, submitterID string, limit int) ([]*domain.Capture, error)
}

type service struct {
	repo      repository.CaptureRepository
	batchSize int
}

// NewService creates a queue service over the given repository
func NewService(repo repository.CaptureRepository) Service {
	return &service{repo: repo, batchSize: DefaultNotifyBatchSize}
}

func (s *service) Enqueue(ctx context.Context, capture *domain.Capture) (int64, int, error) {
	log := logger.FromContext(ctx)

	id, err := s.repo.Insert(ctx, capture)
	if err != nil {
		return 0, 0, fmt.Errorf(ErrMsgEnqueueFailed, err)
	}

	pending, err := s.repo.CountByStatus(ctx, domain.CaptureStatusPending)
	if err != nil {
		return 0, 0, fmt.Errorf(ErrMsgEnqueueFailed, err)
	}

	metrics.CapturesSubmitted.Inc()
	metrics.QueueDepth.Set(float64(pending))
	log.Info(LogMsgCaptureEnqueued, "captureID", id, "submitterID", capture.SubmitterID, "pending", pending)
	return id, pending, nil
}

func (s *service) ClaimPending(ctx context.Context) (*domain.Capture, error) {
	return s.repo.ClaimOldestPending(ctx)
}

func (s *service) MarkCompleted(ctx context.Context, id int64, result *domain.ExtractionResult) error {
	log := logger.FromContext(ctx)

	if err := s.repo.CompletePending(ctx, id, result); err != nil {
		return fmt.Errorf(ErrMsgCompleteFailed, id, err)
	}

	metrics.CapturesCompleted.Inc()
	metrics.ExtractionConfidence.Observe(result.Confidence)
	log.Info(LogMsgCaptureCompleted, "captureID", id, "confidence", result.Confidence)
	return nil
}

func (s *service) MarkValidated(ctx context.Context, id int64) error {
	return s.finalize(ctx, id, domain.CaptureStatusValidated)
}

func (s *service) MarkRejected(ctx context.Context, id int64) error {
	return s.finalize(ctx, id, domain.CaptureStatusRejected)
}

func (s *service) finalize(ctx context.Context, id int64, status domain.CaptureStatus) error {
	log := logger.FromContext(ctx)

	if err := s.repo.FinalizeCompleted(ctx, id, status); err != nil {
		return fmt.Errorf(ErrMsgFinalizeFailed, id, err)
	}

	switch status {
	case domain.CaptureStatusValidated:
		metrics.CapturesValidated.Inc()
	case domain.CaptureStatusRejected:
		metrics.CapturesRejected.Inc()
	}
	log.Info(LogMsgCaptureFinalized, "captureID", id, "status", string(status))
	return nil
}

func (s *service) RecordFailure(ctx context.Context, id int64, cause error) error {
	log := logger.FromContext(ctx)

	if err := s.repo.RecordError(ctx, id, cause.Error()); err != nil {
		return fmt.Errorf(ErrMsgRecordFailed, err)
	}

	metrics.ExtractionFailures.Inc()
	log.Warn(LogMsgCaptureRetained, "captureID", id, "error", cause.Error())
	return nil
}

func (s *service) UnnotifiedCompleted(ctx context.Context) ([]*domain.Capture, error) {
	return s.repo.ListUnnotifiedCompleted(ctx, s.batchSize)
}

func (s *service) MarkNotified(ctx context.Context, id int64) error {
	if err := s.repo.MarkNotified(ctx, id, time.Now()); err != nil {
		return fmt.Errorf(ErrMsgNotifyStateFailed, id, err)
	}
	return nil
}

func (s *service) ClearNotified(ctx context.Context, id int64) error {
	if err := s.repo.ClearNotified(ctx, id); err != nil {
		return fmt.Errorf(ErrMsgNotifyStateFailed, id, err)
	}
	return nil
}

func (s *service) Get(ctx context.Context, id int64) (*domain.Capture, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) PendingCount(ctx context.Context) (int, error) {
	return s.repo.CountByStatus(ctx, domain.CaptureStatusPending)
}

func (s *service) RecentBySubmitter(ctx context.Context, submitterID string, limit int) ([]*domain.Capture, error) {
	return s.repo.ListBySubmitter(ctx, submitterID, limit)
}
