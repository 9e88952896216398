// Package session runs the interactive validation flow for one completed
// capture: preview, confirm or reject, then snapshot storage.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
	"github.com/Lestat2Lioncourt/discord-bot/internal/logger"
	"github.com/Lestat2Lioncourt/discord-bot/internal/metrics"
	"github.com/Lestat2Lioncourt/discord-bot/internal/queue"
	"github.com/Lestat2Lioncourt/discord-bot/internal/snapshot"
	"github.com/Lestat2Lioncourt/discord-bot/internal/subject"
)

// Service runs validation sessions.
type Service interface {
	// Run drives the whole session for one completed capture. A timeout is
	// not an error: the capture's notification mark is cleared so a later
	// poll offers it again.
	Run(ctx context.Context, capture *domain.Capture) error
}

type service struct {
	queue     queue.Service
	snapshots snapshot.Service
	subjects  subject.Service
	prompter  Prompter
	timeout   time.Duration
}

// NewService creates a session service
func NewService(q queue.Service, snapshots snapshot.Service, subjects subject.Service, prompter Prompter, timeout time.Duration) Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &service{
		queue:     q,
		snapshots: snapshots,
		subjects:  subjects,
		prompter:  prompter,
		timeout:   timeout,
	}
}

func (s *service) Run(ctx context.Context, capture *domain.Capture) error {
	ctx = logger.WithCaptureID(ctx, capture.ID)

	err := s.run(ctx, capture)
	if err != nil {
		// A failed session must not strand the capture: clearing the
		// notification mark lets the poller offer it again. Captures that
		// already reached validated or rejected are filtered out by the
		// unnotified-completed query, so clearing is safe on every path.
		if clearErr := s.queue.ClearNotified(ctx, capture.ID); clearErr != nil {
			logger.FromContext(ctx).Error(ErrMsgClearNotified, "error", clearErr)
		}
	}
	return err
}

func (s *service) run(ctx context.Context, capture *domain.Capture) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSessionStarted, "submitterID", capture.SubmitterID)

	decision, err := s.prompter.ConfirmExtraction(ctx, capture, s.timeout)
	if err != nil {
		return s.handlePromptError(ctx, capture, err)
	}
	if decision == DecisionReject {
		if err := s.queue.MarkRejected(ctx, capture.ID); err != nil {
			return err
		}
		log.Info(LogMsgSessionRejected)
		return s.prompter.NotifyOutcome(ctx, capture, OutcomeRejected)
	}

	subjectID, buildLabel, err := s.collectTarget(ctx, capture)
	if err != nil {
		if errors.Is(err, domain.ErrNoSubjects) {
			// Nothing to attach the result to: reject rather than strand
			// the capture in completed forever.
			if rejectErr := s.queue.MarkRejected(ctx, capture.ID); rejectErr != nil {
				return rejectErr
			}
			log.Warn(LogMsgAutoRejected)
			return s.prompter.NotifyOutcome(ctx, capture, OutcomeNoSubjects)
		}
		return s.handlePromptError(ctx, capture, err)
	}

	_, appendErr := s.snapshots.Append(ctx, capture, subjectID, buildLabel)
	if appendErr != nil && !errors.Is(appendErr, domain.ErrDuplicateSnapshot) {
		return appendErr
	}

	if err := s.queue.MarkValidated(ctx, capture.ID); err != nil {
		return err
	}
	log.Info(LogMsgSessionValidated, "subjectID", subjectID)

	outcome := OutcomeStored
	if errors.Is(appendErr, domain.ErrDuplicateSnapshot) {
		outcome = OutcomeDuplicate
	}
	return s.prompter.NotifyOutcome(ctx, capture, outcome)
}

// collectTarget determines the subject and build label, asking the submitter
// when the capture was submitted without them.
func (s *service) collectTarget(ctx context.Context, capture *domain.Capture) (int64, string, error) {
	if !capture.IsLegacy() {
		label := ""
		if capture.BuildLabel != nil {
			label = *capture.BuildLabel
		}
		return *capture.SubjectID, label, nil
	}

	subjects, err := s.subjects.List(ctx, capture.SubmitterID)
	if err != nil {
		return 0, "", err
	}

	subjectID, err := s.prompter.SelectSubject(ctx, capture, subjects, s.timeout)
	if err != nil {
		return 0, "", err
	}

	label, err := s.prompter.RequestBuildLabel(ctx, capture, s.timeout)
	if err != nil {
		return 0, "", err
	}
	return subjectID, label, nil
}

// handlePromptError folds timeouts back into the queue and propagates
// everything else.
func (s *service) handlePromptError(ctx context.Context, capture *domain.Capture, err error) error {
	if !errors.Is(err, ErrPromptTimeout) {
		return err
	}

	log := logger.FromContext(ctx)
	metrics.SessionsTimedOut.Inc()
	log.Info(LogMsgSessionTimedOut)

	// The capture stays completed; clearing the mark re-offers it later.
	return s.queue.ClearNotified(ctx, capture.ID)
}
