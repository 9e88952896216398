package session

import (
	"context"
	"errors"
	"time"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// ErrPromptTimeout is returned by a Prompter when the submitter lets the
// dialog expire.
var ErrPromptTimeout = errors.New("validation prompt timed out")

// Decision is the submitter's verdict on an extraction preview.
type Decision int

const (
	DecisionConfirm Decision = iota
	DecisionReject
)

// Outcome tells the submitter how their session ended.
type Outcome int

const (
	OutcomeStored Outcome = iota
	OutcomeDuplicate
	OutcomeRejected
	OutcomeNoSubjects
)

// Prompter drives the interactive dialogs of a validation session. The
// Discord layer implements it with embeds, buttons and select menus; tests
// use a scripted fake.
type Prompter interface {
	// ConfirmExtraction shows the extraction preview and waits for a
	// confirm or reject, or ErrPromptTimeout.
	ConfirmExtraction(ctx context.Context, capture *domain.Capture, timeout time.Duration) (Decision, error)

	// SelectSubject asks which tracked player the result belongs to.
	SelectSubject(ctx context.Context, capture *domain.Capture, subjects []*domain.Subject, timeout time.Duration) (int64, error)

	// RequestBuildLabel asks for an optional label; empty means derive one.
	RequestBuildLabel(ctx context.Context, capture *domain.Capture, timeout time.Duration) (string, error)

	// NotifyOutcome reports the final state of the session.
	NotifyOutcome(ctx context.Context, capture *domain.Capture, outcome Outcome) error
}
