package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// fakeQueue records lifecycle calls.
type fakeQueue struct {
	validated       []int64
	rejected        []int64
	clearedNotified []int64
}

func (f *fakeQueue) Enqueue(context.Context, *domain.Capture) (int64, int, error) { return 0, 0, nil }
func (f *fakeQueue) ClaimPending(context.Context) (*domain.Capture, error) {
	return nil, domain.ErrCaptureNotFound
}
func (f *fakeQueue) MarkCompleted(context.Context, int64, *domain.ExtractionResult) error {
	return nil
}
func (f *fakeQueue) MarkValidated(_ context.Context, id int64) error {
	f.validated = append(f.validated, id)
	return nil
}
func (f *fakeQueue) MarkRejected(_ context.Context, id int64) error {
	f.rejected = append(f.rejected, id)
	return nil
}
func (f *fakeQueue) RecordFailure(context.Context, int64, error) error { return nil }
func (f *fakeQueue) UnnotifiedCompleted(context.Context) ([]*domain.Capture, error) {
	return nil, nil
}
func (f *fakeQueue) MarkNotified(context.Context, int64) error { return nil }
func (f *fakeQueue) ClearNotified(_ context.Context, id int64) error {
	f.clearedNotified = append(f.clearedNotified, id)
	return nil
}
func (f *fakeQueue) Get(context.Context, int64) (*domain.Capture, error) {
	return nil, domain.ErrCaptureNotFound
}
func (f *fakeQueue) PendingCount(context.Context) (int, error) { return 0, nil }
func (f *fakeQueue) RecentBySubmitter(context.Context, string, int) ([]*domain.Capture, error) {
	return nil, nil
}

// fakeSnapshots records appends.
type fakeSnapshots struct {
	appended  []int64
	appendErr error
}

func (f *fakeSnapshots) Append(_ context.Context, capture *domain.Capture, subjectID int64, _ string) (*domain.StatSnapshot, error) {
	if f.appendErr != nil {
		return nil, f.appendErr
	}
	f.appended = append(f.appended, subjectID)
	return &domain.StatSnapshot{ID: 1, SubjectID: subjectID, CaptureID: capture.ID}, nil
}
func (f *fakeSnapshots) History(context.Context, int64, int) ([]*domain.StatSnapshot, error) {
	return nil, nil
}
func (f *fakeSnapshots) Latest(context.Context, int64) (*domain.StatSnapshot, error) {
	return nil, nil
}
func (f *fakeSnapshots) Compare(context.Context, string) ([]*domain.StatSnapshot, error) {
	return nil, nil
}

// fakeSubjects serves a fixed list.
type fakeSubjects struct {
	subjects []*domain.Subject
}

func (f *fakeSubjects) Create(context.Context, string, string) (*domain.Subject, error) {
	return nil, nil
}
func (f *fakeSubjects) Get(context.Context, string, int64) (*domain.Subject, error) {
	return nil, domain.ErrSubjectNotFound
}
func (f *fakeSubjects) List(context.Context, string) ([]*domain.Subject, error) {
	if len(f.subjects) == 0 {
		return nil, domain.ErrNoSubjects
	}
	return f.subjects, nil
}

// scriptedPrompter answers each dialog from canned values.
type scriptedPrompter struct {
	decision    Decision
	decisionErr error
	subjectID   int64
	subjectErr  error
	buildLabel  string
	outcomes    []Outcome
}

func (p *scriptedPrompter) ConfirmExtraction(context.Context, *domain.Capture, time.Duration) (Decision, error) {
	return p.decision, p.decisionErr
}
func (p *scriptedPrompter) SelectSubject(context.Context, *domain.Capture, []*domain.Subject, time.Duration) (int64, error) {
	return p.subjectID, p.subjectErr
}
func (p *scriptedPrompter) RequestBuildLabel(context.Context, *domain.Capture, time.Duration) (string, error) {
	return p.buildLabel, nil
}
func (p *scriptedPrompter) NotifyOutcome(_ context.Context, _ *domain.Capture, outcome Outcome) error {
	p.outcomes = append(p.outcomes, outcome)
	return nil
}

func completedCapture(id int64, subjectID *int64) *domain.Capture {
	name := "Jack"
	return &domain.Capture{
		ID:          id,
		SubmitterID: "u1",
		SubjectID:   subjectID,
		Status:      domain.CaptureStatusCompleted,
		Result:      &domain.ExtractionResult{CharacterName: &name, Confidence: 0.8},
	}
}

func int64Ptr(v int64) *int64 { return &v }

func TestRunConfirmStoresAndValidates(t *testing.T) {
	q := &fakeQueue{}
	snaps := &fakeSnapshots{}
	prompter := &scriptedPrompter{decision: DecisionConfirm}
	svc := NewService(q, snaps, &fakeSubjects{}, prompter, time.Minute)

	err := svc.Run(context.Background(), completedCapture(5, int64Ptr(7)))
	require.NoError(t, err)

	assert.Equal(t, []int64{7}, snaps.appended)
	assert.Equal(t, []int64{5}, q.validated)
	assert.Empty(t, q.rejected)
	assert.Equal(t, []Outcome{OutcomeStored}, prompter.outcomes)
}

func TestRunRejectFinalizesWithoutSnapshot(t *testing.T) {
	q := &fakeQueue{}
	snaps := &fakeSnapshots{}
	prompter := &scriptedPrompter{decision: DecisionReject}
	svc := NewService(q, snaps, &fakeSubjects{}, prompter, time.Minute)

	err := svc.Run(context.Background(), completedCapture(5, int64Ptr(7)))
	require.NoError(t, err)

	assert.Empty(t, snaps.appended)
	assert.Equal(t, []int64{5}, q.rejected)
	assert.Equal(t, []Outcome{OutcomeRejected}, prompter.outcomes)
}

func TestRunTimeoutClearsNotificationOnly(t *testing.T) {
	q := &fakeQueue{}
	prompter := &scriptedPrompter{decisionErr: ErrPromptTimeout}
	svc := NewService(q, &fakeSnapshots{}, &fakeSubjects{}, prompter, time.Minute)

	err := svc.Run(context.Background(), completedCapture(5, int64Ptr(7)))
	require.NoError(t, err)

	assert.Equal(t, []int64{5}, q.clearedNotified)
	assert.Empty(t, q.validated)
	assert.Empty(t, q.rejected)
	assert.Empty(t, prompter.outcomes)
}

func TestRunLegacyCaptureCollectsSubject(t *testing.T) {
	q := &fakeQueue{}
	snaps := &fakeSnapshots{}
	subjects := &fakeSubjects{subjects: []*domain.Subject{{ID: 3, OwnerID: "u1", Name: "Main"}}}
	prompter := &scriptedPrompter{decision: DecisionConfirm, subjectID: 3, buildLabel: "serve bot"}
	svc := NewService(q, snaps, subjects, prompter, time.Minute)

	err := svc.Run(context.Background(), completedCapture(5, nil))
	require.NoError(t, err)

	assert.Equal(t, []int64{3}, snaps.appended)
	assert.Equal(t, []int64{5}, q.validated)
}

func TestRunLegacyCaptureNoSubjectsAutoRejects(t *testing.T) {
	q := &fakeQueue{}
	snaps := &fakeSnapshots{}
	prompter := &scriptedPrompter{decision: DecisionConfirm}
	svc := NewService(q, snaps, &fakeSubjects{}, prompter, time.Minute)

	err := svc.Run(context.Background(), completedCapture(5, nil))
	require.NoError(t, err)

	assert.Empty(t, snaps.appended)
	assert.Equal(t, []int64{5}, q.rejected)
	assert.Equal(t, []Outcome{OutcomeNoSubjects}, prompter.outcomes)
}

func TestRunDuplicateStillValidates(t *testing.T) {
	q := &fakeQueue{}
	snaps := &fakeSnapshots{appendErr: domain.ErrDuplicateSnapshot}
	prompter := &scriptedPrompter{decision: DecisionConfirm}
	svc := NewService(q, snaps, &fakeSubjects{}, prompter, time.Minute)

	err := svc.Run(context.Background(), completedCapture(5, int64Ptr(7)))
	require.NoError(t, err)

	assert.Equal(t, []int64{5}, q.validated)
	assert.Equal(t, []Outcome{OutcomeDuplicate}, prompter.outcomes)
}

func TestRunPromptFailureRequeuesCapture(t *testing.T) {
	q := &fakeQueue{}
	prompter := &scriptedPrompter{decisionErr: errors.New("cannot open DM channel")}
	svc := NewService(q, &fakeSnapshots{}, &fakeSubjects{}, prompter, time.Minute)

	err := svc.Run(context.Background(), completedCapture(5, int64Ptr(7)))
	require.Error(t, err)

	// The capture stays completed and must be offered again later.
	assert.Equal(t, []int64{5}, q.clearedNotified)
	assert.Empty(t, q.validated)
	assert.Empty(t, q.rejected)
}

func TestRunStorageFailureRequeuesCapture(t *testing.T) {
	q := &fakeQueue{}
	snaps := &fakeSnapshots{appendErr: errors.New("db down")}
	prompter := &scriptedPrompter{decision: DecisionConfirm}
	svc := NewService(q, snaps, &fakeSubjects{}, prompter, time.Minute)

	err := svc.Run(context.Background(), completedCapture(5, int64Ptr(7)))
	require.Error(t, err)

	assert.Equal(t, []int64{5}, q.clearedNotified)
	assert.Empty(t, q.validated)
}

func TestRunSubjectSelectionTimeout(t *testing.T) {
	q := &fakeQueue{}
	subjects := &fakeSubjects{subjects: []*domain.Subject{{ID: 3, OwnerID: "u1", Name: "Main"}}}
	prompter := &scriptedPrompter{decision: DecisionConfirm, subjectErr: ErrPromptTimeout}
	svc := NewService(q, &fakeSnapshots{}, subjects, prompter, time.Minute)

	err := svc.Run(context.Background(), completedCapture(5, nil))
	require.NoError(t, err)

	assert.Equal(t, []int64{5}, q.clearedNotified)
	assert.Empty(t, q.validated)
}
