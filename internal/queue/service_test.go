package queue

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

// fakeCaptureRepo is an in-memory CaptureRepository for tests.
type fakeCaptureRepo struct {
	nextID   int64
	captures map[int64]*domain.Capture
}

func newFakeCaptureRepo() *fakeCaptureRepo {
	return &fakeCaptureRepo{nextID: 1, captures: make(map[int64]*domain.Capture)}
}

func (f *fakeCaptureRepo) Insert(_ context.Context, capture *domain.Capture) (int64, error) {
	c := *capture
	c.ID = f.nextID
	c.Status = domain.CaptureStatusPending
	if c.SubmittedAt.IsZero() {
		c.SubmittedAt = time.Now()
	}
	f.captures[c.ID] = &c
	f.nextID++
	return c.ID, nil
}

func (f *fakeCaptureRepo) GetByID(_ context.Context, id int64) (*domain.Capture, error) {
	c, ok := f.captures[id]
	if !ok {
		return nil, domain.ErrCaptureNotFound
	}
	return c, nil
}

func (f *fakeCaptureRepo) ClaimOldestPending(_ context.Context) (*domain.Capture, error) {
	var oldest *domain.Capture
	for _, c := range f.captures {
		if c.Status != domain.CaptureStatusPending {
			continue
		}
		if oldest == nil || c.SubmittedAt.Before(oldest.SubmittedAt) {
			oldest = c
		}
	}
	if oldest == nil {
		return nil, domain.ErrCaptureNotFound
	}
	return oldest, nil
}

func (f *fakeCaptureRepo) CompletePending(_ context.Context, id int64, result *domain.ExtractionResult) error {
	c, ok := f.captures[id]
	if !ok || c.Status != domain.CaptureStatusPending {
		return domain.ErrInvalidTransition
	}
	now := time.Now()
	c.Status = domain.CaptureStatusCompleted
	c.Result = result
	c.ProcessedAt = &now
	c.ErrorMessage = nil
	return nil
}

func (f *fakeCaptureRepo) FinalizeCompleted(_ context.Context, id int64, status domain.CaptureStatus) error {
	c, ok := f.captures[id]
	if !ok || c.Status != domain.CaptureStatusCompleted {
		return domain.ErrInvalidTransition
	}
	now := time.Now()
	c.Status = status
	c.ValidatedAt = &now
	return nil
}

func (f *fakeCaptureRepo) RecordError(_ context.Context, id int64, message string) error {
	if c, ok := f.captures[id]; ok && c.Status == domain.CaptureStatusPending {
		c.ErrorMessage = &message
	}
	return nil
}

func (f *fakeCaptureRepo) ListUnnotifiedCompleted(_ context.Context, limit int) ([]*domain.Capture, error) {
	var out []*domain.Capture
	for _, c := range f.captures {
		if c.Status == domain.CaptureStatusCompleted && c.NotifiedAt == nil {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.Before(out[j].SubmittedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCaptureRepo) MarkNotified(_ context.Context, id int64, at time.Time) error {
	if c, ok := f.captures[id]; ok {
		c.NotifiedAt = &at
	}
	return nil
}

func (f *fakeCaptureRepo) ClearNotified(_ context.Context, id int64) error {
	if c, ok := f.captures[id]; ok {
		c.NotifiedAt = nil
	}
	return nil
}

func (f *fakeCaptureRepo) CountByStatus(_ context.Context, status domain.CaptureStatus) (int, error) {
	count := 0
	for _, c := range f.captures {
		if c.Status == status {
			count++
		}
	}
	return count, nil
}

func (f *fakeCaptureRepo) ListBySubmitter(_ context.Context, submitterID string, limit int) ([]*domain.Capture, error) {
	var out []*domain.Capture
	for _, c := range f.captures {
		if c.SubmitterID == submitterID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func submitCapture(t *testing.T, svc Service, submitter string) int64 {
	t.Helper()
	id, _, err := svc.Enqueue(context.Background(), &domain.Capture{
		SubmitterID:   submitter,
		SubmitterName: "tester",
		ImageData:     []byte{0x89, 0x50},
		ImageFilename: "profile.png",
	})
	require.NoError(t, err)
	return id
}

func TestEnqueueReportsQueuePosition(t *testing.T) {
	svc := NewService(newFakeCaptureRepo())
	ctx := context.Background()

	_, pending, err := svc.Enqueue(ctx, &domain.Capture{SubmitterID: "u1", ImageData: []byte{1}})
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	_, pending, err = svc.Enqueue(ctx, &domain.Capture{SubmitterID: "u2", ImageData: []byte{2}})
	require.NoError(t, err)
	assert.Equal(t, 2, pending)
}

func TestClaimReturnsOldestPending(t *testing.T) {
	repo := newFakeCaptureRepo()
	svc := NewService(repo)
	ctx := context.Background()

	first := submitCapture(t, svc, "u1")
	// Guarantee distinct timestamps in the fake.
	repo.captures[first].SubmittedAt = time.Now().Add(-time.Minute)
	submitCapture(t, svc, "u2")

	claimed, err := svc.ClaimPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, claimed.ID)
}

func TestClaimEmptyQueue(t *testing.T) {
	svc := NewService(newFakeCaptureRepo())

	_, err := svc.ClaimPending(context.Background())
	assert.ErrorIs(t, err, domain.ErrCaptureNotFound)
}

func TestLifecycleHappyPath(t *testing.T) {
	svc := NewService(newFakeCaptureRepo())
	ctx := context.Background()

	id := submitCapture(t, svc, "u1")

	name := "Jack"
	require.NoError(t, svc.MarkCompleted(ctx, id, &domain.ExtractionResult{
		CharacterName: &name,
		Confidence:    0.9,
	}))

	capture, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.CaptureStatusCompleted, capture.Status)
	require.NotNil(t, capture.Result)
	assert.Equal(t, "Jack", *capture.Result.CharacterName)

	require.NoError(t, svc.MarkValidated(ctx, id))
	capture, err = svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.CaptureStatusValidated, capture.Status)
}

func TestFinalizeRequiresCompletedStatus(t *testing.T) {
	svc := NewService(newFakeCaptureRepo())
	ctx := context.Background()

	id := submitCapture(t, svc, "u1")

	// Still pending: validation must be refused.
	err := svc.MarkValidated(ctx, id)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	require.NoError(t, svc.MarkCompleted(ctx, id, &domain.ExtractionResult{Confidence: 0.5}))
	require.NoError(t, svc.MarkRejected(ctx, id))

	// Already rejected: a second finalize must be refused.
	err = svc.MarkValidated(ctx, id)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestFailureLeavesCapturePending(t *testing.T) {
	svc := NewService(newFakeCaptureRepo())
	ctx := context.Background()

	id := submitCapture(t, svc, "u1")
	require.NoError(t, svc.RecordFailure(ctx, id, assert.AnError))

	capture, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.CaptureStatusPending, capture.Status)
	require.NotNil(t, capture.ErrorMessage)
	assert.Equal(t, assert.AnError.Error(), *capture.ErrorMessage)

	// The capture is claimable again.
	claimed, err := svc.ClaimPending(ctx)
	require.NoError(t, err)
	assert.Equal(t, id, claimed.ID)
}

func TestNotificationStateRoundTrip(t *testing.T) {
	svc := NewService(newFakeCaptureRepo())
	ctx := context.Background()

	id := submitCapture(t, svc, "u1")
	require.NoError(t, svc.MarkCompleted(ctx, id, &domain.ExtractionResult{Confidence: 0.8}))

	unnotified, err := svc.UnnotifiedCompleted(ctx)
	require.NoError(t, err)
	require.Len(t, unnotified, 1)
	assert.Equal(t, id, unnotified[0].ID)

	require.NoError(t, svc.MarkNotified(ctx, id))
	unnotified, err = svc.UnnotifiedCompleted(ctx)
	require.NoError(t, err)
	assert.Empty(t, unnotified)

	// Timeout path: clearing makes the capture visible again.
	require.NoError(t, svc.ClearNotified(ctx, id))
	unnotified, err = svc.UnnotifiedCompleted(ctx)
	require.NoError(t, err)
	require.Len(t, unnotified, 1)
}
