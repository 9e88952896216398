package worker

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
)

type fakeExtractionQueue struct {
	pending    []*domain.Capture
	completed  map[int64]*domain.ExtractionResult
	failures   map[int64]error
	claimErr   error
	claimCalls int
}

func newFakeExtractionQueue(captures ...*domain.Capture) *fakeExtractionQueue {
	return &fakeExtractionQueue{
		pending:   captures,
		completed: make(map[int64]*domain.ExtractionResult),
		failures:  make(map[int64]error),
	}
}

func (f *fakeExtractionQueue) Enqueue(ctx context.Context, c *domain.Capture) (int64, int, error) {
	return 0, 0, errors.New("not implemented")
}

func (f *fakeExtractionQueue) ClaimPending(ctx context.Context) (*domain.Capture, error) {
	f.claimCalls++
	if f.claimErr != nil {
		return nil, f.claimErr
	}
	if len(f.pending) == 0 {
		return nil, domain.ErrCaptureNotFound
	}
	c := f.pending[0]
	f.pending = f.pending[1:]
	return c, nil
}

func (f *fakeExtractionQueue) MarkCompleted(ctx context.Context, id int64, result *domain.ExtractionResult) error {
	f.completed[id] = result
	return nil
}

func (f *fakeExtractionQueue) MarkValidated(ctx context.Context, id int64) error { return nil }
func (f *fakeExtractionQueue) MarkRejected(ctx context.Context, id int64) error  { return nil }

func (f *fakeExtractionQueue) RecordFailure(ctx context.Context, id int64, cause error) error {
	f.failures[id] = cause
	return nil
}

func (f *fakeExtractionQueue) UnnotifiedCompleted(ctx context.Context) ([]*domain.Capture, error) {
	return nil, nil
}
func (f *fakeExtractionQueue) MarkNotified(ctx context.Context, id int64) error  { return nil }
func (f *fakeExtractionQueue) ClearNotified(ctx context.Context, id int64) error { return nil }
func (f *fakeExtractionQueue) Get(ctx context.Context, id int64) (*domain.Capture, error) {
	return nil, domain.ErrCaptureNotFound
}
func (f *fakeExtractionQueue) PendingCount(ctx context.Context) (int, error) { return len(f.pending), nil }
func (f *fakeExtractionQueue) RecentBySubmitter(ctx context.Context, submitterID string, limit int) ([]*domain.Capture, error) {
	return nil, nil
}

type fakeEngine struct {
	results map[string]*domain.ExtractionResult
	err     error
}

func (f *fakeEngine) Name() string { return "fake" }

func (f *fakeEngine) Extract(ctx context.Context, image []byte) (*domain.ExtractionResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.results[string(image)], nil
}

type recordingSink struct {
	archived []int64
}

func (s *recordingSink) Archive(ctx context.Context, c *domain.Capture, r *domain.ExtractionResult) error {
	s.archived = append(s.archived, c.ID)
	return nil
}

func TestProcessDrainsQueue(t *testing.T) {
	q := newFakeExtractionQueue(
		&domain.Capture{ID: 1, ImageData: []byte("a")},
		&domain.Capture{ID: 2, ImageData: []byte("b")},
	)
	engine := &fakeEngine{results: map[string]*domain.ExtractionResult{
		"a": {Confidence: 0.9},
		"b": {Confidence: 0.8},
	}}
	job := NewExtractionJob(q, engine, nil, 0.7)

	err := job.Process(context.Background())
	require.NoError(t, err)

	assert.Len(t, q.completed, 2)
	assert.Equal(t, 0.9, q.completed[1].Confidence)
	assert.Equal(t, 0.8, q.completed[2].Confidence)
	assert.Empty(t, q.failures)
}

func TestProcessEmptyQueueIsNoop(t *testing.T) {
	q := newFakeExtractionQueue()
	job := NewExtractionJob(q, &fakeEngine{}, nil, 0.7)

	err := job.Process(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, q.claimCalls)
}

func TestProcessRecordsFailureAndStops(t *testing.T) {
	q := newFakeExtractionQueue(
		&domain.Capture{ID: 1, ImageData: []byte("a")},
		&domain.Capture{ID: 2, ImageData: []byte("b")},
	)
	cause := domain.ErrTransientExtraction
	job := NewExtractionJob(q, &fakeEngine{err: cause}, nil, 0.7)

	err := job.Process(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)

	// first capture failed, second was never claimed
	assert.ErrorIs(t, q.failures[1], cause)
	assert.Len(t, q.pending, 1)
	assert.Empty(t, q.completed)
}

func TestProcessArchivesLowConfidenceButStillCompletes(t *testing.T) {
	q := newFakeExtractionQueue(&domain.Capture{ID: 7, ImageData: []byte("a")})
	engine := &fakeEngine{results: map[string]*domain.ExtractionResult{
		"a": {Confidence: 0.3},
	}}
	sink := &recordingSink{}
	job := NewExtractionJob(q, engine, sink, 0.7)

	err := job.Process(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []int64{7}, sink.archived)
	require.Contains(t, q.completed, int64(7))
	assert.Equal(t, 0.3, q.completed[7].Confidence)
}

func TestProcessStopsOnCancelledContext(t *testing.T) {
	q := newFakeExtractionQueue(&domain.Capture{ID: 1, ImageData: []byte("a")})
	job := NewExtractionJob(q, &fakeEngine{}, nil, 0.7)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := job.Process(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, q.claimCalls)
}
