package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lestat2Lioncourt/discord-bot/internal/diagnostics"
	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
	"github.com/Lestat2Lioncourt/discord-bot/internal/extraction"
	"github.com/Lestat2Lioncourt/discord-bot/internal/logger"
	"github.com/Lestat2Lioncourt/discord-bot/internal/metrics"
	"github.com/Lestat2Lioncourt/discord-bot/internal/queue"
)

// ExtractionJob drains the pending queue, running the configured engine on
// each claimed capture.
type ExtractionJob struct {
	queue     queue.Service
	engine    extraction.Engine
	sink      diagnostics.Sink
	threshold float64
}

// NewExtractionJob creates a job that extracts stats from pending captures.
// Results below threshold are archived through sink before completing.
func NewExtractionJob(q queue.Service, engine extraction.Engine, sink diagnostics.Sink, threshold float64) *ExtractionJob {
	return &ExtractionJob{
		queue:     q,
		engine:    engine,
		sink:      sink,
		threshold: threshold,
	}
}

// Process claims and extracts pending captures until the queue is empty. An
// extraction error records the failure on the capture and ends the run; the
// capture stays pending and is retried on the next run.
func (j *ExtractionJob) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		capture, err := j.queue.ClaimPending(ctx)
		if errors.Is(err, domain.ErrCaptureNotFound) {
			log.Debug(LogMsgQueueDrained)
			return nil
		}
		if err != nil {
			return fmt.Errorf("claim pending capture: %w", err)
		}

		if err := j.extract(ctx, capture); err != nil {
			return err
		}
	}
}

func (j *ExtractionJob) extract(ctx context.Context, capture *domain.Capture) error {
	ctx = logger.WithCaptureID(ctx, capture.ID)
	log := logger.FromContext(ctx)

	log.Info(LogMsgExtractionStarted, "engine", j.engine.Name(), "filename", capture.ImageFilename)
	start := time.Now()

	result, err := j.engine.Extract(ctx, capture.ImageData)
	metrics.ExtractionDuration.WithLabelValues(j.engine.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExtractionFailures.Inc()
		if recordErr := j.queue.RecordFailure(ctx, capture.ID, err); recordErr != nil {
			log.Error(ErrMsgRecordFailure, "error", recordErr)
		}
		return fmt.Errorf("extract capture %d: %w", capture.ID, err)
	}

	if result.Confidence < j.threshold && j.sink != nil {
		if archiveErr := j.sink.Archive(ctx, capture, result); archiveErr != nil {
			log.Warn(ErrMsgArchiveFailed, "error", archiveErr)
		} else {
			log.Warn(LogMsgLowConfidence, "confidence", result.Confidence, "threshold", j.threshold)
		}
	}

	if err := j.queue.MarkCompleted(ctx, capture.ID, result); err != nil {
		return fmt.Errorf("complete capture %d: %w", capture.ID, err)
	}

	log.Info(LogMsgExtractionDone, "confidence", result.Confidence, "duration", time.Since(start))
	return nil
}
