// Package poller watches the queue for completed captures and opens a
// validation session for each one exactly once.
package poller

import (
	"context"
	"sync"
	"time"

	"github.com/Lestat2Lioncourt/discord-bot/internal/domain"
	"github.com/Lestat2Lioncourt/discord-bot/internal/logger"
	"github.com/Lestat2Lioncourt/discord-bot/internal/queue"
	"github.com/Lestat2Lioncourt/discord-bot/internal/session"
)

// Poller periodically scans for completed captures awaiting validation.
type Poller struct {
	queue    queue.Service
	sessions session.Service
	interval time.Duration
	quit     chan struct{}
	wg       sync.WaitGroup
}

// New creates a poller that scans every interval.
func New(q queue.Service, sessions session.Service, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		queue:    q,
		sessions: sessions,
		interval: interval,
		quit:     make(chan struct{}),
	}
}

// Start begins polling. The first scan runs immediately so completed
// captures left over from a previous run are offered without waiting a
// full interval.
func (p *Poller) Start(ctx context.Context) {
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		log := logger.FromContext(ctx)
		log.Info(LogMsgPollerStarted, "interval", p.interval)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.scan(ctx)
		for {
			select {
			case <-ticker.C:
				p.scan(ctx)
			case <-p.quit:
				log.Info(LogMsgPollerStopped)
				return
			}
		}
	}()
}

// Stop ends polling and waits for the scan loop to exit. Sessions already
// launched finish on their own.
func (p *Poller) Stop() {
	close(p.quit)
	p.wg.Wait()
}

func (p *Poller) scan(ctx context.Context) {
	log := logger.FromContext(ctx)

	captures, err := p.queue.UnnotifiedCompleted(ctx)
	if err != nil {
		log.Error(ErrMsgListCompleted, "error", err)
		return
	}

	for _, capture := range captures {
		// Mark before launching so a scan racing a slow session never
		// prompts the same capture twice.
		if err := p.queue.MarkNotified(ctx, capture.ID); err != nil {
			log.Error(ErrMsgMarkNotified, "captureID", capture.ID, "error", err)
			continue
		}

		p.wg.Add(1)
		go func(c *domain.Capture) {
			defer p.wg.Done()
			if err := p.sessions.Run(ctx, c); err != nil {
				log.Error(ErrMsgSessionFailed, "captureID", c.ID, "error", err)
			}
		}(capture)

		log.Info(LogMsgSessionLaunched, "captureID", capture.ID, "submitterID", capture.SubmitterID)
	}
}
