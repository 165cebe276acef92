// Package dashboard drives the metrics screen: one-shot fetches and an
// auto-refresh watcher that polls the backend on an interval. The watcher
// discards out-of-order responses so a slow fetch never overwrites a newer
// snapshot.
package dashboard

import (
	"context"
	"sync"
	"time"

	"github.com/talentpipe/talentpipe/internal/api"
	"github.com/talentpipe/talentpipe/pkg/models"
)

// DefaultInterval is the auto-refresh period.
const DefaultInterval = 60 * time.Second

// Fetcher fetches one dashboard snapshot.
type Fetcher interface {
	GetDashboardMetrics(ctx context.Context, filter api.MetricsFilter) (*models.DashboardMetrics, error)
}

// Update is one watcher delivery: a fresh snapshot or a fetch error.
type Update struct {
	Metrics *models.DashboardMetrics
	Err     error
}

// Watcher polls the backend and delivers snapshots on its channel.
type Watcher struct {
	fetcher  Fetcher
	filter   api.MetricsFilter
	interval time.Duration

	mu     sync.Mutex
	gen    uint64
	paused bool
	cancel context.CancelFunc
	done   chan struct{}

	updates chan Update
}

// NewWatcher builds a stopped watcher. interval <= 0 uses DefaultInterval.
func NewWatcher(fetcher Fetcher, filter api.MetricsFilter, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Watcher{
		fetcher:  fetcher,
		filter:   filter,
		interval: interval,
		updates:  make(chan Update, 1),
	}
}

// Updates is the delivery channel. It closes when the watcher stops.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Start begins polling, fetching once immediately and then on the interval.
// Calling Start on a running watcher is a no-op.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.cancel != nil {
		w.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})
	w.mu.Unlock()

	go w.run(ctx)
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer close(w.updates)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.fetch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.mu.Lock()
			paused := w.paused
			w.mu.Unlock()
			if !paused {
				w.fetch(ctx)
			}
		}
	}
}

// fetch takes a generation ticket before the request and drops the response
// if a newer fetch started meanwhile.
func (w *Watcher) fetch(ctx context.Context) {
	w.mu.Lock()
	w.gen++
	ticket := w.gen
	w.mu.Unlock()

	metrics, err := w.fetcher.GetDashboardMetrics(ctx, w.filter)
	if ctx.Err() != nil {
		return
	}

	w.mu.Lock()
	stale := ticket != w.gen
	w.mu.Unlock()
	if stale {
		return
	}

	select {
	case w.updates <- Update{Metrics: metrics, Err: err}:
	case <-ctx.Done():
	}
}

// Pause suspends interval fetches without tearing down the ticker.
func (w *Watcher) Pause() {
	w.mu.Lock()
	w.paused = true
	w.mu.Unlock()
}

// Resume re-enables interval fetches.
func (w *Watcher) Resume() {
	w.mu.Lock()
	w.paused = false
	w.mu.Unlock()
}

// Stop cancels polling and waits for the poll goroutine to exit, so no
// timer or goroutine outlives the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	done := w.done
	w.cancel = nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
