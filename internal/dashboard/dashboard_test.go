package dashboard

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/talentpipe/talentpipe/internal/api"
	"github.com/talentpipe/talentpipe/pkg/models"
)

type fakeFetcher struct {
	calls atomic.Int64
	err   error
}

func (f *fakeFetcher) GetDashboardMetrics(_ context.Context, _ api.MetricsFilter) (*models.DashboardMetrics, error) {
	n := f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &models.DashboardMetrics{TotalCandidates: int(n)}, nil
}

func TestWatcherDeliversImmediatelyAndOnInterval(t *testing.T) {
	fetcher := &fakeFetcher{}
	w := NewWatcher(fetcher, api.MetricsFilter{Period: "30d"}, 20*time.Millisecond)
	w.Start(context.Background())
	defer w.Stop()

	first := waitUpdate(t, w)
	if first.Err != nil || first.Metrics.TotalCandidates != 1 {
		t.Fatalf("first update = %+v", first)
	}
	second := waitUpdate(t, w)
	if second.Metrics.TotalCandidates < 2 {
		t.Fatalf("second update = %+v", second)
	}
}

func TestWatcherDeliversErrors(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("backend down")}
	w := NewWatcher(fetcher, api.MetricsFilter{}, time.Minute)
	w.Start(context.Background())
	defer w.Stop()

	u := waitUpdate(t, w)
	if u.Err == nil {
		t.Fatal("expected fetch error to be delivered")
	}
}

func TestWatcherPauseSuspendsFetches(t *testing.T) {
	fetcher := &fakeFetcher{}
	w := NewWatcher(fetcher, api.MetricsFilter{}, 50*time.Millisecond)
	w.Start(context.Background())
	defer w.Stop()

	// Pause right after the immediate fetch, before the first tick.
	waitUpdate(t, w)
	w.Pause()
	before := fetcher.calls.Load()
	time.Sleep(150 * time.Millisecond)
	if got := fetcher.calls.Load(); got != before {
		t.Errorf("fetches while paused: %d -> %d", before, got)
	}

	w.Resume()
	waitUpdate(t, w)
}

func TestWatcherStopEndsDelivery(t *testing.T) {
	fetcher := &fakeFetcher{}
	w := NewWatcher(fetcher, api.MetricsFilter{}, 10*time.Millisecond)
	w.Start(context.Background())
	waitUpdate(t, w)
	w.Stop()

	// The channel must close and fetching must halt.
	for range w.Updates() {
	}
	after := fetcher.calls.Load()
	time.Sleep(50 * time.Millisecond)
	if got := fetcher.calls.Load(); got != after {
		t.Errorf("fetches after stop: %d -> %d", after, got)
	}
}

func TestWatcherStopTwiceIsSafe(t *testing.T) {
	// The watch screen stops from both its key handler and its teardown, so
	// a second Stop must return without blocking.
	fetcher := &fakeFetcher{}
	w := NewWatcher(fetcher, api.MetricsFilter{}, time.Minute)
	w.Start(context.Background())
	waitUpdate(t, w)
	w.Stop()
	w.Stop()
}

func TestWatcherStartTwiceIsNoop(t *testing.T) {
	fetcher := &fakeFetcher{}
	w := NewWatcher(fetcher, api.MetricsFilter{}, time.Minute)
	w.Start(context.Background())
	w.Start(context.Background())
	defer w.Stop()
	waitUpdate(t, w)
}

func waitUpdate(t *testing.T, w *Watcher) Update {
	t.Helper()
	select {
	case u, ok := <-w.Updates():
		if !ok {
			t.Fatal("updates channel closed early")
		}
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update")
	}
	return Update{}
}
