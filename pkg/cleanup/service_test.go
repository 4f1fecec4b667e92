package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majordomo-io/majordomo/pkg/config"
)

type fakePurger struct {
	mu      sync.Mutex
	cutoffs []time.Time
	count   int
	err     error
}

func (f *fakePurger) record(cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.count, f.err
}

func (f *fakePurger) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

func (f *fakePurger) ArchiveIdle(_ context.Context, cutoff time.Time) (int, error) {
	return f.record(cutoff)
}

func (f *fakePurger) PurgeReadOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	return f.record(cutoff)
}

func (f *fakePurger) PurgeDeletedOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	return f.record(cutoff)
}

func (f *fakePurger) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	return f.record(cutoff)
}

func newTestService(convs, notifs, tasks, events *fakePurger) *Service {
	cfg := config.DefaultRetentionConfig()
	cfg.CleanupInterval = 10 * time.Millisecond
	return NewService(cfg, convs, notifs, tasks, events)
}

func TestRunAllAppliesRetentionWindows(t *testing.T) {
	convs, notifs, tasks, events := &fakePurger{}, &fakePurger{}, &fakePurger{}, &fakePurger{}
	s := newTestService(convs, notifs, tasks, events)

	before := time.Now()
	s.RunAll(context.Background())

	require.Len(t, convs.cutoffs, 1)
	assert.WithinDuration(t, before.AddDate(0, 0, -90), convs.cutoffs[0], time.Second)

	require.Len(t, notifs.cutoffs, 1)
	assert.WithinDuration(t, before.Add(-30*24*time.Hour), notifs.cutoffs[0], time.Second)

	require.Len(t, tasks.cutoffs, 1)
	require.Len(t, events.cutoffs, 1)
	assert.WithinDuration(t, before.Add(-time.Hour), events.cutoffs[0], time.Second)
}

func TestRunAllContinuesPastFailures(t *testing.T) {
	convs := &fakePurger{err: errors.New("db down")}
	notifs, tasks, events := &fakePurger{}, &fakePurger{}, &fakePurger{}
	s := newTestService(convs, notifs, tasks, events)

	s.RunAll(context.Background())

	// A failing step never blocks the remaining ones.
	assert.Equal(t, 1, notifs.calls())
	assert.Equal(t, 1, tasks.calls())
	assert.Equal(t, 1, events.calls())
}

func TestServiceLoopRuns(t *testing.T) {
	convs, notifs, tasks, events := &fakePurger{}, &fakePurger{}, &fakePurger{}, &fakePurger{}
	s := newTestService(convs, notifs, tasks, events)

	s.Start(context.Background())
	s.Start(context.Background()) // no-op while running

	require.Eventually(t, func() bool {
		return convs.calls() >= 2
	}, 2*time.Second, 5*time.Millisecond)

	s.Stop()
	s.Stop() // no-op when stopped

	// Restartable after Stop.
	s.Start(context.Background())
	s.Stop()
}
