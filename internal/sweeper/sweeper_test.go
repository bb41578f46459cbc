package sweeper

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	mu    sync.Mutex
	calls int
	err   error
	ch    chan struct{}
}

func (f *fakeStore) SweepExpired(ctx context.Context, now time.Time) (int, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	select {
	case f.ch <- struct{}{}:
	default:
	}
	if f.err != nil {
		return 0, f.err
	}
	return 1, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestSweeperRunsOnStartup(t *testing.T) {
	store := &fakeStore{ch: make(chan struct{}, 1)}
	s := New(store, Config{Interval: time.Hour, StartupDelay: 10 * time.Millisecond}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)
	defer s.Shutdown()

	select {
	case <-store.ch:
	case <-time.After(2 * time.Second):
		t.Fatal("startup sweep did not happen")
	}
	assert.Equal(t, 1, store.count())
}

func TestSweeperTicks(t *testing.T) {
	store := &fakeStore{ch: make(chan struct{}, 8)}
	s := New(store, Config{Interval: 20 * time.Millisecond, StartupDelay: 0}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)
	defer s.Shutdown()

	for i := 0; i < 3; i++ {
		select {
		case <-store.ch:
		case <-time.After(2 * time.Second):
			t.Fatalf("sweep %d did not happen", i)
		}
	}
	require.GreaterOrEqual(t, store.count(), 3)
}

func TestSweeperSurvivesStoreErrors(t *testing.T) {
	store := &fakeStore{ch: make(chan struct{}, 8), err: errors.New("db down")}
	s := New(store, Config{Interval: 20 * time.Millisecond, StartupDelay: 0}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)
	defer s.Shutdown()

	for i := 0; i < 2; i++ {
		select {
		case <-store.ch:
		case <-time.After(2 * time.Second):
			t.Fatal("sweeper stopped after a store error")
		}
	}
}

func TestSweeperStopsOnContextCancel(t *testing.T) {
	store := &fakeStore{ch: make(chan struct{}, 8)}
	s := New(store, Config{Interval: 10 * time.Millisecond, StartupDelay: 0}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-store.ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no sweep before cancellation")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}

	// A later Shutdown must not block on the already-finished loop.
	shutdownDone := make(chan struct{})
	go func() {
		s.Shutdown()
		close(shutdownDone)
	}()
	select {
	case <-shutdownDone:
	case <-time.After(2 * time.Second):
		t.Fatal("Shutdown blocked after Run already returned")
	}
}

func TestSweeperStopsOnCancelDuringStartupDelay(t *testing.T) {
	store := &fakeStore{ch: make(chan struct{}, 1)}
	s := New(store, Config{Interval: time.Hour, StartupDelay: time.Hour}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
	assert.Equal(t, 0, store.count())
}

func TestSweeperShutdownStopsLoop(t *testing.T) {
	store := &fakeStore{ch: make(chan struct{}, 8)}
	s := New(store, Config{Interval: 10 * time.Millisecond, StartupDelay: 0}, zap.NewNop())

	go s.Run(context.Background())

	select {
	case <-store.ch:
	case <-time.After(2 * time.Second):
		t.Fatal("no sweep before shutdown")
	}

	s.Shutdown()
	before := store.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, store.count())
}
