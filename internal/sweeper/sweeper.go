package sweeper

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Store is the slice of the donation store the sweeper drives.
type Store interface {
	SweepExpired(ctx context.Context, now time.Time) (int, error)
}

type Config struct {
	Interval     time.Duration
	StartupDelay time.Duration
}

// Sweeper moves overdue live donations to the expired collection on a fixed
// interval. One run shortly after startup catches donations that came due
// while the service was down.
type Sweeper struct {
	store          Store
	config         Config
	logger         *zap.Logger
	wg             sync.WaitGroup
	shutdownSignal chan struct{}
	stopOnce       sync.Once
}

func New(store Store, config Config, logger *zap.Logger) *Sweeper {
	if config.Interval <= 0 {
		config.Interval = time.Hour
	}
	return &Sweeper{
		store:          store,
		config:         config,
		logger:         logger,
		shutdownSignal: make(chan struct{}),
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	s.logger.Info("expiry sweeper starting",
		zap.Duration("interval", s.config.Interval),
		zap.Duration("startup_delay", s.config.StartupDelay))
	s.wg.Add(1)
	defer s.wg.Done()

	startup := time.NewTimer(s.config.StartupDelay)
	defer startup.Stop()
	select {
	case <-startup.C:
		s.sweep(ctx)
	case <-s.shutdownSignal:
		return
	case <-ctx.Done():
		s.logger.Info("expiry sweeper stopping")
		return
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.shutdownSignal:
			s.logger.Info("expiry sweeper stopping")
			return
		case <-ctx.Done():
			// Returning is enough; waiting on the group here would block
			// on this goroutine's own deferred Done.
			s.logger.Info("expiry sweeper stopping")
			return
		}
	}
}

func (s *Sweeper) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.shutdownSignal)
		s.wg.Wait()
		s.logger.Info("expiry sweeper stopped")
	})
}

func (s *Sweeper) sweep(ctx context.Context) {
	moved, err := s.store.SweepExpired(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("expiry sweep failed", zap.Error(err))
		return
	}
	if moved > 0 {
		s.logger.Info("expiry sweep moved donations", zap.Int("count", moved))
	}
}
