package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shubhendumishra2009/arkedia-homes/internal/domain/tenancy"
)

// LeaseExpiryConfig holds configuration for the lease expiry sweeper
type LeaseExpiryConfig struct {
	// Enabled indicates if the sweeper is enabled
	Enabled bool
	// Interval is how often the sweep runs
	Interval time.Duration
	// SweepTimeout is the maximum time a single sweep can run
	SweepTimeout time.Duration
}

// DefaultLeaseExpiryConfig returns default sweeper configuration
func DefaultLeaseExpiryConfig() LeaseExpiryConfig {
	return LeaseExpiryConfig{
		Enabled:      true,
		Interval:     time.Hour,
		SweepTimeout: time.Minute,
	}
}

// LeaseExpirySweeper periodically marks active leases whose end date has
// passed as expired, and frees their rooms when no other active lease
// holds them.
type LeaseExpirySweeper struct {
	db     *gorm.DB
	config LeaseExpiryConfig
	logger *zap.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewLeaseExpirySweeper creates a lease expiry sweeper
func NewLeaseExpirySweeper(db *gorm.DB, config LeaseExpiryConfig, logger *zap.Logger) *LeaseExpirySweeper {
	return &LeaseExpirySweeper{
		db:     db,
		config: config,
		logger: logger,
	}
}

// Start begins the periodic sweep. It returns immediately; sweeps run on a
// background goroutine until Stop is called or the context is cancelled.
func (s *LeaseExpirySweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || !s.config.Enabled {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	s.running = true

	go s.run(ctx)

	s.logger.Info("lease expiry sweeper started",
		zap.Duration("interval", s.config.Interval))
}

// Stop stops the sweeper and waits for an in-flight sweep to finish
func (s *LeaseExpirySweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	cancel := s.cancel
	done := s.done
	s.mu.Unlock()

	cancel()
	<-done

	s.logger.Info("lease expiry sweeper stopped")
}

func (s *LeaseExpirySweeper) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	// Run once on startup so expired leases are not left active until
	// the first tick.
	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *LeaseExpirySweeper) sweep(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.config.SweepTimeout)
	defer cancel()

	expired, freed, err := s.SweepOnce(ctx)
	if err != nil {
		s.logger.Error("lease expiry sweep failed", zap.Error(err))
		return
	}
	if expired > 0 {
		s.logger.Info("lease expiry sweep completed",
			zap.Int64("leases_expired", expired),
			zap.Int64("rooms_freed", freed))
	}
}

// SweepOnce performs a single sweep and reports how many leases were
// expired and how many rooms were released back to available.
func (s *LeaseExpirySweeper) SweepOnce(ctx context.Context) (expired int64, freed int64, err error) {
	now := time.Now()

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&tenancy.Lease{}).
			Where("status = ? AND lease_end_date < ?", tenancy.LeaseStatusActive, now).
			Update("status", tenancy.LeaseStatusExpired)
		if res.Error != nil {
			return res.Error
		}
		expired = res.RowsAffected

		if expired == 0 {
			return nil
		}

		// Rooms still covered by another active lease, or held by a
		// pending or confirmed booking, stay as they are.
		res = tx.Exec(`UPDATE rooms SET status = 'available', updated_at = ?
			WHERE status = 'occupied'
			AND id NOT IN (SELECT room_id FROM tenant_leases WHERE status = 'active')
			AND id NOT IN (SELECT room_id FROM bookings WHERE status IN ('pending', 'confirmed'))`, now)
		if res.Error != nil {
			return res.Error
		}
		freed = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return expired, freed, nil
}
