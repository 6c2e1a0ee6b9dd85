package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
)

// StatusCounter is the part of the booking store the scheduler reads.
type StatusCounter interface {
	CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error)
}

// StatsScheduler periodically refreshes the per-status booking gauges.
type StatsScheduler struct {
	bookings StatusCounter
	metrics  *Metrics
	cron     *cron.Cron
	timeout  time.Duration
}

func NewStatsScheduler(bookings StatusCounter, metrics *Metrics) *StatsScheduler {
	return &StatsScheduler{
		bookings: bookings,
		metrics:  metrics,
		cron:     cron.New(),
		timeout:  30 * time.Second,
	}
}

// Start refreshes once immediately, then on every tick of schedule
// (standard cron syntax or descriptors such as "@every 5m").
func (s *StatsScheduler) Start(schedule string) error {
	s.Refresh(context.Background())

	if _, err := s.cron.AddFunc(schedule, func() {
		s.Refresh(context.Background())
	}); err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("stats scheduler started", "schedule", schedule)
	return nil
}

// Stop halts the scheduler and waits for a running refresh to finish.
func (s *StatsScheduler) Stop() {
	<-s.cron.Stop().Done()
}

// Refresh reads counts by status and publishes them. Errors are logged; the
// gauges keep their previous values.
func (s *StatsScheduler) Refresh(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	counts, err := s.bookings.CountByStatus(ctx)
	if err != nil {
		slog.Error("failed to refresh booking stats", "error", err)
		return
	}
	s.metrics.SetBookingCounts(counts)
	slog.Debug("booking stats refreshed", "counts", counts)
}
