package services

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
)

// Metrics exposes counters and gauges for the booking flow. A nil *Metrics
// is a no-op.
type Metrics struct {
	submissions        *prometheus.CounterVec
	reservationLatency prometheus.Histogram
	bookingsByStatus   *prometheus.GaugeVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "saloniq",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Booking submissions by outcome",
		}, []string{"outcome"}),
		reservationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "saloniq",
			Subsystem: "booking",
			Name:      "reservation_latency_seconds",
			Help:      "Latency of calls to the reservation workflow",
			Buckets:   prometheus.DefBuckets,
		}),
		bookingsByStatus: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "saloniq",
			Subsystem: "booking",
			Name:      "bookings",
			Help:      "Stored bookings by status",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissions, m.reservationLatency, m.bookingsByStatus)
	return m
}

// Submission outcomes.
const (
	OutcomeConfirmed   = "confirmed"
	OutcomeSlotTaken   = "slot_taken"
	OutcomeInvalid     = "invalid"
	OutcomeUnavailable = "unavailable"
	OutcomeStoreFailed = "store_failed"
)

func (m *Metrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveReservationLatency(seconds float64) {
	if m == nil {
		return
	}
	m.reservationLatency.Observe(seconds)
}

// SetBookingCounts replaces the per-status gauges. Statuses absent from
// counts are reported as zero.
func (m *Metrics) SetBookingCounts(counts map[models.BookingStatus]int64) {
	if m == nil {
		return
	}
	for _, status := range []models.BookingStatus{models.StatusConfirmed, models.StatusCompleted, models.StatusCancelled} {
		m.bookingsByStatus.WithLabelValues(string(status)).Set(float64(counts[status]))
	}
}
