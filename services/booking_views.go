package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/catalog"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/repository"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/utils"
)

const recentBookingsLimit = 10

// BookingList is the user's bookings split for display.
type BookingList struct {
	Upcoming      []models.Booking `json:"upcoming"`
	History       []models.Booking `json:"history"`
	LoyaltyPoints int              `json:"loyaltyPoints"`
}

// DashboardStats are the admin dashboard counters.
type DashboardStats struct {
	Total     int              `json:"total"`
	Upcoming  int              `json:"upcoming"`
	Completed int              `json:"completed"`
	Today     int              `json:"today"`
	Revenue   float64          `json:"revenue"`
	Recent    []models.Booking `json:"recentBookings"`
}

// PartitionBookings splits bookings into upcoming (Confirmed) and history
// (everything else), keeping their relative order.
func PartitionBookings(bookings []models.Booking) (upcoming, history []models.Booking) {
	upcoming = []models.Booking{}
	history = []models.Booking{}
	for _, b := range bookings {
		if b.Status.Upcoming() {
			upcoming = append(upcoming, b)
		} else {
			history = append(history, b)
		}
	}
	return upcoming, history
}

func countStatus(bookings []models.Booking, status models.BookingStatus) int {
	n := 0
	for _, b := range bookings {
		if b.Status == status {
			n++
		}
	}
	return n
}

// ComputeStats derives dashboard counters from bookings ordered newest
// first. A booking counts as today when its calendar date equals now's date
// in loc.
func ComputeStats(bookings []models.Booking, now time.Time, loc *time.Location, averagePrice float64) DashboardStats {
	stats := DashboardStats{
		Total:     len(bookings),
		Upcoming:  countStatus(bookings, models.StatusConfirmed),
		Completed: countStatus(bookings, models.StatusCompleted),
	}
	for _, b := range bookings {
		if utils.IsToday(b.Date, now, loc) {
			stats.Today++
		}
	}
	stats.Revenue = float64(stats.Completed) * averagePrice

	n := len(bookings)
	if n > recentBookingsLimit {
		n = recentBookingsLimit
	}
	stats.Recent = append([]models.Booking{}, bookings[:n]...)
	return stats
}

// BookingViews serves the read and management side of bookings.
type BookingViews struct {
	catalog        *catalog.Catalog
	bookings       repository.BookingRepository
	loc            *time.Location
	averagePrice   float64
	pointsPerVisit int
	now            func() time.Time
}

type BookingViewsConfig struct {
	Location            *time.Location
	AverageServicePrice float64
	PointsPerVisit      int
}

func NewBookingViews(c *catalog.Catalog, bookings repository.BookingRepository, cfg BookingViewsConfig) *BookingViews {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &BookingViews{
		catalog:        c,
		bookings:       bookings,
		loc:            cfg.Location,
		averagePrice:   cfg.AverageServicePrice,
		pointsPerVisit: cfg.PointsPerVisit,
		now:            time.Now,
	}
}

func (v *BookingViews) resolveNames(bookings []models.Booking) {
	for i := range bookings {
		b := &bookings[i]
		b.SalonName, b.ServiceName = v.catalog.ResolveNames(b.SalonID, b.ServiceID, b.SalonName, b.ServiceName)
	}
}

// ListForUser returns the caller's bookings, newest first, partitioned.
func (v *BookingViews) ListForUser(ctx context.Context, userID uuid.UUID) (*BookingList, error) {
	bookings, err := v.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	v.resolveNames(bookings)

	upcoming, history := PartitionBookings(bookings)
	return &BookingList{
		Upcoming:      upcoming,
		History:       history,
		LoyaltyPoints: countStatus(bookings, models.StatusCompleted) * v.pointsPerVisit,
	}, nil
}

// Cancel removes the caller's booking. repository.ErrNotFound means no
// booking with that id belongs to the caller.
func (v *BookingViews) Cancel(ctx context.Context, userID, bookingID uuid.UUID) error {
	return v.bookings.DeleteForUser(ctx, userID, bookingID)
}

// ListAll returns every booking, newest first, with current display names.
func (v *BookingViews) ListAll(ctx context.Context) ([]models.Booking, error) {
	bookings, err := v.bookings.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	v.resolveNames(bookings)
	return bookings, nil
}

// ChangeStatus writes status and returns the freshly re-read collection.
func (v *BookingViews) ChangeStatus(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus) ([]models.Booking, error) {
	if !status.Valid() {
		verr := &ValidationError{}
		verr.addf("unknown status %q", status)
		return nil, verr
	}
	if err := v.bookings.UpdateStatus(ctx, bookingID, status); err != nil {
		return nil, fmt.Errorf("change status: %w", err)
	}
	return v.ListAll(ctx)
}

func (v *BookingViews) Dashboard(ctx context.Context) (*DashboardStats, error) {
	bookings, err := v.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeStats(bookings, v.now(), v.loc, v.averagePrice)
	return &stats, nil
}
