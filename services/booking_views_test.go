package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/catalog"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/repository"
)

func booking(status models.BookingStatus, date string) models.Booking {
	return models.Booking{ID: uuid.New(), Status: status, Date: date, SalonID: 1, ServiceID: 1}
}

func TestPartitionBookingsCoversEveryBookingOnce(t *testing.T) {
	in := []models.Booking{
		booking(models.StatusConfirmed, "2026-10-20"),
		booking(models.StatusCompleted, "2026-10-01"),
		booking(models.StatusCancelled, "2026-10-02"),
		booking(models.StatusConfirmed, "2026-10-21"),
	}

	upcoming, history := PartitionBookings(in)
	assert.Len(t, upcoming, 2)
	assert.Len(t, history, 2)
	assert.Equal(t, in[0].ID, upcoming[0].ID)
	assert.Equal(t, in[3].ID, upcoming[1].ID)

	seen := map[uuid.UUID]int{}
	for _, b := range append(upcoming, history...) {
		seen[b.ID]++
	}
	for _, b := range in {
		assert.Equal(t, 1, seen[b.ID])
	}

	upcoming, history = PartitionBookings(nil)
	assert.NotNil(t, upcoming)
	assert.NotNil(t, history)
}

func TestComputeStats(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	// 20:00 UTC on the 15th is already the 16th in Kolkata.
	now := time.Date(2026, time.October, 15, 20, 0, 0, 0, time.UTC)

	var bookings []models.Booking
	bookings = append(bookings,
		booking(models.StatusConfirmed, "2026-10-16"),
		booking(models.StatusCompleted, "2026-10-16"),
		booking(models.StatusCompleted, "2026-10-15"),
		booking(models.StatusCancelled, "2026-10-10"),
		booking(models.StatusConfirmed, "not-a-date"),
	)
	for i := 0; i < 8; i++ {
		bookings = append(bookings, booking(models.StatusConfirmed, fmt.Sprintf("2026-11-%02d", i+1)))
	}

	stats := ComputeStats(bookings, now, kolkata, 85)
	assert.Equal(t, 13, stats.Total)
	assert.Equal(t, 10, stats.Upcoming)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 2, stats.Today)
	assert.Equal(t, 170.0, stats.Revenue)
	require.Len(t, stats.Recent, 10)
	assert.Equal(t, bookings[0].ID, stats.Recent[0].ID)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil, time.Now(), time.UTC, 85)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.Revenue)
	assert.NotNil(t, stats.Recent)
	assert.Empty(t, stats.Recent)
}

func newTestViews(repo *memBookings) *BookingViews {
	return NewBookingViews(catalog.Default(), repo, BookingViewsConfig{
		Location:            time.UTC,
		AverageServicePrice: 85,
		PointsPerVisit:      10,
	})
}

func TestListForUserPartitionsAndAwardsPoints(t *testing.T) {
	ctx := context.Background()
	repo := &memBookings{}
	user, other := uuid.New(), uuid.New()

	for _, b := range []models.Booking{
		{UserID: user, SalonID: 2, ServiceID: 5, SalonName: "Old Spa", ServiceName: "Old Facial", Status: models.StatusConfirmed},
		{UserID: user, SalonID: 1, ServiceID: 1, Status: models.StatusCompleted},
		{UserID: user, SalonID: 1, ServiceID: 3, Status: models.StatusCompleted},
		{UserID: user, SalonID: 77, ServiceID: 1, SalonName: "Closed Salon", ServiceName: "Trim", Status: models.StatusCancelled},
		{UserID: other, SalonID: 1, ServiceID: 1, Status: models.StatusCompleted},
	} {
		b := b
		require.NoError(t, repo.Create(ctx, &b))
	}

	list, err := newTestViews(repo).ListForUser(ctx, user)
	require.NoError(t, err)

	assert.Len(t, list.Upcoming, 1)
	assert.Len(t, list.History, 3)
	assert.Equal(t, 20, list.LoyaltyPoints)

	assert.Equal(t, "Elegance Beauty Spa", list.Upcoming[0].SalonName)
	assert.Equal(t, "Classic Facial", list.Upcoming[0].ServiceName)

	// Newest first: the cancelled booking was created last among history.
	assert.Equal(t, "Closed Salon", list.History[0].SalonName)
	assert.Equal(t, "Trim", list.History[0].ServiceName)
}

func TestCancelIsScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo := &memBookings{}
	owner := uuid.New()
	b := models.Booking{UserID: owner, SalonID: 1, ServiceID: 1, Status: models.StatusConfirmed}
	require.NoError(t, repo.Create(ctx, &b))

	views := newTestViews(repo)
	assert.ErrorIs(t, views.Cancel(ctx, uuid.New(), b.ID), repository.ErrNotFound)
	require.NoError(t, views.Cancel(ctx, owner, b.ID))
	assert.Empty(t, repo.rows)
	assert.ErrorIs(t, views.Cancel(ctx, owner, b.ID), repository.ErrNotFound)
}

func TestChangeStatusReturnsFreshList(t *testing.T) {
	ctx := context.Background()
	repo := &memBookings{}
	b := models.Booking{UserID: uuid.New(), SalonID: 1, ServiceID: 1, Status: models.StatusConfirmed}
	require.NoError(t, repo.Create(ctx, &b))

	views := newTestViews(repo)

	all, err := views.ChangeStatus(ctx, b.ID, models.StatusCompleted)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusCompleted, all[0].Status)

	_, err = views.ChangeStatus(ctx, b.ID, "Pending")
	assert.True(t, IsValidation(err))

	_, err = views.ChangeStatus(ctx, uuid.New(), models.StatusCancelled)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDashboardUsesConfiguredPrice(t *testing.T) {
	ctx := context.Background()
	repo := &memBookings{}
	for _, status := range []models.BookingStatus{models.StatusCompleted, models.StatusCompleted, models.StatusConfirmed} {
		b := models.Booking{UserID: uuid.New(), SalonID: 1, ServiceID: 1, Status: status, Date: "2026-10-16"}
		require.NoError(t, repo.Create(ctx, &b))
	}

	views := newTestViews(repo)
	views.now = func() time.Time { return testNow }

	stats, err := views.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Upcoming)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 3, stats.Today)
	assert.Equal(t, 170.0, stats.Revenue)
}
