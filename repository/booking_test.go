package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
)

func sampleBooking(userID uuid.UUID) *models.Booking {
	return &models.Booking{
		UserID:       userID,
		SalonID:      1,
		ServiceID:    2,
		SalonName:    "Luxe Hair Studio",
		ServiceName:  "Hair Coloring",
		Date:         "2026-10-20",
		Time:         "10:00 AM",
		CustomerName: "Ana",
		Phone:        "5551234567",
	}
}

func TestBookingCreateAssignsIDAndConfirmedStatus(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	ctx := context.Background()

	b := sampleBooking(uuid.New())
	require.NoError(t, repo.Create(ctx, b))

	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, models.StatusConfirmed, b.Status)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, b.ID, all[0].ID)
	assert.Equal(t, "2026-10-20", all[0].Date)
}

func TestBookingListByUserIsScoped(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	ctx := context.Background()

	alice, bob := uuid.New(), uuid.New()
	require.NoError(t, repo.Create(ctx, sampleBooking(alice)))
	require.NoError(t, repo.Create(ctx, sampleBooking(alice)))
	require.NoError(t, repo.Create(ctx, sampleBooking(bob)))

	got, err := repo.ListByUser(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, b := range got {
		assert.Equal(t, alice, b.UserID)
	}
}

func TestBookingDeleteRemovesOnlyThatRecord(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	ctx := context.Background()
	user := uuid.New()

	first, second := sampleBooking(user), sampleBooking(user)
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	require.NoError(t, repo.DeleteForUser(ctx, user, first.ID))

	left, err := repo.ListByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, second.ID, left[0].ID)

	assert.ErrorIs(t, repo.DeleteForUser(ctx, user, first.ID), ErrNotFound)
}

func TestBookingDeleteRejectsOtherUsersBooking(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	ctx := context.Background()

	b := sampleBooking(uuid.New())
	require.NoError(t, repo.Create(ctx, b))

	assert.ErrorIs(t, repo.DeleteForUser(ctx, uuid.New(), b.ID), ErrNotFound)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBookingUpdateStatusAndCounts(t *testing.T) {
	repo := NewBookingRepository(newTestDB(t))
	ctx := context.Background()
	user := uuid.New()

	a, b, c := sampleBooking(user), sampleBooking(user), sampleBooking(user)
	for _, bk := range []*models.Booking{a, b, c} {
		require.NoError(t, repo.Create(ctx, bk))
	}

	require.NoError(t, repo.UpdateStatus(ctx, a.ID, models.StatusCompleted))
	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), models.StatusCompleted), ErrNotFound)

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[models.StatusConfirmed])
	assert.Equal(t, int64(1), counts[models.StatusCompleted])
	assert.Zero(t, counts[models.StatusCancelled])
}
