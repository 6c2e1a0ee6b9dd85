package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)
	DeleteForUser(ctx context.Context, userID, bookingID uuid.UUID) error
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus) error
	CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error)
}

type GormBookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("bookings: insert: %w", err)
	}
	return nil
}

// ListByUser returns the user's bookings, newest first.
func (r *GormBookingRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("bookings: list for user %s: %w", userID, err)
	}
	return bookings, nil
}

// ListAll returns every booking, newest first.
func (r *GormBookingRepository) ListAll(ctx context.Context) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("bookings: list all: %w", err)
	}
	return bookings, nil
}

// DeleteForUser hard-deletes exactly one booking owned by userID.
func (r *GormBookingRepository) DeleteForUser(ctx context.Context, userID, bookingID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", bookingID, userID).
		Delete(&models.Booking{})
	if result.Error != nil {
		return fmt.Errorf("bookings: delete %s: %w", bookingID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormBookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status models.BookingStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("bookings: update status %s: %w", bookingID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormBookingRepository) CountByStatus(ctx context.Context) (map[models.BookingStatus]int64, error) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("bookings: count by status: %w", err)
	}

	counts := make(map[models.BookingStatus]int64, len(rows))
	for _, r := range rows {
		counts[models.BookingStatus(r.Status)] = r.Count
	}
	return counts, nil
}
