package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
)

// AccountRepository covers profiles, roles and the salons admins register.
type AccountRepository interface {
	CreateProfile(ctx context.Context, profile *models.Profile) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	TouchLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error

	// FindRole returns nil, nil when the user does not hold role.
	FindRole(ctx context.Context, userID uuid.UUID, role string) (*models.UserRole, error)

	GetManagedSalon(ctx context.Context, salonID uuid.UUID) (*models.ManagedSalon, error)
	// SetupAdmin creates salon, links it to the user's profile and grants
	// the admin role, all or nothing.
	SetupAdmin(ctx context.Context, userID uuid.UUID, salon *models.ManagedSalon) error
}

type GormAccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *GormAccountRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	profile.Email = normalizeEmail(profile.Email)

	var existing models.Profile
	err := r.db.WithContext(ctx).Where("email = ?", profile.Email).First(&existing).Error
	if err == nil {
		return ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("profiles: lookup email: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		return fmt.Errorf("profiles: insert: %w", err)
	}
	return nil
}

func (r *GormAccountRepository) GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("profiles: get %s: %w", userID, err)
	}
	return &profile, nil
}

func (r *GormAccountRepository) GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).First(&profile, "email = ?", normalizeEmail(email)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("profiles: get by email: %w", err)
	}
	return &profile, nil
}

func (r *GormAccountRepository) TouchLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", userID).
		Update("last_login", at).Error; err != nil {
		return fmt.Errorf("profiles: update last login: %w", err)
	}
	return nil
}

func (r *GormAccountRepository) FindRole(ctx context.Context, userID uuid.UUID, role string) (*models.UserRole, error) {
	var rows []models.UserRole
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role).
		Limit(1).
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("user_roles: find %s for %s: %w", role, userID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *GormAccountRepository) GetManagedSalon(ctx context.Context, salonID uuid.UUID) (*models.ManagedSalon, error) {
	var salon models.ManagedSalon
	if err := r.db.WithContext(ctx).First(&salon, "id = ?", salonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("salons: get %s: %w", salonID, err)
	}
	return &salon, nil
}

func (r *GormAccountRepository) SetupAdmin(ctx context.Context, userID uuid.UUID, salon *models.ManagedSalon) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		salon.CreatedByUserID = userID
		if err := tx.Create(salon).Error; err != nil {
			return fmt.Errorf("salons: insert: %w", err)
		}

		result := tx.Model(&models.Profile{}).Where("id = ?", userID).Update("salon_id", salon.ID)
		if result.Error != nil {
			return fmt.Errorf("profiles: link salon: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}

		role := models.UserRole{UserID: userID, Role: models.RoleAdmin}
		if err := tx.Create(&role).Error; err != nil {
			return fmt.Errorf("user_roles: grant admin: %w", err)
		}
		return nil
	})
}
