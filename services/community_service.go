package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/catalog"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/repository"
	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/utils"
)

// ReviewDraft is a review as submitted from the salon page.
type ReviewDraft struct {
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

type ReviewService struct {
	catalog *catalog.Catalog
	reviews repository.ReviewRepository
	now     func() time.Time
}

func NewReviewService(c *catalog.Catalog, reviews repository.ReviewRepository) *ReviewService {
	return &ReviewService{catalog: c, reviews: reviews, now: time.Now}
}

// List returns user-submitted reviews for the salon, newest first.
func (s *ReviewService) List(ctx context.Context, salonID int) ([]models.Review, error) {
	if _, ok := s.catalog.Get(salonID); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSalon, salonID)
	}
	return s.reviews.List(ctx, salonID)
}

func (s *ReviewService) Add(ctx context.Context, salonID int, draft ReviewDraft) (*models.Review, error) {
	if _, ok := s.catalog.Get(salonID); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSalon, salonID)
	}

	draft.UserName = strings.TrimSpace(draft.UserName)
	draft.Comment = strings.TrimSpace(draft.Comment)

	verr := &ValidationError{Missing: utils.MissingFields("userName", draft.UserName, "comment", draft.Comment)}
	if draft.Rating < 1 || draft.Rating > 5 {
		verr.addf("rating must be between 1 and 5")
	}
	if !verr.empty() {
		return nil, verr
	}

	review := models.Review{
		ID:       uuid.NewString(),
		UserName: draft.UserName,
		Rating:   draft.Rating,
		Comment:  draft.Comment,
		Date:     utils.ReviewDate(s.now()),
	}
	if err := s.reviews.Add(ctx, salonID, review); err != nil {
		return nil, err
	}
	return &review, nil
}

type FavoriteService struct {
	catalog   *catalog.Catalog
	favorites repository.FavoriteRepository
}

func NewFavoriteService(c *catalog.Catalog, favorites repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{catalog: c, favorites: favorites}
}

func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]int, error) {
	return s.favorites.List(ctx, userID)
}

// Toggle flips the salon's membership and reports whether it is now a
// favorite.
func (s *FavoriteService) Toggle(ctx context.Context, userID uuid.UUID, salonID int) (bool, error) {
	if _, ok := s.catalog.Get(salonID); !ok {
		return false, fmt.Errorf("%w: %d", ErrUnknownSalon, salonID)
	}
	return s.favorites.Toggle(ctx, userID, salonID)
}
