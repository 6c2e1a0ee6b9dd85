package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Prithvi-Rao-879/salon-iq-ai-glow/models"
)

type ReviewRepository interface {
	List(ctx context.Context, salonID int) ([]models.Review, error)
	Add(ctx context.Context, salonID int, review models.Review) error
}

// RedisReviewRepository keeps each salon's reviews in a list under
// reviews_<salonId>, newest first.
type RedisReviewRepository struct {
	client redis.Cmdable
}

func NewReviewRepository(client redis.Cmdable) *RedisReviewRepository {
	return &RedisReviewRepository{client: client}
}

func reviewsKey(salonID int) string {
	return fmt.Sprintf("reviews_%d", salonID)
}

func (r *RedisReviewRepository) List(ctx context.Context, salonID int) ([]models.Review, error) {
	raw, err := r.client.LRange(ctx, reviewsKey(salonID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("reviews: list salon %d: %w", salonID, err)
	}

	reviews := make([]models.Review, 0, len(raw))
	for _, item := range raw {
		var review models.Review
		if err := json.Unmarshal([]byte(item), &review); err != nil {
			return nil, fmt.Errorf("reviews: decode salon %d: %w", salonID, err)
		}
		reviews = append(reviews, review)
	}
	return reviews, nil
}

func (r *RedisReviewRepository) Add(ctx context.Context, salonID int, review models.Review) error {
	payload, err := json.Marshal(review)
	if err != nil {
		return fmt.Errorf("reviews: encode: %w", err)
	}
	if err := r.client.LPush(ctx, reviewsKey(salonID), payload).Err(); err != nil {
		return fmt.Errorf("reviews: add salon %d: %w", salonID, err)
	}
	return nil
}
