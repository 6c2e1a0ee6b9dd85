package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type FavoriteRepository interface {
	List(ctx context.Context, userID uuid.UUID) ([]int, error)
	// Toggle flips membership of salonID and reports whether it is now a
	// favorite.
	Toggle(ctx context.Context, userID uuid.UUID, salonID int) (bool, error)
}

// RedisFavoriteRepository keeps each user's favorites in a set under
// favorites_<userId>.
type RedisFavoriteRepository struct {
	client redis.Cmdable
}

func NewFavoriteRepository(client redis.Cmdable) *RedisFavoriteRepository {
	return &RedisFavoriteRepository{client: client}
}

func favoritesKey(userID uuid.UUID) string {
	return "favorites_" + userID.String()
}

// List returns the favorited salon ids in ascending order.
func (r *RedisFavoriteRepository) List(ctx context.Context, userID uuid.UUID) ([]int, error) {
	members, err := r.client.SMembers(ctx, favoritesKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("favorites: list %s: %w", userID, err)
	}

	ids := make([]int, 0, len(members))
	for _, m := range members {
		id, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func (r *RedisFavoriteRepository) Toggle(ctx context.Context, userID uuid.UUID, salonID int) (bool, error) {
	key := favoritesKey(userID)
	member := strconv.Itoa(salonID)

	// SREM reports how many members it removed; zero means it was absent.
	removed, err := r.client.SRem(ctx, key, member).Result()
	if err != nil {
		return false, fmt.Errorf("favorites: toggle %s/%d: %w", userID, salonID, err)
	}
	if removed > 0 {
		return false, nil
	}
	if err := r.client.SAdd(ctx, key, member).Err(); err != nil {
		return false, fmt.Errorf("favorites: toggle %s/%d: %w", userID, salonID, err)
	}
	return true, nil
}
