package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/HasanAboShally/dayma/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

var _ domain.SnapshotRepository = (*CachedSnapshotRepository)(nil)

// CachedSnapshotRepository keeps each user's latest snapshot in Redis. Pull
// is by far the hottest path; everything else goes straight through.
type CachedSnapshotRepository struct {
	next  domain.SnapshotRepository
	cache *redis.Client
}

func NewCachedSnapshotRepository(next domain.SnapshotRepository, cache *redis.Client) *CachedSnapshotRepository {
	return &CachedSnapshotRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedSnapshotRepository) cacheKey(userID string) string {
	return fmt.Sprintf("snapshot:latest:%s", userID)
}

func (r *CachedSnapshotRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		log.Printf("[CACHE] Failed to invalidate for user %s: %v", userID, err)
	}
}

func (r *CachedSnapshotRepository) Latest(ctx context.Context, userID string) (*domain.Snapshot, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var snapshot domain.Snapshot
		if err := json.Unmarshal([]byte(val), &snapshot); err == nil {
			return &snapshot, nil
		}

		log.Printf("[CACHE] Corrupted data for user %s, cleaning up key", userID)
		r.cache.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	snapshot, err := r.next.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(snapshot); err == nil {
		if setErr := r.cache.Set(ctx, key, data, 30*time.Minute).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return snapshot, nil
}

func (r *CachedSnapshotRepository) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if err := r.next.Save(ctx, snapshot); err != nil {
		return err
	}
	r.invalidate(ctx, snapshot.UserID)
	return nil
}

func (r *CachedSnapshotRepository) GetByID(ctx context.Context, id string) (*domain.Snapshot, error) {
	return r.next.GetByID(ctx, id)
}

func (r *CachedSnapshotRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]*domain.Snapshot, error) {
	return r.next.ListSince(ctx, userID, since)
}

func (r *CachedSnapshotRepository) UpdateSummary(ctx context.Context, id string, current, longest, total int) error {
	snapshot, err := r.next.GetByID(ctx, id)
	if err == nil && snapshot != nil {
		defer r.invalidate(ctx, snapshot.UserID)
	}

	return r.next.UpdateSummary(ctx, id, current, longest, total)
}
