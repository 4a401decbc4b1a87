package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/HasanAboShally/dayma/internal/core/domain"
)

// InMemorySnapshotRepository backs tests and single-process deployments.
type InMemorySnapshotRepository struct {
	store map[string]*domain.Snapshot

	mu sync.RWMutex
}

func NewInMemorySnapshotRepository() *InMemorySnapshotRepository {
	return &InMemorySnapshotRepository{
		store: make(map[string]*domain.Snapshot),
	}
}

func (r *InMemorySnapshotRepository) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.store {
		if s.UserID == snapshot.UserID && s.Seq == snapshot.Seq {
			return domain.ErrSnapshotConflict
		}
	}

	clone := *snapshot
	r.store[snapshot.ID] = &clone
	return nil
}

func (r *InMemorySnapshotRepository) GetByID(ctx context.Context, id string) (*domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.store[id]
	if !ok {
		return nil, domain.ErrSnapshotNotFound
	}

	clone := *s
	return &clone, nil
}

func (r *InMemorySnapshotRepository) Latest(ctx context.Context, userID string) (*domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var latest *domain.Snapshot
	for _, s := range r.store {
		if s.UserID != userID {
			continue
		}
		if latest == nil || s.Seq > latest.Seq {
			latest = s
		}
	}

	if latest == nil {
		return nil, domain.ErrSnapshotNotFound
	}

	clone := *latest
	return &clone, nil
}

func (r *InMemorySnapshotRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]*domain.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var snapshots []*domain.Snapshot
	for _, s := range r.store {
		if s.UserID == userID && s.CreatedAt.After(since) {
			clone := *s
			snapshots = append(snapshots, &clone)
		}
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Seq < snapshots[j].Seq
	})

	return snapshots, nil
}

func (r *InMemorySnapshotRepository) UpdateSummary(ctx context.Context, id string, current, longest, total int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.store[id]
	if !ok {
		return domain.ErrSnapshotNotFound
	}

	s.CurrentStreak = current
	s.LongestStreak = longest
	s.TotalCompleted = total
	return nil
}

// InMemoryUserRepository mirrors the postgres user repository for tests.
type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}

	clone := *user
	r.store[user.ID] = &clone
	return nil
}

func (r *InMemoryUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *InMemoryUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.store[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	clone := *u
	return &clone, nil
}

func (r *InMemoryUserRepository) TouchDevice(ctx context.Context, userID, deviceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.store[userID]
	if !ok {
		return domain.ErrUserNotFound
	}

	now := time.Now().UTC()
	u.LastDeviceID = &deviceID
	u.LastSeenAt = &now
	return nil
}
