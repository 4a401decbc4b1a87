package services

import (
	"context"
	"fmt"
	"time"

	"github.com/HasanAboShally/dayma/internal/core/domain"
)

// SummaryEnqueuer hands a freshly pushed snapshot to the background worker.
type SummaryEnqueuer interface {
	Enqueue(snapshotID string)
}

// DeviceRegistrar records which device an account last pushed from.
type DeviceRegistrar interface {
	TouchDevice(ctx context.Context, userID, deviceID string) error
}

type SyncService struct {
	repo    domain.SnapshotRepository
	devices DeviceRegistrar
	worker  SummaryEnqueuer
}

func NewSyncService(repo domain.SnapshotRepository, devices DeviceRegistrar, worker SummaryEnqueuer) *SyncService {
	return &SyncService{
		repo:    repo,
		devices: devices,
		worker:  worker,
	}
}

type PushInput struct {
	UserID   string
	DeviceID string
	Seq      int
	Payload  []byte
}

// Push stores a device's document blob as the user's next snapshot. The
// sequence must be exactly one past the newest stored snapshot, so a device
// that missed a pull has to pull before it can push again.
func (s *SyncService) Push(ctx context.Context, input PushInput) (*domain.Snapshot, error) {
	latest, err := s.repo.Latest(ctx, input.UserID)
	if err != nil && err != domain.ErrSnapshotNotFound {
		return nil, fmt.Errorf("sync service: failed to read latest snapshot: %w", err)
	}

	expected := 1
	if latest != nil {
		expected = latest.Seq + 1
	}
	if input.Seq != expected {
		return nil, fmt.Errorf("%w: client seq %d vs expected %d", domain.ErrSnapshotConflict, input.Seq, expected)
	}

	snapshot, err := domain.NewSnapshot(input.UserID, input.DeviceID, input.Seq, input.Payload)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("sync service: failed to save snapshot: %w", err)
	}

	// The last-seen stamp is advisory; a failed stamp never fails the push.
	_ = s.devices.TouchDevice(ctx, input.UserID, input.DeviceID)

	s.worker.Enqueue(snapshot.ID)

	return snapshot, nil
}

// Pull returns the newest snapshot for the user.
func (s *SyncService) Pull(ctx context.Context, userID string) (*domain.Snapshot, error) {
	return s.repo.Latest(ctx, userID)
}

// GetDelta returns the snapshots pushed after the device's last sync.
func (s *SyncService) GetDelta(ctx context.Context, userID string, since time.Time) ([]*domain.Snapshot, error) {
	return s.repo.ListSince(ctx, userID, since)
}

type SyncStats struct {
	Seq            int       `json:"seq"`
	PushedAt       time.Time `json:"pushed_at"`
	CurrentStreak  int       `json:"current_streak"`
	LongestStreak  int       `json:"longest_streak"`
	TotalCompleted int       `json:"total_completed"`
}

// Stats derives the summary numbers from the user's newest snapshot. The
// numbers are recomputed from the payload rather than read from the stored
// columns, so they are correct even before the worker has caught up.
func (s *SyncService) Stats(ctx context.Context, userID string, today string) (*SyncStats, error) {
	latest, err := s.repo.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}

	state := latest.State()
	if state == nil {
		return nil, domain.ErrInvalidSnapshot
	}

	return &SyncStats{
		Seq:            latest.Seq,
		PushedAt:       latest.CreatedAt,
		CurrentStreak:  domain.CurrentStreak(state, today),
		LongestStreak:  domain.LongestStreak(state),
		TotalCompleted: domain.TotalCompleted(state),
	}, nil
}
