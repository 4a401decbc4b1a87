package domain

import (
	"context"
	"time"
)

type SnapshotRepository interface {
	// Save persists a pushed snapshot.
	Save(ctx context.Context, snapshot *Snapshot) error

	// GetByID retrieves a snapshot by its unique identifier.
	GetByID(ctx context.Context, id string) (*Snapshot, error)

	// Latest returns the newest snapshot for a user, by sequence.
	Latest(ctx context.Context, userID string) (*Snapshot, error)

	// ListSince returns a user's snapshots pushed after a point in time, oldest first.
	ListSince(ctx context.Context, userID string, since time.Time) ([]*Snapshot, error)

	// UpdateSummary stores the derived streak/total numbers computed in the background.
	UpdateSummary(ctx context.Context, id string, current, longest, total int) error
}

type UserRepository interface {
	// Create persists a new account.
	Create(ctx context.Context, user *User) error

	// GetByEmail retrieves an account by its (lowercased) email.
	GetByEmail(ctx context.Context, email string) (*User, error)

	// GetByID retrieves an account by its unique identifier.
	GetByID(ctx context.Context, id string) (*User, error)

	// TouchDevice records the device an account last pushed from.
	TouchDevice(ctx context.Context, userID, deviceID string) error
}
