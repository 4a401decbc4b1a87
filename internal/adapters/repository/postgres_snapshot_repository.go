package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/HasanAboShally/dayma/internal/core/domain"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresSnapshotRepository struct {
	db *sqlx.DB
}

func NewPostgresSnapshotRepository(db *sqlx.DB) *PostgresSnapshotRepository {
	return &PostgresSnapshotRepository{db: db}
}

func (r *PostgresSnapshotRepository) Save(ctx context.Context, s *domain.Snapshot) error {
	query := `
        INSERT INTO snapshots (
            id, user_id, device_id, seq, payload, schema_version,
            current_streak, longest_streak, total_completed, created_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6,
            $7, $8, $9, $10
        )`

	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.UserID, s.DeviceID, s.Seq, []byte(s.Payload), s.SchemaVersion,
		s.CurrentStreak, s.LongestStreak, s.TotalCompleted, s.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			// Unique (user_id, seq): two devices raced for the same slot.
			return domain.ErrSnapshotConflict
		}
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}

	return nil
}

func (r *PostgresSnapshotRepository) GetByID(ctx context.Context, id string) (*domain.Snapshot, error) {
	query := `SELECT * FROM snapshots WHERE id = $1`

	var s domain.Snapshot
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}

	return &s, nil
}

func (r *PostgresSnapshotRepository) Latest(ctx context.Context, userID string) (*domain.Snapshot, error) {
	query := `
        SELECT * FROM snapshots
        WHERE user_id = $1
        ORDER BY seq DESC
        LIMIT 1`

	var s domain.Snapshot
	if err := r.db.GetContext(ctx, &s, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("database scan error: %w", err)
	}

	return &s, nil
}

func (r *PostgresSnapshotRepository) ListSince(ctx context.Context, userID string, since time.Time) ([]*domain.Snapshot, error) {
	query := `
        SELECT * FROM snapshots
        WHERE user_id = $1 AND created_at > $2
        ORDER BY seq ASC`

	var snapshots []*domain.Snapshot
	if err := r.db.SelectContext(ctx, &snapshots, query, userID, since); err != nil {
		return nil, fmt.Errorf("sync query error: %w", err)
	}

	return snapshots, nil
}

func (r *PostgresSnapshotRepository) UpdateSummary(ctx context.Context, id string, current, longest, total int) error {
	query := `
        UPDATE snapshots
        SET current_streak = $1, longest_streak = $2, total_completed = $3
        WHERE id = $4`

	res, err := r.db.ExecContext(ctx, query, current, longest, total, id)
	if err != nil {
		return fmt.Errorf("summary update failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrSnapshotNotFound
	}

	return nil
}
