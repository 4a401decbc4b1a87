package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrSnapshotConflict = errors.New("snapshot sequence conflict")
	ErrInvalidSnapshot  = errors.New("invalid snapshot payload")
	ErrSnapshotDeviceID = errors.New("device id is required")
	ErrUnauthorized     = errors.New("unauthorized")
)

// Snapshot is one uploaded copy of a device's full AppState document. The
// sync scaffold is last-writer-wins over whole documents: a device pushes its
// blob with the next sequence number and pulls whatever is newest.
type Snapshot struct {
	ID       string `json:"id" db:"id"`
	UserID   string `json:"user_id" db:"user_id"`
	DeviceID string `json:"device_id" db:"device_id"`

	// Seq orders a user's snapshots; pushes with a stale sequence are
	// rejected so a lagging device cannot silently clobber newer data.
	Seq     int             `json:"seq" db:"seq"`
	Payload json.RawMessage `json:"payload" db:"payload"`

	// SchemaVersion mirrors the payload's document version at push time.
	SchemaVersion int `json:"schema_version" db:"schema_version"`

	// Summary fields are filled in by the background worker after the push.
	CurrentStreak  int `json:"current_streak" db:"current_streak"`
	LongestStreak  int `json:"longest_streak" db:"longest_streak"`
	TotalCompleted int `json:"total_completed" db:"total_completed"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NewSnapshot validates the payload through the engine codec and stamps
// identity. The payload must be a plausible document; anything else is
// rejected up front instead of poisoning later pulls.
func NewSnapshot(userID, deviceID string, seq int, payload []byte) (*Snapshot, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrUnauthorized
	}
	if strings.TrimSpace(deviceID) == "" {
		return nil, ErrSnapshotDeviceID
	}
	if seq < 1 {
		return nil, ErrSnapshotConflict
	}

	state := Import(string(payload))
	if state == nil {
		return nil, ErrInvalidSnapshot
	}

	return &Snapshot{
		ID:            uuid.NewString(),
		UserID:        userID,
		DeviceID:      deviceID,
		Seq:           seq,
		Payload:       json.RawMessage(payload),
		SchemaVersion: state.Version,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// State decodes the stored payload back into a document.
func (s *Snapshot) State() *AppState {
	return Import(string(s.Payload))
}
