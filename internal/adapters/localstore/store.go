package localstore

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"github.com/HasanAboShally/dayma/internal/core/domain"
	"github.com/HasanAboShally/dayma/internal/core/services"
)

const stateKey = "state"

// Store persists the single tracker document on disk. The whole document is
// one value; there is nothing to index or query locally.
type Store struct {
	d      *diskv.Diskv
	locale string
}

// Load creates a Store backed by diskv using the provided config.
func Load(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &Store{
		d: diskv.New(diskv.Options{
			BasePath:     cfg.BasePath(),
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		locale: cfg.Locale(),
	}, nil
}

var _ services.StateStore = (*Store)(nil)

// Load reads the document, falling back to first-run defaults when the file
// is missing or unreadable. A corrupt document must never brick the tracker.
func (s *Store) Load() *domain.AppState {
	raw, err := s.d.Read(stateKey)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "localstore: read state: %v\n", err)
		}
		return domain.DefaultState(s.locale)
	}

	return domain.DecodeOrDefault(raw, s.locale)
}

func (s *Store) Save(state *domain.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("localstore: marshal state: %w", err)
	}

	if err := s.d.Write(stateKey, data); err != nil {
		return fmt.Errorf("localstore: write state: %w", err)
	}
	return nil
}

func (s *Store) Reset() error {
	if err := s.d.Erase(stateKey); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("localstore: erase state: %w", err)
	}
	return nil
}
