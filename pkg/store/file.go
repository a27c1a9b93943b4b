package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/matzehuels/punishboard/pkg/observability"
)

// FileStore keeps the space list in a JSON file under a data directory.
type FileStore struct {
	mu  sync.RWMutex
	dir string
	key string
}

// fileRecord is the on-disk format.
type fileRecord struct {
	Spaces    []string  `json:"spaces"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewFileStore creates a file store in dir.
// If dir is empty, defaults to $XDG_DATA_HOME/punishboard (~/.local/share/punishboard).
func NewFileStore(dir, key string) (*FileStore, error) {
	if dir == "" {
		var err error
		if dir, err = defaultDataDir(); err != nil {
			return nil, err
		}
	}
	if key == "" {
		key = DefaultKey
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &FileStore{dir: dir, key: key}, nil
}

func defaultDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "punishboard"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share", "punishboard"), nil
}

// Path returns the file the list is stored in.
func (s *FileStore) Path() string {
	return filepath.Join(s.dir, s.key+".json")
}

func (s *FileStore) Load(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			observability.Store().OnLoad(ctx, "file", 0, nil)
			return nil, nil
		}
		err = fmt.Errorf("read space list: %w", err)
		observability.Store().OnLoad(ctx, "file", 0, err)
		return nil, err
	}

	var rec fileRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		err = fmt.Errorf("parse space list: %w", err)
		observability.Store().OnLoad(ctx, "file", 0, err)
		return nil, err
	}
	observability.Store().OnLoad(ctx, "file", len(rec.Spaces), nil)
	return rec.Spaces, nil
}

func (s *FileStore) Save(ctx context.Context, spaces []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if spaces == nil {
		spaces = []string{}
	}
	data, err := json.MarshalIndent(fileRecord{Spaces: spaces, UpdatedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal space list: %w", err)
	}

	// Write to a sibling file and rename so a crash never leaves half a list.
	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		err = fmt.Errorf("write space list: %w", err)
		observability.Store().OnSave(ctx, "file", len(spaces), err)
		return err
	}
	if err := os.Rename(tmp, s.Path()); err != nil {
		err = fmt.Errorf("replace space list: %w", err)
		observability.Store().OnSave(ctx, "file", len(spaces), err)
		return err
	}
	observability.Store().OnSave(ctx, "file", len(spaces), nil)
	return nil
}

func (s *FileStore) Close() error { return nil }

var _ Store = (*FileStore)(nil)
