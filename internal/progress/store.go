package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"watchnext/internal/logging"
)

const counterKey = "counter"

// State is the persisted watch position for one directory. Counter is the
// index of the next episode not yet confirmed fully watched; it may equal or
// exceed the current episode count when everything is watched or the on-disk
// set shrank. Extra carries keys this version does not understand so they are
// written back unchanged.
type State struct {
	Counter int
	Extra   map[string]json.RawMessage
}

// Store reads and writes State files keyed by a fixed sentinel filename
// inside each watched directory.
type Store struct {
	filename string
	logger   *slog.Logger
}

// NewStore creates a store using the given sentinel filename.
func NewStore(filename string, logger *slog.Logger) *Store {
	return &Store{
		filename: filename,
		logger:   logging.NewComponentLogger(logger, "progress"),
	}
}

// Filename returns the sentinel filename the store uses.
func (s *Store) Filename() string {
	return s.filename
}

// StatePath returns the sentinel path for a directory.
func (s *Store) StatePath(dir string) string {
	return filepath.Join(dir, s.filename)
}

// Load returns the state for a directory. A missing sentinel file yields a
// fresh zero state and leaves storage untouched; an unreadable or unparseable
// file is an error wrapping ErrCorruptState.
func (s *Store) Load(dir string) (*State, error) {
	path := s.StatePath(dir)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug("no state file, starting fresh", logging.String(logging.FieldDirectory, dir))
			return &State{}, nil
		}
		return nil, fmt.Errorf("read state file %s: %w", path, err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %v", ErrCorruptState, path, err)
	}

	state := &State{Extra: raw}
	if counterRaw, ok := raw[counterKey]; ok {
		if err := json.Unmarshal(counterRaw, &state.Counter); err != nil {
			return nil, fmt.Errorf("%w: counter in %s is not an integer", ErrCorruptState, path)
		}
		delete(raw, counterKey)
	}
	if state.Counter < 0 {
		return nil, fmt.Errorf("%w: counter in %s is negative (%d)", ErrCorruptState, path, state.Counter)
	}

	s.logger.Debug("loaded state",
		logging.String(logging.FieldDirectory, dir),
		logging.Int(logging.FieldCounter, state.Counter))
	return state, nil
}

// Save writes the state atomically: marshal, write a temp file next to the
// sentinel, rename into place. Save is the only durable mutator.
func (s *Store) Save(dir string, state *State) error {
	path := s.StatePath(dir)

	payload := make(map[string]json.RawMessage, len(state.Extra)+1)
	for key, value := range state.Extra {
		payload[key] = value
	}
	counterRaw, err := json.Marshal(state.Counter)
	if err != nil {
		return fmt.Errorf("marshal counter: %w", err)
	}
	payload[counterKey] = counterRaw

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename state file: %w", err)
	}

	s.logger.Debug("saved state",
		logging.String(logging.FieldDirectory, dir),
		logging.Int(logging.FieldCounter, state.Counter))
	return nil
}
