package recording

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileStore persists the controller state between CLI invocations.
type FileStore struct {
	Path string
}

type stateFile struct {
	State     State     `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Load returns the saved state. A missing file means Idle.
func (fs FileStore) Load() (State, error) {
	b, err := os.ReadFile(fs.Path)
	if errors.Is(err, os.ErrNotExist) {
		return Idle, nil
	}
	if err != nil {
		return Idle, fmt.Errorf("reading recording state: %w", err)
	}
	var sf stateFile
	if err := json.Unmarshal(b, &sf); err != nil {
		return Idle, fmt.Errorf("decoding recording state %s: %w", fs.Path, err)
	}
	return sf.State, nil
}

// Save writes s atomically.
func (fs FileStore) Save(s State) error {
	b, err := json.MarshalIndent(stateFile{State: s, UpdatedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(fs.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".recording-*.json")
	if err != nil {
		return fmt.Errorf("writing recording state: %w", err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing recording state: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing recording state: %w", err)
	}
	return os.Rename(tmp.Name(), fs.Path)
}
