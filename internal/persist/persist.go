// Package persist stores the slider snapshot between runs.
// Snapshots are stored in ~/.local/state/marquee/state.json.
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/marquee-tui/marquee/internal/deck"
)

// State is the restorable part of a snapshot.
type State struct {
	CurrentSlide int
	Settings     deck.Settings
}

// snapshot is the on-disk form; Timestamp is millis since epoch.
type snapshot struct {
	CurrentSlide int           `json:"currentSlide"`
	Settings     deck.Settings `json:"settings"`
	Timestamp    int64         `json:"timestamp"`
}

const (
	defaultStatePath = "~/.local/state/marquee/state.json"

	// Snapshots older than this are treated as absent and deleted on read.
	maxSnapshotAge = 24 * time.Hour
)

// DefaultPath returns the default snapshot file path.
func DefaultPath() string {
	return defaultStatePath
}

// Store reads and writes the snapshot file. Storage failures are logged
// and swallowed; the slider always has defaults to fall back on.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore builds a store for the given path, empty meaning the default.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{path: path, logger: logger}
}

// SaveState serializes the state with the current timestamp. Failures are
// logged, never propagated.
func (s *Store) SaveState(state State) {
	resolved, err := s.resolve()
	if err != nil {
		s.logger.Warn("resolve state path", "err", err)
		return
	}
	snap := snapshot{
		CurrentSlide: state.CurrentSlide,
		Settings:     state.Settings,
		Timestamp:    time.Now().UnixMilli(),
	}
	data, err := json.Marshal(snap)
	if err != nil {
		s.logger.Warn("marshal slider state", "err", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		s.logger.Warn("create state dir", "err", err)
		return
	}
	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		s.logger.Warn("write slider state", "err", err)
	}
}

// LoadState returns the persisted state, or false when there is none. A
// snapshot older than the max age or with unparsable content is deleted
// and reported as absent. Settings fields missing from the file keep their
// defaults, so old partial snapshots merge over the baseline.
func (s *Store) LoadState() (State, bool) {
	resolved, err := s.resolve()
	if err != nil {
		return State{}, false
	}
	data, err := os.ReadFile(resolved)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("read slider state", "err", err)
		}
		return State{}, false
	}

	snap := snapshot{Settings: deck.DefaultSettings()}
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("corrupt slider state, discarding", "err", err)
		s.ClearState()
		return State{}, false
	}
	age := time.Since(time.UnixMilli(snap.Timestamp))
	if age > maxSnapshotAge {
		s.ClearState()
		return State{}, false
	}
	return State{CurrentSlide: snap.CurrentSlide, Settings: snap.Settings}, true
}

// ClearState deletes the snapshot file, best effort.
func (s *Store) ClearState() {
	resolved, err := s.resolve()
	if err != nil {
		return
	}
	if err := os.Remove(resolved); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("clear slider state", "err", err)
	}
}

// IsAvailable probes the storage location with a throwaway write.
func (s *Store) IsAvailable() bool {
	resolved, err := s.resolve()
	if err != nil {
		return false
	}
	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false
	}
	probe := filepath.Join(dir, ".probe")
	if err := os.WriteFile(probe, []byte("probe"), 0o644); err != nil {
		return false
	}
	_ = os.Remove(probe)
	return true
}

func (s *Store) resolve() (string, error) {
	if strings.TrimSpace(s.path) == "" {
		return expandPath(defaultStatePath)
	}
	return expandPath(s.path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
