package game

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"pacman-search/search"
)

// SessionStats accumulates per-session and per-ghost search metrics and is
// written to a JSON file when the session ends.
type SessionStats struct {
	ID        string                 `json:"id"`
	Level     int                    `json:"level"`
	StartTime time.Time              `json:"start_time"`
	EndTime   time.Time              `json:"end_time"`
	Resets    int                    `json:"resets"`
	Ghosts    map[string]*GhostStats `json:"ghosts"`

	mu sync.Mutex
}

// GhostStats aggregates the searches one ghost has run.
type GhostStats struct {
	Strategy      string        `json:"strategy"`
	Searches      int           `json:"searches"`
	TotalExpanded int           `json:"total_expanded"`
	TotalDuration time.Duration `json:"total_duration"`
}

// NewSessionStats starts a stats record for one level session.
func NewSessionStats(level int) *SessionStats {
	return &SessionStats{
		ID:        uuid.New().String(),
		Level:     level,
		StartTime: time.Now(),
		Ghosts:    make(map[string]*GhostStats),
	}
}

// RecordSearch folds one search invocation into the ghost's totals.
func (s *SessionStats) RecordSearch(ghostID, strategy string, stats search.Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ghost, ok := s.Ghosts[ghostID]
	if !ok {
		ghost = &GhostStats{Strategy: strategy}
		s.Ghosts[ghostID] = ghost
	}
	ghost.Searches++
	ghost.TotalExpanded += stats.Expanded
	ghost.TotalDuration += stats.Duration
}

// RecordReset notes that the level was reset after a ghost caught Pac-Man.
func (s *SessionStats) RecordReset() {
	s.mu.Lock()
	s.Resets++
	s.mu.Unlock()
}

// Save writes the stats record as indented JSON under dir.
func (s *SessionStats) Save(dir string) error {
	s.mu.Lock()
	s.EndTime = time.Now()
	data, err := json.MarshalIndent(s, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, s.ID+".json"), data, 0644)
}
