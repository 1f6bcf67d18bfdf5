package progress

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/models"
)

// Store keeps every user's progress record and persists the full set to a
// JSON file after each mutation. The in-memory copy stays authoritative for
// the session even when a write fails, so a broken disk degrades to
// session-only behaviour instead of refusing requests.
type Store struct {
	mu    sync.Mutex
	path  string
	users map[int64]*models.UserProgress
}

// NewStore opens the store at path. An unreadable or corrupt file is logged
// and discarded; the store then starts empty.
func NewStore(path string) *Store {
	s := &Store{
		path:  path,
		users: make(map[int64]*models.UserProgress),
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read user states from %s: %v", s.path, err)
		}
		return
	}

	var raw map[string]*models.UserProgress
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("Corrupt user states in %s, starting empty: %v", s.path, err)
		return
	}

	for idStr, p := range raw {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Printf("Skipping user state with bad key %q", idStr)
			continue
		}
		p.UserID = id
		if p.CurrentWeek < 1 || p.CurrentWeek > 6 {
			p.CurrentWeek = 1
		}
		if p.CustomSets == nil {
			p.CustomSets = make(map[string]int)
		}
		s.users[id] = p
	}
}

// save persists all records. Callers must hold s.mu.
func (s *Store) save() error {
	raw := make(map[string]*models.UserProgress, len(s.users))
	for id, p := range s.users {
		raw[strconv.FormatInt(id, 10)] = p
	}

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal user states: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write user states: %w", err)
	}
	return nil
}

// getOrCreate returns the user's record, creating and persisting a default
// one on first access. Callers must hold s.mu.
func (s *Store) getOrCreate(userID int64) *models.UserProgress {
	p, ok := s.users[userID]
	if !ok {
		p = models.NewUserProgress(userID)
		s.users[userID] = p
		if err := s.save(); err != nil {
			log.Printf("Failed to persist new user state [user=%d]: %v", userID, err)
		}
	}
	return p
}

// GetOrCreate returns a copy of the user's record, creating a default one
// (week 1, no day, no overrides) if none exists yet.
func (s *Store) GetOrCreate(userID int64) models.UserProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *s.getOrCreate(userID)
}

// SetCurrentDay sets the user's training day and marks the split configured.
// Range validation is the caller's responsibility.
func (s *Store) SetCurrentDay(userID int64, day int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID)
	p.CurrentDay = &day
	p.SplitConfigured = true
	return s.save()
}

// SetCurrentWeek sets the user's week. Range validation is the caller's
// responsibility.
func (s *Store) SetCurrentWeek(userID int64, week int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID)
	p.CurrentWeek = week
	return s.save()
}

// IncrementWeek advances the user to the next week in the 6-week cycle
// (week 6 wraps to week 1) and returns the new week.
func (s *Store) IncrementWeek(userID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID)
	week := p.IncrementWeek()
	return week, s.save()
}

// SetExerciseOverride stores a per-exercise set count keyed by the
// case-folded exercise name.
func (s *Store) SetExerciseOverride(userID int64, exerciseName string, sets int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID)
	p.CustomSets[strings.ToLower(exerciseName)] = sets
	return s.save()
}

// EffectiveSets returns the user's override for the exercise if present,
// otherwise the catalog default.
func (s *Store) EffectiveSets(userID int64, ex *models.Exercise) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.getOrCreate(userID)
	if sets, ok := p.CustomSets[strings.ToLower(ex.Name)]; ok {
		return sets
	}
	return ex.DefaultSets
}

// Reset replaces the user's record with a fresh default one, discarding
// overrides and settings.
func (s *Store) Reset(userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[userID] = models.NewUserProgress(userID)
	return s.save()
}

// AllUserIDs returns the IDs of every known user.
func (s *Store) AllUserIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.users))
	for id := range s.users {
		ids = append(ids, id)
	}
	return ids
}
