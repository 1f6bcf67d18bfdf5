package progress

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user_states.json")
	return NewStore(path), path
}

func TestGetOrCreate_Defaults(t *testing.T) {
	s, _ := newTestStore(t)

	p := s.GetOrCreate(42)
	if p.CurrentWeek != 1 {
		t.Errorf("CurrentWeek = %d, want 1", p.CurrentWeek)
	}
	if p.CurrentDay != nil {
		t.Errorf("CurrentDay = %v, want nil", *p.CurrentDay)
	}
	if len(p.CustomSets) != 0 {
		t.Errorf("CustomSets = %v, want empty", p.CustomSets)
	}
	if p.SplitConfigured {
		t.Error("SplitConfigured = true, want false")
	}
}

func TestIncrementWeek_Cycles(t *testing.T) {
	s, _ := newTestStore(t)

	// Six increments from any starting week return to it
	if err := s.SetCurrentWeek(1, 4); err != nil {
		t.Fatalf("SetCurrentWeek: %v", err)
	}
	for i := 0; i < 6; i++ {
		if _, err := s.IncrementWeek(1); err != nil {
			t.Fatalf("IncrementWeek: %v", err)
		}
	}
	if p := s.GetOrCreate(1); p.CurrentWeek != 4 {
		t.Errorf("after 6 increments CurrentWeek = %d, want 4", p.CurrentWeek)
	}

	// Week 6 wraps to week 1
	if err := s.SetCurrentWeek(1, 6); err != nil {
		t.Fatalf("SetCurrentWeek: %v", err)
	}
	week, err := s.IncrementWeek(1)
	if err != nil {
		t.Fatalf("IncrementWeek: %v", err)
	}
	if week != 1 {
		t.Errorf("IncrementWeek from 6 = %d, want 1", week)
	}
}

func TestEffectiveSets(t *testing.T) {
	s, _ := newTestStore(t)
	ex := &models.Exercise{Name: "Press banca", Day: 1, DefaultSets: 3, DefaultRepRange: "8-12"}

	if got := s.EffectiveSets(7, ex); got != 3 {
		t.Errorf("EffectiveSets without override = %d, want catalog default 3", got)
	}

	if err := s.SetExerciseOverride(7, "Press Banca", 5); err != nil {
		t.Fatalf("SetExerciseOverride: %v", err)
	}
	if got := s.EffectiveSets(7, ex); got != 5 {
		t.Errorf("EffectiveSets with override = %d, want 5", got)
	}

	// Overrides are per user
	if got := s.EffectiveSets(8, ex); got != 3 {
		t.Errorf("EffectiveSets other user = %d, want 3", got)
	}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_states.json")

	s := NewStore(path)
	if err := s.SetCurrentDay(99, 2); err != nil {
		t.Fatalf("SetCurrentDay: %v", err)
	}
	if err := s.SetCurrentWeek(99, 3); err != nil {
		t.Fatalf("SetCurrentWeek: %v", err)
	}
	if err := s.SetExerciseOverride(99, "Remo con barra", 4); err != nil {
		t.Fatalf("SetExerciseOverride: %v", err)
	}

	reloaded := NewStore(path)
	p := reloaded.GetOrCreate(99)
	if p.CurrentWeek != 3 {
		t.Errorf("CurrentWeek = %d, want 3", p.CurrentWeek)
	}
	if p.CurrentDay == nil || *p.CurrentDay != 2 {
		t.Errorf("CurrentDay = %v, want 2", p.CurrentDay)
	}
	if !p.SplitConfigured {
		t.Error("SplitConfigured lost in round trip")
	}
	if p.CustomSets["remo con barra"] != 4 {
		t.Errorf("CustomSets = %v, want remo con barra -> 4", p.CustomSets)
	}
}

func TestReset(t *testing.T) {
	s, _ := newTestStore(t)

	if err := s.SetCurrentDay(5, 3); err != nil {
		t.Fatalf("SetCurrentDay: %v", err)
	}
	if err := s.SetExerciseOverride(5, "Dominadas", 6); err != nil {
		t.Fatalf("SetExerciseOverride: %v", err)
	}
	if err := s.Reset(5); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	p := s.GetOrCreate(5)
	if p.CurrentWeek != 1 || p.CurrentDay != nil || len(p.CustomSets) != 0 {
		t.Errorf("Reset left state behind: %+v", p)
	}
}

func TestNewStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_states.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	s := NewStore(path)
	if got := len(s.AllUserIDs()); got != 0 {
		t.Errorf("corrupt store has %d users, want 0", got)
	}
}

func TestSaveFailure_KeepsMemoryState(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(filepath.Join(dir, "user_states.json"))
	s.GetOrCreate(1)

	// Point the store at an unwritable path; mutations must report the
	// failure but keep serving the updated in-memory record.
	s.path = filepath.Join(dir, "no", "such", "dir")
	if err := os.WriteFile(filepath.Join(dir, "no"), []byte("x"), 0644); err != nil {
		t.Fatalf("write blocker file: %v", err)
	}

	if err := s.SetCurrentWeek(1, 5); err == nil {
		t.Fatal("SetCurrentWeek should report the persist failure")
	}
	if p := s.GetOrCreate(1); p.CurrentWeek != 5 {
		t.Errorf("in-memory CurrentWeek = %d, want 5 despite persist failure", p.CurrentWeek)
	}
}
