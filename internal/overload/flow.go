package overload

import (
	"fmt"
	"log"
	"strings"

	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/catalog"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/progress"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/volume"
)

// State identifies a step of the overload negotiation flow. There is no
// server-side session: each callback reconstructs the step from the decoded
// action plus the user's current progress record.
type State int

const (
	StateMuscleList State = iota
	StateExerciseList
	StateExerciseAdjust
	StateConfirmed
	StateCancelled
)

// Action is one decoded transition request.
type Action struct {
	State    State
	Muscle   string // display muscle name, set for StateExerciseList
	Exercise string // exercise name (possibly truncated), set for adjust/confirm
	Delta    int    // set adjustment applied before rendering StateExerciseAdjust
}

// Button is one inline option: a label plus the action its tap requests.
type Button struct {
	Label  string
	Action Action
}

// View is the rendered output of a step: message text plus button rows.
type View struct {
	State   State
	Text    string
	Buttons [][]Button
}

// ErrNotFound reports that the action referenced a muscle or exercise the
// catalog does not know.
type ErrNotFound struct {
	Query string
}

func (e ErrNotFound) Error() string {
	return fmt.Sprintf("%q not found", e.Query)
}

// Flow drives the browse-adjust-confirm negotiation over the catalog, the
// progress store and the volume calculator.
type Flow struct {
	catalog *catalog.Catalog
	store   *progress.Store
	volumes *volume.Calculator
}

// NewFlow returns a Flow over the given services.
func NewFlow(c *catalog.Catalog, s *progress.Store, v *volume.Calculator) *Flow {
	return &Flow{catalog: c, store: s, volumes: v}
}

// Step executes one transition for the user and returns the view to render.
func (f *Flow) Step(userID int64, a Action) (*View, error) {
	switch a.State {
	case StateMuscleList:
		return f.muscleList(userID), nil
	case StateExerciseList:
		return f.exerciseList(userID, a.Muscle)
	case StateExerciseAdjust:
		return f.exerciseAdjust(userID, a.Exercise, a.Delta)
	case StateConfirmed:
		return f.confirmed(userID, a.Exercise)
	case StateCancelled:
		return f.cancelled(), nil
	}
	return nil, fmt.Errorf("unknown state %d", a.State)
}

func (f *Flow) muscleList(userID int64) *View {
	volumes := f.volumes.MuscleVolumes(userID)

	var text strings.Builder
	text.WriteString("💪 Progressive overload\n\n")
	text.WriteString("Weekly sets per muscle. Pick one to adjust its exercises:\n")

	var rows [][]Button
	for _, v := range volumes {
		rows = append(rows, []Button{{
			Label:  fmt.Sprintf("%s — %d sets", v.Muscle, v.TotalSets),
			Action: Action{State: StateExerciseList, Muscle: v.Muscle},
		}})
	}
	rows = append(rows, []Button{{
		Label:  "✖️ Close",
		Action: Action{State: StateCancelled},
	}})

	return &View{State: StateMuscleList, Text: text.String(), Buttons: rows}
}

func (f *Flow) exerciseList(userID int64, muscle string) (*View, error) {
	exercises := f.volumes.ExercisesByMuscle(muscle, userID)
	if len(exercises) == 0 {
		return nil, ErrNotFound{Query: muscle}
	}

	var text strings.Builder
	fmt.Fprintf(&text, "💪 %s\n\nExercises grouped by day. Pick one to adjust:\n", muscle)

	var rows [][]Button
	for _, es := range exercises {
		rows = append(rows, []Button{{
			Label:  fmt.Sprintf("Day %d · %s — %d sets", es.Exercise.Day, es.Exercise.Name, es.Sets),
			Action: Action{State: StateExerciseAdjust, Exercise: es.Exercise.Name},
		}})
	}
	rows = append(rows, []Button{
		{Label: "⬅️ Back", Action: Action{State: StateMuscleList}},
		{Label: "✖️ Cancel", Action: Action{State: StateCancelled}},
	})

	return &View{State: StateExerciseList, Text: text.String(), Buttons: rows}, nil
}

func (f *Flow) exerciseAdjust(userID int64, name string, delta int) (*View, error) {
	// Names arrive truncated from tokens; the catalog's substring match
	// resolves them back to the full exercise.
	ex, ok := f.catalog.FindExercise(name)
	if !ok {
		return nil, ErrNotFound{Query: name}
	}

	if delta != 0 {
		sets := f.store.EffectiveSets(userID, ex) + delta
		if sets < 1 {
			sets = 1
		}
		// Each tap is a durable write; a failed persist still updates the
		// session and must not break the flow.
		if err := f.store.SetExerciseOverride(userID, ex.Name, sets); err != nil {
			log.Printf("Failed to persist override [user=%d exercise=%s]: %v", userID, ex.Name, err)
		}
	}

	current := f.store.EffectiveSets(userID, ex)

	var text strings.Builder
	fmt.Fprintf(&text, "🏋️ %s (Day %d)\n\n", ex.Name, ex.Day)
	fmt.Fprintf(&text, "Current: %d sets x %s", current, ex.DefaultRepRange)
	if current != ex.DefaultSets {
		fmt.Fprintf(&text, " (default %d)", ex.DefaultSets)
	}
	text.WriteString("\n")

	rows := [][]Button{
		{
			{Label: "➖", Action: Action{State: StateExerciseAdjust, Exercise: ex.Name, Delta: -1}},
			{Label: "➕", Action: Action{State: StateExerciseAdjust, Exercise: ex.Name, Delta: 1}},
		},
		{{Label: "✅ Confirm", Action: Action{State: StateConfirmed, Exercise: ex.Name}}},
		{{Label: "✖️ Cancel", Action: Action{State: StateCancelled}}},
	}

	return &View{State: StateExerciseAdjust, Text: text.String(), Buttons: rows}, nil
}

func (f *Flow) confirmed(userID int64, name string) (*View, error) {
	ex, ok := f.catalog.FindExercise(name)
	if !ok {
		return nil, ErrNotFound{Query: name}
	}

	muscle := volume.DisplayName(ex.Category)
	sets := f.store.EffectiveSets(userID, ex)

	total := 0
	for _, v := range f.volumes.MuscleVolumes(userID) {
		if v.Muscle == muscle {
			total = v.TotalSets
			break
		}
	}

	var text strings.Builder
	fmt.Fprintf(&text, "✅ %s saved at %d sets.\n\n", ex.Name, sets)
	fmt.Fprintf(&text, "%s weekly volume is now %d sets.\n", muscle, total)

	rows := [][]Button{
		{{Label: "↩️ Adjust another", Action: Action{State: StateMuscleList}}},
		{{Label: "🏁 Finish", Action: Action{State: StateCancelled}}},
	}

	return &View{State: StateConfirmed, Text: text.String(), Buttons: rows}, nil
}

func (f *Flow) cancelled() *View {
	return &View{
		State: StateCancelled,
		Text:  "👌 Done. Your overload settings are saved.",
	}
}
