package volume

import (
	"sort"

	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/catalog"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/models"
	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/progress"
)

// displayNames maps internal muscle categories to the Spanish labels shown
// to users. The mapping must stay two-way consistent: DisplayName and
// CategoryFor are inverses of each other.
var displayNames = map[models.MuscleGroup]string{
	models.MuscleShoulders: "Hombros",
	models.MuscleChest:     "Pecho",
	models.MuscleBack:      "Dorsal ancho",
	models.MuscleBiceps:    "Bíceps",
	models.MuscleTriceps:   "Tríceps",
	models.MuscleLegs:      "Piernas",
	models.MuscleOther:     "Otros",
}

// DisplayName returns the user-facing label for a muscle category.
func DisplayName(group models.MuscleGroup) string {
	if name, ok := displayNames[group]; ok {
		return name
	}
	return string(group)
}

// CategoryFor maps a display label back to the internal category. An
// unrecognized label is returned unchanged; that is a defined fallback, not
// an error.
func CategoryFor(displayName string) models.MuscleGroup {
	for group, name := range displayNames {
		if name == displayName {
			return group
		}
	}
	return models.MuscleGroup(displayName)
}

// MuscleVolume is the weekly set total for one display muscle.
type MuscleVolume struct {
	Muscle    string
	TotalSets int
}

// ExerciseSets pairs an exercise with the user's effective set count.
type ExerciseSets struct {
	Exercise *models.Exercise
	Sets     int
}

// Calculator computes per-muscle volumes over the catalog and a user's
// overrides. Results are recomputed from scratch on every call so they
// always reflect the latest override state.
type Calculator struct {
	catalog *catalog.Catalog
	store   *progress.Store
}

// NewCalculator returns a Calculator over the given catalog and store.
func NewCalculator(c *catalog.Catalog, s *progress.Store) *Calculator {
	return &Calculator{catalog: c, store: s}
}

// MuscleVolumes returns the user's weekly set total per display muscle,
// sorted by total descending. Ties keep the order in which the muscle was
// first encountered in the catalog.
func (v *Calculator) MuscleVolumes(userID int64) []MuscleVolume {
	totals := make(map[string]int)
	var order []string

	for _, ex := range v.catalog.AllExercises() {
		name := DisplayName(ex.Category)
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += v.store.EffectiveSets(userID, ex)
	}

	volumes := make([]MuscleVolume, 0, len(order))
	for _, name := range order {
		volumes = append(volumes, MuscleVolume{Muscle: name, TotalSets: totals[name]})
	}
	sort.SliceStable(volumes, func(i, j int) bool {
		return volumes[i].TotalSets > volumes[j].TotalSets
	})
	return volumes
}

// ExercisesByMuscle returns the exercises of one display muscle with the
// user's effective sets, sorted by training day ascending.
func (v *Calculator) ExercisesByMuscle(displayName string, userID int64) []ExerciseSets {
	group := CategoryFor(displayName)

	var result []ExerciseSets
	for _, ex := range v.catalog.AllExercises() {
		if ex.Category != group {
			continue
		}
		result = append(result, ExerciseSets{
			Exercise: ex,
			Sets:     v.store.EffectiveSets(userID, ex),
		})
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Exercise.Day < result[j].Exercise.Day
	})
	return result
}
