package catalog

import (
	"encoding/csv"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/models"
)

// Catalog is the immutable table of all exercises across the 4-day split,
// loaded once at startup. Safe for concurrent reads.
type Catalog struct {
	byName  map[string]*models.Exercise // key: name lowercased
	byDay   map[int][]*models.Exercise
	ordered []*models.Exercise // file order, used for deterministic iteration
}

var (
	dayHeaderPattern = regexp.MustCompile(`Dia\s*(\d+)`)
	setsRepsPattern  = regexp.MustCompile(`(\d+)\s*x\s*([\d\-]+)`)
)

// Load reads the program CSV and builds the catalog. The file layout is a
// header row, a week-label row, then repeating day blocks: a "Dia N" marker
// row followed by exercise rows until the next marker.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open exercises file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read exercises file: %w", err)
	}
	if len(rows) > 2 {
		rows = rows[2:] // skip header and week-label rows
	} else {
		rows = nil
	}

	c := &Catalog{
		byName: make(map[string]*models.Exercise),
		byDay:  map[int][]*models.Exercise{1: {}, 2: {}, 3: {}, 4: {}},
	}

	currentDay := 0
	for _, row := range rows {
		if len(row) == 0 || row[0] == "" {
			continue
		}

		// Day marker row (Dia 1, Dia 2, ...)
		if strings.HasPrefix(row[0], "Dia") {
			if m := dayHeaderPattern.FindStringSubmatch(row[0]); m != nil {
				currentDay, _ = strconv.Atoi(m[1])
			}
			continue
		}

		// Exercise rows before the first day marker have no home
		if currentDay == 0 {
			continue
		}

		name := strings.TrimSpace(row[0])
		if name == "" {
			continue
		}

		// Week 1 weight column; anything non-numeric leaves it unset
		var weight float64
		if len(row) > 2 && row[2] != "" {
			if w, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64); err == nil {
				weight = w
			}
		}

		// Week 1 series column ("3 x 6-10")
		setsReps := "3 x 8-12"
		if len(row) > 3 {
			setsReps = row[3]
		}
		sets, repRange := parseSetsReps(setsReps)

		ex := &models.Exercise{
			Name:            name,
			Day:             currentDay,
			DefaultSets:     sets,
			DefaultRepRange: repRange,
			DefaultWeight:   weight,
			Category:        categorize(name),
		}

		c.byName[strings.ToLower(name)] = ex
		c.byDay[currentDay] = append(c.byDay[currentDay], ex)
		c.ordered = append(c.ordered, ex)
	}

	return c, nil
}

// parseSetsReps parses a "3 x 6-10" series field into (sets, rep range),
// falling back to 3 sets of "8-12" when the field does not match.
func parseSetsReps(s string) (int, string) {
	m := setsRepsPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 3, "8-12"
	}
	sets, err := strconv.Atoi(m[1])
	if err != nil || sets < 1 {
		return 3, "8-12"
	}
	return sets, m[2]
}

// categoryKeywords maps muscle groups to name keywords, Spanish and English.
// Checked in order; the first group with a match wins.
var categoryKeywords = []struct {
	group    models.MuscleGroup
	keywords []string
}{
	{models.MuscleShoulders, []string{"vuelos", "laterales", "hombro", "shoulder", "deltoides", "face pulls"}},
	{models.MuscleChest, []string{"press", "banca", "bench", "pec", "mariposa", "aperturas", "pecho", "chest"}},
	{models.MuscleBack, []string{"dorsal", "remo", "row", "dominadas", "pull", "espalda", "back"}},
	{models.MuscleBiceps, []string{"curl", "bíceps", "biceps", "bicep"}},
	{models.MuscleTriceps, []string{"tríceps", "triceps", "extensión", "extension"}},
	{models.MuscleLegs, []string{"zancadas", "lunge", "femoral", "cuádriceps", "quadriceps", "hacka", "hack", "squat", "glúteo", "glute", "aductores", "peso muerto", "deadlift", "rdl", "piernas", "legs"}},
}

// categorize assigns a muscle group by keyword matching on the exercise name.
func categorize(name string) models.MuscleGroup {
	nameLower := strings.ToLower(name)
	for _, cg := range categoryKeywords {
		for _, kw := range cg.keywords {
			if strings.Contains(nameLower, kw) {
				return cg.group
			}
		}
	}
	return models.MuscleOther
}

// FindExercise looks up an exercise by name: case-insensitive exact match
// first, then a bidirectional substring match over the catalog. Substring
// hits are ranked deterministically: a name containing the query beats a
// name contained in the query (truncated callback names are prefixes of the
// full name), and within a rank the first in catalog file order wins.
func (c *Catalog) FindExercise(query string) (*models.Exercise, bool) {
	queryLower := strings.ToLower(strings.TrimSpace(query))
	if queryLower == "" {
		return nil, false
	}

	if ex, ok := c.byName[queryLower]; ok {
		return ex, true
	}

	var contained *models.Exercise
	for _, ex := range c.ordered {
		nameLower := strings.ToLower(ex.Name)
		if strings.Contains(nameLower, queryLower) {
			return ex, true
		}
		if contained == nil && strings.Contains(queryLower, nameLower) {
			contained = ex
		}
	}
	if contained == nil {
		return nil, false
	}
	return contained, true
}

// ExercisesForDay returns the exercises of one training day in file order.
func (c *Catalog) ExercisesForDay(day int) []*models.Exercise {
	return c.byDay[day]
}

// AllExercises returns every exercise in file order.
func (c *Catalog) AllExercises() []*models.Exercise {
	return c.ordered
}

// Len returns the number of exercises in the catalog.
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// DaySummary returns a formatted listing of a day's exercises.
func (c *Catalog) DaySummary(day int) string {
	exercises := c.ExercisesForDay(day)
	if len(exercises) == 0 {
		return fmt.Sprintf("No exercises found for Day %d", day)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Day %d exercises:\n\n", day))
	for _, ex := range exercises {
		sb.WriteString("- ")
		sb.WriteString(ex.String())
		sb.WriteString("\n")
	}
	return sb.String()
}
