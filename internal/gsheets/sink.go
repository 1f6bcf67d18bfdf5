package gsheets

import (
	"fmt"
	"strings"

	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/models"
)

// The sheet layout: column 1 holds row labels, where "Dia N" marker rows
// open a day block and the following rows each hold one exercise name.
// Starting at baseColumn, every week owns 3 consecutive columns in the
// order weight, series, notes.

// Field selects one of a week's three columns.
type Field int

const (
	FieldWeight Field = iota
	FieldSeries
	FieldNotes
)

// baseColumn is where week 1 starts (1-based).
const baseColumn = 3

// ColumnFor returns the 1-based column of a (week, field) coordinate.
func ColumnFor(week int, field Field) int {
	return baseColumn + (week-1)*3 + int(field)
}

// Grid is the cell-level contract the external store must satisfy. The
// Sheets client implements it; tests use an in-memory fake.
type Grid interface {
	ColumnValues(col int) ([]string, error)
	CellValue(row, col int) (string, error)
	UpdateCell(row, col int, value interface{}) error
}

// ErrExerciseNotFound reports that no row for the exercise exists inside the
// requested day block.
type ErrExerciseNotFound struct {
	Exercise string
	Day      int
}

func (e ErrExerciseNotFound) Error() string {
	return fmt.Sprintf("exercise %q not found in Day %d", e.Exercise, e.Day)
}

// Sink logs workout entries into the grid.
type Sink struct {
	grid Grid
}

// NewSink returns a Sink writing through the given grid.
func NewSink(grid Grid) *Sink {
	return &Sink{grid: grid}
}

// FindExerciseRow locates the 1-based row of an exercise inside its day
// block. The search starts after the "Dia <day>" marker and stops at the
// next day marker, so it never matches an exercise of another day.
func (s *Sink) FindExerciseRow(name string, day int) (int, bool, error) {
	labels, err := s.grid.ColumnValues(1)
	if err != nil {
		return 0, false, err
	}
	row, ok := findExerciseRow(labels, name, day)
	return row, ok, nil
}

func findExerciseRow(labels []string, name string, day int) (int, bool) {
	dayRow := findDayRow(labels, day)
	if dayRow == 0 {
		return 0, false
	}

	nameLower := strings.ToLower(name)
	for i := dayRow; i < len(labels); i++ {
		cell := strings.ToLower(strings.TrimSpace(labels[i]))
		if strings.HasPrefix(cell, "dia") {
			break // next day block, search boundary
		}
		if cell == "" {
			continue
		}
		if strings.Contains(cell, nameLower) || strings.Contains(nameLower, cell) {
			return i + 1, true
		}
	}
	return 0, false
}

// findDayRow returns the 1-based row of a day's marker, 0 when absent.
func findDayRow(labels []string, day int) int {
	marker := fmt.Sprintf("Dia %d", day)
	for i, label := range labels {
		if strings.Contains(label, marker) {
			return i + 1
		}
	}
	return 0
}

// LogWorkout writes one entry into the sheet: weight (when present), the
// composed "sets x reps" series string, and notes (when present) as
// independent cell writes. The grid has no transactions, so a failure after
// an earlier successful write leaves that write in place.
func (s *Sink) LogWorkout(entry models.WorkoutEntry) error {
	row, ok, err := s.FindExerciseRow(entry.ExerciseName, entry.Day)
	if err != nil {
		return fmt.Errorf("locate exercise row: %w", err)
	}
	if !ok {
		return ErrExerciseNotFound{Exercise: entry.ExerciseName, Day: entry.Day}
	}

	if entry.Weight > 0 {
		if err := s.grid.UpdateCell(row, ColumnFor(entry.Week, FieldWeight), entry.Weight); err != nil {
			return fmt.Errorf("write weight: %w", err)
		}
	}

	series := fmt.Sprintf("%d x %s", entry.Sets, entry.Reps)
	if err := s.grid.UpdateCell(row, ColumnFor(entry.Week, FieldSeries), series); err != nil {
		return fmt.Errorf("write series: %w", err)
	}

	if entry.Notes != "" {
		if err := s.grid.UpdateCell(row, ColumnFor(entry.Week, FieldNotes), entry.Notes); err != nil {
			return fmt.Errorf("write notes: %w", err)
		}
	}
	return nil
}

// DayProgress renders the logged state of one day block for one week. Cells
// without a value render as "Not logged".
func (s *Sink) DayProgress(day, week int) (string, error) {
	labels, err := s.grid.ColumnValues(1)
	if err != nil {
		return "", err
	}

	dayRow := findDayRow(labels, day)
	if dayRow == 0 {
		return fmt.Sprintf("Day %d not found in sheet", day), nil
	}

	seriesCol := ColumnFor(week, FieldSeries)
	weightCol := ColumnFor(week, FieldWeight)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Day %d, Week %d progress:\n\n", day, week)

	for i := dayRow; i < len(labels); i++ {
		label := strings.TrimSpace(labels[i])
		if label == "" || strings.HasPrefix(label, "Dia") {
			break
		}

		series, err := s.grid.CellValue(i+1, seriesCol)
		if err != nil {
			return "", fmt.Errorf("read series for %q: %w", label, err)
		}
		if series == "" {
			series = "Not logged"
		}

		weight, err := s.grid.CellValue(i+1, weightCol)
		if err != nil {
			return "", fmt.Errorf("read weight for %q: %w", label, err)
		}
		weightStr := ""
		if weight != "" {
			weightStr = fmt.Sprintf(" @ %skg", weight)
		}

		fmt.Fprintf(&sb, "- %s: %s%s\n", label, series, weightStr)
	}

	return sb.String(), nil
}

// WeekRecord is one week's logged cells for an exercise.
type WeekRecord struct {
	Week   int
	Weight string
	Series string
	Notes  string
}

// ExerciseHistory reads an exercise's logged cells across all six weeks.
func (s *Sink) ExerciseHistory(name string, day int) ([]WeekRecord, error) {
	row, ok, err := s.FindExerciseRow(name, day)
	if err != nil {
		return nil, fmt.Errorf("locate exercise row: %w", err)
	}
	if !ok {
		return nil, ErrExerciseNotFound{Exercise: name, Day: day}
	}

	history := make([]WeekRecord, 0, 6)
	for week := 1; week <= 6; week++ {
		weight, err := s.grid.CellValue(row, ColumnFor(week, FieldWeight))
		if err != nil {
			return nil, fmt.Errorf("read week %d weight: %w", week, err)
		}
		series, err := s.grid.CellValue(row, ColumnFor(week, FieldSeries))
		if err != nil {
			return nil, fmt.Errorf("read week %d series: %w", week, err)
		}
		notes, err := s.grid.CellValue(row, ColumnFor(week, FieldNotes))
		if err != nil {
			return nil, fmt.Errorf("read week %d notes: %w", week, err)
		}
		history = append(history, WeekRecord{Week: week, Weight: weight, Series: series, Notes: notes})
	}
	return history, nil
}
