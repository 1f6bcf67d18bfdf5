package gsheets

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/models"
)

// fakeGrid is an in-memory Grid for tests.
type fakeGrid struct {
	labels  []string                    // column 1, index 0 = row 1
	cells   map[[2]int]interface{}      // (row, col) -> value
	failure map[[2]int]error            // write failures to inject
	writes  [][2]int                    // write order
}

func newFakeGrid(labels ...string) *fakeGrid {
	return &fakeGrid{
		labels:  labels,
		cells:   make(map[[2]int]interface{}),
		failure: make(map[[2]int]error),
	}
}

func (g *fakeGrid) ColumnValues(col int) ([]string, error) {
	if col != 1 {
		return nil, fmt.Errorf("fake grid only serves column 1, got %d", col)
	}
	return g.labels, nil
}

func (g *fakeGrid) CellValue(row, col int) (string, error) {
	v, ok := g.cells[[2]int{row, col}]
	if !ok {
		return "", nil
	}
	return fmt.Sprintf("%v", v), nil
}

func (g *fakeGrid) UpdateCell(row, col int, value interface{}) error {
	key := [2]int{row, col}
	if err := g.failure[key]; err != nil {
		return err
	}
	g.cells[key] = value
	g.writes = append(g.writes, key)
	return nil
}

// Row 1-based layout used by most tests:
//  1 Dia 1
//  2 Press banca
//  3 Vuelos laterales
//  4 Dia 2
//  5 Remo con barra
//  6 Dominadas
func testLabels() []string {
	return []string{"Dia 1", "Press banca", "Vuelos laterales", "Dia 2", "Remo con barra", "Dominadas"}
}

func TestColumnFor(t *testing.T) {
	tests := []struct {
		week  int
		field Field
		want  int
	}{
		{1, FieldWeight, 3},
		{1, FieldSeries, 4},
		{1, FieldNotes, 5},
		{2, FieldWeight, 6},
		{4, FieldSeries, 13},
		{6, FieldNotes, 20},
	}
	for _, tt := range tests {
		if got := ColumnFor(tt.week, tt.field); got != tt.want {
			t.Errorf("ColumnFor(%d, %d) = %d, want %d", tt.week, tt.field, got, tt.want)
		}
	}
}

func TestFindExerciseRow(t *testing.T) {
	labels := testLabels()

	tests := []struct {
		name     string
		exercise string
		day      int
		wantRow  int
		wantOK   bool
	}{
		{"exact in day 1", "Press banca", 1, 2, true},
		{"case insensitive", "press banca", 1, 2, true},
		{"substring", "banca", 1, 2, true},
		{"day 2 exercise", "Remo con barra", 2, 5, true},
		{"never crosses into the next day block", "Remo con barra", 1, 0, false},
		{"exists in day 1 but asked for day 2", "Press banca", 2, 0, false},
		{"unknown day", "Press banca", 3, 0, false},
		{"unknown exercise", "Burpees", 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, ok := findExerciseRow(labels, tt.exercise, tt.day)
			if ok != tt.wantOK || row != tt.wantRow {
				t.Errorf("findExerciseRow(%q, %d) = (%d, %v), want (%d, %v)",
					tt.exercise, tt.day, row, ok, tt.wantRow, tt.wantOK)
			}
		})
	}
}

func TestLogWorkout(t *testing.T) {
	grid := newFakeGrid(testLabels()...)
	sink := NewSink(grid)

	entry := models.WorkoutEntry{
		ExerciseName: "Press banca",
		Week:         2,
		Day:          1,
		Sets:         3,
		Reps:         "8-12",
		Weight:       62.5,
		Notes:        "felt strong",
	}
	if err := sink.LogWorkout(entry); err != nil {
		t.Fatalf("LogWorkout error = %v", err)
	}

	if got := grid.cells[[2]int{2, 6}]; got != 62.5 {
		t.Errorf("weight cell = %v, want 62.5", got)
	}
	if got := grid.cells[[2]int{2, 7}]; got != "3 x 8-12" {
		t.Errorf("series cell = %v, want 3 x 8-12", got)
	}
	if got := grid.cells[[2]int{2, 8}]; got != "felt strong" {
		t.Errorf("notes cell = %v, want felt strong", got)
	}
}

func TestLogWorkout_OptionalCells(t *testing.T) {
	grid := newFakeGrid(testLabels()...)
	sink := NewSink(grid)

	entry := models.WorkoutEntry{
		ExerciseName: "Dominadas",
		Week:         1,
		Day:          2,
		Sets:         4,
		Reps:         "10",
	}
	if err := sink.LogWorkout(entry); err != nil {
		t.Fatalf("LogWorkout error = %v", err)
	}

	if len(grid.writes) != 1 {
		t.Fatalf("wrote %d cells, want only the series cell", len(grid.writes))
	}
	if got := grid.cells[[2]int{6, 4}]; got != "4 x 10" {
		t.Errorf("series cell = %v, want 4 x 10", got)
	}
}

func TestLogWorkout_NotFoundWritesNothing(t *testing.T) {
	grid := newFakeGrid(testLabels()...)
	sink := NewSink(grid)

	// Exists under day 1, requested for day 2: day-scoped search must fail
	entry := models.WorkoutEntry{ExerciseName: "Press banca", Week: 1, Day: 2, Sets: 3, Reps: "10"}
	err := sink.LogWorkout(entry)

	var notFound ErrExerciseNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("error = %v, want ErrExerciseNotFound", err)
	}
	if len(grid.writes) != 0 {
		t.Errorf("not-found log wrote %d cells, want 0", len(grid.writes))
	}
}

func TestLogWorkout_PartialWriteIsNotRolledBack(t *testing.T) {
	grid := newFakeGrid(testLabels()...)
	sink := NewSink(grid)

	// Weight write succeeds, the series write fails
	grid.failure[[2]int{2, 4}] = fmt.Errorf("quota exceeded")

	entry := models.WorkoutEntry{ExerciseName: "Press banca", Week: 1, Day: 1, Sets: 3, Reps: "10", Weight: 60}
	if err := sink.LogWorkout(entry); err == nil {
		t.Fatal("LogWorkout should surface the failed cell write")
	}

	if got := grid.cells[[2]int{2, 3}]; got != 60.0 {
		t.Errorf("earlier weight write = %v, want 60 (kept, not rolled back)", got)
	}
}

func TestDayProgress(t *testing.T) {
	grid := newFakeGrid(testLabels()...)
	sink := NewSink(grid)

	// Week 1 of day 1: Press banca logged, Vuelos laterales not
	grid.cells[[2]int{2, 4}] = "3 x 8-12"
	grid.cells[[2]int{2, 3}] = "60"

	out, err := sink.DayProgress(1, 1)
	if err != nil {
		t.Fatalf("DayProgress error = %v", err)
	}

	for _, want := range []string{"Day 1, Week 1", "Press banca: 3 x 8-12 @ 60kg", "Vuelos laterales: Not logged"} {
		if !strings.Contains(out, want) {
			t.Errorf("DayProgress missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Remo con barra") {
		t.Errorf("DayProgress leaked into the next day block:\n%s", out)
	}
}

func TestDayProgress_UnknownDay(t *testing.T) {
	sink := NewSink(newFakeGrid(testLabels()...))

	out, err := sink.DayProgress(4, 1)
	if err != nil {
		t.Fatalf("DayProgress error = %v", err)
	}
	if out != "Day 4 not found in sheet" {
		t.Errorf("DayProgress = %q", out)
	}
}

func TestExerciseHistory(t *testing.T) {
	grid := newFakeGrid(testLabels()...)
	sink := NewSink(grid)

	grid.cells[[2]int{5, ColumnFor(1, FieldSeries)}] = "3 x 6-10"
	grid.cells[[2]int{5, ColumnFor(1, FieldWeight)}] = "50"
	grid.cells[[2]int{5, ColumnFor(3, FieldSeries)}] = "4 x 6-10"

	history, err := sink.ExerciseHistory("Remo con barra", 2)
	if err != nil {
		t.Fatalf("ExerciseHistory error = %v", err)
	}
	if len(history) != 6 {
		t.Fatalf("history has %d weeks, want 6", len(history))
	}
	if history[0].Series != "3 x 6-10" || history[0].Weight != "50" {
		t.Errorf("week 1 = %+v", history[0])
	}
	if history[2].Series != "4 x 6-10" {
		t.Errorf("week 3 = %+v", history[2])
	}
	if history[5].Series != "" {
		t.Errorf("week 6 should be empty, got %+v", history[5])
	}
}

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{1, "A"}, {3, "C"}, {20, "T"}, {26, "Z"}, {27, "AA"}, {52, "AZ"},
	}
	for _, tt := range tests {
		if got := columnLetter(tt.col); got != tt.want {
			t.Errorf("columnLetter(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}
