package models

import "fmt"

// MuscleGroup is the internal muscle category of an exercise.
type MuscleGroup string

const (
	MuscleShoulders MuscleGroup = "Shoulders"
	MuscleChest     MuscleGroup = "Chest"
	MuscleBack      MuscleGroup = "Back"
	MuscleBiceps    MuscleGroup = "Biceps"
	MuscleTriceps   MuscleGroup = "Triceps"
	MuscleLegs      MuscleGroup = "Legs"
	MuscleOther     MuscleGroup = "Other"
)

// Exercise represents one catalog entry of the 4-day split.
// Immutable after the catalog is loaded.
type Exercise struct {
	Name            string      `json:"name"`
	Day             int         `json:"day"` // 1-4
	DefaultSets     int         `json:"default_sets"`
	DefaultRepRange string      `json:"default_rep_range"` // e.g. "6-10" or "10-15"
	DefaultWeight   float64     `json:"default_weight"`    // kg, 0 = not set
	Category        MuscleGroup `json:"category"`
}

func (e Exercise) String() string {
	weightStr := ""
	if e.DefaultWeight > 0 {
		weightStr = fmt.Sprintf(" @ %gkg", e.DefaultWeight)
	}
	return fmt.Sprintf("%s: %d x %s%s", e.Name, e.DefaultSets, e.DefaultRepRange, weightStr)
}

// WorkoutEntry is a single logged workout, built per incoming message.
// It is a write intent for the sheet, not stored state.
type WorkoutEntry struct {
	ExerciseName string
	Week         int    // 1-6
	Day          int    // 1-4
	Sets         int
	Reps         string // range like "8-12" or a plain number
	Weight       float64 // kg, 0 = not provided
	Notes        string
}

func (w WorkoutEntry) String() string {
	weightStr := ""
	if w.Weight > 0 {
		weightStr = fmt.Sprintf(" @ %gkg", w.Weight)
	}
	return fmt.Sprintf("%s: %d x %s%s", w.ExerciseName, w.Sets, w.Reps, weightStr)
}
