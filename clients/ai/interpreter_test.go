package ai

import (
	"strings"
	"testing"
)

func TestParseReply(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  ParsedWorkout
	}{
		{
			name:  "clean json",
			reply: `{"exercise_name": "Press banca", "sets": 3, "reps": "8-12", "weight": 60, "found": true}`,
			want:  ParsedWorkout{ExerciseName: "Press banca", Sets: 3, Reps: "8-12", Weight: 60, Found: true},
		},
		{
			name:  "json wrapped in prose",
			reply: "Here is the result:\n```json\n{\"exercise_name\": \"Dominadas\", \"sets\": 4, \"reps\": \"10\", \"weight\": null, \"found\": true}\n```",
			want:  ParsedWorkout{ExerciseName: "Dominadas", Sets: 4, Reps: "10", Found: true},
		},
		{
			name:  "numeric reps",
			reply: `{"exercise_name": "Remo con barra", "sets": 3, "reps": 10, "weight": 50.5, "found": true}`,
			want:  ParsedWorkout{ExerciseName: "Remo con barra", Sets: 3, Reps: "10", Weight: 50.5, Found: true},
		},
		{
			name:  "not found",
			reply: `{"exercise_name": "", "sets": 0, "reps": "", "weight": null, "found": false}`,
			want:  ParsedWorkout{},
		},
		{
			name:  "no json at all",
			reply: "I could not understand that message.",
			want:  ParsedWorkout{},
		},
		{
			name:  "broken json",
			reply: `{"exercise_name": "Press banca", "sets": }`,
			want:  ParsedWorkout{},
		},
		{
			name:  "found but empty name",
			reply: `{"exercise_name": "", "sets": 3, "reps": "10", "found": true}`,
			want:  ParsedWorkout{},
		},
		{
			name:  "found but zero sets",
			reply: `{"exercise_name": "Press banca", "sets": 0, "reps": "10", "found": true}`,
			want:  ParsedWorkout{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseReply(tt.reply); got != tt.want {
				t.Errorf("parseReply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBuildParsePrompt(t *testing.T) {
	prompt := buildParsePrompt("bench 3x10", 1, []string{"Press banca", "Vuelos laterales"})

	for _, want := range []string{"bench 3x10", "Day 1", "- Press banca", "- Vuelos laterales", "exercise_name"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}

	empty := buildParsePrompt("bench 3x10", 2, nil)
	if !strings.Contains(empty, "No day selected yet") {
		t.Error("prompt without known exercises should say so")
	}
}
