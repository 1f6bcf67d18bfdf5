package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/JoaquinCortezHub/dr-mike-gym-tracker-bot/internal/models"
)

// Interpreter turns free-text workout descriptions into structured results
// by prompting the language model with the day's known exercise names.
type Interpreter struct {
	client *Client
}

// NewInterpreter returns an Interpreter over the given client.
func NewInterpreter(client *Client) *Interpreter {
	return &Interpreter{client: client}
}

// ParsedWorkout is the structured interpretation of one message.
type ParsedWorkout struct {
	ExerciseName string
	Sets         int
	Reps         string
	Weight       float64 // kg, 0 = not mentioned
	Found        bool
}

const interpreterSystemPrompt = "You are a gym workout tracking assistant. " +
	"You extract exercise names, sets, reps and weights from user messages. " +
	"You understand both Spanish and English exercise names and abbreviated " +
	"formats like 'BP 3x10 @ 60kg'. You reply with JSON only."

// ParseWorkout interprets a message against the known exercises of a day.
// A reply the model mangles comes back as Found=false; only transport-level
// failures return an error.
func (i *Interpreter) ParseWorkout(text string, day int, knownExercises []string) (ParsedWorkout, error) {
	prompt := buildParsePrompt(text, day, knownExercises)

	reply, err := i.client.Chat([]Message{
		{Role: "system", Content: interpreterSystemPrompt},
		{Role: "user", Content: prompt},
	}, 0.1)
	if err != nil {
		return ParsedWorkout{}, fmt.Errorf("interpret workout: %w", err)
	}

	return parseReply(reply), nil
}

func buildParsePrompt(text string, day int, knownExercises []string) string {
	known := "No day selected yet"
	if len(knownExercises) > 0 {
		var sb strings.Builder
		for _, name := range knownExercises {
			sb.WriteString("- ")
			sb.WriteString(name)
			sb.WriteString("\n")
		}
		known = sb.String()
	}

	return fmt.Sprintf(`Parse this workout message and extract the following information:
- Exercise name (match it to known exercises)
- Number of sets
- Reps (can be a range like 8-12 or specific like 10)
- Weight (if mentioned, in kg)

Message: %q

Known exercises for today (Day %d):
%s

Respond in this exact JSON format:
{
    "exercise_name": "exact exercise name from the list",
    "sets": number,
    "reps": "range or number",
    "weight": number or null,
    "found": true/false
}`, text, day, known)
}

var jsonPattern = regexp.MustCompile(`(?s)\{.*?\}`)

// wireWorkout mirrors the model's JSON; reps may arrive as a string or a
// bare number and weight may be null.
type wireWorkout struct {
	ExerciseName string          `json:"exercise_name"`
	Sets         int             `json:"sets"`
	Reps         json.RawMessage `json:"reps"`
	Weight       *float64        `json:"weight"`
	Found        bool            `json:"found"`
}

// parseReply extracts the JSON object from the model's reply. Anything that
// fails to parse is treated as not found, never as an error.
func parseReply(reply string) ParsedWorkout {
	raw := jsonPattern.FindString(reply)
	if raw == "" {
		return ParsedWorkout{}
	}

	var wire wireWorkout
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return ParsedWorkout{}
	}
	if !wire.Found || wire.ExerciseName == "" || wire.Sets < 1 {
		return ParsedWorkout{}
	}

	parsed := ParsedWorkout{
		ExerciseName: wire.ExerciseName,
		Sets:         wire.Sets,
		Reps:         decodeReps(wire.Reps),
		Found:        true,
	}
	if wire.Weight != nil {
		parsed.Weight = *wire.Weight
	}
	return parsed
}

func decodeReps(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strings.TrimSuffix(fmt.Sprintf("%g", n), ".0")
	}
	return ""
}

// Encourage produces a short motivational message for a logged entry,
// falling back to a static line when the model is unavailable.
func (i *Interpreter) Encourage(entry models.WorkoutEntry) string {
	prompt := fmt.Sprintf(`The user just completed this exercise:
%s

Generate a short, encouraging message (1-2 sentences) to congratulate them.
Make it energetic and motivating!`, entry)

	reply, err := i.client.Chat([]Message{
		{Role: "user", Content: prompt},
	}, 0.8)
	if err != nil || strings.TrimSpace(reply) == "" {
		return fmt.Sprintf("Great work on completing %s! 💪", entry.ExerciseName)
	}
	return strings.TrimSpace(reply)
}
