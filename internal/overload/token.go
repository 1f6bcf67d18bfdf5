package overload

import (
	"fmt"
	"strings"
)

// Tokens are the opaque strings carried in Telegram callback data. Callback
// data is capped at 64 bytes, so exercise names are truncated when encoded;
// the flow resolves truncated names back through the catalog's substring
// matching. Encoding and decoding live here so the state machine itself
// never touches token strings.

// maxTokenName is the byte budget for a name embedded in a token. Long
// enough for every catalog name, short enough to fit under Telegram's
// 64-byte callback-data limit with the longest prefix.
const maxTokenName = 40

const (
	tokenMenu    = "menu"
	tokenDone    = "done"
	prefMuscle   = "muscle:"
	prefExercise = "exercise:"
	prefInc      = "inc:"
	prefDec      = "dec:"
	prefConfirm  = "confirm:"
)

// EncodeToken turns an action into its callback token.
func EncodeToken(a Action) string {
	switch a.State {
	case StateMuscleList:
		return tokenMenu
	case StateExerciseList:
		return prefMuscle + truncateName(a.Muscle)
	case StateExerciseAdjust:
		switch {
		case a.Delta > 0:
			return prefInc + truncateName(a.Exercise)
		case a.Delta < 0:
			return prefDec + truncateName(a.Exercise)
		default:
			return prefExercise + truncateName(a.Exercise)
		}
	case StateConfirmed:
		return prefConfirm + truncateName(a.Exercise)
	case StateCancelled:
		return tokenDone
	}
	return tokenMenu
}

// DecodeToken parses a callback token back into an action. Malformed or
// unrecognized tokens return an error; they must never crash the handler.
func DecodeToken(token string) (Action, error) {
	switch {
	case token == tokenMenu:
		return Action{State: StateMuscleList}, nil
	case token == tokenDone:
		return Action{State: StateCancelled}, nil
	case strings.HasPrefix(token, prefMuscle):
		name := strings.TrimPrefix(token, prefMuscle)
		if name == "" {
			return Action{}, fmt.Errorf("empty muscle in token %q", token)
		}
		return Action{State: StateExerciseList, Muscle: name}, nil
	case strings.HasPrefix(token, prefExercise):
		name := strings.TrimPrefix(token, prefExercise)
		if name == "" {
			return Action{}, fmt.Errorf("empty exercise in token %q", token)
		}
		return Action{State: StateExerciseAdjust, Exercise: name}, nil
	case strings.HasPrefix(token, prefInc):
		name := strings.TrimPrefix(token, prefInc)
		if name == "" {
			return Action{}, fmt.Errorf("empty exercise in token %q", token)
		}
		return Action{State: StateExerciseAdjust, Exercise: name, Delta: 1}, nil
	case strings.HasPrefix(token, prefDec):
		name := strings.TrimPrefix(token, prefDec)
		if name == "" {
			return Action{}, fmt.Errorf("empty exercise in token %q", token)
		}
		return Action{State: StateExerciseAdjust, Exercise: name, Delta: -1}, nil
	case strings.HasPrefix(token, prefConfirm):
		name := strings.TrimPrefix(token, prefConfirm)
		if name == "" {
			return Action{}, fmt.Errorf("empty exercise in token %q", token)
		}
		return Action{State: StateConfirmed, Exercise: name}, nil
	}
	return Action{}, fmt.Errorf("unknown token %q", token)
}

// truncateName cuts a name to maxTokenName bytes without splitting a rune.
// No ellipsis: the resolver needs a clean substring of the original name.
func truncateName(s string) string {
	if len(s) <= maxTokenName {
		return s
	}
	cut := 0
	for i := range s {
		if i > maxTokenName {
			break
		}
		cut = i
	}
	return s[:cut]
}
