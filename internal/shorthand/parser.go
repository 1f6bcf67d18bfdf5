// Package shorthand parses compact one-line workout notation like
// "Press banca 3x10x60" without calling the language model. Anything it
// cannot parse is handed to the model instead.
package shorthand

import (
	"regexp"
	"strconv"
	"strings"
)

// Result is one parsed workout line.
type Result struct {
	Name   string
	Sets   int
	Reps   string // plain count or a range like "8-12"
	Weight float64
}

// Formats, tried in order:
//
//	Press banca 3x10x60      (x-separated, weight optional)
//	Press banca 3x8-12 @ 60kg
//	Dominadas 4/10 20        (slash-separated, weight optional)
//	Sentadilla 4 10 60       (bare numbers)
//
// Both the Latin x and the Cyrillic х are accepted as separators since
// phone keyboards swap them silently.
var (
	patternX     = regexp.MustCompile(`^(.+?)\s+(\d+)\s*[xх]\s*(\d+(?:-\d+)?)(?:\s*[xх]\s*(\d+(?:[.,]\d+)?))?\s*$`)
	patternAtKg  = regexp.MustCompile(`^(.+?)\s+(\d+)\s*[xх]\s*(\d+(?:-\d+)?)\s*@?\s*(\d+(?:[.,]\d+)?)\s*(?:kg|кг)?\s*$`)
	patternSlash = regexp.MustCompile(`^(.+?)\s+(\d+)/(\d+)(?:\s+(\d+(?:[.,]\d+)?))?\s*$`)
)

// Parse attempts to read a single shorthand workout line. It returns false
// for anything that needs the language model: prose, multi-line input, or
// text with no recognizable sets/reps shape.
func Parse(text string) (Result, bool) {
	line := strings.TrimSpace(text)
	if line == "" || strings.Contains(line, "\n") {
		return Result{}, false
	}

	if matches := patternSlash.FindStringSubmatch(line); matches != nil {
		return buildResult(matches[1], matches[2], matches[3], matches[4])
	}
	if matches := patternX.FindStringSubmatch(line); matches != nil {
		return buildResult(matches[1], matches[2], matches[3], matches[4])
	}
	if matches := patternAtKg.FindStringSubmatch(line); matches != nil {
		return buildResult(matches[1], matches[2], matches[3], matches[4])
	}
	return parseBareNumbers(line)
}

func buildResult(name, sets, reps, weight string) (Result, bool) {
	r := Result{
		Name: strings.TrimSpace(name),
		Reps: reps,
	}
	if r.Name == "" {
		return Result{}, false
	}

	var err error
	r.Sets, err = strconv.Atoi(sets)
	if err != nil || r.Sets < 1 {
		return Result{}, false
	}
	if weight != "" {
		r.Weight, err = strconv.ParseFloat(strings.Replace(weight, ",", ".", 1), 64)
		if err != nil {
			return Result{}, false
		}
	}
	return r, true
}

// parseBareNumbers reads "Name 4 10 60": a name followed by two or three
// trailing numbers (sets, reps, optional weight).
func parseBareNumbers(line string) (Result, bool) {
	parts := strings.Fields(line)
	if len(parts) < 3 {
		return Result{}, false
	}

	numIdx := len(parts)
	for numIdx > 0 {
		candidate := strings.Replace(parts[numIdx-1], ",", ".", 1)
		if _, err := strconv.ParseFloat(candidate, 64); err != nil {
			break
		}
		numIdx--
	}

	nums := parts[numIdx:]
	if len(nums) < 2 || len(nums) > 3 || numIdx == 0 {
		return Result{}, false
	}

	weight := ""
	if len(nums) == 3 {
		weight = nums[2]
	}
	return buildResult(strings.Join(parts[:numIdx], " "), nums[0], nums[1], weight)
}
