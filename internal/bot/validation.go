package bot

import (
	"fmt"
	"strconv"
	"strings"
)

// parseDayArg validates a day argument to the 1-4 range.
func parseDayArg(arg string) (int, error) {
	day, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("please provide a valid day number (1-4)")
	}
	if day < 1 || day > 4 {
		return 0, fmt.Errorf("please choose a day between 1 and 4")
	}
	return day, nil
}

// parseWeekArg validates a week argument to the 1-6 range.
func parseWeekArg(arg string) (int, error) {
	week, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("please provide a valid week number (1-6)")
	}
	if week < 1 || week > 6 {
		return 0, fmt.Errorf("please choose a week between 1 and 6")
	}
	return week, nil
}
