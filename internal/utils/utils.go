package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseSetSpec parses "WEIGHTxREPS", e.g. "135x8" or "62.5x10".
func ParseSetSpec(spec string) (float64, int, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(spec)), "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid set %q, expected WEIGHTxREPS", spec)
	}

	weight, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid weight in %q: %w", spec, err)
	}
	reps, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid reps in %q: %w", spec, err)
	}

	return weight, reps, nil
}

// FormatWeight drops a trailing ".0" so 45 prints as "45" and 2.5 as "2.5".
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}
