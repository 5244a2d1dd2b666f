// Package duration converts ISO 8601 video durations (e.g. "PT1M30S",
// "PT2H15M30S") to and from whole seconds.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
)

var iso8601 = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// Parse converts an ISO 8601 period into a non-negative count of seconds.
// Malformed input (including an empty component list) yields ok=false, never
// an error. Callers must treat ok=false as "duration unknown", not zero.
func Parse(text string) (seconds int, ok bool) {
	matches := iso8601.FindStringSubmatch(text)
	if matches == nil {
		return 0, false
	}
	if matches[1] == "" && matches[2] == "" && matches[3] == "" {
		return 0, false
	}

	total := 0
	for i, unit := range []int{3600, 60, 1} {
		if matches[i+1] == "" {
			continue
		}
		n, err := strconv.Atoi(matches[i+1])
		if err != nil {
			return 0, false
		}
		total += n * unit
	}
	return total, true
}

// Format renders a seconds count as "H:MM:SS" when hours are present and
// "M:SS" otherwise. Zero and negative inputs render as "0:00".
func Format(seconds int) string {
	if seconds <= 0 {
		return "0:00"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%d:%02d", minutes, secs)
}
