package humanize

import (
	"fmt"
	"math"
	"strings"
)

type unit struct {
	singular string
	plural   string
}

var units = []unit{
	{"a year", "years"},
	{"a month", "months"},
	{"a day", "days"},
	{"an hour", "hours"},
	{"a minute", "minutes"},
	{"a second", "seconds"},
}

// Duration renders seconds as text such as "8 minutes and 2 seconds" or
// "a day, 3 hours, 46 minutes and 39 seconds". Units that are zero are left
// out; zero or negative input renders as an empty string.
func Duration(seconds float64) string {
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return ""
	}

	// Months are 30 days and years 12 months; the text is for reading, not
	// calendar math.
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24
	months := days / 30
	years := months / 12

	values := []float64{
		math.Floor(years),
		math.Floor(math.Mod(months, 12)),
		math.Floor(math.Mod(days, 30)),
		math.Floor(math.Mod(hours, 24)),
		math.Floor(math.Mod(minutes, 60)),
		math.Floor(math.Mod(seconds, 60)),
	}

	parts := make([]string, 0, len(values))
	for i, v := range values {
		switch {
		case v <= 0:
			continue
		case v == 1:
			parts = append(parts, units[i].singular)
		default:
			parts = append(parts, fmt.Sprintf("%d %s", int64(v), units[i].plural))
		}
	}

	if len(parts) < 2 {
		return strings.Join(parts, "")
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " and " + parts[len(parts)-1]
}
