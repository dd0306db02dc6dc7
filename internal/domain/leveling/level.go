package leveling

import "math"

// LevelOf converts accumulated experience into a fractional level. The
// integer part counts completed levels and the fraction is the progress
// through the level currently being earned. The result never exceeds
// maxLevel.
func LevelOf(experience float64, table Table, maxLevel float64) float64 {
	if experience <= 0 {
		return 0
	}
	remaining := experience
	for i, required := range table {
		remaining -= required
		if remaining < 0 {
			return math.Min(float64(i)+(1-math.Abs(remaining)/required), maxLevel)
		}
	}
	return math.Min(float64(len(table)), maxLevel)
}

// ExperienceFor returns the total experience needed to reach level, summing
// at most the whole table.
func ExperienceFor(level int, table Table) float64 {
	var total float64
	for i := 0; i < level && i < len(table); i++ {
		total += table[i]
	}
	return total
}
