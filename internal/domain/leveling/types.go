package leveling

// Progress is a level derived from raw experience.
type Progress struct {
	Level      float64 `json:"level"`
	Experience float64 `json:"experience"`
}

// Weight is the ranking score of one category. Weight is bounded by the
// category cap; Overflow keeps growing with experience banked past it.
type Weight struct {
	Weight   float64 `json:"weight"`
	Overflow float64 `json:"weight_overflow"`
}

func (w Weight) Add(o Weight) Weight {
	return Weight{Weight: w.Weight + o.Weight, Overflow: w.Overflow + o.Overflow}
}

// Total is the value used for cross-player ranking.
func (w Weight) Total() float64 {
	return w.Weight + w.Overflow
}
