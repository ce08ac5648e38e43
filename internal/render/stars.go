package render

import (
	"math"
	"strings"
)

// Stars maps an average rating in [0,5] to a fixed five-glyph string,
// filled stars first. Ties round half up, so 3.5 shows four stars.
func Stars(rating float64) string {
	filled := int(math.Floor(rating + 0.5))
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}
