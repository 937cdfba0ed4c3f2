package algebra

import (
	"math"

	"golang.org/x/exp/constraints"
)

// roundHalfUp rounds x to decimals places, ties away from zero.
// Non-finite values and values whose scaled form overflows are returned unchanged.
func roundHalfUp[F constraints.Float](x F, decimals int) F {
	v := float64(x)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return x
	}
	scale := math.Pow(10, float64(decimals))
	scaled := v * scale
	if math.IsInf(scaled, 0) {
		return x
	}
	r := math.Floor(math.Abs(scaled) + 0.5)
	if scaled < 0 {
		r = -r
	}
	return F(r / scale)
}
