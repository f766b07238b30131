package render

import (
	"math"
	"strconv"
)

// smallMagnitude is the threshold below which numbers keep two significant
// digits instead of two decimals.
const smallMagnitude = 0.1

// FormatNumber renders a distance or weight for display:
//
//   - +Inf as "∞",
//   - whole numbers without a fractional part ("3", not "3.0"),
//   - |x| ≤ 0.1 with two significant digits ("0.013"),
//   - anything else rounded to two decimals ("2.35").
func FormatNumber(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "∞"
	case math.IsInf(x, -1):
		return "-∞"
	case math.IsNaN(x):
		return "NaN"
	case x == math.Trunc(x):
		return strconv.FormatFloat(x, 'f', -1, 64)
	case math.Abs(x) <= smallMagnitude:
		return strconv.FormatFloat(x, 'g', 2, 64)
	default:
		return strconv.FormatFloat(math.Round(x*100)/100, 'f', -1, 64)
	}
}

// FormatNode renders an optional node label; "" becomes "None".
func FormatNode(label string) string {
	if label == "" {
		return "None"
	}
	return label
}
