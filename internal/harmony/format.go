package harmony

import (
	"fmt"
	"math"
	"strconv"
)

// NormalizeHue maps any angle in degrees onto [0, 360). Negative angles wrap
// the mathematical way, so -10 becomes 350.
func NormalizeHue(deg float64) float64 {
	h := math.Mod(deg, 360)
	if h < 0 {
		h += 360
	}
	// Adding 360 to a tiny negative remainder can round up to 360.
	if h >= 360 || h == 0 {
		return 0
	}
	return h
}

// FormatColor writes the CSS colour function for hue under the given space.
func FormatColor(space ColorSpace, hue, intensity float64) (string, error) {
	switch space {
	case SpaceOKLCH:
		return fmt.Sprintf("oklch(%s%% %s %s)",
			formatNumber(OKLCHLightness*100), formatNumber(intensity), formatHue(hue)), nil
	case SpaceHSL:
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)",
			formatHue(hue), formatNumber(intensity), formatNumber(HSLLightness)), nil
	default:
		return "", &InvalidEnumError{Kind: "colour space", Value: string(space)}
	}
}

// roundLimit bounds the magnitudes rounded to four decimals. Scaling larger
// values by 1e4 could overflow to infinity.
const roundLimit = 1e11

// formatNumber rounds to four decimal places and prints the shortest form.
// Values too large to round, and non-zero values that would round to zero,
// are printed as given.
func formatNumber(v float64) string {
	if v == 0 {
		return "0" // also drops the sign of -0
	}
	r := v
	if math.Abs(v) < roundLimit {
		if r = math.Round(v*1e4) / 1e4; r == 0 {
			r = v
		}
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// formatHue prints a hue in [0, 360). A hue just below 360 that would round
// up to it is printed as 0.
func formatHue(h float64) string {
	h = NormalizeHue(h)
	if math.Round(h*1e4)/1e4 >= 360 {
		h = 0
	}
	return formatNumber(h)
}
