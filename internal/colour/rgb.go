// Package colour converts harmony swatches into sRGB approximations for
// terminal previews and hex hints.
package colour

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB represents a colour in 8-bit sRGB.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// FromHSL converts HSL to sRGB.
// h is hue in degrees, s and l are percentages (0-100). Saturation or
// lightness beyond that range can leave sRGB; the second return value is then
// false and the returned RGB is clamped.
func FromHSL(h, s, l float64) (RGB, bool) {
	col := colorful.Hsl(h, s/100, l/100)
	return fromColorful(col), col.IsValid()
}

// FromOKLCH converts OKLCH to sRGB.
// l is lightness (0-1), c is chroma, h is hue in degrees.
// The second return value is false when the colour lies outside sRGB, in
// which case the returned RGB is only an approximation for display.
func FromOKLCH(l, c, h float64) (RGB, bool) {
	col := colorful.OkLch(l, c, h)
	return fromColorful(col), col.IsValid()
}

// fromColorful clamps to the displayable range and quantises to 8 bits.
func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// isLight reports whether dark text reads better than light text on c.
func isLight(c RGB) bool {
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	l, _, _ := col.OkLab()
	return l > 0.65
}
