package harmony

import "strings"

// ColorSpace selects how a resolved hue is written out and which intensity
// parameter applies.
type ColorSpace string

const (
	// SpaceOKLCH formats swatches as oklch(L C H); intensity is chroma.
	SpaceOKLCH ColorSpace = "oklch"
	// SpaceHSL formats swatches as hsl(H, S%, L%); intensity is saturation.
	SpaceHSL ColorSpace = "hsl"
)

// Fixed lightness used when formatting. Only hue and intensity are inputs.
const (
	// OKLCHLightness is the OKLCH lightness in [0, 1], written as a percentage.
	OKLCHLightness = 0.70
	// HSLLightness is the HSL lightness percentage.
	HSLLightness = 50.0
)

// ColorSpaces returns every supported colour space.
func ColorSpaces() []ColorSpace {
	return []ColorSpace{SpaceOKLCH, SpaceHSL}
}

// Valid reports whether cs is a supported colour space.
func (cs ColorSpace) Valid() bool {
	return cs == SpaceOKLCH || cs == SpaceHSL
}

// String returns the colour space name.
func (cs ColorSpace) String() string {
	return string(cs)
}

// IntensityName names the intensity parameter for the colour space.
func (cs ColorSpace) IntensityName() string {
	switch cs {
	case SpaceOKLCH:
		return "chroma"
	case SpaceHSL:
		return "saturation"
	default:
		return "intensity"
	}
}

// NominalRange returns the intensity range the colour space is designed for:
// a chroma of 0.1 to 0.3 for OKLCH and a saturation percentage for HSL.
// Values outside it are still accepted.
func (cs ColorSpace) NominalRange() (lo, hi float64) {
	switch cs {
	case SpaceOKLCH:
		return 0.1, 0.3
	case SpaceHSL:
		return 0, 100
	default:
		return 0, 0
	}
}

// ParseColorSpace parses a colour space name case-insensitively.
func ParseColorSpace(s string) (ColorSpace, error) {
	cs := ColorSpace(strings.ToLower(strings.TrimSpace(s)))
	if !cs.Valid() {
		return "", &InvalidEnumError{Kind: "colour space", Value: s}
	}
	return cs, nil
}
