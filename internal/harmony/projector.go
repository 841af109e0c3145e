package harmony

import (
	"fmt"
	"math"
	"slices"
)

// Input is the full set of parameters for one palette computation.
type Input struct {
	BaseHue   float64
	Intensity float64
	Space     ColorSpace
	Enabled   CategorySet
}

// InNominalRange reports whether the intensity lies in the colour space's
// nominal range. It is advisory; Project accepts any finite intensity.
func (in Input) InNominalRange() bool {
	lo, hi := in.Space.NominalRange()
	return in.Intensity >= lo && in.Intensity <= hi
}

// Validate checks the enumerated and numeric fields of the input.
func (in Input) Validate() error {
	if !in.Space.Valid() {
		return &InvalidEnumError{Kind: "colour space", Value: string(in.Space)}
	}
	if err := in.Enabled.validate(); err != nil {
		return err
	}
	if math.IsNaN(in.BaseHue) || math.IsInf(in.BaseHue, 0) {
		return fmt.Errorf("%w: base hue %v", ErrNonFinite, in.BaseHue)
	}
	if math.IsNaN(in.Intensity) || math.IsInf(in.Intensity, 0) {
		return fmt.Errorf("%w: %s %v", ErrNonFinite, in.Space.IntensityName(), in.Intensity)
	}
	return nil
}

// Swatch is one resolved colour of a palette.
type Swatch struct {
	Identifiers []string `json:"identifiers"`
	Label       string   `json:"label"`
	Offset      int      `json:"offset"`
	Hue         float64  `json:"hue"`
	Color       string   `json:"color"`
}

// Project filters entries down to those in any enabled category and resolves
// each into a swatch, keeping declaration order. An entry in several enabled
// categories yields a single swatch. An invalid input returns no swatches.
func Project(entries Entries, in Input) ([]Swatch, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	swatches := make([]Swatch, 0, len(entries))
	for _, e := range entries {
		if !e.In(in.Enabled) {
			continue
		}
		hue := NormalizeHue(in.BaseHue + float64(e.AngleOffset))
		color, err := FormatColor(in.Space, hue, in.Intensity)
		if err != nil {
			return nil, err
		}
		swatches = append(swatches, Swatch{
			Identifiers: slices.Clone(e.Identifiers),
			Label:       e.Label,
			Offset:      e.AngleOffset,
			Hue:         hue,
			Color:       color,
		})
	}
	return swatches, nil
}

// ProjectCatalog runs Project over the built-in catalog.
func ProjectCatalog(in Input) ([]Swatch, error) {
	return Project(catalog, in)
}
