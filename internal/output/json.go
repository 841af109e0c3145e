package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jmylchreest/huewheel/internal/harmony"
)

// paletteJSON is the JSON document layout.
type paletteJSON struct {
	Space     string           `json:"space"`
	BaseHue   float64          `json:"base_hue"`
	Intensity float64          `json:"intensity"`
	Harmonies []string         `json:"harmonies"`
	Swatches  []harmony.Swatch `json:"swatches"`
}

func renderJSON(w io.Writer, p Palette) error {
	doc := paletteJSON{
		Space:     p.Input.Space.String(),
		BaseHue:   p.Input.BaseHue,
		Intensity: p.Input.Intensity,
		Harmonies: make([]string, 0, p.Input.Enabled.Len()),
		Swatches:  p.Swatches,
	}
	for _, c := range p.Input.Enabled.Sorted() {
		doc.Harmonies = append(doc.Harmonies, c.String())
	}
	if doc.Swatches == nil {
		doc.Swatches = []harmony.Swatch{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to convert to JSON: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}
