package output

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"
)

//go:embed css.tmpl
var cssTemplate string

var cssTmpl = template.Must(template.New("css").Parse(cssTemplate))

type cssProperty struct {
	Name  string
	Value string
}

type cssData struct {
	Space         string
	BaseHue       string
	IntensityName string
	Intensity     string
	Selector      string
	Properties    []cssProperty
}

// renderCSS writes one custom property per swatch identifier, so an entry
// that serves several harmonies is reachable under each of its names.
func renderCSS(w io.Writer, p Palette, opts Options) error {
	data := cssData{
		Space:         p.Input.Space.String(),
		BaseHue:       strconv.FormatFloat(p.Input.BaseHue, 'f', -1, 64),
		IntensityName: p.Input.Space.IntensityName(),
		Intensity:     strconv.FormatFloat(p.Input.Intensity, 'f', -1, 64),
		Selector:      strings.TrimSpace(opts.Selector),
	}
	for _, s := range p.Swatches {
		for _, id := range s.Identifiers {
			data.Properties = append(data.Properties, cssProperty{
				Name:  opts.Prefix + id,
				Value: s.Color,
			})
		}
	}

	var buf bytes.Buffer
	if err := cssTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("failed to execute css template: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write css: %w", err)
	}
	return nil
}
