package output

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jmylchreest/huewheel/internal/colour"
)

const identifiersColumnWidth = 24

func renderText(w io.Writer, p Palette, opts Options) error {
	in := p.Input
	header := fmt.Sprintf("%s palette, base hue %s, %s %s",
		strings.ToUpper(in.Space.String()),
		formatDegrees(in.BaseHue),
		in.Space.IntensityName(),
		strconv.FormatFloat(in.Intensity, 'f', -1, 64))
	if _, err := fmt.Fprintln(w, colour.Heading(header)); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if len(p.Swatches) == 0 {
		_, err := fmt.Fprintln(w, "No harmonies selected.")
		return err
	}

	table := NewTable([]string{"Offset", "Hue", "Identifiers", "Label", "Colour", "sRGB"})
	table.SetColumnMaxWidth(2, identifiersColumnWidth)
	width := opts.PreviewWidth
	if opts.Preview {
		if width <= 0 {
			width = DefaultOptions().PreviewWidth
		}
		table.SetPrefixWidth(width)
	}

	clipped := false
	for _, s := range p.Swatches {
		rgb, inGamut := SwatchRGB(in, s)
		hex := rgb.Hex()
		if !inGamut {
			hex += "*"
			clipped = true
		}
		hue := formatDegrees(s.Hue)
		if hue == "360" {
			hue = "0"
		}
		row := []string{
			strconv.Itoa(s.Offset),
			hue,
			strings.Join(s.Identifiers, " "),
			s.Label,
			s.Color,
			hex,
		}
		if opts.Preview {
			table.AddRowWithPrefix(colour.PreviewWithText(rgb, hue, width), row)
		} else {
			table.AddRow(row)
		}
	}

	if _, err := io.WriteString(w, table.Render()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	if clipped {
		if _, err := fmt.Fprintln(w, "* outside sRGB; preview is approximate"); err != nil {
			return fmt.Errorf("failed to write footnote: %w", err)
		}
	}
	return nil
}

func formatDegrees(deg float64) string {
	return strconv.FormatFloat(math.Round(deg*100)/100, 'f', -1, 64)
}
