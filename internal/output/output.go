// Package output renders computed palettes as text tables, plain colour
// lists, JSON documents or CSS custom properties.
package output

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/harmony"
)

// Format is an output format name.
type Format string

const (
	// FormatText renders a table, optionally with colour previews.
	FormatText Format = "text"
	// FormatPlain renders one colour string per line.
	FormatPlain Format = "plain"
	// FormatJSON renders an indented JSON document.
	FormatJSON Format = "json"
	// FormatCSS renders a rule of CSS custom properties.
	FormatCSS Format = "css"
)

// Formats returns the supported output formats.
func Formats() []Format {
	return []Format{FormatText, FormatPlain, FormatJSON, FormatCSS}
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Formats() {
		if f == valid {
			return f, nil
		}
	}
	return "", fmt.Errorf("unsupported format: %s (supported: %v)", s, Formats())
}

// Palette is a computed palette together with the input it came from.
type Palette struct {
	Input    harmony.Input
	Swatches []harmony.Swatch
}

// Options control rendering.
type Options struct {
	// Preview prefixes text rows with a colour block.
	Preview bool
	// PreviewWidth is the block width in cells; 0 uses the default.
	PreviewWidth int
	// Selector is the CSS selector wrapping the custom properties.
	Selector string
	// Prefix is prepended to every CSS custom property name.
	Prefix string
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		PreviewWidth: 8,
		Selector:     ":root",
	}
}

var propertyPrefixPattern = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// Validate checks the CSS related options.
func (o Options) Validate() error {
	selector := strings.TrimSpace(o.Selector)
	if selector == "" {
		return fmt.Errorf("css selector must not be empty")
	}
	if strings.ContainsAny(selector, "{};") {
		return fmt.Errorf("invalid css selector: %q", o.Selector)
	}
	if !propertyPrefixPattern.MatchString(o.Prefix) {
		return fmt.Errorf("invalid css property prefix: %q (letters, digits, '-' and '_' only)", o.Prefix)
	}
	return nil
}

// Render writes p to w in the given format.
func Render(w io.Writer, format Format, p Palette, opts Options) error {
	switch format {
	case FormatText:
		return renderText(w, p, opts)
	case FormatPlain:
		return renderPlain(w, p)
	case FormatJSON:
		return renderJSON(w, p)
	case FormatCSS:
		if err := opts.Validate(); err != nil {
			return err
		}
		return renderCSS(w, p, opts)
	default:
		return fmt.Errorf("unsupported format: %s (supported: %v)", format, Formats())
	}
}

// SwatchRGB approximates a swatch in sRGB for previews. The second value is
// false when the colour lies outside sRGB.
func SwatchRGB(in harmony.Input, s harmony.Swatch) (colour.RGB, bool) {
	switch in.Space {
	case harmony.SpaceHSL:
		return colour.FromHSL(s.Hue, in.Intensity, harmony.HSLLightness)
	default:
		return colour.FromOKLCH(harmony.OKLCHLightness, in.Intensity, s.Hue)
	}
}

func renderPlain(w io.Writer, p Palette) error {
	for _, s := range p.Swatches {
		if _, err := fmt.Fprintln(w, s.Color); err != nil {
			return fmt.Errorf("failed to write colour: %w", err)
		}
	}
	return nil
}
