package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/aymerick/douceur/parser"
	"github.com/google/go-cmp/cmp"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/harmony"
)

func project(t *testing.T, space harmony.ColorSpace, hue, intensity float64, categories ...harmony.Category) Palette {
	t.Helper()
	in := harmony.Input{
		BaseHue:   hue,
		Intensity: intensity,
		Space:     space,
		Enabled:   harmony.NewCategorySet(categories...),
	}
	swatches, err := harmony.ProjectCatalog(in)
	if err != nil {
		t.Fatalf("ProjectCatalog() error = %v", err)
	}
	return Palette{Input: in, Swatches: swatches}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{input: "text", want: FormatText},
		{input: "JSON", want: FormatJSON},
		{input: " css ", want: FormatCSS},
		{input: "plain", want: FormatPlain},
		{input: "yaml", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderPlain(t *testing.T) {
	p := project(t, harmony.SpaceHSL, 200, 40, harmony.CategoryPrimary, harmony.CategoryComplementary)

	var buf bytes.Buffer
	if err := Render(&buf, FormatPlain, p, DefaultOptions()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "hsl(200, 40%, 50%)\nhsl(20, 40%, 50%)\n"
	if buf.String() != want {
		t.Errorf("Render() = %q, want %q", buf.String(), want)
	}
}

func TestRenderJSON(t *testing.T) {
	p := project(t, harmony.SpaceOKLCH, 10, 0.2, harmony.CategoryTriadic, harmony.CategoryPrimary)

	var buf bytes.Buffer
	if err := Render(&buf, FormatJSON, p, DefaultOptions()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var doc paletteJSON
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if doc.Space != "oklch" || doc.BaseHue != 10 || doc.Intensity != 0.2 {
		t.Errorf("unexpected header fields: %+v", doc)
	}
	if diff := cmp.Diff([]string{"primary", "triadic"}, doc.Harmonies); diff != "" {
		t.Errorf("harmonies mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(p.Swatches, doc.Swatches); diff != "" {
		t.Errorf("swatches mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderJSONEmpty(t *testing.T) {
	p := project(t, harmony.SpaceOKLCH, 10, 0.2)

	var buf bytes.Buffer
	if err := Render(&buf, FormatJSON, p, DefaultOptions()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"swatches": []`) {
		t.Errorf("expected empty swatch array, got:\n%s", buf.String())
	}
}

func TestRenderCSSRoundTrips(t *testing.T) {
	for _, space := range harmony.ColorSpaces() {
		t.Run(string(space), func(t *testing.T) {
			intensity := 0.15
			if space == harmony.SpaceHSL {
				intensity = 65
			}
			p := project(t, space, -42.5, intensity, harmony.Categories()...)

			opts := DefaultOptions()
			opts.Prefix = "hw-"
			var buf bytes.Buffer
			if err := Render(&buf, FormatCSS, p, opts); err != nil {
				t.Fatalf("Render() error = %v", err)
			}

			sheet, err := parser.Parse(buf.String())
			if err != nil {
				t.Fatalf("css did not parse: %v\n%s", err, buf.String())
			}
			if len(sheet.Rules) != 1 {
				t.Fatalf("expected one rule, got %d", len(sheet.Rules))
			}
			rule := sheet.Rules[0]
			if len(rule.Selectors) != 1 || rule.Selectors[0] != ":root" {
				t.Errorf("unexpected selectors: %v", rule.Selectors)
			}

			got := make(map[string]string, len(rule.Declarations))
			for _, d := range rule.Declarations {
				got[d.Property] = d.Value
			}
			want := make(map[string]string)
			for _, s := range p.Swatches {
				for _, id := range s.Identifiers {
					want["--hw-"+id] = s.Color
				}
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("declarations mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderCSSInvalidOptions(t *testing.T) {
	p := project(t, harmony.SpaceHSL, 0, 50, harmony.CategoryPrimary)
	tests := []struct {
		name string
		opts Options
	}{
		{name: "empty selector", opts: Options{Selector: "  "}},
		{name: "selector with braces", opts: Options{Selector: "a { color: red }"}},
		{name: "prefix with spaces", opts: Options{Selector: ":root", Prefix: "my prefix"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Render(&bytes.Buffer{}, FormatCSS, p, tt.opts); err == nil {
				t.Error("Render() = nil, want error")
			}
		})
	}
}

func TestRenderText(t *testing.T) {
	colour.SetEnabled(false)
	p := project(t, harmony.SpaceOKLCH, 200, 0.15, harmony.CategoryAnalogous, harmony.CategoryTetradic)

	var buf bytes.Buffer
	if err := Render(&buf, FormatText, p, DefaultOptions()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"OKLCH palette, base hue 200, chroma 0.15",
		"analagous-3 tetradic-1",
		"Analogous 3 / Tetradic 1",
		"oklch(70% 0.15 290)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text output missing %q:\n%s", want, out)
		}
	}
	if strings.Count(out, "analagous-3") != 1 {
		t.Errorf("dual-membership entry rendered more than once:\n%s", out)
	}
}

func TestRenderTextWithPreview(t *testing.T) {
	colour.SetEnabled(false)
	p := project(t, harmony.SpaceHSL, 0, 100, harmony.CategoryPrimary)

	opts := DefaultOptions()
	opts.Preview = true
	var buf bytes.Buffer
	if err := Render(&buf, FormatText, p, opts); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	// header line, table header, separator, row
	// the hue is centred in the preview block, then the offset column follows
	if !strings.HasPrefix(lines[3], "   0      0") {
		t.Errorf("expected preview column before row, got %q", lines[3])
	}
	if !strings.Contains(lines[3], "#ff0000") {
		t.Errorf("expected sRGB hex for pure red, got %q", lines[3])
	}
}

func TestRenderTextEmpty(t *testing.T) {
	colour.SetEnabled(false)
	p := project(t, harmony.SpaceHSL, 0, 50)

	var buf bytes.Buffer
	if err := Render(&buf, FormatText, p, DefaultOptions()); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No harmonies selected.") {
		t.Errorf("unexpected output for empty palette:\n%s", buf.String())
	}
}

func TestRenderTextMarksOutOfGamut(t *testing.T) {
	colour.SetEnabled(false)

	tests := []struct {
		name      string
		space     harmony.ColorSpace
		hue       float64
		intensity float64
		wantMark  bool
	}{
		{name: "oklch high chroma", space: harmony.SpaceOKLCH, hue: 150, intensity: 0.4, wantMark: true},
		{name: "hsl oversaturated", space: harmony.SpaceHSL, hue: 0, intensity: 140, wantMark: true},
		{name: "hsl nominal", space: harmony.SpaceHSL, hue: 0, intensity: 100, wantMark: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := project(t, tt.space, tt.hue, tt.intensity, harmony.CategoryPrimary)

			var buf bytes.Buffer
			if err := Render(&buf, FormatText, p, DefaultOptions()); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			out := buf.String()
			if got := strings.Contains(out, "outside sRGB"); got != tt.wantMark {
				t.Errorf("footnote present = %v, want %v:\n%s", got, tt.wantMark, out)
			}
			if tt.space == harmony.SpaceHSL && strings.Contains(out, "#ff0000*") != tt.wantMark {
				t.Errorf("hex mark mismatch, want marked = %v:\n%s", tt.wantMark, out)
			}
		})
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	p := project(t, harmony.SpaceHSL, 0, 50, harmony.CategoryPrimary)
	if err := Render(&bytes.Buffer{}, Format("yaml"), p, DefaultOptions()); err == nil {
		t.Error("Render() = nil, want error")
	}
}
