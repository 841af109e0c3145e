package colour

import (
	"strings"
	"testing"
)

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{name: "red", rgb: RGB{R: 255, G: 0, B: 0}, want: "#ff0000"},
		{name: "green", rgb: RGB{R: 0, G: 255, B: 0}, want: "#00ff00"},
		{name: "blue", rgb: RGB{R: 0, G: 0, B: 255}, want: "#0000ff"},
		{name: "grey", rgb: RGB{R: 128, G: 128, B: 128}, want: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFromHSL(t *testing.T) {
	tests := []struct {
		name        string
		h, s, l     float64
		want        RGB
		wantInGamut bool
	}{
		{name: "red", h: 0, s: 100, l: 50, want: RGB{R: 255, G: 0, B: 0}, wantInGamut: true},
		{name: "green", h: 120, s: 100, l: 50, want: RGB{R: 0, G: 255, B: 0}, wantInGamut: true},
		{name: "blue", h: 240, s: 100, l: 50, want: RGB{R: 0, G: 0, B: 255}, wantInGamut: true},
		{name: "white", h: 0, s: 0, l: 100, want: RGB{R: 255, G: 255, B: 255}, wantInGamut: true},
		{name: "black", h: 0, s: 0, l: 0, want: RGB{R: 0, G: 0, B: 0}, wantInGamut: true},
		{name: "oversaturated red", h: 0, s: 140, l: 50, want: RGB{R: 255, G: 0, B: 0}, wantInGamut: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, inGamut := FromHSL(tt.h, tt.s, tt.l)
			if got != tt.want {
				t.Errorf("FromHSL(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.want)
			}
			if inGamut != tt.wantInGamut {
				t.Errorf("FromHSL(%v, %v, %v) in gamut = %v, want %v", tt.h, tt.s, tt.l, inGamut, tt.wantInGamut)
			}
		})
	}
}

func TestFromOKLCH(t *testing.T) {
	// Achromatic mid grey sits well inside sRGB.
	grey, ok := FromOKLCH(0.7, 0, 0)
	if !ok {
		t.Error("expected achromatic colour to be in gamut")
	}
	if absDiff(grey.R, grey.G) > 1 || absDiff(grey.G, grey.B) > 1 {
		t.Errorf("expected neutral grey, got %+v", grey)
	}

	// A chroma of 0.4 at this lightness is beyond sRGB.
	if _, ok := FromOKLCH(0.7, 0.4, 150); ok {
		t.Error("expected high chroma colour to be out of gamut")
	}
}

func TestPreviewWithTextDisabled(t *testing.T) {
	SetEnabled(false)
	t.Cleanup(func() { SetEnabled(false) })

	if got := PreviewWithText(RGB{R: 255}, "", 4); got != "    " {
		t.Errorf("PreviewWithText() = %q, want four spaces", got)
	}
	if strings.Contains(PreviewWithText(RGB{}, "hi", 6), "\x1b[") {
		t.Error("PreviewWithText() emitted escape codes while disabled")
	}
}

func TestPreviewWithTextEnabled(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	SetEnabled(true)
	t.Cleanup(func() { SetEnabled(false) })

	tests := []struct {
		name   string
		rgb    RGB
		wantBg string
		wantFg string
	}{
		{name: "dark background", rgb: RGB{R: 0, G: 0, B: 40}, wantBg: "48;2;0;0;40", wantFg: "38;2;255;255;255"},
		{name: "light background", rgb: RGB{R: 255, G: 255, B: 255}, wantBg: "48;2;255;255;255", wantFg: "38;2;0;0;0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PreviewWithText(tt.rgb, "120", 0)
			if !strings.Contains(got, tt.wantBg) {
				t.Errorf("PreviewWithText() = %q, missing background %s", got, tt.wantBg)
			}
			if !strings.Contains(got, tt.wantFg) {
				t.Errorf("PreviewWithText() = %q, missing foreground %s", got, tt.wantFg)
			}
			if !strings.Contains(got, "  120   ") {
				t.Errorf("PreviewWithText() = %q, expected text centred in default width", got)
			}
		})
	}
}

func TestPreviewWithText(t *testing.T) {
	SetEnabled(false)

	tests := []struct {
		text  string
		width int
		want  string
	}{
		{text: "120", width: 7, want: "  120  "},
		{text: "toolong", width: 4, want: "tool"},
		{text: "ab", width: 2, want: "ab"},
	}
	for _, tt := range tests {
		if got := PreviewWithText(RGB{}, tt.text, tt.width); got != tt.want {
			t.Errorf("PreviewWithText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestIsLight(t *testing.T) {
	if !isLight(RGB{R: 255, G: 255, B: 255}) {
		t.Error("white should be light")
	}
	if isLight(RGB{R: 0, G: 0, B: 40}) {
		t.Error("dark navy should not be light")
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
