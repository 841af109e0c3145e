package colour

import (
	"strings"

	"github.com/fatih/color"
)

const defaultWidth = 8

// PreviewWithText returns a colour block of width cells with text centred
// over it. The text colour is black or white, whichever stands out against c.
// When colour output is disabled only the padded text remains.
func PreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := color.RGB(255, 255, 255)
	if isLight(c) {
		fg = color.RGB(0, 0, 0)
	}
	style := fg.AddBgRGB(int(c.R), int(c.G), int(c.B))

	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return style.Sprint(displayText)
}

// Heading renders text in bold when colour output is enabled.
func Heading(text string) string {
	return color.New(color.Bold).Sprint(text)
}

// SetEnabled switches coloured output on or off for the whole process.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}

