package output

import (
	"strings"
)

// columnGap separates adjacent columns.
const columnGap = "  "

// Table lays out rows under headers, sizing each column to its widest cell.
type Table struct {
	headers     []string
	rows        []tableRow
	maxWidths   map[int]int
	prefixWidth int
}

type tableRow struct {
	prefix string
	cells  []string
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:   headers,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth sets a maximum width for a specific column.
// Cells longer than this are wrapped at spaces onto further lines.
func (t *Table) SetColumnMaxWidth(colIndex int, maxWidth int) {
	t.maxWidths[colIndex] = maxWidth
}

// SetPrefixWidth reserves a leading column of the given display width for
// row prefixes. Prefixes may contain escape codes, so their width cannot be
// measured from the string itself.
func (t *Table) SetPrefixWidth(width int) {
	t.prefixWidth = width
}

// AddRow adds a row with one cell per header.
func (t *Table) AddRow(cells []string) {
	t.rows = append(t.rows, tableRow{cells: cells})
}

// AddRowWithPrefix adds a row whose first line is preceded by prefix.
func (t *Table) AddRowWithPrefix(prefix string, cells []string) {
	t.rows = append(t.rows, tableRow{prefix: prefix, cells: cells})
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}

	wrapped := make([][][]string, len(t.rows))
	for r, row := range t.rows {
		wrapped[r] = make([][]string, len(t.headers))
		for c := range t.headers {
			var cell string
			if c < len(row.cells) {
				cell = row.cells[c]
			}
			lines := wrapText(cell, t.maxWidths[c])
			for _, line := range lines {
				widths[c] = max(widths[c], len(line))
			}
			wrapped[r][c] = lines
		}
	}

	blank := ""
	if t.prefixWidth > 0 {
		blank = strings.Repeat(" ", t.prefixWidth) + columnGap
	}

	separator := make([]string, len(widths))
	for i, w := range widths {
		separator[i] = strings.Repeat("-", w)
	}

	var result strings.Builder
	writeLine(&result, blank, t.headers, widths)
	writeLine(&result, blank, separator, widths)

	for r, cells := range wrapped {
		height := 1
		for _, lines := range cells {
			height = max(height, len(lines))
		}
		for i := range height {
			lead := blank
			if i == 0 && t.rows[r].prefix != "" {
				lead = t.rows[r].prefix + columnGap
			}
			line := make([]string, len(cells))
			for c, lines := range cells {
				if i < len(lines) {
					line[c] = lines[i]
				}
			}
			writeLine(&result, lead, line, widths)
		}
	}

	return result.String()
}

func writeLine(b *strings.Builder, lead string, cells []string, widths []int) {
	b.WriteString(lead)
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(columnGap)
		}
		b.WriteString(padRight(cell, widths[i]))
	}
	b.WriteString("\n")
}

// padRight pads a string with spaces on the right to reach the desired width.
// If the string is already longer than or equal to the width, it is returned unchanged.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText breaks text at spaces into lines of at most width bytes. A word
// longer than width keeps a line of its own.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	lines := []string{words[0]}
	for _, word := range words[1:] {
		last := &lines[len(lines)-1]
		if len(*last)+1+len(word) <= width {
			*last += " " + word
		} else {
			lines = append(lines, word)
		}
	}
	return lines
}
