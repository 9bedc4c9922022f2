package ui

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// DetailRow is one label/value line of a single-resource panel.
type DetailRow struct {
	Label string
	Value string
}

// RenderDetail prints a detail panel with aligned labels. Rows with an
// empty value are skipped, mirroring how the detail views only show the
// fields a record actually has.
func RenderDetail(w io.Writer, title string, rows []DetailRow) {
	fmt.Fprintf(w, "--- %s ---\n", title)

	width := 0
	for _, row := range rows {
		if row.Value == "" {
			continue
		}
		if n := utf8.RuneCountInString(row.Label); n > width {
			width = n
		}
	}
	for _, row := range rows {
		if row.Value == "" {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", pad(row.Label+":", width+1, AlignLeft), row.Value)
	}
}
