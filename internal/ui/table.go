package ui

import (
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

// Row is one table record. Rows must expose a stable identifier under "id".
type Row map[string]any

// ID returns the row identifier, tolerating the numeric types JSON
// decoding and screen code produce.
func (r Row) ID() int64 {
	switch v := r["id"].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	default:
		return 0
	}
}

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Column configures one table column. A column without a Render func
// displays the stringified field value.
type Column struct {
	Key      string
	Label    string
	Sortable bool
	Align    Alignment
	Render   func(value any, row Row) string
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortState is the caller-owned sort field and direction.
type SortState struct {
	Field     string
	Direction SortDirection
}

// Toggle reports the sort state a click on field requests: the active
// field alternates ascending/descending, a new field starts ascending.
// The table never sorts data itself; the caller re-fetches.
func (s SortState) Toggle(field string) SortState {
	if s.Field == field && s.Direction == SortAsc {
		return SortState{Field: field, Direction: SortDesc}
	}
	return SortState{Field: field, Direction: SortAsc}
}

// Ordering renders the state as the API's ordering query value.
func (s SortState) Ordering() string {
	if s.Field == "" {
		return ""
	}
	if s.Direction == SortDesc {
		return "-" + s.Field
	}
	return s.Field
}

// PageState is the caller-owned pagination state. Page is zero-indexed.
type PageState struct {
	Page  int
	Size  int
	Total int
}

// RangeLabel formats the visible range, e.g. "11-20 de 25".
func (p PageState) RangeLabel() string {
	if p.Total == 0 {
		return "0-0 de 0"
	}
	from := p.Page*p.Size + 1
	to := from + p.Size - 1
	if to > p.Total {
		to = p.Total
	}
	if from > to {
		from = to
	}
	return fmt.Sprintf("%d-%d de %d", from, to, p.Total)
}

// Pages is the number of pages the current size yields.
func (p PageState) Pages() int {
	if p.Size <= 0 {
		return 1
	}
	pages := (p.Total + p.Size - 1) / p.Size
	if pages < 1 {
		pages = 1
	}
	return pages
}

// Stringify renders a raw cell value. Nil renders as the empty string.
func Stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return FormatDate(v)
	case *time.Time:
		if v == nil {
			return ""
		}
		return FormatDate(*v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// CellValue resolves what a column displays for a row.
func CellValue(col Column, row Row) string {
	value := row[col.Key]
	if col.Render != nil {
		return col.Render(value, row)
	}
	return Stringify(value)
}

var spanishMonths = []string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// FormatDate renders a timestamp the way the tables display dates.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d %s %d %02d:%02d",
		t.Day(), spanishMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

var statusLabels = map[string]string{
	"DRAFT":     "Borrador",
	"CONFIRMED": "Confirmado",
	"CANCELLED": "Cancelado",
	"COMPLETED": "Completado",
}

// FormatStatus maps a status code to its display label, falling back to
// the raw code for unknown values.
func FormatStatus(status string) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return status
}

// State is one render pass of the table. Loading and Err are mutually
// exclusive with row rendering.
type State struct {
	Rows    []Row
	Sort    SortState
	Page    PageState
	Loading bool
	Err     string
}

// Table renders a paginated, sortable list for any entity type. It owns no
// state: sorting and pagination belong to the caller, which re-fetches on
// every change.
type Table struct {
	Title   string
	Columns []Column
}

const emptyMessage = "No hay datos para mostrar"

func (t *Table) Render(w io.Writer, state State) {
	fmt.Fprintf(w, "%s\n", t.Title)

	if state.Loading {
		fmt.Fprintln(w, "  Cargando...")
		return
	}
	if state.Err != "" {
		fmt.Fprintf(w, "  Error: %s\n", state.Err)
		return
	}

	widths := t.columnWidths(state)

	var header strings.Builder
	for i, col := range t.Columns {
		label := col.Label
		if col.Sortable && state.Sort.Field == col.Key {
			if state.Sort.Direction == SortDesc {
				label += " v"
			} else {
				label += " ^"
			}
		}
		header.WriteString(pad(label, widths[i], col.Align))
		header.WriteString("  ")
	}
	fmt.Fprintln(w, strings.TrimRight(header.String(), " "))

	total := 0
	for _, width := range widths {
		total += width + 2
	}
	fmt.Fprintln(w, strings.Repeat("-", total))

	if len(state.Rows) == 0 {
		fmt.Fprintln(w, pad(emptyMessage, total, AlignCenter))
	} else {
		for _, row := range state.Rows {
			var line strings.Builder
			for i, col := range t.Columns {
				line.WriteString(pad(CellValue(col, row), widths[i], col.Align))
				line.WriteString("  ")
			}
			fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
		}
	}

	fmt.Fprintf(w, "Filas por página: %d    %s\n", state.Page.Size, state.Page.RangeLabel())
}

func (t *Table) columnWidths(state State) []int {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = utf8.RuneCountInString(col.Label) + 2 // room for sort marker
		for _, row := range state.Rows {
			if n := utf8.RuneCountInString(CellValue(col, row)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

func pad(s string, width int, align Alignment) string {
	gap := width - utf8.RuneCountInString(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}
