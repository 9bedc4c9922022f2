package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func themesTable() *Table {
	return &Table{
		Title: "Temas",
		Columns: []Column{
			{Key: "title", Label: "Título", Sortable: true},
			{Key: "versions", Label: "Versiones", Align: AlignRight},
		},
	}
}

func TestSortState_Toggle_ShouldCycleDirectionOnSameField(t *testing.T) {
	// given
	var sort SortState

	// when / then: first click ascends, second descends, third ascends again
	sort = sort.Toggle("title")
	assert.Equal(t, SortState{Field: "title", Direction: SortAsc}, sort)

	sort = sort.Toggle("title")
	assert.Equal(t, SortState{Field: "title", Direction: SortDesc}, sort)

	sort = sort.Toggle("title")
	assert.Equal(t, SortState{Field: "title", Direction: SortAsc}, sort)
}

func TestSortState_Toggle_ShouldStartAscendingOnNewField(t *testing.T) {
	// given
	sort := SortState{Field: "title", Direction: SortDesc}

	// when
	sort = sort.Toggle("artist")

	// then
	assert.Equal(t, SortState{Field: "artist", Direction: SortAsc}, sort)
}

func TestSortState_Ordering_ShouldPrefixDescendingWithMinus(t *testing.T) {
	assert.Equal(t, "", SortState{}.Ordering())
	assert.Equal(t, "title", SortState{Field: "title", Direction: SortAsc}.Ordering())
	assert.Equal(t, "-title", SortState{Field: "title", Direction: SortDesc}.Ordering())
}

func TestPageState_RangeLabel_ShouldClampToTotal(t *testing.T) {
	assert.Equal(t, "11-20 de 25", PageState{Page: 1, Size: 10, Total: 25}.RangeLabel())
	assert.Equal(t, "21-25 de 25", PageState{Page: 2, Size: 10, Total: 25}.RangeLabel())
	assert.Equal(t, "0-0 de 0", PageState{Page: 0, Size: 10, Total: 0}.RangeLabel())

	// a page positioned past the end never renders an inverted range
	assert.Equal(t, "25-25 de 25", PageState{Page: 3, Size: 10, Total: 25}.RangeLabel())
}

func TestPageState_Pages_ShouldRoundUp(t *testing.T) {
	assert.Equal(t, 3, PageState{Size: 10, Total: 25}.Pages())
	assert.Equal(t, 1, PageState{Size: 10, Total: 0}.Pages())
	assert.Equal(t, 1, PageState{Size: 0, Total: 25}.Pages())
}

func TestStringify_ShouldRenderNilAsEmptyString(t *testing.T) {
	// given
	var when *time.Time

	// then
	assert.Equal(t, "", Stringify(nil))
	assert.Equal(t, "", Stringify(when))
	assert.Equal(t, "texto", Stringify("texto"))
	assert.Equal(t, "42", Stringify(42))
}

func TestFormatDate_ShouldUseSpanishMonthAbbreviations(t *testing.T) {
	// given
	when := time.Date(2025, time.January, 5, 9, 30, 0, 0, time.UTC)

	// then
	assert.Equal(t, "05 ene 2025 09:30", FormatDate(when))
	assert.Equal(t, "", FormatDate(time.Time{}))
}

func TestFormatStatus_ShouldFallBackToRawCode(t *testing.T) {
	assert.Equal(t, "Borrador", FormatStatus("DRAFT"))
	assert.Equal(t, "Completado", FormatStatus("COMPLETED"))
	assert.Equal(t, "ARCHIVED", FormatStatus("ARCHIVED"))
}

func TestRow_ID_ShouldTolerateNumericTypes(t *testing.T) {
	assert.Equal(t, int64(7), Row{"id": int64(7)}.ID())
	assert.Equal(t, int64(7), Row{"id": 7}.ID())
	assert.Equal(t, int64(7), Row{"id": float64(7)}.ID())
	assert.Equal(t, int64(0), Row{}.ID())
}

func TestTable_Render_ShouldShowEmptyMessageWhenNoRows(t *testing.T) {
	// given
	var out strings.Builder
	table := themesTable()

	// when
	table.Render(&out, State{Page: PageState{Size: 10}})

	// then
	assert.Contains(t, out.String(), "No hay datos para mostrar")
	assert.Contains(t, out.String(), "Filas por página: 10    0-0 de 0")
}

func TestTable_Render_ShouldShowLoadingInsteadOfRows(t *testing.T) {
	// given
	var out strings.Builder
	table := themesTable()

	// when
	table.Render(&out, State{Loading: true, Rows: []Row{{"id": 1, "title": "Bolero"}}})

	// then
	assert.Contains(t, out.String(), "Cargando...")
	assert.NotContains(t, out.String(), "Bolero")
}

func TestTable_Render_ShouldShowErrorState(t *testing.T) {
	// given
	var out strings.Builder
	table := themesTable()

	// when
	table.Render(&out, State{Err: "request failed"})

	// then
	assert.Contains(t, out.String(), "Error: request failed")
	assert.NotContains(t, out.String(), "No hay datos para mostrar")
}

func TestTable_Render_ShouldMarkActiveSortColumn(t *testing.T) {
	// given
	var out strings.Builder
	table := themesTable()
	rows := []Row{
		{"id": 1, "title": "Bolero", "versions": 3},
		{"id": 2, "title": "Danzon", "versions": 1},
	}

	// when
	table.Render(&out, State{
		Rows: rows,
		Sort: SortState{Field: "title", Direction: SortDesc},
		Page: PageState{Page: 0, Size: 10, Total: 2},
	})

	// then
	assert.Contains(t, out.String(), "Título v")
	assert.Contains(t, out.String(), "Bolero")
	assert.Contains(t, out.String(), "1-2 de 2")
}

func TestCellValue_ShouldPreferColumnRenderer(t *testing.T) {
	// given
	col := Column{Key: "status", Render: func(value any, _ Row) string {
		return FormatStatus(Stringify(value))
	}}

	// when / then
	assert.Equal(t, "Confirmado", CellValue(col, Row{"status": "CONFIRMED"}))
	assert.Equal(t, "DRAFT", CellValue(Column{Key: "status"}, Row{"status": "DRAFT"}))
}
