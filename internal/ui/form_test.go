package ui

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// scriptedReader feeds a fixed sequence of answers to a dialog.
type scriptedReader struct {
	lines []string
	pos   int
}

func (r *scriptedReader) ReadLine(string) (string, error) {
	if r.pos >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.pos]
	r.pos++
	return line, nil
}

func TestValidate_ShouldReportFirstEmptyRequiredField(t *testing.T) {
	// given
	fields := []Field{
		{Key: "title", Label: "Título", Type: FieldText, Required: true},
		{Key: "artist", Label: "Artista", Type: FieldText, Required: true},
		{Key: "notes", Label: "Notas", Type: FieldTextarea},
	}

	// when
	err := Validate(fields, Values{"title": "   ", "artist": "Ravel"})

	// then
	assert.EqualError(t, err, "campo obligatorio: Título")
	assert.NoError(t, Validate(fields, Values{"title": "Bolero", "artist": "Ravel"}))
}

func TestValidate_ShouldIgnoreNonStringValues(t *testing.T) {
	// given a required boolean and number already holding zero values
	fields := []Field{
		{Key: "is_active", Label: "Activa", Type: FieldBoolean, Required: true},
		{Key: "capacity", Label: "Capacidad", Type: FieldNumber, Required: true},
	}

	// then false and 0 count as provided, only nil is missing
	assert.NoError(t, Validate(fields, Values{"is_active": false, "capacity": float64(0)}))
	assert.Error(t, Validate(fields, Values{"capacity": float64(0)}))
}

func TestCoerceNumber_ShouldDefaultToZeroOnInvalidInput(t *testing.T) {
	assert.Equal(t, float64(120), CoerceNumber("120"))
	assert.Equal(t, 1.5, CoerceNumber(" 1.5 "))
	assert.Equal(t, float64(0), CoerceNumber("abc"))
	assert.Equal(t, float64(0), CoerceNumber(""))
}

func TestParseValue_ShouldDispatchByFieldType(t *testing.T) {
	assert.Equal(t, float64(7), ParseValue(Field{Type: FieldNumber}, "7"))
	assert.Equal(t, true, ParseValue(Field{Type: FieldBoolean}, "sí"))
	assert.Equal(t, false, ParseValue(Field{Type: FieldBoolean}, "no"))
	assert.Equal(t, "DRAFT", ParseValue(Field{Type: FieldSelect}, "DRAFT"))
	assert.Equal(t, "hola", ParseValue(Field{Type: FieldText}, "hola"))
}

func TestParseBool_ShouldAcceptSpanishAffirmatives(t *testing.T) {
	for _, input := range []string{"s", "si", "sí", "Y", "yes", "true", "1"} {
		assert.True(t, parseBool(input), input)
	}
	for _, input := range []string{"", "n", "no", "false", "0", "tal vez"} {
		assert.False(t, parseBool(input), input)
	}
}

func TestDialog_Run_ShouldReportCloseAfterSave(t *testing.T) {
	// given
	saved := false
	closed := false
	dialog := &Dialog{
		Title:   "Nuevo Tema",
		Fields:  []Field{{Key: "title", Label: "Título", Type: FieldText}},
		Values:  Values{"title": ""},
		OnSave:  func() error { saved = true; return nil },
		OnClose: func() { closed = true },
	}

	// when the user confirms the save
	reader := &scriptedReader{lines: []string{"Bolero", "s"}}
	var out strings.Builder
	err := dialog.Run(reader, &out)

	// then teardown is reported on the save path too
	assert.NoError(t, err)
	assert.True(t, saved)
	assert.True(t, closed)
}

func TestDialog_Run_ShouldKeepValuesOnEmptyInput(t *testing.T) {
	// given a dialog pre-filled for editing
	var changed []string
	dialog := &Dialog{
		Title: "Editar Tema",
		Fields: []Field{
			{Key: "title", Label: "Título", Type: FieldText, Required: true},
			{Key: "artist", Label: "Artista", Type: FieldText},
		},
		Values: Values{"title": "Bolero", "artist": "Ravel"},
		OnChange: func(key string, _ any) {
			changed = append(changed, key)
		},
		OnSave: func() error { return nil },
	}

	// when the user only edits the artist and confirms
	reader := &scriptedReader{lines: []string{"", "Maurice Ravel", "s"}}
	var out strings.Builder
	err := dialog.Run(reader, &out)

	// then the untouched field keeps its value
	assert.NoError(t, err)
	assert.Equal(t, Values{"title": "Bolero", "artist": "Maurice Ravel"}, dialog.Values)
	assert.Equal(t, []string{"artist"}, changed)
}

func TestDialog_Run_ShouldNotSaveWhenDeclined(t *testing.T) {
	// given
	saved := false
	closed := false
	dialog := &Dialog{
		Title:   "Nuevo Tema",
		Fields:  []Field{{Key: "title", Label: "Título", Type: FieldText}},
		Values:  Values{"title": ""},
		OnSave:  func() error { saved = true; return nil },
		OnClose: func() { closed = true },
	}

	// when the user declines the save prompt
	reader := &scriptedReader{lines: []string{"Bolero", "n"}}
	var out strings.Builder
	err := dialog.Run(reader, &out)

	// then
	assert.NoError(t, err)
	assert.False(t, saved)
	assert.True(t, closed)
}

func TestDialog_Run_ShouldPropagateSaveError(t *testing.T) {
	// given
	saveErr := errors.New("campo obligatorio: Título")
	dialog := &Dialog{
		Title:  "Nuevo Tema",
		Fields: []Field{{Key: "title", Label: "Título", Type: FieldText, Required: true}},
		Values: Values{"title": ""},
		OnSave: func() error { return saveErr },
	}

	// when the user confirms with the field still empty
	reader := &scriptedReader{lines: []string{"", "s"}}
	var out strings.Builder
	err := dialog.Run(reader, &out)

	// then
	assert.ErrorIs(t, err, saveErr)
}

func TestDialog_Run_ShouldSkipInputWhileLoading(t *testing.T) {
	// given a dialog mid-submission
	saved := false
	dialog := &Dialog{
		Title:   "Nuevo Tema",
		Fields:  []Field{{Key: "title", Label: "Título", Type: FieldText}},
		Values:  Values{"title": "Bolero"},
		Loading: true,
		OnSave:  func() error { saved = true; return nil },
	}

	// when only the save prompt is answered
	reader := &scriptedReader{lines: []string{"s"}}
	var out strings.Builder
	err := dialog.Run(reader, &out)

	// then the fields were read-only and the save is suppressed
	assert.NoError(t, err)
	assert.False(t, saved)
	assert.Contains(t, out.String(), "Guardando...")
}

func TestDialog_Run_ShouldShowDateFormatHint(t *testing.T) {
	// given
	dialog := &Dialog{
		Title:  "Nuevo Evento",
		Fields: []Field{{Key: "start_datetime", Label: "Fecha y Hora de Inicio", Type: FieldDateTime, Required: true}},
		Values: Values{},
	}

	// when
	reader := &scriptedReader{lines: []string{"2025-06-01T20:00", "n"}}
	var out strings.Builder
	err := dialog.Run(reader, &out)

	// then the empty field still announced its expected format
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Fecha y Hora de Inicio * (AAAA-MM-DDTHH:MM) []")
	assert.Equal(t, "2025-06-01T20:00", dialog.Values["start_datetime"])
}
