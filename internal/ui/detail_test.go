package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDetail_ShouldAlignLabelsAndSkipEmptyValues(t *testing.T) {
	// given
	var out strings.Builder
	rows := []DetailRow{
		{Label: "Título", Value: "Bolero"},
		{Label: "Descripción", Value: ""},
		{Label: "Artista", Value: "Ravel"},
	}

	// when
	RenderDetail(&out, "Tema 1", rows)

	// then
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, "--- Tema 1 ---", lines[0])
	assert.Equal(t, "Título:  Bolero", lines[1])
	assert.Equal(t, "Artista: Ravel", lines[2])
	assert.Len(t, lines, 3)
}
