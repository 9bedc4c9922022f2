package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindInstruments_ShouldPartitionIntoWoodwindAndBrass(t *testing.T) {
	// given
	woodwinds := InstrumentsByFamily(FamilyWoodwind)
	brass := InstrumentsByFamily(FamilyBrass)

	// then the catalog splits cleanly between the two sections
	assert.Len(t, WindInstruments, 24)
	assert.Len(t, woodwinds, 13)
	assert.Len(t, brass, 11)
	assert.Empty(t, InstrumentsByFamily(FamilyPercussion))
}

func TestWindInstruments_ShouldHaveUniqueIDsAndCompleteEntries(t *testing.T) {
	seen := make(map[string]bool)
	for _, inst := range WindInstruments {
		assert.False(t, seen[inst.ID], inst.ID)
		seen[inst.ID] = true

		assert.NotEmpty(t, inst.Name, inst.ID)
		assert.NotEmpty(t, inst.Tuning, inst.ID)
		assert.NotEmpty(t, inst.Range, inst.ID)
		assert.Contains(t, []Clef{ClefSol, ClefFa}, inst.Clef, inst.ID)
	}
}
