package model

import "time"

// PartType is the musical role of a sheet-music part.
type PartType string

const (
	PartMelodiaPrincipal  PartType = "MELODIA_PRINCIPAL"
	PartMelodiaSecundaria PartType = "MELODIA_SECUNDARIA"
	PartArmonia           PartType = "ARMONIA"
	PartBajo              PartType = "BAJO"
)

// Clef values as the API encodes them.
type Clef string

const (
	ClefSol Clef = "SOL"
	ClefFa  Clef = "FA"
)

// SheetMusic is one instrument part of a version.
type SheetMusic struct {
	ID          int64     `json:"id"`
	Version     int64     `json:"version"`
	Instrument  int64     `json:"instrument"`
	Type        PartType  `json:"type"`
	Clef        Clef      `json:"clef"`
	RelativeKey string    `json:"tonalidad_relativa"`
	File        string    `json:"file"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
