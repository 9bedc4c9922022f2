package model

import "time"

// VersionType classifies an arrangement.
type VersionType string

const (
	VersionStandard      VersionType = "STANDARD"
	VersionEnsamble      VersionType = "ENSAMBLE"
	VersionDueto         VersionType = "DUETO"
	VersionGrupoReducido VersionType = "GRUPO_REDUCIDO"
)

// VersionTypes lists the valid arrangement types in display order.
var VersionTypes = []VersionType{
	VersionStandard,
	VersionEnsamble,
	VersionDueto,
	VersionGrupoReducido,
}

// Version is an arrangement of a theme. The theme reference is required at
// creation and immutable afterwards.
type Version struct {
	ID              int64        `json:"id"`
	Theme           int64        `json:"theme"`
	ThemeTitle      string       `json:"theme_title,omitempty"`
	Title           string       `json:"title"`
	Type            VersionType  `json:"type"`
	TypeDisplay     string       `json:"type_display,omitempty"`
	Image           string       `json:"image,omitempty"`
	AudioFile       string       `json:"audio_file,omitempty"`
	MusFile         string       `json:"mus_file,omitempty"`
	Notes           string       `json:"notes"`
	SheetMusicCount int          `json:"sheet_music_count,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	SheetMusic      []SheetMusic `json:"sheet_music,omitempty"`
}
