package model

import "time"

// Repertoire is a named set list of versions.
type Repertoire struct {
	ID          int64               `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	IsActive    bool                `json:"is_active"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	Versions    []RepertoireVersion `json:"versions,omitempty"`
}

// RepertoireVersion is a join entry wrapping a version with its position in
// the set list.
type RepertoireVersion struct {
	ID            int64     `json:"id"`
	Repertoire    int64     `json:"repertoire"`
	Version       int64     `json:"version"`
	VersionTitle  string    `json:"version_title,omitempty"`
	VersionArtist string    `json:"version_artist,omitempty"`
	VersionType   string    `json:"version_type,omitempty"`
	Order         int       `json:"order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
