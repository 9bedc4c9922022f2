package model

import "time"

// Theme is a song in the catalog. Versions are the arrangements of it.
type Theme struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Artist      string    `json:"artist"`
	Image       string    `json:"image,omitempty"`
	Tonality    string    `json:"tonalidad"`
	Description string    `json:"description"`
	Audio       string    `json:"audio,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Versions    []Version `json:"versions,omitempty"`
}
