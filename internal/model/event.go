package model

import "time"

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventDraft     EventStatus = "DRAFT"
	EventConfirmed EventStatus = "CONFIRMED"
	EventCancelled EventStatus = "CANCELLED"
	EventCompleted EventStatus = "COMPLETED"
)

// EventType classifies what kind of gathering an event is.
type EventType string

const (
	EventConcert   EventType = "CONCERT"
	EventRehearsal EventType = "REHEARSAL"
	EventRecording EventType = "RECORDING"
	EventWorkshop  EventType = "WORKSHOP"
	EventOther     EventType = "OTHER"
)

// EventTypes lists the valid event types in display order.
var EventTypes = []EventType{
	EventConcert,
	EventRehearsal,
	EventRecording,
	EventWorkshop,
	EventOther,
}

// EventStatuses lists the valid statuses in display order.
var EventStatuses = []EventStatus{
	EventDraft,
	EventConfirmed,
	EventCancelled,
	EventCompleted,
}

// Event is a performance or rehearsal. The end time is optional; when
// present the API enforces end >= start, the client does not.
type Event struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description,omitempty"`
	EventType     EventType   `json:"event_type"`
	Status        EventStatus `json:"status"`
	StartDatetime time.Time   `json:"start_datetime"`
	EndDatetime   *time.Time  `json:"end_datetime,omitempty"`
	LocationID    *int64      `json:"location_id,omitempty"`
	Location      *Location   `json:"location,omitempty"`
	RepertoireID  *int64      `json:"repertoire_id,omitempty"`
	Repertoire    *Repertoire `json:"repertoire,omitempty"`
	IsPublic      bool        `json:"is_public"`
	MaxAttendees  int         `json:"max_attendees,omitempty"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
