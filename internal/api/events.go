package api

import (
	"context"
	"fmt"
	"time"

	"github.com/partitura/partitura_admin/internal/model"
	"github.com/valyala/fasthttp"
)

// The events resources live under their own namespace, unlike the bare
// themes/versions roots. The client tolerates the inconsistency; callers
// never see it.
const (
	eventsPath      = "events/events/"
	locationsPath   = "events/locations/"
	repertoiresPath = "events/repertoires/"
)

func (c *Client) GetEvents(ctx context.Context, params ListParams) ([]model.Event, int, error) {
	return list[model.Event](ctx, c, eventsPath, params)
}

func (c *Client) GetEvent(ctx context.Context, id int64) (*model.Event, error) {
	var event model.Event
	if err := c.getJSON(ctx, fmt.Sprintf("%s%d/", eventsPath, id), nil, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// EventInput is the writable subset of an event. Location and repertoire
// references are optional and omitted when unset.
type EventInput struct {
	Title         string            `json:"title"`
	Description   string            `json:"description,omitempty"`
	EventType     model.EventType   `json:"event_type"`
	Status        model.EventStatus `json:"status"`
	StartDatetime time.Time         `json:"start_datetime"`
	EndDatetime   *time.Time        `json:"end_datetime,omitempty"`
	LocationID    *int64            `json:"location_id,omitempty"`
	RepertoireID  *int64            `json:"repertoire_id,omitempty"`
	IsPublic      bool              `json:"is_public"`
	MaxAttendees  int               `json:"max_attendees,omitempty"`
}

func (c *Client) CreateEvent(ctx context.Context, input EventInput) (*model.Event, error) {
	var event model.Event
	if err := c.sendJSON(ctx, fasthttp.MethodPost, eventsPath, input, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id int64, input EventInput) (*model.Event, error) {
	var event model.Event
	if err := c.sendJSON(ctx, fasthttp.MethodPut, fmt.Sprintf("%s%d/", eventsPath, id), input, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("%s%d/", eventsPath, id))
}

func (c *Client) GetLocations(ctx context.Context, params ListParams) ([]model.Location, int, error) {
	return list[model.Location](ctx, c, locationsPath, params)
}

// LocationInput is the writable subset of a location.
type LocationInput struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Country      string `json:"country,omitempty"`
	Capacity     int    `json:"capacity,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`
	Website      string `json:"website,omitempty"`
	Notes        string `json:"notes,omitempty"`
	IsActive     bool   `json:"is_active"`
}

func (c *Client) CreateLocation(ctx context.Context, input LocationInput) (*model.Location, error) {
	var location model.Location
	if err := c.sendJSON(ctx, fasthttp.MethodPost, locationsPath, input, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (c *Client) UpdateLocation(ctx context.Context, id int64, input LocationInput) (*model.Location, error) {
	var location model.Location
	if err := c.sendJSON(ctx, fasthttp.MethodPut, fmt.Sprintf("%s%d/", locationsPath, id), input, &location); err != nil {
		return nil, err
	}
	return &location, nil
}

func (c *Client) DeleteLocation(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("%s%d/", locationsPath, id))
}

func (c *Client) GetRepertoires(ctx context.Context, params ListParams) ([]model.Repertoire, int, error) {
	return list[model.Repertoire](ctx, c, repertoiresPath, params)
}

// RepertoireInput is the writable subset of a repertoire.
type RepertoireInput struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsActive    bool   `json:"is_active"`
}

func (c *Client) CreateRepertoire(ctx context.Context, input RepertoireInput) (*model.Repertoire, error) {
	var repertoire model.Repertoire
	if err := c.sendJSON(ctx, fasthttp.MethodPost, repertoiresPath, input, &repertoire); err != nil {
		return nil, err
	}
	return &repertoire, nil
}

func (c *Client) UpdateRepertoire(ctx context.Context, id int64, input RepertoireInput) (*model.Repertoire, error) {
	var repertoire model.Repertoire
	if err := c.sendJSON(ctx, fasthttp.MethodPut, fmt.Sprintf("%s%d/", repertoiresPath, id), input, &repertoire); err != nil {
		return nil, err
	}
	return &repertoire, nil
}

func (c *Client) DeleteRepertoire(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("%s%d/", repertoiresPath, id))
}
