package api

import (
	"context"
	"fmt"

	"github.com/partitura/partitura_admin/internal/model"
	"github.com/valyala/fasthttp"
)

const themesPath = "themes/"

func (c *Client) GetThemes(ctx context.Context, params ListParams) ([]model.Theme, int, error) {
	return list[model.Theme](ctx, c, themesPath, params)
}

func (c *Client) GetTheme(ctx context.Context, id int64) (*model.Theme, error) {
	var theme model.Theme
	if err := c.getJSON(ctx, fmt.Sprintf("%s%d/", themesPath, id), nil, &theme); err != nil {
		return nil, err
	}
	return &theme, nil
}

// ThemeInput is the writable subset of a theme.
type ThemeInput struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Tonality    string `json:"tonalidad"`
	Description string `json:"description"`
}

func (c *Client) CreateTheme(ctx context.Context, input ThemeInput) (*model.Theme, error) {
	var theme model.Theme
	if err := c.sendJSON(ctx, fasthttp.MethodPost, themesPath, input, &theme); err != nil {
		return nil, err
	}
	return &theme, nil
}

func (c *Client) UpdateTheme(ctx context.Context, id int64, input ThemeInput) (*model.Theme, error) {
	var theme model.Theme
	if err := c.sendJSON(ctx, fasthttp.MethodPut, fmt.Sprintf("%s%d/", themesPath, id), input, &theme); err != nil {
		return nil, err
	}
	return &theme, nil
}

func (c *Client) DeleteTheme(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("%s%d/", themesPath, id))
}
