package api

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

// ListParams are the pagination and ordering knobs list endpoints accept.
// Page is 1-based on the wire; the screens translate from their 0-based
// pagination state.
type ListParams struct {
	Page     int
	PageSize int
	Ordering string
	Filters  map[string]string
}

func (p ListParams) query() map[string]string {
	query := make(map[string]string)
	if p.Page > 0 {
		query["page"] = strconv.Itoa(p.Page)
	}
	if p.PageSize > 0 {
		query["page_size"] = strconv.Itoa(p.PageSize)
	}
	if p.Ordering != "" {
		query["ordering"] = p.Ordering
	}
	for key, value := range p.Filters {
		query[key] = value
	}
	return query
}

// decodeList normalizes the two list shapes the API responds with: a bare
// array, or an envelope holding a results array and a total count. For a
// bare array the total is the array length.
func decodeList[T any](body []byte) ([]T, int, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, 0, fmt.Errorf("failed to parse list response: %w", err)
		}
		return items, len(items), nil
	}

	var envelope struct {
		Results []T `json:"results"`
		Count   int `json:"count"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, 0, fmt.Errorf("failed to parse list response: %w", err)
	}
	return envelope.Results, envelope.Count, nil
}

// list fetches a collection root and normalizes the response shape.
func list[T any](ctx context.Context, c *Client, path string, params ListParams) ([]T, int, error) {
	body, err := c.do(ctx, fasthttp.MethodGet, path, params.query(), "", nil)
	if err != nil {
		return nil, 0, err
	}
	return decodeList[T](body)
}
