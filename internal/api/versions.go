package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/partitura/partitura_admin/internal/model"
	"github.com/valyala/fasthttp"
)

const versionsPath = "versions/"

func (c *Client) GetVersions(ctx context.Context, params ListParams) ([]model.Version, int, error) {
	return list[model.Version](ctx, c, versionsPath, params)
}

func (c *Client) GetVersion(ctx context.Context, id int64) (*model.Version, error) {
	var version model.Version
	if err := c.getJSON(ctx, fmt.Sprintf("%s%d/", versionsPath, id), nil, &version); err != nil {
		return nil, err
	}
	return &version, nil
}

// VersionForm is a version create/update submission. Versions always go
// over multipart because they may carry media files; a form with no files
// attached produces only the text parts.
type VersionForm struct {
	Theme int64
	Title string
	Type  model.VersionType
	Notes string

	Image     *FileAttachment
	AudioFile *FileAttachment
	MusFile   *FileAttachment
}

func (f *VersionForm) encode() ([]byte, string, error) {
	body := newMultipartBody()
	body.field("theme", strconv.FormatInt(f.Theme, 10))
	body.field("title", f.Title)
	body.field("type", string(f.Type))
	if f.Notes != "" {
		body.field("notes", f.Notes)
	}
	body.file("image", f.Image)
	body.file("audio_file", f.AudioFile)
	body.file("mus_file", f.MusFile)
	return body.encode()
}

func (c *Client) CreateVersion(ctx context.Context, form VersionForm) (*model.Version, error) {
	return c.submitVersion(ctx, fasthttp.MethodPost, versionsPath, form)
}

func (c *Client) UpdateVersion(ctx context.Context, id int64, form VersionForm) (*model.Version, error) {
	return c.submitVersion(ctx, fasthttp.MethodPut, fmt.Sprintf("%s%d/", versionsPath, id), form)
}

func (c *Client) submitVersion(ctx context.Context, method, path string, form VersionForm) (*model.Version, error) {
	body, contentType, err := form.encode()
	if err != nil {
		return nil, err
	}

	respBody, err := c.do(ctx, method, path, nil, contentType, body)
	if err != nil {
		return nil, err
	}

	var version model.Version
	if err := json.Unmarshal(respBody, &version); err != nil {
		return nil, fmt.Errorf("failed to parse version response: %w", err)
	}
	return &version, nil
}

func (c *Client) DeleteVersion(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("%s%d/", versionsPath, id))
}
