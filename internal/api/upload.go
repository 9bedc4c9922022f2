package api

import (
	"context"
	"io"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

// UploadFile submits a single file as the "file" part of a multipart body
// to an arbitrary endpoint. The response is returned raw; upload endpoints
// differ in what they echo back.
func (c *Client) UploadFile(ctx context.Context, endpoint, filename string, content io.Reader) (json.RawMessage, error) {
	body := newMultipartBody()
	body.file("file", &FileAttachment{Name: filename, Content: content})

	encoded, contentType, err := body.encode()
	if err != nil {
		return nil, err
	}
	return c.do(ctx, fasthttp.MethodPost, endpoint, nil, contentType, encoded)
}

// UploadFiles submits several files as repeated "files" parts.
func (c *Client) UploadFiles(ctx context.Context, endpoint string, files []FileAttachment) (json.RawMessage, error) {
	body := newMultipartBody()
	for i := range files {
		body.file("files", &files[i])
	}

	encoded, contentType, err := body.encode()
	if err != nil {
		return nil, err
	}
	return c.do(ctx, fasthttp.MethodPost, endpoint, nil, contentType, encoded)
}
