package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// FileAttachment is a named file to include in a multipart submission.
type FileAttachment struct {
	Name    string
	Content io.Reader
}

// multipartBody accumulates text and file parts and encodes them with a
// multipart boundary, the way file-bearing creates/updates are submitted.
type multipartBody struct {
	buf    bytes.Buffer
	writer *multipart.Writer
	err    error
}

func newMultipartBody() *multipartBody {
	m := &multipartBody{}
	m.writer = multipart.NewWriter(&m.buf)
	return m
}

func (m *multipartBody) field(name, value string) {
	if m.err != nil {
		return
	}
	m.err = m.writer.WriteField(name, value)
}

func (m *multipartBody) file(name string, att *FileAttachment) {
	if m.err != nil || att == nil {
		return
	}

	part, err := m.writer.CreateFormFile(name, att.Name)
	if err != nil {
		m.err = err
		return
	}
	if _, err := io.Copy(part, att.Content); err != nil {
		m.err = err
	}
}

// encode finalizes the body and returns it with its content type.
func (m *multipartBody) encode() ([]byte, string, error) {
	if m.err != nil {
		return nil, "", fmt.Errorf("failed to build multipart body: %w", m.err)
	}
	if err := m.writer.Close(); err != nil {
		return nil, "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}
	return m.buf.Bytes(), m.writer.FormDataContentType(), nil
}
