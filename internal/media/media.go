// Package media stores case attachments (photo, ID card, documents) and
// returns the reference saved on the case.
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
)

// Slot names the place an attachment goes on a case.
type Slot string

const (
	SlotPhoto  Slot = "photo"
	SlotIDCard Slot = "idCard"
	SlotDoc    Slot = "doc"
)

var ErrTooLarge = errors.New("attachment is too large")

type Upload struct {
	CaseID      int64
	Slot        Slot
	Filename    string
	ContentType string
	Body        io.Reader
}

// Uploader stores an attachment and returns the reference to keep on the
// case.
type Uploader interface {
	Upload(ctx context.Context, in Upload) (string, error)
}

// readLimited reads the body, failing once it passes limit bytes. A limit
// of zero means no limit.
func readLimited(body io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(body)
	}
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrTooLarge
	}
	return data, nil
}

func contentType(in Upload, data []byte) string {
	if ct := strings.TrimSpace(in.ContentType); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	return http.DetectContentType(data)
}

// DataURIUploader embeds the file in the reference itself, so the office
// file carries its own attachments.
type DataURIUploader struct {
	MaxBytes int64
}

func (u *DataURIUploader) Upload(ctx context.Context, in Upload) (string, error) {
	data, err := readLimited(in.Body, u.MaxBytes)
	if err != nil {
		return "", fmt.Errorf("failed to read attachment: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("data:")
	buf.WriteString(contentType(in, data))
	buf.WriteString(";base64,")
	buf.WriteString(base64.StdEncoding.EncodeToString(data))
	return buf.String(), nil
}

func extension(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) > 10 {
		return ""
	}
	return ext
}
