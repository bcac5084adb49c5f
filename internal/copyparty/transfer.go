// ABOUTME: Byte transfer operations: download, upload, archives, thumbnails, tail.
// ABOUTME: Streams go through the shared HTTP client with per-call contexts.

package copyparty

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/harper/copyparty-mcp/internal/models"
)

// Fetch downloads a file and returns its bytes and content type.
func (c *Client) Fetch(ctx context.Context, path string) ([]byte, string, error) {
	if path == "" || path == "/" {
		return nil, "", Validationf("file path is required")
	}
	data, hdr, err := c.fetch(ctx, http.MethodGet, path, nil, nil, "")
	if err != nil {
		return nil, "", err
	}
	ct := hdr.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	return data, ct, nil
}

// FetchText downloads a file that must be valid UTF-8 text.
func (c *Client) FetchText(ctx context.Context, path string) (string, error) {
	data, _, err := c.Fetch(ctx, path)
	if err != nil {
		return "", err
	}
	p := models.FromBytes(data)
	if !p.IsText() {
		return "", &NotTextError{Path: path}
	}
	return p.Content(), nil
}

type wireReceipt struct {
	Name   string `json:"name"`
	Size   int64  `json:"sz"`
	URL    string `json:"url"`
	SHA512 string `json:"sha512"`
}

// Upload sends data as filename into the remote directory dir. With
// replace set an existing file is overwritten, otherwise the server
// picks a deduplicated name.
func (c *Client) Upload(ctx context.Context, dir, filename string, data []byte, replace bool) (*models.UploadReceipt, error) {
	if dir == "" {
		return nil, Validationf("target path is required")
	}
	if filename == "" {
		return nil, Validationf("filename is required")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("f", filename)
	if err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("build multipart body: %w", err)
	}

	q := url.Values{"j": {""}}
	if replace {
		q.Set("replace", "")
	}

	body, _, err := c.fetch(ctx, http.MethodPost, dir, q, &buf, w.FormDataContentType())
	if err != nil {
		return nil, err
	}

	receipt := &models.UploadReceipt{
		Path:     dir,
		Filename: filename,
		Size:     int64(len(data)),
	}
	// The server's JSON receipt is optional detail; its absence is not
	// a failed upload.
	var wire wireReceipt
	if err := json.Unmarshal(body, &wire); err == nil {
		if wire.Name != "" {
			receipt.Filename = wire.Name
		}
		receipt.URL = wire.URL
		receipt.Checksum = wire.SHA512
	}
	return receipt, nil
}

// ArchiveSpec selects the archive container and compression.
type ArchiveSpec struct {
	Format      string // "tar" or "zip"
	Compression string // tar only: "", "gz", "bz2", "xz"
	Level       int    // tar gz/xz only: 0 (server default) or 1-9
	UTF8        bool   // zip only: utf-8 filenames
}

// Validate checks the spec against what the server accepts.
func (s ArchiveSpec) Validate() error {
	switch s.Format {
	case "tar":
		switch s.Compression {
		case "", "gz", "bz2", "xz":
		default:
			return Validationf("unknown tar compression %q (want gz, bz2, or xz)", s.Compression)
		}
		if s.Level != 0 {
			if s.Compression != "gz" && s.Compression != "xz" {
				return Validationf("compression level only applies to gz and xz")
			}
			if s.Level < 1 || s.Level > 9 {
				return Validationf("compression level %d out of range 1-9", s.Level)
			}
		}
	case "zip":
		if s.Compression != "" || s.Level != 0 {
			return Validationf("zip archives do not take compression settings")
		}
	default:
		return Validationf("unknown archive format %q (want tar or zip)", s.Format)
	}
	return nil
}

func (s ArchiveSpec) query() url.Values {
	q := url.Values{}
	if s.Format == "zip" {
		if s.UTF8 {
			q.Set("zip", "utf8")
		} else {
			q.Set("zip", "")
		}
		return q
	}
	v := s.Compression
	if s.Level != 0 {
		v = fmt.Sprintf("%s:%d", s.Compression, s.Level)
	}
	q.Set("tar", v)
	return q
}

// MIMEType returns the content type of the generated archive.
func (s ArchiveSpec) MIMEType() string {
	if s.Format == "zip" {
		return "application/zip"
	}
	switch s.Compression {
	case "gz":
		return "application/gzip"
	case "bz2":
		return "application/x-bzip2"
	case "xz":
		return "application/x-xz"
	default:
		return "application/x-tar"
	}
}

// Archive asks the server to pack a directory and returns the archive
// bytes. Generation happens server-side; large trees can take a while.
func (c *Client) Archive(ctx context.Context, path string, spec ArchiveSpec) ([]byte, error) {
	if path == "" {
		return nil, Validationf("directory path is required")
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	data, _, err := c.fetch(ctx, http.MethodGet, path, spec.query(), nil, "")
	return data, err
}

// Thumbnail fetches a server-generated thumbnail. format is one of
// "w" (webp), "j" (jpeg), "p" (png).
func (c *Client) Thumbnail(ctx context.Context, path, format string) ([]byte, string, error) {
	if path == "" || path == "/" {
		return nil, "", Validationf("file path is required")
	}
	switch format {
	case "w", "j", "p":
	default:
		return nil, "", Validationf("unknown thumbnail format %q (want w, j, or p)", format)
	}

	q := url.Values{"th": {format}}
	data, hdr, err := c.fetch(ctx, http.MethodGet, path, q, nil, "")
	if err != nil {
		return nil, "", err
	}
	ct := hdr.Get("Content-Type")
	if ct == "" {
		ct = "image/" + map[string]string{"w": "webp", "j": "jpeg", "p": "png"}[format]
	}
	return data, ct, nil
}

// Tail follows a growing file. The server keeps the ?tail stream open
// indefinitely, so the read is bounded: collection stops after
// maxBytes or when the window elapses, whichever comes first, and
// whatever accumulated is returned.
func (c *Client) Tail(ctx context.Context, path string, maxBytes int64, window time.Duration) ([]byte, error) {
	if path == "" || path == "/" {
		return nil, Validationf("file path is required")
	}
	if maxBytes <= 0 {
		return nil, Validationf("max_bytes must be positive")
	}
	if window <= 0 {
		return nil, Validationf("duration must be positive")
	}

	ctx, cancel := context.WithTimeout(ctx, window)
	defer cancel()

	resp, err := c.do(ctx, http.MethodGet, path, url.Values{"tail": {""}}, nil, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes))
	if err != nil && !isDeadline(err) {
		return nil, &ConnectivityError{URL: c.base.String(), Err: err}
	}
	return data, nil
}

// isDeadline reports whether a read failed only because the tail
// window closed, which is the expected way a tail ends.
func isDeadline(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var ne interface{ Timeout() bool }
	return errors.As(err, &ne) && ne.Timeout()
}
