// ABOUTME: Transfer tools: download, upload, archives, thumbnails, tail.
// ABOUTME: Binary content crosses the tool boundary base64-encoded.

package mcp

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/harper/copyparty-mcp/internal/copyparty"
	"github.com/harper/copyparty-mcp/internal/models"
)

type downloadFileInput struct {
	Path     string `json:"path" jsonschema:"File path to download"`
	AsBase64 bool   `json:"as_base64,omitempty" jsonschema:"Force base64 encoding of the content (useful for binary files)"`
}

func registerDownloadFile(s *Server) error {
	return addTool(s, "download_file",
		"Download a file. Text files come back as text; binary files (or when as_base64 is set) come back base64-encoded, and the encoding field says which.",
		func(ctx context.Context, in downloadFileInput) (any, error) {
			if in.Path == "" {
				return nil, copyparty.Validationf("path is required")
			}
			data, contentType, err := s.client.Fetch(ctx, in.Path)
			if err != nil {
				return nil, err
			}

			payload := models.FromBytes(data)
			if in.AsBase64 {
				payload = models.Binary(data)
			}
			return map[string]any{
				"path":         in.Path,
				"content_type": contentType,
				"size":         len(data),
				"encoding":     payload.Encoding(),
				"content":      payload.Content(),
			}, nil
		})
}

type downloadTextInput struct {
	Path string `json:"path" jsonschema:"File path to download as UTF-8 text"`
}

func registerDownloadFileAsText(s *Server) error {
	return addTool(s, "download_file_as_text",
		"Download a file strictly as UTF-8 text. Fails with a typed error when the content is not valid text.",
		func(ctx context.Context, in downloadTextInput) (any, error) {
			if in.Path == "" {
				return nil, copyparty.Validationf("path is required")
			}
			text, err := s.client.FetchText(ctx, in.Path)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"path":    in.Path,
				"size":    len(text),
				"content": text,
			}, nil
		})
}

type uploadFileInput struct {
	Path     string `json:"path" jsonschema:"Directory path to upload into"`
	Filename string `json:"filename" jsonschema:"Name of the file to create"`
	Content  string `json:"content" jsonschema:"File content, raw text or base64-encoded"`
	IsBase64 bool   `json:"is_base64,omitempty" jsonschema:"Whether content is base64-encoded binary data"`
	Replace  bool   `json:"replace,omitempty" jsonschema:"Overwrite the file if it already exists"`
}

func registerUploadFile(s *Server) error {
	return addTool(s, "upload_file",
		"Upload a file into a directory. Content may be raw text or base64-encoded binary; set replace to overwrite an existing file.",
		func(ctx context.Context, in uploadFileInput) (any, error) {
			if in.Path == "" {
				return nil, copyparty.Validationf("path is required")
			}
			if in.Filename == "" {
				return nil, copyparty.Validationf("filename is required")
			}
			if in.Content == "" {
				return nil, copyparty.Validationf("content is required")
			}

			data := []byte(in.Content)
			if in.IsBase64 {
				decoded, err := base64.StdEncoding.DecodeString(in.Content)
				if err != nil {
					return nil, copyparty.Validationf("content is not valid base64: %v", err)
				}
				data = decoded
			}
			return s.client.Upload(ctx, in.Path, in.Filename, data, in.Replace)
		})
}

type downloadTarInput struct {
	Path        string `json:"path" jsonschema:"Directory path to archive"`
	Compression string `json:"compression,omitempty" jsonschema:"Compression: gz, bz2, or xz (default: uncompressed)"`
	Level       int    `json:"level,omitempty" jsonschema:"Compression level 1-9, gz and xz only"`
}

func registerDownloadAsTar(s *Server) error {
	return addTool(s, "download_as_tar",
		"Download a directory as a tar archive generated by the server, optionally compressed. Returns the archive base64-encoded.",
		func(ctx context.Context, in downloadTarInput) (any, error) {
			spec := copyparty.ArchiveSpec{
				Format:      "tar",
				Compression: in.Compression,
				Level:       in.Level,
			}
			data, err := s.client.Archive(ctx, in.Path, spec)
			if err != nil {
				return nil, err
			}
			return archiveResult(in.Path, spec, data), nil
		})
}

type downloadZipInput struct {
	Path string `json:"path" jsonschema:"Directory path to archive"`
	UTF8 *bool  `json:"utf8,omitempty" jsonschema:"Use UTF-8 filenames in the zip (default: true)"`
}

func registerDownloadAsZip(s *Server) error {
	return addTool(s, "download_as_zip",
		"Download a directory as a zip archive generated by the server. Returns the archive base64-encoded.",
		func(ctx context.Context, in downloadZipInput) (any, error) {
			spec := copyparty.ArchiveSpec{Format: "zip", UTF8: in.UTF8 == nil || *in.UTF8}
			data, err := s.client.Archive(ctx, in.Path, spec)
			if err != nil {
				return nil, err
			}
			return archiveResult(in.Path, spec, data), nil
		})
}

func archiveResult(path string, spec copyparty.ArchiveSpec, data []byte) map[string]any {
	return map[string]any{
		"path":         path,
		"format":       spec.Format,
		"content_type": spec.MIMEType(),
		"size":         len(data),
		"encoding":     "base64",
		"content":      models.Binary(data).Content(),
	}
}

type thumbnailInput struct {
	Path   string `json:"path" jsonschema:"Image or video file path"`
	Format string `json:"format,omitempty" jsonschema:"Thumbnail format: w (webp), j (jpeg), or p (png). Default: w"`
}

func registerGetThumbnail(s *Server) error {
	return addTool(s, "get_thumbnail",
		"Get a server-generated thumbnail for an image or video file, base64-encoded.",
		func(ctx context.Context, in thumbnailInput) (any, error) {
			format := in.Format
			if format == "" {
				format = "w"
			}
			data, contentType, err := s.client.Thumbnail(ctx, in.Path, format)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"path":         in.Path,
				"content_type": contentType,
				"size":         len(data),
				"encoding":     "base64",
				"content":      models.Binary(data).Content(),
			}, nil
		})
}

type tailFileInput struct {
	Path            string `json:"path" jsonschema:"File path to follow"`
	MaxBytes        int64  `json:"max_bytes,omitempty" jsonschema:"Stop after this many bytes (default: 65536)"`
	DurationSeconds int    `json:"duration_seconds,omitempty" jsonschema:"Stop after this many seconds (default: 5)"`
}

func registerTailFile(s *Server) error {
	return addTool(s, "tail_file",
		"Follow a growing file like tail -f, bounded: collection stops after max_bytes or duration_seconds, whichever comes first, and returns what accumulated.",
		func(ctx context.Context, in tailFileInput) (any, error) {
			maxBytes := in.MaxBytes
			if maxBytes == 0 {
				maxBytes = 64 * 1024
			}
			window := time.Duration(in.DurationSeconds) * time.Second
			if window == 0 {
				window = 5 * time.Second
			}

			data, err := s.client.Tail(ctx, in.Path, maxBytes, window)
			if err != nil {
				return nil, err
			}
			payload := models.FromBytes(data)
			return map[string]any{
				"path":     in.Path,
				"size":     len(data),
				"encoding": payload.Encoding(),
				"content":  payload.Content(),
			}, nil
		})
}
