// ABOUTME: Metadata and status queries: HEAD stat, server probe, active downloads.
// ABOUTME: Single-request reads relayed with minimal shaping.

package copyparty

import (
	"context"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/harper/copyparty-mcp/internal/models"
)

// Stat returns metadata for one remote file: a HEAD for size, type,
// and mtime, then a best-effort listing of the parent directory for
// media tags. Tag lookup failure does not fail the call.
func (c *Client) Stat(ctx context.Context, filePath string) (*models.FileInfo, error) {
	if filePath == "" || filePath == "/" {
		return nil, Validationf("file path is required")
	}

	resp, err := c.do(ctx, http.MethodHead, filePath, nil, nil, "")
	if err != nil {
		return nil, err
	}
	resp.Body.Close()

	info := &models.FileInfo{
		Path:        filePath,
		ContentType: resp.Header.Get("Content-Type"),
	}
	if v := resp.Header.Get("Content-Length"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			info.Size = n
		}
	}
	if v := resp.Header.Get("Last-Modified"); v != "" {
		if t, err := http.ParseTime(v); err == nil {
			info.Modified = t.UTC()
		}
	}

	parent, name := path.Split(filePath)
	if listing, err := c.List(ctx, parent, true); err == nil {
		for _, f := range listing.Files {
			if f.Name == name {
				info.Tags = f.Tags
				if f.Size > 0 {
					info.Size = f.Size
				}
				break
			}
		}
	}
	return info, nil
}

// Ping probes the server root and returns the Server response header.
func (c *Client) Ping(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	resp, err := c.do(ctx, http.MethodGet, "/", url.Values{"ls": {""}}, nil, "")
	if err != nil {
		return "", err
	}
	resp.Body.Close()
	return resp.Header.Get("Server"), nil
}

type wireDownload struct {
	Path   string  `json:"vp"`
	Client string  `json:"ip"`
	Sent   int64   `json:"sent"`
	Size   int64   `json:"sz"`
	Speed  float64 `json:"spd"`
}

type wireDownloads struct {
	Dls []wireDownload `json:"dls"`
}

// ActiveDownloads returns transfers currently in flight on the server.
func (c *Client) ActiveDownloads(ctx context.Context) ([]models.ActiveDownload, error) {
	q := url.Values{"dls": {""}, "j": {""}}
	var wire wireDownloads
	if err := c.getJSON(ctx, "/", q, &wire); err != nil {
		return nil, err
	}

	dls := make([]models.ActiveDownload, 0, len(wire.Dls))
	for _, d := range wire.Dls {
		dls = append(dls, models.ActiveDownload{
			Path:   d.Path,
			Client: d.Client,
			Sent:   d.Sent,
			Size:   d.Size,
			Speed:  d.Speed,
		})
	}
	return dls, nil
}
