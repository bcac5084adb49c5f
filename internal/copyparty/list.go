// ABOUTME: Directory listings and recent-upload queries.
// ABOUTME: Decodes copyparty's ?ls and ?ups JSON into model types.

package copyparty

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/harper/copyparty-mcp/internal/models"
)

// wireEntry is one file or directory in copyparty's ?ls response.
type wireEntry struct {
	Href string         `json:"href"`
	Size int64          `json:"sz"`
	Ts   int64          `json:"ts"`
	Tags map[string]any `json:"tags"`
}

type wireListing struct {
	Dirs  []wireEntry `json:"dirs"`
	Files []wireEntry `json:"files"`
}

// List returns the contents of a remote directory in server order.
// Dotfiles are included only when dotfiles is set.
func (c *Client) List(ctx context.Context, path string, dotfiles bool) (*models.Listing, error) {
	if path == "" {
		path = "/"
	}
	q := url.Values{"ls": {""}}
	if dotfiles {
		q.Set("dots", "")
	}

	var wire wireListing
	if err := c.getJSON(ctx, path, q, &wire); err != nil {
		return nil, err
	}

	listing := &models.Listing{
		Path:  path,
		Dirs:  make([]models.Entry, 0, len(wire.Dirs)),
		Files: make([]models.Entry, 0, len(wire.Files)),
	}
	for _, d := range wire.Dirs {
		listing.Dirs = append(listing.Dirs, toEntry(d, true))
	}
	for _, f := range wire.Files {
		listing.Files = append(listing.Files, toEntry(f, false))
	}
	return listing, nil
}

func toEntry(w wireEntry, isDir bool) models.Entry {
	e := models.Entry{
		Name:  entryName(w.Href),
		Href:  w.Href,
		Size:  w.Size,
		IsDir: isDir,
		Tags:  w.Tags,
	}
	if w.Ts > 0 {
		e.Modified = time.Unix(w.Ts, 0).UTC()
	}
	return e
}

// entryName extracts the display name from an href, which may carry a
// trailing slash (directories) and percent-encoding.
func entryName(href string) string {
	name := strings.TrimSuffix(href, "/")
	if i := strings.IndexByte(name, '?'); i >= 0 {
		name = name[:i]
	}
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if dec, err := url.PathUnescape(name); err == nil {
		return dec
	}
	return name
}

type wireUpload struct {
	Path   string `json:"vp"`
	Size   int64  `json:"sz"`
	At     int64  `json:"at"`
	Client string `json:"ip"`
}

type wireUploads struct {
	Ups []wireUpload `json:"ups"`
}

// RecentUploads returns the server's recent-uploads log. With all set
// it requests every client's uploads (admin only); otherwise only the
// caller's own. filter narrows results to paths containing it.
func (c *Client) RecentUploads(ctx context.Context, filter string, all bool) ([]models.RecentUpload, error) {
	q := url.Values{"ups": {""}, "j": {""}}
	if filter != "" {
		q.Set("filter", filter)
	}
	if all {
		q.Set("all", "")
	}

	var wire wireUploads
	if err := c.getJSON(ctx, "/", q, &wire); err != nil {
		return nil, err
	}

	ups := make([]models.RecentUpload, 0, len(wire.Ups))
	for _, u := range wire.Ups {
		r := models.RecentUpload{
			Path:   u.Path,
			Size:   u.Size,
			Client: u.Client,
		}
		if u.At > 0 {
			r.Uploaded = time.Unix(u.At, 0).UTC()
		}
		ups = append(ups, r)
	}
	return ups, nil
}
