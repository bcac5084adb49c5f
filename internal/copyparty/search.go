// ABOUTME: Server-side search passthrough and local query sanity checks.
// ABOUTME: The query mini-language is interpreted by copyparty, not here.

package copyparty

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/harper/copyparty-mcp/internal/models"
)

// CheckQuery rejects queries the server would misparse. The only local
// rule is quote balance; everything else (quoted phrases, -exclusion,
// tag:, ext:, size>, date>) passes through verbatim.
func CheckQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return Validationf("search query is required")
	}
	if strings.Count(query, `"`)%2 != 0 {
		return Validationf("unbalanced quotes in search query %q", query)
	}
	return nil
}

type wireHit struct {
	Path string         `json:"rp"`
	Size int64          `json:"sz"`
	Ts   int64          `json:"ts"`
	Tags map[string]any `json:"tags"`
}

type wireHits struct {
	Hits []wireHit `json:"hits"`
}

// Search runs a query against the server's search index, scoped to
// path. The query string is sent verbatim.
func (c *Client) Search(ctx context.Context, path, query string) ([]models.SearchHit, error) {
	if err := CheckQuery(query); err != nil {
		return nil, err
	}
	if path == "" {
		path = "/"
	}

	q := url.Values{"srch": {query}, "j": {""}}
	var wire wireHits
	if err := c.getJSON(ctx, path, q, &wire); err != nil {
		return nil, err
	}

	hits := make([]models.SearchHit, 0, len(wire.Hits))
	for _, h := range wire.Hits {
		hit := models.SearchHit{
			Path: h.Path,
			Size: h.Size,
			Tags: h.Tags,
		}
		if h.Ts > 0 {
			hit.Modified = time.Unix(h.Ts, 0).UTC()
		}
		hits = append(hits, hit)
	}
	return hits, nil
}
