// ABOUTME: Share management against copyparty's ?share / ?eshare endpoints.
// ABOUTME: The server owns share state; these calls only relay it.

package copyparty

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/harper/copyparty-mcp/internal/models"
)

type wireShareReq struct {
	Key   string   `json:"k"`
	Path  string   `json:"vp"`
	Exp   int      `json:"exp"`
	Perms []string `json:"perms"`
}

// CreateShare issues a time-limited access link for path. A blank key
// gets a generated one. expiry 0 means the server default.
func (c *Client) CreateShare(ctx context.Context, path, key string, expiry time.Duration, readOnly bool) (*models.Share, error) {
	if path == "" {
		return nil, Validationf("path is required")
	}
	if expiry < 0 {
		return nil, Validationf("expiration cannot be negative")
	}
	if key == "" {
		key = models.NewShareKey()
	}

	perms := []string{"read"}
	if !readOnly {
		perms = append(perms, "write")
	}
	body, err := json.Marshal(wireShareReq{
		Key:   key,
		Path:  path,
		Exp:   int(expiry.Minutes()),
		Perms: perms,
	})
	if err != nil {
		return nil, fmt.Errorf("encode share request: %w", err)
	}

	q := url.Values{"share": {""}}
	if _, _, err := c.fetch(ctx, http.MethodPost, "/", q, bytes.NewReader(body), "application/json"); err != nil {
		return nil, err
	}

	share := &models.Share{
		Key:      key,
		Path:     path,
		URL:      c.shareURL(key),
		ReadOnly: readOnly,
	}
	if expiry > 0 {
		share.ExpiresAt = time.Now().Add(expiry).UTC()
	}
	return share, nil
}

type wireShare struct {
	Key   string `json:"k"`
	Path  string `json:"vp"`
	Exp   int64  `json:"t1"`
	Perms string `json:"perms"`
}

type wireShares struct {
	Shares []wireShare `json:"shares"`
}

// ListShares returns every share the server reports for this account.
func (c *Client) ListShares(ctx context.Context) ([]models.Share, error) {
	q := url.Values{"shares": {""}, "j": {""}}
	var wire wireShares
	if err := c.getJSON(ctx, "/", q, &wire); err != nil {
		return nil, err
	}

	shares := make([]models.Share, 0, len(wire.Shares))
	for _, s := range wire.Shares {
		share := models.Share{
			Key:      s.Key,
			Path:     s.Path,
			URL:      c.shareURL(s.Key),
			ReadOnly: !strings.Contains(s.Perms, "write"),
		}
		if s.Exp > 0 {
			share.ExpiresAt = time.Unix(s.Exp, 0).UTC()
		}
		shares = append(shares, share)
	}
	return shares, nil
}

// UpdateShareExpiry moves a share's expiration to now plus expiry.
func (c *Client) UpdateShareExpiry(ctx context.Context, key string, expiry time.Duration) error {
	if key == "" {
		return Validationf("share key is required")
	}
	if expiry <= 0 {
		return Validationf("expiration must be positive")
	}
	minutes := strconv.Itoa(int(expiry.Minutes()))
	return c.postForm(ctx, "/", url.Values{"eshare": {minutes}}, url.Values{"k": {key}})
}

// DeleteShare revokes a share.
func (c *Client) DeleteShare(ctx context.Context, key string) error {
	if key == "" {
		return Validationf("share key is required")
	}
	return c.postForm(ctx, "/", url.Values{"eshare": {"rm"}}, url.Values{"k": {key}})
}

func (c *Client) shareURL(key string) string {
	return strings.TrimSuffix(c.base.String(), "/") + "/shr/" + key
}
