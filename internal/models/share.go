// ABOUTME: Share model for time-limited access links issued by copyparty.
// ABOUTME: Lifecycle is owned by the server; this is the relayed view.

package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Share is a server-issued access link for a path.
type Share struct {
	Key       string    `json:"key"`
	Path      string    `json:"path"`
	URL       string    `json:"url,omitempty"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
	ReadOnly  bool      `json:"read_only"`
}

// NewShareKey generates a short random key for a new share.
func NewShareKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:10]
}
