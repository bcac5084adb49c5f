// ABOUTME: Server activity models: recent uploads and in-flight downloads.
// ABOUTME: Relayed views of copyparty's activity endpoints.

package models

import (
	"time"
)

// RecentUpload is one entry from the server's recent-uploads log.
type RecentUpload struct {
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Uploaded time.Time `json:"uploaded,omitzero"`
	Client   string    `json:"client,omitempty"`
}

// ActiveDownload is one in-flight transfer reported by the server.
type ActiveDownload struct {
	Path   string  `json:"path"`
	Client string  `json:"client,omitempty"`
	Sent   int64   `json:"sent"`
	Size   int64   `json:"size"`
	Speed  float64 `json:"speed,omitempty"`
}
