// ABOUTME: Remote file and directory entry models projected from copyparty listings.
// ABOUTME: Read-only views; the server owns the underlying data.

package models

import (
	"time"
)

// Entry is one file or directory in a copyparty listing.
type Entry struct {
	Name     string         `json:"name"`
	Href     string         `json:"href"`
	Size     int64          `json:"size"`
	Modified time.Time      `json:"modified"`
	IsDir    bool           `json:"is_dir"`
	Tags     map[string]any `json:"tags,omitempty"`
}

// Listing is the contents of one remote directory, in server order.
type Listing struct {
	Path  string  `json:"path"`
	Dirs  []Entry `json:"dirs"`
	Files []Entry `json:"files"`
}

// SearchHit is one match from the server-side search index.
type SearchHit struct {
	Path     string         `json:"path"`
	Size     int64          `json:"size"`
	Modified time.Time      `json:"modified"`
	Tags     map[string]any `json:"tags,omitempty"`
}

// FileInfo is the metadata view of a single remote file.
type FileInfo struct {
	Path        string         `json:"path"`
	ContentType string         `json:"content_type"`
	Size        int64          `json:"size"`
	Modified    time.Time      `json:"modified,omitzero"`
	Tags        map[string]any `json:"tags,omitempty"`
}

// UploadReceipt is the server's acknowledgement of a completed upload.
type UploadReceipt struct {
	Path     string `json:"path"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	URL      string `json:"url,omitempty"`
	Checksum string `json:"checksum,omitempty"`
}
