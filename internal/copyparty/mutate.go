// ABOUTME: Mutating operations: mkdir, delete, move, copy.
// ABOUTME: Each maps to one copyparty POST; batches aggregate per path.

package copyparty

import (
	"context"
	"net/url"
)

// Mkdir creates a directory called name under the parent path.
func (c *Client) Mkdir(ctx context.Context, parent, name string) error {
	if parent == "" {
		return Validationf("parent path is required")
	}
	if name == "" {
		return Validationf("directory name is required")
	}
	form := url.Values{"act": {"mkdir"}, "name": {name}}
	return c.postForm(ctx, parent, nil, form)
}

// Delete removes a file or directory tree.
func (c *Client) Delete(ctx context.Context, path string) error {
	if path == "" || path == "/" {
		return Validationf("path is required and cannot be the volume root")
	}
	return c.postForm(ctx, path, url.Values{"delete": {""}}, nil)
}

// BatchResult is the outcome of one path in a batch operation.
type BatchResult struct {
	Path  string `json:"path"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// DeleteAll deletes every path independently and reports one result
// per input path. A failure on one path never aborts the rest.
func (c *Client) DeleteAll(ctx context.Context, paths []string) ([]BatchResult, error) {
	if len(paths) == 0 {
		return nil, Validationf("at least one path is required")
	}
	results := make([]BatchResult, 0, len(paths))
	for _, p := range paths {
		r := BatchResult{Path: p, OK: true}
		if err := c.Delete(ctx, p); err != nil {
			r.OK = false
			r.Error = err.Error()
		}
		results = append(results, r)
	}
	return results, nil
}

// Move renames or relocates a file or directory.
func (c *Client) Move(ctx context.Context, src, dst string) error {
	if src == "" {
		return Validationf("source path is required")
	}
	if dst == "" {
		return Validationf("destination path is required")
	}
	return c.postForm(ctx, src, url.Values{"move": {dst}}, nil)
}

// Copy duplicates a file or directory.
func (c *Client) Copy(ctx context.Context, src, dst string) error {
	if src == "" {
		return Validationf("source path is required")
	}
	if dst == "" {
		return Validationf("destination path is required")
	}
	return c.postForm(ctx, src, url.Values{"copy": {dst}}, nil)
}
