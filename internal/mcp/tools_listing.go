// ABOUTME: Listing tools: directory listing, search, recent uploads, shares.
// ABOUTME: Each is one GET against the server with the result relayed in order.

package mcp

import (
	"context"
)

type listFilesInput struct {
	Path            string `json:"path,omitempty" jsonschema:"Directory path to list (default: /)"`
	IncludeDotfiles bool   `json:"include_dotfiles,omitempty" jsonschema:"Include hidden files starting with a dot"`
}

func registerListFiles(s *Server) error {
	return addTool(s, "list_files",
		"List files and folders in a directory on the copyparty server. Returns names, sizes, timestamps, and media tags in server order.",
		func(ctx context.Context, in listFilesInput) (any, error) {
			return s.client.List(ctx, in.Path, in.IncludeDotfiles)
		})
}

type searchFilesInput struct {
	Query string `json:"query" jsonschema:"Search query. Supports quoted phrases, -exclusion, tag:, ext:, size>, and date> terms; interpreted by the server."`
	Path  string `json:"path,omitempty" jsonschema:"Directory to scope the search to (default: /)"`
}

func registerSearchFiles(s *Server) error {
	return addTool(s, "search_files",
		"Search the server's file index. The query mini-language (quoted phrases, -exclusion, tag:, ext:, size>, date>) is passed through verbatim.",
		func(ctx context.Context, in searchFilesInput) (any, error) {
			hits, err := s.client.Search(ctx, in.Path, in.Query)
			if err != nil {
				return nil, err
			}
			return map[string]any{"query": in.Query, "hits": hits}, nil
		})
}

type recentUploadsInput struct {
	FilterPath string `json:"filter_path,omitempty" jsonschema:"Only show uploads whose path contains this pattern"`
}

func registerRecentUploads(s *Server) error {
	return addTool(s, "get_recent_uploads",
		"Get recent uploads from your own address, optionally filtered by path pattern.",
		func(ctx context.Context, in recentUploadsInput) (any, error) {
			ups, err := s.client.RecentUploads(ctx, in.FilterPath, false)
			if err != nil {
				return nil, err
			}
			return map[string]any{"uploads": ups}, nil
		})
}

type emptyInput struct{}

func registerAllRecentUploads(s *Server) error {
	return addTool(s, "get_all_recent_uploads",
		"Get recent uploads from all clients. Requires an admin account on the server.",
		func(ctx context.Context, _ emptyInput) (any, error) {
			ups, err := s.client.RecentUploads(ctx, "", true)
			if err != nil {
				return nil, err
			}
			return map[string]any{"uploads": ups}, nil
		})
}

func registerListShares(s *Server) error {
	return addTool(s, "list_shares",
		"List every active share on the server for this account, with paths and expiration times.",
		func(ctx context.Context, _ emptyInput) (any, error) {
			shares, err := s.client.ListShares(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]any{"shares": shares}, nil
		})
}
