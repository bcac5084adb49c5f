// ABOUTME: Metadata and status tools: file stat, server info, downloads, markdown.
// ABOUTME: Single-request reads with light envelope shaping.

package mcp

import (
	"context"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/harper/copyparty-mcp/internal/copyparty"
)

type fileMetadataInput struct {
	Path string `json:"path" jsonschema:"File path to stat"`
}

func registerGetFileMetadata(s *Server) error {
	return addTool(s, "get_file_metadata",
		"Get size, content type, modification time, and media tags for one file without downloading it.",
		func(ctx context.Context, in fileMetadataInput) (any, error) {
			return s.client.Stat(ctx, in.Path)
		})
}

func registerGetServerInfo(s *Server) error {
	return addTool(s, "get_server_info",
		"Report the adapter configuration and whether the copyparty server is reachable.",
		func(ctx context.Context, _ emptyInput) (any, error) {
			status := "connected"
			reachable := true
			serverHeader := ""

			header, err := s.client.Ping(ctx)
			if err != nil {
				status = "error: " + err.Error()
				reachable = false
			} else {
				serverHeader = header
			}

			return map[string]any{
				"mcp_server_name":           "copyparty-mcp",
				"version":                   s.version,
				"environment":               s.cfg.Environment,
				"copyparty_url":             s.client.BaseURL(),
				"copyparty_status":          status,
				"copyparty_accessible":      reachable,
				"copyparty_server":          serverHeader,
				"authentication_configured": s.client.HasAuth(),
			}, nil
		})
}

func registerGetActiveDownloads(s *Server) error {
	return addTool(s, "get_active_downloads",
		"List transfers currently in flight on the server.",
		func(ctx context.Context, _ emptyInput) (any, error) {
			dls, err := s.client.ActiveDownloads(ctx)
			if err != nil {
				return nil, err
			}
			return map[string]any{"downloads": dls}, nil
		})
}

type renderMarkdownInput struct {
	Path string `json:"path" jsonschema:"Markdown file path to render"`
}

func registerRenderMarkdown(s *Server) error {
	return addTool(s, "render_markdown",
		"Fetch a markdown file and return both the raw source and a plain-text rendering.",
		func(ctx context.Context, in renderMarkdownInput) (any, error) {
			if in.Path == "" {
				return nil, copyparty.Validationf("path is required")
			}
			raw, err := s.client.FetchText(ctx, in.Path)
			if err != nil {
				return nil, err
			}
			return map[string]any{
				"path":     in.Path,
				"markdown": raw,
				"rendered": renderMarkdown(raw),
			}, nil
		})
}

// renderMarkdown renders with the ANSI-free notty style, falling back
// to the raw source if the renderer cannot be built.
func renderMarkdown(src string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return src
	}
	out, err := renderer.Render(src)
	if err != nil {
		return src
	}
	return strings.TrimRight(out, "\n") + "\n"
}
