// ABOUTME: MCP resources: server info and the search-syntax reference.
// ABOUTME: Fixed URIs under the copyparty:// scheme.

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const searchSyntaxDoc = `# copyparty search syntax

Queries passed to the search_files tool are interpreted by the server:

- plain words match anywhere in the path: report 2024
- quoted phrases match exactly: "quarterly report"
- a leading dash excludes: report -draft
- tag:value matches indexed media tags: tag:artist=daft
- ext:value matches file extensions: ext:flac
- size>N / size<N filter by bytes: size>1000000
- date>YYYY-MM-DD / date<YYYY-MM-DD filter by modification time

Terms combine with implicit AND. Quotes must be balanced; the adapter
rejects unbalanced quotes before contacting the server.
`

func (s *Server) registerResources() {
	s.server.AddResource(
		&mcp.Resource{
			URI:         "copyparty://server-info",
			Name:        "Server info",
			Description: "Adapter configuration and copyparty connection state",
			MIMEType:    "application/json",
		},
		s.readResource,
	)

	s.server.AddResource(
		&mcp.Resource{
			URI:         "copyparty://search-syntax",
			Name:        "Search syntax",
			Description: "Reference for the search_files query mini-language",
			MIMEType:    "text/markdown",
		},
		s.readResource,
	)
}

func (s *Server) readResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	switch req.Params.URI {
	case "copyparty://search-syntax":
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      req.Params.URI,
					MIMEType: "text/markdown",
					Text:     searchSyntaxDoc,
				},
			},
		}, nil

	case "copyparty://server-info":
		_, err := s.client.Ping(ctx)
		info := map[string]any{
			"copyparty_url":             s.client.BaseURL(),
			"copyparty_accessible":      err == nil,
			"environment":               s.cfg.Environment,
			"authentication_configured": s.client.HasAuth(),
			"version":                   s.version,
		}
		data, merr := json.MarshalIndent(info, "", "  ")
		if merr != nil {
			return nil, merr
		}
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{
				{
					URI:      req.Params.URI,
					MIMEType: "application/json",
					Text:     string(data),
				},
			},
		}, nil
	}

	return nil, fmt.Errorf("unknown resource URI: %s", req.Params.URI)
}
