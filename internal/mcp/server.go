// ABOUTME: MCP server exposing a copyparty file server as callable tools.
// ABOUTME: Wires the HTTP client into tools, resources, and prompts.

package mcp

import (
	"context"
	"log/slog"

	"github.com/harper/copyparty-mcp/internal/config"
	"github.com/harper/copyparty-mcp/internal/copyparty"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type Server struct {
	server  *mcp.Server
	client  *copyparty.Client
	cfg     *config.Config
	logger  *slog.Logger
	version string
}

func NewServer(client *copyparty.Client, cfg *config.Config, logger *slog.Logger, version string) (*Server, error) {
	s := &Server{
		client:  client,
		cfg:     cfg,
		logger:  logger,
		version: version,
	}

	s.server = mcp.NewServer(
		&mcp.Implementation{
			Name:    "copyparty-mcp",
			Version: version,
		},
		&mcp.ServerOptions{
			HasTools:     true,
			HasResources: true,
			HasPrompts:   true,
		},
	)

	if err := s.registerTools(); err != nil {
		return nil, err
	}
	s.registerResources()
	s.registerPrompts()

	return s, nil
}

func (s *Server) Serve(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
