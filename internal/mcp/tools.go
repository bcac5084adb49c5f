// ABOUTME: Tool registration table and the shared result/error envelope.
// ABOUTME: Input schemas are derived from typed structs, built at startup.

package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/harper/copyparty-mcp/internal/copyparty"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerTools binds every tool name to its handler and schema.
func (s *Server) registerTools() error {
	regs := []func(*Server) error{
		// listing
		registerListFiles,
		registerSearchFiles,
		registerRecentUploads,
		registerAllRecentUploads,
		registerListShares,
		// transfer
		registerDownloadFile,
		registerDownloadFileAsText,
		registerUploadFile,
		registerDownloadAsTar,
		registerDownloadAsZip,
		registerGetThumbnail,
		registerTailFile,
		// mutation
		registerCreateDirectory,
		registerDeleteFile,
		registerDeleteMultipleFiles,
		registerMoveFile,
		registerCopyFile,
		registerCreateShare,
		registerUpdateShareExpiration,
		registerDeleteShare,
		// metadata / info
		registerGetFileMetadata,
		registerGetServerInfo,
		registerGetActiveDownloads,
		registerRenderMarkdown,
	}
	for _, reg := range regs {
		if err := reg(s); err != nil {
			return err
		}
	}
	return nil
}

// addTool registers one tool with a schema inferred from In. Handler
// errors become structured failure envelopes, never protocol faults.
func addTool[In any](s *Server, name, description string, handler func(ctx context.Context, in In) (any, error)) error {
	schema, err := jsonschema.For[In](nil)
	if err != nil {
		return fmt.Errorf("schema for %s: %w", name, err)
	}

	tool := &mcp.Tool{
		Name:        name,
		Description: description,
		InputSchema: schema,
	}

	mcp.AddTool(s.server, tool, func(ctx context.Context, req *mcp.CallToolRequest, in In) (*mcp.CallToolResult, any, error) {
		out, err := handler(ctx, in)
		if err != nil {
			s.logger.Warn("tool failed", "tool", name, "error", err)
			return failure(err), nil, nil
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return nil, nil, fmt.Errorf("encode result: %w", err)
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		}, nil, nil
	})
	return nil
}

// failureBody is the structured failure descriptor every tool shares.
type failureBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}

// failure maps a client error onto the typed failure envelope.
func failure(err error) *mcp.CallToolResult {
	body := failureBody{Kind: "internal", Message: err.Error()}

	var (
		ve *copyparty.ValidationError
		ce *copyparty.ConnectivityError
		ae *copyparty.AuthError
		re *copyparty.RemoteError
		te *copyparty.NotTextError
	)
	switch {
	case errors.As(err, &ve):
		body.Kind = "validation"
	case errors.As(err, &ae):
		body.Kind = "auth"
		body.Status = ae.Status
	case errors.As(err, &ce):
		body.Kind = "connectivity"
	case errors.As(err, &re):
		body.Kind = "remote"
		body.Status = re.Status
	case errors.As(err, &te):
		body.Kind = "not_text"
	}

	data, _ := json.MarshalIndent(map[string]failureBody{"error": body}, "", "  ")
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		IsError: true,
	}
}
