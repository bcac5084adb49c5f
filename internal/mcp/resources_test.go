// ABOUTME: Tests for the fixed resources and workflow prompts.
// ABOUTME: Uses the same in-memory transport fixture as the tool tests.

package mcp

import (
	"context"
	"net/http"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchSyntaxResource(t *testing.T) {
	f := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	res, err := f.session.ReadResource(context.Background(), &mcp.ReadResourceParams{
		URI: "copyparty://search-syntax",
	})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, "quoted phrases")
	assert.Contains(t, res.Contents[0].Text, "ext:")
}

func TestServerInfoResource(t *testing.T) {
	f := setup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dirs":[],"files":[]}`))
	})

	res, err := f.session.ReadResource(context.Background(), &mcp.ReadResourceParams{
		URI: "copyparty://server-info",
	})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1)
	assert.Contains(t, res.Contents[0].Text, `"copyparty_accessible": true`)
}

func TestOrganizeDirectoryPrompt(t *testing.T) {
	f := setup(t, func(w http.ResponseWriter, r *http.Request) {})

	res, err := f.session.GetPrompt(context.Background(), &mcp.GetPromptParams{
		Name:      "organize-directory",
		Arguments: map[string]string{"path": "/inbox"},
	})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)

	tc, ok := res.Messages[0].Content.(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, tc.Text, "/inbox")
	assert.Contains(t, tc.Text, "list_files")
}
