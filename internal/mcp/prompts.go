// ABOUTME: MCP prompts for common file-management workflows.
// ABOUTME: Pre-built instructions that lean on the adapter's tools.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "organize-directory",
		Description: "Review a directory's contents and propose a cleaner structure",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "path",
				Description: "Directory to organize",
				Required:    true,
			},
		},
	}, s.getOrganizeDirectoryPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "find-duplicates",
		Description: "Look for likely duplicate files under a path",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "path",
				Description: "Directory to scan (default: /)",
				Required:    false,
			},
		},
	}, s.getFindDuplicatesPrompt)
}

func (s *Server) getOrganizeDirectoryPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	path, ok := req.Params.Arguments["path"]
	if !ok || path == "" {
		path = "/"
	}

	template := fmt.Sprintf(`Organize the directory %s on the file server.

1. Use list_files on %s (set include_dotfiles if hidden files matter).
2. Group the entries by type and purpose; note anything that looks misplaced.
3. Propose a target layout with create_directory and move_file calls.
4. Ask before deleting anything; use delete_file only after confirmation.

Keep moves reversible: prefer renames within the same volume and list
every planned operation before executing it.`, path, path)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}

func (s *Server) getFindDuplicatesPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	path, ok := req.Params.Arguments["path"]
	if !ok || path == "" {
		path = "/"
	}

	template := fmt.Sprintf(`Find likely duplicate files under %s.

1. Use list_files recursively starting at %s, collecting name and size.
2. Flag files with identical sizes and similar names (copy suffixes,
   "(1)" markers, same stem with different extensions).
3. For suspected pairs, compare content with get_file_metadata or by
   downloading small files.
4. Report the duplicates grouped together with their paths and sizes;
   do not delete anything without confirmation.`, path, path)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}
