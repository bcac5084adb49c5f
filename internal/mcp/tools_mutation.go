// ABOUTME: Mutation tools: mkdir, delete, batch delete, move, copy, shares.
// ABOUTME: Batch delete reports per-path outcomes, never aborting the batch.

package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harper/copyparty-mcp/internal/copyparty"
)

type createDirectoryInput struct {
	Path string `json:"path" jsonschema:"Parent directory path"`
	Name string `json:"name" jsonschema:"Name of the new directory"`
}

func registerCreateDirectory(s *Server) error {
	return addTool(s, "create_directory",
		"Create a new directory under the given parent path.",
		func(ctx context.Context, in createDirectoryInput) (any, error) {
			if err := s.client.Mkdir(ctx, in.Path, in.Name); err != nil {
				return nil, err
			}
			return map[string]any{
				"success":   true,
				"path":      in.Path,
				"directory": in.Name,
				"message":   fmt.Sprintf("directory %q created at %s", in.Name, in.Path),
			}, nil
		})
}

type deleteFileInput struct {
	Path string `json:"path" jsonschema:"Path of the file or directory to delete"`
}

func registerDeleteFile(s *Server) error {
	return addTool(s, "delete_file",
		"Delete a file or directory recursively. This cannot be undone.",
		func(ctx context.Context, in deleteFileInput) (any, error) {
			if err := s.client.Delete(ctx, in.Path); err != nil {
				return nil, err
			}
			return map[string]any{
				"success": true,
				"path":    in.Path,
				"message": fmt.Sprintf("deleted %s", in.Path),
			}, nil
		})
}

type deleteMultipleInput struct {
	Paths []string `json:"paths" jsonschema:"Paths to delete, each attempted independently"`
}

func registerDeleteMultipleFiles(s *Server) error {
	return addTool(s, "delete_multiple_files",
		"Delete several paths in one call. Each path is attempted independently and the result lists one outcome per path; one failure never aborts the rest.",
		func(ctx context.Context, in deleteMultipleInput) (any, error) {
			results, err := s.client.DeleteAll(ctx, in.Paths)
			if err != nil {
				return nil, err
			}
			succeeded := 0
			for _, r := range results {
				if r.OK {
					succeeded++
				}
			}
			return map[string]any{
				"results":   results,
				"succeeded": succeeded,
				"failed":    len(results) - succeeded,
			}, nil
		})
}

type moveFileInput struct {
	SourcePath      string `json:"source_path" jsonschema:"Current path of the file or directory"`
	DestinationPath string `json:"destination_path" jsonschema:"New path for the file or directory"`
}

func registerMoveFile(s *Server) error {
	return addTool(s, "move_file",
		"Move or rename a file or directory.",
		func(ctx context.Context, in moveFileInput) (any, error) {
			if err := s.client.Move(ctx, in.SourcePath, in.DestinationPath); err != nil {
				return nil, err
			}
			return map[string]any{
				"success":     true,
				"source":      in.SourcePath,
				"destination": in.DestinationPath,
				"message":     fmt.Sprintf("moved %s to %s", in.SourcePath, in.DestinationPath),
			}, nil
		})
}

type copyFileInput struct {
	SourcePath      string `json:"source_path" jsonschema:"Path of the file or directory to copy"`
	DestinationPath string `json:"destination_path" jsonschema:"Destination path for the copy"`
}

func registerCopyFile(s *Server) error {
	return addTool(s, "copy_file",
		"Copy a file or directory to a new path, creating a duplicate.",
		func(ctx context.Context, in copyFileInput) (any, error) {
			if err := s.client.Copy(ctx, in.SourcePath, in.DestinationPath); err != nil {
				return nil, err
			}
			return map[string]any{
				"success":     true,
				"source":      in.SourcePath,
				"destination": in.DestinationPath,
				"message":     fmt.Sprintf("copied %s to %s", in.SourcePath, in.DestinationPath),
			}, nil
		})
}

type createShareInput struct {
	Path              string `json:"path" jsonschema:"Path to share"`
	ExpirationMinutes int    `json:"expiration_minutes,omitempty" jsonschema:"Minutes until the share expires (default: 60)"`
	ReadOnly          *bool  `json:"read_only,omitempty" jsonschema:"Whether the share is read-only (default: true)"`
	ShareKey          string `json:"share_key,omitempty" jsonschema:"Key for the share URL; generated when omitted"`
}

func registerCreateShare(s *Server) error {
	return addTool(s, "create_share",
		"Create a time-limited share link for a path. Returns the share key, URL, and expiration.",
		func(ctx context.Context, in createShareInput) (any, error) {
			minutes := in.ExpirationMinutes
			if minutes == 0 {
				minutes = 60
			}
			if minutes < 0 {
				return nil, copyparty.Validationf("expiration_minutes cannot be negative")
			}
			readOnly := in.ReadOnly == nil || *in.ReadOnly
			return s.client.CreateShare(ctx, in.Path, in.ShareKey, time.Duration(minutes)*time.Minute, readOnly)
		})
}

type updateShareInput struct {
	ShareKey          string `json:"share_key" jsonschema:"Key of the share to update"`
	ExpirationMinutes int    `json:"expiration_minutes" jsonschema:"New lifetime in minutes, counted from now"`
}

func registerUpdateShareExpiration(s *Server) error {
	return addTool(s, "update_share_expiration",
		"Move a share's expiration to now plus the given number of minutes.",
		func(ctx context.Context, in updateShareInput) (any, error) {
			if in.ExpirationMinutes <= 0 {
				return nil, copyparty.Validationf("expiration_minutes must be positive")
			}
			expiry := time.Duration(in.ExpirationMinutes) * time.Minute
			if err := s.client.UpdateShareExpiry(ctx, in.ShareKey, expiry); err != nil {
				return nil, err
			}
			return map[string]any{
				"success":    true,
				"share_key":  in.ShareKey,
				"expires_at": time.Now().Add(expiry).UTC(),
			}, nil
		})
}

type deleteShareInput struct {
	ShareKey string `json:"share_key" jsonschema:"Key of the share to delete"`
}

func registerDeleteShare(s *Server) error {
	return addTool(s, "delete_share",
		"Revoke a share. The path itself is untouched.",
		func(ctx context.Context, in deleteShareInput) (any, error) {
			if err := s.client.DeleteShare(ctx, in.ShareKey); err != nil {
				return nil, err
			}
			return map[string]any{
				"success":   true,
				"share_key": in.ShareKey,
				"message":   fmt.Sprintf("share %s deleted", in.ShareKey),
			}, nil
		})
}
