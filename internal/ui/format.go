// ABOUTME: Terminal formatting for copyparty-mcp CLI output.
// ABOUTME: Uses fatih/color for styling and go-humanize for sizes.

package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/harper/copyparty-mcp/internal/models"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func FormatListingHeader(path string, dirs, files int) string {
	return fmt.Sprintf("%s  %s\n", bold(path), faint(fmt.Sprintf("(%d dirs, %d files)", dirs, files)))
}

func FormatEntry(e models.Entry) string {
	var sb strings.Builder

	if e.IsDir {
		sb.WriteString(fmt.Sprintf("  %s  %s\n", faint("dir "), cyan(e.Name+"/")))
		return sb.String()
	}

	sb.WriteString(fmt.Sprintf("  %s  %s", faint(pad(humanize.Bytes(uint64(e.Size)), 10)), e.Name))
	if !e.Modified.IsZero() {
		sb.WriteString(fmt.Sprintf("  %s", faint(e.Modified.Format("2006-01-02 15:04"))))
	}
	sb.WriteString("\n")
	return sb.String()
}

func FormatShare(s models.Share) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(s.Key), bold(s.Path)))
	mode := "read-only"
	if !s.ReadOnly {
		mode = "read-write"
	}
	expires := "never"
	if !s.ExpiresAt.IsZero() {
		expires = s.ExpiresAt.Format("2006-01-02 15:04")
	}
	sb.WriteString(fmt.Sprintf("            %s %s  %s %s\n",
		faint("mode:"), mode,
		faint("expires:"), expires))
	if s.URL != "" {
		sb.WriteString(fmt.Sprintf("            %s\n", cyan(s.URL)))
	}
	return sb.String()
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return strings.Repeat(" ", w-len(s)) + s
}
