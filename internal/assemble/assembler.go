// Package assemble concatenates the directory tree and file contents into the
// single prompt body sent to the generation endpoint.
package assemble

import (
	"strings"

	"github.com/Pubzeee/nasikoai/internal/types"
)

const (
	treeSectionHeader  = "# Project Directory Tree"
	filesSectionHeader = "# File Contents"
	fileHeaderPrefix   = "## File: "
	fencedBlockMarker  = "```"
	plainTextLanguage  = "text"
)

// BuildContext renders the project context as one markdown document: the tree
// inside a fenced block followed by a labeled, fenced section per file. The
// output is deterministic for a given context; the per-file truncation applied
// during scanning is the only size control.
func BuildContext(projectContext types.ProjectContext) string {
	var builder strings.Builder

	builder.WriteString(treeSectionHeader + "\n")
	builder.WriteString(fencedBlockMarker + "\n")
	builder.WriteString(projectContext.Tree)
	if !strings.HasSuffix(projectContext.Tree, "\n") {
		builder.WriteString("\n")
	}
	builder.WriteString(fencedBlockMarker + "\n\n")
	builder.WriteString(filesSectionHeader + "\n")

	for _, fileEntry := range projectContext.Files {
		builder.WriteString("\n" + fileHeaderPrefix + fileEntry.RelativePath + "\n")
		builder.WriteString(fencedBlockMarker + fenceLanguage(fileEntry.Extension) + "\n")
		builder.WriteString(fileEntry.Content)
		builder.WriteString("\n" + fencedBlockMarker + "\n")
	}

	return builder.String()
}

// fenceLanguage returns the info string for a file's fenced block: the
// extension without its leading dot, or "text" when no extension exists.
func fenceLanguage(extension string) string {
	trimmed := strings.TrimPrefix(extension, ".")
	if trimmed == "" {
		return plainTextLanguage
	}
	return trimmed
}
