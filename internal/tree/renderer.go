// Package tree renders a box-drawing representation of a project directory.
package tree

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/Pubzeee/nasikoai/internal/config"
	"github.com/Pubzeee/nasikoai/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	directorySuffix = "/"

	invalidDirectoryFormat         = "Invalid directory: %s"
	skipUnreadableDirectoryMessage = "skipping unreadable directory in tree"
)

// Renderer draws directory trees honoring the exclusion patterns.
type Renderer struct {
	exclusionPatterns []string
	logger            *zap.Logger
}

// NewRenderer constructs a Renderer for the provided settings.
func NewRenderer(settings config.Settings, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{exclusionPatterns: settings.ExclusionPatterns, logger: logger}
}

// Render returns a multi-line tree of all non-excluded entries under
// rootDirectoryPath. Directories are listed before files, each group sorted
// alphabetically ignoring case, so rendering an unchanged directory twice
// yields byte-identical output. Unreadable subdirectories are skipped with a
// warning rather than aborting the render.
func (renderer *Renderer) Render(rootDirectoryPath string) string {
	rootInformation, statError := os.Stat(rootDirectoryPath)
	if statError != nil || !rootInformation.IsDir() {
		return fmt.Sprintf(invalidDirectoryFormat, rootDirectoryPath)
	}

	var builder strings.Builder
	builder.WriteString(filepath.Base(filepath.Clean(rootDirectoryPath)) + directorySuffix + "\n")
	renderer.renderChildren(&builder, rootDirectoryPath, rootDirectoryPath, "")
	return builder.String()
}

// renderChildren appends one tree level and recurses into subdirectories.
func (renderer *Renderer) renderChildren(builder *strings.Builder, currentDirectoryPath string, rootDirectoryPath string, linePrefix string) {
	directoryEntries, readDirectoryError := os.ReadDir(currentDirectoryPath)
	if readDirectoryError != nil {
		renderer.logger.Warn(skipUnreadableDirectoryMessage,
			zap.String("path", currentDirectoryPath), zap.Error(readDirectoryError))
		return
	}

	var visibleEntries []os.DirEntry
	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(currentDirectoryPath, directoryEntry.Name())
		relativeChildPath := relativeOrSelf(childPath, rootDirectoryPath)
		if utils.ShouldExcludePath(relativeChildPath, renderer.exclusionPatterns) {
			continue
		}
		visibleEntries = append(visibleEntries, directoryEntry)
	}

	sort.SliceStable(visibleEntries, func(firstIndex, secondIndex int) bool {
		firstEntry := visibleEntries[firstIndex]
		secondEntry := visibleEntries[secondIndex]
		if firstEntry.IsDir() != secondEntry.IsDir() {
			return firstEntry.IsDir()
		}
		return strings.ToLower(firstEntry.Name()) < strings.ToLower(secondEntry.Name())
	})

	for entryIndex, directoryEntry := range visibleEntries {
		isLastEntry := entryIndex == len(visibleEntries)-1
		connector := treeBranchConnector
		childPadding := treeBranchPadding
		if isLastEntry {
			connector = treeLastConnector
			childPadding = treeLastPadding
		}

		entryName := directoryEntry.Name()
		if directoryEntry.IsDir() {
			entryName += directorySuffix
		}
		builder.WriteString(linePrefix + connector + entryName + "\n")

		if directoryEntry.IsDir() {
			childPath := filepath.Join(currentDirectoryPath, directoryEntry.Name())
			renderer.renderChildren(builder, childPath, rootDirectoryPath, linePrefix+childPadding)
		}
	}
}

func relativeOrSelf(fullPath string, root string) string {
	relativePath, relativeError := filepath.Rel(root, fullPath)
	if relativeError != nil {
		return filepath.Clean(fullPath)
	}
	return filepath.ToSlash(relativePath)
}
