// Package scan walks a project directory and collects the file entries that
// make up the generation context.
package scan

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Pubzeee/nasikoai/internal/config"
	"github.com/Pubzeee/nasikoai/internal/types"
	"github.com/Pubzeee/nasikoai/internal/utils"
)

const (
	missingRootMessage     = "scan root does not exist or is not a directory"
	accessFailedMessage    = "skipping inaccessible path"
	noMatchingFilesMessage = "no matching files found"
)

// Scanner walks a root directory applying the exclusion and extension filters.
type Scanner struct {
	settings config.Settings
	reader   *Reader
	logger   *zap.Logger
}

// NewScanner constructs a Scanner for the provided settings.
func NewScanner(settings config.Settings, logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		settings: settings,
		reader:   NewReader(settings.MaxCharsPerFile, logger),
		logger:   logger,
	}
}

// Scan returns the supported, non-excluded files under rootDirectoryPath with
// their content attached, in directory-first depth-first walk order. A missing
// or non-directory root yields an empty result with a warning; it is not an
// error. Excluded directories are pruned before descending.
func (scanner *Scanner) Scan(rootDirectoryPath string) []types.FileEntry {
	cleanedRootPath := filepath.Clean(rootDirectoryPath)

	var entries []types.FileEntry

	walkError := filepath.WalkDir(cleanedRootPath, func(walkedPath string, directoryEntry fs.DirEntry, accessError error) error {
		if accessError != nil {
			if walkedPath == cleanedRootPath {
				scanner.logger.Warn(missingRootMessage, zap.String("path", rootDirectoryPath), zap.Error(accessError))
				return filepath.SkipAll
			}
			scanner.logger.Warn(accessFailedMessage, zap.String("path", walkedPath), zap.Error(accessError))
			if directoryEntry != nil && directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		relativePath := relativeToRoot(walkedPath, cleanedRootPath)
		if relativePath == "." {
			if !directoryEntry.IsDir() {
				scanner.logger.Warn(missingRootMessage, zap.String("path", rootDirectoryPath))
				return filepath.SkipAll
			}
			return nil
		}

		if utils.ShouldExcludePath(relativePath, scanner.settings.ExclusionPatterns) {
			if directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if directoryEntry.IsDir() {
			return nil
		}

		extension := strings.ToLower(filepath.Ext(directoryEntry.Name()))
		if !utils.ContainsFold(scanner.settings.SupportedExtensions, extension) {
			return nil
		}

		content, truncated, ok := scanner.reader.ReadText(walkedPath)
		if !ok {
			return nil
		}
		entries = append(entries, types.FileEntry{
			RelativePath: relativePath,
			Extension:    extension,
			Content:      content,
			Truncated:    truncated,
		})
		return nil
	})
	if walkError != nil {
		scanner.logger.Warn(accessFailedMessage, zap.String("path", rootDirectoryPath), zap.Error(walkError))
	}

	if len(entries) == 0 {
		scanner.logger.Warn(noMatchingFilesMessage, zap.String("path", rootDirectoryPath))
	}
	return entries
}

// relativeToRoot returns walkedPath relative to root in forward-slash form,
// falling back to the cleaned input when the calculation fails.
func relativeToRoot(walkedPath string, root string) string {
	cleanPath := filepath.Clean(walkedPath)
	if cleanPath == root {
		return "."
	}
	relativePath, relativeError := filepath.Rel(root, cleanPath)
	if relativeError != nil {
		return cleanPath
	}
	return filepath.ToSlash(relativePath)
}
