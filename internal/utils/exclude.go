package utils

import (
	"path/filepath"
	"strings"
)

const pathSegmentSeparator = "/"

// ShouldExcludePath reports whether a path relative to the scan root matches
// one of the exclusion patterns. The candidate path is converted to
// forward-slash form and split into segments; a path is excluded when any
// segment matches any pattern under filepath.Match semantics. Literal names
// such as "node_modules" therefore exclude the directory wherever it appears,
// and glob patterns such as "*.pyc" exclude matching files.
func ShouldExcludePath(relativePath string, exclusionPatterns []string) bool {
	normalizedPath := strings.ReplaceAll(filepath.ToSlash(relativePath), "\\", pathSegmentSeparator)
	pathSegments := strings.Split(normalizedPath, pathSegmentSeparator)

	for _, patternValue := range exclusionPatterns {
		trimmedPattern := strings.TrimSpace(patternValue)
		if trimmedPattern == "" {
			continue
		}
		for _, pathSegment := range pathSegments {
			if pathSegment == trimmedPattern {
				return true
			}
			isMatched, matchError := filepath.Match(trimmedPattern, pathSegment)
			if matchError == nil && isMatched {
				return true
			}
		}
	}
	return false
}

// ContainsFold reports whether a slice of strings contains the target string
// ignoring case. Extension membership checks use it so that ".PY" and ".py"
// are treated alike.
func ContainsFold(stringSlice []string, targetString string) bool {
	for _, currentString := range stringSlice {
		if strings.EqualFold(currentString, targetString) {
			return true
		}
	}
	return false
}

// DeduplicatePatterns removes duplicate patterns from a slice while preserving
// order. The first occurrence of each unique pattern is kept.
func DeduplicatePatterns(patterns []string) []string {
	encounteredPatterns := make(map[string]struct{})
	result := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if _, exists := encounteredPatterns[pattern]; !exists {
			encounteredPatterns[pattern] = struct{}{}
			result = append(result, pattern)
		}
	}
	return result
}
