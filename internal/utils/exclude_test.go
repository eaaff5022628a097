package utils_test

import (
	"testing"

	"github.com/Pubzeee/nasikoai/internal/utils"
)

// nodeModulesPattern excludes the dependency directory wherever it appears.
const nodeModulesPattern = "node_modules"

// compiledPythonPattern excludes byte-compiled python files by glob.
const compiledPythonPattern = "*.pyc"

// gitDirectoryPattern excludes version control metadata.
const gitDirectoryPattern = ".git"

// TestShouldExcludePath verifies literal segment and glob pattern matching.
func TestShouldExcludePath(testingHandle *testing.T) {
	exclusionPatterns := []string{nodeModulesPattern, compiledPythonPattern, gitDirectoryPattern}

	testCases := []struct {
		name         string
		relativePath string
		excluded     bool
	}{
		{"top level match", "node_modules", true},
		{"nested directory segment", "node_modules/x.js", true},
		{"deeply nested segment", "src/vendor/node_modules/index.js", true},
		{"glob on file name", "app/module.pyc", true},
		{"git metadata", ".git/config", true},
		{"plain source file", "src/main.py", false},
		{"name containing pattern as substring", "my_node_modules_notes.txt", false},
		{"empty pattern list path", "anything/at/all.py", false},
	}

	for _, testCase := range testCases {
		patterns := exclusionPatterns
		if testCase.name == "empty pattern list path" {
			patterns = nil
		}
		result := utils.ShouldExcludePath(testCase.relativePath, patterns)
		if result != testCase.excluded {
			testingHandle.Fatalf("%s: ShouldExcludePath(%q) = %v, expected %v",
				testCase.name, testCase.relativePath, result, testCase.excluded)
		}
	}
}

// TestShouldExcludePathNormalizesBackslashes verifies Windows-style separators are handled.
func TestShouldExcludePathNormalizesBackslashes(testingHandle *testing.T) {
	if !utils.ShouldExcludePath(`src\node_modules\index.js`, []string{nodeModulesPattern}) {
		testingHandle.Fatalf("expected backslash path to be excluded")
	}
}

// TestContainsFold verifies case-insensitive membership checks.
func TestContainsFold(testingHandle *testing.T) {
	extensions := []string{".py", ".md"}
	if !utils.ContainsFold(extensions, ".PY") {
		testingHandle.Fatalf("expected .PY to match .py")
	}
	if utils.ContainsFold(extensions, ".go") {
		testingHandle.Fatalf("did not expect .go to match")
	}
}

// TestDeduplicatePatterns verifies order-preserving deduplication.
func TestDeduplicatePatterns(testingHandle *testing.T) {
	deduplicated := utils.DeduplicatePatterns([]string{"a", "b", "a", "c", "b"})
	expected := []string{"a", "b", "c"}
	if len(deduplicated) != len(expected) {
		testingHandle.Fatalf("expected %d patterns, got %d", len(expected), len(deduplicated))
	}
	for patternIndex, pattern := range expected {
		if deduplicated[patternIndex] != pattern {
			testingHandle.Fatalf("expected %q at index %d, got %q", pattern, patternIndex, deduplicated[patternIndex])
		}
	}
}
