package tree_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Pubzeee/nasikoai/internal/config"
	"github.com/Pubzeee/nasikoai/internal/tree"
)

func writeFixtureFile(testingHandle *testing.T, path string, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(path, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("writing %s: %v", path, writeError)
	}
}

// buildFixtureTree creates:
//
//	root/
//	├── src/
//	│   └── main.py
//	├── a.py
//	├── b.png
//	└── node_modules/x.js (excluded)
func buildFixtureTree(testingHandle *testing.T) string {
	rootDirectory := testingHandle.TempDir()
	if mkdirError := os.MkdirAll(filepath.Join(rootDirectory, "src"), 0o755); mkdirError != nil {
		testingHandle.Fatalf("creating src: %v", mkdirError)
	}
	if mkdirError := os.MkdirAll(filepath.Join(rootDirectory, "node_modules"), 0o755); mkdirError != nil {
		testingHandle.Fatalf("creating node_modules: %v", mkdirError)
	}
	writeFixtureFile(testingHandle, filepath.Join(rootDirectory, "src", "main.py"), "pass\n")
	writeFixtureFile(testingHandle, filepath.Join(rootDirectory, "a.py"), "pass\n")
	writeFixtureFile(testingHandle, filepath.Join(rootDirectory, "b.png"), "not really an image")
	writeFixtureFile(testingHandle, filepath.Join(rootDirectory, "node_modules", "x.js"), "1;\n")
	return rootDirectory
}

// TestRenderStructure verifies connectors, exclusion, and directories-first ordering.
func TestRenderStructure(testingHandle *testing.T) {
	rootDirectory := buildFixtureTree(testingHandle)
	renderer := tree.NewRenderer(config.DefaultSettings(), zap.NewNop())
	rendered := renderer.Render(rootDirectory)

	expectedLines := []string{
		filepath.Base(rootDirectory) + "/",
		"├── src/",
		"│   └── main.py",
		"├── a.py",
		"└── b.png",
	}
	renderedLines := strings.Split(strings.TrimSuffix(rendered, "\n"), "\n")
	if len(renderedLines) != len(expectedLines) {
		testingHandle.Fatalf("expected %d lines, got %d:\n%s", len(expectedLines), len(renderedLines), rendered)
	}
	for lineIndex, expectedLine := range expectedLines {
		if renderedLines[lineIndex] != expectedLine {
			testingHandle.Fatalf("line %d: expected %q, got %q", lineIndex, expectedLine, renderedLines[lineIndex])
		}
	}
	if strings.Contains(rendered, "node_modules") {
		testingHandle.Fatalf("expected node_modules to be excluded from the tree:\n%s", rendered)
	}
}

// TestRenderCaseInsensitiveOrdering verifies alphabetical ordering ignores case.
func TestRenderCaseInsensitiveOrdering(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeFixtureFile(testingHandle, filepath.Join(rootDirectory, "Zebra.txt"), "z")
	writeFixtureFile(testingHandle, filepath.Join(rootDirectory, "apple.txt"), "a")
	writeFixtureFile(testingHandle, filepath.Join(rootDirectory, "Mango.txt"), "m")

	renderer := tree.NewRenderer(config.DefaultSettings(), zap.NewNop())
	rendered := renderer.Render(rootDirectory)

	appleIndex := strings.Index(rendered, "apple.txt")
	mangoIndex := strings.Index(rendered, "Mango.txt")
	zebraIndex := strings.Index(rendered, "Zebra.txt")
	if appleIndex < 0 || mangoIndex < 0 || zebraIndex < 0 {
		testingHandle.Fatalf("expected all files in render:\n%s", rendered)
	}
	if !(appleIndex < mangoIndex && mangoIndex < zebraIndex) {
		testingHandle.Fatalf("expected case-insensitive alphabetical order:\n%s", rendered)
	}
}

// TestRenderIdempotent verifies rendering an unchanged directory twice is byte-identical.
func TestRenderIdempotent(testingHandle *testing.T) {
	rootDirectory := buildFixtureTree(testingHandle)
	renderer := tree.NewRenderer(config.DefaultSettings(), zap.NewNop())
	firstRender := renderer.Render(rootDirectory)
	secondRender := renderer.Render(rootDirectory)
	if firstRender != secondRender {
		testingHandle.Fatalf("expected identical renders, got:\n%s\n---\n%s", firstRender, secondRender)
	}
}

// TestRenderInvalidRoot verifies missing or non-directory roots produce the invalid marker.
func TestRenderInvalidRoot(testingHandle *testing.T) {
	renderer := tree.NewRenderer(config.DefaultSettings(), zap.NewNop())
	missingPath := filepath.Join(testingHandle.TempDir(), "missing")
	rendered := renderer.Render(missingPath)
	if !strings.HasPrefix(rendered, "Invalid directory: ") {
		testingHandle.Fatalf("expected invalid directory marker, got %q", rendered)
	}
}

// TestRenderSkipsPermissionDeniedDirectory verifies the render completes when
// a subdirectory cannot be read: the directory itself is listed, its children
// are absent, and the siblings still appear.
func TestRenderSkipsPermissionDeniedDirectory(testingHandle *testing.T) {
	if os.Geteuid() == 0 {
		testingHandle.Skip("permission restrictions do not apply to root")
	}
	rootDirectory := testingHandle.TempDir()
	lockedDirectory := filepath.Join(rootDirectory, "locked")
	if mkdirError := os.MkdirAll(lockedDirectory, 0o755); mkdirError != nil {
		testingHandle.Fatalf("creating locked directory: %v", mkdirError)
	}
	writeFixtureFile(testingHandle, filepath.Join(lockedDirectory, "inner.py"), "pass\n")
	writeFixtureFile(testingHandle, filepath.Join(rootDirectory, "a.py"), "pass\n")
	if chmodError := os.Chmod(lockedDirectory, 0o000); chmodError != nil {
		testingHandle.Fatalf("restricting directory: %v", chmodError)
	}
	testingHandle.Cleanup(func() { os.Chmod(lockedDirectory, 0o755) })

	renderer := tree.NewRenderer(config.DefaultSettings(), zap.NewNop())
	rendered := renderer.Render(rootDirectory)

	if !strings.Contains(rendered, "locked/") {
		testingHandle.Fatalf("expected the unreadable directory entry in the tree:\n%s", rendered)
	}
	if strings.Contains(rendered, "inner.py") {
		testingHandle.Fatalf("did not expect children of an unreadable directory:\n%s", rendered)
	}
	if !strings.Contains(rendered, "a.py") {
		testingHandle.Fatalf("expected readable siblings in the tree:\n%s", rendered)
	}
}
