// Package types defines every cross-package data structure used by the nasikoai CLI.
package types

// TruncationMarker is appended to file content cut off at the character limit.
const TruncationMarker = "\n...(truncated)..."

// FileEntry represents one scanned project file. Entries are created during
// the scan and never modified afterwards.
type FileEntry struct {
	RelativePath string
	Extension    string
	Content      string
	Truncated    bool
}

// ProjectContext bundles everything gathered for a single run: the rendered
// directory tree and the scanned file entries, in scan order.
type ProjectContext struct {
	Tree  string
	Files []FileEntry
}
