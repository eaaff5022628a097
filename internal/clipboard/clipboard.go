// Package clipboard provides access to the system clipboard for the --copy flag.
package clipboard

import (
	"github.com/atotto/clipboard"
)

// Copier copies textual data to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// SystemCopier implements Copier using github.com/atotto/clipboard.
type SystemCopier struct{}

// NewSystemCopier constructs a clipboard copier backed by the host clipboard.
func NewSystemCopier() *SystemCopier {
	return &SystemCopier{}
}

// Copy writes text to the system clipboard.
func (copier *SystemCopier) Copy(text string) error {
	return clipboard.WriteAll(text)
}

var _ Copier = (*SystemCopier)(nil)
