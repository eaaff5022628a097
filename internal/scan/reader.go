package scan

import (
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/Pubzeee/nasikoai/internal/types"
	"github.com/Pubzeee/nasikoai/internal/utils"
)

const (
	skipBinaryFileMessage     = "skipping binary file"
	skipUnreadableFileMessage = "skipping unreadable file"
	truncatedFileMessage      = "truncated file content"
	fallbackDecodedMessage    = "decoded file with fallback encoding"
)

// Reader reads project files as text, tolerating decode failures.
type Reader struct {
	maxCharsPerFile int
	logger          *zap.Logger
}

// NewReader constructs a Reader that truncates content beyond maxCharsPerFile characters.
func NewReader(maxCharsPerFile int, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{maxCharsPerFile: maxCharsPerFile, logger: logger}
}

// ReadText returns the decoded, possibly truncated content of the file at
// path. The second return value reports whether the content was truncated.
// The third reports whether the file is usable at all: binary and unreadable
// files are skipped. Everything else decodes, as UTF-8 or through the Latin-1
// fallback, which maps every byte and therefore cannot fail.
func (reader *Reader) ReadText(path string) (string, bool, bool) {
	fileBytes, readError := os.ReadFile(path)
	if readError != nil {
		reader.logger.Warn(skipUnreadableFileMessage, zap.String("path", path), zap.Error(readError))
		return "", false, false
	}

	if utils.IsBinary(fileBytes) {
		reader.logger.Debug(skipBinaryFileMessage, zap.String("path", path))
		return "", false, false
	}

	content := ""
	if utf8.Valid(fileBytes) {
		content = string(fileBytes)
	} else {
		// ISO 8859-1 assigns a rune to every byte value, so the decode is total.
		decodedBytes, _ := charmap.ISO8859_1.NewDecoder().Bytes(fileBytes)
		reader.logger.Debug(fallbackDecodedMessage, zap.String("path", path))
		content = string(decodedBytes)
	}

	contentRunes := []rune(content)
	if reader.maxCharsPerFile > 0 && len(contentRunes) > reader.maxCharsPerFile {
		reader.logger.Info(truncatedFileMessage,
			zap.String("path", path),
			zap.Int("length", len(contentRunes)),
			zap.Int("limit", reader.maxCharsPerFile))
		return string(contentRunes[:reader.maxCharsPerFile]) + types.TruncationMarker, true, true
	}
	return content, false, true
}
