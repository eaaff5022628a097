// Package tokenizer estimates token counts for assembled context strings.
package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

// Counter estimates token counts for text content.
type Counter interface {
	Name() string
	CountString(input string) (int, error)
}

const (
	defaultEncodingName = "cl100k_base"
	openAIModelPrefix   = "gpt-"
)

// NewCounter returns a Counter for the requested model. Models known to
// tiktoken use their native encoding; anything else, including the Gemini
// generation models, falls back to the cl100k_base encoding, which is close
// enough for the preview estimate this tool needs.
func NewCounter(modelName string) (Counter, error) {
	trimmedModel := strings.ToLower(strings.TrimSpace(modelName))

	if strings.HasPrefix(trimmedModel, openAIModelPrefix) {
		encoding, encodingError := tiktoken.EncodingForModel(trimmedModel)
		if encodingError == nil && encoding != nil {
			return encodingCounter{encoding: encoding, name: trimmedModel}, nil
		}
	}

	fallbackEncoding, fallbackError := tiktoken.GetEncoding(defaultEncodingName)
	if fallbackError != nil {
		return nil, fmt.Errorf("initialize fallback tokenizer: %w", fallbackError)
	}
	return encodingCounter{encoding: fallbackEncoding, name: defaultEncodingName}, nil
}

type encodingCounter struct {
	encoding *tiktoken.Tiktoken
	name     string
}

func (counter encodingCounter) Name() string {
	return counter.name
}

func (counter encodingCounter) CountString(input string) (int, error) {
	if input == "" {
		return 0, nil
	}
	return len(counter.encoding.Encode(input, nil, nil)), nil
}
