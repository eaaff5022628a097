// Package llm sends the assembled project context to the Gemini API and
// returns the generated README text.
package llm

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

// APIKeyEnvironmentVariable names the environment variable holding the Gemini credential.
const APIKeyEnvironmentVariable = "GEMINI_API_KEY"

const missingAPIKeyFormat = "%s environment variable is not set; export it before running without --dry-run"

// Client defines the slice of the Gemini API this tool depends on. The
// abstraction keeps the network out of tests.
type Client interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// RealClient wraps the official SDK client to satisfy Client.
type RealClient struct {
	client *genai.Client
}

// NewRealClient constructs a RealClient from the credential in the
// environment. A missing credential is a configuration error reported before
// any network attempt.
func NewRealClient(ctx context.Context) (*RealClient, error) {
	apiKey := os.Getenv(APIKeyEnvironmentVariable)
	if apiKey == "" {
		return nil, fmt.Errorf(missingAPIKeyFormat, APIKeyEnvironmentVariable)
	}

	genaiClient, clientError := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if clientError != nil {
		return nil, fmt.Errorf("create Gemini client: %w", clientError)
	}
	return &RealClient{client: genaiClient}, nil
}

// GenerateContent calls the SDK's GenerateContent method.
func (realClient *RealClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return realClient.client.Models.GenerateContent(ctx, model, contents, config)
}

var _ Client = (*RealClient)(nil)
