package llm

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// mockClient is a test double for Client that records calls.
type mockClient struct {
	generateContentFunc func(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	callCount           int
}

// GenerateContent calls the configured function if set, otherwise fails.
func (client *mockClient) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	client.callCount++
	if client.generateContentFunc != nil {
		return client.generateContentFunc(ctx, model, contents, config)
	}
	return nil, errors.New("generateContentFunc not set")
}

// textResponse builds a single-candidate response carrying the provided text.
func textResponse(text string) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: text},
					},
				},
			},
		},
	}
}
