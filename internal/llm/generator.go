package llm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	cooldownMessage       = "respecting API quota before request"
	requestMessage        = "sending generation request"
	generationFailedLog   = "generation request failed"
	generationErrorFormat = "An error occurred while generating the README: %v"
	emptyResponseMessage  = "The generation service returned an empty response."

	contextPreamble = "Here is the codebase information:\n\n"

	// instructionalPrompt frames the request for the model. The output
	// contract matters: the response is printed verbatim to stdout, so the
	// model must return nothing but the README markdown.
	instructionalPrompt = `You are an expert Technical Writer and Developer Advocate. Your goal is to analyze a codebase and generate a professional, comprehensive, and clear README.md file.

Your output must be strictly in VALID MARKDOWN format.

You will be provided with:
1. A directory tree structure of the project.
2. The contents of key files in the project.

Your task is to:
1. **Analyze the Project Structure**: Understand the organization of the code.
2. **Analyze File Contents**: Determine the purpose of the modules, classes, and functions.
3. **Identify Key Information**:
    - Project Name and Description (What does it do?)
    - Key Features (What are the main capabilities?)
    - Installation Instructions (How to set it up?)
    - Usage Examples (How to run it?)
    - Technologies Used (Languages, libraries, frameworks).
4. **Generate the README.md**:
    - Use a clear and professional structure.
    - Include Badges if applicable (e.g., language version, License).
    - Write a compelling introduction.
    - Provide step-by-step installation and usage guides.
    - If you see tests, mention how to run them.

**Strict Output Rules:**
- The output must be ONLY the markdown content of the README.md.
- Do not include conversational filler like "Here is the README".
- Ensure all code blocks are properly fenced.`
)

// Generator issues the single generation request of a run.
type Generator struct {
	client    Client
	modelName string
	cooldown  time.Duration
	sleep     func(time.Duration)
	logger    *zap.Logger
}

// NewGenerator constructs a Generator. The cooldown is a fixed pre-call pause
// respecting the free-tier requests-per-minute ceiling; it is not adaptive.
func NewGenerator(client Client, modelName string, cooldown time.Duration, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		client:    client,
		modelName: modelName,
		cooldown:  cooldown,
		sleep:     time.Sleep,
		logger:    logger,
	}
}

// Generate sends the assembled context with the instructional prompt and
// returns the generated text. Transport and API failures are converted into a
// descriptive result string rather than propagated; the caller always gets
// text to print.
func (generator *Generator) Generate(ctx context.Context, assembledContext string) string {
	if generator.cooldown > 0 {
		generator.logger.Info(cooldownMessage, zap.Duration("cooldown", generator.cooldown))
		generator.sleep(generator.cooldown)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				genai.NewPartFromText(instructionalPrompt),
				genai.NewPartFromText(contextPreamble + assembledContext),
			},
		},
	}

	generator.logger.Info(requestMessage, zap.String("model", generator.modelName))
	response, generateError := generator.client.GenerateContent(ctx, generator.modelName, contents, nil)
	if generateError != nil {
		generator.logger.Error(generationFailedLog, zap.Error(generateError))
		return fmt.Sprintf(generationErrorFormat, generateError)
	}

	generatedText := extractText(response)
	if generatedText == "" {
		generator.logger.Error(generationFailedLog, zap.String("reason", "empty response"))
		return emptyResponseMessage
	}
	return generatedText
}

// extractText concatenates the text parts of the first candidate.
func extractText(response *genai.GenerateContentResponse) string {
	if response == nil || len(response.Candidates) == 0 {
		return ""
	}
	candidate := response.Candidates[0]
	if candidate == nil || candidate.Content == nil {
		return ""
	}
	text := ""
	for _, part := range candidate.Content.Parts {
		if part != nil {
			text += part.Text
		}
	}
	return text
}
