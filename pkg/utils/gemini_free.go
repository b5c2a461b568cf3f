package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-1.5-flash" // free tier

// GeminiChatClient implements ChatClientInterface on Google's Gemini models.
// A client is opened per call because the credential may differ per request.
type GeminiChatClient struct {
	model string
}

func NewGeminiChatClient(model string) *GeminiChatClient {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &GeminiChatClient{model: model}
}

func (c *GeminiChatClient) Provider() string { return "gemini" }
func (c *GeminiChatClient) Model() string    { return c.model }

func (c *GeminiChatClient) Complete(ctx context.Context, apiKey string, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create Gemini client: %v", ErrUpstream, err)
	}
	defer client.Close()

	m := client.GenerativeModel(c.model)
	m.SystemInstruction = genai.NewUserContent(genai.Text(PlannerSystemPrompt))
	m.ResponseMIMEType = "application/json"
	m.SetTemperature(PlannerTemperature)
	m.SetMaxOutputTokens(PlannerMaxTokens)

	resp, err := m.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", ErrUpstream, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no content generated by Gemini", ErrUpstream)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String(), nil
}
