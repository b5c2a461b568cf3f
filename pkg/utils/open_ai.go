package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	PlannerSystemPrompt = "You are a professional travel planner. " +
		"You design realistic day-by-day itineraries with accommodations, transportation, restaurants and cost estimates. " +
		"Always answer with a single valid JSON object only: no markdown, no code fences, no explanations."
	PlannerTemperature = 0.7
	PlannerMaxTokens   = 2000

	DefaultOpenAIBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"
	DefaultOpenAIModel   = "qwen-plus"
)

// ChatClientInterface sends one prompt to a chat-completion backend and returns the
// text of the first choice. apiKey is resolved by the caller for every request.
type ChatClientInterface interface {
	Complete(ctx context.Context, apiKey string, prompt string) (string, error)
	Provider() string
	Model() string
}

type ChatConfig struct {
	BaseURL string
	Model   string
	Timeout time.Duration
}

// OpenAIChatClient talks to any OpenAI-compatible /chat/completions endpoint.
type OpenAIChatClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewOpenAIChatClient(cfg ChatConfig) *OpenAIChatClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenAIBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = DefaultOpenAIModel
	}
	return &OpenAIChatClient{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *OpenAIChatClient) Provider() string { return "openai" }
func (c *OpenAIChatClient) Model() string    { return c.model }

func (c *OpenAIChatClient) Complete(ctx context.Context, apiKey string, prompt string) (string, error) {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = c.baseURL
	config.HTTPClient = c.httpClient
	client := openai.NewClientWithConfig(config)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: PlannerSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: PlannerTemperature,
		MaxTokens:   PlannerMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUpstream, describeOpenAIError(err))
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: response contained no choices", ErrUpstream)
	}

	return resp.Choices[0].Message.Content, nil
}

func describeOpenAIError(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Sprintf("%d %s: %s", apiErr.HTTPStatusCode, http.StatusText(apiErr.HTTPStatusCode), apiErr.Message)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Sprintf("%d %s", reqErr.HTTPStatusCode, http.StatusText(reqErr.HTTPStatusCode))
	}
	return err.Error()
}
