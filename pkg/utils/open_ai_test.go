package utils_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelplanner/pkg/utils"
)

type chatRequest struct {
	Model       string  `json:"model"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
	Messages    []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newUpstream(t *testing.T, handler http.HandlerFunc) *utils.OpenAIChatClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return utils.NewOpenAIChatClient(utils.ChatConfig{
		BaseURL: srv.URL,
		Model:   "qwen-plus",
		Timeout: 5 * time.Second,
	})
}

func TestOpenAIChatClient_Complete(t *testing.T) {
	var got chatRequest
	var auth, path string
	client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "qwen-plus",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"destination\":\"Kyoto\"}"}, "finish_reason": "stop"}]
		}`))
	})

	text, err := client.Complete(context.Background(), "sk-test", "plan a trip to Kyoto")

	require.NoError(t, err)
	assert.Equal(t, `{"destination":"Kyoto"}`, text)
	assert.Equal(t, "Bearer sk-test", auth)
	assert.Equal(t, "/chat/completions", path)

	assert.Equal(t, "qwen-plus", got.Model)
	assert.InDelta(t, utils.PlannerTemperature, got.Temperature, 0.001)
	assert.Equal(t, utils.PlannerMaxTokens, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, utils.PlannerSystemPrompt, got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "plan a trip to Kyoto", got.Messages[1].Content)
}

func TestOpenAIChatClient_Complete_NonSuccessStatus(t *testing.T) {
	client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error": {"message": "Incorrect API key provided", "type": "invalid_request_error"}}`))
	})

	_, err := client.Complete(context.Background(), "bad-key", "anything")

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUpstream))
	assert.Contains(t, err.Error(), "401")
}

func TestOpenAIChatClient_Complete_BadEnvelope(t *testing.T) {
	client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`<html>gateway</html>`))
	})

	_, err := client.Complete(context.Background(), "sk-test", "anything")

	assert.True(t, errors.Is(err, utils.ErrUpstream))
}

func TestOpenAIChatClient_Complete_NoChoices(t *testing.T) {
	client := newUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "chatcmpl-1", "choices": []}`))
	})

	_, err := client.Complete(context.Background(), "sk-test", "anything")

	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrUpstream))
	assert.Contains(t, err.Error(), "no choices")
}

func TestNewOpenAIChatClient_Defaults(t *testing.T) {
	client := utils.NewOpenAIChatClient(utils.ChatConfig{})

	assert.Equal(t, utils.DefaultOpenAIModel, client.Model())
	assert.Equal(t, "openai", client.Provider())
}
