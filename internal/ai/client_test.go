package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatCompletionPassthrough(t *testing.T) {
	var captured chatPayload
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"chatcmpl-1","choices":[{"message":{"role":"assistant","content":"ack"}}]}`))
	}))
	defer upstream.Close()

	client := NewClient("test-key", upstream.URL)
	raw, err := client.ChatCompletion(context.Background(), ChatRequest{
		Messages: []Message{{"role": "user", "content": "status report"}},
	})
	require.NoError(t, err)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(raw, &resp))
	assert.Equal(t, "chatcmpl-1", resp["id"])

	// Hidden prompt injected ahead of the user's message, defaults applied.
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0]["role"])
	assert.Equal(t, SystemPrompt, captured.Messages[0]["content"])
	assert.Equal(t, DefaultModel, captured.Model)
	assert.Equal(t, DefaultTemperature, captured.Temperature)
	assert.Equal(t, DefaultMaxTokens, captured.MaxTokens)
	assert.Equal(t, DefaultTopP, captured.TopP)
}

func TestChatCompletionCallerOverrides(t *testing.T) {
	var captured chatPayload
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer upstream.Close()

	temp := 0.2
	maxTokens := 64
	client := NewClient("k", upstream.URL)
	_, err := client.ChatCompletion(context.Background(), ChatRequest{
		Messages:    []Message{{"role": "user", "content": "x"}},
		Model:       "gpt-4o-mini",
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", captured.Model)
	assert.Equal(t, temp, captured.Temperature)
	assert.Equal(t, maxTokens, captured.MaxTokens)
}

func TestChatCompletionMapsNestedErrorMessage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided"}}`))
	}))
	defer upstream.Close()

	client := NewClient("bad", upstream.URL)
	_, err := client.ChatCompletion(context.Background(), ChatRequest{
		Messages: []Message{{"role": "user", "content": "x"}},
	})
	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, "Incorrect API key provided", provErr.Message)
	assert.Equal(t, http.StatusUnauthorized, provErr.Status)
}

func TestChatCompletionMapsTopLevelMessage(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer upstream.Close()

	client := NewClient("k", upstream.URL)
	_, err := client.ChatCompletion(context.Background(), ChatRequest{
		Messages: []Message{{"role": "user", "content": "x"}},
	})
	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, "rate limited", provErr.Message)
	assert.Equal(t, http.StatusTooManyRequests, provErr.Status)
}

func TestChatCompletionGenericFallback(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`not json`))
	}))
	defer upstream.Close()

	client := NewClient("k", upstream.URL)
	_, err := client.ChatCompletion(context.Background(), ChatRequest{
		Messages: []Message{{"role": "user", "content": "x"}},
	})
	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, "provider returned status 502", provErr.Message)
	assert.Equal(t, http.StatusBadGateway, provErr.Status)
}

func TestChatCompletionTransportFailure(t *testing.T) {
	client := NewClient("k", "http://127.0.0.1:1")
	_, err := client.ChatCompletion(context.Background(), ChatRequest{
		Messages: []Message{{"role": "user", "content": "x"}},
	})
	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, http.StatusInternalServerError, provErr.Status)
}
