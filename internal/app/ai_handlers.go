package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"arachnid/internal/ai"
)

// maxChatBody bounds inbound chat payloads the same way the upstream
// response read is bounded.
const maxChatBody = 2 << 20

func (s *Server) handleAIInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"system":      "DRONE_UNIT_734",
		"description": "Autonomous reconnaissance drone AI stationed at the crime scene. Communicate through the chat endpoint.",
		"model":       ai.DefaultModel,
		"api": map[string]any{
			"endpoint": "/api/v1/ai/chat",
			"method":   "POST",
			"format":   "OpenAI chat completions compatible",
		},
		"tools": ai.ExpectedTools,
		"instructions": "Send a messages array in OpenAI format. Include the tools array to let the drone " +
			"call its sensors. The drone only reports raw sensor data through tool calls.",
		"example_request": map[string]any{
			"messages": []map[string]string{
				{"role": "user", "content": "Scan the environment"},
			},
			"tools": "[...see tools above...]",
		},
	})
}

func (s *Server) handleAIChat(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxChatBody))
	if err != nil {
		apiError(w, "Invalid transmission format. Expected JSON body with messages array.", http.StatusBadRequest)
		return
	}

	var req ai.ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		apiError(w, "Invalid transmission format. Expected JSON body with messages array.", http.StatusBadRequest)
		return
	}
	if err := ai.ValidateChatRequest(req); err != nil {
		apiError(w, "Invalid chat request format. Required: { messages: [...], tools?: [...] }", http.StatusBadRequest)
		return
	}

	// Credential state is only consulted once the body shape validates.
	if s.cfg.OpenAIAPIKey == "" {
		apiError(w, "DRONE_UNIT_734 offline. System configuration error: API key not found.", http.StatusInternalServerError)
		return
	}

	// An early client disconnect does not abort the provider call.
	raw, err := s.ai.ChatCompletion(context.WithoutCancel(r.Context()), req)
	if err != nil {
		var perr *ai.ProviderError
		if errors.As(err, &perr) {
			apiError(w, "DRONE_UNIT_734 communication error: "+perr.Message, perr.Status)
			return
		}
		apiError(w, "DRONE_UNIT_734 communication error: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
