/*
Copyright 2025 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Macrina/Listify-Agent/agents/promptbuilder"
)

// gradeRequest is a minimal request used across the judge tests.
type gradeRequest struct {
	Text string
}

func (r gradeRequest) Bind(p *promptbuilder.Prompt) (*promptbuilder.Prompt, error) {
	return p.BindJSON("text", r.Text)
}

func (r gradeRequest) Validate() error {
	if r.Text == "" {
		return errors.New("text is required")
	}
	return nil
}

type gradeVerdict struct {
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

var gradePrompt = promptbuilder.MustNewPrompt("Grade this text: {{text}}")

// chatServer answers every chat completion with content.
func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 0,
			"model":   "gpt-4o",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}},
			"usage": map[string]any{"prompt_tokens": 12, "completion_tokens": 8, "total_tokens": 20},
		}); err != nil {
			t.Errorf("Encode() = %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func openAIConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.OpenAIAPIKey = "test"
	cfg.OpenAIBaseURL = baseURL
	return cfg
}
