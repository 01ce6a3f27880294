package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type generateRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig struct {
		ResponseMIMEType string          `json:"responseMimeType"`
		ResponseSchema   json.RawMessage `json:"responseSchema"`
	} `json:"generationConfig"`
}

func geminiServer(t *testing.T, status int, text string, check func(r *http.Request, req generateRequest)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if check != nil {
			check(r, req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = io.WriteString(w, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`)
			return
		}
		resp := map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				}},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGemini(t *testing.T, baseURL string) *GeminiRanker {
	t.Helper()
	g, err := NewGeminiRanker(context.Background(), GeminiConfig{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		BaseURL: baseURL,
		Timeout: time.Second,
	})
	require.NoError(t, err)
	return g
}

func TestGeminiRanker_RelevantNames(t *testing.T) {
	srv := geminiServer(t, http.StatusOK, `["Desk Lamp"]`, func(r *http.Request, req generateRequest) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-2.0-flash:generateContent"), r.URL.Path)
		require.NotEmpty(t, req.Contents)
		require.NotEmpty(t, req.Contents[0].Parts)
		prompt := req.Contents[0].Parts[0].Text
		assert.Contains(t, prompt, "- Desk Lamp\n- Electric Kettle\n")
		assert.Contains(t, prompt, "User's query: something to read by")
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMIMEType)
		assert.Contains(t, strings.ToUpper(string(req.GenerationConfig.ResponseSchema)), "ARRAY")
	})

	got, err := newTestGemini(t, srv.URL).RelevantNames(context.Background(), "something to read by", []string{"Desk Lamp", "Electric Kettle"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Desk Lamp"}, got)
}

func TestGeminiRanker_EmptyArray(t *testing.T) {
	srv := geminiServer(t, http.StatusOK, `[]`, nil)

	got, err := newTestGemini(t, srv.URL).RelevantNames(context.Background(), "boats", []string{"Desk Lamp"})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestGeminiRanker_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		text   string
	}{
		{"api error status", http.StatusTooManyRequests, ""},
		{"reply is not a list", http.StatusOK, `{"names":"Desk Lamp"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := geminiServer(t, tt.status, tt.text, nil)

			_, err := newTestGemini(t, srv.URL).RelevantNames(context.Background(), "lamp", []string{"Desk Lamp"})

			assert.Error(t, err)
		})
	}
}
