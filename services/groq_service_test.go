package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGroq serves a canned chat completion and records the last request body.
func fakeGroq(t *testing.T, reply string) (*httptest.Server, *map[string]any) {
	t.Helper()
	var lastRequest map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&lastRequest))
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": reply}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv, &lastRequest
}

func TestChatCompletion_Success(t *testing.T) {
	srv, lastRequest := fakeGroq(t, "  drink more water  ")
	groq := NewGroqServiceWithBaseURL(srv.URL, "test-key")

	reply, err := groq.ChatCompletion([]ChatMessage{{Role: "user", Content: "hi"}})
	require.NoError(t, err)
	assert.Equal(t, "drink more water", reply)
	assert.Equal(t, defaultGroqModel, (*lastRequest)["model"])
}

func TestChatCompletion_SurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit reached"}}`))
	}))
	defer srv.Close()

	groq := NewGroqServiceWithBaseURL(srv.URL, "test-key")
	_, err := groq.ChatCompletion([]ChatMessage{{Role: "user", Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limit reached")
}

func TestChatCompletion_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	groq := NewGroqServiceWithBaseURL(srv.URL, "test-key")
	_, err := groq.ChatCompletion([]ChatMessage{{Role: "user", Content: "hi"}})
	assert.ErrorContains(t, err, "empty completion")
}

func TestChatCompletion_MissingAPIKey(t *testing.T) {
	groq := NewGroqServiceWithBaseURL("http://127.0.0.1:1", "")
	_, err := groq.ChatCompletion([]ChatMessage{{Role: "user", Content: "hi"}})
	assert.ErrorContains(t, err, "GROQ_API_KEY")
}
