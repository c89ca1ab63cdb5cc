package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	defaultGroqModel   = "llama-3.3-70b-versatile"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GroqService talks to Groq's OpenAI-compatible chat completions API. It is
// a plain pass-through: no retries, no caching.
type GroqService struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
}

func NewGroqService() *GroqService {
	return &GroqService{
		client:  &http.Client{Timeout: 30 * time.Second},
		apiKey:  os.Getenv("GROQ_API_KEY"),
		baseURL: defaultGroqBaseURL,
		model:   defaultGroqModel,
	}
}

// NewGroqServiceWithBaseURL points the client at a different endpoint,
// used by tests to fake the API.
func NewGroqServiceWithBaseURL(baseURL, apiKey string) *GroqService {
	s := NewGroqService()
	s.baseURL = strings.TrimRight(baseURL, "/")
	s.apiKey = apiKey
	return s
}

func (g *GroqService) ChatCompletion(messages []ChatMessage) (string, error) {
	if g.apiKey == "" {
		return "", fmt.Errorf("GROQ_API_KEY not set")
	}

	payload := map[string]any{
		"model":       g.model,
		"messages":    messages,
		"temperature": 0.6,
		"max_tokens":  1024,
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat payload: %w", err)
	}

	req, err := http.NewRequest("POST", g.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq request error: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read groq response error: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Surface the exact API error body; usually {"error":{"message":"..."}}
		var apiErr struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBytes, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("groq api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("groq api error (%d): %s", resp.StatusCode, string(respBytes))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		preview := string(respBytes)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return "", fmt.Errorf("decode groq response error: %v | body: %s", err, preview)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("empty completion from groq")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}
