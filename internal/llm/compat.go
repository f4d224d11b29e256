// README: One HTTP client for every OpenAI-compatible chat-completions backend.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// compatBaseURLs maps provider ids to their OpenAI-compatible endpoints.
var compatBaseURLs = map[string]string{
	"cerebras": "https://api.cerebras.ai/v1",
	"groq":     "https://api.groq.com/openai/v1",
	"mistral":  "https://api.mistral.ai/v1",
	"cohere":   "https://api.cohere.ai/compatibility/v1",
}

// compatHTTPClient is shared by all compat clients; the timeout guards against
// stalled connections while context cancellation is still honoured via
// NewRequestWithContext.
var compatHTTPClient = &http.Client{Timeout: 120 * time.Second}

type compatChatRequest struct {
	Model       string              `json:"model"`
	Messages    []compatChatMessage `json:"messages"`
	Temperature *float64            `json:"temperature,omitempty"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
}

type compatChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type compatChatResponse struct {
	Choices []struct {
		Message compatChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// compatClient speaks the OpenAI chat-completions wire format against a
// provider-specific base URL. Cerebras, Groq, Mistral, and Cohere all expose
// this surface.
type compatClient struct {
	provider string
	baseURL  string
	apiKey   string
	http     *http.Client
}

func newCompatClient(provider, apiKey string) (*compatClient, error) {
	baseURL, ok := compatBaseURLs[provider]
	if !ok {
		return nil, fmt.Errorf("%s: no compatible endpoint registered", provider)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%s: missing api key", provider)
	}
	return &compatClient{
		provider: provider,
		baseURL:  baseURL,
		apiKey:   apiKey,
		http:     compatHTTPClient,
	}, nil
}

func (c *compatClient) Complete(ctx context.Context, model string, msgs []Message, p Params) (string, error) {
	messages := make([]compatChatMessage, 0, len(msgs))
	for _, m := range msgs {
		messages = append(messages, compatChatMessage{Role: string(m.Role), Content: m.Content})
	}

	p = p.Clamp()
	creq := compatChatRequest{Model: model, Messages: messages}
	if p.Temperature > 0 {
		creq.Temperature = &p.Temperature
	}
	if p.MaxTokens > 0 {
		creq.MaxTokens = p.MaxTokens
	}

	reqBody, err := json.Marshal(creq)
	if err != nil {
		return "", fmt.Errorf("%s: marshal request: %w", c.provider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("%s: build request: %w", c.provider, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%s: do request: %w", c.provider, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%s: read response: %w", c.provider, err)
	}

	var cr compatChatResponse
	if err := json.Unmarshal(body, &cr); err != nil {
		return "", fmt.Errorf("%s: unmarshal response: %w (status %d)", c.provider, err, resp.StatusCode)
	}
	if cr.Error != nil {
		return "", fmt.Errorf("%s: api error: %s", c.provider, cr.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s: unexpected status %d (raw: %s)", c.provider, resp.StatusCode, body)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("%s: API returned empty choices array", c.provider)
	}
	return cr.Choices[0].Message.Content, nil
}

func (c *compatClient) Close() error { return nil }
