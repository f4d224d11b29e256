// README: Wire-level tests for the OpenAI-compatible client against a stub server.
package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStubCompat(t *testing.T, handler http.HandlerFunc) *compatClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &compatClient{
		provider: "groq",
		baseURL:  srv.URL,
		apiKey:   "test-key",
		http:     srv.Client(),
	}
}

func TestCompatCompleteSuccess(t *testing.T) {
	var got compatChatRequest
	c := newStubCompat(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "# Day 1: Arrival"}},
			},
		})
	})

	msgs := []Message{
		{Role: RoleSystem, Content: "plan trips"},
		{Role: RoleUser, Content: "3 days in Lisbon"},
	}
	out, err := c.Complete(context.Background(), "mixtral-8x7b-32768", msgs, Params{Temperature: 0.7, MaxTokens: 2048})
	require.NoError(t, err)
	assert.Equal(t, "# Day 1: Arrival", out)

	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	require.NotNil(t, got.Temperature)
	assert.InDelta(t, 0.7, *got.Temperature, 1e-9)
	assert.Equal(t, 2048, got.MaxTokens)
}

func TestCompatCompleteZeroParamsOmitted(t *testing.T) {
	var raw map[string]any
	c := newStubCompat(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]string{"content": "ok itinerary"}}},
		})
	})

	_, err := c.Complete(context.Background(), "m", []Message{{Role: RoleUser, Content: "hi"}}, Params{})
	require.NoError(t, err)
	// Zero values mean provider defaults and must not appear on the wire.
	assert.NotContains(t, raw, "temperature")
	assert.NotContains(t, raw, "max_tokens")
}

func TestCompatCompleteAPIError(t *testing.T) {
	c := newStubCompat(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "invalid api key"},
		})
	})

	_, err := c.Complete(context.Background(), "m", []Message{{Role: RoleUser, Content: "hi"}}, Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestCompatCompleteEmptyChoices(t *testing.T) {
	c := newStubCompat(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := c.Complete(context.Background(), "m", []Message{{Role: RoleUser, Content: "hi"}}, Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty choices")
}

func TestParamsClamp(t *testing.T) {
	p := Params{Temperature: 3.5, MaxTokens: -1}.Clamp()
	assert.Equal(t, 2.0, p.Temperature)
	assert.Equal(t, 0, p.MaxTokens)

	p = Params{Temperature: -0.3}.Clamp()
	assert.Equal(t, 0.0, p.Temperature)
}
