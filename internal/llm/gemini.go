// README: Gemini chat client via Google's official SDK.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type geminiClient struct {
	client *genai.Client
}

func newGeminiClient(apiKey string) (*geminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("gemini: missing api key")
	}
	// The SDK only uses the context for transport setup here; request
	// deadlines come from the per-call context in Complete.
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &geminiClient{client: client}, nil
}

func (c *geminiClient) Complete(ctx context.Context, model string, msgs []Message, p Params) (string, error) {
	gm := c.client.GenerativeModel(model)

	p = p.Clamp()
	if p.Temperature > 0 {
		gm.SetTemperature(float32(p.Temperature))
	}
	if p.MaxTokens > 0 {
		gm.SetMaxOutputTokens(int32(p.MaxTokens))
	}

	// Gemini carries the system prompt out of band and wants the final user
	// turn sent separately from the replayed history.
	var history []*genai.Content
	var last string
	for i, m := range msgs {
		switch m.Role {
		case RoleSystem:
			gm.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(m.Content)}}
		case RoleUser:
			if i == len(msgs)-1 {
				last = m.Content
				continue
			}
			history = append(history, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(m.Content)}})
		case RoleAssistant:
			history = append(history, &genai.Content{Role: "model", Parts: []genai.Part{genai.Text(m.Content)}})
		}
	}
	if last == "" {
		return "", fmt.Errorf("gemini: message sequence must end with a user turn")
	}

	cs := gm.StartChat()
	cs.History = history

	resp, err := cs.SendMessage(ctx, genai.Text(last))
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: API returned empty candidates")
	}

	var textParts []string
	for _, part := range resp.Candidates[0].Content.Parts {
		txt, ok := part.(genai.Text)
		if !ok || strings.TrimSpace(string(txt)) == "" {
			continue
		}
		textParts = append(textParts, string(txt))
	}
	if len(textParts) == 0 {
		return "", fmt.Errorf("gemini: API returned empty text parts")
	}
	return strings.Join(textParts, "\n"), nil
}

func (c *geminiClient) Close() error {
	return c.client.Close()
}
