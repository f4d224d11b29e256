// README: OpenAI chat client via the official SDK.
package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type openaiClient struct {
	client openai.Client
}

func newOpenAIClient(apiKey string) *openaiClient {
	return &openaiClient{client: openai.NewClient(option.WithAPIKey(apiKey))}
}

func (c *openaiClient) Complete(ctx context.Context, model string, msgs []Message, p Params) (string, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(msgs))
	for _, m := range msgs {
		switch m.Role {
		case RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case RoleUser:
			messages = append(messages, openai.UserMessage(m.Content))
		case RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
	}
	p = p.Clamp()
	if p.Temperature > 0 {
		params.Temperature = openai.Float(p.Temperature)
	}
	if p.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(p.MaxTokens))
	}

	completion, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openai: API returned no choices")
	}
	content := completion.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("openai: API returned empty content")
	}
	return content, nil
}

func (c *openaiClient) Close() error { return nil }
