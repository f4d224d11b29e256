// README: Shared chat types for the provider clients.
package llm

import "context"

// Role identifies who authored a chat message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the ordered sequence sent to a model.
type Message struct {
	Role    Role
	Content string
}

// Params are per-call generation settings. The zero value means
// "use the provider default" for both fields.
type Params struct {
	Temperature float64
	MaxTokens   int
}

// Clamp bounds Temperature to [0,2] and drops non-positive MaxTokens.
func (p Params) Clamp() Params {
	if p.Temperature < 0 {
		p.Temperature = 0
	}
	if p.Temperature > 2 {
		p.Temperature = 2
	}
	if p.MaxTokens < 0 {
		p.MaxTokens = 0
	}
	return p
}

// Client is a chat client bound to one provider. Implementations are safe
// for concurrent use. Complete blocks until the full reply is available;
// callers impose deadlines through ctx.
type Client interface {
	Complete(ctx context.Context, model string, msgs []Message, p Params) (string, error)
	Close() error
}
