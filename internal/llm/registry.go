// README: Static provider table; enablement is purely credential presence.
package llm

import (
	"errors"
	"fmt"
	"os"
)

// ErrProviderUnavailable is returned when a provider is unknown or its
// credential is not configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ModelInfo describes one selectable model of a provider.
type ModelInfo struct {
	ID   string
	Name string
}

// ProviderDescriptor identifies one LLM backend and the secret it needs.
type ProviderDescriptor struct {
	ID            string
	Name          string
	CredentialEnv string
	DefaultModel  string
	Models        []ModelInfo
}

// Registry resolves provider descriptors against a credential source.
// It is constructed explicitly and passed by reference so tests can run
// with their own credential table instead of the process environment.
type Registry struct {
	providers []ProviderDescriptor
	lookup    func(key string) string
}

// NewRegistry returns a registry over the built-in provider table reading
// credentials from the process environment.
func NewRegistry() *Registry {
	return NewRegistryWith(builtinProviders(), os.Getenv)
}

// NewRegistryWith builds a registry from an explicit descriptor table and
// credential lookup. Descriptor order is preserved in Enabled.
func NewRegistryWith(providers []ProviderDescriptor, lookup func(string) string) *Registry {
	return &Registry{providers: providers, lookup: lookup}
}

// Enabled returns the descriptors whose credential is present, in
// declaration order. No network or liveness check is performed.
func (r *Registry) Enabled() []ProviderDescriptor {
	out := make([]ProviderDescriptor, 0, len(r.providers))
	for _, p := range r.providers {
		if r.lookup(p.CredentialEnv) != "" {
			out = append(out, p)
		}
	}
	return out
}

// Get returns the descriptor for id if the provider exists and its
// credential is set; otherwise ErrProviderUnavailable.
func (r *Registry) Get(id string) (ProviderDescriptor, error) {
	for _, p := range r.providers {
		if p.ID != id {
			continue
		}
		if r.lookup(p.CredentialEnv) == "" {
			return ProviderDescriptor{}, fmt.Errorf("%w: %s (missing %s)", ErrProviderUnavailable, id, p.CredentialEnv)
		}
		return p, nil
	}
	return ProviderDescriptor{}, fmt.Errorf("%w: unknown provider %q", ErrProviderUnavailable, id)
}

// credential returns the secret for a descriptor.
func (r *Registry) credential(p ProviderDescriptor) string {
	return r.lookup(p.CredentialEnv)
}

func builtinProviders() []ProviderDescriptor {
	return []ProviderDescriptor{
		{
			ID:            "cerebras",
			Name:          "Cerebras",
			CredentialEnv: "CEREBRAS_API_KEY",
			DefaultModel:  "llama-3.3-70b",
			Models: []ModelInfo{
				{ID: "llama-3.3-70b", Name: "Llama 3.3 70B"},
				{ID: "llama-3.1-70b", Name: "Llama 3.1 70B"},
				{ID: "llama-3.1-8b", Name: "Llama 3.1 8B"},
			},
		},
		{
			ID:            "openai",
			Name:          "OpenAI",
			CredentialEnv: "OPENAI_API_KEY",
			DefaultModel:  "gpt-4o",
			Models: []ModelInfo{
				{ID: "gpt-4o", Name: "GPT-4o"},
				{ID: "gpt-4-turbo", Name: "GPT-4 Turbo"},
				{ID: "gpt-3.5-turbo", Name: "GPT-3.5 Turbo"},
			},
		},
		{
			ID:            "anthropic",
			Name:          "Anthropic Claude",
			CredentialEnv: "ANTHROPIC_API_KEY",
			DefaultModel:  "claude-3-5-sonnet-20241022",
			Models: []ModelInfo{
				{ID: "claude-3-5-sonnet-20241022", Name: "Claude 3.5 Sonnet"},
				{ID: "claude-3-opus-20240229", Name: "Claude 3 Opus"},
				{ID: "claude-3-haiku-20240307", Name: "Claude 3 Haiku"},
			},
		},
		{
			ID:            "gemini",
			Name:          "Google Gemini",
			CredentialEnv: "GEMINI_API_KEY",
			DefaultModel:  "gemini-2.0-flash",
			Models: []ModelInfo{
				{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash"},
				{ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro"},
				{ID: "gemini-1.5-flash", Name: "Gemini 1.5 Flash"},
			},
		},
		{
			ID:            "groq",
			Name:          "Groq",
			CredentialEnv: "GROQ_API_KEY",
			DefaultModel:  "mixtral-8x7b-32768",
			Models: []ModelInfo{
				{ID: "mixtral-8x7b-32768", Name: "Mixtral 8x7B"},
				{ID: "llama3-70b-8192", Name: "Llama 3 70B"},
			},
		},
		{
			ID:            "mistral",
			Name:          "Mistral AI",
			CredentialEnv: "MISTRAL_API_KEY",
			DefaultModel:  "mistral-large-latest",
			Models: []ModelInfo{
				{ID: "mistral-large-latest", Name: "Mistral Large"},
				{ID: "mistral-medium-latest", Name: "Mistral Medium"},
				{ID: "mistral-small-latest", Name: "Mistral Small"},
			},
		},
		{
			ID:            "cohere",
			Name:          "Cohere",
			CredentialEnv: "COHERE_API_KEY",
			DefaultModel:  "command-r-plus",
			Models: []ModelInfo{
				{ID: "command-r-plus", Name: "Command R+"},
				{ID: "command-r", Name: "Command R"},
			},
		},
	}
}
