// README: Client factory with a per-provider cache.
package llm

import (
	"fmt"
	"sync"
)

// Factory produces chat clients for enabled providers. Clients are
// model-agnostic (the model id travels with each Complete call), so the
// cache is keyed by provider id alone. Construction failures are returned
// to the caller and never cached.
type Factory struct {
	registry *Registry

	mu    sync.Mutex
	cache map[string]Client
}

func NewFactory(registry *Registry) *Factory {
	return &Factory{
		registry: registry,
		cache:    make(map[string]Client),
	}
}

// GetClient returns a cached or freshly constructed client for providerID.
// It fails with ErrProviderUnavailable when the provider is unknown or its
// credential is missing. The mutex also serializes first-use construction,
// so concurrent callers never build duplicate clients.
func (f *Factory) GetClient(providerID string) (Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if c, ok := f.cache[providerID]; ok {
		return c, nil
	}

	desc, err := f.registry.Get(providerID)
	if err != nil {
		return nil, err
	}

	c, err := newClient(desc, f.registry.credential(desc))
	if err != nil {
		return nil, err
	}
	f.cache[providerID] = c
	return c, nil
}

// Close releases every cached client. The factory must not be used afterwards.
func (f *Factory) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for id, c := range f.cache {
		_ = c.Close()
		delete(f.cache, id)
	}
}

// newClient maps a descriptor to its concrete client. The provider set is
// closed; adding a backend means adding a case here and a descriptor to the
// built-in table.
func newClient(desc ProviderDescriptor, apiKey string) (Client, error) {
	switch desc.ID {
	case "gemini":
		return newGeminiClient(apiKey)
	case "openai":
		return newOpenAIClient(apiKey), nil
	case "anthropic":
		return newAnthropicClient(apiKey), nil
	case "cerebras", "groq", "mistral", "cohere":
		return newCompatClient(desc.ID, apiKey)
	default:
		return nil, fmt.Errorf("%w: no client for provider %q", ErrProviderUnavailable, desc.ID)
	}
}
