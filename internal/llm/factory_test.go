// README: Factory caching and failure-path tests.
package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetClientCachesPerProvider(t *testing.T) {
	reg := NewRegistryWith(builtinProviders(), mapLookup(map[string]string{
		"CEREBRAS_API_KEY": "ck",
	}))
	f := NewFactory(reg)
	defer f.Close()

	c1, err := f.GetClient("cerebras")
	require.NoError(t, err)
	c2, err := f.GetClient("cerebras")
	require.NoError(t, err)
	assert.Same(t, c1, c2)
}

func TestGetClientUnavailableProvider(t *testing.T) {
	f := NewFactory(NewRegistryWith(builtinProviders(), mapLookup(nil)))
	defer f.Close()

	_, err := f.GetClient("groq")
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}

func TestGetClientFailureNotCached(t *testing.T) {
	creds := map[string]string{}
	f := NewFactory(NewRegistryWith(builtinProviders(), mapLookup(creds)))
	defer f.Close()

	_, err := f.GetClient("mistral")
	require.ErrorIs(t, err, ErrProviderUnavailable)

	// Credential appears later (e.g. operator fixes the environment); the
	// earlier failure must not have been cached.
	creds["MISTRAL_API_KEY"] = "mk"
	c, err := f.GetClient("mistral")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestGetClientConcurrentFirstUse(t *testing.T) {
	reg := NewRegistryWith(builtinProviders(), mapLookup(map[string]string{
		"GROQ_API_KEY": "gk",
	}))
	f := NewFactory(reg)
	defer f.Close()

	clients := make(chan Client, 8)
	for i := 0; i < 8; i++ {
		go func() {
			c, err := f.GetClient("groq")
			if err != nil {
				clients <- nil
				return
			}
			clients <- c
		}()
	}

	first := <-clients
	require.NotNil(t, first)
	for i := 1; i < 8; i++ {
		assert.Same(t, first, <-clients)
	}
}
