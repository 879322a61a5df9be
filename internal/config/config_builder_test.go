package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergesEarlierSourcesFirst(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{TokenIssuer: "from-env"}},
		&StructuredConfig{App: App{TokenIssuer: "from-flags", TokenSignKey: "flag-key"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps the first non-zero value, so env wins over flags for
	// issuer while the flag-only sign key still lands.
	assert.Equal(t, "from-env", cfg.App.TokenIssuer)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
}

func TestBuild_AppliesDurationDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 15*time.Minute, cfg.App.AuthRequestTTL)
	assert.Equal(t, time.Minute, cfg.Workers.ReapInterval)
}

func TestBuild_PropagatesSourceError(t *testing.T) {
	b := newConfigBuilder()
	b.err = errors.New("env exploded")

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "env exploded")
}

func TestClientConfigValidate(t *testing.T) {
	valid := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "http://localhost:8080", RequestTimeout: time.Second},
		Storage: ClientStorage{CachePath: "cache.db"},
	}
	require.NoError(t, valid.validate())

	noAdapter := &ClientConfig{Storage: ClientStorage{CachePath: "cache.db"}}
	assert.ErrorIs(t, noAdapter.validate(), ErrInvalidAdapterConfigs)

	noCache := &ClientConfig{Adapter: ClientAdapter{BaseURL: "http://x", RequestTimeout: time.Second}}
	assert.ErrorIs(t, noCache.validate(), ErrInvalidStorageConfigs)
}
