// SPDX-License-Identifier: Apache-2.0

package config

import (
	"strings"
	"time"
)

// Defaults applied by validate when a field is unset. Kept here so the
// fallback behavior is visible in one place.
const (
	defaultTokenDuration  = time.Hour
	defaultAuthRequestTTL = 15 * time.Minute
	defaultReapInterval   = time.Minute
)

// validate checks the merged server [StructuredConfig] and fills in safe
// defaults for optional durations. Secrets are not defaulted: a missing
// sign key or hash key is a hard error on the server.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
	if cfg.App.AuthRequestTTL == 0 {
		cfg.App.AuthRequestTTL = defaultAuthRequestTTL
	}
	if cfg.Workers.ReapInterval == 0 {
		cfg.Workers.ReapInterval = defaultReapInterval
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if strings.TrimSpace(cfg.Storage.CachePath) == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
