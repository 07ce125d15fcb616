// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// accessTokenFile reads the bearer token from the file named by
// INSTANCE_ACCESS_TOKEN_FILE, so tokens can live outside the environment.
type accessTokenFile struct {
	Token string `env:"INSTANCE_ACCESS_TOKEN_FILE,file"`
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// INSTANCE_ACCESS_TOKEN wins over INSTANCE_ACCESS_TOKEN_FILE when both are set.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	if cfg.Instance.AccessToken != "" {
		return nil
	}

	var tf accessTokenFile
	if err := env.Parse(&tf); err != nil {
		return fmt.Errorf("error getting env configs: access token file: %w", err)
	}
	cfg.Instance.AccessToken = strings.TrimSpace(tf.Token)

	return nil
}
