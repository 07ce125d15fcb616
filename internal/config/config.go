// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for tootline.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Instance holds the address and credentials of the instance the client
	// talks to.
	Instance Instance `envPrefix:"INSTANCE_"`

	// Timeline holds pagination settings shared by every feed.
	Timeline Timeline `envPrefix:"TIMELINE_"`

	// Storage holds the local snapshot cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logging settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Instance describes the remote instance.
type Instance struct {
	// URL is the base address of the instance (e.g. "https://mastodon.social").
	// Env: INSTANCE_URL
	URL string `env:"URL"`

	// AccessToken is the OAuth bearer token of the account.
	// Env: INSTANCE_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// StreamingURL overrides the streaming API base address. When empty the
	// instance URL is used with a ws/wss scheme.
	// Env: INSTANCE_STREAMING_URL
	StreamingURL string `env:"STREAMING_URL"`

	// RequestTimeout bounds every REST call.
	// Env: INSTANCE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Timeline holds pagination settings.
type Timeline struct {
	// PageSize is the number of items requested per page. A page shorter
	// than this ends pagination.
	// Env: TIMELINE_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`

	// Lookahead is how many items before the end of a list the next page
	// starts loading.
	// Env: TIMELINE_LOOKAHEAD
	Lookahead int `env:"LOOKAHEAD"`

	// Default is the timeline shown at startup: home, local or public.
	// Env: TIMELINE_DEFAULT
	Default string `env:"DEFAULT"`
}

// Storage groups local storage settings.
type Storage struct {
	// DB holds the SQLite snapshot cache settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds background job settings.
type Workers struct {
	// SnapshotInterval is how often displayed timelines are written to the
	// local cache.
	// Env: WORKERS_SNAPSHOT_INTERVAL
	SnapshotInterval time.Duration `env:"SNAPSHOT_INTERVAL"`
}

// Log holds logging settings.
type Log struct {
	// File is the path of the log file.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Defaults used when no source sets a value.
const (
	DefaultRequestTimeout   = 15 * time.Second
	DefaultPageSize         = 20
	DefaultLookahead        = 5
	DefaultTimeline         = "home"
	DefaultSnapshotInterval = time.Minute
	MaxPageSize             = 40
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	dsn := "tootline.db"
	if dir, err := os.UserCacheDir(); err == nil {
		dsn = dir + string(os.PathSeparator) + "tootline" + string(os.PathSeparator) + "tootline.db"
	}

	return &StructuredConfig{
		Instance: Instance{RequestTimeout: DefaultRequestTimeout},
		Timeline: Timeline{
			PageSize:  DefaultPageSize,
			Lookahead: DefaultLookahead,
			Default:   DefaultTimeline,
		},
		Storage: Storage{DB: DB{DSN: dsn}},
		Workers: Workers{SnapshotInterval: DefaultSnapshotInterval},
	}
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from flags, environment variables, an optional JSON file and defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(os.Args[1:]).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
