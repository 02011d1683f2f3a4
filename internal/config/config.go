// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the raw configuration container. It is populated
// separately from every source and the results are merged by the config
// builder.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the remote API location and request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the local session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Log holds logging output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds the settings of the transport to the remote API.
type Adapter struct {
	// BaseURL is the scheme and host of the GMCServer instance
	// (e.g. "https://gmc.example.org").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIPath is the fixed prefix prepended to every API call.
	// Env: ADAPTER_API_PATH
	APIPath string `env:"API_PATH"`

	// RequestTimeout bounds a single HTTP request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local storage settings.
type Storage struct {
	Session Session `envPrefix:"SESSION_"`
}

// Session selects where the session keys are persisted.
type Session struct {
	// Backend is one of "memory", "file" or "sqlite".
	// Env: STORAGE_SESSION_BACKEND
	Backend string `env:"BACKEND"`

	// DSN is the JSON file path for the file backend or the SQLite database
	// path for the sqlite backend.
	// Env: STORAGE_SESSION_DSN
	DSN string `env:"DSN"`
}

// Log holds logging settings.
type Log struct {
	// File is the path of the log file.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Default values applied before any other source.
const (
	DefaultBaseURL        = "http://localhost:8081"
	DefaultAPIPath        = "/api/v1"
	DefaultRequestTimeout = 15 * time.Second
	DefaultSessionBackend = "file"
	DefaultSessionDSN     = "gmc-session.json"
	DefaultLogFile        = "gmc-client.log"
	DefaultLogLevel       = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        DefaultBaseURL,
			APIPath:        DefaultAPIPath,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			Session: Session{
				Backend: DefaultSessionBackend,
				DSN:     DefaultSessionDSN,
			},
		},
		Log: Log{
			File:  DefaultLogFile,
			Level: DefaultLogLevel,
		},
	}
}
