package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the scheme and host of the remote API.
	BaseURL string `validate:"required,url"`
	// APIPath is the path prefix of every API call.
	APIPath string `validate:"required,startswith=/"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `validate:"gt=0"`
}

// ClientSessionStorage selects the session store backend.
type ClientSessionStorage struct {
	Backend string `validate:"oneof=memory file sqlite"`
	DSN     string `validate:"required_unless=Backend memory"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	Session ClientSessionStorage
}

// ClientLog holds logging settings.
type ClientLog struct {
	File  string
	Level string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the remote API location and timeouts.
	Adapter ClientAdapter
	// Storage contains session storage settings.
	Storage ClientStorage
	// Log contains logging settings.
	Log ClientLog
	// Args holds the positional arguments left after flag parsing: the
	// command name followed by its arguments.
	Args []string
}

// GetClientConfig builds and validates the client config from defaults, the
// optional JSON file, the environment and args (usually os.Args[1:]).
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			APIPath:        cfg.Adapter.APIPath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Session: ClientSessionStorage{
				Backend: cfg.Storage.Session.Backend,
				DSN:     cfg.Storage.Session.DSN,
			},
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
		Args: rest,
	}

	return clientCfg, clientCfg.validate()
}

// GetStructuredConfig loads and merges the configuration from all sources and
// returns it together with the positional arguments left after flag parsing.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	return cfg, b.args, err
}
