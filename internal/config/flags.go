package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// BaseURL holds a validated http(s) origin such as "https://gmc.example.org".
// It implements the flag.Value interface.
type BaseURL struct {
	Scheme string
	Host   string
}

// parseFlags parses configuration flags from args and returns the remaining
// positional arguments.
//
// Flags:
//
//	-a remote API base URL in format scheme://host[:port]
//	-api-path API path prefix (e.g., /api/v1)
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-session-backend session store backend: memory, file or sqlite
//	-session-dsn session file or database path
//	-log-file log file path
//	-log-level log level (debug, info, warn, ...)
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, []string, error) {
	var baseURL BaseURL
	var apiPath string
	var requestTimeout time.Duration
	var sessionBackend string
	var sessionDSN string
	var logFile string
	var logLevel string
	var jsonConfigPath string

	fs := flag.NewFlagSet("gmc-client", flag.ContinueOnError)
	fs.Var(&baseURL, "a", "Remote API base URL scheme://host[:port]")
	fs.StringVar(&apiPath, "api-path", "", "API path prefix")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&sessionBackend, "session-backend", "", "Session store backend: memory, file or sqlite")
	fs.StringVar(&sessionDSN, "session-dsn", "", "Session file or database path")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL.String(),
			APIPath:        apiPath,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			Session: Session{
				Backend: sessionBackend,
				DSN:     sessionDSN,
			},
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// String returns the canonical scheme://host form, or an empty string when
// nothing was set.
func (u *BaseURL) String() string {
	if u.Scheme == "" && u.Host == "" {
		return ""
	}

	return u.Scheme + "://" + u.Host
}

// Set parses s as an absolute http or https URL. Any path, query or trailing
// slash is rejected because the API path is configured separately.
func (u *BaseURL) Set(s string) error {
	parsed, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return err
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("need base URL in a form `http(s)://host[:port]`")
	}

	if parsed.Host == "" {
		return errors.New("base URL host is empty")
	}

	if parsed.Path != "" && parsed.Path != "/" || parsed.RawQuery != "" {
		return errors.New("base URL must not contain a path or query")
	}

	u.Scheme = parsed.Scheme
	u.Host = parsed.Host
	return nil
}
