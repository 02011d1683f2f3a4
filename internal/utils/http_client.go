package utils

import (
	"github.com/goccy/go-json"
	"github.com/go-resty/resty/v2"
)

// RequestIDHeader carries a per-request UUID so a request can be matched
// with server-side logs.
const RequestIDHeader = "X-Request-Id"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance. The
// underlying resty.Client encodes and decodes JSON with goccy/go-json,
// performs no retries and stamps every request with a fresh
// [RequestIDHeader] unless the caller already set one.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	ids := NewUUIDGenerator()

	client := resty.New().
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		SetRetryCount(0).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			if r.Header.Get(RequestIDHeader) == "" {
				r.SetHeader(RequestIDHeader, ids.Generate())
			}
			return nil
		})

	return &HTTPClient{Client: client}
}
