// Package utils provides small helpers shared across the application:
// HTTP client construction and bearer-token parsing.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. It embeds *resty.Client to expose all of its
// methods directly while allowing extension with application-specific
// behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
