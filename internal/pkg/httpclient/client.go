// Package httpclient builds the shared HTTP client used by the outbound
// service adapters. One client instance is reused across adapters so idle
// connections are pooled; no client-level timeout is set, deadlines come from
// the request context.
package httpclient

import "net/http"

// New creates an HTTP client with a tuned connection pool.
func New() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
		},
	}
}
