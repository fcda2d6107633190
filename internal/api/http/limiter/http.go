package limiter

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// limitedTransport wraps http.RoundTripper and allows round trips with maximum rate limit.
type limitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

// NewTransport creates rate limited transport instance.
// maxRate - maximum number of requests per second. Nil base means http.DefaultTransport.
func NewTransport(base http.RoundTripper, maxRate float64) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &limitedTransport{
		base:    base,
		limiter: rate.NewLimiter(rate.Limit(maxRate), 1),
	}
}

// RoundTrip executes http request. If limit is exceeded, blocks until call rate is within limit
// or request's context is done.
func (t *limitedTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(r.Context()); err != nil {
		return nil, fmt.Errorf("waiting for transport limiter: %w", err)
	}

	return t.base.RoundTrip(r)
}
