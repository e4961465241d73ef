/* Copyright © 2026 The nhl-stats-dashboard Authors. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// NewCachedHttpClient returns an http.Client that caches responses in the
// provided store and enforces a client-side TTL by rewriting origin cache
// headers to a fixed max-age. Responses served from the store carry an
// "X-From-Cache: 1" header. A nil store yields an uncached client over the
// same base transport, so retry and rate-limit behavior is preserved when
// caching is disabled.
func NewCachedHttpClient(store httpcache.Cache, maxAge time.Duration,
	base http.RoundTripper) *http.Client {

	if base == nil {
		base = http.DefaultTransport
	}
	if store == nil {
		return &http.Client{Transport: base}
	}

	hc := httpcache.NewTransport(store)
	// we have to inject our own header overrides here in order to override
	// server responses that might indicate caching shouldn't be done
	hc.Transport = &HeaderOverrideTransport{
		wrappedRT: base,
		Response: func(resp *http.Response) error {
			// Strip any cache-busting headers from origin
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Del("Cache-Control")
			// Enforce the provided TTL
			resp.Header.Set("Cache-Control",
				fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}

	return &http.Client{Transport: hc}
}

// NewBaseTransport builds the transport that sits below the cache: retries
// with backoff on transient statuses (429/5xx), paced by a shared limiter so
// only live fetches are throttled, never cache hits. A non-positive interval
// disables pacing.
func NewBaseTransport(requestInterval time.Duration) http.RoundTripper {
	rc := retryablehttp.NewClient()
	rc.RetryMax = 4
	rc.RetryWaitMin = 1 * time.Second
	rc.RetryWaitMax = 8 * time.Second
	rc.Logger = nil

	var rt http.RoundTripper = &retryablehttp.RoundTripper{Client: rc}
	if requestInterval <= 0 {
		return rt
	}

	return &RateLimitTransport{
		limiter:   rate.NewLimiter(rate.Every(requestInterval), 1),
		wrappedRT: rt,
	}
}

// RateLimitTransport blocks each outbound request until the limiter permits
// it, honoring the request's context.
type RateLimitTransport struct {
	limiter   *rate.Limiter
	wrappedRT http.RoundTripper
}

func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.wrappedRT.RoundTrip(req)
}

// HeaderOverrideTransport applies Request and Response hooks around the
// underlying transport.
type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	// Underlying RoundTripper (e.g. default transport or another decorator)
	wrappedRT http.RoundTripper
}

// RoundTrip applies Request and Response hooks around the underlying transport.
func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// clone so we don't stomp on the caller's original
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			return nil, err
		}
	}
	return resp, nil
}
