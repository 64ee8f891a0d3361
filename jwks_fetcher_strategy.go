// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/go-jose/go-jose/v4"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"authelia.com/provider/requestobject/internal/consts"
	"authelia.com/provider/requestobject/internal/errorsx"
	"authelia.com/provider/requestobject/internal/httpclient"
)

const (
	defaultJWKSFetcherStrategyCachePrefix = "authelia.com/provider/requestobject.DefaultJWKSFetcherStrategy:"
	defaultJWKSFetcherMaxBodySize         = int64(1 << 20)
)

// JWKSFetcherStrategy resolves the JSON Web Key Set published at a client's 'jwks_uri'.
type JWKSFetcherStrategy interface {
	// Resolve returns the JSON Web Key Set, or an error if something went wrong. The ignoreCache, if true, forces
	// the strategy to fetch the keys from the remote.
	Resolve(ctx context.Context, location string, ignoreCache bool) (set *jose.JSONWebKeySet, err error)
}

// JWKSFetcherOption customizes a DefaultJWKSFetcherStrategy.
type JWKSFetcherOption func(*DefaultJWKSFetcherStrategy)

// DefaultJWKSFetcherStrategy is a JWKSFetcherStrategy which caches key sets in a ristretto cache.
type DefaultJWKSFetcherStrategy struct {
	client           *retryablehttp.Client
	cache            *ristretto.Cache
	ttl              time.Duration
	clientSourceFunc func(ctx context.Context) *retryablehttp.Client
}

// NewDefaultJWKSFetcherStrategy returns a new instance of the DefaultJWKSFetcherStrategy.
func NewDefaultJWKSFetcherStrategy(opts ...JWKSFetcherOption) *DefaultJWKSFetcherStrategy {
	dc, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000 * 10,
		MaxCost:     10000,
		BufferItems: 64,
		Metrics:     false,
		Cost: func(value any) int64 {
			return 1
		},
	})
	if err != nil {
		panic(err)
	}

	s := &DefaultJWKSFetcherStrategy{
		cache:  dc,
		client: httpclient.NewClient(),
		ttl:    time.Hour,
	}

	for _, o := range opts {
		o(s)
	}

	return s
}

// JWKSFetcherWithDefaultTTL sets the default TTL for the cache.
func JWKSFetcherWithDefaultTTL(ttl time.Duration) JWKSFetcherOption {
	return func(s *DefaultJWKSFetcherStrategy) {
		s.ttl = ttl
	}
}

// JWKSFetcherWithCache sets the cache to use.
func JWKSFetcherWithCache(cache *ristretto.Cache) JWKSFetcherOption {
	return func(s *DefaultJWKSFetcherStrategy) {
		s.cache = cache
	}
}

// JWKSFetcherWithHTTPClient sets the HTTP client to use.
func JWKSFetcherWithHTTPClient(client *retryablehttp.Client) JWKSFetcherOption {
	return func(s *DefaultJWKSFetcherStrategy) {
		s.client = client
	}
}

// JWKSFetcherWithHTTPClientSource sets the HTTP client source function to use.
func JWKSFetcherWithHTTPClientSource(clientSourceFunc func(ctx context.Context) *retryablehttp.Client) JWKSFetcherOption {
	return func(s *DefaultJWKSFetcherStrategy) {
		s.clientSourceFunc = clientSourceFunc
	}
}

func (s *DefaultJWKSFetcherStrategy) Resolve(ctx context.Context, location string, ignoreCache bool) (set *jose.JSONWebKeySet, err error) {
	key := defaultJWKSFetcherStrategyCachePrefix + location

	if !ignoreCache {
		if value, ok := s.cache.Get(key); ok {
			if cached, ok := value.(*jose.JSONWebKeySet); ok {
				return cached, nil
			}
		}
	}

	var body []byte

	if body, err = s.fetch(ctx, location); err != nil {
		return nil, err
	}

	if !gjson.GetBytes(body, "keys").IsArray() {
		return nil, errorsx.WithStack(ErrServerError.WithHintf("Unable to decode JSON Web Keys from location '%s'. The response does not contain a 'keys' array.", location))
	}

	set = &jose.JSONWebKeySet{}

	if err = json.Unmarshal(body, set); err != nil {
		return nil, errorsx.WithStack(ErrServerError.WithHintf("Unable to decode JSON Web Keys from location '%s'. Please check for typos and if the URL returns valid JSON.", location).WithWrap(err).WithDebugError(err))
	}

	s.cache.SetWithTTL(key, set, 1, s.ttl)

	return set, nil
}

func (s *DefaultJWKSFetcherStrategy) httpClient(ctx context.Context) *retryablehttp.Client {
	if s.clientSourceFunc != nil {
		return s.clientSourceFunc(ctx)
	}

	return s.client
}

func (s *DefaultJWKSFetcherStrategy) fetch(ctx context.Context, location string) (body []byte, err error) {
	var req *retryablehttp.Request

	if req, err = retryablehttp.NewRequestWithContext(ctx, http.MethodGet, location, nil); err != nil {
		return nil, errorsx.WithStack(ErrServerError.WithHintf("Unable to create HTTP 'GET' request to fetch JSON Web Keys from location '%s'.", location).WithWrap(err).WithDebugError(err))
	}

	req.Header.Set(consts.HeaderAccept, consts.ContentTypeApplicationJWKSet+", application/json")

	var response *http.Response

	if response, err = s.httpClient(ctx).Do(req); err != nil {
		return nil, errorsx.WithStack(ErrServerError.WithHintf("Unable to fetch JSON Web Keys from location '%s'. Check for typos or other network issues.", location).WithWrap(err).WithDebugError(err))
	}

	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 400 {
		return nil, errorsx.WithStack(ErrServerError.WithHintf("Expected successful status code in range of 200 - 399 from location '%s' but received code %d.", location, response.StatusCode))
	}

	if body, err = io.ReadAll(io.LimitReader(response.Body, defaultJWKSFetcherMaxBodySize)); err != nil {
		return nil, errorsx.WithStack(ErrServerError.WithHintf("Unable to read JSON Web Keys from location '%s'.", location).WithWrap(err).WithDebugError(err))
	}

	return body, nil
}

// WaitForCache blocks until all pending cache writes are applied.
func (s *DefaultJWKSFetcherStrategy) WaitForCache() {
	s.cache.Wait()
}

var (
	_ JWKSFetcherStrategy = (*DefaultJWKSFetcherStrategy)(nil)
)
