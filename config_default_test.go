// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"context"
	"sync"
	"testing"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_ShouldLazilyCreateDefaultsOnceConcurrently(t *testing.T) {
	config := &Config{}
	ctx := context.Background()

	const n = 16

	var (
		wg         sync.WaitGroup
		clients    = make([]*retryablehttp.Client, n)
		strategies = make([]JWKSFetcherStrategy, n)
	)

	for i := 0; i < n; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			strategies[i] = config.GetJWKSFetcherStrategy(ctx)
			clients[i] = config.GetHTTPClient(ctx)
		}(i)
	}

	wg.Wait()

	require.NotNil(t, clients[0])
	require.NotNil(t, strategies[0])

	for i := 1; i < n; i++ {
		assert.Same(t, clients[0], clients[i])
		assert.Same(t, strategies[0], strategies[i])
	}

	assert.Same(t, clients[0], config.HTTPClient)
	assert.Same(t, strategies[0], config.JWKSFetcherStrategy)
}

func TestConfig_ShouldKeepConfiguredHTTPClientAndStrategy(t *testing.T) {
	client := retryablehttp.NewClient()
	strategy := NewDefaultJWKSFetcherStrategy()

	config := &Config{HTTPClient: client, JWKSFetcherStrategy: strategy}

	assert.Same(t, client, config.GetHTTPClient(context.Background()))
	assert.Same(t, strategy, config.GetJWKSFetcherStrategy(context.Background()))
}
