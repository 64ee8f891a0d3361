// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package httpclient

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"
)

const (
	defaultRetryWaitMin = 1 * time.Second
	defaultRetryWaitMax = 30 * time.Second
	defaultRetryMax     = 4
	defaultTimeout      = 10 * time.Second
)

// Option configures the client returned by NewClient.
type Option func(client *retryablehttp.Client)

// WithRetryMax sets the maximum number of retries.
func WithRetryMax(max int) Option {
	return func(client *retryablehttp.Client) {
		client.RetryMax = max
	}
}

// WithRetryWait sets the minimum and maximum time to wait between retries.
func WithRetryWait(min, max time.Duration) Option {
	return func(client *retryablehttp.Client) {
		client.RetryWaitMin, client.RetryWaitMax = min, max
	}
}

// WithTimeout sets the timeout of each individual attempt.
func WithTimeout(timeout time.Duration) Option {
	return func(client *retryablehttp.Client) {
		client.HTTPClient.Timeout = timeout
	}
}

// WithHTTPClient sets the underlying HTTP client, for example the client of a httptest.Server.
func WithHTTPClient(hc *http.Client) Option {
	return func(client *retryablehttp.Client) {
		client.HTTPClient = hc
	}
}

// WithLogger sets the logger used to report attempts and retries. A nil logger disables logging.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(client *retryablehttp.Client) {
		if logger == nil {
			client.Logger = nil

			return
		}

		client.Logger = NewLeveledLogger(logger)
	}
}

// NewClient returns a retryablehttp.Client using NewTransport and logging through the logrus standard logger.
func NewClient(opts ...Option) *retryablehttp.Client {
	client := &retryablehttp.Client{
		HTTPClient:   &http.Client{Transport: NewTransport(), Timeout: defaultTimeout},
		Logger:       NewLeveledLogger(logrus.StandardLogger()),
		RetryWaitMin: defaultRetryWaitMin,
		RetryWaitMax: defaultRetryWaitMax,
		RetryMax:     defaultRetryMax,
		CheckRetry:   retryablehttp.DefaultRetryPolicy,
		Backoff:      retryablehttp.DefaultBackoff,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}
