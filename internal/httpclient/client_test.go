// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package httpclient

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	client := NewClient()

	assert.Equal(t, defaultRetryMax, client.RetryMax)
	assert.Equal(t, defaultRetryWaitMin, client.RetryWaitMin)
	assert.Equal(t, defaultRetryWaitMax, client.RetryWaitMax)
	assert.Equal(t, defaultTimeout, client.HTTPClient.Timeout)
	assert.IsType(t, &LeveledLogger{}, client.Logger)

	client = NewClient(WithRetryMax(1), WithRetryWait(time.Millisecond, 2*time.Millisecond), WithTimeout(time.Second), WithLogger(nil))

	assert.Equal(t, 1, client.RetryMax)
	assert.Equal(t, time.Millisecond, client.RetryWaitMin)
	assert.Equal(t, 2*time.Millisecond, client.RetryWaitMax)
	assert.Equal(t, time.Second, client.HTTPClient.Timeout)
	assert.Nil(t, client.Logger)

	hc := &http.Client{}

	assert.Equal(t, hc, NewClient(WithHTTPClient(hc)).HTTPClient)
}

func TestClient_ShouldRetryServerErrors(t *testing.T) {
	var hits int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}

		_, _ = w.Write([]byte("ok"))
	}))

	defer server.Close()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	client := NewClient(WithRetryMax(2), WithRetryWait(time.Millisecond, time.Millisecond), WithLogger(logger))

	response, err := client.Get(server.URL)
	require.NoError(t, err)

	defer response.Body.Close()

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
	assert.NotEmpty(t, hook.AllEntries())
}

func TestLeveledLogger(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	l := NewLeveledLogger(logger)

	l.Debug("performing request", "method", "GET", "url", "https://app.example.com")
	l.Info("info")
	l.Warn("odd", "key")
	l.Error("failed", "error", "boom")

	entries := hook.AllEntries()
	require.Len(t, entries, 4)

	assert.Equal(t, logrus.DebugLevel, entries[0].Level)
	assert.Equal(t, logrus.Fields{"method": "GET", "url": "https://app.example.com"}, entries[0].Data)
	assert.Equal(t, logrus.InfoLevel, entries[1].Level)
	assert.Equal(t, logrus.Fields{"key": "MISSING"}, entries[2].Data)
	assert.Equal(t, logrus.ErrorLevel, entries[3].Level)
	assert.Equal(t, "boom", entries[3].Data["error"])
}

func TestNewTransport(t *testing.T) {
	transport := NewTransport()

	require.NotNil(t, transport.TLSClientConfig)
	assert.Equal(t, uint16(tls.VersionTLS12), transport.TLSClientConfig.MinVersion)
}
