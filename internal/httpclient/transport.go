// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package httpclient

import (
	"crypto/tls"
	"net"
	"net/http"
	"runtime"
	"time"
)

// NewTransport returns the transport used for dereferencing 'request_uri' values and fetching JSON Web Key Sets.
// Connections require TLS 1.2 or later.
func NewTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		TLSHandshakeTimeout:   10 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   runtime.GOMAXPROCS(0) + 1,
		IdleConnTimeout:       90 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}
}
