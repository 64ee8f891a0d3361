// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"context"
	"sync"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/hashicorp/go-retryablehttp"

	"authelia.com/provider/requestobject/i18n"
	"authelia.com/provider/requestobject/internal/httpclient"
)

const (
	defaultRequestURIMaxBodySize  = int64(1 << 16)
	defaultRequestObjectClockSkew = time.Minute
)

// DefaultRequestObjectSigningAlgorithms are the JWS algorithms accepted when none are configured.
var DefaultRequestObjectSigningAlgorithms = []jose.SignatureAlgorithm{
	jose.RS256, jose.RS384, jose.RS512,
	jose.PS256, jose.PS384, jose.PS512,
	jose.ES256, jose.ES384, jose.ES512,
	jose.EdDSA,
}

// Config is the default implementation of every provider interface used by the Request Object pipeline and the
// default builders and validator.
type Config struct {
	// DiagnosticsEnabled enables diagnostic event emission. It is ignored when DiagnosticsEnabledFunc is set.
	DiagnosticsEnabled bool

	// DiagnosticsEnabledFunc is consulted on every emission to allow toggling diagnostics at runtime.
	DiagnosticsEnabledFunc func(ctx context.Context) bool

	// DiagnosticsSink receives the diagnostic events.
	DiagnosticsSink DiagnosticsSink

	// BuilderRegistry holds the Request Object builders keyed by carrier.
	BuilderRegistry BuilderRegistry

	// RequestObjectValidator verifies signatures and validates claims of Request Objects.
	RequestObjectValidator Validator

	// AppConfigStore resolves the registration of clients.
	AppConfigStore AppConfigStore

	// HTTPClient is the HTTP client to use for requests. Defaults to a client logging through logrus.
	HTTPClient *retryablehttp.Client

	// JWKSFetcherStrategy is responsible for fetching JSON Web Keys from remote URLs.
	JWKSFetcherStrategy JWKSFetcherStrategy

	// RequestObjectIssuer is the issuer identifier which signed Request Objects must name in the 'aud' claim.
	RequestObjectIssuer string

	// RequestObjectLifespan is the maximum lifespan of a Request Object. Defaults to 0 which disables the check.
	RequestObjectLifespan time.Duration

	// RequestObjectClockSkew is the leeway applied to the 'exp' and 'nbf' claims. Defaults to one minute.
	RequestObjectClockSkew time.Duration

	// RequestObjectSigningAlgorithms are the accepted JWS algorithms. Defaults to DefaultRequestObjectSigningAlgorithms.
	RequestObjectSigningAlgorithms []jose.SignatureAlgorithm

	// RequestObjectDecryptionKeys are the private keys used to decrypt encrypted Request Objects.
	RequestObjectDecryptionKeys *jose.JSONWebKeySet

	// RequestURIMaxBodySize is the maximum number of bytes read from a 'request_uri'. Defaults to 64KiB.
	RequestURIMaxBodySize int64

	// AllowInsecureRequestURI permits 'request_uri' values using the 'http' scheme.
	AllowInsecureRequestURI bool

	// EnforceRegisteredRequestURIs requires each 'request_uri' to be pre-registered by the client.
	EnforceRegisteredRequestURIs bool

	// MessageCatalog is the message bundle used for i18n.
	MessageCatalog i18n.MessageCatalog

	// SendDebugMessagesToClients if set to true, includes error debug messages in response payloads. Be aware that
	// sensitive data may be exposed. Proceed with caution!
	SendDebugMessagesToClients bool

	// UseLegacyErrorFormat controls whether the legacy error format (with `error_debug`, `error_hint`, ...)
	// should be used or not.
	UseLegacyErrorFormat bool

	// Clock is the time source. Defaults to RealClock.
	Clock ClockProvider

	httpClientOnce          sync.Once
	jwksFetcherStrategyOnce sync.Once
}

func (c *Config) GetDiagnosticsEnabled(ctx context.Context) bool {
	if c.DiagnosticsEnabledFunc != nil {
		return c.DiagnosticsEnabledFunc(ctx)
	}

	return c.DiagnosticsEnabled
}

func (c *Config) GetDiagnosticsSink(ctx context.Context) DiagnosticsSink {
	return c.DiagnosticsSink
}

func (c *Config) GetBuilderRegistry(ctx context.Context) BuilderRegistry {
	return c.BuilderRegistry
}

func (c *Config) GetRequestObjectValidator(ctx context.Context) Validator {
	return c.RequestObjectValidator
}

func (c *Config) GetAppConfigStore(ctx context.Context) AppConfigStore {
	return c.AppConfigStore
}

func (c *Config) GetHTTPClient(ctx context.Context) *retryablehttp.Client {
	c.httpClientOnce.Do(func() {
		if c.HTTPClient == nil {
			c.HTTPClient = httpclient.NewClient()
		}
	})

	return c.HTTPClient
}

func (c *Config) GetJWKSFetcherStrategy(ctx context.Context) JWKSFetcherStrategy {
	c.jwksFetcherStrategyOnce.Do(func() {
		if c.JWKSFetcherStrategy == nil {
			c.JWKSFetcherStrategy = NewDefaultJWKSFetcherStrategy(JWKSFetcherWithHTTPClientSource(c.GetHTTPClient))
		}
	})

	return c.JWKSFetcherStrategy
}

func (c *Config) GetRequestObjectIssuer(ctx context.Context) string {
	return c.RequestObjectIssuer
}

func (c *Config) GetRequestObjectLifespan(ctx context.Context) time.Duration {
	return c.RequestObjectLifespan
}

func (c *Config) GetRequestObjectClockSkew(ctx context.Context) time.Duration {
	if c.RequestObjectClockSkew == 0 {
		return defaultRequestObjectClockSkew
	}

	return c.RequestObjectClockSkew
}

func (c *Config) GetRequestObjectSigningAlgorithms(ctx context.Context) []jose.SignatureAlgorithm {
	if len(c.RequestObjectSigningAlgorithms) == 0 {
		return DefaultRequestObjectSigningAlgorithms
	}

	return c.RequestObjectSigningAlgorithms
}

func (c *Config) GetRequestObjectDecryptionKeys(ctx context.Context) *jose.JSONWebKeySet {
	return c.RequestObjectDecryptionKeys
}

func (c *Config) GetRequestURIMaxBodySize(ctx context.Context) int64 {
	if c.RequestURIMaxBodySize <= 0 {
		return defaultRequestURIMaxBodySize
	}

	return c.RequestURIMaxBodySize
}

func (c *Config) GetAllowInsecureRequestURI(ctx context.Context) bool {
	return c.AllowInsecureRequestURI
}

func (c *Config) GetEnforceRegisteredRequestURIs(ctx context.Context) bool {
	return c.EnforceRegisteredRequestURIs
}

func (c *Config) GetMessageCatalog(ctx context.Context) i18n.MessageCatalog {
	return c.MessageCatalog
}

func (c *Config) GetSendDebugMessagesToClients(ctx context.Context) bool {
	return c.SendDebugMessagesToClients
}

func (c *Config) GetUseLegacyErrorFormat(ctx context.Context) bool {
	return c.UseLegacyErrorFormat
}

func (c *Config) GetClock(ctx context.Context) ClockProvider {
	if c.Clock == nil {
		return NewRealClock()
	}

	return c.Clock
}

var (
	_ Configurator                           = (*Config)(nil)
	_ HTTPClientProvider                     = (*Config)(nil)
	_ JWKSFetcherStrategyProvider            = (*Config)(nil)
	_ RequestObjectIssuerProvider            = (*Config)(nil)
	_ RequestObjectLifespanProvider          = (*Config)(nil)
	_ RequestObjectClockSkewProvider         = (*Config)(nil)
	_ RequestObjectSigningAlgorithmsProvider = (*Config)(nil)
	_ RequestObjectDecryptionKeysProvider    = (*Config)(nil)
	_ RequestURIConfigProvider               = (*Config)(nil)
)
