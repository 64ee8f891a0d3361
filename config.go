// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"context"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/hashicorp/go-retryablehttp"

	"authelia.com/provider/requestobject/i18n"
)

// DiagnosticsEnabledProvider returns the provider for configuring diagnostic event emission.
type DiagnosticsEnabledProvider interface {
	// GetDiagnosticsEnabled returns true if diagnostic events should be emitted. It is consulted on every emission.
	GetDiagnosticsEnabled(ctx context.Context) (enabled bool)
}

// DiagnosticsSinkProvider returns the provider for configuring the diagnostic event sink.
type DiagnosticsSinkProvider interface {
	// GetDiagnosticsSink returns the sink receiving diagnostic events.
	GetDiagnosticsSink(ctx context.Context) (sink DiagnosticsSink)
}

// BuilderRegistryProvider returns the provider for configuring the Request Object builders.
type BuilderRegistryProvider interface {
	// GetBuilderRegistry returns the registry of Request Object builders.
	GetBuilderRegistry(ctx context.Context) (registry BuilderRegistry)
}

// RequestObjectValidatorProvider returns the provider for configuring the Request Object validator.
type RequestObjectValidatorProvider interface {
	// GetRequestObjectValidator returns the Request Object validator.
	GetRequestObjectValidator(ctx context.Context) (validator Validator)
}

// AppConfigStoreProvider returns the provider for configuring the client app configuration lookup.
type AppConfigStoreProvider interface {
	// GetAppConfigStore returns the client app configuration store.
	GetAppConfigStore(ctx context.Context) (store AppConfigStore)
}

// HTTPClientProvider returns the provider for configuring the HTTP client.
type HTTPClientProvider interface {
	// GetHTTPClient returns the HTTP client provider.
	GetHTTPClient(ctx context.Context) (client *retryablehttp.Client)
}

// JWKSFetcherStrategyProvider returns the provider for configuring the JWKS fetcher strategy.
type JWKSFetcherStrategyProvider interface {
	// GetJWKSFetcherStrategy returns the JWKS fetcher strategy.
	GetJWKSFetcherStrategy(ctx context.Context) (strategy JWKSFetcherStrategy)
}

// RequestObjectIssuerProvider returns the provider for configuring the expected audience of Request Objects.
type RequestObjectIssuerProvider interface {
	// GetRequestObjectIssuer returns the issuer identifier of the Authorization Server which signed Request Objects
	// must contain in their 'aud' claim.
	GetRequestObjectIssuer(ctx context.Context) (issuer string)
}

// RequestObjectLifespanProvider returns the provider for configuring the maximum Request Object lifespan.
type RequestObjectLifespanProvider interface {
	// GetRequestObjectLifespan returns the maximum duration between the 'iat' or 'nbf' and the 'exp' claims. A
	// value of 0 disables the check.
	GetRequestObjectLifespan(ctx context.Context) (lifespan time.Duration)
}

// RequestObjectClockSkewProvider returns the provider for configuring the Request Object time claim leeway.
type RequestObjectClockSkewProvider interface {
	// GetRequestObjectClockSkew returns the leeway applied to the 'exp' and 'nbf' claims.
	GetRequestObjectClockSkew(ctx context.Context) (skew time.Duration)
}

// RequestObjectSigningAlgorithmsProvider returns the provider for configuring the accepted Request Object algorithms.
type RequestObjectSigningAlgorithmsProvider interface {
	// GetRequestObjectSigningAlgorithms returns the JWS algorithms accepted for signed Request Objects.
	GetRequestObjectSigningAlgorithms(ctx context.Context) (algs []jose.SignatureAlgorithm)
}

// RequestObjectDecryptionKeysProvider returns the provider for configuring the Request Object decryption keys.
type RequestObjectDecryptionKeysProvider interface {
	// GetRequestObjectDecryptionKeys returns the private keys used to decrypt encrypted Request Objects.
	GetRequestObjectDecryptionKeys(ctx context.Context) (keys *jose.JSONWebKeySet)
}

// RequestURIConfigProvider returns the provider for configuring the 'request_uri' dereference behaviour.
type RequestURIConfigProvider interface {
	// GetRequestURIMaxBodySize returns the maximum number of bytes read from a 'request_uri'.
	GetRequestURIMaxBodySize(ctx context.Context) (size int64)

	// GetAllowInsecureRequestURI returns true if 'request_uri' values using the 'http' scheme are permitted.
	GetAllowInsecureRequestURI(ctx context.Context) (allow bool)

	// GetEnforceRegisteredRequestURIs returns true if the 'request_uri' must be pre-registered by the client.
	GetEnforceRegisteredRequestURIs(ctx context.Context) (enforce bool)
}

// MessageCatalogProvider returns the provider for configuring the message catalog.
type MessageCatalogProvider interface {
	// GetMessageCatalog returns the message catalog.
	GetMessageCatalog(ctx context.Context) (catalog i18n.MessageCatalog)
}

// SendDebugMessagesToClientsProvider returns the provider for configuring the send debug messages to clients.
type SendDebugMessagesToClientsProvider interface {
	// GetSendDebugMessagesToClients returns the send debug messages to clients.
	GetSendDebugMessagesToClients(ctx context.Context) (send bool)
}

// UseLegacyErrorFormatProvider returns the provider for configuring whether to use the legacy error format.
type UseLegacyErrorFormatProvider interface {
	// GetUseLegacyErrorFormat returns whether to use the legacy error format.
	//
	// DEPRECATED: Do not use this flag anymore.
	GetUseLegacyErrorFormat(ctx context.Context) (use bool)
}

// ClockConfigProvider is the configuration provider for clock functionality.
type ClockConfigProvider interface {
	// GetClock returns the configured ClockProvider.
	GetClock(ctx context.Context) (clock ClockProvider)
}

// Configurator is the configuration consumed by the Pipeline.
type Configurator interface {
	DiagnosticsEnabledProvider
	DiagnosticsSinkProvider
	BuilderRegistryProvider
	RequestObjectValidatorProvider
	AppConfigStoreProvider
	MessageCatalogProvider
	SendDebugMessagesToClientsProvider
	UseLegacyErrorFormatProvider
	ClockConfigProvider
}
