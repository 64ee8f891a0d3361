// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"context"

	"github.com/go-jose/go-jose/v4"
)

// ClientAppConfig represents the registered configuration of a client or an app.
type ClientAppConfig interface {
	// GetID returns the client ID.
	GetID() (id string)

	// IsRequestObjectSignatureValidationEnabled returns true if every Request Object sent by this client must be
	// signed and have a valid signature.
	IsRequestObjectSignatureValidationEnabled() (enabled bool)
}

// JSONWebKeysClientAppConfig is a ClientAppConfig which includes a JSON Web Key Set registration.
type JSONWebKeysClientAppConfig interface {
	// GetJSONWebKeys returns the JSON Web Key Set containing the public keys used by the client to sign Request
	// Objects.
	GetJSONWebKeys() (jwks *jose.JSONWebKeySet)

	// GetJSONWebKeysURI returns the URL for lookup of JSON Web Key Set containing the public keys used by the
	// client to sign Request Objects.
	GetJSONWebKeysURI() (uri string)

	ClientAppConfig
}

// RequestObjectClientAppConfig is a ClientAppConfig which includes the Request Object registration metadata.
type RequestObjectClientAppConfig interface {
	// GetRequestObjectSigningAlg returns the JWS alg algorithm that must be used for signing Request Objects sent to
	// the OP. All Request Objects from this client must be rejected if not signed with this algorithm. An empty
	// value means any algorithm supported by the OP may be used.
	GetRequestObjectSigningAlg() (alg string)

	// GetRequestURIs returns the request_uri values that are pre-registered by the client.
	GetRequestURIs() (uris []string)

	JSONWebKeysClientAppConfig
}

// AppConfigStore resolves the ClientAppConfig of a client. Implementations should return an error chain containing
// ErrNotFound when the client does not exist.
type AppConfigStore interface {
	GetClientAppConfig(ctx context.Context, clientID string) (config ClientAppConfig, err error)
}

// DefaultClientAppConfig is a simple default implementation of the RequestObjectClientAppConfig interface.
type DefaultClientAppConfig struct {
	ID                                      string              `json:"id" mapstructure:"id"`
	RequestObjectSignatureValidationEnabled bool                `json:"request_object_signature_validation_enabled" mapstructure:"request_object_signature_validation_enabled"`
	RequestObjectSigningAlg                 string              `json:"request_object_signing_alg,omitempty" mapstructure:"request_object_signing_alg"`
	RequestURIs                             []string            `json:"request_uris,omitempty" mapstructure:"request_uris"`
	JSONWebKeysURI                          string              `json:"jwks_uri,omitempty" mapstructure:"jwks_uri"`
	JSONWebKeys                             *jose.JSONWebKeySet `json:"jwks,omitempty" mapstructure:"-"`
}

func (c *DefaultClientAppConfig) GetID() string {
	return c.ID
}

func (c *DefaultClientAppConfig) IsRequestObjectSignatureValidationEnabled() bool {
	return c.RequestObjectSignatureValidationEnabled
}

func (c *DefaultClientAppConfig) GetRequestObjectSigningAlg() string {
	return c.RequestObjectSigningAlg
}

func (c *DefaultClientAppConfig) GetRequestURIs() []string {
	return c.RequestURIs
}

func (c *DefaultClientAppConfig) GetJSONWebKeysURI() string {
	return c.JSONWebKeysURI
}

func (c *DefaultClientAppConfig) GetJSONWebKeys() *jose.JSONWebKeySet {
	return c.JSONWebKeys
}

var (
	_ RequestObjectClientAppConfig = (*DefaultClientAppConfig)(nil)
)
