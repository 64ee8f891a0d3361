// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package builder

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"authelia.com/provider/requestobject"
	"authelia.com/provider/requestobject/internal/consts"
	"authelia.com/provider/requestobject/internal/errorsx"
)

// ReferenceConfigurator is the configuration consumed by the ReferenceBuilder.
type ReferenceConfigurator interface {
	requestobject.HTTPClientProvider
	requestobject.RequestURIConfigProvider
	requestobject.AppConfigStoreProvider

	ParserConfigurator
}

// NewReferenceBuilder returns a ReferenceBuilder.
func NewReferenceBuilder(config ReferenceConfigurator) *ReferenceBuilder {
	return &ReferenceBuilder{config: config, parser: parser{config: config}}
}

// ReferenceBuilder builds Request Objects passed by reference using the 'request_uri' parameter. The URI is
// dereferenced with the configured HTTP client and the response body is parsed the same way as the ValueBuilder.
type ReferenceBuilder struct {
	config ReferenceConfigurator

	parser
}

func (b *ReferenceBuilder) Build(ctx context.Context, raw string, params *requestobject.Parameters) (ro *requestobject.RequestObject, err error) {
	raw = strings.TrimSpace(raw)

	var uri *url.URL

	if uri, err = b.validateRequestURI(ctx, raw, params); err != nil {
		return nil, err
	}

	var body string

	if body, err = b.fetch(ctx, uri); err != nil {
		return nil, err
	}

	return b.parse(ctx, body, requestobject.CarrierTypeRequestURI, requestobject.ErrInvalidRequestURI)
}

func (b *ReferenceBuilder) validateRequestURI(ctx context.Context, raw string, params *requestobject.Parameters) (uri *url.URL, err error) {
	if uri, err = url.Parse(raw); err != nil {
		return nil, errorsx.WithStack(requestobject.ErrInvalidRequestURI.WithHintf("The 'request_uri' value '%s' is not a valid URL.", raw).WithKind(requestobject.KindConstruction).WithWrap(err).WithDebugError(err))
	}

	if !requestobject.IsValidRequestURI(uri) {
		return nil, errorsx.WithStack(requestobject.ErrInvalidRequestURI.WithHintf("The 'request_uri' value '%s' must be an absolute URL.", raw).WithKind(requestobject.KindConstruction))
	}

	if !requestobject.IsRequestURISecure(uri, b.config.GetAllowInsecureRequestURI(ctx)) {
		if uri.Scheme == consts.SchemeHTTP {
			return nil, errorsx.WithStack(requestobject.ErrInvalidRequestURI.WithHintf("The 'request_uri' value '%s' must use the 'https' scheme.", raw).WithKind(requestobject.KindConstruction))
		}

		return nil, errorsx.WithStack(requestobject.ErrInvalidRequestURI.WithHintf("The 'request_uri' value '%s' uses the unsupported scheme '%s'.", raw, uri.Scheme).WithKind(requestobject.KindConstruction))
	}

	if !b.config.GetEnforceRegisteredRequestURIs(ctx) {
		return uri, nil
	}

	var client requestobject.ClientAppConfig

	if client, err = b.config.GetAppConfigStore(ctx).GetClientAppConfig(ctx, params.ClientID); err != nil {
		return nil, errorsx.WithStack(requestobject.ErrServerError.WithHintf("Error while retrieving app information for client_id: %s.", params.ClientID).WithKind(requestobject.KindAppLookup).WithWrap(err).WithDebugError(err))
	}

	registered, ok := client.(requestobject.RequestObjectClientAppConfig)
	if !ok || !requestobject.IsMatchingRequestURI(raw, registered.GetRequestURIs()) {
		return nil, errorsx.WithStack(requestobject.ErrInvalidRequestURI.WithHintf("Request URI '%s' is not whitelisted by the OAuth 2.0 Client.", raw).WithKind(requestobject.KindConstruction))
	}

	return uri, nil
}

func (b *ReferenceBuilder) fetch(ctx context.Context, uri *url.URL) (body string, err error) {
	location := *uri
	location.Fragment = ""

	var req *retryablehttp.Request

	if req, err = retryablehttp.NewRequestWithContext(ctx, http.MethodGet, location.String(), nil); err != nil {
		return "", errorsx.WithStack(requestobject.ErrInvalidRequestURI.WithHintf("Unable to fetch OpenID Connect 1.0 request parameters from 'request_uri' because: %s.", err.Error()).WithKind(requestobject.KindConstruction).WithWrap(err).WithDebugError(err))
	}

	req.Header.Set(consts.HeaderAccept, strings.Join([]string{consts.ContentTypeApplicationJOSE, consts.ContentTypeApplicationJWT}, ", "))

	var response *http.Response

	if response, err = b.config.GetHTTPClient(ctx).Do(req); err != nil {
		return "", errorsx.WithStack(requestobject.ErrInvalidRequestURI.WithHintf("Unable to fetch OpenID Connect 1.0 request parameters from 'request_uri' because: %s.", err.Error()).WithKind(requestobject.KindConstruction).WithWrap(err).WithDebugError(err))
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return "", errorsx.WithStack(requestobject.ErrInvalidRequestURI.WithHintf("Unable to fetch OpenID Connect 1.0 request parameters from 'request_uri' because status code '%d' was expected, but got '%d'.", http.StatusOK, response.StatusCode).WithKind(requestobject.KindConstruction))
	}

	limit := b.config.GetRequestURIMaxBodySize(ctx)

	var data []byte

	if data, err = io.ReadAll(io.LimitReader(response.Body, limit+1)); err != nil {
		return "", errorsx.WithStack(requestobject.ErrInvalidRequestURI.WithHintf("Unable to fetch OpenID Connect 1.0 request parameters from 'request_uri' because body parsing failed with: %s.", err).WithKind(requestobject.KindConstruction).WithWrap(err).WithDebugError(err))
	}

	if int64(len(data)) > limit {
		return "", errorsx.WithStack(requestobject.ErrInvalidRequestURI.WithHintf("Unable to fetch OpenID Connect 1.0 request parameters from 'request_uri' because the body exceeds the maximum size of %d bytes.", limit).WithKind(requestobject.KindConstruction))
	}

	return string(data), nil
}

// RegistryKey returns the requestobject.BuilderRegistry key this builder is registered under.
func (b *ReferenceBuilder) RegistryKey() string {
	return requestobject.CarrierTypeRequestURI.RegistryKey()
}

var (
	_ requestobject.Builder = (*ReferenceBuilder)(nil)
)
