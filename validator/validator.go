// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package validator

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/tidwall/gjson"

	"authelia.com/provider/requestobject"
	"authelia.com/provider/requestobject/internal/consts"
	"authelia.com/provider/requestobject/internal/errorsx"
)

// Configurator is the configuration consumed by the DefaultValidator.
type Configurator interface {
	requestobject.AppConfigStoreProvider
	requestobject.JWKSFetcherStrategyProvider
	requestobject.RequestObjectSigningAlgorithmsProvider
	requestobject.RequestObjectIssuerProvider
	requestobject.RequestObjectLifespanProvider
	requestobject.RequestObjectClockSkewProvider
	requestobject.ClockConfigProvider
}

// NewDefaultValidator returns a DefaultValidator.
func NewDefaultValidator(config Configurator) *DefaultValidator {
	return &DefaultValidator{Config: config}
}

// DefaultValidator verifies Request Object signatures using the JSON Web Keys registered by the client and validates
// the claims against the OAuth 2.0 request syntax parameters.
type DefaultValidator struct {
	Config Configurator
}

func (v *DefaultValidator) VerifySignature(ctx context.Context, ro *requestobject.RequestObject, params *requestobject.Parameters) (err error) {
	if !ro.IsSigned() {
		return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("The Request Object is not signed."))
	}

	var client requestobject.ClientAppConfig

	if client, err = v.Config.GetAppConfigStore(ctx).GetClientAppConfig(ctx, params.ClientID); err != nil {
		return errorsx.WithStack(requestobject.ErrServerError.
			WithHintf("Error while retrieving app information for client_id: %s.", params.ClientID).
			WithKind(requestobject.KindAppLookup).
			WithWrap(err).
			WithDebugError(err))
	}

	alg := ro.Algorithm()

	if registered, ok := client.(requestobject.RequestObjectClientAppConfig); ok {
		// All Request Objects from this client must be rejected if not signed with the registered algorithm.
		if expected := registered.GetRequestObjectSigningAlg(); expected != "" && expected != alg {
			return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHintf("The request object uses signing algorithm '%s', but the requested OAuth 2.0 Client enforces signing algorithm '%s'.", alg, expected))
		}
	}

	algs := v.Config.GetRequestObjectSigningAlgorithms(ctx)

	if !slices.Contains(algs, jose.SignatureAlgorithm(alg)) {
		return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHintf("This request object uses unsupported signing algorithm '%s'.", alg))
	}

	keyed, ok := client.(requestobject.JSONWebKeysClientAppConfig)
	if !ok {
		return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("The OAuth 2.0 Client has no JSON Web Keys set registered, but they are needed to verify the Request Object signature."))
	}

	var key any

	if key, err = findClientPublicJWK(ctx, v.Config.GetJWKSFetcherStrategy(ctx), keyed, ro.KeyID(), alg); err != nil {
		return err
	}

	var jws *jose.JSONWebSignature

	if jws, err = jose.ParseSigned(ro.Raw(), []jose.SignatureAlgorithm{jose.SignatureAlgorithm(alg)}); err != nil {
		return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("Unable to verify the request object's signature.").WithWrap(err).WithDebugError(err))
	}

	if _, err = jws.Verify(key); err != nil {
		return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("Unable to verify the request object's signature.").WithWrap(err).WithDebugError(err))
	}

	return nil
}

func (v *DefaultValidator) ValidateClaims(ctx context.Context, ro *requestobject.RequestObject, params *requestobject.Parameters) (err error) {
	payload := gjson.ParseBytes(ro.Payload())

	for _, name := range []string{consts.FormParameterRequest, consts.FormParameterRequestURI} {
		if payload.Get(name).Exists() {
			// The request and request_uri parameters MUST NOT be included in Request Objects.
			return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object must not contain the 'request' or 'request_uri' claims."))
		}
	}

	if value := payload.Get(consts.ClaimClientIdentifier); value.Exists() {
		if value.Type != gjson.String || value.String() != params.ClientID {
			return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object's 'client_id' claim must match the values provided in the standard OAuth 2.0 request syntax if provided."))
		}
	}

	if value := payload.Get(consts.FormParameterResponseType); value.Exists() {
		if value.Type != gjson.String || !requestobject.SplitArguments(value.String()).Matches(params.ResponseType...) {
			return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object's 'response_type' claim must match the values provided in the standard OAuth 2.0 request syntax if provided."))
		}
	}

	if ro.IsSigned() || ro.IsEncrypted() {
		if err = v.validateIssuerAudience(ctx, payload, params); err != nil {
			return err
		}
	}

	return v.validateTimeClaims(ctx, payload)
}

func (v *DefaultValidator) validateIssuerAudience(ctx context.Context, payload gjson.Result, params *requestobject.Parameters) (err error) {
	iss := payload.Get(consts.ClaimIssuer)

	if !iss.Exists() {
		return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object's 'iss' claim must be present when using signed or encrypted request objects."))
	}

	if iss.Type != gjson.String || iss.String() != params.ClientID {
		return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object's 'iss' claim must contain the 'client_id' when using signed or encrypted request objects."))
	}

	issuer := params.Issuer
	if issuer == "" {
		issuer = v.Config.GetRequestObjectIssuer(ctx)
	}

	if issuer == "" {
		return nil
	}

	aud := payload.Get(consts.ClaimAudience)

	if !aud.Exists() {
		return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object's 'aud' claim must be present when using signed or encrypted request objects."))
	}

	var valid bool

	switch {
	case aud.Type == gjson.String:
		valid = strings.EqualFold(aud.String(), issuer)
	case aud.IsArray():
		for _, value := range aud.Array() {
			if value.Type == gjson.String && strings.EqualFold(value.String(), issuer) {
				valid = true

				break
			}
		}
	}

	if !valid {
		return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object's 'aud' claim must be the Authorization Server's issuer when using signed or encrypted request objects."))
	}

	return nil
}

func (v *DefaultValidator) validateTimeClaims(ctx context.Context, payload gjson.Result) (err error) {
	now := v.Config.GetClock(ctx).Now()
	skew := v.Config.GetRequestObjectClockSkew(ctx)

	var exp, nbf, iat *time.Time

	if exp, err = numericDate(payload, consts.ClaimExpirationTime); err != nil {
		return err
	}

	if nbf, err = numericDate(payload, consts.ClaimNotBefore); err != nil {
		return err
	}

	if iat, err = numericDate(payload, consts.ClaimIssuedAt); err != nil {
		return err
	}

	if exp != nil && now.After(exp.Add(skew)) {
		return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("Unable to verify the request object because its claims could not be validated, check if the expiry time is set correctly.").WithDebugf("The 'exp' claim value %d is in the past.", exp.Unix()))
	}

	if nbf != nil && now.Add(skew).Before(*nbf) {
		return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("Unable to verify the request object because its claims could not be validated, check if the not before time is set correctly.").WithDebugf("The 'nbf' claim value %d is in the future.", nbf.Unix()))
	}

	if iat != nil && now.Add(skew).Before(*iat) {
		return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("Unable to verify the request object because its claims could not be validated, check if the issued at time is set correctly.").WithDebugf("The 'iat' claim value %d is in the future.", iat.Unix()))
	}

	lifespan := v.Config.GetRequestObjectLifespan(ctx)

	if lifespan <= 0 || exp == nil {
		return nil
	}

	from := now

	switch {
	case nbf != nil:
		from = *nbf
	case iat != nil:
		from = *iat
	}

	if exp.Sub(from) > lifespan {
		return errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHintf("The request object's lifetime exceeds the maximum of %s.", lifespan))
	}

	return nil
}

func numericDate(payload gjson.Result, claim string) (t *time.Time, err error) {
	value := payload.Get(claim)

	if !value.Exists() {
		return nil, nil
	}

	if value.Type != gjson.Number {
		return nil, errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHintf("The request object's '%s' claim must be a numeric date.", claim))
	}

	parsed := time.Unix(value.Int(), 0).UTC()

	return &parsed, nil
}

var (
	_ requestobject.Validator = (*DefaultValidator)(nil)
)
