// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"context"
	"net/http"
	"net/url"

	"authelia.com/provider/requestobject/i18n"
	"authelia.com/provider/requestobject/internal/consts"
	"authelia.com/provider/requestobject/internal/errorsx"
)

// Validator verifies the signature and validates the claims of a RequestObject. A nil error means the check passed.
type Validator interface {
	// VerifySignature verifies the JWS signature of a signed RequestObject against the keys registered by the client.
	VerifySignature(ctx context.Context, ro *RequestObject, params *Parameters) (err error)

	// ValidateClaims performs the structural and semantic validation of the RequestObject claims against the
	// OAuth 2.0 request syntax parameters.
	ValidateClaims(ctx context.Context, ro *RequestObject, params *Parameters) (err error)
}

// Pipeline selects, constructs, and validates the OpenID Connect 1.0 Request Object of an authorization request. It
// only holds the configuration and is safe for concurrent use when the configured collaborators are.
type Pipeline struct {
	Config Configurator

	emitter *Emitter
}

// NewPipeline returns a Pipeline using the provided configuration.
func NewPipeline(config Configurator) *Pipeline {
	return &Pipeline{
		Config:  config,
		emitter: &Emitter{Config: config},
	}
}

// BuildAndValidate selects the carrier of the Request Object, builds it using the registered Builder, enforces the
// client signature policy, and validates the claims. If the request carries neither a 'request' nor a
// 'request_uri' parameter then nil is returned for both values and no collaborator is consulted.
func (p *Pipeline) BuildAndValidate(ctx context.Context, view RequestView, params *Parameters) (ro *RequestObject, err error) {
	carrier, ok := SelectCarrierType(view)
	if !ok {
		return nil, nil
	}

	if ro, err = p.dispatch(ctx, view, carrier, params); err != nil {
		return nil, err
	}

	validator := p.Config.GetRequestObjectValidator(ctx)
	if validator == nil {
		p.emitter.Emit(ctx, newDiagnosticEvent(DiagnosticOutcomeFailed, diagnosticMessageServerError, nil, nil))

		return nil, errorsx.WithStack(ErrServerError.
			WithHint("No OpenID Connect 1.0 Request Object validator is configured.").
			WithKind(KindConfiguration))
	}

	if err = p.ValidateSignature(ctx, params, ro, validator); err != nil {
		return nil, err
	}

	if err = validator.ValidateClaims(ctx, ro, params); err != nil {
		return nil, errorsx.WithStack(ErrInvalidRequest.
			WithHint("Invalid parameters found in the Request Object.").
			WithKind(KindClaimsValidation).
			WithWrap(err).
			WithDebugError(err))
	}

	return ro, nil
}

// ValidateSignature enforces the signature policy of the client identified by params.ClientID against ro, emitting
// the resulting diagnostic events.
func (p *Pipeline) ValidateSignature(ctx context.Context, params *Parameters, ro *RequestObject, validator Validator) (err error) {
	result, err := evaluateSignaturePolicy(ctx, p.Config.GetAppConfigStore(ctx), validator, params, ro)

	p.emitter.Emit(ctx, result.events...)

	return err
}

func (p *Pipeline) dispatch(ctx context.Context, view RequestView, carrier CarrierType, params *Parameters) (ro *RequestObject, err error) {
	var (
		builder Builder
		ok      bool
	)

	if registry := p.Config.GetBuilderRegistry(ctx); registry != nil {
		builder, ok = registry.Lookup(carrier.RegistryKey())
	}

	if !ok || builder == nil {
		p.emitter.Emit(ctx, DiagnosticEvent{
			Component: consts.DiagnosticComponentOAuthInboundService,
			Params: map[string]string{
				consts.FormParameterRequest:    view.GetParam(consts.FormParameterRequest),
				consts.FormParameterRequestURI: view.GetParam(consts.FormParameterRequestURI),
			},
			Outcome: DiagnosticOutcomeFailed,
			Message: diagnosticMessageServerError,
			Action:  consts.DiagnosticActionParseRequestObject,
		})

		return nil, errorsx.WithStack(ErrServerError.
			WithHintf("Unable to build the OpenID Connect 1.0 Request Object from: %s", carrier).
			WithKind(KindConfiguration))
	}

	if ro, err = builder.Build(ctx, view.GetParam(carrier.Param()), params); err != nil {
		return nil, err
	}

	if ro == nil {
		return nil, errorsx.WithStack(ErrServerError.
			WithHintf("Unable to build the OpenID Connect 1.0 Request Object from: %s", carrier).
			WithDebug("The builder returned neither a Request Object nor an error.").
			WithKind(KindConfiguration))
	}

	return ro, nil
}

// ErrorValues renders err as OAuth 2.0 error response parameters localized for r. The request may be nil.
func (p *Pipeline) ErrorValues(ctx context.Context, r *http.Request, err error) url.Values {
	catalog := p.Config.GetMessageCatalog(ctx)

	return ErrorToRequestObjectError(err).
		WithLegacyFormat(p.Config.GetUseLegacyErrorFormat(ctx)).
		WithExposeDebug(p.Config.GetSendDebugMessagesToClients(ctx)).
		WithLocalizer(catalog, i18n.GetLangFromRequest(catalog, r)).
		ToValues()
}
