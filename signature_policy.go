// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"context"
	"strconv"

	"github.com/pkg/errors"

	"authelia.com/provider/requestobject/internal/consts"
	"authelia.com/provider/requestobject/internal/errorsx"
)

const (
	diagnosticMessageServerError                 = "Server error occurred."
	diagnosticMessageSignatureRequired           = "Request object signature validation is enabled but request object is not signed."
	diagnosticMessageSignatureVerificationFailed = "Request Object signature verification failed."
	diagnosticMessageSignatureVerified           = "Request Object signature verification is successful."
)

type signaturePolicyState int

const (
	signaturePolicyStateStart signaturePolicyState = iota
	signaturePolicyStateAppLookup
	signaturePolicyStateEnforced
	signaturePolicyStateOptional
	signaturePolicyStateChecked
	signaturePolicyStateDone
	signaturePolicyStateError
)

func (s signaturePolicyState) String() string {
	switch s {
	case signaturePolicyStateStart:
		return "START"
	case signaturePolicyStateAppLookup:
		return "APP_LOOKUP"
	case signaturePolicyStateEnforced:
		return "POLICY_ENFORCED"
	case signaturePolicyStateOptional:
		return "POLICY_OPTIONAL"
	case signaturePolicyStateChecked:
		return "SIGNATURE_CHECKED_OR_SKIPPED"
	case signaturePolicyStateDone:
		return "DONE"
	default:
		return "ERROR"
	}
}

// signaturePolicyResult is the outcome of evaluateSignaturePolicy. The events must be emitted in order by the caller.
type signaturePolicyResult struct {
	state    signaturePolicyState
	enforced bool
	verified bool
	events   []DiagnosticEvent
}

// evaluateSignaturePolicy decides whether the Request Object signature must be verified based on the client
// registration, performs the verification, and collects the diagnostic events describing the decision. It emits
// nothing itself.
func evaluateSignaturePolicy(ctx context.Context, store AppConfigStore, validator Validator, params *Parameters, ro *RequestObject) (result signaturePolicyResult, err error) {
	result.state = signaturePolicyStateAppLookup

	if store == nil {
		result.state = signaturePolicyStateError
		result.events = append(result.events, newDiagnosticEvent(DiagnosticOutcomeFailed, diagnosticMessageServerError, nil, nil))

		return result, errorsx.WithStack(ErrServerError.
			WithHint("No OpenID Connect 1.0 app configuration store is configured. Cannot proceed with signature validation.").
			WithKind(KindConfiguration))
	}

	var client ClientAppConfig

	if client, err = store.GetClientAppConfig(ctx, params.ClientID); err != nil || client == nil {
		if err == nil {
			err = ErrNotFound.WithDebugf("The app configuration store returned no configuration for client '%s'.", params.ClientID)
		}

		result.state = signaturePolicyStateError
		result.events = append(result.events, newDiagnosticEvent(DiagnosticOutcomeFailed, diagnosticMessageServerError, nil, nil))

		return result, errorsx.WithStack(ErrServerError.
			WithHintf("Error while retrieving app information for client_id: %s. Cannot proceed with signature validation.", params.ClientID).
			WithKind(KindAppLookup).
			WithWrap(err).
			WithDebugError(err))
	}

	result.enforced = client.IsRequestObjectSignatureValidationEnabled()

	if result.enforced {
		result.state = signaturePolicyStateEnforced

		if !ro.IsSigned() {
			result.state = signaturePolicyStateError
			result.events = append(result.events, newDiagnosticEvent(DiagnosticOutcomeFailed, diagnosticMessageSignatureRequired,
				map[string]string{consts.DiagnosticParamClientID: params.ClientID},
				map[string]string{consts.DiagnosticConfigRequestObjectSignatureValidationEnabled: strconv.FormatBool(true)},
			))

			return result, errorsx.WithStack(ErrInvalidRequest.
				WithHint("Request object signature validation is enabled but request object is not signed.").
				WithKind(KindSignatureRequired))
		}
	} else {
		result.state = signaturePolicyStateOptional
	}

	if ro.IsSigned() {
		if err = verifySignature(ctx, validator, params, ro); err != nil {
			result.state = signaturePolicyStateError
			result.events = append(result.events, newDiagnosticEvent(DiagnosticOutcomeFailed, verificationFailureMessage(err),
				map[string]string{consts.DiagnosticParamClientID: params.ClientID},
				map[string]string{consts.DiagnosticConfigRequestObjectSignatureValidationEnabled: strconv.FormatBool(result.enforced)},
			))

			return result, err
		}

		result.verified = true
	}

	result.state = signaturePolicyStateChecked

	result.events = append(result.events, newDiagnosticEvent(DiagnosticOutcomeSuccess, diagnosticMessageSignatureVerified, nil, nil))
	result.state = signaturePolicyStateDone

	return result, nil
}

// verifySignature invokes the validator. Errors which already carry a pipeline ErrorKind are returned unchanged,
// any other error is treated as a failed verification.
func verifySignature(ctx context.Context, validator Validator, params *Parameters, ro *RequestObject) (err error) {
	if validator == nil {
		return errorsx.WithStack(ErrServerError.
			WithHint("No OpenID Connect 1.0 Request Object validator is configured.").
			WithKind(KindConfiguration))
	}

	if err = validator.VerifySignature(ctx, ro, params); err == nil {
		return nil
	}

	var e *RequestObjectError

	if errors.As(err, &e) && e.Kind() != KindUnknown {
		return err
	}

	return errorsx.WithStack(ErrInvalidRequest.
		WithHint("Request Object signature verification failed.").
		WithKind(KindSignatureVerification).
		WithWrap(err).
		WithDebugError(err))
}

// verificationFailureMessage describes a failed verification step. Server side faults such as a failed app lookup
// are reported as server errors.
func verificationFailureMessage(err error) string {
	if !IsKind(err, KindSignatureVerification) && errors.Is(err, ErrServerError) {
		return diagnosticMessageServerError
	}

	return diagnosticMessageSignatureVerificationFailed
}

func newDiagnosticEvent(outcome DiagnosticOutcome, message string, params, config map[string]string) DiagnosticEvent {
	return DiagnosticEvent{
		Component: consts.DiagnosticComponentOAuthInboundService,
		Params:    params,
		Outcome:   outcome,
		Message:   message,
		Action:    consts.DiagnosticActionValidateRequestObjectSignature,
		Config:    config,
	}
}
