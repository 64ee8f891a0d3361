// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"encoding/json"
	stderr "errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"authelia.com/provider/requestobject/i18n"
	"authelia.com/provider/requestobject/internal/consts"
	"authelia.com/provider/requestobject/internal/errorsx"
)

var (
	// ErrInvalidRequest represents the 'invalid_request' error from RFC6749 for the Authorize Code and Implicit Grant.
	//
	// See:
	//    - https://datatracker.ietf.org/doc/html/rfc6749#section-4.1.2.1
	//    - https://datatracker.ietf.org/doc/html/rfc6749#section-4.2.2.1.
	ErrInvalidRequest = &RequestObjectError{
		ErrorField:       errInvalidRequestName,
		DescriptionField: "The request is missing a required parameter, includes an invalid parameter value, includes a parameter more than once, or is otherwise malformed.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrServerError represents the 'server_error' error from RFC6749 for the Authorize Code and Implicit Grant.
	//
	// See:
	//    - https://datatracker.ietf.org/doc/html/rfc6749#section-4.1.2.1
	//    - https://datatracker.ietf.org/doc/html/rfc6749#section-4.2.2.1.
	ErrServerError = &RequestObjectError{
		ErrorField:       errServerErrorName,
		DescriptionField: "The authorization server encountered an unexpected condition that prevented it from fulfilling the request.",
		CodeField:        http.StatusInternalServerError,
	}

	// ErrInvalidRequestURI represents the 'invalid_request_uri' error from OpenID Connect 1.0.
	//
	// See: https://openid.net/specs/openid-connect-core-1_0.html#AuthError.
	ErrInvalidRequestURI = &RequestObjectError{
		ErrorField:       errInvalidRequestURIName,
		DescriptionField: "The request_uri in the Authorization Request returns an error or contains invalid data.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrInvalidRequestObject represents the 'invalid_request_object' error from OpenID Connect 1.0.
	//
	// See: https://openid.net/specs/openid-connect-core-1_0.html#AuthError.
	ErrInvalidRequestObject = &RequestObjectError{
		ErrorField:       errInvalidRequestObjectName,
		DescriptionField: "The request parameter contains an invalid Request Object.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrNotFound is returned by an AppConfigStore when the requested client does not exist.
	ErrNotFound = &RequestObjectError{
		ErrorField:       errNotFoundName,
		DescriptionField: "Could not find the requested resource(s).",
		CodeField:        http.StatusNotFound,
	}
)

const (
	errInvalidRequestURIName    = "invalid_request_uri"
	errInvalidRequestObjectName = "invalid_request_object"
	errInvalidRequestName       = "invalid_request"
	errServerErrorName          = "server_error"
	errNotFoundName             = "not_found"
	errUnknownErrorName         = "error"
)

// ErrorKind classifies a RequestObjectError by the pipeline stage which raised it.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota

	// KindConfiguration indicates no builder is registered for the selected carrier type.
	KindConfiguration

	// KindConstruction indicates the carrier payload was malformed or could not be fetched.
	KindConstruction

	// KindAppLookup indicates the client configuration could not be retrieved.
	KindAppLookup

	// KindSignatureRequired indicates the client requires a signed Request Object but an unsigned one was given.
	KindSignatureRequired

	// KindSignatureVerification indicates the Request Object signature could not be verified.
	KindSignatureVerification

	// KindClaimsValidation indicates the Request Object claims failed structural or semantic validation.
	KindClaimsValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindConstruction:
		return "construction"
	case KindAppLookup:
		return "app_lookup"
	case KindSignatureRequired:
		return "signature_required"
	case KindSignatureVerification:
		return "signature_verification"
	case KindClaimsValidation:
		return "claims_validation"
	default:
		return "unknown"
	}
}

// IsSignaturePolicyViolation returns true for the kinds raised by the signature policy.
func (k ErrorKind) IsSignaturePolicyViolation() bool {
	return k == KindSignatureRequired || k == KindSignatureVerification
}

type (
	// RequestObjectError is the error returned by every stage of the Request Object pipeline. It renders as an
	// OAuth 2.0 error response using the ErrorField as the error code and the description, hint, and optionally
	// the debug information as the error description.
	RequestObjectError struct {
		ErrorField       string
		DescriptionField string
		HintField        string
		CodeField        int
		DebugField       string
		KindField        ErrorKind
		cause            error
		useLegacyFormat  bool
		exposeDebug      bool

		// Fields for globalization
		hintIDField string
		hintArgs    []any
		catalog     i18n.MessageCatalog
		lang        language.Tag
	}
)

var (
	_ errorsx.DebugCarrier      = new(RequestObjectError)
	_ errorsx.ReasonCarrier     = new(RequestObjectError)
	_ errorsx.StatusCarrier     = new(RequestObjectError)
	_ errorsx.StatusCodeCarrier = new(RequestObjectError)
	_ errorsx.RFCError          = new(RequestObjectError)
)

// ErrorToRequestObjectError returns the RequestObjectError in the chain of err, or a generic unknown error wrapping err.
func ErrorToRequestObjectError(err error) *RequestObjectError {
	var e *RequestObjectError

	if errors.As(err, &e) {
		return e
	}

	return &RequestObjectError{
		ErrorField:       errUnknownErrorName,
		DescriptionField: "The error is unrecognizable",
		DebugField:       err.Error(),
		CodeField:        http.StatusInternalServerError,
		cause:            err,
	}
}

// ErrorToRequestObjectErrorFallback returns the RequestObjectError in the chain of err, or the fallback wrapping err.
func ErrorToRequestObjectErrorFallback(err error, fallback *RequestObjectError) *RequestObjectError {
	var e *RequestObjectError
	if errors.As(err, &e) {
		return e
	}

	return fallback.WithWrap(err).WithDebugError(err)
}

// IsKind returns true if err contains a RequestObjectError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var e *RequestObjectError

	if errors.As(err, &e) {
		return e.KindField == kind
	}

	return false
}

// StackTrace returns the error's stack trace.
func (e *RequestObjectError) StackTrace() (trace errors.StackTrace) {
	if e.cause == e || e.cause == nil {
		return
	}

	if st := errorsx.StackTracer(nil); stderr.As(e.cause, &st) {
		trace = st.StackTrace()
	}

	return
}

func (e RequestObjectError) Unwrap() error {
	return e.cause
}

func (e *RequestObjectError) Wrap(err error) {
	e.cause = err
}

func (e RequestObjectError) WithWrap(cause error) *RequestObjectError {
	e.cause = cause

	return &e
}

func (e RequestObjectError) WithLegacyFormat(useLegacyFormat bool) *RequestObjectError {
	e.useLegacyFormat = useLegacyFormat
	return &e
}

// WithKind returns a copy of the error classified as the given kind.
func (e RequestObjectError) WithKind(kind ErrorKind) *RequestObjectError {
	e.KindField = kind

	return &e
}

// Kind returns the pipeline classification of the error.
func (e *RequestObjectError) Kind() ErrorKind {
	return e.KindField
}

func (e RequestObjectError) Is(err error) bool {
	switch te := err.(type) {
	case RequestObjectError:
		return e.ErrorField == te.ErrorField &&
			e.CodeField == te.CodeField
	case *RequestObjectError:
		return e.ErrorField == te.ErrorField &&
			e.CodeField == te.CodeField
	}
	return false
}

func (e *RequestObjectError) Status() string {
	return http.StatusText(e.CodeField)
}

func (e RequestObjectError) Error() string {
	return e.ErrorField
}

func (e *RequestObjectError) Reason() string {
	return e.HintField
}

func (e *RequestObjectError) StatusCode() int {
	return e.CodeField
}

func (e *RequestObjectError) Cause() error {
	return e.cause
}

func (e *RequestObjectError) WithHintf(hint string, args ...any) *RequestObjectError {
	err := *e
	if err.hintIDField == "" {
		err.hintIDField = hint
	}

	err.hintArgs = args
	err.HintField = fmt.Sprintf(hint, args...)
	return &err
}

func (e *RequestObjectError) WithHint(hint string) *RequestObjectError {
	err := *e
	if err.hintIDField == "" {
		err.hintIDField = hint
	}

	err.HintField = hint
	return &err
}

// WithHintIDOrDefaultf accepts the ID of the hint message
func (e *RequestObjectError) WithHintIDOrDefaultf(id string, def string, args ...any) *RequestObjectError {
	err := *e
	err.hintIDField = id
	err.hintArgs = args
	err.HintField = fmt.Sprintf(def, args...)
	return &err
}

func (e *RequestObjectError) Debug() string {
	return e.DebugField
}

func (e *RequestObjectError) WithDebug(debug string) *RequestObjectError {
	err := *e
	err.DebugField = debug

	return &err
}

func (e *RequestObjectError) WithDebugError(debug error) *RequestObjectError {
	return e.WithDebug(ErrorToDebugRequestObjectError(debug).Error())
}

func (e *RequestObjectError) WithDebugf(debug string, args ...any) *RequestObjectError {
	return e.WithDebug(fmt.Sprintf(debug, args...))
}

func (e *RequestObjectError) WithDescription(description string) *RequestObjectError {
	err := *e
	err.DescriptionField = description
	return &err
}

func (e *RequestObjectError) WithLocalizer(catalog i18n.MessageCatalog, lang language.Tag) *RequestObjectError {
	err := *e
	err.catalog = catalog
	err.lang = lang
	return &err
}

// WithExposeDebug if set to true exposes debug messages.
func (e *RequestObjectError) WithExposeDebug(exposeDebug bool) *RequestObjectError {
	err := *e
	err.exposeDebug = exposeDebug

	return &err
}

// GetDescription returns a more descriptive description, combined with hint and debug (when available).
func (e *RequestObjectError) GetDescription() string {
	description := i18n.GetMessageOrDefault(e.catalog, e.ErrorField, e.lang, e.DescriptionField)
	e.computeHintField()

	if e.HintField != "" {
		description += " " + e.HintField
	}

	if e.exposeDebug && e.DebugField != "" {
		description += " " + e.DebugField
	}

	return strings.ReplaceAll(description, "\"", "'")
}

// RequestObjectErrorJSON is a helper struct for JSON encoding/decoding of RequestObjectError.
type RequestObjectErrorJSON struct {
	Name        string `json:"error"`
	Description string `json:"error_description"`
	Hint        string `json:"error_hint,omitempty"`
	Code        int    `json:"status_code,omitempty"`
	Debug       string `json:"error_debug,omitempty"`
}

func (e *RequestObjectError) UnmarshalJSON(b []byte) error {
	var data RequestObjectErrorJSON

	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}

	e.ErrorField = data.Name
	e.CodeField = data.Code
	e.DescriptionField = data.Description

	if len(data.Hint+data.Debug) > 0 {
		e.HintField = data.Hint
		e.DebugField = data.Debug
		e.useLegacyFormat = true
	}

	return nil
}

func (e RequestObjectError) MarshalJSON() ([]byte, error) {
	if !e.useLegacyFormat {
		return json.Marshal(&RequestObjectErrorJSON{
			Name:        e.ErrorField,
			Description: e.GetDescription(),
		})
	}

	var debug string
	if e.exposeDebug {
		debug = e.DebugField
	}

	return json.Marshal(&RequestObjectErrorJSON{
		Name:        e.ErrorField,
		Description: e.DescriptionField,
		Hint:        e.HintField,
		Code:        e.CodeField,
		Debug:       debug,
	})
}

// ToValues returns the error as OAuth 2.0 error response parameters.
func (e *RequestObjectError) ToValues() url.Values {
	values := url.Values{}
	values.Set(consts.FormParameterError, e.ErrorField)
	values.Set(consts.FormParameterErrorDescription, e.GetDescription())

	if e.useLegacyFormat {
		values.Set(consts.FormParameterErrorDescription, e.DescriptionField)
		if e.HintField != "" {
			values.Set(consts.FormParameterErrorHint, e.HintField)
		}

		if e.DebugField != "" && e.exposeDebug {
			values.Set(consts.FormParameterErrorDebug, e.DebugField)
		}
	}

	return values
}

func (e *RequestObjectError) computeHintField() {
	if e.hintIDField == "" {
		return
	}

	e.HintField = i18n.GetMessageOrDefault(e.catalog, e.hintIDField, e.lang, e.HintField, e.hintArgs...)
}

// ErrorToDebugRequestObjectError converts the provided error to a *DebugRequestObjectError provided it is not nil
// and can be cast as a *RequestObjectError.
func ErrorToDebugRequestObjectError(err error) (rfc error) {
	if err == nil {
		return nil
	}

	var e *RequestObjectError

	if errors.As(err, &e) {
		return &DebugRequestObjectError{e}
	}

	return err
}

// DebugRequestObjectError is a decorator type which makes the underlying *RequestObjectError expose debug
// information and show the full error description.
type DebugRequestObjectError struct {
	*RequestObjectError
}

// Error implements the builtin error interface and shows the error with its debug info and description.
func (err *DebugRequestObjectError) Error() string {
	return err.WithExposeDebug(true).GetDescription()
}
