// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"net/http"
	"net/url"
	"strconv"

	"authelia.com/provider/requestobject/internal/consts"
	"authelia.com/provider/requestobject/internal/errorsx"
)

// Parameters are the OAuth 2.0 Authorization Request parameters sent using the OAuth 2.0 request syntax. The
// Request Object pipeline never mutates the ClientID or ResponseType.
type Parameters struct {
	ClientID     string
	ResponseType Arguments
	Scopes       Arguments
	RedirectURI  string
	State        string
	Nonce        string
	ResponseMode string
	Prompt       Arguments
	MaxAge       int64
	Audience     Arguments

	// Issuer is the issuer identifier of the Authorization Server the request was sent to. It is the expected
	// 'aud' value of signed Request Objects.
	Issuer string
}

// NewParametersFromForm reads the Parameters from the form values.
func NewParametersFromForm(form url.Values) *Parameters {
	params := &Parameters{
		ClientID:     form.Get(consts.FormParameterClientID),
		ResponseType: SplitArguments(form.Get(consts.FormParameterResponseType)),
		Scopes:       SplitArguments(form.Get(consts.FormParameterScope)),
		RedirectURI:  form.Get(consts.FormParameterRedirectURI),
		State:        form.Get(consts.FormParameterState),
		Nonce:        form.Get(consts.FormParameterNonce),
		ResponseMode: form.Get(consts.FormParameterResponseMode),
		Prompt:       SplitArguments(form.Get(consts.FormParameterPrompt)),
		Audience:     SplitArguments(form.Get(consts.FormParameterAudience)),
	}

	if raw := form.Get(consts.FormParameterMaximumAge); raw != "" {
		if maxAge, err := strconv.ParseInt(raw, 10, 64); err == nil && maxAge >= 0 {
			params.MaxAge = maxAge
		}
	}

	return params
}

// IsOpenIDConnect returns true if the 'openid' scope was requested.
func (p *Parameters) IsOpenIDConnect() bool {
	return p.Scopes.Has(consts.ScopeOpenID)
}

// RequestView is a read-only view of the incoming authorization request. An empty string means the parameter
// is absent.
type RequestView interface {
	GetParam(name string) (value string)
}

// FormRequestView is a RequestView backed by form values.
type FormRequestView url.Values

func (v FormRequestView) GetParam(name string) string {
	return url.Values(v).Get(name)
}

// NewRequestViewFromHTTP parses the form of r and returns a RequestView of it.
func NewRequestViewFromHTTP(r *http.Request) (view FormRequestView, err error) {
	if err = r.ParseMultipartForm(1 << 20); err != nil && err != http.ErrNotMultipart {
		return nil, errorsx.WithStack(ErrInvalidRequest.WithHint("Unable to parse HTTP body, make sure to send a properly formatted form request body.").WithWrap(err).WithDebugError(err))
	}

	return FormRequestView(r.Form), nil
}

var (
	_ RequestView = FormRequestView(nil)
)
