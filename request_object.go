// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"encoding/json"

	"github.com/mohae/deepcopy"
	"github.com/tidwall/gjson"

	"authelia.com/provider/requestobject/internal/consts"
	"authelia.com/provider/requestobject/internal/errorsx"
)

// CarrierType is the authorization request parameter which carried the Request Object.
type CarrierType string

const (
	// CarrierTypeRequest is a Request Object passed by value using the 'request' parameter.
	CarrierTypeRequest CarrierType = consts.FormParameterRequest

	// CarrierTypeRequestURI is a Request Object passed by reference using the 'request_uri' parameter.
	CarrierTypeRequestURI CarrierType = consts.FormParameterRequestURI
)

// RegistryKey returns the BuilderRegistry key for the carrier type.
func (t CarrierType) RegistryKey() string {
	switch t {
	case CarrierTypeRequest:
		return consts.BuilderKeyRequestParamValue
	case CarrierTypeRequestURI:
		return consts.BuilderKeyRequestURIParamValue
	default:
		return ""
	}
}

// Param returns the authorization request parameter name of the carrier type.
func (t CarrierType) Param() string {
	return string(t)
}

// RequestObjectOptions describes a parsed Request Object. It is only consumed by NewRequestObject.
type RequestObjectOptions struct {
	Carrier CarrierType

	// Raw is the compact serialized JWT after any decryption has been performed.
	Raw string

	// Payload is the JSON claim set of the JWT.
	Payload []byte

	Algorithm string
	KeyID     string
	Type      string
	Signed    bool
	Encrypted bool
}

// RequestObject is an OpenID Connect 1.0 Request Object which has been parsed by a Builder. It is immutable once
// constructed.
//
// See: https://openid.net/specs/openid-connect-core-1_0.html#RequestObject
type RequestObject struct {
	carrier   CarrierType
	raw       string
	payload   []byte
	claims    map[string]any
	alg       string
	kid       string
	typ       string
	signed    bool
	encrypted bool
}

// NewRequestObject validates the options and returns a RequestObject. The payload must be a JSON object.
func NewRequestObject(opts RequestObjectOptions) (ro *RequestObject, err error) {
	if !gjson.ValidBytes(opts.Payload) || !gjson.ParseBytes(opts.Payload).IsObject() {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The OpenID Connect 1.0 Request Object claims are not a valid JSON object.").WithKind(KindConstruction))
	}

	claims := map[string]any{}

	if err = json.Unmarshal(opts.Payload, &claims); err != nil {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The OpenID Connect 1.0 Request Object claims could not be decoded.").WithKind(KindConstruction).WithWrap(err).WithDebugError(err))
	}

	payload := make([]byte, len(opts.Payload))
	copy(payload, opts.Payload)

	return &RequestObject{
		carrier:   opts.Carrier,
		raw:       opts.Raw,
		payload:   payload,
		claims:    claims,
		alg:       opts.Algorithm,
		kid:       opts.KeyID,
		typ:       opts.Type,
		signed:    opts.Signed,
		encrypted: opts.Encrypted,
	}, nil
}

// IsSigned returns true if the Request Object carries a JWS signature, i.e. its algorithm is not 'none'.
func (r *RequestObject) IsSigned() bool {
	return r.signed
}

// IsEncrypted returns true if the Request Object was received as a JWE.
func (r *RequestObject) IsEncrypted() bool {
	return r.encrypted
}

func (r *RequestObject) Carrier() CarrierType {
	return r.carrier
}

func (r *RequestObject) Algorithm() string {
	return r.alg
}

func (r *RequestObject) KeyID() string {
	return r.kid
}

func (r *RequestObject) Type() string {
	return r.typ
}

// Raw returns the compact serialized JWS or unsecured JWT.
func (r *RequestObject) Raw() string {
	return r.raw
}

// Payload returns a copy of the raw JSON claim set.
func (r *RequestObject) Payload() []byte {
	payload := make([]byte, len(r.payload))
	copy(payload, r.payload)

	return payload
}

// Claims returns a deep copy of the claim set.
func (r *RequestObject) Claims() map[string]any {
	return deepcopy.Copy(r.claims).(map[string]any)
}

// Claim returns a deep copy of a single claim value and true if the claim is present.
func (r *RequestObject) Claim(name string) (value any, ok bool) {
	if value, ok = r.claims[name]; !ok {
		return nil, false
	}

	return deepcopy.Copy(value), true
}

// GetClaimString returns the claim value if it is present and is a string.
func (r *RequestObject) GetClaimString(name string) (value string, ok bool) {
	result := gjson.GetBytes(r.payload, gjsonEscape(name))

	if result.Type != gjson.String {
		return "", false
	}

	return result.String(), true
}

func gjsonEscape(name string) string {
	escaped := make([]rune, 0, len(name))

	for _, c := range name {
		switch c {
		case '.', '*', '?', '|', '#', '@', '\\', '!', '=', '<', '>', '%':
			escaped = append(escaped, '\\')
		}

		escaped = append(escaped, c)
	}

	return string(escaped)
}
