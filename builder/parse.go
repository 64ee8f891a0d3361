// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package builder

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/go-jose/go-jose/v4"
	"github.com/tidwall/gjson"

	"authelia.com/provider/requestobject"
	"authelia.com/provider/requestobject/internal/consts"
	"authelia.com/provider/requestobject/internal/errorsx"
)

// KeyAlgorithms are the JWE key management algorithms accepted for encrypted Request Objects.
var KeyAlgorithms = []jose.KeyAlgorithm{
	jose.RSA_OAEP,
	jose.RSA_OAEP_256,
	jose.ECDH_ES,
	jose.ECDH_ES_A128KW,
	jose.ECDH_ES_A192KW,
	jose.ECDH_ES_A256KW,
}

// ContentEncryptionAlgorithms are the JWE content encryption algorithms accepted for encrypted Request Objects.
var ContentEncryptionAlgorithms = []jose.ContentEncryption{
	jose.A128CBC_HS256,
	jose.A192CBC_HS384,
	jose.A256CBC_HS512,
	jose.A128GCM,
	jose.A192GCM,
	jose.A256GCM,
}

// ParserConfigurator is the configuration consumed when parsing Request Objects.
type ParserConfigurator interface {
	requestobject.RequestObjectSigningAlgorithmsProvider
	requestobject.RequestObjectDecryptionKeysProvider
}

type parser struct {
	config ParserConfigurator
}

// parse turns a compact serialized JWT, JWS, or JWE into a RequestObject. Every failure is reported using base
// classified as requestobject.KindConstruction. The signature is not verified.
func (p *parser) parse(ctx context.Context, token string, carrier requestobject.CarrierType, base *requestobject.RequestObjectError) (ro *requestobject.RequestObject, err error) {
	token = strings.TrimSpace(token)

	switch strings.Count(token, ".") {
	case 4:
		var decrypted string

		if decrypted, err = p.decrypt(ctx, token, base); err != nil {
			return nil, err
		}

		if strings.Count(decrypted, ".") != 2 {
			return nil, constructionError(base, "The encrypted Request Object must contain a signed or unsecured JSON Web Token.", nil)
		}

		var opts *requestobject.RequestObjectOptions

		if opts, err = p.parseJWT(ctx, decrypted, base); err != nil {
			return nil, err
		}

		opts.Encrypted = true

		return newRequestObject(opts, carrier, base)
	case 2:
		var opts *requestobject.RequestObjectOptions

		if opts, err = p.parseJWT(ctx, token, base); err != nil {
			return nil, err
		}

		return newRequestObject(opts, carrier, base)
	default:
		return nil, constructionError(base, "The Request Object is not a compact serialized JSON Web Token.", nil)
	}
}

func (p *parser) parseJWT(ctx context.Context, token string, base *requestobject.RequestObjectError) (opts *requestobject.RequestObjectOptions, err error) {
	if strings.HasSuffix(token, ".") {
		return parseUnsecured(token, base)
	}

	var jws *jose.JSONWebSignature

	if jws, err = jose.ParseSigned(token, p.config.GetRequestObjectSigningAlgorithms(ctx)); err != nil {
		return nil, constructionError(base, "The Request Object could not be parsed as a JSON Web Signature.", err)
	}

	if len(jws.Signatures) != 1 {
		return nil, constructionError(base, "The Request Object must contain exactly one signature.", nil)
	}

	header := jws.Signatures[0].Protected

	opts = &requestobject.RequestObjectOptions{
		Raw:       token,
		Payload:   jws.UnsafePayloadWithoutVerification(),
		Algorithm: header.Algorithm,
		KeyID:     header.KeyID,
		Signed:    true,
	}

	if typ, ok := header.ExtraHeaders[jose.HeaderType].(string); ok {
		opts.Type = typ
	}

	return opts, nil
}

func parseUnsecured(token string, base *requestobject.RequestObjectError) (opts *requestobject.RequestObjectOptions, err error) {
	parts := strings.Split(token, ".")

	var header, payload []byte

	if header, err = base64.RawURLEncoding.DecodeString(parts[0]); err != nil {
		return nil, constructionError(base, "The Request Object header is not valid base64url.", err)
	}

	if !gjson.ValidBytes(header) {
		return nil, constructionError(base, "The Request Object header is not valid JSON.", nil)
	}

	alg := gjson.GetBytes(header, consts.JSONWebTokenHeaderAlgorithm)

	if alg.Type != gjson.String || alg.String() != consts.JSONWebTokenAlgNone {
		return nil, constructionError(base, "The Request Object has no signature but its 'alg' header is not 'none'.", nil)
	}

	if payload, err = base64.RawURLEncoding.DecodeString(parts[1]); err != nil {
		return nil, constructionError(base, "The Request Object payload is not valid base64url.", err)
	}

	return &requestobject.RequestObjectOptions{
		Raw:       token,
		Payload:   payload,
		Algorithm: consts.JSONWebTokenAlgNone,
		KeyID:     gjson.GetBytes(header, consts.JSONWebTokenHeaderKeyIdentifier).String(),
		Type:      gjson.GetBytes(header, consts.JSONWebTokenHeaderType).String(),
	}, nil
}

func (p *parser) decrypt(ctx context.Context, token string, base *requestobject.RequestObjectError) (decrypted string, err error) {
	keys := p.config.GetRequestObjectDecryptionKeys(ctx)
	if keys == nil || len(keys.Keys) == 0 {
		return "", constructionError(base, "The Request Object is encrypted but the server has no decryption keys configured.", nil)
	}

	var jwe *jose.JSONWebEncryption

	if jwe, err = jose.ParseEncrypted(token, KeyAlgorithms, ContentEncryptionAlgorithms); err != nil {
		return "", constructionError(base, "The Request Object could not be parsed as a JSON Web Encryption.", err)
	}

	candidates := keys.Keys
	if kid := jwe.Header.KeyID; kid != "" {
		candidates = keys.Key(kid)
	}

	var plaintext []byte

	for _, jwk := range candidates {
		if jwk.Use != "" && jwk.Use != consts.JSONWebTokenUseEncryption {
			continue
		}

		if plaintext, err = jwe.Decrypt(jwk.Key); err == nil {
			return string(plaintext), nil
		}
	}

	return "", constructionError(base, "The Request Object could not be decrypted with any of the configured keys.", err)
}

func newRequestObject(opts *requestobject.RequestObjectOptions, carrier requestobject.CarrierType, base *requestobject.RequestObjectError) (ro *requestobject.RequestObject, err error) {
	if !gjson.ValidBytes(opts.Payload) || !gjson.ParseBytes(opts.Payload).IsObject() {
		return nil, constructionError(base, "The Request Object claims are not a valid JSON object.", nil)
	}

	opts.Carrier = carrier

	if ro, err = requestobject.NewRequestObject(*opts); err != nil {
		return nil, constructionError(base, "The Request Object claims could not be decoded.", err)
	}

	return ro, nil
}

func constructionError(base *requestobject.RequestObjectError, hint string, cause error) error {
	e := base.WithHint(hint).WithKind(requestobject.KindConstruction)

	if cause != nil {
		e = e.WithWrap(cause).WithDebugError(cause)
	}

	return errorsx.WithStack(e)
}
