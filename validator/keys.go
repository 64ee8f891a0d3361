// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package validator

import (
	"context"
	"crypto"
	"sort"

	"github.com/go-jose/go-jose/v4"

	"authelia.com/provider/requestobject"
	"authelia.com/provider/requestobject/internal/consts"
	"authelia.com/provider/requestobject/internal/errorsx"
)

type privateKey interface {
	Public() crypto.PublicKey
}

type partial struct {
	points int
	jwk    jose.JSONWebKey
}

// findPublicKeyByKID returns the best matching signature key of the set. Keys with an exact 'kid', 'alg', and 'use'
// match are preferred, keys missing one of those values are ranked lower, and keys with a conflicting value are
// never returned.
func findPublicKeyByKID(kid, alg, use string, set *jose.JSONWebKeySet) (key any, err error) {
	if set == nil || len(set.Keys) == 0 {
		return nil, errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("The retrieved JSON Web Key Set does not contain any JSON Web Keys."))
	}

	partials := []partial{}

	for _, jwk := range set.Keys {
		if jwk.Use == use && jwk.Algorithm == alg && jwk.KeyID == kid {
			return publicKey(jwk), nil
		}

		p := partial{}

		if jwk.KeyID != kid {
			if jwk.KeyID == "" || kid == "" {
				p.points -= 3
			} else {
				continue
			}
		}

		if jwk.Use != use {
			if jwk.Use == "" {
				p.points -= 2
			} else {
				continue
			}
		}

		if jwk.Algorithm != alg {
			if jwk.Algorithm == "" {
				p.points -= 1
			} else {
				continue
			}
		}

		p.jwk = jwk

		partials = append(partials, p)
	}

	if len(partials) != 0 {
		sort.SliceStable(partials, func(i, j int) bool {
			return partials[i].points > partials[j].points
		})

		return publicKey(partials[0].jwk), nil
	}

	return nil, errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHintf("Unable to find JWK with kid value '%s', alg value '%s', and use value '%s' in the JSON Web Key Set.", kid, alg, use))
}

func publicKey(jwk jose.JSONWebKey) any {
	switch k := jwk.Key.(type) {
	case privateKey:
		return k.Public()
	default:
		return k
	}
}

// findClientPublicJWK resolves the signature key of the client from its registered JSON Web Key Set, or from its
// JSON Web Key Set URI. A remote set is fetched again bypassing the cache if the key is not found.
func findClientPublicJWK(ctx context.Context, strategy requestobject.JWKSFetcherStrategy, client requestobject.JSONWebKeysClientAppConfig, kid, alg string) (key any, err error) {
	if set := client.GetJSONWebKeys(); set != nil {
		return findPublicKeyByKID(kid, alg, consts.JSONWebTokenUseSignature, set)
	}

	var keys *jose.JSONWebKeySet

	if location := client.GetJSONWebKeysURI(); len(location) > 0 {
		if keys, err = strategy.Resolve(ctx, location, false); err != nil {
			return nil, err
		}

		if key, err = findPublicKeyByKID(kid, alg, consts.JSONWebTokenUseSignature, keys); err == nil {
			return key, nil
		}

		if keys, err = strategy.Resolve(ctx, location, true); err != nil {
			return nil, err
		}

		return findPublicKeyByKID(kid, alg, consts.JSONWebTokenUseSignature, keys)
	}

	return nil, errorsx.WithStack(requestobject.ErrInvalidRequestObject.WithHint("The OAuth 2.0 Client has no JSON Web Keys set registered, but they are needed to verify the Request Object signature."))
}
