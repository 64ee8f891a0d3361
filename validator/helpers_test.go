// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package validator

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/go-jose/go-jose/v4"
	"github.com/stretchr/testify/require"

	"authelia.com/provider/requestobject"
)

func newRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return key
}

// newSignedRequestObject signs the payload and returns the RequestObject the way a builder would produce it.
func newSignedRequestObject(t *testing.T, alg jose.SignatureAlgorithm, key any, kid, payload string) *requestobject.RequestObject {
	t.Helper()

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: alg, Key: jose.JSONWebKey{Key: key, KeyID: kid}}, nil)
	require.NoError(t, err)

	jws, err := signer.Sign([]byte(payload))
	require.NoError(t, err)

	token, err := jws.CompactSerialize()
	require.NoError(t, err)

	ro, err := requestobject.NewRequestObject(requestobject.RequestObjectOptions{
		Carrier:   requestobject.CarrierTypeRequest,
		Raw:       token,
		Payload:   []byte(payload),
		Algorithm: string(alg),
		KeyID:     kid,
		Signed:    true,
	})
	require.NoError(t, err)

	return ro
}

func newRequestObject(t *testing.T, payload string, signed bool) *requestobject.RequestObject {
	t.Helper()

	opts := requestobject.RequestObjectOptions{
		Carrier:   requestobject.CarrierTypeRequest,
		Payload:   []byte(payload),
		Algorithm: "none",
	}

	if signed {
		opts.Algorithm, opts.Signed = "RS256", true
	}

	ro, err := requestobject.NewRequestObject(opts)
	require.NoError(t, err)

	return ro
}
