// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package builder

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"testing"

	"github.com/go-jose/go-jose/v4"
	"github.com/stretchr/testify/require"
)

func newRSAKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return key
}

func sign(t *testing.T, alg jose.SignatureAlgorithm, key any, kid, payload string) string {
	t.Helper()

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: alg, Key: jose.JSONWebKey{Key: key, KeyID: kid}}, (&jose.SignerOptions{}).WithType("oauth-authz-req+jwt"))
	require.NoError(t, err)

	jws, err := signer.Sign([]byte(payload))
	require.NoError(t, err)

	token, err := jws.CompactSerialize()
	require.NoError(t, err)

	return token
}

func unsecured(header, payload string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(header)) + "." + base64.RawURLEncoding.EncodeToString([]byte(payload)) + "."
}

func encrypt(t *testing.T, key *rsa.PublicKey, kid, plaintext string) string {
	t.Helper()

	encrypter, err := jose.NewEncrypter(jose.A128GCM, jose.Recipient{Algorithm: jose.RSA_OAEP_256, Key: key, KeyID: kid}, (&jose.EncrypterOptions{}).WithContentType("JWT"))
	require.NoError(t, err)

	jwe, err := encrypter.Encrypt([]byte(plaintext))
	require.NoError(t, err)

	token, err := jwe.CompactSerialize()
	require.NoError(t, err)

	return token
}
