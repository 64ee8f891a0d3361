// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package integration_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"authelia.com/provider/requestobject"
	"authelia.com/provider/requestobject/compose"
	"authelia.com/provider/requestobject/diagnostics"
	"authelia.com/provider/requestobject/internal/httpclient"
	"authelia.com/provider/requestobject/storage"
)

const (
	firstKeyID  = "123"
	secondKeyID = "321"

	encryptionKeyID = "enc"

	signedClientID   = "signed-client"
	optionalClientID = "optional-client"
	remoteClientID   = "remote-client"
)

var (
	firstPrivateKey, _      = rsa.GenerateKey(rand.Reader, 2048)
	secondPrivateKey, _     = rsa.GenerateKey(rand.Reader, 2048)
	encryptionPrivateKey, _ = rsa.GenerateKey(rand.Reader, 2048)
)

// requestObjects holds the Request Objects served by reference, keyed by their path identifier.
type requestObjects struct {
	mu      sync.RWMutex
	objects map[string]string
}

func (r *requestObjects) set(id, token string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.objects == nil {
		r.objects = map[string]string{}
	}

	r.objects[id] = token
}

func (r *requestObjects) get(id string) (token string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok = r.objects[id]

	return token, ok
}

type testEnvironment struct {
	server   *httptest.Server
	pipeline *requestobject.Pipeline
	config   *requestobject.Config
	store    *storage.MemoryStore
	sink     *diagnostics.RecordingSink
	objects  *requestObjects
}

func (e *testEnvironment) issuer() string {
	return e.server.URL
}

func newTestEnvironment(t *testing.T) *testEnvironment {
	t.Helper()

	env := &testEnvironment{
		store:   storage.NewMemoryStore(),
		sink:    &diagnostics.RecordingSink{},
		objects: &requestObjects{},
	}

	router := mux.NewRouter()

	env.server = httptest.NewServer(router)

	t.Cleanup(env.server.Close)

	env.config = &requestobject.Config{
		DiagnosticsEnabled:           true,
		DiagnosticsSink:              env.sink,
		HTTPClient:                   httpclient.NewClient(httpclient.WithRetryMax(0), httpclient.WithLogger(nil)),
		RequestObjectIssuer:          env.server.URL,
		RequestObjectLifespan:        time.Hour,
		AllowInsecureRequestURI:      true,
		EnforceRegisteredRequestURIs: true,
		RequestObjectDecryptionKeys: &jose.JSONWebKeySet{Keys: []jose.JSONWebKey{
			{Key: encryptionPrivateKey, KeyID: encryptionKeyID, Use: "enc"},
		}},
	}

	env.pipeline = compose.ComposeAllEnabled(env.config, env.store)

	router.HandleFunc("/authorize", authorizeHandler(t, env.pipeline))
	router.HandleFunc("/jwks.json", jwksHandler(t, &jose.JSONWebKeySet{Keys: []jose.JSONWebKey{
		{Key: &secondPrivateKey.PublicKey, KeyID: secondKeyID, Algorithm: string(jose.RS256), Use: "sig"},
	}}))
	router.HandleFunc("/request/{id}", requestURIHandler(env.objects))

	ctx := context.Background()

	env.store.SetClientAppConfig(ctx, &requestobject.DefaultClientAppConfig{
		ID:                                      signedClientID,
		RequestObjectSignatureValidationEnabled: true,
		RequestObjectSigningAlg:                 string(jose.RS256),
		RequestURIs:                             []string{env.server.URL + "/request/signed"},
		JSONWebKeys: &jose.JSONWebKeySet{Keys: []jose.JSONWebKey{
			{Key: &firstPrivateKey.PublicKey, KeyID: firstKeyID, Algorithm: string(jose.RS256), Use: "sig"},
		}},
	})

	env.store.SetClientAppConfig(ctx, &requestobject.DefaultClientAppConfig{
		ID:          optionalClientID,
		RequestURIs: []string{env.server.URL + "/request/unsigned"},
		JSONWebKeys: &jose.JSONWebKeySet{Keys: []jose.JSONWebKey{
			{Key: &firstPrivateKey.PublicKey, KeyID: firstKeyID, Algorithm: string(jose.RS256), Use: "sig"},
		}},
	})

	env.store.SetClientAppConfig(ctx, &requestobject.DefaultClientAppConfig{
		ID:                                      remoteClientID,
		RequestObjectSignatureValidationEnabled: true,
		RequestURIs:                             []string{env.server.URL + "/request/remote"},
		JSONWebKeysURI:                          env.server.URL + "/jwks.json",
	})

	return env
}

func signRequestObject(t *testing.T, key *rsa.PrivateKey, kid string, claims map[string]any) string {
	t.Helper()

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.RS256, Key: jose.JSONWebKey{Key: key, KeyID: kid}}, (&jose.SignerOptions{}).WithType("oauth-authz-req+jwt"))
	require.NoError(t, err)

	payload, err := jsonMarshal(claims)
	require.NoError(t, err)

	jws, err := signer.Sign(payload)
	require.NoError(t, err)

	token, err := jws.CompactSerialize()
	require.NoError(t, err)

	return token
}

func unsecuredRequestObject(t *testing.T, claims map[string]any) string {
	t.Helper()

	payload, err := jsonMarshal(claims)
	require.NoError(t, err)

	return base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"none"}`)) + "." + base64.RawURLEncoding.EncodeToString(payload) + "."
}

func encryptRequestObject(t *testing.T, token string) string {
	t.Helper()

	encrypter, err := jose.NewEncrypter(jose.A256GCM, jose.Recipient{Algorithm: jose.RSA_OAEP_256, Key: &encryptionPrivateKey.PublicKey, KeyID: encryptionKeyID}, (&jose.EncrypterOptions{}).WithContentType("JWT"))
	require.NoError(t, err)

	jwe, err := encrypter.Encrypt([]byte(token))
	require.NoError(t, err)

	serialized, err := jwe.CompactSerialize()
	require.NoError(t, err)

	return serialized
}
