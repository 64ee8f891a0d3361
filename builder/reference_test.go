// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package builder

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-jose/go-jose/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"authelia.com/provider/requestobject"
	"authelia.com/provider/requestobject/internal"
	"authelia.com/provider/requestobject/internal/httpclient"
	"authelia.com/provider/requestobject/storage"
)

func newRequestURIServer(t *testing.T, token string) *httptest.Server {
	t.Helper()

	router := mux.NewRouter()

	router.HandleFunc("/ro.jwt", func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Accept"), "application/oauth-authz-req+jwt") {
			http.Error(w, "unacceptable", http.StatusNotAcceptable)

			return
		}

		w.Header().Set("Content-Type", "application/oauth-authz-req+jwt")
		_, _ = w.Write([]byte(token))
	}).Methods(http.MethodGet)

	router.HandleFunc("/gone.jwt", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}).Methods(http.MethodGet)

	server := httptest.NewServer(router)

	t.Cleanup(server.Close)

	return server
}

func TestReferenceBuilder_Build(t *testing.T) {
	key := newRSAKey(t)

	payload := `{"client_id":"app","response_type":"code"}`
	token := sign(t, jose.RS256, key, "kid-1", payload)

	server := newRequestURIServer(t, token)

	client := httpclient.NewClient(httpclient.WithRetryMax(0), httpclient.WithLogger(nil))

	store := storage.NewMemoryStore()
	store.SetClientAppConfig(context.Background(), &requestobject.DefaultClientAppConfig{
		ID:          "app",
		RequestURIs: []string{server.URL + "/ro.jwt", server.URL + "/ro.jwt#v2"},
	})
	store.SetClientAppConfig(context.Background(), &requestobject.DefaultClientAppConfig{ID: "plain"})

	testCases := []struct {
		name     string
		config   *requestobject.Config
		raw      string
		clientID string
		err      error
		hint     string
	}{
		{
			name:   "ShouldFetchAndParse",
			config: &requestobject.Config{HTTPClient: client, AllowInsecureRequestURI: true},
			raw:    server.URL + "/ro.jwt",
		},
		{
			name:   "ShouldStripFragment",
			config: &requestobject.Config{HTTPClient: client, AllowInsecureRequestURI: true},
			raw:    server.URL + "/ro.jwt#v2",
		},
		{
			name:     "ShouldFetchRegisteredURI",
			config:   &requestobject.Config{HTTPClient: client, AllowInsecureRequestURI: true, EnforceRegisteredRequestURIs: true, AppConfigStore: store},
			raw:      server.URL + "/ro.jwt#v2",
			clientID: "app",
		},
		{
			name:     "ShouldFailUnregisteredURI",
			config:   &requestobject.Config{HTTPClient: client, AllowInsecureRequestURI: true, EnforceRegisteredRequestURIs: true, AppConfigStore: store},
			raw:      server.URL + "/ro.jwt#v3",
			clientID: "app",
			err:      requestobject.ErrInvalidRequestURI,
			hint:     "Request URI '" + server.URL + "/ro.jwt#v3' is not whitelisted by the OAuth 2.0 Client.",
		},
		{
			name:     "ShouldFailClientWithoutURIs",
			config:   &requestobject.Config{HTTPClient: client, AllowInsecureRequestURI: true, EnforceRegisteredRequestURIs: true, AppConfigStore: store},
			raw:      server.URL + "/ro.jwt",
			clientID: "plain",
			err:      requestobject.ErrInvalidRequestURI,
			hint:     "Request URI '" + server.URL + "/ro.jwt' is not whitelisted by the OAuth 2.0 Client.",
		},
		{
			name:   "ShouldFailInsecureURI",
			config: &requestobject.Config{HTTPClient: client},
			raw:    server.URL + "/ro.jwt",
			err:    requestobject.ErrInvalidRequestURI,
			hint:   "The 'request_uri' value '" + server.URL + "/ro.jwt' must use the 'https' scheme.",
		},
		{
			name:   "ShouldFailRelativeURI",
			config: &requestobject.Config{HTTPClient: client},
			raw:    "/ro.jwt",
			err:    requestobject.ErrInvalidRequestURI,
			hint:   "The 'request_uri' value '/ro.jwt' must be an absolute URL.",
		},
		{
			name:   "ShouldFailUnsupportedScheme",
			config: &requestobject.Config{HTTPClient: client},
			raw:    "urn:ietf:params:oauth:request_uri:abc",
			err:    requestobject.ErrInvalidRequestURI,
			hint:   "The 'request_uri' value 'urn:ietf:params:oauth:request_uri:abc' must be an absolute URL.",
		},
		{
			name:   "ShouldFailFTPScheme",
			config: &requestobject.Config{HTTPClient: client},
			raw:    "ftp://app.example.com/ro.jwt",
			err:    requestobject.ErrInvalidRequestURI,
			hint:   "The 'request_uri' value 'ftp://app.example.com/ro.jwt' uses the unsupported scheme 'ftp'.",
		},
		{
			name:   "ShouldFailUnexpectedStatus",
			config: &requestobject.Config{HTTPClient: client, AllowInsecureRequestURI: true},
			raw:    server.URL + "/gone.jwt",
			err:    requestobject.ErrInvalidRequestURI,
			hint:   "Unable to fetch OpenID Connect 1.0 request parameters from 'request_uri' because status code '200' was expected, but got '410'.",
		},
		{
			name:   "ShouldFailBodyTooLarge",
			config: &requestobject.Config{HTTPClient: client, AllowInsecureRequestURI: true, RequestURIMaxBodySize: 16},
			raw:    server.URL + "/ro.jwt",
			err:    requestobject.ErrInvalidRequestURI,
			hint:   "Unable to fetch OpenID Connect 1.0 request parameters from 'request_uri' because the body exceeds the maximum size of 16 bytes.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := NewReferenceBuilder(tc.config)

			ro, err := b.Build(context.Background(), tc.raw, &requestobject.Parameters{ClientID: tc.clientID})

			if tc.err != nil {
				assert.Nil(t, ro)
				assert.ErrorIs(t, err, tc.err)
				assert.True(t, requestobject.IsKind(err, requestobject.KindConstruction))
				assert.Equal(t, tc.hint, requestobject.ErrorToRequestObjectError(err).HintField)

				return
			}

			require.NoError(t, requestobject.ErrorToDebugRequestObjectError(err))

			assert.Equal(t, requestobject.CarrierTypeRequestURI, ro.Carrier())
			assert.True(t, ro.IsSigned())
			assert.Equal(t, token, ro.Raw())
			assert.JSONEq(t, payload, string(ro.Payload()))
		})
	}

	assert.Equal(t, "request_uri_param_value_builder", NewReferenceBuilder(&requestobject.Config{}).RegistryKey())
}

func TestReferenceBuilder_ShouldFailAppLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := internal.NewMockAppConfigStore(ctrl)
	store.EXPECT().GetClientAppConfig(gomock.Any(), "app").Return(nil, errors.New("database is down"))

	b := NewReferenceBuilder(&requestobject.Config{EnforceRegisteredRequestURIs: true, AppConfigStore: store})

	ro, err := b.Build(context.Background(), "https://app.example.com/ro.jwt", &requestobject.Parameters{ClientID: "app"})

	assert.Nil(t, ro)
	assert.ErrorIs(t, err, requestobject.ErrServerError)
	assert.True(t, requestobject.IsKind(err, requestobject.KindAppLookup))
}

func TestReferenceBuilder_ShouldReportParseErrorsAsInvalidRequestURI(t *testing.T) {
	server := newRequestURIServer(t, "not-a-token")

	b := NewReferenceBuilder(&requestobject.Config{
		HTTPClient:              httpclient.NewClient(httpclient.WithRetryMax(0), httpclient.WithLogger(nil)),
		AllowInsecureRequestURI: true,
	})

	ro, err := b.Build(context.Background(), server.URL+"/ro.jwt", &requestobject.Parameters{ClientID: "app"})

	assert.Nil(t, ro)
	assert.ErrorIs(t, err, requestobject.ErrInvalidRequestURI)
	assert.True(t, requestobject.IsKind(err, requestobject.KindConstruction))
	assert.Equal(t, "The Request Object is not a compact serialized JSON Web Token.", requestobject.ErrorToRequestObjectError(err).HintField)
}
