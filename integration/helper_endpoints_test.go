// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package integration_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/go-jose/go-jose/v4"
	"github.com/gorilla/mux"

	"authelia.com/provider/requestobject"
)

var jsonMarshal = json.Marshal

type authorizeResponse struct {
	Carrier string         `json:"carrier"`
	Signed  bool           `json:"signed"`
	Claims  map[string]any `json:"claims"`
}

func authorizeHandler(t *testing.T, pipeline *requestobject.Pipeline) func(rw http.ResponseWriter, req *http.Request) {
	return func(rw http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		view, err := requestobject.NewRequestViewFromHTTP(req)
		if err != nil {
			writeError(rw, pipeline, req, err)

			return
		}

		params := requestobject.NewParametersFromForm(url.Values(view))

		ro, err := pipeline.BuildAndValidate(ctx, view, params)
		if err != nil {
			t.Logf("Request Object validation failed because: %+v", requestobject.ErrorToDebugRequestObjectError(err))

			writeError(rw, pipeline, req, err)

			return
		}

		response := authorizeResponse{}

		if ro != nil {
			response.Carrier = string(ro.Carrier())
			response.Signed = ro.IsSigned()
			response.Claims = ro.Claims()
		}

		rw.Header().Set("Content-Type", "application/json; charset=utf-8")

		if err = json.NewEncoder(rw).Encode(response); err != nil {
			panic(err)
		}
	}
}

func writeError(rw http.ResponseWriter, pipeline *requestobject.Pipeline, req *http.Request, err error) {
	values := pipeline.ErrorValues(req.Context(), req, err)

	rw.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.WriteHeader(requestobject.ErrorToRequestObjectError(err).StatusCode())

	body := map[string]string{}

	for key := range values {
		body[key] = values.Get(key)
	}

	_ = json.NewEncoder(rw).Encode(body)
}

func jwksHandler(t *testing.T, jwks *jose.JSONWebKeySet) func(rw http.ResponseWriter, req *http.Request) {
	return func(rw http.ResponseWriter, req *http.Request) {
		rw.Header().Set("Content-Type", "application/json; charset=utf-8")

		if err := json.NewEncoder(rw).Encode(jwks); err != nil {
			t.Errorf("Unable to encode JSON Web Key Set: %+v", err)
		}
	}
}

func requestURIHandler(objects *requestObjects) func(rw http.ResponseWriter, req *http.Request) {
	return func(rw http.ResponseWriter, req *http.Request) {
		token, ok := objects.get(mux.Vars(req)["id"])
		if !ok {
			http.NotFound(rw, req)

			return
		}

		rw.Header().Set("Content-Type", "application/oauth-authz-req+jwt")
		_, _ = rw.Write([]byte(token))
	}
}
