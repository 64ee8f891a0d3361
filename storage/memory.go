// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"sync"

	"authelia.com/provider/requestobject"
)

// MemoryStore is an in-memory requestobject.AppConfigStore. It is safe for concurrent use.
type MemoryStore struct {
	Clients map[string]requestobject.ClientAppConfig

	clientsMutex sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Clients: make(map[string]requestobject.ClientAppConfig),
	}
}

// NewExampleStore returns a MemoryStore with a client enforcing signed Request Objects and a client accepting
// unsecured Request Objects.
func NewExampleStore() *MemoryStore {
	return &MemoryStore{
		Clients: map[string]requestobject.ClientAppConfig{
			"my-client": &requestobject.DefaultClientAppConfig{
				ID:                                      "my-client",
				RequestObjectSignatureValidationEnabled: true,
				RequestObjectSigningAlg:                 "RS256",
				RequestURIs:                             []string{"https://client.example.com/request.jwt"},
				JSONWebKeysURI:                          "https://client.example.com/jwks.json",
			},
			"unsigned-client": &requestobject.DefaultClientAppConfig{
				ID:                                      "unsigned-client",
				RequestObjectSignatureValidationEnabled: false,
			},
		},
	}
}

func (s *MemoryStore) GetClientAppConfig(_ context.Context, clientID string) (requestobject.ClientAppConfig, error) {
	s.clientsMutex.RLock()
	defer s.clientsMutex.RUnlock()

	client, ok := s.Clients[clientID]
	if !ok {
		return nil, requestobject.ErrNotFound.WithDebugf("The client with id '%s' is not registered.", clientID)
	}

	return client, nil
}

// SetClientAppConfig registers or replaces the configuration of a client.
func (s *MemoryStore) SetClientAppConfig(_ context.Context, client requestobject.ClientAppConfig) {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()

	if s.Clients == nil {
		s.Clients = make(map[string]requestobject.ClientAppConfig)
	}

	s.Clients[client.GetID()] = client
}

// DeleteClientAppConfig removes the configuration of a client.
func (s *MemoryStore) DeleteClientAppConfig(_ context.Context, clientID string) {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()

	delete(s.Clients, clientID)
}

var (
	_ requestobject.AppConfigStore = (*MemoryStore)(nil)
)
