// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authelia.com/provider/requestobject"
)

func TestMemoryStore_GetClientAppConfig(t *testing.T) {
	testCases := []struct {
		name     string
		clients  map[string]requestobject.ClientAppConfig
		clientID string
		enabled  bool
		err      string
	}{
		{
			name:     "ShouldReturnRegisteredClient",
			clients:  NewExampleStore().Clients,
			clientID: "my-client",
			enabled:  true,
		},
		{
			name:     "ShouldReturnClientWithPolicyDisabled",
			clients:  NewExampleStore().Clients,
			clientID: "unsigned-client",
		},
		{
			name:     "ShouldHandleUnknownClient",
			clients:  NewExampleStore().Clients,
			clientID: "nobody",
			err:      "Could not find the requested resource(s). The client with id 'nobody' is not registered.",
		},
		{
			name:     "ShouldHandleNilMap",
			clientID: "my-client",
			err:      "Could not find the requested resource(s). The client with id 'my-client' is not registered.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := &MemoryStore{Clients: tc.clients}

			client, err := s.GetClientAppConfig(context.Background(), tc.clientID)

			if len(tc.err) == 0 {
				require.NoError(t, err)
				assert.Equal(t, tc.clientID, client.GetID())
				assert.Equal(t, tc.enabled, client.IsRequestObjectSignatureValidationEnabled())
			} else {
				assert.Nil(t, client)
				assert.EqualError(t, requestobject.ErrorToDebugRequestObjectError(err), tc.err)
				assert.ErrorIs(t, err, requestobject.ErrNotFound)
			}
		})
	}
}

func TestMemoryStore_SetDelete(t *testing.T) {
	s := &MemoryStore{}
	ctx := context.Background()

	s.SetClientAppConfig(ctx, &requestobject.DefaultClientAppConfig{ID: "abc", RequestObjectSignatureValidationEnabled: true})

	client, err := s.GetClientAppConfig(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, client.IsRequestObjectSignatureValidationEnabled())

	s.DeleteClientAppConfig(ctx, "abc")

	_, err = s.GetClientAppConfig(ctx, "abc")
	assert.ErrorIs(t, err, requestobject.ErrNotFound)
}

func TestMemoryStore_ShouldBeSafeForConcurrentUse(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	wg := sync.WaitGroup{}

	for i := 0; i < 50; i++ {
		wg.Add(2)

		go func() {
			defer wg.Done()

			s.SetClientAppConfig(ctx, &requestobject.DefaultClientAppConfig{ID: "concurrent"})
		}()

		go func() {
			defer wg.Done()

			_, _ = s.GetClientAppConfig(ctx, "concurrent")
		}()
	}

	wg.Wait()

	client, err := s.GetClientAppConfig(ctx, "concurrent")
	require.NoError(t, err)
	assert.Equal(t, "concurrent", client.GetID())
}
