// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package storage_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oauth2-framework/authorization"
	. "github.com/oauth2-framework/authorization/storage"
)

type shortLifespanConfig struct{}

func (shortLifespanConfig) GetAuthorizationRequestLifespan(_ context.Context) time.Duration {
	return -time.Minute
}

func newStoredRequester() *authorization.AuthorizationRequest {
	requester := authorization.NewAuthorizationRequest()
	requester.Client = &authorization.DefaultClient{ID: "acme"}
	requester.State = "12345678901234567890"
	requester.SetAuthorizationState(authorization.AuthorizationStateAuthenticationPending)

	return requester
}

func TestMemoryStoreClients(t *testing.T) {
	ctx := context.Background()

	store := NewMemoryStore()
	store.Clients["acme"] = &authorization.DefaultClient{ID: "acme"}

	client, err := store.GetClient(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "acme", client.GetID())

	_, err = store.GetClient(ctx, "unknown")
	assert.ErrorIs(t, err, authorization.ErrNotFound)
}

func TestMemoryStoreAuthorizationRequestSessions(t *testing.T) {
	ctx := context.Background()

	t.Run("ShouldCreateGetAndDelete", func(t *testing.T) {
		store := NewMemoryStore()
		requester := newStoredRequester()

		require.NoError(t, store.CreateAuthorizationRequestSession(ctx, requester))

		stored, err := store.GetAuthorizationRequestSession(ctx, requester.GetID())
		require.NoError(t, err)
		assert.Equal(t, requester.GetID(), stored.GetID())
		assert.Equal(t, authorization.AuthorizationStateAuthenticationPending, stored.GetAuthorizationState())

		require.NoError(t, store.DeleteAuthorizationRequestSession(ctx, requester.GetID()))

		_, err = store.GetAuthorizationRequestSession(ctx, requester.GetID())
		assert.ErrorIs(t, err, authorization.ErrNotFound)
	})

	t.Run("ShouldSnapshotStoredState", func(t *testing.T) {
		store := NewMemoryStore()
		requester := newStoredRequester()

		require.NoError(t, store.CreateAuthorizationRequestSession(ctx, requester))

		// Mutations after storing must not leak into the stored snapshot.
		requester.SetAuthorizationState(authorization.AuthorizationStateConsented)

		stored, err := store.GetAuthorizationRequestSession(ctx, requester.GetID())
		require.NoError(t, err)
		assert.Equal(t, authorization.AuthorizationStateAuthenticationPending, stored.GetAuthorizationState())
	})

	t.Run("ShouldUpdateExistingSession", func(t *testing.T) {
		store := NewMemoryStore()
		requester := newStoredRequester()

		require.NoError(t, store.CreateAuthorizationRequestSession(ctx, requester))

		requester.SetAuthorizationState(authorization.AuthorizationStateAuthenticated)
		require.NoError(t, store.UpdateAuthorizationRequestSession(ctx, requester))

		stored, err := store.GetAuthorizationRequestSession(ctx, requester.GetID())
		require.NoError(t, err)
		assert.Equal(t, authorization.AuthorizationStateAuthenticated, stored.GetAuthorizationState())
	})

	t.Run("ShouldRejectUpdateForUnknownSession", func(t *testing.T) {
		store := NewMemoryStore()

		err := store.UpdateAuthorizationRequestSession(ctx, newStoredRequester())
		assert.ErrorIs(t, err, authorization.ErrNotFound)
	})

	t.Run("ShouldExpireSessions", func(t *testing.T) {
		store := NewMemoryStore()
		store.Config = shortLifespanConfig{}

		requester := newStoredRequester()

		require.NoError(t, store.CreateAuthorizationRequestSession(ctx, requester))

		_, err := store.GetAuthorizationRequestSession(ctx, requester.GetID())
		assert.ErrorIs(t, err, authorization.ErrNotFound)
	})
}

func TestMemoryStoreAuthorizeCodeSessions(t *testing.T) {
	ctx := context.Background()

	store := NewMemoryStore()
	requester := newStoredRequester()

	require.NoError(t, store.CreateAuthorizeCodeSession(ctx, "signature", requester))

	stored, err := store.GetAuthorizeCodeSession(ctx, "signature")
	require.NoError(t, err)
	assert.Equal(t, requester.GetID(), stored.GetID())

	require.NoError(t, store.InvalidateAuthorizeCodeSession(ctx, "signature"))

	// The session is still returned with the sentinel error so the caller can detect replay.
	stored, err = store.GetAuthorizeCodeSession(ctx, "signature")
	assert.ErrorIs(t, err, authorization.ErrInvalidatedAuthorizeCode)
	require.NotNil(t, stored)
	assert.Equal(t, requester.GetID(), stored.GetID())

	assert.ErrorIs(t, store.InvalidateAuthorizeCodeSession(ctx, "unknown"), authorization.ErrNotFound)

	_, err = store.GetAuthorizeCodeSession(ctx, "unknown")
	assert.ErrorIs(t, err, authorization.ErrNotFound)
}

func TestMemoryStoreAccessTokenSessions(t *testing.T) {
	ctx := context.Background()

	store := NewMemoryStore()
	requester := newStoredRequester()

	require.NoError(t, store.CreateAccessTokenSession(ctx, "signature", requester))

	stored, err := store.GetAccessTokenSession(ctx, "signature")
	require.NoError(t, err)
	assert.Equal(t, requester.GetID(), stored.GetID())

	require.NoError(t, store.DeleteAccessTokenSession(ctx, "signature"))

	_, err = store.GetAccessTokenSession(ctx, "signature")
	assert.ErrorIs(t, err, authorization.ErrNotFound)
}

func TestMemoryStoreOpenIDConnectSessions(t *testing.T) {
	ctx := context.Background()

	store := NewMemoryStore()
	requester := newStoredRequester()

	require.NoError(t, store.CreateOpenIDConnectSession(ctx, "authorization-code", requester))

	stored, err := store.GetOpenIDConnectSession(ctx, "authorization-code")
	require.NoError(t, err)
	assert.Equal(t, requester.GetID(), stored.GetID())

	require.NoError(t, store.DeleteOpenIDConnectSession(ctx, "authorization-code"))

	_, err = store.GetOpenIDConnectSession(ctx, "authorization-code")
	assert.ErrorIs(t, err, authorization.ErrNotFound)
}

func TestMemoryStoreConsents(t *testing.T) {
	ctx := context.Background()

	store := NewMemoryStore()

	consent := &authorization.Consent{
		Subject:   "peter",
		ClientID:  "acme",
		Scopes:    authorization.Arguments{"read"},
		GrantedAt: time.Now().UTC(),
	}

	require.NoError(t, store.CreateConsent(ctx, consent))

	stored, err := store.GetConsent(ctx, "peter", "acme")
	require.NoError(t, err)
	assert.Equal(t, consent, stored)

	_, err = store.GetConsent(ctx, "peter", "other")
	assert.ErrorIs(t, err, authorization.ErrNotFound)

	require.NoError(t, store.RevokeConsent(ctx, "peter", "acme"))

	_, err = store.GetConsent(ctx, "peter", "acme")
	assert.ErrorIs(t, err, authorization.ErrNotFound)
}
