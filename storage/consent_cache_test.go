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

func TestCachedConsentRepository(t *testing.T) {
	ctx := context.Background()

	newConsent := func() *authorization.Consent {
		return &authorization.Consent{
			Subject:   "peter",
			ClientID:  "acme",
			Scopes:    authorization.Arguments{"read"},
			GrantedAt: time.Now().UTC(),
		}
	}

	t.Run("ShouldDelegateToRepository", func(t *testing.T) {
		backing := NewMemoryStore()

		repository, err := NewCachedConsentRepository(backing, time.Minute)
		require.NoError(t, err)

		require.NoError(t, repository.CreateConsent(ctx, newConsent()))

		consent, err := repository.GetConsent(ctx, "peter", "acme")
		require.NoError(t, err)
		assert.Equal(t, authorization.Arguments{"read"}, consent.Scopes)

		_, err = repository.GetConsent(ctx, "peter", "unknown")
		assert.ErrorIs(t, err, authorization.ErrNotFound)
	})

	t.Run("ShouldServeRepeatedReadsFromCache", func(t *testing.T) {
		backing := NewMemoryStore()

		repository, err := NewCachedConsentRepository(backing, time.Minute)
		require.NoError(t, err)

		require.NoError(t, backing.CreateConsent(ctx, newConsent()))

		_, err = repository.GetConsent(ctx, "peter", "acme")
		require.NoError(t, err)

		repository.Wait()

		// The backing entry is gone but the cached one is still served.
		require.NoError(t, backing.RevokeConsent(ctx, "peter", "acme"))

		consent, err := repository.GetConsent(ctx, "peter", "acme")
		require.NoError(t, err)
		assert.Equal(t, "peter", consent.Subject)
	})

	t.Run("ShouldInvalidateCacheOnRevoke", func(t *testing.T) {
		backing := NewMemoryStore()

		repository, err := NewCachedConsentRepository(backing, time.Minute)
		require.NoError(t, err)

		require.NoError(t, repository.CreateConsent(ctx, newConsent()))

		_, err = repository.GetConsent(ctx, "peter", "acme")
		require.NoError(t, err)

		repository.Wait()

		require.NoError(t, repository.RevokeConsent(ctx, "peter", "acme"))

		_, err = repository.GetConsent(ctx, "peter", "acme")
		assert.ErrorIs(t, err, authorization.ErrNotFound)
	})

	t.Run("ShouldInvalidateCacheOnCreate", func(t *testing.T) {
		backing := NewMemoryStore()

		repository, err := NewCachedConsentRepository(backing, time.Minute)
		require.NoError(t, err)

		require.NoError(t, repository.CreateConsent(ctx, newConsent()))

		_, err = repository.GetConsent(ctx, "peter", "acme")
		require.NoError(t, err)

		repository.Wait()

		updated := newConsent()
		updated.Scopes = authorization.Arguments{"read", "write"}

		require.NoError(t, repository.CreateConsent(ctx, updated))

		consent, err := repository.GetConsent(ctx, "peter", "acme")
		require.NoError(t, err)
		assert.Equal(t, authorization.Arguments{"read", "write"}, consent.Scopes)
	})
}
