// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package compose_test

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/go-jose/go-jose/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oauth2-framework/authorization"
	"github.com/oauth2-framework/authorization/compose"
	"github.com/oauth2-framework/authorization/storage"
)

func TestComposeAllEnabled(t *testing.T) {
	ctx := context.Background()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	config := &authorization.Config{
		GlobalSecret: []byte("thisissecretthisissecretthisissecret"),
	}

	provider := compose.ComposeAllEnabled(config, storage.NewMemoryStore(), &jose.JSONWebKey{
		Key:       key,
		KeyID:     "test",
		Algorithm: string(jose.ES256),
		Use:       "sig",
	})

	require.NotNil(t, provider)

	// The explicit, implicit and none OAuth 2.0 handlers plus the three OpenID Connect handlers.
	assert.Len(t, config.GetAuthorizeEndpointHandlers(ctx), 6)

	// The session_state hook contributes to responses carrying the openid scope.
	assert.Len(t, config.GetHooks(ctx), 1)
}

func TestComposeIgnoresDuplicateFactories(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	config := &authorization.Config{
		GlobalSecret: []byte("thisissecretthisissecretthisissecret"),
	}

	store := storage.NewMemoryStore()

	strategy := &compose.CommonStrategy{
		CoreStrategy: compose.NewOAuth2HMACStrategy(config),
		OpenIDConnectTokenStrategy: compose.NewOpenIDConnectStrategy(&jose.JSONWebKey{
			Key:       key,
			KeyID:     "test",
			Algorithm: string(jose.ES256),
			Use:       "sig",
		}, config),
	}

	provider := compose.Compose(
		config,
		store,
		strategy,
		compose.OAuth2AuthorizeExplicitFactory,
		compose.OAuth2AuthorizeExplicitFactory,
	)

	require.NotNil(t, provider)

	// The handler list deduplicates by type.
	assert.Len(t, config.GetAuthorizeEndpointHandlers(context.Background()), 1)
}
