// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/cristalhq/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oauth2-framework/authorization"
	. "github.com/oauth2-framework/authorization/handler/oauth2"
)

func TestJWTProfileCoreStrategy(t *testing.T) {
	ctx := context.Background()

	config := &authorization.Config{
		GlobalSecret:  []byte("thisissecretthisissecretthisissecret"),
		IDTokenIssuer: "https://auth.example.com",
	}

	strategy := NewJWTProfileCoreStrategy(config, "")

	newRequester := func() *authorization.AuthorizationRequest {
		requester := authorization.NewAuthorizationRequest()
		requester.Client = &authorization.DefaultClient{ID: "acme", Scopes: []string{"read", "write"}}
		requester.SetRequestedScopes(authorization.Arguments{"read", "write"})
		requester.GrantScope("read")
		requester.GrantScope("write")

		return requester
	}

	t.Run("ShouldIssueVerifiableJWTAccessToken", func(t *testing.T) {
		requester := newRequester()

		token, signature, err := strategy.GenerateAccessToken(ctx, requester)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		assert.Equal(t, signature, strategy.AccessTokenSignature(ctx, token))
		assert.NoError(t, strategy.ValidateAccessToken(ctx, requester, token))

		verifier, err := jwt.NewVerifierHS(jwt.HS256, config.GlobalSecret)
		require.NoError(t, err)

		parsed, err := jwt.Parse([]byte(token), verifier)
		require.NoError(t, err)

		var claims JWTProfileAccessTokenClaims
		require.NoError(t, json.Unmarshal(parsed.Claims(), &claims))

		assert.Equal(t, "https://auth.example.com", claims.Issuer)
		assert.Equal(t, "acme", claims.ClientID)
		assert.Equal(t, "read write", claims.Scope)
		assert.True(t, claims.IsValidExpiresAt(time.Now().UTC()))
	})

	t.Run("ShouldRejectTokenSignedWithAnotherSecret", func(t *testing.T) {
		foreign := NewJWTProfileCoreStrategy(&authorization.Config{
			GlobalSecret:  []byte("abcdefghabcdefghabcdefghabcdefghabcd"),
			IDTokenIssuer: "https://auth.example.com",
		}, "")

		requester := newRequester()

		token, _, err := foreign.GenerateAccessToken(ctx, requester)
		require.NoError(t, err)

		err = strategy.ValidateAccessToken(ctx, requester, token)
		assert.True(t, authorization.ErrorToRFC6749Error(err).Is(authorization.ErrTokenSignatureMismatch))
	})

	t.Run("ShouldDelegateAuthorizeCodesToHMAC", func(t *testing.T) {
		requester := newRequester()

		code, signature, err := strategy.GenerateAuthorizeCode(ctx, requester)
		require.NoError(t, err)

		assert.Equal(t, signature, strategy.AuthorizeCodeSignature(ctx, code))
		assert.NoError(t, strategy.ValidateAuthorizeCode(ctx, requester, code))
	})
}
