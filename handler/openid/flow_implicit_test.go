// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package openid_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/go-jose/go-jose/v4"
	josejwt "github.com/go-jose/go-jose/v4/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oauth2-framework/authorization"
	hoauth2 "github.com/oauth2-framework/authorization/handler/oauth2"
	. "github.com/oauth2-framework/authorization/handler/openid"
	"github.com/oauth2-framework/authorization/storage"
)

type implicitHarness struct {
	handler *OpenIDConnectImplicitHandler
	store   *storage.MemoryStore
	key     *jose.JSONWebKey
}

func newImplicitHarness(t *testing.T) *implicitHarness {
	t.Helper()

	config := &authorization.Config{GlobalSecret: []byte("thisissecretthisissecretthisissecret")}
	store := storage.NewMemoryStore()
	key := newSigningKey(t)

	return &implicitHarness{
		store: store,
		key:   key,
		handler: &OpenIDConnectImplicitHandler{
			IDTokenHandleHelper: &IDTokenHandleHelper{
				IDTokenStrategy: &DefaultJOSEStrategy{SigningKey: key, Config: config},
			},
			AuthorizeImplicitGrantTypeHandler: &hoauth2.AuthorizeImplicitGrantTypeHandler{
				AccessTokenStrategy: hoauth2.NewHMACCoreStrategy(config, ""),
				AccessTokenStorage:  store,
				Config:              config,
			},
			Config: config,
		},
	}
}

func parseIDTokenClaims(t *testing.T, key *jose.JSONWebKey, token string) map[string]any {
	t.Helper()

	parsed, err := josejwt.ParseSigned(token, []jose.SignatureAlgorithm{jose.ES256})
	require.NoError(t, err)

	claims := map[string]any{}
	require.NoError(t, parsed.Claims(key.Public().Key, &claims))

	return claims
}

func TestOpenIDConnectImplicitHandler(t *testing.T) {
	ctx := context.Background()

	client := &authorization.DefaultClient{
		ID:            "acme",
		RedirectURIs:  []string{"https://client.example.com/callback"},
		ResponseTypes: []string{"id_token", "id_token token"},
		Scopes:        []string{"openid", "read"},
	}

	form := func(extra url.Values) url.Values {
		values := url.Values{
			"redirect_uri": {"https://client.example.com/callback"},
			"nonce":        {"11111111111111111111"},
		}

		for key, value := range extra {
			values[key] = value
		}

		return values
	}

	t.Run("ShouldIgnoreRequestWithoutOpenIDScope", func(t *testing.T) {
		harness := newImplicitHarness(t)

		requester := newOpenIDRequester(client, authorization.Arguments{"id_token"}, form(nil))
		responder := authorization.NewAuthorizeResponse()

		require.NoError(t, harness.handler.HandleAuthorizeEndpointRequest(ctx, requester, responder))
		assert.Empty(t, responder.GetParameters())
	})

	t.Run("ShouldIgnoreHybridRequest", func(t *testing.T) {
		harness := newImplicitHarness(t)

		requester := newOpenIDRequester(client, authorization.Arguments{"code", "id_token"}, form(nil))
		requester.GrantScope("openid")

		responder := authorization.NewAuthorizeResponse()

		require.NoError(t, harness.handler.HandleAuthorizeEndpointRequest(ctx, requester, responder))
		assert.Empty(t, responder.GetParameters())
	})

	t.Run("ShouldRequireNonce", func(t *testing.T) {
		harness := newImplicitHarness(t)

		requester := newOpenIDRequester(client, authorization.Arguments{"id_token"}, url.Values{"redirect_uri": {"https://client.example.com/callback"}})
		requester.GrantScope("openid")

		err := harness.handler.HandleAuthorizeEndpointRequest(ctx, requester, authorization.NewAuthorizeResponse())
		assert.True(t, authorization.ErrorToRFC6749Error(err).Is(authorization.ErrInvalidRequest))
	})

	t.Run("ShouldRejectShortNonce", func(t *testing.T) {
		harness := newImplicitHarness(t)

		requester := newOpenIDRequester(client, authorization.Arguments{"id_token"}, form(url.Values{"nonce": {"short"}}))
		requester.GrantScope("openid")

		err := harness.handler.HandleAuthorizeEndpointRequest(ctx, requester, authorization.NewAuthorizeResponse())
		assert.True(t, authorization.ErrorToRFC6749Error(err).Is(authorization.ErrInsufficientEntropy))
	})

	t.Run("ShouldIssueIDTokenOnly", func(t *testing.T) {
		harness := newImplicitHarness(t)

		requester := newOpenIDRequester(client, authorization.Arguments{"id_token"}, form(nil))
		requester.SetRequestedScopes(authorization.Arguments{"openid"})
		requester.GrantScope("openid")

		responder := authorization.NewAuthorizeResponse()

		require.NoError(t, harness.handler.HandleAuthorizeEndpointRequest(ctx, requester, responder))

		assert.Equal(t, "12345678901234567890", responder.GetParameters().Get("state"))
		assert.Empty(t, responder.GetParameters().Get("access_token"))
		assert.True(t, requester.DidHandleAllResponseTypes())
		assert.Equal(t, authorization.ResponseModeFragment, requester.GetResponseMode())

		claims := parseIDTokenClaims(t, harness.key, responder.GetParameters().Get("id_token"))
		assert.Equal(t, "11111111111111111111", claims["nonce"])
		assert.Equal(t, "peter", claims["sub"])

		_, hasATHash := claims["at_hash"]
		assert.False(t, hasATHash)
	})

	t.Run("ShouldIssueIDTokenWithAccessTokenAndATHash", func(t *testing.T) {
		harness := newImplicitHarness(t)

		requester := newOpenIDRequester(client, authorization.Arguments{"id_token", "token"}, form(nil))
		requester.SetRequestedScopes(authorization.Arguments{"openid"})
		requester.GrantScope("openid")

		responder := authorization.NewAuthorizeResponse()

		require.NoError(t, harness.handler.HandleAuthorizeEndpointRequest(ctx, requester, responder))

		token := responder.GetParameters().Get("access_token")
		require.NotEmpty(t, token)
		assert.True(t, requester.DidHandleAllResponseTypes())

		claims := parseIDTokenClaims(t, harness.key, responder.GetParameters().Get("id_token"))
		assert.Equal(t, harness.handler.ComputeHash(ctx, token), claims["at_hash"])
	})
}
