// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oauth2-framework/authorization"
	. "github.com/oauth2-framework/authorization/handler/oauth2"
	"github.com/oauth2-framework/authorization/storage"
)

func newCodeAuthRequester(client authorization.Client, responseTypes authorization.Arguments, redirectURI string, scopes authorization.Arguments) *authorization.AuthorizationRequest {
	requester := authorization.NewAuthorizationRequest()
	requester.Client = client
	requester.ResponseTypes = responseTypes
	requester.State = "12345678901234567890"
	requester.SetRequestedScopes(scopes)

	if redirectURI != "" {
		uri, err := url.Parse(redirectURI)
		if err != nil {
			panic(err)
		}

		requester.RedirectURI = uri
	}

	return requester
}

func TestAuthorizeExplicitGrantHandler(t *testing.T) {
	ctx := context.Background()

	client := &authorization.DefaultClient{
		ID:            "acme",
		RedirectURIs:  []string{"https://client.example.com/callback"},
		ResponseTypes: []string{"code"},
		Scopes:        []string{"read", "write"},
	}

	newHandler := func(store *storage.MemoryStore) *AuthorizeExplicitGrantHandler {
		config := &authorization.Config{GlobalSecret: []byte("thisissecretthisissecretthisissecret")}

		return &AuthorizeExplicitGrantHandler{
			AuthorizeCodeStrategy: NewHMACCoreStrategy(config, ""),
			CoreStorage:           store,
			Config:                config,
		}
	}

	t.Run("ShouldIgnoreRequestWithoutCodeResponseType", func(t *testing.T) {
		store := storage.NewMemoryStore()
		handler := newHandler(store)

		requester := newCodeAuthRequester(client, authorization.Arguments{"token"}, "https://client.example.com/callback", authorization.Arguments{"read"})
		responder := authorization.NewAuthorizeResponse()

		require.NoError(t, handler.HandleAuthorizeEndpointRequest(ctx, requester, responder))
		assert.Empty(t, responder.GetParameters())
		assert.False(t, requester.DidHandleAllResponseTypes())
	})

	t.Run("ShouldRejectInsecureRedirectURI", func(t *testing.T) {
		store := storage.NewMemoryStore()
		handler := newHandler(store)

		requester := newCodeAuthRequester(client, authorization.Arguments{"code"}, "http://client.example.com/callback", authorization.Arguments{"read"})

		err := handler.HandleAuthorizeEndpointRequest(ctx, requester, authorization.NewAuthorizeResponse())
		assert.True(t, authorization.ErrorToRFC6749Error(err).Is(authorization.ErrInvalidRequest))
	})

	t.Run("ShouldAllowLoopbackRedirectURI", func(t *testing.T) {
		store := storage.NewMemoryStore()
		handler := newHandler(store)

		requester := newCodeAuthRequester(client, authorization.Arguments{"code"}, "http://127.0.0.1:8080/callback", authorization.Arguments{"read"})

		require.NoError(t, handler.HandleAuthorizeEndpointRequest(ctx, requester, authorization.NewAuthorizeResponse()))
	})

	t.Run("ShouldRejectUnknownScope", func(t *testing.T) {
		store := storage.NewMemoryStore()
		handler := newHandler(store)

		requester := newCodeAuthRequester(client, authorization.Arguments{"code"}, "https://client.example.com/callback", authorization.Arguments{"delete"})

		err := handler.HandleAuthorizeEndpointRequest(ctx, requester, authorization.NewAuthorizeResponse())
		assert.True(t, authorization.ErrorToRFC6749Error(err).Is(authorization.ErrInvalidScope))
	})

	t.Run("ShouldIssueAndPersistAuthorizeCode", func(t *testing.T) {
		store := storage.NewMemoryStore()
		handler := newHandler(store)

		requester := newCodeAuthRequester(client, authorization.Arguments{"code"}, "https://client.example.com/callback", authorization.Arguments{"read", "write"})
		requester.GrantScope("read")
		requester.Form = url.Values{"redirect_uri": {"https://client.example.com/callback"}, "foo": {"bar"}}

		responder := authorization.NewAuthorizeResponse()

		require.NoError(t, handler.HandleAuthorizeEndpointRequest(ctx, requester, responder))

		code := responder.GetParameters().Get("code")
		require.NotEmpty(t, code)
		assert.Equal(t, code, responder.GetCode())
		assert.Equal(t, "12345678901234567890", responder.GetParameters().Get("state"))
		assert.Equal(t, "read", responder.GetParameters().Get("scope"))
		assert.True(t, requester.DidHandleAllResponseTypes())
		assert.Equal(t, authorization.ResponseModeQuery, requester.GetResponseMode())

		signature := handler.AuthorizeCodeStrategy.AuthorizeCodeSignature(ctx, code)

		stored, err := store.GetAuthorizeCodeSession(ctx, signature)
		require.NoError(t, err)
		require.NoError(t, handler.AuthorizeCodeStrategy.ValidateAuthorizeCode(ctx, stored, code))

		// The stored session was sanitized down to the allowed form parameters.
		assert.Equal(t, "https://client.example.com/callback", stored.GetRequestForm().Get("redirect_uri"))
		assert.Empty(t, stored.GetRequestForm().Get("foo"))
	})
}
