// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oauth2-framework/authorization"
	. "github.com/oauth2-framework/authorization/handler/oauth2"
)

func TestNoneResponseTypeHandler(t *testing.T) {
	ctx := context.Background()

	client := &authorization.DefaultClient{
		ID:            "acme",
		RedirectURIs:  []string{"https://client.example.com/callback"},
		ResponseTypes: []string{"none"},
		Scopes:        []string{"read", "write"},
	}

	handler := &NoneResponseTypeHandler{Config: &authorization.Config{}}

	t.Run("ShouldIgnoreRequestWithOtherResponseTypes", func(t *testing.T) {
		requester := newCodeAuthRequester(client, authorization.Arguments{"code"}, "https://client.example.com/callback", authorization.Arguments{"read"})
		responder := authorization.NewAuthorizeResponse()

		require.NoError(t, handler.HandleAuthorizeEndpointRequest(ctx, requester, responder))
		assert.False(t, requester.DidHandleAllResponseTypes())
	})

	t.Run("ShouldRejectInsecureRedirectURI", func(t *testing.T) {
		requester := newCodeAuthRequester(client, authorization.Arguments{"none"}, "http://client.example.com/callback", authorization.Arguments{"read"})
		responder := authorization.NewAuthorizeResponse()

		err := handler.HandleAuthorizeEndpointRequest(ctx, requester, responder)
		assert.True(t, authorization.ErrorToRFC6749Error(err).Is(authorization.ErrInvalidRequest))
	})

	t.Run("ShouldRejectUnregisteredScope", func(t *testing.T) {
		requester := newCodeAuthRequester(client, authorization.Arguments{"none"}, "https://client.example.com/callback", authorization.Arguments{"delete"})
		responder := authorization.NewAuthorizeResponse()

		err := handler.HandleAuthorizeEndpointRequest(ctx, requester, responder)
		assert.True(t, authorization.ErrorToRFC6749Error(err).Is(authorization.ErrInvalidScope))
	})

	t.Run("ShouldHandleWithoutIssuingArtifacts", func(t *testing.T) {
		requester := newCodeAuthRequester(client, authorization.Arguments{"none"}, "https://client.example.com/callback", authorization.Arguments{"read"})
		requester.GrantScope("read")

		responder := authorization.NewAuthorizeResponse()

		require.NoError(t, handler.HandleAuthorizeEndpointRequest(ctx, requester, responder))

		assert.True(t, requester.DidHandleAllResponseTypes())
		assert.Equal(t, authorization.ResponseModeQuery, requester.GetDefaultResponseMode())

		parameters := responder.GetParameters()
		assert.Equal(t, "12345678901234567890", parameters.Get("state"))
		assert.Equal(t, "read", parameters.Get("scope"))
		assert.Empty(t, parameters.Get("code"))
		assert.Empty(t, parameters.Get("access_token"))
	})
}
