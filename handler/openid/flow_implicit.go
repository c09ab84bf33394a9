// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package openid

import (
	"context"

	"github.com/oauth2-framework/authorization"
	hoauth2 "github.com/oauth2-framework/authorization/handler/oauth2"
	"github.com/oauth2-framework/authorization/internal/consts"
	"github.com/oauth2-framework/authorization/internal/errorsx"
)

type OpenIDConnectImplicitHandler struct {
	*IDTokenHandleHelper

	AuthorizeImplicitGrantTypeHandler *hoauth2.AuthorizeImplicitGrantTypeHandler

	Config interface {
		authorization.IDTokenLifespanProvider
		authorization.MinParameterEntropyProvider
		authorization.ScopeStrategyProvider
	}
}

var (
	_ authorization.AuthorizeEndpointHandler = (*OpenIDConnectImplicitHandler)(nil)
)

func (c *OpenIDConnectImplicitHandler) HandleAuthorizeEndpointRequest(ctx context.Context, requester authorization.AuthorizeRequester, responder authorization.AuthorizeResponder) error {
	if !(requester.GetGrantedScopes().Has(consts.ScopeOpenID) && (requester.GetResponseTypes().Has(consts.ResponseTypeImplicitFlowToken, consts.ResponseTypeImplicitFlowIDToken) || requester.GetResponseTypes().ExactOne(consts.ResponseTypeImplicitFlowIDToken))) {
		return nil
	} else if requester.GetResponseTypes().Has(consts.ResponseTypeAuthorizationCodeFlow) {
		// hybrid flow
		return nil
	}

	requester.SetDefaultResponseMode(authorization.ResponseModeFragment)

	// This ensures that the 'redirect_uri' parameter is present for OpenID Connect 1.0 authorization requests as per:
	//
	// Authorization Code Flow - https://openid.net/specs/openid-connect-core-1_0.html#AuthRequest
	// Implicit Flow - https://openid.net/specs/openid-connect-core-1_0.html#ImplicitAuthRequest
	// Hybrid Flow - https://openid.net/specs/openid-connect-core-1_0.html#HybridAuthRequest
	//
	// Note: as per the Hybrid Flow documentation the Hybrid Flow has the same requirements as the Authorization Code Flow.
	if len(requester.GetRequestForm().Get(consts.FormParameterRedirectURI)) == 0 {
		return errorsx.WithStack(authorization.ErrInvalidRequest.WithHint("The 'redirect_uri' parameter is required when using OpenID Connect 1.0."))
	}

	if nonce := requester.GetRequestForm().Get(consts.FormParameterNonce); len(nonce) == 0 {
		return errorsx.WithStack(authorization.ErrInvalidRequest.WithHint("Parameter 'nonce' must be set when using the OpenID Connect Implicit Flow."))
	} else if len(nonce) < c.Config.GetMinParameterEntropy(ctx) {
		return errorsx.WithStack(authorization.ErrInsufficientEntropy.WithHintf("Parameter 'nonce' is set but does not satisfy the minimum entropy of %d characters.", c.Config.GetMinParameterEntropy(ctx)))
	}

	client := requester.GetClient()
	for _, scope := range requester.GetRequestedScopes() {
		if !c.Config.GetScopeStrategy(ctx)(client.GetScopes(), scope) {
			return errorsx.WithStack(authorization.ErrInvalidScope.WithHintf("The OAuth 2.0 Client is not allowed to request scope '%s'.", scope))
		}
	}

	claims := map[string]any{}

	if requester.GetResponseTypes().Has(consts.ResponseTypeImplicitFlowToken) {
		if err := c.AuthorizeImplicitGrantTypeHandler.IssueImplicitAccessToken(ctx, requester, responder); err != nil {
			return errorsx.WithStack(err)
		}

		requester.SetResponseTypeHandled(consts.ResponseTypeImplicitFlowToken)

		claims["at_hash"] = c.ComputeHash(ctx, responder.GetParameters().Get(consts.AuthorizeResponseAccessToken))
	} else {
		responder.AddParameter(consts.FormParameterState, requester.GetState())
	}

	if err := c.IssueImplicitIDToken(ctx, c.Config.GetIDTokenLifespan(ctx), requester, responder, claims); err != nil {
		return errorsx.WithStack(err)
	}

	// There is no need to check for https, because the implicit flow does not require it.
	// See https://datatracker.ietf.org/doc/html/rfc6819#section-4.4.2.

	requester.SetResponseTypeHandled(consts.ResponseTypeImplicitFlowIDToken)

	return nil
}
