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

type OpenIDConnectHybridHandler struct {
	AuthorizeImplicitGrantTypeHandler *hoauth2.AuthorizeImplicitGrantTypeHandler
	AuthorizeExplicitGrantHandler     *hoauth2.AuthorizeExplicitGrantHandler
	IDTokenHandleHelper               *IDTokenHandleHelper
	OpenIDConnectRequestStorage       OpenIDConnectRequestStorage

	Config interface {
		authorization.IDTokenLifespanProvider
		authorization.MinParameterEntropyProvider
		authorization.ScopeStrategyProvider
	}
}

var (
	_ authorization.AuthorizeEndpointHandler = (*OpenIDConnectHybridHandler)(nil)
)

func (c *OpenIDConnectHybridHandler) HandleAuthorizeEndpointRequest(ctx context.Context, requester authorization.AuthorizeRequester, responder authorization.AuthorizeResponder) error {
	if len(requester.GetResponseTypes()) < 2 {
		return nil
	}

	if !(requester.GetResponseTypes().Matches(consts.ResponseTypeImplicitFlowToken, consts.ResponseTypeImplicitFlowIDToken, consts.ResponseTypeAuthorizationCodeFlow) || requester.GetResponseTypes().Matches(consts.ResponseTypeImplicitFlowToken, consts.ResponseTypeAuthorizationCodeFlow) || requester.GetResponseTypes().Matches(consts.ResponseTypeImplicitFlowIDToken, consts.ResponseTypeAuthorizationCodeFlow)) {
		return nil
	}

	requester.SetDefaultResponseMode(authorization.ResponseModeFragment)

	// The nonce is not strictly required for hybrid flows that do not request an ID Token through
	// the front channel.
	nonce := requester.GetRequestForm().Get(consts.FormParameterNonce)

	if len(nonce) == 0 && requester.GetResponseTypes().Has(consts.ResponseTypeImplicitFlowIDToken) {
		return errorsx.WithStack(authorization.ErrInvalidRequest.WithHint("Parameter 'nonce' must be set when requesting an ID Token using the OpenID Connect Hybrid Flow."))
	}

	if len(nonce) > 0 && len(nonce) < c.Config.GetMinParameterEntropy(ctx) {
		return errorsx.WithStack(authorization.ErrInsufficientEntropy.WithHintf("Parameter 'nonce' is set but does not satisfy the minimum entropy of %d characters.", c.Config.GetMinParameterEntropy(ctx)))
	}

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

	client := requester.GetClient()
	for _, scope := range requester.GetRequestedScopes() {
		if !c.Config.GetScopeStrategy(ctx)(client.GetScopes(), scope) {
			return errorsx.WithStack(authorization.ErrInvalidScope.WithHintf("The OAuth 2.0 Client is not allowed to request scope '%s'.", scope))
		}
	}

	claims := map[string]any{}

	if requester.GetResponseTypes().Has(consts.ResponseTypeAuthorizationCodeFlow) {
		code, signature, err := c.AuthorizeExplicitGrantHandler.AuthorizeCodeStrategy.GenerateAuthorizeCode(ctx, requester)
		if err != nil {
			return errorsx.WithStack(authorization.ErrServerError.WithWrap(err).WithDebugError(err))
		}

		if err = c.AuthorizeExplicitGrantHandler.CoreStorage.CreateAuthorizeCodeSession(ctx, signature, requester.Sanitize(c.AuthorizeExplicitGrantHandler.GetSanitationWhiteList(ctx))); err != nil {
			return errorsx.WithStack(authorization.ErrServerError.WithWrap(err).WithDebugError(err))
		}

		responder.AddParameter(consts.FormParameterAuthorizationCode, code)
		requester.SetResponseTypeHandled(consts.ResponseTypeAuthorizationCodeFlow)

		claims["c_hash"] = c.IDTokenHandleHelper.ComputeHash(ctx, responder.GetParameters().Get(consts.FormParameterAuthorizationCode))

		if requester.GetGrantedScopes().Has(consts.ScopeOpenID) {
			if err = c.OpenIDConnectRequestStorage.CreateOpenIDConnectSession(ctx, responder.GetCode(), requester.Sanitize(oidcParameters)); err != nil {
				return errorsx.WithStack(authorization.ErrServerError.WithWrap(err).WithDebugError(err))
			}
		}
	}

	if requester.GetResponseTypes().Has(consts.ResponseTypeImplicitFlowToken) {
		if err := c.AuthorizeImplicitGrantTypeHandler.IssueImplicitAccessToken(ctx, requester, responder); err != nil {
			return errorsx.WithStack(err)
		}

		requester.SetResponseTypeHandled(consts.ResponseTypeImplicitFlowToken)

		claims["at_hash"] = c.IDTokenHandleHelper.ComputeHash(ctx, responder.GetParameters().Get(consts.AuthorizeResponseAccessToken))
	}

	if _, ok := responder.GetParameters()[consts.FormParameterState]; !ok {
		responder.AddParameter(consts.FormParameterState, requester.GetState())
	}

	if !requester.GetGrantedScopes().Has(consts.ScopeOpenID) || !requester.GetResponseTypes().Has(consts.ResponseTypeImplicitFlowIDToken) {
		requester.SetResponseTypeHandled(consts.ResponseTypeImplicitFlowIDToken)

		return nil
	}

	// The hybrid flow uses the implicit flow's lifespan for the ID Token.
	if err := c.IDTokenHandleHelper.IssueImplicitIDToken(ctx, c.Config.GetIDTokenLifespan(ctx), requester, responder, claims); err != nil {
		return errorsx.WithStack(err)
	}

	requester.SetResponseTypeHandled(consts.ResponseTypeImplicitFlowIDToken)

	// There is no need to check for https, because the implicit flow does not require it.
	// See https://datatracker.ietf.org/doc/html/rfc6819#section-4.4.2.
	return nil
}
