// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2

import (
	"context"
	"net/url"
	"strings"

	"github.com/oauth2-framework/authorization"
	"github.com/oauth2-framework/authorization/internal/consts"
	"github.com/oauth2-framework/authorization/internal/errorsx"
)

var (
	_ authorization.AuthorizeEndpointHandler = (*AuthorizeExplicitGrantHandler)(nil)
)

// AuthorizeExplicitGrantHandler is a response handler for the Authorize Code grant using the explicit grant type
// as defined in https://tools.ietf.org/html/rfc6749#section-4.1
type AuthorizeExplicitGrantHandler struct {
	AuthorizeCodeStrategy AuthorizeCodeStrategy
	CoreStorage           CoreStorage

	Config interface {
		authorization.AuthorizeCodeLifespanProvider
		authorization.ScopeStrategyProvider
		authorization.RedirectSecureCheckerProvider
		authorization.OmitRedirectScopeParamProvider
		authorization.SanitationAllowedProvider
	}
}

func (c *AuthorizeExplicitGrantHandler) secureChecker(ctx context.Context) func(context.Context, *url.URL) bool {
	if c.Config.GetRedirectSecureChecker(ctx) == nil {
		return authorization.IsRedirectURISecure
	}

	return c.Config.GetRedirectSecureChecker(ctx)
}

func (c *AuthorizeExplicitGrantHandler) HandleAuthorizeEndpointRequest(ctx context.Context, ar authorization.AuthorizeRequester, resp authorization.AuthorizeResponder) error {
	// This let's us define multiple response types, for example open id connect's id_token
	if !ar.GetResponseTypes().ExactOne(consts.ResponseTypeAuthorizationCodeFlow) {
		return nil
	}

	ar.SetDefaultResponseMode(authorization.ResponseModeQuery)

	if !c.secureChecker(ctx)(ctx, ar.GetRedirectURI()) {
		return errorsx.WithStack(authorization.ErrInvalidRequest.WithHint("Redirect URL is using an insecure protocol, http is only allowed for hosts with suffix 'localhost', for example: http://myapp.localhost/."))
	}

	client := ar.GetClient()
	for _, scope := range ar.GetRequestedScopes() {
		if !c.Config.GetScopeStrategy(ctx)(client.GetScopes(), scope) {
			return errorsx.WithStack(authorization.ErrInvalidScope.WithHintf("The OAuth 2.0 Client is not allowed to request scope '%s'.", scope))
		}
	}

	return c.IssueAuthorizeCode(ctx, ar, resp)
}

func (c *AuthorizeExplicitGrantHandler) IssueAuthorizeCode(ctx context.Context, ar authorization.AuthorizeRequester, resp authorization.AuthorizeResponder) error {
	code, signature, err := c.AuthorizeCodeStrategy.GenerateAuthorizeCode(ctx, ar)
	if err != nil {
		return errorsx.WithStack(authorization.ErrServerError.WithWrap(err).WithDebugError(err))
	}

	if err = c.CoreStorage.CreateAuthorizeCodeSession(ctx, signature, ar.Sanitize(c.GetSanitationWhiteList(ctx))); err != nil {
		return errorsx.WithStack(authorization.ErrServerError.WithWrap(err).WithDebugError(err))
	}

	resp.AddParameter(consts.FormParameterAuthorizationCode, code)
	resp.AddParameter(consts.FormParameterState, ar.GetState())

	if !c.Config.GetOmitRedirectScopeParam(ctx) {
		resp.AddParameter(consts.FormParameterScope, strings.Join(ar.GetGrantedScopes(), " "))
	}

	ar.SetResponseTypeHandled(consts.ResponseTypeAuthorizationCodeFlow)

	return nil
}

func (c *AuthorizeExplicitGrantHandler) GetSanitationWhiteList(ctx context.Context) []string {
	if allowedList := c.Config.GetSanitationWhiteList(ctx); len(allowedList) > 0 {
		return allowedList
	}

	return []string{consts.FormParameterAuthorizationCode, consts.FormParameterRedirectURI}
}
