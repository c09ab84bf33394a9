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

// NoneResponseTypeHandler is a response handler for when the None response type is requested
// as defined in https://openid.net/specs/oauth-v2-multiple-response-types-1_0.html#none
type NoneResponseTypeHandler struct {
	Config interface {
		authorization.ScopeStrategyProvider
		authorization.RedirectSecureCheckerProvider
		authorization.OmitRedirectScopeParamProvider
	}
}

var (
	_ authorization.AuthorizeEndpointHandler = (*NoneResponseTypeHandler)(nil)
)

func (c *NoneResponseTypeHandler) HandleAuthorizeEndpointRequest(ctx context.Context, ar authorization.AuthorizeRequester, resp authorization.AuthorizeResponder) error {
	if !ar.GetResponseTypes().ExactOne(consts.ResponseTypeNone) {
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

	resp.AddParameter(consts.FormParameterState, ar.GetState())

	if !c.Config.GetOmitRedirectScopeParam(ctx) {
		resp.AddParameter(consts.FormParameterScope, strings.Join(ar.GetGrantedScopes(), " "))
	}

	ar.SetResponseTypeHandled(consts.ResponseTypeNone)

	return nil
}

func (c *NoneResponseTypeHandler) secureChecker(ctx context.Context) func(context.Context, *url.URL) bool {
	if c.Config.GetRedirectSecureChecker(ctx) == nil {
		return authorization.IsRedirectURISecure
	}

	return c.Config.GetRedirectSecureChecker(ctx)
}
