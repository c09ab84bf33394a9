// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/oauth2-framework/authorization"
	"github.com/oauth2-framework/authorization/internal/consts"
	"github.com/oauth2-framework/authorization/internal/errorsx"
)

var (
	_ authorization.AuthorizeEndpointHandler = (*AuthorizeImplicitGrantTypeHandler)(nil)
)

// AuthorizeImplicitGrantTypeHandler is a response handler for the Authorize Code grant using the implicit grant type
// as defined in https://tools.ietf.org/html/rfc6749#section-4.2
type AuthorizeImplicitGrantTypeHandler struct {
	AccessTokenStrategy AccessTokenStrategy

	// AccessTokenStorage is used to persist session data across requests.
	AccessTokenStorage AccessTokenStorage

	Config interface {
		authorization.AccessTokenLifespanProvider
		authorization.ScopeStrategyProvider
	}
}

func (c *AuthorizeImplicitGrantTypeHandler) HandleAuthorizeEndpointRequest(ctx context.Context, ar authorization.AuthorizeRequester, resp authorization.AuthorizeResponder) error {
	// This let's us define multiple response types, for example open id connect's id_token
	if !ar.GetResponseTypes().ExactOne(consts.ResponseTypeImplicitFlowToken) {
		return nil
	}

	ar.SetDefaultResponseMode(authorization.ResponseModeFragment)

	client := ar.GetClient()
	for _, scope := range ar.GetRequestedScopes() {
		if !c.Config.GetScopeStrategy(ctx)(client.GetScopes(), scope) {
			return errorsx.WithStack(authorization.ErrInvalidScope.WithHintf("The OAuth 2.0 Client is not allowed to request scope '%s'.", scope))
		}
	}

	// There is no need to check for https, because the implicit flow does not require it.
	// See https://tools.ietf.org/html/rfc6819#section-4.4.2.

	return c.IssueImplicitAccessToken(ctx, ar, resp)
}

func (c *AuthorizeImplicitGrantTypeHandler) IssueImplicitAccessToken(ctx context.Context, ar authorization.AuthorizeRequester, resp authorization.AuthorizeResponder) error {
	token, signature, err := c.AccessTokenStrategy.GenerateAccessToken(ctx, ar)
	if err != nil {
		return errorsx.WithStack(authorization.ErrServerError.WithWrap(err).WithDebugError(err))
	}

	if err = c.AccessTokenStorage.CreateAccessTokenSession(ctx, signature, ar.Sanitize([]string{})); err != nil {
		return errorsx.WithStack(authorization.ErrServerError.WithWrap(err).WithDebugError(err))
	}

	atLifespan := c.Config.GetAccessTokenLifespan(ctx)

	resp.AddParameter(consts.AuthorizeResponseAccessToken, token)
	resp.AddParameter(consts.AuthorizeResponseExpiresIn, strconv.FormatInt(int64(atLifespan/time.Second), 10))
	resp.AddParameter(consts.AuthorizeResponseTokenType, "bearer")
	resp.AddParameter(consts.FormParameterState, ar.GetState())
	resp.AddParameter(consts.AuthorizeResponseScope, strings.Join(ar.GetGrantedScopes(), " "))

	ar.SetResponseTypeHandled(consts.ResponseTypeImplicitFlowToken)

	return nil
}
