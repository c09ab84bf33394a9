// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"net/http"

	"github.com/oauth2-framework/authorization/i18n"
	"github.com/oauth2-framework/authorization/internal/consts"
	"github.com/oauth2-framework/authorization/internal/errorsx"
)

// NewAuthorizationRequest parses an inbound authorization request and validates its parameters
// by running every configured parameter checker in ascending priority order. The returned
// requester always carries whatever could be parsed so far so errors can be delivered to the
// right channel, even when validation failed early.
func (f *Authorizer) NewAuthorizationRequest(ctx context.Context, r *http.Request) (AuthorizeRequester, error) {
	request := NewAuthorizationRequest()
	request.Request.Lang = i18n.GetLangFromRequest(f.Config.GetMessageCatalog(ctx), r)

	if err := r.ParseMultipartForm(1 << 20); err != nil && err != http.ErrNotMultipart {
		return request, errorsx.WithStack(ErrInvalidRequest.WithHint("Unable to parse HTTP body, make sure to send a properly formatted form request body.").WithWrap(err).WithDebugError(err))
	}

	request.Form = r.Form

	// Save state to the request to be returned in error conditions.
	request.State = request.Form.Get(consts.FormParameterState)

	client, err := f.Store.GetClient(ctx, request.GetRequestForm().Get(consts.FormParameterClientID))
	if err != nil {
		return request, errorsx.WithStack(ErrClientNotFound.WithWrap(err).WithDebugError(err))
	}

	request.Client = client

	// Now that the base fields (state and client) are populated, we extract all the information
	// from the request object or request object uri, if one is set.
	//
	// The parameter checkers run afterwards so that we ensure that the data is taken from the
	// request object if set.
	if err = f.authorizeRequestParametersFromRequestObject(ctx, request); err != nil {
		return request, err
	}

	if len(request.Form.Get(consts.FormParameterRegistration)) > 0 {
		return request, errorsx.WithStack(ErrRegistrationNotSupported)
	}

	ctx = context.WithValue(ctx, AuthorizeRequestContextKey, request)

	for _, checker := range f.Config.GetParameterCheckers(ctx) {
		if err = checker.Check(ctx, request); err != nil {
			return request, err
		}
	}

	// A fallback to set the default response mode in cases where we can not reach the authorize
	// handlers but still need the e.g. correct error response mode.
	if request.GetResponseMode() == ResponseModeDefault {
		if request.ResponseTypes.ExactOne(consts.ResponseTypeAuthorizationCodeFlow) || request.ResponseTypes.ExactOne(consts.ResponseTypeNone) {
			request.SetDefaultResponseMode(ResponseModeQuery)
		} else {
			// If the response type is not `code` it is an implicit/hybrid (fragment) response mode.
			request.SetDefaultResponseMode(ResponseModeFragment)
		}
	}

	request.SetAuthorizationState(AuthorizationStateValidated)

	return request, nil
}
