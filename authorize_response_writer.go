// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oauth2-framework/authorization/internal/errorsx"
)

func (f *Authorizer) NewAuthorizeResponse(ctx context.Context, requester AuthorizeRequester) (responder AuthorizeResponder, err error) {
	var response = &AuthorizeResponse{
		Header:     http.Header{},
		Parameters: url.Values{},
	}

	ctx = context.WithValue(ctx, AuthorizeRequestContextKey, requester)
	ctx = context.WithValue(ctx, AuthorizeResponseContextKey, response)

	for _, h := range f.Config.GetAuthorizeEndpointHandlers(ctx) {
		if err = h.HandleAuthorizeEndpointRequest(ctx, requester, response); err != nil {
			return nil, err
		}
	}

	if !requester.DidHandleAllResponseTypes() {
		return nil, errorsx.WithStack(ErrUnsupportedResponseType)
	}

	if requester.GetDefaultResponseMode() == ResponseModeFragment && requester.GetResponseMode() == ResponseModeQuery && !clientAllowsResponseMode(requester.GetClient(), ResponseModeQuery) {
		return nil, ErrUnsupportedResponseMode.WithHintf("Insecure response_mode '%s' for the response_type '%s'.", requester.GetResponseMode(), requester.GetResponseTypes())
	}

	return response, nil
}

// Clients which explicitly registered a response mode opted in to it even when the default mode
// of the response type is more restrictive.
func clientAllowsResponseMode(client Client, mode ResponseModeType) bool {
	responseModeClient, ok := client.(ResponseModeClient)
	if !ok {
		return false
	}

	for _, m := range responseModeClient.GetResponseModes() {
		if m == mode {
			return true
		}
	}

	return false
}
