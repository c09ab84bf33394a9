// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	. "github.com/oauth2-framework/authorization"
	"github.com/oauth2-framework/authorization/testing/mock"
)

func TestNewAuthorizeResponse(t *testing.T) {
	ctx := context.Background()

	newRequester := func(responseTypes Arguments) *AuthorizationRequest {
		requester := NewAuthorizationRequest()
		requester.Client = &DefaultClient{ID: "client"}
		requester.ResponseTypes = responseTypes

		return requester
	}

	t.Run("ShouldPropagateHandlerError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		expected := errors.New("foo")

		handler := mock.NewMockAuthorizeEndpointHandler(ctrl)
		handler.EXPECT().HandleAuthorizeEndpointRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(expected)

		provider := New(nil, &Config{AuthorizeEndpointHandlers: AuthorizeEndpointHandlers{handler}})

		responder, err := provider.NewAuthorizeResponse(ctx, newRequester(Arguments{"code"}))
		assert.ErrorIs(t, err, expected)
		assert.Nil(t, responder)
	})

	t.Run("ShouldFailWhenResponseTypeUnhandled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		handler := mock.NewMockAuthorizeEndpointHandler(ctrl)
		handler.EXPECT().HandleAuthorizeEndpointRequest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		provider := New(nil, &Config{AuthorizeEndpointHandlers: AuthorizeEndpointHandlers{handler}})

		_, err := provider.NewAuthorizeResponse(ctx, newRequester(Arguments{"code"}))
		assert.ErrorIs(t, err, ErrUnsupportedResponseType)
	})

	t.Run("ShouldSucceedWhenAllResponseTypesHandled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		requester := newRequester(Arguments{"code"})

		handler := mock.NewMockAuthorizeEndpointHandler(ctrl)
		handler.EXPECT().HandleAuthorizeEndpointRequest(gomock.Any(), requester, gomock.Any()).DoAndReturn(
			func(_ context.Context, ar AuthorizeRequester, resp AuthorizeResponder) error {
				resp.AddParameter("code", "secret-code")
				ar.SetResponseTypeHandled("code")
				ar.SetDefaultResponseMode(ResponseModeQuery)
				return nil
			})

		provider := New(nil, &Config{AuthorizeEndpointHandlers: AuthorizeEndpointHandlers{handler}})

		responder, err := provider.NewAuthorizeResponse(ctx, requester)
		require.NoError(t, err)
		assert.Equal(t, "secret-code", responder.GetCode())
	})

	t.Run("ShouldRejectInsecureQueryModeForImplicitFlow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		requester := newRequester(Arguments{"token"})
		requester.ResponseMode = ResponseModeQuery

		handler := mock.NewMockAuthorizeEndpointHandler(ctrl)
		handler.EXPECT().HandleAuthorizeEndpointRequest(gomock.Any(), requester, gomock.Any()).DoAndReturn(
			func(_ context.Context, ar AuthorizeRequester, _ AuthorizeResponder) error {
				ar.SetResponseTypeHandled("token")
				ar.SetDefaultResponseMode(ResponseModeFragment)
				return nil
			})

		provider := New(nil, &Config{AuthorizeEndpointHandlers: AuthorizeEndpointHandlers{handler}})

		_, err := provider.NewAuthorizeResponse(ctx, requester)
		assert.ErrorIs(t, err, ErrUnsupportedResponseMode)
	})

	t.Run("ShouldAllowQueryModeForImplicitFlowWhenClientRegisteredIt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		requester := newRequester(Arguments{"token"})
		requester.Client = &DefaultResponseModeClient{
			DefaultClient: &DefaultClient{ID: "client"},
			ResponseModes: []ResponseModeType{ResponseModeQuery},
		}
		requester.ResponseMode = ResponseModeQuery

		handler := mock.NewMockAuthorizeEndpointHandler(ctrl)
		handler.EXPECT().HandleAuthorizeEndpointRequest(gomock.Any(), requester, gomock.Any()).DoAndReturn(
			func(_ context.Context, ar AuthorizeRequester, _ AuthorizeResponder) error {
				ar.SetResponseTypeHandled("token")
				ar.SetDefaultResponseMode(ResponseModeFragment)
				return nil
			})

		provider := New(nil, &Config{AuthorizeEndpointHandlers: AuthorizeEndpointHandlers{handler}})

		_, err := provider.NewAuthorizeResponse(ctx, requester)
		require.NoError(t, err)
	})
}
