// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckerRequest(client Client, form url.Values) *AuthorizationRequest {
	request := NewAuthorizationRequest()
	request.Client = client
	request.Form = form

	return request
}

func TestRedirectURIChecker(t *testing.T) {
	checker := RedirectURIChecker{}

	testCases := []struct {
		name     string
		client   Client
		form     url.Values
		expected string
		err      error
	}{
		{
			"ShouldAcceptRegisteredURI",
			&DefaultClient{RedirectURIs: []string{"https://foo.com/cb"}},
			url.Values{"redirect_uri": {"https://foo.com/cb"}},
			"https://foo.com/cb",
			nil,
		},
		{
			"ShouldDefaultToSoleRegisteredURI",
			&DefaultClient{RedirectURIs: []string{"https://foo.com/cb"}},
			url.Values{},
			"https://foo.com/cb",
			nil,
		},
		{
			"ShouldRejectUnregisteredURI",
			&DefaultClient{RedirectURIs: []string{"https://foo.com/cb"}},
			url.Values{"redirect_uri": {"https://evil.com/cb"}},
			"",
			ErrInvalidRequest,
		},
		{
			"ShouldRequireRedirectURIForOpenID",
			&DefaultClient{RedirectURIs: []string{"https://foo.com/cb", "https://foo.com/other"}},
			url.Values{"scope": {"openid email"}},
			"",
			ErrInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := newCheckerRequest(tc.client, tc.form)

			err := checker.Check(context.Background(), request)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
				require.NotNil(t, request.RedirectURI)
				assert.Equal(t, tc.expected, request.RedirectURI.String())
			}
		})
	}
}

func TestStateChecker(t *testing.T) {
	client := &DefaultClient{RedirectURIs: []string{"https://foo.com/cb"}}

	testCases := []struct {
		name    string
		config  *Config
		form    url.Values
		err     error
	}{
		{"ShouldAcceptLongState", &Config{}, url.Values{"state": {"12345678"}}, nil},
		{"ShouldAcceptAbsentState", &Config{}, url.Values{}, nil},
		{"ShouldRejectShortState", &Config{}, url.Values{"state": {"123"}}, ErrInvalidState},
		{"ShouldRejectAbsentStateWhenEnforced", &Config{EnforceStateParameter: true}, url.Values{}, ErrInvalidState},
		{"ShouldHonorCustomEntropy", &Config{MinParameterEntropy: 3}, url.Values{"state": {"123"}}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checker := &StateChecker{Config: tc.config}
			request := newCheckerRequest(client, tc.form)

			err := checker.Check(context.Background(), request)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResponseTypeChecker(t *testing.T) {
	checker := ResponseTypeChecker{}

	testCases := []struct {
		name     string
		client   Client
		form     url.Values
		expected Arguments
		err      error
	}{
		{
			"ShouldAcceptRegisteredType",
			&DefaultClient{ResponseTypes: []string{"code"}},
			url.Values{"response_type": {"code"}},
			Arguments{"code"},
			nil,
		},
		{
			"ShouldAcceptHybridCombinationOutOfOrder",
			&DefaultClient{ResponseTypes: []string{"code id_token"}},
			url.Values{"response_type": {"id_token code"}},
			Arguments{"id_token", "code"},
			nil,
		},
		{
			"ShouldRejectUnregisteredType",
			&DefaultClient{ResponseTypes: []string{"code"}},
			url.Values{"response_type": {"token"}},
			nil,
			ErrUnsupportedResponseType,
		},
		{
			"ShouldRejectMissingTypeAsInvalidRequest",
			&DefaultClient{ResponseTypes: []string{"code"}},
			url.Values{},
			nil,
			ErrInvalidRequest,
		},
		{
			"ShouldRejectBlankTypeAsInvalidRequest",
			&DefaultClient{ResponseTypes: []string{"code"}},
			url.Values{"response_type": {" "}},
			nil,
			ErrInvalidRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := newCheckerRequest(tc.client, tc.form)

			err := checker.Check(context.Background(), request)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, request.ResponseTypes)
			}
		})
	}
}

func TestResponseModeChecker(t *testing.T) {
	checker := ResponseModeChecker{}

	base := &DefaultClient{RedirectURIs: []string{"https://foo.com/cb"}}

	testCases := []struct {
		name     string
		client   Client
		form     url.Values
		expected ResponseModeType
		err      error
	}{
		{"ShouldDefaultWhenAbsent", base, url.Values{}, ResponseModeDefault, nil},
		{
			"ShouldRejectUnknownMode",
			base,
			url.Values{"response_mode": {"invalid"}},
			ResponseModeDefault,
			ErrUnsupportedResponseMode,
		},
		{
			"ShouldRejectModeForPlainClient",
			base,
			url.Values{"response_mode": {"form_post"}},
			ResponseModeDefault,
			ErrUnsupportedResponseMode,
		},
		{
			"ShouldAcceptRegisteredMode",
			&DefaultResponseModeClient{DefaultClient: base, ResponseModes: []ResponseModeType{ResponseModeFormPost}},
			url.Values{"response_mode": {"form_post"}},
			ResponseModeFormPost,
			nil,
		},
		{
			"ShouldRejectUnregisteredMode",
			&DefaultResponseModeClient{DefaultClient: base, ResponseModes: []ResponseModeType{ResponseModeQuery}},
			url.Values{"response_mode": {"fragment"}},
			ResponseModeDefault,
			ErrUnsupportedResponseMode,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := newCheckerRequest(tc.client, tc.form)

			err := checker.Check(context.Background(), request)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, request.ResponseMode)
			}
		})
	}
}

func TestScopeChecker(t *testing.T) {
	checker := &ScopeChecker{Config: &Config{}}

	t.Run("ShouldAcceptRegisteredScopes", func(t *testing.T) {
		request := newCheckerRequest(&DefaultClient{Scopes: []string{"openid", "email"}}, url.Values{"scope": {"openid email"}})

		require.NoError(t, checker.Check(context.Background(), request))
		assert.Equal(t, Arguments{"openid", "email"}, request.GetRequestedScopes())
	})

	t.Run("ShouldRejectUnregisteredScope", func(t *testing.T) {
		request := newCheckerRequest(&DefaultClient{Scopes: []string{"openid"}}, url.Values{"scope": {"openid photos"}})

		assert.ErrorIs(t, checker.Check(context.Background(), request), ErrInvalidScope)
	})
}

func TestNonceChecker(t *testing.T) {
	checker := &NonceChecker{Config: &Config{}}

	t.Run("ShouldRequireNonceForImplicitIDToken", func(t *testing.T) {
		request := newCheckerRequest(&DefaultClient{}, url.Values{})
		request.ResponseTypes = Arguments{"id_token"}
		request.SetRequestedScopes(Arguments{"openid"})

		assert.ErrorIs(t, checker.Check(context.Background(), request), ErrInvalidRequest)
	})

	t.Run("ShouldAllowAbsentNonceForCodeFlow", func(t *testing.T) {
		request := newCheckerRequest(&DefaultClient{}, url.Values{})
		request.ResponseTypes = Arguments{"code"}
		request.SetRequestedScopes(Arguments{"openid"})

		assert.NoError(t, checker.Check(context.Background(), request))
	})

	t.Run("ShouldRejectShortNonce", func(t *testing.T) {
		request := newCheckerRequest(&DefaultClient{}, url.Values{"nonce": {"123"}})
		request.ResponseTypes = Arguments{"id_token"}
		request.SetRequestedScopes(Arguments{"openid"})

		assert.ErrorIs(t, checker.Check(context.Background(), request), ErrInsufficientEntropy)
	})
}

func TestPromptChecker(t *testing.T) {
	checker := &PromptChecker{Config: &Config{}}

	testCases := []struct {
		name   string
		prompt string
		err    error
	}{
		{"ShouldAcceptLogin", "login", nil},
		{"ShouldAcceptNone", "none", nil},
		{"ShouldAcceptMultiple", "login consent", nil},
		{"ShouldRejectUnknown", "unknown", ErrInvalidRequest},
		{"ShouldRejectNoneCombined", "none login", ErrInvalidRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			request := newCheckerRequest(&DefaultClient{}, url.Values{"prompt": {tc.prompt}})

			err := checker.Check(context.Background(), request)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaxAgeChecker(t *testing.T) {
	checker := MaxAgeChecker{}

	testCases := []struct {
		name   string
		maxAge string
		err    error
	}{
		{"ShouldAcceptAbsent", "", nil},
		{"ShouldAcceptZero", "0", nil},
		{"ShouldAcceptPositive", "3600", nil},
		{"ShouldRejectNegative", "-1", ErrInvalidRequest},
		{"ShouldRejectNonInteger", "abc", ErrInvalidRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			form := url.Values{}
			if tc.maxAge != "" {
				form.Set("max_age", tc.maxAge)
			}

			request := newCheckerRequest(&DefaultClient{}, form)

			err := checker.Check(context.Background(), request)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPKCEChecker(t *testing.T) {
	testCases := []struct {
		name   string
		config *Config
		client Client
		form   url.Values
		types  Arguments
		err    error
	}{
		{
			"ShouldAcceptS256Challenge",
			&Config{},
			&DefaultClient{},
			url.Values{"code_challenge": {"challenge"}, "code_challenge_method": {"S256"}},
			Arguments{"code"},
			nil,
		},
		{
			"ShouldRejectPlainByDefault",
			&Config{},
			&DefaultClient{},
			url.Values{"code_challenge": {"challenge"}},
			Arguments{"code"},
			ErrInvalidRequest,
		},
		{
			"ShouldAcceptPlainWhenEnabled",
			&Config{EnablePKCEPlainChallengeMethod: true},
			&DefaultClient{},
			url.Values{"code_challenge": {"challenge"}, "code_challenge_method": {"plain"}},
			Arguments{"code"},
			nil,
		},
		{
			"ShouldRejectUnknownMethod",
			&Config{},
			&DefaultClient{},
			url.Values{"code_challenge": {"challenge"}, "code_challenge_method": {"S512"}},
			Arguments{"code"},
			ErrInvalidRequest,
		},
		{
			"ShouldRejectMethodWithoutChallenge",
			&Config{},
			&DefaultClient{},
			url.Values{"code_challenge_method": {"S256"}},
			Arguments{"code"},
			ErrInvalidRequest,
		},
		{
			"ShouldAllowAbsentChallengeByDefault",
			&Config{},
			&DefaultClient{},
			url.Values{},
			Arguments{"code"},
			nil,
		},
		{
			"ShouldEnforceChallengeGlobally",
			&Config{EnforcePKCE: true},
			&DefaultClient{},
			url.Values{},
			Arguments{"code"},
			ErrInvalidRequest,
		},
		{
			"ShouldEnforceChallengeForPublicClients",
			&Config{EnforcePKCEForPublicClients: true},
			&DefaultClient{Public: true},
			url.Values{},
			Arguments{"code"},
			ErrInvalidRequest,
		},
		{
			"ShouldIgnoreImplicitFlow",
			&Config{EnforcePKCE: true},
			&DefaultClient{},
			url.Values{},
			Arguments{"token"},
			nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			checker := &PKCEChecker{Config: tc.config}
			request := newCheckerRequest(tc.client, tc.form)
			request.ResponseTypes = tc.types

			err := checker.Check(context.Background(), request)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
