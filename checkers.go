// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"strconv"
	"strings"

	"github.com/oauth2-framework/authorization/internal/consts"
	"github.com/oauth2-framework/authorization/internal/errorsx"
	"github.com/oauth2-framework/authorization/internal/stringslice"
)

// ParameterChecker validates a single aspect of an inbound authorization request. Checkers run
// in ascending priority order and the first failing checker aborts validation.
type ParameterChecker interface {
	// Priority returns the execution priority of this checker. Lower priorities run first.
	Priority() int

	// Check validates its parameter on the given request, normalizing the parsed value onto the
	// request as a side effect.
	Check(ctx context.Context, request *AuthorizationRequest) error
}

// RedirectURIChecker resolves and validates the 'redirect_uri' parameter against the client's
// registered redirect URIs. It runs before every other checker because no error may ever be
// returned to an unvalidated redirection endpoint.
type RedirectURIChecker struct{}

func (c RedirectURIChecker) Priority() int { return 10 }

func (c RedirectURIChecker) Check(ctx context.Context, request *AuthorizationRequest) error {
	rawRedirURI := request.Form.Get(consts.FormParameterRedirectURI)

	// This ensures that the 'redirect_uri' parameter is present for OpenID Connect 1.0
	// authorization requests as per:
	//
	// Authorization Code Flow - https://openid.net/specs/openid-connect-core-1_0.html#AuthRequest
	// Implicit Flow - https://openid.net/specs/openid-connect-core-1_0.html#ImplicitAuthRequest
	// Hybrid Flow - https://openid.net/specs/openid-connect-core-1_0.html#HybridAuthRequest
	if len(rawRedirURI) == 0 && RemoveEmpty(Arguments(strings.Split(request.Form.Get(consts.FormParameterScope), " "))).Has(consts.ScopeOpenID) {
		return errorsx.WithStack(ErrInvalidRequest.WithHint("The 'redirect_uri' parameter is required when using OpenID Connect 1.0."))
	}

	redirectURI, err := MatchRedirectURIWithClientRedirectURIs(rawRedirURI, request.GetClient())
	if err != nil {
		return err
	} else if !IsValidRedirectURI(redirectURI) {
		return errorsx.WithStack(ErrInvalidRequest.WithHintf("The redirect URI '%s' contains an illegal character (for example #) or is otherwise invalid.", redirectURI))
	}

	request.RedirectURI = redirectURI

	return nil
}

// StateChecker validates the 'state' parameter. The state protects the client against CSRF so it
// must be sufficiently unguessable when present, and present at all when state enforcement is on.
type StateChecker struct {
	Config interface {
		EnforceStateParameterProvider
		MinParameterEntropyProvider
	}
}

func (c *StateChecker) Priority() int { return 20 }

func (c *StateChecker) Check(ctx context.Context, request *AuthorizationRequest) error {
	state := request.Form.Get(consts.FormParameterState)

	if state == "" {
		if c.Config.GetEnforceStateParameter(ctx) {
			return errorsx.WithStack(ErrInvalidState.WithHint("Request parameter 'state' must be set when state enforcement is enabled."))
		}

		return nil
	}

	if len(state) < minParameterEntropy(ctx, c.Config) {
		return errorsx.WithStack(ErrInvalidState.WithHintf("Request parameter 'state' must be at least be %d characters long to ensure sufficient entropy.", minParameterEntropy(ctx, c.Config)))
	}

	request.State = state

	return nil
}

// ResponseTypeChecker validates the 'response_type' parameter against the combinations the
// client registered.
type ResponseTypeChecker struct{}

func (c ResponseTypeChecker) Priority() int { return 30 }

func (c ResponseTypeChecker) Check(ctx context.Context, request *AuthorizationRequest) error {
	responseTypes := RemoveEmpty(Arguments(strings.Split(request.Form.Get(consts.FormParameterResponseType), " ")))
	if len(responseTypes) == 0 {
		return errorsx.WithStack(ErrInvalidRequest.WithHint("The request is missing the 'response_type' parameter."))
	}

	var found bool

	for _, t := range request.GetClient().GetResponseTypes() {
		if Arguments(strings.Split(t, " ")).Matches(responseTypes...) {
			found = true
			break
		}
	}

	if !found {
		return errorsx.WithStack(ErrUnsupportedResponseType.WithHintf("The client is not allowed to request response_type '%s'.", request.Form.Get(consts.FormParameterResponseType)))
	}

	request.ResponseTypes = responseTypes

	return nil
}

// ResponseModeChecker parses the 'response_mode' parameter and validates it against the modes
// the client registered.
type ResponseModeChecker struct{}

func (c ResponseModeChecker) Priority() int { return 40 }

func (c ResponseModeChecker) Check(ctx context.Context, request *AuthorizationRequest) error {
	switch responseMode := request.Form.Get(consts.FormParameterResponseMode); responseMode {
	case string(ResponseModeDefault):
		request.ResponseMode = ResponseModeDefault
	case string(ResponseModeFragment):
		request.ResponseMode = ResponseModeFragment
	case string(ResponseModeQuery):
		request.ResponseMode = ResponseModeQuery
	case string(ResponseModeFormPost):
		request.ResponseMode = ResponseModeFormPost
	default:
		return errorsx.WithStack(ErrUnsupportedResponseMode.WithHintf("Request with unsupported response_mode \"%s\".", responseMode))
	}

	if request.ResponseMode == ResponseModeDefault {
		return nil
	}

	responseModeClient, ok := request.GetClient().(ResponseModeClient)
	if !ok {
		return errorsx.WithStack(ErrUnsupportedResponseMode.WithHintf("The request has response_mode \"%s\" requested, but the registered OAuth 2.0 Client does not support response modes.", request.Form.Get(consts.FormParameterResponseMode)))
	}

	var found bool

	for _, t := range responseModeClient.GetResponseModes() {
		if request.ResponseMode == t {
			found = true
			break
		}
	}

	if !found {
		return errorsx.WithStack(ErrUnsupportedResponseMode.WithHintf("The request has response_mode \"%s\" requested, but the registered OAuth 2.0 Client doesn't support this response mode.", request.Form.Get(consts.FormParameterResponseMode)))
	}

	return nil
}

// ScopeChecker validates every requested scope against the scopes the client may request.
type ScopeChecker struct {
	Config interface {
		ScopeStrategyProvider
	}
}

func (c *ScopeChecker) Priority() int { return 50 }

func (c *ScopeChecker) Check(ctx context.Context, request *AuthorizationRequest) error {
	scope := RemoveEmpty(Arguments(strings.Split(request.Form.Get(consts.FormParameterScope), " ")))

	for _, permission := range scope {
		if !c.Config.GetScopeStrategy(ctx)(request.GetClient().GetScopes(), permission) {
			return errorsx.WithStack(ErrInvalidScope.WithHintf("The OAuth 2.0 Client is not allowed to request scope '%s'.", permission))
		}
	}

	request.SetRequestedScopes(scope)

	return nil
}

// NonceChecker validates the 'nonce' parameter. OpenID Connect flows which return an ID Token
// from the authorization endpoint require the nonce to bind the token to the user agent session.
type NonceChecker struct {
	Config interface {
		MinParameterEntropyProvider
	}
}

func (c *NonceChecker) Priority() int { return 60 }

func (c *NonceChecker) Check(ctx context.Context, request *AuthorizationRequest) error {
	nonce := request.Form.Get(consts.FormParameterNonce)

	if nonce == "" {
		if request.ResponseTypes.Has(consts.AuthorizeResponseIDToken) && request.GetRequestedScopes().Has(consts.ScopeOpenID) {
			return errorsx.WithStack(ErrInvalidRequest.WithHint("Request parameter 'nonce' must be set when requesting an ID Token from the authorization endpoint."))
		}

		return nil
	}

	if len(nonce) < minParameterEntropy(ctx, c.Config) {
		return errorsx.WithStack(ErrInsufficientEntropy.WithHintf("Request parameter 'nonce' is set but does not satisfy the minimum entropy of %d characters.", minParameterEntropy(ctx, c.Config)))
	}

	return nil
}

// PromptChecker validates the 'prompt' parameter against the prompt values the server supports.
// The value 'none' instructs the server to never show a user interface and must not be combined
// with any other value.
type PromptChecker struct {
	Config interface {
		AllowedPromptsProvider
	}
}

func (c *PromptChecker) Priority() int { return 70 }

func (c *PromptChecker) Check(ctx context.Context, request *AuthorizationRequest) error {
	prompts := PromptValues(request)

	for _, prompt := range prompts {
		if !stringslice.Has(c.Config.GetAllowedPrompts(ctx), prompt) {
			return errorsx.WithStack(ErrInvalidRequest.WithHintf("Used unknown value '%s' for prompt parameter", prompt))
		}
	}

	if stringslice.Has(prompts, consts.PromptTypeNone) && len(prompts) > 1 {
		return errorsx.WithStack(ErrInvalidRequest.WithHint("Parameter 'prompt' was set to 'none', but contains other values as well which is not allowed."))
	}

	return nil
}

// MaxAgeChecker validates the 'max_age' parameter, a non-negative integer number of seconds.
type MaxAgeChecker struct{}

func (c MaxAgeChecker) Priority() int { return 80 }

func (c MaxAgeChecker) Check(ctx context.Context, request *AuthorizationRequest) error {
	raw := request.Form.Get(consts.FormParameterMaximumAge)
	if raw == "" {
		return nil
	}

	if maxAge, err := strconv.ParseInt(raw, 10, 64); err != nil || maxAge < 0 {
		return errorsx.WithStack(ErrInvalidRequest.WithHintf("Request parameter 'max_age' with value '%s' is not a valid non-negative integer.", raw))
	}

	return nil
}

// PKCEChecker validates the 'code_challenge' and 'code_challenge_method' parameters of the
// Proof Key for Code Exchange extension.
type PKCEChecker struct {
	Config interface {
		EnforcePKCEProvider
		EnforcePKCEForPublicClientsProvider
		EnablePKCEPlainChallengeMethodProvider
	}
}

func (c *PKCEChecker) Priority() int { return 90 }

func (c *PKCEChecker) Check(ctx context.Context, request *AuthorizationRequest) error {
	challenge := request.Form.Get(consts.FormParameterCodeChallenge)
	method := request.Form.Get(consts.FormParameterCodeChallengeMethod)

	if challenge == "" {
		if method != "" {
			return errorsx.WithStack(ErrInvalidRequest.WithHint("The request included the 'code_challenge_method' parameter but the 'code_challenge' parameter is absent."))
		}

		if !request.ResponseTypes.Has(consts.ResponseTypeAuthorizationCodeFlow) {
			return nil
		}

		if c.Config.GetEnforcePKCE(ctx) {
			return errorsx.WithStack(ErrInvalidRequest.WithHint("Clients must include a code_challenge when performing the authorize code flow, but it is missing."))
		}

		if c.Config.GetEnforcePKCEForPublicClients(ctx) && request.GetClient().IsPublic() {
			return errorsx.WithStack(ErrInvalidRequest.WithHint("This client must include a code_challenge when performing the authorize code flow, but it is missing."))
		}

		return nil
	}

	switch method {
	case "", consts.PKCEChallengeMethodPlain:
		if !c.Config.GetEnablePKCEPlainChallengeMethod(ctx) {
			return errorsx.WithStack(ErrInvalidRequest.WithHint("Clients must use code_challenge_method=S256, plain is not allowed."))
		}
	case consts.PKCEChallengeMethodSHA256:
	default:
		return errorsx.WithStack(ErrInvalidRequest.WithHint("The code_challenge_method is not supported, use S256 instead."))
	}

	return nil
}

func minParameterEntropy(ctx context.Context, config MinParameterEntropyProvider) int {
	if mp := config.GetMinParameterEntropy(ctx); mp > 0 {
		return mp
	}

	return MinParameterEntropy
}
