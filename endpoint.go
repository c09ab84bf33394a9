// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"net/http"
	"net/url"

	"github.com/oauth2-framework/authorization/internal/consts"
	"github.com/oauth2-framework/authorization/internal/errorsx"
)

// RouteResolver produces the locations of the interactive login and consent pages an
// authorization request is redirected to while it waits for the resource owner.
type RouteResolver interface {
	// LoginURL returns the location of the login interaction for the given request.
	LoginURL(ctx context.Context, requester AuthorizeRequester) (*url.URL, error)

	// ConsentURL returns the location of the consent interaction for the given request.
	ConsentURL(ctx context.Context, requester AuthorizeRequester) (*url.URL, error)
}

// DefaultRouteResolver resolves the interaction routes from configuration and carries the
// authorization request id as a query parameter.
type DefaultRouteResolver struct {
	Config InteractionRoutesProvider
}

var (
	_ RouteResolver = (*DefaultRouteResolver)(nil)
)

func (r *DefaultRouteResolver) LoginURL(ctx context.Context, requester AuthorizeRequester) (*url.URL, error) {
	base := r.Config.GetLoginRoute(ctx)
	if base == nil {
		return nil, errorsx.WithStack(ErrServerError.WithHint("No login route is configured."))
	}

	return interactionURL(base, requester.GetID()), nil
}

func (r *DefaultRouteResolver) ConsentURL(ctx context.Context, requester AuthorizeRequester) (*url.URL, error) {
	base := r.Config.GetConsentRoute(ctx)
	if base == nil {
		return nil, errorsx.WithStack(ErrServerError.WithHint("No consent route is configured."))
	}

	return interactionURL(base, requester.GetID()), nil
}

func interactionURL(base *url.URL, id string) *url.URL {
	target := *base

	query := target.Query()
	query.Set(consts.FormParameterAuthorizationID, id)

	target.RawQuery = query.Encode()

	return &target
}

// ConsentDecider decides whether an authorization request needs an interactive consent decision
// and records the outcome of one.
type ConsentDecider interface {
	RequiresConsent(ctx context.Context, requester AuthorizeRequester, account UserAccount) (bool, error)

	GrantConsent(ctx context.Context, requester AuthorizeRequester, account UserAccount, approvedScopes Arguments) error
}

var (
	_ ConsentDecider = (*ConsentStrategy)(nil)
)

// AuthorizationEndpointConfigurator is the configuration contract required by the
// AuthorizationEndpoint.
type AuthorizationEndpointConfigurator interface {
	UserAuthenticationCheckersProvider
	HooksProvider
}

// AuthorizationEndpoint orchestrates the lifecycle of authorization requests. It validates the
// inbound request, interrupts it with redirects to the login and consent interactions when the
// resource owner's input is needed, resumes it from storage afterwards, and finally produces the
// authorization response.
type AuthorizationEndpoint struct {
	Provider AuthorizationProvider
	Store    Storage
	Accounts UserAccountDiscovery
	Consent  ConsentDecider
	Routes   RouteResolver
	Config   AuthorizationEndpointConfigurator
}

// NewAuthorizationEndpoint builds an AuthorizationEndpoint from its collaborators.
func NewAuthorizationEndpoint(provider AuthorizationProvider, store Storage, accounts UserAccountDiscovery, consent ConsentDecider, routes RouteResolver, config AuthorizationEndpointConfigurator) *AuthorizationEndpoint {
	return &AuthorizationEndpoint{
		Provider: provider,
		Store:    store,
		Accounts: accounts,
		Consent:  consent,
		Routes:   routes,
		Config:   config,
	}
}

// Authorize handles an inbound authorization request.
func (e *AuthorizationEndpoint) Authorize(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	requester, err := e.Provider.NewAuthorizationRequest(ctx, r)
	if err != nil {
		e.fail(ctx, rw, requester, err)

		return
	}

	e.proceed(ctx, rw, r, requester, false)
}

// Resume continues an authorization request previously interrupted by a login or consent
// redirect. The request is identified by the authorization_id form parameter.
func (e *AuthorizationEndpoint) Resume(rw http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.FormValue(consts.FormParameterAuthorizationID)
	if len(id) == 0 {
		e.fail(ctx, rw, NewAuthorizationRequest(), errorsx.WithStack(ErrInvalidRequest.WithHintf("The request is missing the '%s' parameter.", consts.FormParameterAuthorizationID)))

		return
	}

	requester, err := e.Store.GetAuthorizationRequestSession(ctx, id)
	if err != nil {
		e.fail(ctx, rw, NewAuthorizationRequest(), errorsx.WithStack(ErrInvalidRequest.WithHint("The authorization request could not be found or has expired.").WithWrap(err)))

		return
	}

	e.proceed(ctx, rw, r, requester, true)
}

// CompleteAuthentication records a successful login for the stored authorization request and
// returns the updated request. The caller is expected to redirect the user agent back to the
// resume endpoint afterwards.
func (e *AuthorizationEndpoint) CompleteAuthentication(ctx context.Context, id string, account UserAccount) (AuthorizeRequester, error) {
	requester, err := e.Store.GetAuthorizationRequestSession(ctx, id)
	if err != nil {
		return nil, err
	}

	requester.SetUserAccount(account)
	requester.SetAuthorizationState(AuthorizationStateAuthenticated)

	if err = e.Store.UpdateAuthorizationRequestSession(ctx, requester); err != nil {
		return nil, errorsx.WithStack(ErrServerError.WithWrap(err).WithDebugError(err))
	}

	return requester, nil
}

// CompleteConsent records the consent decision for the stored authorization request. When the
// decision is negative the stored request is removed and ErrAccessDenied is returned together
// with the request so the caller can deliver the error through the negotiated channel.
func (e *AuthorizationEndpoint) CompleteConsent(ctx context.Context, id string, account UserAccount, granted bool, approvedScopes Arguments) (AuthorizeRequester, error) {
	requester, err := e.Store.GetAuthorizationRequestSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if !granted {
		_ = e.Store.DeleteAuthorizationRequestSession(ctx, id)

		requester.SetAuthorizationState(AuthorizationStateErrored)

		return requester, errorsx.WithStack(ErrAccessDenied.WithHint("The resource owner denied the request."))
	}

	if err = e.Consent.GrantConsent(ctx, requester, account, approvedScopes); err != nil {
		return requester, err
	}

	requester.SetAuthorizationState(AuthorizationStateConsented)

	if err = e.Store.UpdateAuthorizationRequestSession(ctx, requester); err != nil {
		return nil, errorsx.WithStack(ErrServerError.WithWrap(err).WithDebugError(err))
	}

	return requester, nil
}

// proceed drives the request through authentication, consent, and response production. Each
// interruption persists the request and ends the current HTTP exchange with a redirect.
func (e *AuthorizationEndpoint) proceed(ctx context.Context, rw http.ResponseWriter, r *http.Request, requester AuthorizeRequester, persisted bool) {
	account := requester.GetUserAccount()

	if account == nil {
		var err error

		if account, err = e.Accounts.DiscoverAccount(ctx, r, requester); err != nil {
			e.fail(ctx, rw, requester, errorsx.WithStack(ErrServerError.WithWrap(err).WithDebugError(err)))

			return
		}
	}

	needsLogin := account == nil

	if !needsLogin {
		if err := e.Config.GetUserAuthenticationCheckers(ctx).CheckAuthentication(ctx, requester, account); err != nil {
			if !ErrorToRFC6749Error(err).Is(ErrLoginRequired) {
				e.fail(ctx, rw, requester, err)

				return
			}

			needsLogin = true
		}
	}

	if needsLogin {
		if promptRequiresNoInteraction(requester) {
			e.fail(ctx, rw, requester, errorsx.WithStack(ErrLoginRequired.WithHint("The resource owner is not authenticated and the request prohibits interaction.")))

			return
		}

		requester.SetAuthorizationState(AuthorizationStateAuthenticationPending)
		e.interrupt(ctx, rw, r, requester, persisted, e.Routes.LoginURL)

		return
	}

	requester.SetUserAccount(account)

	if requester.GetAuthorizationState() != AuthorizationStateConsented {
		requester.SetAuthorizationState(AuthorizationStateAuthenticated)
	}

	if err := e.hooks(ctx).Execute(ctx, HookStageBeforeConsent, r, requester); err != nil {
		e.fail(ctx, rw, requester, err)

		return
	}

	if requester.GetAuthorizationState() != AuthorizationStateConsented {
		required, err := e.Consent.RequiresConsent(ctx, requester, account)
		if err != nil {
			e.fail(ctx, rw, requester, err)

			return
		}

		if required {
			if promptRequiresNoInteraction(requester) {
				e.fail(ctx, rw, requester, errorsx.WithStack(ErrConsentRequired.WithHint("The resource owner has not granted consent and the request prohibits interaction.")))

				return
			}

			requester.SetAuthorizationState(AuthorizationStateConsentPending)
			e.interrupt(ctx, rw, r, requester, persisted, e.Routes.ConsentURL)

			return
		}

		for _, scope := range requester.GetRequestedScopes() {
			if !requester.GetGrantedScopes().Has(scope) {
				requester.GrantScope(scope)
			}
		}

		requester.SetAuthorizationState(AuthorizationStateConsented)
	}

	if err := e.hooks(ctx).Execute(ctx, HookStageAfterConsent, r, requester); err != nil {
		e.fail(ctx, rw, requester, err)

		return
	}

	responder, err := e.Provider.NewAuthorizeResponse(ctx, requester)
	if err != nil {
		e.fail(ctx, rw, requester, err)

		return
	}

	if err = e.hooks(ctx).Execute(ctx, HookStageBeforeResponse, r, requester); err != nil {
		e.fail(ctx, rw, requester, err)

		return
	}

	for key, values := range requester.GetResponseParameters() {
		for _, value := range values {
			responder.AddParameter(key, value)
		}
	}

	for key, values := range requester.GetResponseHeaders() {
		for _, value := range values {
			responder.AddHeader(key, value)
		}
	}

	// Remove the stored request before responding so a completed authorization can not be
	// replayed through the resume endpoint.
	if persisted {
		if err = e.Store.DeleteAuthorizationRequestSession(ctx, requester.GetID()); err != nil {
			e.fail(ctx, rw, requester, errorsx.WithStack(ErrServerError.WithWrap(err).WithDebugError(err)))

			return
		}
	}

	requester.SetAuthorizationState(AuthorizationStateResponded)

	e.Provider.WriteAuthorizeResponse(ctx, rw, requester, responder)
}

func (e *AuthorizationEndpoint) interrupt(ctx context.Context, rw http.ResponseWriter, r *http.Request, requester AuthorizeRequester, persisted bool, resolve func(context.Context, AuthorizeRequester) (*url.URL, error)) {
	var err error

	if persisted {
		err = e.Store.UpdateAuthorizationRequestSession(ctx, requester)
	} else {
		err = e.Store.CreateAuthorizationRequestSession(ctx, requester)
	}

	if err != nil {
		e.fail(ctx, rw, requester, errorsx.WithStack(ErrServerError.WithWrap(err).WithDebugError(err)))

		return
	}

	target, err := resolve(ctx, requester)
	if err != nil {
		e.fail(ctx, rw, requester, err)

		return
	}

	http.Redirect(rw, r, target.String(), http.StatusSeeOther)
}

func (e *AuthorizationEndpoint) fail(ctx context.Context, rw http.ResponseWriter, requester AuthorizeRequester, err error) {
	if requester == nil {
		requester = NewAuthorizationRequest()
	}

	requester.SetAuthorizationState(AuthorizationStateErrored)

	if len(requester.GetID()) != 0 {
		_ = e.Store.DeleteAuthorizationRequestSession(ctx, requester.GetID())
	}

	e.Provider.WriteAuthorizeError(ctx, rw, requester, err)
}

func (e *AuthorizationEndpoint) hooks(ctx context.Context) Hooks {
	return e.Config.GetHooks(ctx)
}

func promptRequiresNoInteraction(requester AuthorizeRequester) bool {
	return PromptValues(requester).Has(consts.PromptTypeNone)
}
