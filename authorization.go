// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/text/language"
)

// AuthorizationProvider is the top level protocol engine for the Authorization Endpoint. It turns an incoming
// HTTP request into an AuthorizeRequester, runs the response type handlers once the resource owner is known, and
// encodes the outcome onto the wire using the negotiated response mode.
type AuthorizationProvider interface {
	// NewAuthorizationRequest parses and validates the parameters of an incoming authorization request.
	NewAuthorizationRequest(ctx context.Context, r *http.Request) (AuthorizeRequester, error)

	// NewAuthorizeResponse iterates through all response type handlers and returns their result or
	// ErrUnsupportedResponseType if none of the handlers were able to produce one.
	NewAuthorizeResponse(ctx context.Context, requester AuthorizeRequester) (AuthorizeResponder, error)

	// WriteAuthorizeResponse encodes the authorization response onto the wire.
	WriteAuthorizeResponse(ctx context.Context, rw http.ResponseWriter, requester AuthorizeRequester, responder AuthorizeResponder)

	// WriteAuthorizeError encodes an authorization error onto the wire, via the client's redirection
	// endpoint when it was validated and directly to the user agent when it was not.
	WriteAuthorizeError(ctx context.Context, rw http.ResponseWriter, requester AuthorizeRequester, err error)
}

// Requester is an abstract interface for handling requests.
type Requester interface {
	// SetID sets the unique identifier of the request.
	SetID(id string)

	// GetID returns a unique identifier for the request.
	GetID() string

	// GetRequestedAt returns the time the request was created.
	GetRequestedAt() (requestedAt time.Time)

	// GetClient returns the request's client.
	GetClient() (client Client)

	// GetRequestedScopes returns the request's scopes.
	GetRequestedScopes() (scopes Arguments)

	// SetRequestedScopes sets the request's scopes.
	SetRequestedScopes(scopes Arguments)

	// AppendRequestedScope appends a scope to the request.
	AppendRequestedScope(scope string)

	// GetGrantedScopes returns all granted scopes.
	GetGrantedScopes() (grantedScopes Arguments)

	// GrantScope marks a request's scope as granted.
	GrantScope(scope string)

	// GetRequestForm returns the request form.
	GetRequestForm() url.Values

	// Merge merges the argument into the method receiver.
	Merge(requester Requester)

	// Sanitize returns a sanitized clone of the request which can be used for storage.
	Sanitize(allowedParameters []string) Requester

	// GetLang returns the requested language tag, used for i18n of messages.
	GetLang() language.Tag
}

// AuthorizeRequester is an authorization endpoint's request context.
type AuthorizeRequester interface {
	// GetResponseTypes returns the requested response types.
	GetResponseTypes() (responseTypes Arguments)

	// SetResponseTypeHandled marks a response_type as handled indicating that the response type
	// is supported.
	SetResponseTypeHandled(responseType string)

	// DidHandleAllResponseTypes returns if all requested response types have been handled correctly.
	DidHandleAllResponseTypes() (didHandle bool)

	// GetRedirectURI returns the requested redirect URI.
	GetRedirectURI() (redirectURI *url.URL)

	// IsRedirectURIValid returns false if the redirect is not rfc-conform (i.e. missing client,
	// not on white list, or malformed).
	IsRedirectURIValid() (isValid bool)

	// GetState returns the request's state.
	GetState() (state string)

	// GetResponseMode returns the requested response mode.
	GetResponseMode() (responseMode ResponseModeType)

	// SetDefaultResponseMode sets the default response mode for the requested response type.
	SetDefaultResponseMode(responseMode ResponseModeType)

	// GetDefaultResponseMode gets the default response mode for the requested response type.
	GetDefaultResponseMode() (responseMode ResponseModeType)

	// GetAuthorizationState returns the lifecycle state of this request.
	GetAuthorizationState() AuthorizationState

	// SetAuthorizationState transitions this request to the given lifecycle state.
	SetAuthorizationState(state AuthorizationState)

	// GetUserAccount returns the resource owner associated with this request, or nil before
	// authentication completed.
	GetUserAccount() UserAccount

	// SetUserAccount associates the resource owner with this request.
	SetUserAccount(account UserAccount)

	// GetResponseHeaders returns extension headers to be written alongside the final response.
	GetResponseHeaders() http.Header

	// GetResponseParameters returns extension parameters to be encoded into the final response.
	GetResponseParameters() url.Values

	Requester
}

// AuthorizeResponder defines the authorization endpoint's response.
type AuthorizeResponder interface {
	// GetCode returns the response's authorize code if set.
	GetCode() string

	// GetHeader returns the response's headers.
	GetHeader() (header http.Header)

	// AddHeader adds a header key value pair to the response.
	AddHeader(key, value string)

	// GetParameters returns the response's parameters.
	GetParameters() (query url.Values)

	// AddParameter adds a key value pair to the response's parameters.
	AddParameter(key, value string)
}

// AuthorizeEndpointHandler produces the response for a particular response type once the resource
// owner is authenticated and consent is settled.
type AuthorizeEndpointHandler interface {
	// HandleAuthorizeEndpointRequest handles an authorize endpoint request.
	HandleAuthorizeEndpointRequest(ctx context.Context, requester AuthorizeRequester, responder AuthorizeResponder) error
}

// ResponseModeHandler provides a contract for handling response modes.
type ResponseModeHandler interface {
	// ResponseModes returns the response modes this ResponseModeHandler is responsible for.
	ResponseModes() ResponseModeTypes

	// WriteAuthorizeResponse writes the authorize response.
	WriteAuthorizeResponse(ctx context.Context, rw http.ResponseWriter, requester AuthorizeRequester, responder AuthorizeResponder)

	// WriteAuthorizeError writes the authorize error.
	WriteAuthorizeError(ctx context.Context, rw http.ResponseWriter, requester AuthorizeRequester, err error)
}

type ResponseModeTypes []ResponseModeType

func (rs ResponseModeTypes) Has(item ResponseModeType) bool {
	for _, r := range rs {
		if r == item {
			return true
		}
	}
	return false
}

type ResponseModeType string

const (
	ResponseModeDefault  = ResponseModeType("")
	ResponseModeFormPost = ResponseModeType("form_post")
	ResponseModeQuery    = ResponseModeType("query")
	ResponseModeFragment = ResponseModeType("fragment")
)

// AuthorizationState is the lifecycle state of an in-flight authorization request.
type AuthorizationState int

const (
	// AuthorizationStateReceived is the state of a freshly parsed request before validation.
	AuthorizationStateReceived AuthorizationState = iota

	// AuthorizationStateValidated is the state of a request whose parameters all passed validation.
	AuthorizationStateValidated

	// AuthorizationStateAuthenticationPending is the state of a request persisted while the
	// user agent is redirected towards the login route.
	AuthorizationStateAuthenticationPending

	// AuthorizationStateAuthenticated is the state of a request whose resource owner is known
	// and whose authentication satisfies the request's constraints.
	AuthorizationStateAuthenticated

	// AuthorizationStateConsentPending is the state of a request persisted while the user agent
	// is redirected towards the consent route.
	AuthorizationStateConsentPending

	// AuthorizationStateConsented is the state of a request whose consent decision has been
	// processed.
	AuthorizationStateConsented

	// AuthorizationStateResponded is the terminal state of a request whose response was written.
	AuthorizationStateResponded

	// AuthorizationStateErrored is the terminal state of a request which failed at any point of
	// its lifecycle.
	AuthorizationStateErrored
)

func (s AuthorizationState) String() string {
	switch s {
	case AuthorizationStateReceived:
		return "received"
	case AuthorizationStateValidated:
		return "validated"
	case AuthorizationStateAuthenticationPending:
		return "authentication_pending"
	case AuthorizationStateAuthenticated:
		return "authenticated"
	case AuthorizationStateConsentPending:
		return "consent_pending"
	case AuthorizationStateConsented:
		return "consented"
	case AuthorizationStateResponded:
		return "responded"
	case AuthorizationStateErrored:
		return "errored"
	default:
		return "unknown"
	}
}
