// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"hash"
	"html/template"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/oauth2-framework/authorization/i18n"
)

// AuthorizeCodeLifespanProvider returns the provider for configuring the authorization code lifespan.
type AuthorizeCodeLifespanProvider interface {
	// GetAuthorizeCodeLifespan returns the authorization code lifespan.
	GetAuthorizeCodeLifespan(ctx context.Context) time.Duration
}

// AccessTokenLifespanProvider returns the provider for configuring the access token lifespan.
type AccessTokenLifespanProvider interface {
	// GetAccessTokenLifespan returns the access token lifespan.
	GetAccessTokenLifespan(ctx context.Context) time.Duration
}

// IDTokenLifespanProvider returns the provider for configuring the ID token lifespan.
type IDTokenLifespanProvider interface {
	// GetIDTokenLifespan returns the ID token lifespan.
	GetIDTokenLifespan(ctx context.Context) time.Duration
}

// AuthorizationRequestLifespanProvider returns the provider for configuring how long an in-flight
// authorization request may be interrupted for login and consent interactions before it expires.
type AuthorizationRequestLifespanProvider interface {
	// GetAuthorizationRequestLifespan returns the in-flight authorization request lifespan.
	GetAuthorizationRequestLifespan(ctx context.Context) time.Duration
}

// IDTokenIssuerProvider returns the provider for configuring the ID token issuer.
type IDTokenIssuerProvider interface {
	// GetIDTokenIssuer returns the ID token issuer.
	GetIDTokenIssuer(ctx context.Context) (issuer string)
}

// AuthorizationServerIssuerIdentificationProvider provides OAuth 2.0 Authorization Server Issuer Identification related methods.
type AuthorizationServerIssuerIdentificationProvider interface {
	GetAuthorizationServerIdentificationIssuer(ctx context.Context) (issuer string)
}

// ScopeStrategyProvider returns the provider for configuring the scope strategy.
type ScopeStrategyProvider interface {
	// GetScopeStrategy returns the scope strategy.
	GetScopeStrategy(ctx context.Context) ScopeStrategy
}

// RedirectSecureCheckerProvider returns the provider for configuring the redirect URL security validator.
type RedirectSecureCheckerProvider interface {
	// GetRedirectSecureChecker returns the redirect URL security validator.
	GetRedirectSecureChecker(ctx context.Context) func(context.Context, *url.URL) bool
}

// AllowedPromptsProvider returns the provider for configuring the allowed prompts.
type AllowedPromptsProvider interface {
	// GetAllowedPrompts returns the allowed prompts.
	GetAllowedPrompts(ctx context.Context) (prompts []string)
}

// MinParameterEntropyProvider returns the provider for configuring the minimum parameter entropy.
type MinParameterEntropyProvider interface {
	// GetMinParameterEntropy returns the minimum parameter entropy.
	GetMinParameterEntropy(_ context.Context) (min int)
}

// EnforceStateParameterProvider returns the provider for configuring the state parameter enforcement.
type EnforceStateParameterProvider interface {
	// GetEnforceStateParameter returns true when every authorization request must carry the
	// 'state' parameter regardless of the requested response type.
	GetEnforceStateParameter(ctx context.Context) (enforce bool)
}

// SanitationAllowedProvider returns the provider for configuring the sanitation white list.
type SanitationAllowedProvider interface {
	// GetSanitationWhiteList is a whitelist of form values that are safe for storage in a
	// database (cleartext).
	GetSanitationWhiteList(ctx context.Context) (whitelist []string)
}

// OmitRedirectScopeParamProvider returns the provider for configuring the omit redirect scope param.
type OmitRedirectScopeParamProvider interface {
	// GetOmitRedirectScopeParam must be set to true if the scope query param is to be omitted
	// in the authorization's redirect URI
	GetOmitRedirectScopeParam(ctx context.Context) (omit bool)
}

// EnforcePKCEProvider returns the provider for configuring the enforcement of PKCE.
type EnforcePKCEProvider interface {
	// GetEnforcePKCE returns the enforcement of PKCE.
	GetEnforcePKCE(ctx context.Context) (enforce bool)
}

// EnforcePKCEForPublicClientsProvider returns the provider for configuring the enforcement of PKCE for public clients.
type EnforcePKCEForPublicClientsProvider interface {
	// GetEnforcePKCEForPublicClients returns the enforcement of PKCE for public clients.
	GetEnforcePKCEForPublicClients(ctx context.Context) (enforce bool)
}

// EnablePKCEPlainChallengeMethodProvider returns the provider for configuring the enable PKCE plain challenge method.
type EnablePKCEPlainChallengeMethodProvider interface {
	// GetEnablePKCEPlainChallengeMethod returns the enable PKCE plain challenge method.
	GetEnablePKCEPlainChallengeMethod(ctx context.Context) (enable bool)
}

// TokenEntropyProvider returns the provider for configuring the token entropy.
type TokenEntropyProvider interface {
	// GetTokenEntropy returns the token entropy.
	GetTokenEntropy(ctx context.Context) (entropy int)
}

// GlobalSecretProvider returns the provider for configuring the global secret.
type GlobalSecretProvider interface {
	// GetGlobalSecret returns the global secret.
	GetGlobalSecret(ctx context.Context) (secret []byte, err error)
}

// RotatedGlobalSecretsProvider returns the provider for configuring the rotated global secrets.
type RotatedGlobalSecretsProvider interface {
	// GetRotatedGlobalSecrets returns the rotated global secrets.
	GetRotatedGlobalSecrets(ctx context.Context) (secrets [][]byte, err error)
}

// HMACHashingProvider returns the provider for configuring the hash function.
type HMACHashingProvider interface {
	// GetHMACHasher returns the hash function.
	GetHMACHasher(ctx context.Context) func() (hasher hash.Hash)
}

// SendDebugMessagesToClientsProvider returns the provider for configuring the send debug messages to clients.
type SendDebugMessagesToClientsProvider interface {
	// GetSendDebugMessagesToClients returns the send debug messages to clients.
	GetSendDebugMessagesToClients(ctx context.Context) (send bool)
}

// UseLegacyErrorFormatProvider returns the provider for configuring whether to use the legacy error format.
//
// Deprecated: Do not use this flag anymore.
type UseLegacyErrorFormatProvider interface {
	// GetUseLegacyErrorFormat returns whether to use the legacy error format.
	//
	// Deprecated: Do not use this flag anymore.
	GetUseLegacyErrorFormat(ctx context.Context) (use bool)
}

// HTTPClientProvider returns the provider for configuring the HTTP client.
type HTTPClientProvider interface {
	// GetHTTPClient returns the HTTP client provider.
	GetHTTPClient(ctx context.Context) (client *retryablehttp.Client)
}

// MessageCatalogProvider returns the provider for configuring the message catalog.
type MessageCatalogProvider interface {
	// GetMessageCatalog returns the message catalog.
	GetMessageCatalog(ctx context.Context) (catalog i18n.MessageCatalog)
}

// FormPostHTMLTemplateProvider returns the provider for configuring the form post HTML template.
type FormPostHTMLTemplateProvider interface {
	// GetFormPostHTMLTemplate returns the form post HTML template.
	GetFormPostHTMLTemplate(ctx context.Context) (tmpl *template.Template)
}

// FormPostResponseProvider provides a writer interface for writing the form post responses.
type FormPostResponseProvider interface {
	// GetFormPostResponseWriter returns a FormPostResponseWriter which should be utilized for writing the
	// form post response type.
	GetFormPostResponseWriter(ctx context.Context) FormPostResponseWriter
}

// ResponseModeHandlerProvider returns the provider for configuring the response mode handlers.
type ResponseModeHandlerProvider interface {
	// GetResponseModeHandlers returns the response mode handlers in order of execution.
	GetResponseModeHandlers(ctx context.Context) (handlers ResponseModeHandlers)
}

// AuthorizeEndpointHandlersProvider returns the provider for configuring the authorize endpoint handlers.
type AuthorizeEndpointHandlersProvider interface {
	// GetAuthorizeEndpointHandlers returns the authorize endpoint handlers.
	GetAuthorizeEndpointHandlers(ctx context.Context) (handlers AuthorizeEndpointHandlers)
}

// ParameterCheckersProvider returns the provider for configuring the parameter checkers run
// against inbound authorization requests.
type ParameterCheckersProvider interface {
	// GetParameterCheckers returns the parameter checkers in order of execution.
	GetParameterCheckers(ctx context.Context) (checkers ParameterCheckers)
}

// HooksProvider returns the provider for configuring the authorization lifecycle hooks.
type HooksProvider interface {
	// GetHooks returns the authorization lifecycle hooks in order of execution.
	GetHooks(ctx context.Context) (hooks Hooks)
}

// UserAuthenticationCheckersProvider returns the provider for configuring the user authentication checkers.
type UserAuthenticationCheckersProvider interface {
	// GetUserAuthenticationCheckers returns the user authentication checkers in order of execution.
	GetUserAuthenticationCheckers(ctx context.Context) (checkers UserAuthenticationCheckers)
}

// InteractionRoutesProvider returns the provider for configuring the routes the authorization
// endpoint redirects interrupted requests to.
type InteractionRoutesProvider interface {
	// GetLoginRoute returns the route of the login user interface.
	GetLoginRoute(ctx context.Context) *url.URL

	// GetConsentRoute returns the route of the consent user interface.
	GetConsentRoute(ctx context.Context) *url.URL
}

// BrowserStateCookieConfigProvider is the configuration provider for the browser state cookie
// used by the session management extension.
type BrowserStateCookieConfigProvider interface {
	// GetBrowserStateCookieName returns the name of the cookie carrying the browser state.
	GetBrowserStateCookieName(ctx context.Context) string

	// GetBrowserStateCookiePath returns the path attribute of the browser state cookie.
	GetBrowserStateCookiePath(ctx context.Context) string

	// GetBrowserStateCookieDomain returns the domain attribute of the browser state cookie.
	GetBrowserStateCookieDomain(ctx context.Context) string

	// GetBrowserStateCookieSecure returns whether the browser state cookie requires a secure context.
	GetBrowserStateCookieSecure(ctx context.Context) bool

	// GetBrowserStateCookieHTTPOnly returns whether the browser state cookie is withheld from scripts.
	GetBrowserStateCookieHTTPOnly(ctx context.Context) bool

	// GetBrowserStateCookieSameSite returns the SameSite attribute of the browser state cookie.
	GetBrowserStateCookieSameSite(ctx context.Context) http.SameSite
}

// ClockConfigProvider is the configuration provider for clock functionality.
type ClockConfigProvider interface {
	// GetClock returns the configured ClockProvider.
	GetClock(ctx context.Context) ClockProvider
}
