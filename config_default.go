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

const (
	defaultAuthorizationRequestLifespan = 30 * time.Minute
	defaultBrowserStateCookieName       = "oauth2_browser_state"
)

type Config struct {
	// AccessTokenLifespan sets how long an access token issued from the implicit flow is going to
	// be valid. Defaults to one hour.
	AccessTokenLifespan time.Duration

	// AuthorizeCodeLifespan sets how long an authorize code is going to be valid. Defaults to ten minutes.
	AuthorizeCodeLifespan time.Duration

	// IDTokenLifespan sets the default id token lifetime. Defaults to one hour.
	IDTokenLifespan time.Duration

	// AuthorizationRequestLifespan sets how long an authorization request may sit interrupted for
	// login and consent interactions before it expires. Defaults to thirty minutes.
	AuthorizationRequestLifespan time.Duration

	// IDTokenIssuer sets the default issuer of the ID Token.
	IDTokenIssuer string

	// AuthorizationServerIdentificationIssuer string sets the issuer identifier for authorization responses (RFC9207).
	AuthorizationServerIdentificationIssuer string

	// SendDebugMessagesToClients if set to true, includes error debug messages in response payloads. Be aware that
	// sensitive data may be exposed, depending on your implementation. Such sensitive data might include database
	// error codes or other information. Proceed with caution!
	SendDebugMessagesToClients bool

	// ScopeStrategy sets the scope strategy that should be supported, for example authorization.WildcardScopeStrategy.
	ScopeStrategy ScopeStrategy

	// EnforcePKCE, if set to true, requires clients to perform authorize code flows with PKCE. Defaults to false.
	EnforcePKCE bool

	// EnforcePKCEForPublicClients requires only public clients to use PKCE with the authorize code flow. Defaults to false.
	EnforcePKCEForPublicClients bool

	// EnablePKCEPlainChallengeMethod sets whether or not to allow the plain challenge method (S256 should be used whenever possible, plain is really discouraged). Defaults to false.
	EnablePKCEPlainChallengeMethod bool

	// EnforceStateParameter, if set to true, requires every authorization request to carry the 'state'
	// parameter. Defaults to false.
	EnforceStateParameter bool

	// AllowedPromptValues sets which OpenID Connect prompt values the server supports. Defaults to []string{"login", "none", "consent", "select_account"}.
	AllowedPromptValues []string

	// TokenEntropy indicates the entropy of the random string, used as the "message" part of the HMAC token.
	// Defaults to 32.
	TokenEntropy int

	// RedirectSecureChecker is a function that returns true if the provided URL can be securely used as a redirect URL.
	RedirectSecureChecker func(context.Context, *url.URL) bool

	// MinParameterEntropy controls the minimum size of state and nonce parameters. Defaults to authorization.MinParameterEntropy.
	MinParameterEntropy int

	// UseLegacyErrorFormat controls whether the legacy error format (with `error_debug`, `error_hint`, ...)
	// should be used or not.
	UseLegacyErrorFormat bool

	// ResponseModeHandlers provides the handlers for performing response mode formatting.
	ResponseModeHandlers ResponseModeHandlers

	// MessageCatalog is the message bundle used for i18n
	MessageCatalog i18n.MessageCatalog

	// FormPostHTMLTemplate sets html template for rendering the authorization response when the request has response_mode=form_post.
	FormPostHTMLTemplate *template.Template

	// FormPostResponseWriter is the FormPostResponseWriter used for writing the form post response. Useful for
	// overwriting the behaviour of this element.
	FormPostResponseWriter FormPostResponseWriter

	// OmitRedirectScopeParam indicates whether the "scope" parameter should be omitted from the redirect URL.
	OmitRedirectScopeParam bool

	// SanitationWhiteList is a whitelist of form values that are safe for storage in a database (cleartext).
	SanitationWhiteList []string

	// HTTPClient is the HTTP client to use for requests, such as resolving a 'request_uri' parameter.
	HTTPClient *retryablehttp.Client

	// AuthorizeEndpointHandlers is a list of handlers that produce the authorization response.
	AuthorizeEndpointHandlers AuthorizeEndpointHandlers

	// ParameterCheckers is a list of checkers that validate the parameters of inbound
	// authorization requests in order of their priority.
	ParameterCheckers ParameterCheckers

	// Hooks is a list of hooks that extend the authorization request lifecycle.
	Hooks Hooks

	// UserAuthenticationCheckers is a list of checkers deciding whether an authenticated resource
	// owner satisfies the authentication constraints of a request.
	UserAuthenticationCheckers UserAuthenticationCheckers

	// LoginRoute is the route of the login user interface interrupted requests redirect to.
	LoginRoute *url.URL

	// ConsentRoute is the route of the consent user interface interrupted requests redirect to.
	ConsentRoute *url.URL

	// BrowserStateCookieName is the name of the cookie carrying the browser state used by the
	// session management extension. Defaults to "oauth2_browser_state".
	BrowserStateCookieName string

	// BrowserStateCookiePath is the path attribute of the browser state cookie. Defaults to "/".
	BrowserStateCookiePath string

	// BrowserStateCookieDomain is the domain attribute of the browser state cookie.
	BrowserStateCookieDomain string

	// BrowserStateCookieSecure indicates whether the browser state cookie requires a secure context.
	BrowserStateCookieSecure bool

	// BrowserStateCookieHTTPOnly indicates whether the browser state cookie is withheld from
	// scripts. The session management check iframe reads the cookie from script so this stays off
	// unless the deployment serves its own check mechanism.
	BrowserStateCookieHTTPOnly bool

	// BrowserStateCookieSameSite is the SameSite attribute of the browser state cookie. Defaults
	// to http.SameSiteNoneMode so the cookie travels on cross-site navigations to the
	// authorization endpoint.
	BrowserStateCookieSameSite http.SameSite

	// GlobalSecret is the global secret used to sign and verify signatures.
	GlobalSecret []byte

	// RotatedGlobalSecrets is a list of global secrets that are used to verify signatures.
	RotatedGlobalSecrets [][]byte

	// HMACHasher is the hasher used to generate HMAC signatures.
	HMACHasher func() hash.Hash

	// Clock provides the time source. Defaults to the real clock.
	Clock ClockProvider
}

func (c *Config) GetGlobalSecret(ctx context.Context) ([]byte, error) {
	return c.GlobalSecret, nil
}

func (c *Config) GetUseLegacyErrorFormat(ctx context.Context) bool {
	return c.UseLegacyErrorFormat
}

func (c *Config) GetRotatedGlobalSecrets(ctx context.Context) ([][]byte, error) {
	return c.RotatedGlobalSecrets, nil
}

func (c *Config) GetHMACHasher(ctx context.Context) func() hash.Hash {
	return c.HMACHasher
}

func (c *Config) GetAuthorizeEndpointHandlers(ctx context.Context) AuthorizeEndpointHandlers {
	return c.AuthorizeEndpointHandlers
}

func (c *Config) GetParameterCheckers(ctx context.Context) ParameterCheckers {
	if len(c.ParameterCheckers) == 0 {
		for _, checker := range []ParameterChecker{
			RedirectURIChecker{},
			&StateChecker{Config: c},
			ResponseTypeChecker{},
			ResponseModeChecker{},
			&ScopeChecker{Config: c},
			&NonceChecker{Config: c},
			&PromptChecker{Config: c},
			MaxAgeChecker{},
			&PKCEChecker{Config: c},
		} {
			c.ParameterCheckers.Append(checker)
		}
	}

	return c.ParameterCheckers
}

func (c *Config) GetHooks(ctx context.Context) Hooks {
	return c.Hooks
}

func (c *Config) GetUserAuthenticationCheckers(ctx context.Context) UserAuthenticationCheckers {
	if len(c.UserAuthenticationCheckers) == 0 {
		c.UserAuthenticationCheckers = UserAuthenticationCheckers{
			&MaxAgeAuthenticationChecker{Config: c},
			PromptLoginAuthenticationChecker{},
		}
	}

	return c.UserAuthenticationCheckers
}

func (c *Config) GetHTTPClient(ctx context.Context) *retryablehttp.Client {
	if c.HTTPClient == nil {
		return retryablehttp.NewClient()
	}

	return c.HTTPClient
}

func (c *Config) GetFormPostHTMLTemplate(ctx context.Context) *template.Template {
	return c.FormPostHTMLTemplate
}

func (c *Config) GetFormPostResponseWriter(ctx context.Context) FormPostResponseWriter {
	if c.FormPostResponseWriter == nil {
		c.FormPostResponseWriter = DefaultFormPostResponseWriter
	}

	return c.FormPostResponseWriter
}

func (c *Config) GetMessageCatalog(ctx context.Context) i18n.MessageCatalog {
	return c.MessageCatalog
}

func (c *Config) GetResponseModeHandlers(ctx context.Context) ResponseModeHandlers {
	if len(c.ResponseModeHandlers) == 0 {
		c.ResponseModeHandlers = []ResponseModeHandler{&DefaultResponseModeHandler{Config: c}}
	}

	return c.ResponseModeHandlers
}

func (c *Config) GetSendDebugMessagesToClients(ctx context.Context) bool {
	return c.SendDebugMessagesToClients
}

func (c *Config) GetIDTokenIssuer(ctx context.Context) string {
	return c.IDTokenIssuer
}

func (c *Config) GetAuthorizationServerIdentificationIssuer(ctx context.Context) (issuer string) {
	return c.AuthorizationServerIdentificationIssuer
}

// GetEnforcePKCE If set to true, public clients must use PKCE.
func (c *Config) GetEnforcePKCE(ctx context.Context) bool {
	return c.EnforcePKCE
}

// GetEnablePKCEPlainChallengeMethod returns whether or not to allow the plain challenge method (S256 should be used whenever possible, plain is really discouraged).
func (c *Config) GetEnablePKCEPlainChallengeMethod(ctx context.Context) bool {
	return c.EnablePKCEPlainChallengeMethod
}

// GetEnforcePKCEForPublicClients returns the value of EnforcePKCEForPublicClients.
func (c *Config) GetEnforcePKCEForPublicClients(ctx context.Context) bool {
	return c.EnforcePKCEForPublicClients
}

func (c *Config) GetEnforceStateParameter(ctx context.Context) bool {
	return c.EnforceStateParameter
}

// GetSanitationWhiteList returns a list of form values that are safe for storage in a
// database (cleartext).
func (c *Config) GetSanitationWhiteList(ctx context.Context) []string {
	return c.SanitationWhiteList
}

func (c *Config) GetOmitRedirectScopeParam(ctx context.Context) bool {
	return c.OmitRedirectScopeParam
}

func (c *Config) GetAllowedPrompts(_ context.Context) []string {
	if len(c.AllowedPromptValues) == 0 {
		return []string{"login", "none", "consent", "select_account"}
	}

	return c.AllowedPromptValues
}

// GetScopeStrategy returns the scope strategy to be used. Defaults to glob scope strategy.
func (c *Config) GetScopeStrategy(_ context.Context) ScopeStrategy {
	if c.ScopeStrategy == nil {
		c.ScopeStrategy = WildcardScopeStrategy
	}

	return c.ScopeStrategy
}

// GetAuthorizeCodeLifespan returns how long an authorize code should be valid. Defaults to ten minutes.
func (c *Config) GetAuthorizeCodeLifespan(_ context.Context) time.Duration {
	if c.AuthorizeCodeLifespan == 0 {
		return time.Minute * 10
	}

	return c.AuthorizeCodeLifespan
}

// GetIDTokenLifespan returns how long an id token should be valid. Defaults to one hour.
func (c *Config) GetIDTokenLifespan(_ context.Context) time.Duration {
	if c.IDTokenLifespan == 0 {
		return time.Hour
	}

	return c.IDTokenLifespan
}

// GetAccessTokenLifespan returns how long an access token should be valid. Defaults to one hour.
func (c *Config) GetAccessTokenLifespan(_ context.Context) time.Duration {
	if c.AccessTokenLifespan == 0 {
		return time.Hour
	}

	return c.AccessTokenLifespan
}

// GetAuthorizationRequestLifespan returns how long an interrupted authorization request should
// stay resumable. Defaults to thirty minutes.
func (c *Config) GetAuthorizationRequestLifespan(_ context.Context) time.Duration {
	if c.AuthorizationRequestLifespan == 0 {
		return defaultAuthorizationRequestLifespan
	}

	return c.AuthorizationRequestLifespan
}

// GetTokenEntropy returns the entropy of the "message" part of a HMAC Token. Defaults to 32.
func (c *Config) GetTokenEntropy(_ context.Context) int {
	if c.TokenEntropy == 0 {
		return 32
	}

	return c.TokenEntropy
}

// GetRedirectSecureChecker returns the checker to check if redirect URI is secure. Defaults to authorization.IsRedirectURISecure.
func (c *Config) GetRedirectSecureChecker(_ context.Context) func(context.Context, *url.URL) bool {
	if c.RedirectSecureChecker == nil {
		return IsRedirectURISecure
	}

	return c.RedirectSecureChecker
}

// GetMinParameterEntropy returns MinParameterEntropy if set. Defaults to authorization.MinParameterEntropy.
func (c *Config) GetMinParameterEntropy(_ context.Context) int {
	if c.MinParameterEntropy == 0 {
		return MinParameterEntropy
	}

	return c.MinParameterEntropy
}

func (c *Config) GetLoginRoute(ctx context.Context) *url.URL {
	return c.LoginRoute
}

func (c *Config) GetConsentRoute(ctx context.Context) *url.URL {
	return c.ConsentRoute
}

func (c *Config) GetBrowserStateCookieName(ctx context.Context) string {
	if c.BrowserStateCookieName == "" {
		return defaultBrowserStateCookieName
	}

	return c.BrowserStateCookieName
}

func (c *Config) GetBrowserStateCookiePath(ctx context.Context) string {
	if c.BrowserStateCookiePath == "" {
		return "/"
	}

	return c.BrowserStateCookiePath
}

func (c *Config) GetBrowserStateCookieDomain(ctx context.Context) string {
	return c.BrowserStateCookieDomain
}

func (c *Config) GetBrowserStateCookieSecure(ctx context.Context) bool {
	return c.BrowserStateCookieSecure
}

func (c *Config) GetBrowserStateCookieHTTPOnly(ctx context.Context) bool {
	return c.BrowserStateCookieHTTPOnly
}

func (c *Config) GetBrowserStateCookieSameSite(ctx context.Context) http.SameSite {
	if c.BrowserStateCookieSameSite == 0 {
		return http.SameSiteNoneMode
	}

	return c.BrowserStateCookieSameSite
}

// GetClock returns the configured clock. Defaults to the real clock.
func (c *Config) GetClock(_ context.Context) ClockProvider {
	if c.Clock == nil {
		c.Clock = NewRealClock()
	}

	return c.Clock
}

var (
	_ AuthorizeCodeLifespanProvider                   = (*Config)(nil)
	_ AccessTokenLifespanProvider                     = (*Config)(nil)
	_ IDTokenLifespanProvider                         = (*Config)(nil)
	_ AuthorizationRequestLifespanProvider            = (*Config)(nil)
	_ IDTokenIssuerProvider                           = (*Config)(nil)
	_ AuthorizationServerIssuerIdentificationProvider = (*Config)(nil)
	_ ScopeStrategyProvider                           = (*Config)(nil)
	_ RedirectSecureCheckerProvider                   = (*Config)(nil)
	_ AllowedPromptsProvider                          = (*Config)(nil)
	_ OmitRedirectScopeParamProvider                  = (*Config)(nil)
	_ MinParameterEntropyProvider                     = (*Config)(nil)
	_ EnforceStateParameterProvider                   = (*Config)(nil)
	_ SanitationAllowedProvider                       = (*Config)(nil)
	_ EnforcePKCEProvider                             = (*Config)(nil)
	_ EnforcePKCEForPublicClientsProvider             = (*Config)(nil)
	_ EnablePKCEPlainChallengeMethodProvider          = (*Config)(nil)
	_ TokenEntropyProvider                            = (*Config)(nil)
	_ GlobalSecretProvider                            = (*Config)(nil)
	_ RotatedGlobalSecretsProvider                    = (*Config)(nil)
	_ HMACHashingProvider                             = (*Config)(nil)
	_ SendDebugMessagesToClientsProvider              = (*Config)(nil)
	_ UseLegacyErrorFormatProvider                    = (*Config)(nil)
	_ HTTPClientProvider                              = (*Config)(nil)
	_ MessageCatalogProvider                          = (*Config)(nil)
	_ FormPostHTMLTemplateProvider                    = (*Config)(nil)
	_ FormPostResponseProvider                        = (*Config)(nil)
	_ ResponseModeHandlerProvider                     = (*Config)(nil)
	_ AuthorizeEndpointHandlersProvider               = (*Config)(nil)
	_ ParameterCheckersProvider                       = (*Config)(nil)
	_ HooksProvider                                   = (*Config)(nil)
	_ UserAuthenticationCheckersProvider              = (*Config)(nil)
	_ InteractionRoutesProvider                       = (*Config)(nil)
	_ BrowserStateCookieConfigProvider                = (*Config)(nil)
	_ ClockConfigProvider                             = (*Config)(nil)
)
