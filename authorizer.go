// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"reflect"
)

const MinParameterEntropy = 8

// ResponseModeHandlers is a list of ResponseModeHandler.
type ResponseModeHandlers []ResponseModeHandler

// Append adds an ResponseModeHandler to this list. Ignores duplicates based on reflect.TypeOf.
func (a *ResponseModeHandlers) Append(h ResponseModeHandler) {
	for _, this := range *a {
		if reflect.TypeOf(this) == reflect.TypeOf(h) {
			return
		}
	}

	*a = append(*a, h)
}

// AuthorizeEndpointHandlers is a list of AuthorizeEndpointHandler
type AuthorizeEndpointHandlers []AuthorizeEndpointHandler

// Append adds an AuthorizeEndpointHandler to this list. Ignores duplicates based on reflect.TypeOf.
func (a *AuthorizeEndpointHandlers) Append(h AuthorizeEndpointHandler) {
	for _, this := range *a {
		if reflect.TypeOf(this) == reflect.TypeOf(h) {
			return
		}
	}

	*a = append(*a, h)
}

// ParameterCheckers is a list of ParameterChecker ordered by priority.
type ParameterCheckers []ParameterChecker

// Append adds a ParameterChecker to this list keeping it ordered by priority. Ignores duplicates
// based on reflect.TypeOf.
func (a *ParameterCheckers) Append(checker ParameterChecker) {
	for _, this := range *a {
		if reflect.TypeOf(this) == reflect.TypeOf(checker) {
			return
		}
	}

	for i, this := range *a {
		if checker.Priority() < this.Priority() {
			*a = append((*a)[:i], append(ParameterCheckers{checker}, (*a)[i:]...)...)
			return
		}
	}

	*a = append(*a, checker)
}

// Configurator aggregates every configuration provider consumed by the authorization endpoint.
type Configurator interface {
	IDTokenIssuerProvider
	IDTokenLifespanProvider
	AuthorizationServerIssuerIdentificationProvider
	AllowedPromptsProvider
	EnforcePKCEProvider
	EnforcePKCEForPublicClientsProvider
	EnablePKCEPlainChallengeMethodProvider
	EnforceStateParameterProvider
	ScopeStrategyProvider
	RedirectSecureCheckerProvider
	OmitRedirectScopeParamProvider
	SanitationAllowedProvider
	AccessTokenLifespanProvider
	AuthorizeCodeLifespanProvider
	AuthorizationRequestLifespanProvider
	TokenEntropyProvider
	RotatedGlobalSecretsProvider
	GlobalSecretProvider
	HTTPClientProvider
	MinParameterEntropyProvider
	HMACHashingProvider
	ResponseModeHandlerProvider
	SendDebugMessagesToClientsProvider
	MessageCatalogProvider
	FormPostHTMLTemplateProvider
	FormPostResponseProvider
	AuthorizeEndpointHandlersProvider
	ParameterCheckersProvider
	HooksProvider
	UserAuthenticationCheckersProvider
	InteractionRoutesProvider
	BrowserStateCookieConfigProvider
	UseLegacyErrorFormatProvider
	ClockConfigProvider
}

func New(store Storage, config Configurator) *Authorizer {
	return &Authorizer{Store: store, Config: config}
}

// Authorizer implements AuthorizationProvider.
type Authorizer struct {
	Store Storage

	Config Configurator
}

// GetMinParameterEntropy returns MinParameterEntropy if set. Defaults to authorization.MinParameterEntropy.
func (f *Authorizer) GetMinParameterEntropy(ctx context.Context) int {
	if mp := f.Config.GetMinParameterEntropy(ctx); mp > 0 {
		return mp
	}

	return MinParameterEntropy
}

// ResponseModeHandlers returns the configured ResponseModeHandler implementations for this instance.
func (f *Authorizer) ResponseModeHandlers(ctx context.Context) []ResponseModeHandler {
	return f.Config.GetResponseModeHandlers(ctx)
}

var (
	_ AuthorizationProvider = (*Authorizer)(nil)
)
