// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	jose "github.com/go-jose/go-jose/v4"
)

// Client represents a registered OAuth 2.0 client.
type Client interface {
	// GetID returns the client ID.
	GetID() string

	// GetRedirectURIs returns the client's allowed redirect URIs.
	GetRedirectURIs() []string

	// GetResponseTypes returns the client's allowed response types.
	GetResponseTypes() Arguments

	// GetScopes returns the scopes this client is allowed to request.
	GetScopes() Arguments

	// IsPublic returns true if the client has no confidential means of authenticating itself.
	IsPublic() bool
}

// ResponseModeClient represents a client capable of handling response modes.
type ResponseModeClient interface {
	// GetResponseModes returns the response modes this client is allowed to request.
	GetResponseModes() []ResponseModeType

	Client
}

// ConsentSkippingClient represents a first-party client trusted enough to bypass the consent
// interaction entirely.
type ConsentSkippingClient interface {
	// GetSkipsConsent returns true if the consent screen should never be shown for this client.
	GetSkipsConsent() bool

	Client
}

// RequestObjectClient represents a client capable of the OpenID Connect request and request_uri parameters.
type RequestObjectClient interface {
	// GetRequestURIs is an array of request_uri values that are pre-registered by the RP for use at the OP.
	// Servers MAY cache the contents of the files referenced by these URIs and not retrieve them at the time
	// they are used in a request.
	GetRequestURIs() []string

	// GetJSONWebKeys returns the JSON Web Key Set containing the public key used by the client to
	// sign request objects.
	GetJSONWebKeys() *jose.JSONWebKeySet

	// GetJSONWebKeysURI returns the URL for lookup of JSON Web Key Set containing the public key used
	// by the client to sign request objects.
	GetJSONWebKeysURI() string

	// GetRequestObjectSigningAlg returns the JWS alg algorithm that MUST be used for signing Request
	// Objects sent to the OP.
	GetRequestObjectSigningAlg() string

	Client
}

// DefaultClient is a simple default implementation of the Client interface.
type DefaultClient struct {
	ID            string   `json:"id"`
	RedirectURIs  []string `json:"redirect_uris"`
	ResponseTypes []string `json:"response_types"`
	Scopes        []string `json:"scopes"`
	Public        bool     `json:"public"`
	SkipsConsent  bool     `json:"skips_consent"`
}

// DefaultResponseModeClient is a simple default implementation of the ResponseModeClient interface.
type DefaultResponseModeClient struct {
	*DefaultClient

	ResponseModes []ResponseModeType `json:"response_modes"`
}

// DefaultRequestObjectClient is a simple default implementation of the RequestObjectClient interface.
type DefaultRequestObjectClient struct {
	*DefaultClient

	JSONWebKeysURI          string              `json:"jwks_uri"`
	JSONWebKeys             *jose.JSONWebKeySet `json:"jwks"`
	RequestURIs             []string            `json:"request_uris"`
	RequestObjectSigningAlg string              `json:"request_object_signing_alg"`
}

func (c *DefaultClient) GetID() string {
	return c.ID
}

func (c *DefaultClient) GetRedirectURIs() []string {
	return c.RedirectURIs
}

func (c *DefaultClient) GetResponseTypes() Arguments {
	if len(c.ResponseTypes) == 0 {
		return Arguments{"code"}
	}

	return Arguments(c.ResponseTypes)
}

func (c *DefaultClient) GetScopes() Arguments {
	return Arguments(c.Scopes)
}

func (c *DefaultClient) IsPublic() bool {
	return c.Public
}

func (c *DefaultClient) GetSkipsConsent() bool {
	return c.SkipsConsent
}

func (c *DefaultResponseModeClient) GetResponseModes() []ResponseModeType {
	return c.ResponseModes
}

func (c *DefaultRequestObjectClient) GetRequestURIs() []string {
	return c.RequestURIs
}

func (c *DefaultRequestObjectClient) GetJSONWebKeys() *jose.JSONWebKeySet {
	return c.JSONWebKeys
}

func (c *DefaultRequestObjectClient) GetJSONWebKeysURI() string {
	return c.JSONWebKeysURI
}

func (c *DefaultRequestObjectClient) GetRequestObjectSigningAlg() string {
	return c.RequestObjectSigningAlg
}

var (
	_ Client                = (*DefaultClient)(nil)
	_ ConsentSkippingClient = (*DefaultClient)(nil)
	_ ResponseModeClient    = (*DefaultResponseModeClient)(nil)
	_ RequestObjectClient   = (*DefaultRequestObjectClient)(nil)
)
