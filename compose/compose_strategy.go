// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"github.com/go-jose/go-jose/v4"

	"github.com/oauth2-framework/authorization"
	hoauth2 "github.com/oauth2-framework/authorization/handler/oauth2"
	"github.com/oauth2-framework/authorization/handler/openid"
)

type CommonStrategy struct {
	hoauth2.CoreStrategy
	openid.OpenIDConnectTokenStrategy
}

type HMACSHAStrategyConfigurator interface {
	authorization.AccessTokenLifespanProvider
	authorization.AuthorizeCodeLifespanProvider
	authorization.TokenEntropyProvider
	authorization.GlobalSecretProvider
	authorization.RotatedGlobalSecretsProvider
	authorization.HMACHashingProvider
}

func NewOAuth2HMACStrategy(config HMACSHAStrategyConfigurator) *hoauth2.HMACCoreStrategy {
	return hoauth2.NewHMACCoreStrategy(config, "")
}

func NewOAuth2JWTStrategy(config JWTProfileStrategyConfigurator) *hoauth2.JWTProfileCoreStrategy {
	return hoauth2.NewJWTProfileCoreStrategy(config, "")
}

type JWTProfileStrategyConfigurator interface {
	HMACSHAStrategyConfigurator
	authorization.IDTokenIssuerProvider
}

func NewOpenIDConnectStrategy(key *jose.JSONWebKey, config authorization.IDTokenIssuerProvider) *openid.DefaultJOSEStrategy {
	return &openid.DefaultJOSEStrategy{
		SigningKey: key,
		Config:     config,
	}
}
