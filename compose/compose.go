// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"github.com/go-jose/go-jose/v4"

	"github.com/oauth2-framework/authorization"
)

type Factory func(config authorization.Configurator, storage any, strategy any) any

// Compose takes a config, a storage, a strategy and factories to instantiate an AuthorizationProvider:
//
//	 import "github.com/oauth2-framework/authorization/compose"
//
//	 // var storage = new(MyStorage)
//	 var config = Config {
//	 	AuthorizeCodeLifespan: time.Minute * 10,
//			// check Config for further configuration options
//	 }
//
//	 var strategy = NewOAuth2HMACStrategy(config)
//
//	 var provider = Compose(
//	 	config,
//			storage,
//			strategy,
//			OAuth2AuthorizeExplicitFactory,
//			OAuth2AuthorizeImplicitFactory,
//			// for a complete list refer to the docs of this package
//	 )
//
// Compose makes use of any types in order to be able to handle all types of stores, strategies and handlers.
func Compose(config *authorization.Config, storage any, strategy any, factories ...Factory) authorization.AuthorizationProvider {
	f := authorization.New(storage.(authorization.Storage), config)

	for _, factory := range factories {
		res := factory(config, storage, strategy)

		if ah, ok := res.(authorization.AuthorizeEndpointHandler); ok {
			config.AuthorizeEndpointHandlers.Append(ah)
		}

		if pc, ok := res.(authorization.ParameterChecker); ok {
			config.ParameterCheckers.Append(pc)
		}

		if hook, ok := res.(authorization.Hook); ok {
			config.Hooks.Append(hook)
		}
	}

	return f
}

// ComposeAllEnabled returns an AuthorizationProvider with all OAuth2 and OpenID Connect
// authorize handlers enabled. The key is used to sign ID Tokens.
func ComposeAllEnabled(config *authorization.Config, storage any, key *jose.JSONWebKey) authorization.AuthorizationProvider {
	return Compose(
		config,
		storage,
		&CommonStrategy{
			CoreStrategy:               NewOAuth2HMACStrategy(config),
			OpenIDConnectTokenStrategy: NewOpenIDConnectStrategy(key, config),
		},
		OAuth2AuthorizeExplicitFactory,
		OAuth2AuthorizeImplicitFactory,
		OAuth2NoneResponseTypeFactory,

		OpenIDConnectExplicitFactory,
		OpenIDConnectImplicitFactory,
		OpenIDConnectHybridFactory,

		SessionStateHookFactory,
	)
}
