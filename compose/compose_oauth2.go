// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"github.com/oauth2-framework/authorization"
	hoauth2 "github.com/oauth2-framework/authorization/handler/oauth2"
)

// OAuth2AuthorizeExplicitFactory creates an OAuth2 authorize code grant ("authorize explicit flow") handler.
func OAuth2AuthorizeExplicitFactory(config authorization.Configurator, storage any, strategy any) any {
	return &hoauth2.AuthorizeExplicitGrantHandler{
		AuthorizeCodeStrategy: strategy.(hoauth2.AuthorizeCodeStrategy),
		CoreStorage:           storage.(hoauth2.CoreStorage),
		Config:                config,
	}
}

// OAuth2NoneResponseTypeFactory creates a handler for the 'none' response type.
func OAuth2NoneResponseTypeFactory(config authorization.Configurator, storage any, strategy any) any {
	return &hoauth2.NoneResponseTypeHandler{
		Config: config,
	}
}

// OAuth2AuthorizeImplicitFactory creates an OAuth2 implicit grant ("authorize implicit flow") handler.
func OAuth2AuthorizeImplicitFactory(config authorization.Configurator, storage any, strategy any) any {
	return &hoauth2.AuthorizeImplicitGrantTypeHandler{
		AccessTokenStrategy: strategy.(hoauth2.AccessTokenStrategy),
		AccessTokenStorage:  storage.(hoauth2.AccessTokenStorage),
		Config:              config,
	}
}
