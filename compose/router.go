// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/oauth2-framework/authorization"
)

const (
	// AuthorizePath is the default route of the authorization endpoint.
	AuthorizePath = "/oauth2/auth"

	// AuthorizeResumePath is the default route interaction pages redirect back to after login or
	// consent completed.
	AuthorizeResumePath = "/oauth2/auth/resume"
)

// NewAuthorizationEndpoint assembles an AuthorizationEndpoint from a composed provider. The consent
// repository backs the default consent strategy and the login and consent routes come from the
// config.
func NewAuthorizationEndpoint(config *authorization.Config, provider authorization.AuthorizationProvider, storage any, accounts authorization.UserAccountDiscovery, consents authorization.ConsentRepository) *authorization.AuthorizationEndpoint {
	return authorization.NewAuthorizationEndpoint(
		provider,
		storage.(authorization.Storage),
		accounts,
		&authorization.ConsentStrategy{
			Repository: consents,
			Config:     config,
		},
		&authorization.DefaultRouteResolver{
			Config: config,
		},
		config,
	)
}

// RegisterAuthorizationRoutes mounts the authorization endpoint and its resume route on the given
// router under the default paths.
func RegisterAuthorizationRoutes(router *mux.Router, endpoint *authorization.AuthorizationEndpoint) {
	router.HandleFunc(AuthorizePath, endpoint.Authorize).Methods(http.MethodGet, http.MethodPost)
	router.HandleFunc(AuthorizeResumePath, endpoint.Resume).Methods(http.MethodGet, http.MethodPost)
}

// NewAuthorizationRouter builds a router serving the authorization endpoint under the default
// paths.
func NewAuthorizationRouter(config *authorization.Config, provider authorization.AuthorizationProvider, storage any, accounts authorization.UserAccountDiscovery, consents authorization.ConsentRepository) *mux.Router {
	router := mux.NewRouter()

	RegisterAuthorizationRoutes(router, NewAuthorizationEndpoint(config, provider, storage, accounts, consents))

	return router
}
