// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"net/http"
	"time"
)

// UserAccount represents the resource owner of an authorization request.
type UserAccount interface {
	// GetSubject returns the stable identifier of the resource owner, used as the 'sub' claim.
	GetSubject() string

	// GetUsername returns the human readable name of the resource owner.
	GetUsername() string

	// GetAuthenticatedAt returns the time the resource owner last actively authenticated with
	// the authorization server.
	GetAuthenticatedAt() time.Time
}

// UserAccountDiscovery resolves the resource owner attached to the inbound user agent, typically
// by inspecting its authentication cookie. Implementations return nil without error when no
// resource owner is currently authenticated.
type UserAccountDiscovery interface {
	DiscoverAccount(ctx context.Context, r *http.Request, requester AuthorizeRequester) (UserAccount, error)
}

// UserAccountDiscoveryFunc adapts a plain function to the UserAccountDiscovery interface.
type UserAccountDiscoveryFunc func(ctx context.Context, r *http.Request, requester AuthorizeRequester) (UserAccount, error)

func (f UserAccountDiscoveryFunc) DiscoverAccount(ctx context.Context, r *http.Request, requester AuthorizeRequester) (UserAccount, error) {
	return f(ctx, r, requester)
}

// DefaultUserAccount is a simple default implementation of the UserAccount interface.
type DefaultUserAccount struct {
	Subject         string         `json:"subject"`
	Username        string         `json:"username"`
	AuthenticatedAt time.Time      `json:"authenticatedAt"`
	Extra           map[string]any `json:"extra,omitempty"`
}

func (a *DefaultUserAccount) GetSubject() string {
	return a.Subject
}

func (a *DefaultUserAccount) GetUsername() string {
	return a.Username
}

func (a *DefaultUserAccount) GetAuthenticatedAt() time.Time {
	return a.AuthenticatedAt
}

var _ UserAccount = (*DefaultUserAccount)(nil)
