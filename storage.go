// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
)

// Storage defines the persistence the authorization endpoint depends on.
type Storage interface {
	ClientManager

	AuthorizationRequestStorage
}

// ClientManager loads registered clients.
type ClientManager interface {
	// GetClient loads the client by its ID or returns an error if the client does not exist.
	GetClient(ctx context.Context, id string) (Client, error)
}

// AuthorizationRequestStorage persists in-flight authorization requests across the login and
// consent interruptions. Stored requests are bounded by the configured authorization request
// lifespan and a request which outlived it is treated as if it never existed.
type AuthorizationRequestStorage interface {
	// CreateAuthorizationRequestSession persists the request under its ID.
	CreateAuthorizationRequestSession(ctx context.Context, requester AuthorizeRequester) error

	// GetAuthorizationRequestSession returns the request stored under the given ID, or
	// ErrNotFound when no such request exists or it outlived its lifespan.
	GetAuthorizationRequestSession(ctx context.Context, id string) (AuthorizeRequester, error)

	// UpdateAuthorizationRequestSession replaces the request stored under the requester's ID.
	UpdateAuthorizationRequestSession(ctx context.Context, requester AuthorizeRequester) error

	// DeleteAuthorizationRequestSession removes the request stored under the given ID. Completed
	// requests are removed before their response is written so they cannot be replayed.
	DeleteAuthorizationRequestSession(ctx context.Context, id string) error
}
