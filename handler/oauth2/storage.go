// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2

import (
	"context"

	"github.com/oauth2-framework/authorization"
)

type CoreStorage interface {
	AuthorizeCodeStorage
	AccessTokenStorage
}

// AuthorizeCodeStorage handles storage requests related to authorization codes.
type AuthorizeCodeStorage interface {
	// CreateAuthorizeCodeSession stores the authorization request for a given authorization code.
	CreateAuthorizeCodeSession(ctx context.Context, signature string, requester authorization.Requester) (err error)

	// GetAuthorizeCodeSession hydrates the session based on the given code and returns the authorization request.
	// If the authorization code has been invalidated with `InvalidateAuthorizeCodeSession`, this
	// method should return the authorization.ErrInvalidatedAuthorizeCode error together with the
	// stored requester.
	GetAuthorizeCodeSession(ctx context.Context, signature string) (requester authorization.Requester, err error)

	// InvalidateAuthorizeCodeSession is called when an authorize code is being used. The state of the authorization
	// code should be set to invalid and consecutive requests to GetAuthorizeCodeSession should return the
	// ErrInvalidatedAuthorizeCode error.
	InvalidateAuthorizeCodeSession(ctx context.Context, signature string) (err error)
}

// AccessTokenStorage handles storage requests related to access tokens.
type AccessTokenStorage interface {
	CreateAccessTokenSession(ctx context.Context, signature string, requester authorization.Requester) (err error)

	GetAccessTokenSession(ctx context.Context, signature string) (requester authorization.Requester, err error)

	DeleteAccessTokenSession(ctx context.Context, signature string) (err error)
}
