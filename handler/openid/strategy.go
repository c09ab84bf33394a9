// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package openid

import (
	"context"
	"time"

	"github.com/oauth2-framework/authorization"
)

// OpenIDConnectTokenStrategy mints ID Tokens for an authorization request. The extra claims are
// contributed by the flow handlers, for example the at_hash and c_hash claims of the implicit and
// hybrid flows.
type OpenIDConnectTokenStrategy interface {
	GenerateIDToken(ctx context.Context, lifespan time.Duration, requester authorization.AuthorizeRequester, extraClaims map[string]any) (token string, err error)
}
