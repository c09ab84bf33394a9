// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package openid

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"time"

	"github.com/oauth2-framework/authorization"
	"github.com/oauth2-framework/authorization/internal/consts"
)

type IDTokenHandleHelper struct {
	IDTokenStrategy OpenIDConnectTokenStrategy
}

// IssueImplicitIDToken generates an ID Token carrying the extra claims and adds it to the
// authorization response.
func (i *IDTokenHandleHelper) IssueImplicitIDToken(ctx context.Context, lifespan time.Duration, requester authorization.AuthorizeRequester, responder authorization.AuthorizeResponder, extraClaims map[string]any) (err error) {
	var token string

	if token, err = i.IDTokenStrategy.GenerateIDToken(ctx, lifespan, requester, extraClaims); err != nil {
		return err
	}

	responder.AddParameter(consts.AuthorizeResponseIDToken, token)

	return nil
}

// ComputeHash computes the OpenID Connect 1.0 half hash of a token, used for the at_hash and
// c_hash claims of an ID Token signed with a SHA-256 based algorithm.
func (i *IDTokenHandleHelper) ComputeHash(_ context.Context, token string) string {
	h := sha256.New()

	// The sha256 Write never returns an error.
	_, _ = h.Write([]byte(token))

	sum := h.Sum([]byte{})

	return base64.RawURLEncoding.EncodeToString(sum[:len(sum)/2])
}
