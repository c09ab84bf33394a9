// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package openid

import (
	"context"
	"time"

	"github.com/go-jose/go-jose/v4"
	josejwt "github.com/go-jose/go-jose/v4/jwt"
	"github.com/google/uuid"

	"github.com/oauth2-framework/authorization"
	"github.com/oauth2-framework/authorization/internal/consts"
	"github.com/oauth2-framework/authorization/internal/errorsx"
)

// DefaultJOSEStrategy signs ID Tokens with the configured signing key. The subject, audience and
// authentication time claims derive from the authorization request and its user account.
type DefaultJOSEStrategy struct {
	// SigningKey is the private key the ID Token is signed with.
	SigningKey *jose.JSONWebKey

	Config interface {
		authorization.IDTokenIssuerProvider
	}
}

var (
	_ OpenIDConnectTokenStrategy = (*DefaultJOSEStrategy)(nil)
)

func (s *DefaultJOSEStrategy) GenerateIDToken(ctx context.Context, lifespan time.Duration, requester authorization.AuthorizeRequester, extraClaims map[string]any) (string, error) {
	account := requester.GetUserAccount()
	if account == nil {
		return "", errorsx.WithStack(authorization.ErrServerError.WithDebug("Failed to generate the ID Token because the authorization request has no authenticated user account."))
	}

	if s.SigningKey == nil {
		return "", errorsx.WithStack(authorization.ErrServerError.WithDebug("Failed to generate the ID Token because no signing key is configured."))
	}

	signer, err := jose.NewSigner(jose.SigningKey{
		Algorithm: jose.SignatureAlgorithm(s.SigningKey.Algorithm),
		Key:       s.SigningKey,
	}, (&jose.SignerOptions{}).WithType("JWT"))
	if err != nil {
		return "", errorsx.WithStack(authorization.ErrServerError.WithWrap(err).WithDebugError(err))
	}

	now := time.Now().UTC()

	claims := josejwt.Claims{
		ID:       uuid.NewString(),
		Issuer:   s.Config.GetIDTokenIssuer(ctx),
		Subject:  account.GetSubject(),
		Audience: josejwt.Audience{requester.GetClient().GetID()},
		IssuedAt: josejwt.NewNumericDate(now),
		Expiry:   josejwt.NewNumericDate(now.Add(lifespan)),
	}

	private := map[string]any{
		"auth_time": account.GetAuthenticatedAt().Unix(),
	}

	if nonce := requester.GetRequestForm().Get(consts.FormParameterNonce); len(nonce) != 0 {
		private[consts.FormParameterNonce] = nonce
	}

	for claim, value := range extraClaims {
		private[claim] = value
	}

	token, err := josejwt.Signed(signer).Claims(claims).Claims(private).Serialize()
	if err != nil {
		return "", errorsx.WithStack(authorization.ErrServerError.WithWrap(err).WithDebugError(err))
	}

	return token, nil
}
