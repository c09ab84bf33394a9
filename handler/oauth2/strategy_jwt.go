// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/cristalhq/jwt/v4"
	"github.com/google/uuid"

	"github.com/oauth2-framework/authorization"
	"github.com/oauth2-framework/authorization/internal/errorsx"
)

// NewJWTProfileCoreStrategy decorates an HMACCoreStrategy so access tokens are issued as signed
// JWTs while authorize codes remain opaque HMAC tokens.
func NewJWTProfileCoreStrategy(config JWTProfileCoreStrategyConfigurator, prefix string) *JWTProfileCoreStrategy {
	return &JWTProfileCoreStrategy{
		HMACCoreStrategy: NewHMACCoreStrategy(config, prefix),
		Config:           config,
	}
}

// JWTProfileCoreStrategy issues RFC9068 style JWT access tokens signed with HMAC-SHA256 using
// the global secret, and delegates authorize codes to the embedded HMACCoreStrategy.
type JWTProfileCoreStrategy struct {
	*HMACCoreStrategy

	Config JWTProfileCoreStrategyConfigurator
}

type JWTProfileCoreStrategyConfigurator interface {
	HMACCoreStrategyConfigurator

	authorization.IDTokenIssuerProvider
}

// JWTProfileAccessTokenClaims is the claim set of a JWT profile access token.
type JWTProfileAccessTokenClaims struct {
	jwt.RegisteredClaims

	ClientID string `json:"client_id,omitempty"`
	Scope    string `json:"scope,omitempty"`
}

// AccessTokenSignature returns the signature part of a JWT access token.
func (s *JWTProfileCoreStrategy) AccessTokenSignature(ctx context.Context, tokenString string) (signature string) {
	split := strings.Split(tokenString, ".")

	if len(split) != 3 {
		return ""
	}

	return split[2]
}

// GenerateAccessToken builds and signs a JWT access token for the requester.
func (s *JWTProfileCoreStrategy) GenerateAccessToken(ctx context.Context, requester authorization.Requester) (tokenString string, signature string, err error) {
	signer, err := s.signer(ctx)
	if err != nil {
		return "", "", err
	}

	now := time.Now().UTC()

	claims := &JWTProfileAccessTokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    s.Config.GetIDTokenIssuer(ctx),
			Subject:   requester.GetClient().GetID(),
			Audience:  jwt.Audience{requester.GetClient().GetID()},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.Config.GetAccessTokenLifespan(ctx))),
		},
		ClientID: requester.GetClient().GetID(),
		Scope:    strings.Join(requester.GetGrantedScopes(), " "),
	}

	token, err := jwt.NewBuilder(signer).Build(claims)
	if err != nil {
		return "", "", errorsx.WithStack(err)
	}

	tokenString = token.String()

	return tokenString, s.AccessTokenSignature(ctx, tokenString), nil
}

// ValidateAccessToken verifies the signature and expiry of a JWT access token.
func (s *JWTProfileCoreStrategy) ValidateAccessToken(ctx context.Context, _ authorization.Requester, tokenString string) (err error) {
	verifier, err := s.verifier(ctx)
	if err != nil {
		return err
	}

	token, err := jwt.Parse([]byte(tokenString), verifier)
	if err != nil {
		return errorsx.WithStack(authorization.ErrTokenSignatureMismatch.WithWrap(err).WithDebugError(err))
	}

	var claims JWTProfileAccessTokenClaims

	if err = json.Unmarshal(token.Claims(), &claims); err != nil {
		return errorsx.WithStack(authorization.ErrInvalidTokenFormat.WithWrap(err).WithDebugError(err))
	}

	if !claims.IsValidExpiresAt(time.Now().UTC()) {
		return errorsx.WithStack(authorization.ErrTokenExpired.WithHintf("Access token expired at '%s'.", claims.ExpiresAt.Time))
	}

	return nil
}

func (s *JWTProfileCoreStrategy) signer(ctx context.Context) (jwt.Signer, error) {
	secret, err := s.Config.GetGlobalSecret(ctx)
	if err != nil {
		return nil, errorsx.WithStack(err)
	}

	signer, err := jwt.NewSignerHS(jwt.HS256, secret)
	if err != nil {
		return nil, errorsx.WithStack(err)
	}

	return signer, nil
}

func (s *JWTProfileCoreStrategy) verifier(ctx context.Context) (jwt.Verifier, error) {
	secret, err := s.Config.GetGlobalSecret(ctx)
	if err != nil {
		return nil, errorsx.WithStack(err)
	}

	verifier, err := jwt.NewVerifierHS(jwt.HS256, secret)
	if err != nil {
		return nil, errorsx.WithStack(err)
	}

	return verifier, nil
}
