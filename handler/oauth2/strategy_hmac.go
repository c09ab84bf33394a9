// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package oauth2

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oauth2-framework/authorization"
	"github.com/oauth2-framework/authorization/internal/errorsx"
	"github.com/oauth2-framework/authorization/token/hmac"
)

// NewHMACCoreStrategy creates a new HMACCoreStrategy with the potential to include the prefix format. The prefix must
// include a single '%s' for the purpose of adding the token part (ac and at; for the Authorize Code and Access
// Token; respectively).
func NewHMACCoreStrategy(config HMACCoreStrategyConfigurator, prefix string) (strategy *HMACCoreStrategy) {
	if len(prefix) == 0 || strings.Count(prefix, "%s") != 1 {
		return &HMACCoreStrategy{
			Enigma:    &hmac.HMACStrategy{Config: config},
			Config:    config,
			usePrefix: false,
		}
	}

	return &HMACCoreStrategy{
		Enigma:    &hmac.HMACStrategy{Config: config},
		Config:    config,
		prefix:    prefix,
		usePrefix: true,
	}
}

type HMACCoreStrategy struct {
	Enigma *hmac.HMACStrategy
	Config interface {
		authorization.AccessTokenLifespanProvider
		authorization.AuthorizeCodeLifespanProvider
	}

	usePrefix bool
	prefix    string
}

var (
	_ CoreStrategy = (*HMACCoreStrategy)(nil)
)

// AccessTokenSignature implements AccessTokenStrategy.
func (h *HMACCoreStrategy) AccessTokenSignature(ctx context.Context, tokenString string) (signature string) {
	return h.Enigma.Signature(tokenString)
}

// GenerateAccessToken implements AccessTokenStrategy.
func (h *HMACCoreStrategy) GenerateAccessToken(ctx context.Context, _ authorization.Requester) (tokenString string, signature string, err error) {
	if tokenString, signature, err = h.Enigma.Generate(ctx); err != nil {
		return "", "", err
	}

	return h.prependPrefix(tokenString, tokenPrefixPartAccessToken), signature, nil
}

// ValidateAccessToken implements AccessTokenStrategy.
func (h *HMACCoreStrategy) ValidateAccessToken(ctx context.Context, r authorization.Requester, tokenString string) (err error) {
	if exp := r.GetRequestedAt().Add(h.Config.GetAccessTokenLifespan(ctx)); exp.Before(time.Now().UTC()) {
		return errorsx.WithStack(authorization.ErrTokenExpired.WithHintf("Access token expired at '%s'.", exp))
	}

	return h.Enigma.Validate(ctx, h.trimPrefix(tokenString, tokenPrefixPartAccessToken))
}

// AuthorizeCodeSignature implements AuthorizeCodeStrategy.
func (h *HMACCoreStrategy) AuthorizeCodeSignature(ctx context.Context, tokenString string) (signature string) {
	return h.Enigma.Signature(tokenString)
}

// GenerateAuthorizeCode implements AuthorizeCodeStrategy.
func (h *HMACCoreStrategy) GenerateAuthorizeCode(ctx context.Context, _ authorization.Requester) (tokenString string, signature string, err error) {
	if tokenString, signature, err = h.Enigma.Generate(ctx); err != nil {
		return "", "", err
	}

	return h.prependPrefix(tokenString, tokenPrefixPartAuthorizeCode), signature, nil
}

// ValidateAuthorizeCode implements AuthorizeCodeStrategy.
func (h *HMACCoreStrategy) ValidateAuthorizeCode(ctx context.Context, r authorization.Requester, tokenString string) (err error) {
	if exp := r.GetRequestedAt().Add(h.Config.GetAuthorizeCodeLifespan(ctx)); exp.Before(time.Now().UTC()) {
		return errorsx.WithStack(authorization.ErrTokenExpired.WithHintf("Authorize code expired at '%s'.", exp))
	}

	return h.Enigma.Validate(ctx, h.trimPrefix(tokenString, tokenPrefixPartAuthorizeCode))
}

func (h *HMACCoreStrategy) trimPrefix(tokenString, part string) string {
	if !h.usePrefix {
		return tokenString
	}

	return strings.TrimPrefix(tokenString, h.getPrefix(part))
}

func (h *HMACCoreStrategy) prependPrefix(tokenString, part string) string {
	if !h.usePrefix {
		return tokenString
	}

	return h.getPrefix(part) + tokenString
}

func (h *HMACCoreStrategy) getPrefix(part string) string {
	if !h.usePrefix {
		return ""
	}

	return fmt.Sprintf(h.prefix, part)
}

const (
	tokenPrefixPartAuthorizeCode = "ac"
	tokenPrefixPartAccessToken   = "at"
)

type HMACCoreStrategyConfigurator interface {
	authorization.AccessTokenLifespanProvider
	authorization.AuthorizeCodeLifespanProvider
	authorization.TokenEntropyProvider
	authorization.GlobalSecretProvider
	authorization.RotatedGlobalSecretsProvider
	authorization.HMACHashingProvider
}
