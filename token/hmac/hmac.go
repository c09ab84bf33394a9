// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

// Package hmac is the default implementation for generating and validating challenges. It uses
// HMAC-SHA2 to generate and validate challenges.
package hmac

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"strings"

	"github.com/oauth2-framework/authorization"
	"github.com/oauth2-framework/authorization/internal/errorsx"
	"github.com/oauth2-framework/authorization/internal/randx"
)

const (
	minimumEntropy      = 32
	minimumSecretLength = 32
)

var b64 = base64.URLEncoding.WithPadding(base64.NoPadding)

// HMACStrategy is responsible for generating and validating challenges.
type HMACStrategy struct {
	Config interface {
		authorization.TokenEntropyProvider
		authorization.GlobalSecretProvider
		authorization.RotatedGlobalSecretsProvider
		authorization.HMACHashingProvider
	}
}

// Generate generates a token and a matching signature or returns an error. This method implements
// rfc6819 Section 5.1.4.2.2: Use High Entropy for Secrets.
func (c *HMACStrategy) Generate(ctx context.Context) (token string, signature string, err error) {
	var secrets [][]byte

	if secrets, err = c.allSecrets(ctx); err != nil {
		return "", "", err
	}

	signingKey := secrets[0]

	entropy := c.Config.GetTokenEntropy(ctx)
	if entropy < minimumEntropy {
		entropy = minimumEntropy
	}

	tokenKey, err := randx.Bytes(entropy)
	if err != nil {
		return "", "", errorsx.WithStack(err)
	}

	signatureBytes := c.generateHMAC(ctx, tokenKey, signingKey)

	encodedSignature := b64.EncodeToString(signatureBytes)
	encodedToken := fmt.Sprintf("%s.%s", b64.EncodeToString(tokenKey), encodedSignature)

	return encodedToken, encodedSignature, nil
}

// Validate validates a token and returns its signature or an error if the token is not valid.
func (c *HMACStrategy) Validate(ctx context.Context, token string) (err error) {
	var secrets [][]byte

	if secrets, err = c.allSecrets(ctx); err != nil {
		return err
	}

	for _, secret := range secrets {
		if err = c.validate(ctx, secret, token); err == nil {
			return nil
		} else if !errors.Is(err, authorization.ErrTokenSignatureMismatch) {
			return err
		}
	}

	return err
}

func (c *HMACStrategy) validate(ctx context.Context, secret []byte, token string) error {
	if len(secret) < minimumSecretLength {
		return errorsx.WithStack(fmt.Errorf("secret for signing HMAC-SHA2 is expected to be 32 byte long, got %d byte", len(secret)))
	}

	tokenKey, tokenSignature, ok := strings.Cut(token, ".")
	if !ok {
		return errorsx.WithStack(authorization.ErrInvalidTokenFormat)
	}

	if tokenKey == "" || tokenSignature == "" {
		return errorsx.WithStack(authorization.ErrInvalidTokenFormat)
	}

	decodedTokenSignature, err := b64.DecodeString(tokenSignature)
	if err != nil {
		return errorsx.WithStack(err)
	}

	decodedTokenKey, err := b64.DecodeString(tokenKey)
	if err != nil {
		return errorsx.WithStack(err)
	}

	expectedMAC := c.generateHMAC(ctx, decodedTokenKey, secret)
	if !hmac.Equal(expectedMAC, decodedTokenSignature) {
		// Hash is invalid.
		return errorsx.WithStack(authorization.ErrTokenSignatureMismatch)
	}

	return nil
}

// Signature returns the signature of the given token, which is the part after the first period.
func (c *HMACStrategy) Signature(token string) string {
	split := strings.Split(token, ".")

	if len(split) != 2 {
		return ""
	}

	return split[1]
}

// GenerateHMACForString returns an HMAC for a string.
func (c *HMACStrategy) GenerateHMACForString(ctx context.Context, text string) (string, error) {
	secrets, err := c.allSecrets(ctx)
	if err != nil {
		return "", err
	}

	signatureBytes := c.generateHMAC(ctx, []byte(text), secrets[0])

	return b64.EncodeToString(signatureBytes), nil
}

func (c *HMACStrategy) generateHMAC(ctx context.Context, data []byte, key []byte) []byte {
	hasher := c.Config.GetHMACHasher(ctx)
	if hasher == nil {
		hasher = func() hash.Hash {
			return sha256.New()
		}
	}

	h := hmac.New(hasher, key)

	// hmac.Write never returns an error.
	_, _ = h.Write(data)

	return h.Sum([]byte{})
}

// allSecrets returns the global secret followed by the rotated secrets, validating the length of
// the signing secret.
func (c *HMACStrategy) allSecrets(ctx context.Context) ([][]byte, error) {
	secret, err := c.Config.GetGlobalSecret(ctx)
	if err != nil {
		return nil, err
	}

	if len(secret) < minimumSecretLength {
		return nil, errorsx.WithStack(fmt.Errorf("secret for signing HMAC-SHA2 is expected to be 32 byte long, got %d byte", len(secret)))
	}

	rotated, err := c.Config.GetRotatedGlobalSecrets(ctx)
	if err != nil {
		return nil, err
	}

	return append([][]byte{secret}, rotated...), nil
}

// CompareStrings is a constant time string comparison.
func CompareStrings(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
