// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package hmac

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oauth2-framework/authorization"
)

func TestHMACStrategyGenerateAndValidate(t *testing.T) {
	ctx := context.Background()

	strategy := &HMACStrategy{Config: &authorization.Config{
		GlobalSecret: []byte("1234567890123456789012345678901234567890"),
	}}

	token, signature, err := strategy.Generate(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, signature)

	assert.Equal(t, signature, strategy.Signature(token))
	assert.NoError(t, strategy.Validate(ctx, token))

	t.Run("ShouldRejectTamperedKey", func(t *testing.T) {
		key, sig, ok := strings.Cut(token, ".")
		require.True(t, ok)

		mutated := []byte(key)
		if mutated[0] == 'A' {
			mutated[0] = 'B'
		} else {
			mutated[0] = 'A'
		}

		err := strategy.Validate(ctx, string(mutated)+"."+sig)
		assert.True(t, errorsIs(err, authorization.ErrTokenSignatureMismatch))
	})

	t.Run("ShouldRejectTokenWithoutSignature", func(t *testing.T) {
		key, _, ok := strings.Cut(token, ".")
		require.True(t, ok)

		err := strategy.Validate(ctx, key)
		assert.True(t, errorsIs(err, authorization.ErrInvalidTokenFormat))
	})

	t.Run("ShouldRejectEmptySegments", func(t *testing.T) {
		err := strategy.Validate(ctx, ".")
		assert.True(t, errorsIs(err, authorization.ErrInvalidTokenFormat))
	})

	t.Run("ShouldRejectForeignToken", func(t *testing.T) {
		other := &HMACStrategy{Config: &authorization.Config{
			GlobalSecret: []byte("abcdefghabcdefghabcdefghabcdefghabcdefgh"),
		}}

		foreign, _, err := other.Generate(ctx)
		require.NoError(t, err)

		err = strategy.Validate(ctx, foreign)
		assert.True(t, errorsIs(err, authorization.ErrTokenSignatureMismatch))
	})
}

func TestHMACStrategyRotatedSecrets(t *testing.T) {
	ctx := context.Background()

	previous := &HMACStrategy{Config: &authorization.Config{
		GlobalSecret: []byte("1234567890123456789012345678901234567890"),
	}}

	token, _, err := previous.Generate(ctx)
	require.NoError(t, err)

	rotated := &HMACStrategy{Config: &authorization.Config{
		GlobalSecret:         []byte("abcdefghabcdefghabcdefghabcdefghabcdefgh"),
		RotatedGlobalSecrets: [][]byte{[]byte("1234567890123456789012345678901234567890")},
	}}

	// Tokens signed with a rotated secret stay valid until the rotation completes.
	assert.NoError(t, rotated.Validate(ctx, token))

	fresh, _, err := rotated.Generate(ctx)
	require.NoError(t, err)
	assert.NoError(t, rotated.Validate(ctx, fresh))
}

func TestHMACStrategyRequiresStrongSecret(t *testing.T) {
	ctx := context.Background()

	strategy := &HMACStrategy{Config: &authorization.Config{
		GlobalSecret: []byte("too-short"),
	}}

	_, _, err := strategy.Generate(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected to be 32 byte long")

	err = strategy.Validate(ctx, "foo.bar")
	require.Error(t, err)
}

func TestHMACStrategyGenerateHMACForString(t *testing.T) {
	ctx := context.Background()

	strategy := &HMACStrategy{Config: &authorization.Config{
		GlobalSecret: []byte("1234567890123456789012345678901234567890"),
	}}

	first, err := strategy.GenerateHMACForString(ctx, "session-state")
	require.NoError(t, err)

	second, err := strategy.GenerateHMACForString(ctx, "session-state")
	require.NoError(t, err)

	// The MAC is deterministic for the same input and secret.
	assert.Equal(t, first, second)

	third, err := strategy.GenerateHMACForString(ctx, "other")
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestCompareStrings(t *testing.T) {
	assert.True(t, CompareStrings("abc", "abc"))
	assert.False(t, CompareStrings("abc", "abd"))
	assert.False(t, CompareStrings("abc", "abcd"))
}

func errorsIs(err error, target *authorization.RFC6749Error) bool {
	return authorization.ErrorToRFC6749Error(err).Is(target)
}
