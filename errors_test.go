// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToRFC6749Error(t *testing.T) {
	t.Run("ShouldPassThroughRFCError", func(t *testing.T) {
		rfc := ErrorToRFC6749Error(ErrInvalidRequest)
		assert.Equal(t, ErrInvalidRequest.ErrorField, rfc.ErrorField)
		assert.Equal(t, ErrInvalidRequest.CodeField, rfc.CodeField)
	})

	t.Run("ShouldUnwrapStackedRFCError", func(t *testing.T) {
		rfc := ErrorToRFC6749Error(errors.WithStack(ErrInvalidScope))
		assert.Equal(t, ErrInvalidScope.ErrorField, rfc.ErrorField)
	})

	t.Run("ShouldWrapUnknownError", func(t *testing.T) {
		rfc := ErrorToRFC6749Error(errors.New("unexpected"))
		assert.Equal(t, "error", rfc.ErrorField)
		assert.Equal(t, "unexpected", rfc.DebugField)
	})
}

func TestRFC6749ErrorIs(t *testing.T) {
	assert.True(t, errors.Is(ErrLoginRequired.WithHint("some hint"), ErrLoginRequired))
	assert.True(t, errors.Is(errors.WithStack(ErrConsentRequired), ErrConsentRequired))
	assert.False(t, errors.Is(ErrLoginRequired, ErrConsentRequired))
}

func TestRFC6749ErrorToValues(t *testing.T) {
	t.Run("ShouldCombineDescriptionAndHint", func(t *testing.T) {
		values := ErrInvalidRequest.WithHint("The hint.").ToValues()
		assert.Equal(t, ErrInvalidRequest.ErrorField, values.Get("error"))
		assert.Contains(t, values.Get("error_description"), "The hint.")
		assert.Empty(t, values.Get("error_hint"))
	})

	t.Run("ShouldSplitFieldsInLegacyFormat", func(t *testing.T) {
		values := ErrInvalidRequest.WithHint("The hint.").WithLegacyFormat(true).ToValues()
		assert.Equal(t, ErrInvalidRequest.ErrorField, values.Get("error"))
		assert.Equal(t, ErrInvalidRequest.DescriptionField, values.Get("error_description"))
		assert.Equal(t, "The hint.", values.Get("error_hint"))
		assert.Empty(t, values.Get("error_debug"))
	})

	t.Run("ShouldOnlyExposeDebugWhenEnabled", func(t *testing.T) {
		withDebug := ErrInvalidRequest.WithDebug("secret detail").WithLegacyFormat(true)

		assert.Empty(t, withDebug.ToValues().Get("error_debug"))
		assert.Equal(t, "secret detail", withDebug.WithExposeDebug(true).ToValues().Get("error_debug"))
	})
}

func TestRFC6749ErrorMarshalJSON(t *testing.T) {
	raw, err := json.Marshal(ErrAccessDenied.WithHint("The resource owner denied the request."))
	require.NoError(t, err)

	var decoded struct {
		Error       string `json:"error"`
		Description string `json:"error_description"`
	}

	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "access_denied", decoded.Error)
	assert.Contains(t, decoded.Description, "The resource owner denied the request.")
}

func TestEscapeJSONString(t *testing.T) {
	assert.Equal(t, `say \"hello\"`, EscapeJSONString(`say "hello"`))
	assert.Equal(t, `back\\slash`, EscapeJSONString(`back\slash`))
}
