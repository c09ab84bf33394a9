// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization_test

import (
	"bytes"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oauth2-framework/authorization"
)

func TestWriteAuthorizeFormPostResponse(t *testing.T) {
	testCases := []struct {
		name       string
		parameters url.Values
		expected   []string
	}{
		{
			"ShouldRenderCodeAndState",
			url.Values{"code": {"lshr755nsg39fgur"}, "state": {"924659540232"}},
			[]string{
				`name="code" value="lshr755nsg39fgur"`,
				`name="state" value="924659540232"`,
			},
		},
		{
			"ShouldEscapeHTMLInValues",
			url.Values{"code": {"1234"}, "custom": {"<b>Bold</b>"}},
			[]string{
				`name="code" value="1234"`,
				"&lt;b&gt;Bold&lt;/b&gt;",
			},
		},
		{
			"ShouldRenderRepeatedParameters",
			url.Values{"custom": {"test2", "test3"}},
			[]string{
				`value="test2"`,
				`value="test3"`,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buffer bytes.Buffer

			authorization.DefaultFormPostResponseWriter(&buffer, authorization.DefaultFormPostTemplate, "https://localhost:8080/cb", tc.parameters)

			html := buffer.String()
			require.Contains(t, html, `action="https://localhost:8080/cb"`)

			for _, expected := range tc.expected {
				assert.Contains(t, html, expected)
			}
		})
	}
}
