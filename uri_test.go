// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsMatchingNativeAppLoopbackURI(t *testing.T) {
	testCases := []struct {
		name            string
		uri, registered *url.URL
		expected        bool
	}{
		{
			"ShouldHandleHTTPSRequested",
			MustParseURI(t, "https://127.0.0.1"),
			MustParseURI(t, "http://127.0.0.1"),
			false,
		},
		{
			"ShouldHandleHTTPSRegistered",
			MustParseURI(t, "http://127.0.0.1"),
			MustParseURI(t, "https://127.0.0.1"),
			false,
		},
		{
			"ShouldHandleNonLoopbackRequested",
			MustParseURI(t, "http://google.com"),
			MustParseURI(t, "http://127.0.0.1"),
			false,
		},
		{
			"ShouldHandleNonLoopbackRegistered",
			MustParseURI(t, "http://127.0.0.1"),
			MustParseURI(t, "http://google.com"),
			false,
		},
		{
			"ShouldHandleDifferentLoopbacks",
			MustParseURI(t, "http://127.0.0.1"),
			MustParseURI(t, "http://127.0.0.2"),
			false,
		},
		{
			"ShouldHandleDifferentPaths",
			MustParseURI(t, "http://127.0.0.1/1234"),
			MustParseURI(t, "http://127.0.0.1/abc"),
			false,
		},
		{
			"ShouldHandleDifferentPorts",
			MustParseURI(t, "http://127.0.0.1:1234"),
			MustParseURI(t, "http://127.0.0.1"),
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, isMatchingLoopbackURI(tc.uri, tc.registered))
		})
	}
}

func TestMatchRedirectURIWithClientRedirectURIs(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		client   Client
		expected string
		err      bool
	}{
		{
			"ShouldMatchRegisteredURI",
			"https://foo.com/cb",
			&DefaultClient{RedirectURIs: []string{"https://foo.com/cb"}},
			"https://foo.com/cb",
			false,
		},
		{
			"ShouldDefaultToOnlyRegisteredURI",
			"",
			&DefaultClient{RedirectURIs: []string{"https://foo.com/cb"}},
			"https://foo.com/cb",
			false,
		},
		{
			"ShouldFailWithoutRegisteredURIs",
			"",
			&DefaultClient{RedirectURIs: []string{}},
			"",
			true,
		},
		{
			"ShouldFailUnregisteredURI",
			"https://bar.com/cb",
			&DefaultClient{RedirectURIs: []string{"https://foo.com/cb"}},
			"",
			true,
		},
		{
			"ShouldMatchLoopbackWithVaryingPort",
			"http://127.0.0.1:5555/callback",
			&DefaultClient{RedirectURIs: []string{"http://127.0.0.1/callback"}},
			"http://127.0.0.1:5555/callback",
			false,
		},
		{
			"ShouldNotMatchDifferentPath",
			"https://foo.com/cb/other",
			&DefaultClient{RedirectURIs: []string{"https://foo.com/cb"}},
			"",
			true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uri, err := MatchRedirectURIWithClientRedirectURIs(tc.raw, tc.client)
			if tc.err {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, uri.String())
			}
		})
	}
}

func TestIsValidRedirectURI(t *testing.T) {
	testCases := []struct {
		name     string
		uri      string
		expected bool
	}{
		{"ShouldAcceptHTTPS", "https://foo.com/cb", true},
		{"ShouldAcceptCustomScheme", "com.example.app:/callback", true},
		{"ShouldRejectFragment", "https://foo.com/cb#fragment", false},
		{"ShouldRejectEmpty", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			uri, err := url.Parse(tc.uri)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, IsValidRedirectURI(uri))
		})
	}
}

func MustParseURI(t *testing.T, uri string) *url.URL {
	t.Helper()

	u, err := url.Parse(uri)
	require.NoError(t, err)

	return u
}
