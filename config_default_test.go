// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	. "github.com/oauth2-framework/authorization"
)

func TestConfigDefaultLifespans(t *testing.T) {
	ctx := context.Background()

	config := &Config{}

	assert.Equal(t, 10*time.Minute, config.GetAuthorizeCodeLifespan(ctx))
	assert.Equal(t, time.Hour, config.GetAccessTokenLifespan(ctx))
	assert.Equal(t, time.Hour, config.GetIDTokenLifespan(ctx))
	assert.Equal(t, 30*time.Minute, config.GetAuthorizationRequestLifespan(ctx))

	config.AuthorizeCodeLifespan = time.Minute

	assert.Equal(t, time.Minute, config.GetAuthorizeCodeLifespan(ctx))
}

func TestConfigDefaultBrowserStateCookie(t *testing.T) {
	ctx := context.Background()

	config := &Config{}

	assert.Equal(t, "oauth2_browser_state", config.GetBrowserStateCookieName(ctx))
	assert.Equal(t, "/", config.GetBrowserStateCookiePath(ctx))
	assert.Equal(t, "", config.GetBrowserStateCookieDomain(ctx))
	assert.False(t, config.GetBrowserStateCookieSecure(ctx))
	assert.False(t, config.GetBrowserStateCookieHTTPOnly(ctx))
	assert.Equal(t, http.SameSiteNoneMode, config.GetBrowserStateCookieSameSite(ctx))

	config.BrowserStateCookieName = "op_session"
	config.BrowserStateCookiePath = "/oauth2"
	config.BrowserStateCookieDomain = "auth.example.com"
	config.BrowserStateCookieSecure = true
	config.BrowserStateCookieHTTPOnly = true
	config.BrowserStateCookieSameSite = http.SameSiteLaxMode

	assert.Equal(t, "op_session", config.GetBrowserStateCookieName(ctx))
	assert.Equal(t, "/oauth2", config.GetBrowserStateCookiePath(ctx))
	assert.Equal(t, "auth.example.com", config.GetBrowserStateCookieDomain(ctx))
	assert.True(t, config.GetBrowserStateCookieSecure(ctx))
	assert.True(t, config.GetBrowserStateCookieHTTPOnly(ctx))
	assert.Equal(t, http.SameSiteLaxMode, config.GetBrowserStateCookieSameSite(ctx))
}
