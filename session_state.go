// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"

	"github.com/oauth2-framework/authorization/internal/consts"
	"github.com/oauth2-framework/authorization/internal/errorsx"
	"github.com/oauth2-framework/authorization/internal/randx"
)

// BrowserSessionManager tracks the login session of a user agent at the authorization server, as
// required by OpenID Connect Session Management 1.0. The browser state changes whenever the user
// agent's login session at the server changes.
type BrowserSessionManager interface {
	// GetBrowserState returns the browser state of the inbound user agent, creating and
	// persisting a fresh one when none exists yet. Persistence happens through Set-Cookie
	// headers written into the requester's response headers.
	GetBrowserState(ctx context.Context, r *http.Request, requester AuthorizeRequester) (string, error)
}

// CookieBrowserSessionManager persists the browser state in a dedicated cookie.
type CookieBrowserSessionManager struct {
	Config interface {
		BrowserStateCookieConfigProvider
	}
}

func (m *CookieBrowserSessionManager) GetBrowserState(ctx context.Context, r *http.Request, requester AuthorizeRequester) (string, error) {
	name := m.Config.GetBrowserStateCookieName(ctx)

	if cookie, err := r.Cookie(name); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	entropy, err := randx.Bytes(64)
	if err != nil {
		return "", errorsx.WithStack(ErrServerError.WithWrap(err).WithDebugError(err))
	}

	state := base64.RawURLEncoding.EncodeToString(entropy)

	cookie := &http.Cookie{
		Name:     name,
		Value:    state,
		Path:     m.Config.GetBrowserStateCookiePath(ctx),
		Domain:   m.Config.GetBrowserStateCookieDomain(ctx),
		HttpOnly: m.Config.GetBrowserStateCookieHTTPOnly(ctx),
		Secure:   m.Config.GetBrowserStateCookieSecure(ctx),
		SameSite: m.Config.GetBrowserStateCookieSameSite(ctx),
	}

	requester.GetResponseHeaders().Add(consts.HeaderSetCookie, cookie.String())

	return state, nil
}

// SessionStateHook contributes the 'session_state' response parameter defined by OpenID Connect
// Session Management 1.0 so relying parties can monitor the login session at the OP from an
// invisible iframe.
type SessionStateHook struct {
	SessionManager BrowserSessionManager
}

func (h *SessionStateHook) Stages() []HookStage {
	return []HookStage{HookStageBeforeResponse}
}

func (h *SessionStateHook) Execute(ctx context.Context, stage HookStage, r *http.Request, requester AuthorizeRequester) error {
	if !requester.GetRequestedScopes().Has(consts.ScopeOpenID) {
		return nil
	}

	if requester.GetRedirectURI() == nil {
		return nil
	}

	browserState, err := h.SessionManager.GetBrowserState(ctx, r, requester)
	if err != nil {
		return err
	}

	salt, err := randx.Bytes(16)
	if err != nil {
		return errorsx.WithStack(ErrServerError.WithWrap(err).WithDebugError(err))
	}

	state := ComputeSessionState(requester.GetClient().GetID(), RedirectURIOrigin(requester.GetRedirectURI()), browserState, base64.RawURLEncoding.EncodeToString(salt))

	requester.GetResponseParameters().Set(consts.AuthorizeResponseSessionState, state)

	return nil
}

// ComputeSessionState calculates the session_state value as the salted hash over the client ID,
// the origin of the redirect URI and the browser state. Relying parties recalculate it with the
// same salt to detect session changes.
func ComputeSessionState(clientID, origin, browserState, salt string) string {
	sum := sha256.Sum256([]byte(clientID + origin + browserState + salt))

	return fmt.Sprintf("%s.%s", hex.EncodeToString(sum[:]), salt)
}

// RedirectURIOrigin returns the origin of the given URI consisting of its scheme, host and, when
// explicitly present, port.
func RedirectURIOrigin(uri *url.URL) string {
	return fmt.Sprintf("%s://%s", uri.Scheme, uri.Host)
}

var (
	_ Hook                  = (*SessionStateHook)(nil)
	_ BrowserSessionManager = (*CookieBrowserSessionManager)(nil)
)
