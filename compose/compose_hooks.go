// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package compose

import (
	"github.com/oauth2-framework/authorization"
)

// SessionStateHookFactory creates the hook contributing the OpenID Connect Session Management 1.0
// 'session_state' response parameter, backed by the browser state cookie.
func SessionStateHookFactory(config authorization.Configurator, storage any, strategy any) any {
	return &authorization.SessionStateHook{
		SessionManager: &authorization.CookieBrowserSessionManager{
			Config: config,
		},
	}
}
