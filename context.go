// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

// ContextKey is used to pass request scoped values via a context.Context.
type ContextKey int

const (
	// AuthorizeRequestContextKey exposes the current AuthorizeRequester to downstream handlers.
	AuthorizeRequestContextKey ContextKey = iota

	// AuthorizeResponseContextKey exposes the AuthorizeResponder being built to downstream handlers.
	AuthorizeResponseContextKey
)
