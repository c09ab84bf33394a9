// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"net/http"
	"reflect"
)

// HookStage identifies a point in the authorization request lifecycle at which hooks run.
type HookStage int

const (
	// HookStageBeforeConsent runs after the resource owner authenticated, before the consent
	// decision is made.
	HookStageBeforeConsent HookStage = iota

	// HookStageAfterConsent runs after the consent decision has been processed.
	HookStageAfterConsent

	// HookStageBeforeResponse runs right before the response is encoded onto the wire.
	HookStageBeforeResponse
)

// Hook extends the authorization request lifecycle. Hooks contribute additional response
// parameters and headers by writing into the requester's response parameters and headers, which
// are merged into the final response.
type Hook interface {
	// Stages returns the lifecycle stages at which this hook runs.
	Stages() []HookStage

	// Execute runs the hook at the given stage. Returning an error aborts the request.
	Execute(ctx context.Context, stage HookStage, r *http.Request, requester AuthorizeRequester) error
}

// Hooks is a list of Hook.
type Hooks []Hook

// Append adds the hook to the list. The list contains at most one hook of each type.
func (h *Hooks) Append(hook Hook) {
	for _, this := range *h {
		if reflect.TypeOf(this) == reflect.TypeOf(hook) {
			return
		}
	}

	*h = append(*h, hook)
}

// Execute runs every hook registered for the given stage in registration order.
func (h Hooks) Execute(ctx context.Context, stage HookStage, r *http.Request, requester AuthorizeRequester) error {
	for _, hook := range h {
		if !hookRunsAtStage(hook, stage) {
			continue
		}

		if err := hook.Execute(ctx, stage, r, requester); err != nil {
			return err
		}
	}

	return nil
}

func hookRunsAtStage(hook Hook, stage HookStage) bool {
	for _, s := range hook.Stages() {
		if s == stage {
			return true
		}
	}

	return false
}
