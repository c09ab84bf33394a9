// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"errors"
	"time"

	"github.com/oauth2-framework/authorization/internal/consts"
	"github.com/oauth2-framework/authorization/internal/errorsx"
)

// Consent records the decision of a resource owner to allow a client access to a set of scopes.
type Consent struct {
	Subject   string    `json:"subject"`
	ClientID  string    `json:"clientId"`
	Scopes    Arguments `json:"scopes"`
	GrantedAt time.Time `json:"grantedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Covers returns true if the consent is still valid at the given time and includes every
// requested scope.
func (c *Consent) Covers(requestedScopes Arguments, now time.Time) bool {
	if !c.ExpiresAt.IsZero() && now.After(c.ExpiresAt) {
		return false
	}

	for _, scope := range requestedScopes {
		if !c.Scopes.Has(scope) {
			return false
		}
	}

	return true
}

// ConsentRepository persists and recalls consent decisions.
type ConsentRepository interface {
	// GetConsent returns the consent previously granted by the given subject to the given client,
	// or ErrNotFound when no such consent exists.
	GetConsent(ctx context.Context, subject, clientID string) (*Consent, error)

	// CreateConsent stores a consent decision, replacing any previous decision of the same
	// subject for the same client.
	CreateConsent(ctx context.Context, consent *Consent) error

	// RevokeConsent removes the consent of the given subject for the given client.
	RevokeConsent(ctx context.Context, subject, clientID string) error
}

// ConsentStrategy decides whether an authorization request needs an interactive consent decision
// from its resource owner.
type ConsentStrategy struct {
	Repository ConsentRepository

	Config interface {
		ClockConfigProvider
	}
}

// RequiresConsent returns false when the request can proceed without showing the consent
// interaction, either because the client is trusted to skip it or because a previously granted
// consent covers every requested scope. The 'prompt=consent' parameter forces a fresh decision
// regardless of prior grants.
func (s *ConsentStrategy) RequiresConsent(ctx context.Context, requester AuthorizeRequester, account UserAccount) (bool, error) {
	if client, ok := requester.GetClient().(ConsentSkippingClient); ok && client.GetSkipsConsent() {
		return false, nil
	}

	if PromptValues(requester).Has(consts.PromptTypeConsent) {
		return true, nil
	}

	if s.Repository == nil {
		return true, nil
	}

	consent, err := s.Repository.GetConsent(ctx, account.GetSubject(), requester.GetClient().GetID())
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return true, nil
		}

		return false, errorsx.WithStack(ErrServerError.WithWrap(err).WithDebugError(err))
	}

	if consent.Covers(requester.GetRequestedScopes(), s.now(ctx)) {
		for _, scope := range requester.GetRequestedScopes() {
			requester.GrantScope(scope)
		}

		return false, nil
	}

	return true, nil
}

// GrantConsent records a positive consent decision and marks every requested scope as granted
// on the request.
func (s *ConsentStrategy) GrantConsent(ctx context.Context, requester AuthorizeRequester, account UserAccount, approvedScopes Arguments) error {
	for _, scope := range approvedScopes {
		if !requester.GetRequestedScopes().Has(scope) {
			return errorsx.WithStack(ErrInvalidScope.WithHintf("The approved scope '%s' was never requested.", scope))
		}

		requester.GrantScope(scope)
	}

	if s.Repository == nil {
		return nil
	}

	consent := &Consent{
		Subject:   account.GetSubject(),
		ClientID:  requester.GetClient().GetID(),
		Scopes:    append(Arguments{}, approvedScopes...),
		GrantedAt: s.now(ctx),
	}

	if err := s.Repository.CreateConsent(ctx, consent); err != nil {
		return errorsx.WithStack(ErrServerError.WithWrap(err).WithDebugError(err))
	}

	return nil
}

func (s *ConsentStrategy) now(ctx context.Context) time.Time {
	if s.Config != nil {
		if clock := s.Config.GetClock(ctx); clock != nil {
			return clock.Now()
		}
	}

	return time.Now().UTC()
}
