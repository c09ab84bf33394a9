// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"strconv"
	"time"

	"github.com/oauth2-framework/authorization/internal/consts"
	"github.com/oauth2-framework/authorization/internal/errorsx"
)

// UserAuthenticationChecker decides whether an already authenticated resource owner satisfies the
// authentication constraints of a request. A checker returns an error wrapping ErrLoginRequired
// when the resource owner has to (re-)authenticate interactively, and any other error when the
// request cannot proceed at all.
type UserAuthenticationChecker interface {
	CheckAuthentication(ctx context.Context, requester AuthorizeRequester, account UserAccount) error
}

// MaxAgeAuthenticationChecker enforces the OpenID Connect 'max_age' parameter. When the elapsed
// time since the resource owner's last active authentication exceeds the requested maximum, the
// resource owner must actively re-authenticate.
type MaxAgeAuthenticationChecker struct {
	Config interface {
		ClockConfigProvider
	}
}

func (c *MaxAgeAuthenticationChecker) CheckAuthentication(ctx context.Context, requester AuthorizeRequester, account UserAccount) error {
	raw := requester.GetRequestForm().Get(consts.FormParameterMaximumAge)
	if raw == "" {
		return nil
	}

	maxAge, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || maxAge < 0 {
		return errorsx.WithStack(ErrInvalidRequest.WithHintf("The 'max_age' parameter value '%s' is not a valid non-negative integer.", raw))
	}

	authenticatedAt := account.GetAuthenticatedAt()
	if authenticatedAt.IsZero() {
		return errorsx.WithStack(ErrLoginRequired.WithHint("The resource owner has no recorded authentication time but the request includes the 'max_age' parameter."))
	}

	if c.now(ctx).After(authenticatedAt.Add(time.Duration(maxAge) * time.Second)) {
		return errorsx.WithStack(ErrLoginRequired.WithHintf("The resource owner authenticated more than %d seconds ago.", maxAge))
	}

	return nil
}

// PromptLoginAuthenticationChecker enforces the OpenID Connect 'prompt=login' parameter. The
// resource owner must actively authenticate during this request even when a valid session exists.
type PromptLoginAuthenticationChecker struct{}

func (c PromptLoginAuthenticationChecker) CheckAuthentication(ctx context.Context, requester AuthorizeRequester, account UserAccount) error {
	if !PromptValues(requester).Has(consts.PromptTypeLogin) {
		return nil
	}

	if account.GetAuthenticatedAt().Before(requester.GetRequestedAt()) {
		return errorsx.WithStack(ErrLoginRequired.WithHint("The request includes 'prompt=login' but the resource owner did not actively authenticate during this request."))
	}

	return nil
}

// UserAuthenticationCheckers is a list of UserAuthenticationChecker.
type UserAuthenticationCheckers []UserAuthenticationChecker

// CheckAuthentication runs all checkers in order and returns the first error encountered.
func (c UserAuthenticationCheckers) CheckAuthentication(ctx context.Context, requester AuthorizeRequester, account UserAccount) error {
	for _, checker := range c {
		if err := checker.CheckAuthentication(ctx, requester, account); err != nil {
			return err
		}
	}

	return nil
}

func (c *MaxAgeAuthenticationChecker) now(ctx context.Context) time.Time {
	if c.Config != nil {
		if clock := c.Config.GetClock(ctx); clock != nil {
			return clock.Now()
		}
	}

	return time.Now().UTC()
}
