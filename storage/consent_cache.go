// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/oauth2-framework/authorization"
)

// CachedConsentRepository decorates a ConsentRepository with a ristretto read cache so the
// consent gate of frequently resumed authorization flows does not hit the backing repository on
// every request.
type CachedConsentRepository struct {
	Repository authorization.ConsentRepository

	cache *ristretto.Cache
	ttl   time.Duration
}

var (
	_ authorization.ConsentRepository = (*CachedConsentRepository)(nil)
)

// NewCachedConsentRepository wraps the given repository. Cached entries live for at most ttl,
// bounded further by the consent's own expiry.
func NewCachedConsentRepository(repository authorization.ConsentRepository, ttl time.Duration) (*CachedConsentRepository, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}

	return &CachedConsentRepository{
		Repository: repository,
		cache:      cache,
		ttl:        ttl,
	}, nil
}

func (r *CachedConsentRepository) GetConsent(ctx context.Context, subject, clientID string) (*authorization.Consent, error) {
	key := consentCacheKey(subject, clientID)

	if value, ok := r.cache.Get(key); ok {
		if consent, ok := value.(*authorization.Consent); ok {
			return consent, nil
		}
	}

	consent, err := r.Repository.GetConsent(ctx, subject, clientID)
	if err != nil {
		return nil, err
	}

	r.cache.SetWithTTL(key, consent, 1, r.cacheTTL(consent))

	return consent, nil
}

func (r *CachedConsentRepository) CreateConsent(ctx context.Context, consent *authorization.Consent) error {
	if err := r.Repository.CreateConsent(ctx, consent); err != nil {
		return err
	}

	r.cache.Del(consentCacheKey(consent.Subject, consent.ClientID))

	return nil
}

func (r *CachedConsentRepository) RevokeConsent(ctx context.Context, subject, clientID string) error {
	if err := r.Repository.RevokeConsent(ctx, subject, clientID); err != nil {
		return err
	}

	r.cache.Del(consentCacheKey(subject, clientID))

	return nil
}

// Wait blocks until buffered cache writes have been applied. Cached reads are best-effort so
// callers normally never need this, it mainly exists for deterministic tests.
func (r *CachedConsentRepository) Wait() {
	r.cache.Wait()
}

func (r *CachedConsentRepository) cacheTTL(consent *authorization.Consent) time.Duration {
	ttl := r.ttl

	if !consent.ExpiresAt.IsZero() {
		if until := time.Until(consent.ExpiresAt); until < ttl {
			ttl = until
		}
	}

	return ttl
}

func consentCacheKey(subject, clientID string) string {
	return subject + "\x1f" + clientID
}
