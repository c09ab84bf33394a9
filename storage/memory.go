// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package storage

import (
	"context"
	"sync"
	"time"

	"github.com/mohae/deepcopy"

	"github.com/oauth2-framework/authorization"
)

// MemoryStore is an in-memory implementation of every storage contract of this module. It is
// intended for tests and examples, not for production use.
type MemoryStore struct {
	Clients               map[string]authorization.Client
	AuthorizationRequests map[string]StoreAuthorizationRequest
	AuthorizeCodes        map[string]StoreAuthorizeCode
	AccessTokens          map[string]authorization.Requester
	IDSessions            map[string]authorization.Requester
	Consents              map[ConsentRelation]*authorization.Consent

	Config interface {
		authorization.AuthorizationRequestLifespanProvider
	}

	clientsMutex               sync.RWMutex
	authorizationRequestsMutex sync.RWMutex
	authorizeCodesMutex        sync.RWMutex
	accessTokensMutex          sync.RWMutex
	idSessionsMutex            sync.RWMutex
	consentsMutex              sync.RWMutex
}

// StoreAuthorizationRequest is an in-flight authorization request with its storage expiry.
type StoreAuthorizationRequest struct {
	ExpiresAt time.Time

	authorization.AuthorizeRequester
}

// StoreAuthorizeCode is an authorization code session with its single-use state.
type StoreAuthorizeCode struct {
	active bool

	authorization.Requester
}

// ConsentRelation keys a stored consent by its subject and client.
type ConsentRelation struct {
	Subject  string
	ClientID string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Clients:               make(map[string]authorization.Client),
		AuthorizationRequests: make(map[string]StoreAuthorizationRequest),
		AuthorizeCodes:        make(map[string]StoreAuthorizeCode),
		AccessTokens:          make(map[string]authorization.Requester),
		IDSessions:            make(map[string]authorization.Requester),
		Consents:              make(map[ConsentRelation]*authorization.Consent),
	}
}

func (s *MemoryStore) GetClient(_ context.Context, id string) (authorization.Client, error) {
	s.clientsMutex.RLock()
	defer s.clientsMutex.RUnlock()

	client, ok := s.Clients[id]
	if !ok {
		return nil, authorization.ErrNotFound
	}

	return client, nil
}

func (s *MemoryStore) CreateAuthorizationRequestSession(ctx context.Context, requester authorization.AuthorizeRequester) error {
	s.authorizationRequestsMutex.Lock()
	defer s.authorizationRequestsMutex.Unlock()

	s.AuthorizationRequests[requester.GetID()] = StoreAuthorizationRequest{
		ExpiresAt:          time.Now().UTC().Add(s.requestLifespan(ctx)),
		AuthorizeRequester: snapshotRequester(requester),
	}

	return nil
}

func (s *MemoryStore) GetAuthorizationRequestSession(_ context.Context, id string) (authorization.AuthorizeRequester, error) {
	s.authorizationRequestsMutex.RLock()
	rel, ok := s.AuthorizationRequests[id]
	s.authorizationRequestsMutex.RUnlock()

	if !ok {
		return nil, authorization.ErrNotFound
	}

	if time.Now().UTC().After(rel.ExpiresAt) {
		s.authorizationRequestsMutex.Lock()
		delete(s.AuthorizationRequests, id)
		s.authorizationRequestsMutex.Unlock()

		return nil, authorization.ErrNotFound
	}

	return rel.AuthorizeRequester, nil
}

func (s *MemoryStore) UpdateAuthorizationRequestSession(ctx context.Context, requester authorization.AuthorizeRequester) error {
	s.authorizationRequestsMutex.Lock()
	defer s.authorizationRequestsMutex.Unlock()

	rel, ok := s.AuthorizationRequests[requester.GetID()]
	if !ok {
		return authorization.ErrNotFound
	}

	rel.AuthorizeRequester = snapshotRequester(requester)
	s.AuthorizationRequests[requester.GetID()] = rel

	return nil
}

func (s *MemoryStore) DeleteAuthorizationRequestSession(_ context.Context, id string) error {
	s.authorizationRequestsMutex.Lock()
	defer s.authorizationRequestsMutex.Unlock()

	delete(s.AuthorizationRequests, id)

	return nil
}

func (s *MemoryStore) CreateAuthorizeCodeSession(_ context.Context, signature string, requester authorization.Requester) error {
	s.authorizeCodesMutex.Lock()
	defer s.authorizeCodesMutex.Unlock()

	s.AuthorizeCodes[signature] = StoreAuthorizeCode{active: true, Requester: requester}

	return nil
}

func (s *MemoryStore) GetAuthorizeCodeSession(_ context.Context, signature string) (authorization.Requester, error) {
	s.authorizeCodesMutex.RLock()
	defer s.authorizeCodesMutex.RUnlock()

	rel, ok := s.AuthorizeCodes[signature]
	if !ok {
		return nil, authorization.ErrNotFound
	}

	if !rel.active {
		return rel, authorization.ErrInvalidatedAuthorizeCode
	}

	return rel.Requester, nil
}

func (s *MemoryStore) InvalidateAuthorizeCodeSession(_ context.Context, signature string) error {
	s.authorizeCodesMutex.Lock()
	defer s.authorizeCodesMutex.Unlock()

	rel, ok := s.AuthorizeCodes[signature]
	if !ok {
		return authorization.ErrNotFound
	}

	rel.active = false
	s.AuthorizeCodes[signature] = rel

	return nil
}

func (s *MemoryStore) CreateAccessTokenSession(_ context.Context, signature string, requester authorization.Requester) error {
	s.accessTokensMutex.Lock()
	defer s.accessTokensMutex.Unlock()

	s.AccessTokens[signature] = requester

	return nil
}

func (s *MemoryStore) GetAccessTokenSession(_ context.Context, signature string) (authorization.Requester, error) {
	s.accessTokensMutex.RLock()
	defer s.accessTokensMutex.RUnlock()

	rel, ok := s.AccessTokens[signature]
	if !ok {
		return nil, authorization.ErrNotFound
	}

	return rel, nil
}

func (s *MemoryStore) DeleteAccessTokenSession(_ context.Context, signature string) error {
	s.accessTokensMutex.Lock()
	defer s.accessTokensMutex.Unlock()

	delete(s.AccessTokens, signature)

	return nil
}

func (s *MemoryStore) CreateOpenIDConnectSession(_ context.Context, authorizeCode string, requester authorization.Requester) error {
	s.idSessionsMutex.Lock()
	defer s.idSessionsMutex.Unlock()

	s.IDSessions[authorizeCode] = requester

	return nil
}

func (s *MemoryStore) GetOpenIDConnectSession(_ context.Context, authorizeCode string) (authorization.Requester, error) {
	s.idSessionsMutex.RLock()
	defer s.idSessionsMutex.RUnlock()

	rel, ok := s.IDSessions[authorizeCode]
	if !ok {
		return nil, authorization.ErrNotFound
	}

	return rel, nil
}

func (s *MemoryStore) DeleteOpenIDConnectSession(_ context.Context, authorizeCode string) error {
	s.idSessionsMutex.Lock()
	defer s.idSessionsMutex.Unlock()

	delete(s.IDSessions, authorizeCode)

	return nil
}

func (s *MemoryStore) GetConsent(_ context.Context, subject, clientID string) (*authorization.Consent, error) {
	s.consentsMutex.RLock()
	defer s.consentsMutex.RUnlock()

	consent, ok := s.Consents[ConsentRelation{Subject: subject, ClientID: clientID}]
	if !ok {
		return nil, authorization.ErrNotFound
	}

	return consent, nil
}

func (s *MemoryStore) CreateConsent(_ context.Context, consent *authorization.Consent) error {
	s.consentsMutex.Lock()
	defer s.consentsMutex.Unlock()

	s.Consents[ConsentRelation{Subject: consent.Subject, ClientID: consent.ClientID}] = consent

	return nil
}

func (s *MemoryStore) RevokeConsent(_ context.Context, subject, clientID string) error {
	s.consentsMutex.Lock()
	defer s.consentsMutex.Unlock()

	delete(s.Consents, ConsentRelation{Subject: subject, ClientID: clientID})

	return nil
}

func (s *MemoryStore) requestLifespan(ctx context.Context) time.Duration {
	if s.Config != nil {
		return s.Config.GetAuthorizationRequestLifespan(ctx)
	}

	return time.Minute * 30
}

// snapshotRequester decouples the stored request from the caller's instance so later mutations
// do not leak into storage without an explicit update.
func snapshotRequester(requester authorization.AuthorizeRequester) authorization.AuthorizeRequester {
	if copied, ok := deepcopy.Copy(requester).(authorization.AuthorizeRequester); ok {
		return copied
	}

	return requester
}
