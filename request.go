// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/oauth2-framework/authorization/internal/consts"
)

// PromptValues returns the individual values of the requester's space-delimited 'prompt'
// parameter.
func PromptValues(requester Requester) Arguments {
	return RemoveEmpty(Arguments(strings.Split(requester.GetRequestForm().Get(consts.FormParameterPrompt), " ")))
}

// Request is an implementation of Requester.
type Request struct {
	ID             string       `json:"id"`
	RequestedAt    time.Time    `json:"requestedAt"`
	Client         Client       `json:"client"`
	RequestedScope Arguments    `json:"scopes"`
	GrantedScope   Arguments    `json:"grantedScopes"`
	Form           url.Values   `json:"form"`
	Lang           language.Tag `json:"-"`
}

func NewRequest() *Request {
	return &Request{
		ID:             uuid.NewString(),
		RequestedAt:    time.Now().UTC(),
		RequestedScope: Arguments{},
		GrantedScope:   Arguments{},
		Form:           url.Values{},
	}
}

func (a *Request) SetID(id string) {
	a.ID = id
}

func (a *Request) GetID() string {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	return a.ID
}

func (a *Request) GetRequestForm() url.Values {
	return a.Form
}

func (a *Request) GetRequestedAt() time.Time {
	return a.RequestedAt
}

func (a *Request) GetClient() Client {
	return a.Client
}

func (a *Request) GetRequestedScopes() Arguments {
	return a.RequestedScope
}

func (a *Request) SetRequestedScopes(s Arguments) {
	a.RequestedScope = nil
	for _, scope := range s {
		a.AppendRequestedScope(scope)
	}
}

func (a *Request) AppendRequestedScope(scope string) {
	for _, has := range a.RequestedScope {
		if scope == has {
			return
		}
	}

	a.RequestedScope = append(a.RequestedScope, scope)
}

func (a *Request) GetGrantedScopes() Arguments {
	return a.GrantedScope
}

func (a *Request) GrantScope(scope string) {
	for _, has := range a.GrantedScope {
		if scope == has {
			return
		}
	}

	a.GrantedScope = append(a.GrantedScope, scope)
}

func (a *Request) Merge(request Requester) {
	for _, scope := range request.GetRequestedScopes() {
		a.AppendRequestedScope(scope)
	}

	for _, scope := range request.GetGrantedScopes() {
		a.GrantScope(scope)
	}

	a.ID = request.GetID()
	a.RequestedAt = request.GetRequestedAt()
	a.Client = request.GetClient()
	a.Lang = request.GetLang()

	for k, v := range request.GetRequestForm() {
		a.Form[k] = v
	}
}

func (a *Request) Sanitize(allowedParameters []string) Requester {
	b := new(Request)
	allowed := map[string]bool{}

	for _, v := range allowedParameters {
		allowed[v] = true
	}

	*b = *a

	b.ID = a.GetID()
	b.Form = url.Values{}

	for k := range a.Form {
		if allowed[k] {
			b.Form[k] = a.Form[k]
		}
	}

	return b
}

func (a *Request) GetLang() language.Tag {
	return a.Lang
}
