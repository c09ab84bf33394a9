// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"net/http"
	"net/url"
	"reflect"
	"time"

	"github.com/oleiade/reflections"
)

// AuthorizationRequest is an implementation of AuthorizeRequester. It carries the parsed request
// parameters together with the lifecycle state accumulated while the request is interrupted for
// login and consent interactions.
type AuthorizationRequest struct {
	ResponseTypes        Arguments          `json:"responseTypes"`
	RedirectURI          *url.URL           `json:"redirectUri"`
	State                string             `json:"state"`
	HandledResponseTypes Arguments          `json:"handledResponseTypes"`
	ResponseMode         ResponseModeType   `json:"responseMode"`
	DefaultResponseMode  ResponseModeType   `json:"defaultResponseMode"`
	AuthorizationState   AuthorizationState `json:"authorizationState"`
	UserAccount          UserAccount        `json:"userAccount"`
	AuthenticatedAt      time.Time          `json:"authenticatedAt"`
	ConsentProcessed     bool               `json:"consentProcessed"`
	ConsentGranted       bool               `json:"consentGranted"`
	ResponseParameters   url.Values         `json:"responseParameters"`
	ResponseHeaders      http.Header        `json:"responseHeaders"`

	Request
}

func NewAuthorizationRequest() *AuthorizationRequest {
	return &AuthorizationRequest{
		ResponseTypes:        Arguments{},
		HandledResponseTypes: Arguments{},
		ResponseParameters:   url.Values{},
		ResponseHeaders:      http.Header{},
		Request:              *NewRequest(),
	}
}

func (d *AuthorizationRequest) IsRedirectURIValid() bool {
	if d.GetRedirectURI() == nil {
		return false
	}

	raw := d.GetRedirectURI().String()
	if d.GetClient() == nil {
		return false
	}

	redirectURI, err := MatchRedirectURIWithClientRedirectURIs(raw, d.GetClient())
	if err != nil {
		return false
	}

	return IsValidRedirectURI(redirectURI)
}

func (d *AuthorizationRequest) GetResponseTypes() Arguments {
	return d.ResponseTypes
}

func (d *AuthorizationRequest) GetState() string {
	return d.State
}

func (d *AuthorizationRequest) GetRedirectURI() *url.URL {
	return d.RedirectURI
}

func (d *AuthorizationRequest) GetResponseMode() ResponseModeType {
	return d.ResponseMode
}

func (d *AuthorizationRequest) SetDefaultResponseMode(mode ResponseModeType) {
	if d.ResponseMode == ResponseModeDefault {
		d.ResponseMode = mode
	}

	d.DefaultResponseMode = mode
}

func (d *AuthorizationRequest) GetDefaultResponseMode() ResponseModeType {
	return d.DefaultResponseMode
}

func (d *AuthorizationRequest) SetResponseTypeHandled(name string) {
	d.HandledResponseTypes = append(d.HandledResponseTypes, name)
}

func (d *AuthorizationRequest) DidHandleAllResponseTypes() bool {
	for _, rt := range d.ResponseTypes {
		if !d.HandledResponseTypes.Has(rt) {
			return false
		}
	}

	return len(d.ResponseTypes) > 0
}

func (d *AuthorizationRequest) GetAuthorizationState() AuthorizationState {
	return d.AuthorizationState
}

func (d *AuthorizationRequest) SetAuthorizationState(state AuthorizationState) {
	d.AuthorizationState = state
}

func (d *AuthorizationRequest) GetUserAccount() UserAccount {
	return d.UserAccount
}

func (d *AuthorizationRequest) SetUserAccount(account UserAccount) {
	d.UserAccount = account
}

func (d *AuthorizationRequest) GetResponseHeaders() http.Header {
	return d.ResponseHeaders
}

func (d *AuthorizationRequest) GetResponseParameters() url.Values {
	return d.ResponseParameters
}

// Merge copies the values of the given requester into this request. Composite fields are merged
// by hand, scalar fields generically so lifecycle fields added to this struct later are picked
// up without touching this method.
func (d *AuthorizationRequest) Merge(requester Requester) {
	d.Request.Merge(requester)

	source, ok := requester.(*AuthorizationRequest)
	if !ok {
		return
	}

	d.ResponseTypes = append(Arguments{}, source.ResponseTypes...)
	d.HandledResponseTypes = append(Arguments{}, source.HandledResponseTypes...)

	if source.RedirectURI != nil {
		uri := *source.RedirectURI
		d.RedirectURI = &uri
	}

	if source.UserAccount != nil {
		d.UserAccount = source.UserAccount
	}

	if !source.AuthenticatedAt.IsZero() {
		d.AuthenticatedAt = source.AuthenticatedAt
	}

	for k, v := range source.ResponseParameters {
		d.ResponseParameters[k] = v
	}

	for k, v := range source.ResponseHeaders {
		d.ResponseHeaders[k] = v
	}

	fields, err := reflections.Fields(source)
	if err != nil {
		return
	}

	for _, field := range fields {
		kind, err := reflections.GetFieldKind(source, field)
		if err != nil {
			continue
		}

		value, err := reflections.GetField(source, field)
		if err != nil {
			continue
		}

		switch kind {
		case reflect.String:
			if reflect.ValueOf(value).String() != "" {
				_ = reflections.SetField(d, field, value)
			}
		case reflect.Bool:
			if reflect.ValueOf(value).Bool() {
				_ = reflections.SetField(d, field, value)
			}
		case reflect.Int:
			if reflect.ValueOf(value).Int() != 0 {
				_ = reflections.SetField(d, field, value)
			}
		}
	}
}

func (d *AuthorizationRequest) Sanitize(allowedParameters []string) Requester {
	b := *d
	b.Request = *(d.Request.Sanitize(allowedParameters).(*Request))

	return &b
}
