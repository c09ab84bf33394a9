// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/text/language"

	"github.com/oauth2-framework/authorization/internal/consts"
)

// DefaultResponseModeHandler handles the query, fragment, and form_post
// response modes as well as requests without an explicit response mode.
type DefaultResponseModeHandler struct {
	Config ResponseModeHandlerConfigurator
}

var (
	_ ResponseModeHandler = (*DefaultResponseModeHandler)(nil)
)

// ResponseModes returns the response modes this ResponseModeHandler is responsible for.
func (h *DefaultResponseModeHandler) ResponseModes() ResponseModeTypes {
	return ResponseModeTypes{
		ResponseModeDefault,
		ResponseModeQuery,
		ResponseModeFragment,
		ResponseModeFormPost,
	}
}

// WriteAuthorizeResponse writes authorization responses.
func (h *DefaultResponseModeHandler) WriteAuthorizeResponse(ctx context.Context, rw http.ResponseWriter, requester AuthorizeRequester, responder AuthorizeResponder) {
	header := rw.Header()

	header.Set(consts.HeaderCacheControl, consts.CacheControlNoStore)
	header.Set(consts.HeaderPragma, consts.PragmaNoCache)

	rheader := responder.GetHeader()

	for k := range rheader {
		header.Set(k, rheader.Get(k))
	}

	h.handleWriteAuthorizeResponse(ctx, rw, requester, responder.GetParameters())
}

// WriteAuthorizeError writes authorization errors.
func (h *DefaultResponseModeHandler) WriteAuthorizeError(ctx context.Context, rw http.ResponseWriter, requester AuthorizeRequester, e error) {
	rfc := ErrorToRFC6749Error(e).
		WithLegacyFormat(h.Config.GetUseLegacyErrorFormat(ctx)).
		WithExposeDebug(h.Config.GetSendDebugMessagesToClients(ctx)).
		WithLocalizer(h.Config.GetMessageCatalog(ctx), getLangFromRequester(requester))

	if !requester.IsRedirectURIValid() {
		h.handleWriteAuthorizeErrorJSON(ctx, rw, rfc)

		return
	}

	parameters := rfc.ToValues()

	if state := requester.GetState(); len(state) != 0 {
		parameters.Set(consts.FormParameterState, state)
	}

	h.handleWriteAuthorizeResponse(ctx, rw, requester, parameters)
}

func (h *DefaultResponseModeHandler) handleWriteAuthorizeResponse(ctx context.Context, rw http.ResponseWriter, requester AuthorizeRequester, parameters url.Values) {
	redirectURI := requester.GetRedirectURI()
	redirectURI.Fragment = ""

	var location string

	// RFC9207 OAuth 2.0 Authorization Server Issuer Identification.
	// See Also: https://datatracker.ietf.org/doc/html/rfc9207.
	if issuer := h.Config.GetAuthorizationServerIdentificationIssuer(ctx); len(issuer) != 0 {
		parameters.Set(consts.FormParameterIssuer, issuer)
	}

	switch requester.GetResponseMode() {
	case ResponseModeFormPost:
		rw.Header().Set(consts.HeaderContentType, consts.ContentTypeTextHTML)
		h.Config.GetFormPostResponseWriter(ctx)(rw, GetPostFormHTMLTemplate(ctx, h.Config), redirectURI.String(), parameters)

		return
	case ResponseModeQuery, ResponseModeDefault:
		for key, values := range redirectURI.Query() {
			for _, value := range values {
				parameters.Add(key, value)
			}
		}

		redirectURI.RawQuery = parameters.Encode()

		location = redirectURI.String()
	case ResponseModeFragment:
		location = redirectURI.String() + "#" + parameters.Encode()
	}

	rw.Header().Set(consts.HeaderLocation, location)
	rw.WriteHeader(http.StatusSeeOther)
}

func (h *DefaultResponseModeHandler) handleWriteAuthorizeErrorJSON(ctx context.Context, rw http.ResponseWriter, rfc *RFC6749Error) {
	rw.Header().Set(consts.HeaderContentType, consts.ContentTypeApplicationJSON)

	var (
		data []byte
		err  error
	)

	if data, err = json.Marshal(rfc); err != nil {
		if h.Config.GetSendDebugMessagesToClients(ctx) {
			errorMessage := EscapeJSONString(err.Error())
			http.Error(rw, fmt.Sprintf(`{"error":"server_error","error_description":"%s"}`, errorMessage), http.StatusInternalServerError)
		} else {
			http.Error(rw, `{"error":"server_error"}`, http.StatusInternalServerError)
		}

		return
	}

	rw.WriteHeader(rfc.CodeField)
	_, _ = rw.Write(data)
}

func getLangFromRequester(requester Requester) language.Tag {
	if requester == nil {
		return language.English
	}

	return requester.GetLang()
}

// ResponseModeHandlerConfigurator is the configuration contract required by
// the DefaultResponseModeHandler.
type ResponseModeHandlerConfigurator interface {
	FormPostHTMLTemplateProvider
	FormPostResponseProvider
	MessageCatalogProvider
	SendDebugMessagesToClientsProvider
	AuthorizationServerIssuerIdentificationProvider
	UseLegacyErrorFormatProvider
}
