// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"encoding/json"
	stderr "errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/oauth2-framework/authorization/i18n"
	"github.com/oauth2-framework/authorization/internal/errorsx"
)

var (
	// ErrInvalidRequest represents the 'invalid_request' error from RFC6749.
	//
	// See: https://datatracker.ietf.org/doc/html/rfc6749#section-4.1.2.1
	ErrInvalidRequest = &RFC6749Error{
		ErrorField:       errInvalidRequestName,
		DescriptionField: "The request is missing a required parameter, includes an invalid parameter value, includes a parameter more than once, or is otherwise malformed.",
		HintField:        "Make sure that the various parameters are correct, be aware of case sensitivity and trim your parameters. Make sure that the client you are using has exactly whitelisted the redirect_uri you specified.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrUnauthorizedClient represents the 'unauthorized_client' error from RFC6749 for the Authorization Code Grant.
	//
	// See: https://datatracker.ietf.org/doc/html/rfc6749#section-4.1.2.1
	ErrUnauthorizedClient = &RFC6749Error{
		ErrorField:       errUnauthorizedClientName,
		DescriptionField: "The client is not authorized to request an authorization code using this method.",
		HintField:        "Make sure that client id and secret are correctly specified and that the client exists.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrAccessDenied represents the 'access_denied' error from RFC6749 for the Authorization Code and Implicit Grant.
	//
	// See: https://datatracker.ietf.org/doc/html/rfc6749#section-4.1.2.1
	ErrAccessDenied = &RFC6749Error{
		ErrorField:       errAccessDeniedName,
		DescriptionField: "The resource owner or authorization server denied the request.",
		HintField:        "Make sure that the request you are making is valid. Maybe the credential or request parameters you are using are limited in scope or otherwise restricted.",
		CodeField:        http.StatusForbidden,
	}

	// ErrUnsupportedResponseType represents the 'unsupported_response_type' error from RFC6749.
	//
	// See: https://datatracker.ietf.org/doc/html/rfc6749#section-4.1.2.1
	ErrUnsupportedResponseType = &RFC6749Error{
		ErrorField:       errUnsupportedResponseTypeName,
		DescriptionField: "The authorization server does not support obtaining a token using this method.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrUnsupportedResponseMode represents the 'unsupported_response_mode' error from the
	// OAuth 2.0 Multiple Response Type Encoding Practices specification.
	ErrUnsupportedResponseMode = &RFC6749Error{
		ErrorField:       errUnsupportedResponseModeName,
		DescriptionField: "The authorization server does not support obtaining a response using this response mode.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrInvalidScope represents the 'invalid_scope' error from RFC6749.
	//
	// See: https://datatracker.ietf.org/doc/html/rfc6749#section-4.1.2.1
	ErrInvalidScope = &RFC6749Error{
		ErrorField:       errInvalidScopeName,
		DescriptionField: "The requested scope is invalid, unknown, or malformed.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrServerError represents the 'server_error' error from RFC6749.
	//
	// See: https://datatracker.ietf.org/doc/html/rfc6749#section-4.1.2.1
	ErrServerError = &RFC6749Error{
		ErrorField:       errServerErrorName,
		DescriptionField: "The authorization server encountered an unexpected condition that prevented it from fulfilling the request.",
		CodeField:        http.StatusInternalServerError,
	}

	// ErrTemporarilyUnavailable represents the 'temporarily_unavailable' error from RFC6749.
	//
	// See: https://datatracker.ietf.org/doc/html/rfc6749#section-4.1.2.1
	ErrTemporarilyUnavailable = &RFC6749Error{
		ErrorField:       errTemporarilyUnavailableName,
		DescriptionField: "The authorization server is currently unable to handle the request due to a temporary overloading or maintenance of the server.",
		CodeField:        http.StatusServiceUnavailable,
	}

	// ErrClientNotFound is raised when the 'client_id' parameter references an unknown client. It intentionally
	// presents as 'invalid_request' at the wire boundary.
	ErrClientNotFound = &RFC6749Error{
		ErrorField:       errInvalidRequestName,
		DescriptionField: "The requested OAuth 2.0 Client does not exist.",
		HintField:        "Make sure the 'client_id' parameter references an existing client.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrLoginRequired represents the 'login_required' error from OpenID Connect Core 1.0 Section 3.1.2.6.
	ErrLoginRequired = &RFC6749Error{
		ErrorField:       errLoginRequiredName,
		DescriptionField: "The Authorization Server requires End-User authentication.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrConsentRequired represents the 'consent_required' error from OpenID Connect Core 1.0 Section 3.1.2.6.
	ErrConsentRequired = &RFC6749Error{
		ErrorField:       errConsentRequiredName,
		DescriptionField: "The Authorization Server requires End-User consent.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrInteractionRequired represents the 'interaction_required' error from OpenID Connect Core 1.0 Section 3.1.2.6.
	ErrInteractionRequired = &RFC6749Error{
		ErrorField:       errInteractionRequiredName,
		DescriptionField: "The Authorization Server requires End-User interaction of some form to proceed.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrInsufficientEntropy is raised when a security sensitive parameter does not carry enough
	// entropy to be unguessable.
	ErrInsufficientEntropy = &RFC6749Error{
		ErrorField:       errInvalidRequestName,
		DescriptionField: "The request used a security parameter (e.g., anti-replay, anti-csrf) with insufficient entropy.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrInvalidState is raised when the 'state' parameter is absent while enforced or too short to be considered
	// unguessable.
	ErrInvalidState = &RFC6749Error{
		ErrorField:       errInvalidStateName,
		DescriptionField: "The state is missing or does not have enough characters and is therefore considered too weak.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrNotFound is raised when an in-flight authorization request cannot be found, was already consumed, or
	// outlived its storage lifespan.
	ErrNotFound = &RFC6749Error{
		ErrorField:       errNotFoundName,
		DescriptionField: "Could not find the requested resource(s).",
		CodeField:        http.StatusNotFound,
	}

	// ErrInvalidRequestObject represents the 'invalid_request_object' error from OpenID Connect Core 1.0.
	ErrInvalidRequestObject = &RFC6749Error{
		ErrorField:       errInvalidRequestObjectName,
		DescriptionField: "The request parameter contains an invalid Request Object.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrInvalidRequestURI represents the 'invalid_request_uri' error from OpenID Connect Core 1.0.
	ErrInvalidRequestURI = &RFC6749Error{
		ErrorField:       errInvalidRequestURIName,
		DescriptionField: "The request_uri in the Authorization Request returns an error or contains invalid data.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrRequestNotSupported represents the 'request_not_supported' error from OpenID Connect Core 1.0.
	ErrRequestNotSupported = &RFC6749Error{
		ErrorField:       errRequestNotSupportedName,
		DescriptionField: "The authorization server does not support the use of the request parameter.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrRequestURINotSupported represents the 'request_uri_not_supported' error from OpenID Connect Core 1.0.
	ErrRequestURINotSupported = &RFC6749Error{
		ErrorField:       errRequestURINotSupportedName,
		DescriptionField: "The authorization server does not support the use of the request_uri parameter.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrRegistrationNotSupported represents the 'registration_not_supported' error from OpenID Connect Core 1.0.
	ErrRegistrationNotSupported = &RFC6749Error{
		ErrorField:       errRegistrationNotSupportedName,
		DescriptionField: "The OP does not support use of the registration parameter.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrInvalidatedAuthorizeCode is an error indicating that an authorization code has been
	// used previously.
	ErrInvalidatedAuthorizeCode = stderr.New("Authorization code has ben invalidated")

	// ErrTokenExpired represents the 'invalid_token' error from RFC6750 for expired tokens.
	ErrTokenExpired = &RFC6749Error{
		ErrorField:       errTokenExpiredName,
		DescriptionField: "The access token provided is expired, revoked, malformed, or invalid for other reasons.",
		CodeField:        http.StatusUnauthorized,
	}

	// ErrTokenSignatureMismatch occurs when a token's signature does not match its payload.
	ErrTokenSignatureMismatch = &RFC6749Error{
		ErrorField:       errTokenSignatureMismatchName,
		DescriptionField: "Token signature mismatch.",
		HintField:        "Check that you provided a valid token in the right format.",
		CodeField:        http.StatusBadRequest,
	}

	// ErrInvalidTokenFormat occurs when a token is structurally malformed.
	ErrInvalidTokenFormat = &RFC6749Error{
		ErrorField:       errInvalidTokenFormatName,
		DescriptionField: "Invalid token format.",
		HintField:        "Check that you provided a valid token in the right format.",
		CodeField:        http.StatusBadRequest,
	}
)

const (
	errInvalidRequestName           = "invalid_request"
	errUnauthorizedClientName       = "unauthorized_client"
	errAccessDeniedName             = "access_denied"
	errUnsupportedResponseTypeName  = "unsupported_response_type"
	errUnsupportedResponseModeName  = "unsupported_response_mode"
	errInvalidScopeName             = "invalid_scope"
	errServerErrorName              = "server_error"
	errTemporarilyUnavailableName   = "temporarily_unavailable"
	errLoginRequiredName            = "login_required"
	errConsentRequiredName          = "consent_required"
	errInteractionRequiredName      = "interaction_required"
	errInvalidStateName             = "invalid_state"
	errNotFoundName                 = "not_found"
	errInvalidRequestObjectName     = "invalid_request_object"
	errInvalidRequestURIName        = "invalid_request_uri"
	errRequestNotSupportedName      = "request_not_supported"
	errRequestURINotSupportedName   = "request_uri_not_supported"
	errRegistrationNotSupportedName = "registration_not_supported"
	errTokenExpiredName             = "invalid_token" // https://datatracker.ietf.org/doc/html/rfc6750#section-3.1
	errInvalidTokenFormatName       = "invalid_token"
	errTokenSignatureMismatchName   = "token_signature_mismatch"
	errUnknownErrorName             = "error"
)

type RFC6749Error struct {
	ErrorField       string
	DescriptionField string
	HintField        string
	CodeField        int
	DebugField       string
	cause            error
	useLegacyFormat  bool
	exposeDebug      bool

	// Fields for globalization
	hintIDField string
	hintArgs    []any
	catalog     i18n.MessageCatalog
	lang        language.Tag
}

var (
	_ errorsx.DebugCarrier      = new(RFC6749Error)
	_ errorsx.ReasonCarrier     = new(RFC6749Error)
	_ errorsx.RequestIDCarrier  = new(RFC6749Error)
	_ errorsx.StatusCarrier     = new(RFC6749Error)
	_ errorsx.StatusCodeCarrier = new(RFC6749Error)
	_ errorsx.DetailsCarrier    = new(RFC6749Error)
)

func ErrorToRFC6749Error(err error) *RFC6749Error {
	var e *RFC6749Error

	if errors.As(err, &e) {
		return e
	}

	return &RFC6749Error{
		ErrorField:       errUnknownErrorName,
		DescriptionField: "The error is unrecognizable",
		DebugField:       err.Error(),
		CodeField:        http.StatusInternalServerError,
		cause:            err,
	}
}

// StackTrace returns the error's stack trace.
func (e *RFC6749Error) StackTrace() (trace errors.StackTrace) {
	if e.cause == e || e.cause == nil {
		return
	}

	if st := errorsx.StackTracer(nil); stderr.As(e.cause, &st) {
		trace = st.StackTrace()
	}

	return
}

func (e RFC6749Error) Unwrap() error {
	return e.cause
}

func (e *RFC6749Error) Wrap(err error) {
	e.cause = err
}

func (e RFC6749Error) WithWrap(cause error) *RFC6749Error {
	e.cause = cause

	return &e
}

func (e RFC6749Error) WithLegacyFormat(useLegacyFormat bool) *RFC6749Error {
	e.useLegacyFormat = useLegacyFormat
	return &e
}

func (e RFC6749Error) Is(err error) bool {
	switch te := err.(type) {
	case RFC6749Error:
		return e.ErrorField == te.ErrorField &&
			e.CodeField == te.CodeField
	case *RFC6749Error:
		return e.ErrorField == te.ErrorField &&
			e.CodeField == te.CodeField
	}
	return false
}

func (e *RFC6749Error) Status() string {
	return http.StatusText(e.CodeField)
}

func (e RFC6749Error) Error() string {
	return e.ErrorField
}

func (e *RFC6749Error) RequestID() string {
	return ""
}

func (e *RFC6749Error) Reason() string {
	return e.HintField
}

func (e *RFC6749Error) Details() map[string]any {
	return nil
}

func (e *RFC6749Error) StatusCode() int {
	return e.CodeField
}

func (e *RFC6749Error) Cause() error {
	return e.cause
}

func (e *RFC6749Error) WithHintf(hint string, args ...any) *RFC6749Error {
	err := *e
	if err.hintIDField == "" {
		err.hintIDField = hint
	}

	err.hintArgs = args
	err.HintField = fmt.Sprintf(hint, args...)
	return &err
}

func (e *RFC6749Error) WithHint(hint string) *RFC6749Error {
	err := *e
	if err.hintIDField == "" {
		err.hintIDField = hint
	}

	err.HintField = hint
	return &err
}

func (e *RFC6749Error) Debug() string {
	return e.DebugField
}

func (e *RFC6749Error) WithDebug(debug string) *RFC6749Error {
	err := *e
	err.DebugField = debug

	return &err
}

func (e *RFC6749Error) WithDebugError(debug error) *RFC6749Error {
	return e.WithDebug(ErrorToDebugRFC6749Error(debug).Error())
}

func (e *RFC6749Error) WithDebugf(debug string, args ...any) *RFC6749Error {
	return e.WithDebug(fmt.Sprintf(debug, args...))
}

func (e *RFC6749Error) WithDescription(description string) *RFC6749Error {
	err := *e
	err.DescriptionField = description
	return &err
}

func (e *RFC6749Error) WithLocalizer(catalog i18n.MessageCatalog, lang language.Tag) *RFC6749Error {
	err := *e
	err.catalog = catalog
	err.lang = lang
	return &err
}

// WithExposeDebug if set to true exposes debug messages.
func (e *RFC6749Error) WithExposeDebug(exposeDebug bool) *RFC6749Error {
	err := *e
	err.exposeDebug = exposeDebug

	return &err
}

// GetDescription returns a more descriptive description, combined with hint and debug (when available).
func (e *RFC6749Error) GetDescription() string {
	description := i18n.GetMessageOrDefault(e.catalog, e.ErrorField, e.lang, e.DescriptionField)
	e.computeHintField()

	if e.HintField != "" {
		description += " " + e.HintField
	}

	if e.exposeDebug && e.DebugField != "" {
		description += " " + e.DebugField
	}

	return strings.ReplaceAll(description, "\"", "'")
}

// RFC6749ErrorJson is a helper struct for JSON encoding/decoding of RFC6749Error.
type RFC6749ErrorJson struct {
	Name        string `json:"error"`
	Description string `json:"error_description"`
	Hint        string `json:"error_hint,omitempty"`
	Code        int    `json:"status_code,omitempty"`
	Debug       string `json:"error_debug,omitempty"`
}

func (e *RFC6749Error) UnmarshalJSON(b []byte) error {
	var data RFC6749ErrorJson

	if err := json.Unmarshal(b, &data); err != nil {
		return err
	}

	e.ErrorField = data.Name
	e.CodeField = data.Code
	e.DescriptionField = data.Description

	if len(data.Hint+data.Debug) > 0 {
		e.HintField = data.Hint
		e.DebugField = data.Debug
		e.useLegacyFormat = true
	}

	return nil
}

func (e RFC6749Error) MarshalJSON() ([]byte, error) {
	if !e.useLegacyFormat {
		return json.Marshal(&RFC6749ErrorJson{
			Name:        e.ErrorField,
			Description: e.GetDescription(),
		})
	}

	var debug string
	if e.exposeDebug {
		debug = e.DebugField
	}

	return json.Marshal(&RFC6749ErrorJson{
		Name:        e.ErrorField,
		Description: e.DescriptionField,
		Hint:        e.HintField,
		Code:        e.CodeField,
		Debug:       debug,
	})
}

func (e *RFC6749Error) ToValues() url.Values {
	values := url.Values{}
	values.Set("error", e.ErrorField)
	values.Set("error_description", e.GetDescription())

	if e.useLegacyFormat {
		values.Set("error_description", e.DescriptionField)
		if e.HintField != "" {
			values.Set("error_hint", e.HintField)
		}

		if e.DebugField != "" && e.exposeDebug {
			values.Set("error_debug", e.DebugField)
		}
	}

	return values
}

func (e *RFC6749Error) computeHintField() {
	if e.hintIDField == "" {
		return
	}

	e.HintField = i18n.GetMessageOrDefault(e.catalog, e.hintIDField, e.lang, e.HintField, e.hintArgs...)
}

// ErrorToDebugRFC6749Error converts the provided error to a *DebugRFC6749Error provided it is not nil and can be
// cast as a *RFC6749Error.
func ErrorToDebugRFC6749Error(err error) (rfc error) {
	if err == nil {
		return nil
	}

	var e *RFC6749Error

	if errors.As(err, &e) {
		return &DebugRFC6749Error{e}
	}

	return err
}

// DebugRFC6749Error is a decorator type which makes the underlying *RFC6749Error expose debug information and
// show the full error description.
type DebugRFC6749Error struct {
	*RFC6749Error
}

// Error implements the builtin error interface and shows the error with its debug info and description.
func (err *DebugRFC6749Error) Error() string {
	return err.WithExposeDebug(true).GetDescription()
}

// EscapeJSONString escapes the quotes and backslashes of a string for safe inclusion in a JSON
// string value.
func EscapeJSONString(str string) string {
	str = strings.ReplaceAll(str, "\\", "\\\\")
	str = strings.ReplaceAll(str, "\"", "\\\"")

	return str
}
