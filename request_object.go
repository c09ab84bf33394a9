// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jose "github.com/go-jose/go-jose/v4"

	"github.com/oauth2-framework/authorization/internal/consts"
	"github.com/oauth2-framework/authorization/internal/errorsx"
	"github.com/oauth2-framework/authorization/internal/stringslice"
)

const (
	jwtAlgorithmNone = "none"

	claimIssuer    = "iss"
	claimAudience  = "aud"
	claimSubject   = "sub"
	claimExpiresAt = "exp"
	claimNotBefore = "nbf"
)

// authorizeRequestParametersFromRequestObject extracts the authorization parameters carried in
// the OpenID Connect 1.0 'request' or 'request_uri' parameter and merges them into the request
// form. Parameters in the request object take precedence over the OAuth 2.0 request syntax,
// except for 'client_id' and 'response_type' which must match when present.
//
//nolint:gocyclo
func (f *Authorizer) authorizeRequestParametersFromRequestObject(ctx context.Context, request *AuthorizationRequest) error {
	var scope Arguments = RemoveEmpty(Arguments(strings.Split(request.Form.Get(consts.FormParameterScope), " ")))

	// Even if a scope parameter is present in the Request Object value, a scope parameter MUST always be passed using
	// the OAuth 2.0 request syntax containing the openid scope value to indicate to the underlying OAuth 2.0 logic that this is an OpenID Connect request.
	// Source: http://openid.net/specs/openid-connect-core-1_0.html#CodeFlowAuth
	if !scope.Has(consts.ScopeOpenID) {
		return nil
	}

	var (
		nrequest, nrequestURI int
	)

	switch nrequest, nrequestURI = len(request.Form.Get(consts.FormParameterRequest)), len(request.Form.Get(consts.FormParameterRequestURI)); {
	case nrequest+nrequestURI == 0:
		return nil
	case nrequest > 0 && nrequestURI > 0:
		return errorsx.WithStack(ErrInvalidRequest.WithHint("OpenID Connect 1.0 parameters 'request' and 'request_uri' were both given, but you can use at most one."))
	}

	client, ok := request.Client.(RequestObjectClient)
	if !ok {
		if nrequestURI > 0 {
			return errorsx.WithStack(ErrRequestURINotSupported.WithHint("OpenID Connect 1.0 'request_uri' context was given, but the OAuth 2.0 Client does not implement advanced OpenID Connect 1.0 capabilities.").WithDebugf("The OAuth 2.0 client with id '%s' doesn't implement the correct methods for this request.", request.GetClient().GetID()))
		}

		return errorsx.WithStack(ErrRequestNotSupported.WithHint("OpenID Connect 1.0 'request' context was given, but the OAuth 2.0 Client does not implement advanced OpenID Connect 1.0 capabilities.").WithDebugf("The OAuth 2.0 client with id '%s' doesn't implement the correct methods for this request.", request.GetClient().GetID()))
	}

	if request.Form.Get(consts.FormParameterResponseType) == "" || request.Form.Get(consts.FormParameterClientID) == "" {
		// So that the request is a valid OAuth 2.0 Authorization Request, values for the response_type and client_id
		// parameters MUST be included using the OAuth 2.0 request syntax, since they are REQUIRED by OAuth 2.0.
		return errorsx.WithStack(ErrInvalidRequest.WithHint("OpenID Connect 1.0 parameters 'request' and 'request_uri' must be accompanied by the `client_id' and 'response_type' in the request syntax."))
	}

	var (
		algAny, algNone bool
	)

	switch alg := client.GetRequestObjectSigningAlg(); alg {
	case jwtAlgorithmNone:
		algNone = true
	case "":
		algAny = true
	default:
		if client.GetJSONWebKeys() == nil && len(client.GetJSONWebKeysURI()) == 0 {
			if nrequestURI > 0 {
				return errorsx.WithStack(ErrInvalidRequest.WithHint("OpenID Connect 1.0 'request_uri' context was given, but the OAuth 2.0 Client does not have any JSON Web Keys registered.").WithDebugf("The OAuth 2.0 client with id '%s' doesn't have any known JSON Web Keys but requires them when not explicitly registered with a 'request_object_signing_alg' with the value of 'none' but it's registered with '%s'.", request.GetClient().GetID(), alg))
			}

			return errorsx.WithStack(ErrInvalidRequest.WithHint("OpenID Connect 1.0 'request' context was given, but the OAuth 2.0 Client does not have any JSON Web Keys registered.").WithDebugf("The OAuth 2.0 client with id '%s' doesn't have any known JSON Web Keys but requires them when not explicitly registered with a 'request_object_signing_alg' with the value of 'none' but it's registered with '%s'.", request.GetClient().GetID(), alg))
		}
	}

	var assertion string

	if nrequestURI > 0 {
		requestURI := request.Form.Get(consts.FormParameterRequestURI)

		if !stringslice.Has(client.GetRequestURIs(), requestURI) {
			return errorsx.WithStack(ErrInvalidRequestURI.WithHintf("Request URI '%s' is not whitelisted by the OAuth 2.0 Client.", requestURI))
		}

		hc := f.Config.GetHTTPClient(ctx)

		response, err := hc.Get(requestURI)
		if err != nil {
			return errorsx.WithStack(ErrInvalidRequestURI.WithHintf("Unable to fetch OpenID Connect 1.0 request parameters from 'request_uri' because: %s.", err.Error()).WithWrap(err).WithDebugError(err))
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return errorsx.WithStack(ErrInvalidRequestURI.WithHintf("Unable to fetch OpenID Connect 1.0 request parameters from 'request_uri' because status code '%d' was expected, but got '%d'.", http.StatusOK, response.StatusCode))
		}

		body, err := io.ReadAll(response.Body)
		if err != nil {
			return errorsx.WithStack(ErrInvalidRequestURI.WithHintf("Unable to fetch OpenID Connect 1.0 request parameters from 'request_uri' because body parsing failed with: %s.", err).WithWrap(err).WithDebugError(err))
		}

		assertion = string(body)
	} else {
		assertion = request.Form.Get(consts.FormParameterRequest)
	}

	claims, err := f.verifyRequestObject(ctx, client, assertion, algAny, &algNone)
	if err != nil {
		return err
	}

	var (
		k, value string
		v        any
	)

	for k, v = range claims {
		switch k {
		case consts.FormParameterRequest, consts.FormParameterRequestURI:
			// The request and request_uri parameters MUST NOT be included in Request Objects.
			return errorsx.WithStack(ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object must not contain the 'request' or 'request_uri' claims."))
		case claimIssuer, claimAudience, claimSubject, claimExpiresAt, claimNotBefore:
			// The subject and time claims are not relevant, and the issuer and audience are validated below.
			continue
		case consts.FormParameterClientID:
			if value, ok = v.(string); !ok || request.Form.Get(consts.FormParameterClientID) != value {
				return errorsx.WithStack(ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object's `client_id' claim must match the values provided in the standard OAuth 2.0 request syntax if provided."))
			}
		case consts.FormParameterResponseType:
			if value, ok = v.(string); !ok || request.Form.Get(consts.FormParameterResponseType) != value {
				return errorsx.WithStack(ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object's `response_type' claim must match the values provided in the standard OAuth 2.0 request syntax if provided."))
			}
		default:
			request.Form.Set(k, fmt.Sprintf("%s", v))
		}
	}

	if !algNone {
		if v, ok = claims[claimIssuer]; !ok {
			return errorsx.WithStack(ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object's `iss' claim must be present when using signed request objects."))
		}

		if value, ok = v.(string); !ok || value != request.Client.GetID() {
			return errorsx.WithStack(ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object's `iss' claim must contain the `client_id` when using signed request objects."))
		}

		if v, ok = claims[claimAudience]; !ok {
			return errorsx.WithStack(ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object's `aud' claim must be present when using signed request objects."))
		}

		var valid bool

		switch t := v.(type) {
		case string:
			valid = strings.EqualFold(t, f.Config.GetIDTokenIssuer(ctx))
		case []string:
			for _, value = range t {
				if strings.EqualFold(value, f.Config.GetIDTokenIssuer(ctx)) {
					valid = true

					break
				}
			}
		case []any:
			for _, x := range t {
				if value, ok = x.(string); ok && strings.EqualFold(value, f.Config.GetIDTokenIssuer(ctx)) {
					valid = true

					break
				}
			}
		}

		if !valid {
			return errorsx.WithStack(ErrInvalidRequestObject.WithHint("OpenID Connect 1.0 request object's `aud' claim must be the Authorization Server's issuer when using signed request objects."))
		}
	}

	claimScope := RemoveEmpty(Arguments(strings.Split(request.Form.Get(consts.FormParameterScope), " ")))
	for _, s := range scope {
		if !stringslice.Has(claimScope, s) {
			claimScope = append(claimScope, s)
		}
	}

	request.State = request.Form.Get(consts.FormParameterState)
	request.Form.Set(consts.FormParameterScope, strings.Join(claimScope, " "))

	return nil
}

// verifyRequestObject validates the signature of the given request object and returns its claims.
func (f *Authorizer) verifyRequestObject(ctx context.Context, client RequestObjectClient, assertion string, algAny bool, algNone *bool) (claims map[string]any, err error) {
	parts := strings.Split(assertion, ".")
	if len(parts) != 3 {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object is not a valid JSON Web Token."))
	}

	rawHeader, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object header could not be decoded.").WithWrap(err).WithDebugError(err))
	}

	var header struct {
		Algorithm string `json:"alg"`
		KeyID     string `json:"kid"`
	}

	if err = json.Unmarshal(rawHeader, &header); err != nil {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object header could not be decoded.").WithWrap(err).WithDebugError(err))
	}

	if !algAny && client.GetRequestObjectSigningAlg() != header.Algorithm {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHintf("The request object uses signing algorithm '%s', but the requested OAuth 2.0 Client enforces signing algorithm '%s'.", header.Algorithm, client.GetRequestObjectSigningAlg()))
	}

	var payload []byte

	if header.Algorithm == jwtAlgorithmNone {
		*algNone = true

		if parts[2] != "" {
			return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object uses the 'none' algorithm but carries a signature."))
		}

		if payload, err = base64.RawURLEncoding.DecodeString(parts[1]); err != nil {
			return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object payload could not be decoded.").WithWrap(err).WithDebugError(err))
		}
	} else if *algNone {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHintf("The request object uses signing algorithm '%s', but the requested OAuth 2.0 Client enforces signing algorithm '%s'.", header.Algorithm, client.GetRequestObjectSigningAlg()))
	} else {
		var object *jose.JSONWebSignature

		if object, err = jose.ParseSigned(assertion, []jose.SignatureAlgorithm{jose.SignatureAlgorithm(header.Algorithm)}); err != nil {
			return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHintf("This request object uses unsupported signing algorithm '%s'.", header.Algorithm).WithWrap(err).WithDebugError(err))
		}

		var key *jose.JSONWebKey

		if key, err = f.findClientPublicJWK(ctx, client, header.KeyID, header.Algorithm); err != nil {
			return nil, err
		}

		if payload, err = object.Verify(key); err != nil {
			return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("Unable to verify the request object's signature.").WithWrap(err).WithDebugError(err))
		}
	}

	if err = json.Unmarshal(payload, &claims); err != nil {
		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The request object payload is not a valid JSON object.").WithWrap(err).WithDebugError(err))
	}

	if err = validateRequestObjectTimeClaims(claims, time.Now().UTC()); err != nil {
		return nil, err
	}

	return claims, nil
}

// findClientPublicJWK returns the public key the client signed its request object with, fetching
// the client's JWKS from its registered URI when no static key set is registered.
func (f *Authorizer) findClientPublicJWK(ctx context.Context, client RequestObjectClient, kid, alg string) (*jose.JSONWebKey, error) {
	set := client.GetJSONWebKeys()

	if set == nil {
		location := client.GetJSONWebKeysURI()
		if location == "" {
			return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The OAuth 2.0 Client has no JSON Web Keys registered."))
		}

		hc := f.Config.GetHTTPClient(ctx)

		response, err := hc.Get(location)
		if err != nil {
			return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHintf("Unable to fetch the JSON Web Keys of the OAuth 2.0 Client from '%s'.", location).WithWrap(err).WithDebugError(err))
		}
		defer response.Body.Close()

		if response.StatusCode != http.StatusOK {
			return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHintf("Unable to fetch the JSON Web Keys of the OAuth 2.0 Client from '%s' because status code '%d' was expected, but got '%d'.", location, http.StatusOK, response.StatusCode))
		}

		set = new(jose.JSONWebKeySet)

		if err = json.NewDecoder(response.Body).Decode(set); err != nil {
			return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHintf("Unable to parse the JSON Web Keys of the OAuth 2.0 Client fetched from '%s'.", location).WithWrap(err).WithDebugError(err))
		}
	}

	if kid != "" {
		if keys := set.Key(kid); len(keys) > 0 {
			return &keys[0], nil
		}

		return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHintf("The OAuth 2.0 Client has no JSON Web Key with the key id '%s' registered.", kid))
	}

	for i := range set.Keys {
		key := set.Keys[i]

		if key.Use != "" && key.Use != "sig" {
			continue
		}

		if key.Algorithm != "" && key.Algorithm != alg {
			continue
		}

		return &key, nil
	}

	return nil, errorsx.WithStack(ErrInvalidRequestObject.WithHint("The OAuth 2.0 Client has no suitable JSON Web Key registered for verifying request objects."))
}

func validateRequestObjectTimeClaims(claims map[string]any, now time.Time) error {
	if v, ok := claims[claimExpiresAt]; ok {
		if exp, ok := v.(float64); ok && now.After(time.Unix(int64(exp), 0)) {
			return errorsx.WithStack(ErrInvalidRequestObject.WithHint("Unable to verify the request object because its claims could not be validated, check if the expiry time is set correctly."))
		}
	}

	if v, ok := claims[claimNotBefore]; ok {
		if nbf, ok := v.(float64); ok && now.Before(time.Unix(int64(nbf), 0)) {
			return errorsx.WithStack(ErrInvalidRequestObject.WithHint("Unable to verify the request object because it is not valid yet."))
		}
	}

	return nil
}
