// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import (
	"context"
	"net"
	"net/url"
	"strings"

	"github.com/oauth2-framework/authorization/internal/consts"
	"github.com/oauth2-framework/authorization/internal/errorsx"
)

// IsValidRedirectURI reports whether uri is acceptable as a redirection
// endpoint per RFC 6749 Section 3.1.2: an absolute URI without a fragment
// component.
func IsValidRedirectURI(uri *url.URL) bool {
	return isRequestURL(uri) && uri.Fragment == ""
}

func IsRedirectURISecure(ctx context.Context, uri *url.URL) bool {
	return !(uri.Scheme == consts.SchemeHTTP && !IsLocalhost(uri))
}

// IsRedirectURISecureStrict is stricter than IsRedirectURISecure and it does not allow custom-scheme
// URLs because they can be hijacked for native apps. Use claimed HTTPS redirects instead.
func IsRedirectURISecureStrict(uri *url.URL) bool {
	return uri.Scheme == consts.SchemeHTTPS || (uri.Scheme == consts.SchemeHTTP && IsLocalhost(uri))
}

func IsLocalhost(uri *url.URL) bool {
	hostname := uri.Hostname()

	return strings.HasSuffix(hostname, ".localhost") || hostname == "localhost" || isLoopbackAddress(uri)
}

// MatchRedirectURIWithClientRedirectURIs resolves the requested redirect_uri
// against the client's registered redirect URIs per RFC 6749 Section 3.1.2.3.
// When raw is empty and the client registered exactly one valid URI, that URI
// is used. Otherwise the requested URI must match a registered one under the
// client's comparison strategy.
func MatchRedirectURIWithClientRedirectURIs(raw string, client Client) (*url.URL, error) {
	strategy := GetClientRedirectURIComparisonStrategy(client)

	if raw == "" && len(client.GetRedirectURIs()) == 1 {
		if redirectURIFromClient, err := url.Parse(client.GetRedirectURIs()[0]); err == nil && IsValidRedirectURI(redirectURIFromClient) {
			// If no redirect_uri was given and the client has exactly one valid redirect_uri registered, use that instead.
			return redirectURIFromClient, nil
		}

		return nil, errorsx.WithStack(ErrInvalidRequest.WithHint("The 'redirect_uri' parameter does not match any of the OAuth 2.0 Client's pre-registered 'redirect_uris'.").WithDebugf("The 'redirect_uris' registered with OAuth 2.0 Client with id '%s' did not match 'redirect_uri' value '%s' because the only registered 'redirect_uri' is not a valid value.", client.GetID(), raw))
	} else if redirectTo, ok := IsMatchingRedirectURI(raw, client.GetRedirectURIs(), strategy); raw != "" && ok {
		// If a redirect_uri was given and the clients knows it (simple string comparison!)
		// return it.
		if parsed, err := url.Parse(redirectTo); err == nil && IsValidRedirectURI(parsed) {
			return parsed, nil
		}
	}

	return nil, errorsx.WithStack(ErrInvalidRequest.WithHint("The 'redirect_uri' parameter does not match any of the OAuth 2.0 Client's pre-registered 'redirect_uris'.").WithDebugf("The 'redirect_uris' registered with OAuth 2.0 Client with id '%s' did not match 'redirect_uri' value '%s'.", client.GetID(), raw))
}

// IsMatchingRedirectURI matches a requested redirect URI against the pool of
// URIs a client has registered. Loopback URIs (http://127.0.0.1, http://[::1])
// additionally match on any port per RFC 8252 Section 7.3, so native apps may
// bind a dynamic port.
func IsMatchingRedirectURI(needle string, haystack []string, strategy URIComparisonStrategy) (uri string, ok bool) {
	var (
		requested, registered *url.URL
		err                   error
	)

	if requested, err = url.Parse(needle); err != nil {
		return "", false
	}

	if strategy.UseSimpleStringComparison() {
		for _, raw := range haystack {
			if raw == needle {
				return needle, true
			} else if isMatchingRawLoopbackURI(requested, raw) {
				return needle, true
			}
		}
	} else {
		for _, raw := range haystack {
			if registered, err = url.Parse(raw); err != nil {
				continue
			}

			if strategy.Compare(&uriPair{uri: requested, registeredURI: registered}) {
				return needle, true
			} else if isMatchingLoopbackURI(requested, registered) {
				return needle, true
			}
		}
	}

	return "", false
}

type RedirectURICustomComparisonClient interface {
	GetRedirectURIComparisonStrategy() URIComparisonStrategy
}

func GetClientRedirectURIComparisonStrategy(client Client) (strategy URIComparisonStrategy) {
	if ucsClient, ok := client.(RedirectURICustomComparisonClient); ok {
		strategy = ucsClient.GetRedirectURIComparisonStrategy()
	}

	if strategy == nil {
		return &BestPracticeURIComparisonStrategy{}
	}

	return strategy
}

type uriPair struct {
	uri           *url.URL
	registeredURI *url.URL
}

// URIComparisonStrategy is used to compare URIs.
type URIComparisonStrategy interface {
	Compare(pair *uriPair) bool
	UseSimpleStringComparison() bool
}

// BestPracticeURIComparisonStrategy is used to compare URIs. This comparison strategy only matches based on exact
// simple string comparison.
type BestPracticeURIComparisonStrategy struct{}

func (BestPracticeURIComparisonStrategy) Compare(pair *uriPair) bool {
	return pair.uri.String() == pair.registeredURI.String()
}

func (BestPracticeURIComparisonStrategy) UseSimpleStringComparison() bool {
	return true
}

// OriginURIComparisonStrategy is used to compare URIs. When the registered URI is a Origin URI (only scheme and host),
// the comparison is truthy when the scheme and host parts are the same.
type OriginURIComparisonStrategy struct{}

func (OriginURIComparisonStrategy) Compare(pair *uriPair) bool {
	if !isBareOriginURI(pair.registeredURI) {
		return pair.uri.String() == pair.registeredURI.String()
	}

	if isLoopbackAddress(pair.uri) && isLoopbackAddress(pair.registeredURI) {
		return pair.uri.Scheme == pair.registeredURI.Scheme && pair.uri.Hostname() == pair.registeredURI.Hostname()
	}

	return pair.uri.Scheme == pair.registeredURI.Scheme && pair.uri.Host == pair.registeredURI.Host
}

func (OriginURIComparisonStrategy) UseSimpleStringComparison() bool {
	return false
}

func isBareOriginURI(uri *url.URL) bool {
	return uri.Scheme != "" && uri.Host != "" && uri.Path == "" && uri.RawQuery == "" && uri.RawFragment == "" && uri.Fragment == "" && uri.Opaque == "" && uri.User == nil
}

func isRequestURL(uri *url.URL) bool {
	return uri != nil && uri.Scheme != "" && (uri.Host != "" || uri.Opaque != "" || uri.Path != "")
}

func isMatchingRawLoopbackURI(requested *url.URL, registeredURI string) bool {
	if requested == nil {
		return false
	}

	registered, err := url.Parse(registeredURI)
	if err != nil {
		return false
	}

	return isMatchingLoopbackURI(requested, registered)
}

// Both URIs must be http loopback addresses agreeing on everything except the
// port (RFC 8252 Section 7.3).
func isMatchingLoopbackURI(requested, registered *url.URL) bool {
	if requested.Scheme != consts.SchemeHTTP || registered.Scheme != consts.SchemeHTTP {
		return false
	}

	if !isLoopbackAddress(requested) || !isLoopbackAddress(registered) {
		return false
	}

	return registered.Hostname() == requested.Hostname() &&
		registered.Path == requested.Path &&
		registered.RawQuery == requested.RawQuery
}

func isLoopbackAddress(uri *url.URL) bool {
	if uri == nil {
		return false
	}

	ip := net.ParseIP(uri.Hostname())

	return ip != nil && ip.IsLoopback()
}
