// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package authorization

import "strings"

// Arguments is a list of string values, e.g. the requested scopes or the
// space-delimited response types of an authorization request.
type Arguments []string

// Matches performs a case-sensitive, out-of-order check that the items
// provided exist and equal all of the args in arguments.
func (r Arguments) Matches(items ...string) bool {
	if len(r) != len(items) {
		return false
	}

	found := make(map[string]bool)
	for _, item := range items {
		if !StringInSlice(item, r) {
			return false
		}
		found[item] = true
	}

	return len(found) == len(r)
}

// Has checks, in a case-sensitive manner, that all of the items
// provided exist in arguments.
func (r Arguments) Has(items ...string) bool {
	for _, item := range items {
		if !StringInSlice(item, r) {
			return false
		}
	}

	return true
}

// HasOneOf checks, in a case-sensitive manner, that one of the items
// provided exists in arguments.
func (r Arguments) HasOneOf(items ...string) bool {
	for _, item := range items {
		if StringInSlice(item, r) {
			return true
		}
	}

	return false
}

// ExactOne checks, by string case, that a single argument equals the provided
// string.
func (r Arguments) ExactOne(name string) bool {
	return len(r) == 1 && r[0] == name
}

// MatchesExact checks, by order and string case, that the items provided equal
// those in arguments.
func (r Arguments) MatchesExact(items ...string) bool {
	if len(r) != len(items) {
		return false
	}

	for i, item := range items {
		if item != r[i] {
			return false
		}
	}

	return true
}

// StringInSlice returns true if needle exists in haystack using case-sensitive
// comparison.
func StringInSlice(needle string, haystack []string) bool {
	for _, b := range haystack {
		if b == needle {
			return true
		}
	}

	return false
}

// RemoveEmpty removes all empty and whitespace-only strings from args.
func RemoveEmpty(args Arguments) (ret Arguments) {
	for _, v := range args {
		v = strings.TrimSpace(v)
		if v != "" {
			ret = append(ret, v)
		}
	}

	return ret
}
