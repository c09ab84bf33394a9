// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package stringslice

import "strings"

// Has returns true if needle is contained within haystack using case-sensitive
// comparison.
func Has(haystack []string, needle string) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}

	return false
}

// HasFold returns true if needle is contained within haystack using
// case-insensitive comparison.
func HasFold(haystack []string, needle string) bool {
	for _, v := range haystack {
		if strings.EqualFold(v, needle) {
			return true
		}
	}

	return false
}

// Filter returns a new slice containing the values of the provided slice for
// which the filter func returns false.
func Filter(values []string, filter func(string) bool) (filtered []string) {
	filtered = make([]string, 0, len(values))

	for _, value := range values {
		if !filter(value) {
			filtered = append(filtered, value)
		}
	}

	return filtered
}
