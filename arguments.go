// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"slices"
	"strings"
)

// Arguments is a list of space delimited OAuth 2.0 values such as scopes or response types.
type Arguments []string

// Matches performs an case-sensitive, out-of-order check that the items
// provided exist and equal all of the args in arguments.
func (r Arguments) Matches(items ...string) bool {
	if len(r) != len(items) {
		return false
	}

	found := make(map[string]bool)
	for _, item := range items {
		if !slices.Contains(r, item) {
			return false
		}
		found[item] = true
	}

	return len(found) == len(r)
}

// Has checks, in a case-sensitive manner, that all of the items
// provided exists in arguments.
func (r Arguments) Has(items ...string) bool {
	for _, item := range items {
		if !slices.Contains(r, item) {
			return false
		}
	}

	return true
}

// String joins the arguments with a single space.
func (r Arguments) String() string {
	return strings.Join(r, " ")
}

// RemoveEmpty returns the items with empty and whitespace-only entries removed.
func RemoveEmpty(items []string) (result []string) {
	for _, item := range items {
		if v := strings.TrimSpace(item); v != "" {
			result = append(result, v)
		}
	}

	return result
}

// SplitArguments splits a space delimited OAuth 2.0 parameter value into Arguments.
func SplitArguments(value string) Arguments {
	return RemoveEmpty(strings.Split(value, " "))
}
