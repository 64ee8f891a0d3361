// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package requestobject

import (
	"net/url"
	"slices"

	"authelia.com/provider/requestobject/internal/consts"
	"authelia.com/provider/requestobject/internal/urls"
)

// IsValidRequestURI validates a request_uri as specified in:
//
// * https://datatracker.ietf.org/doc/html/rfc9101#section-5.2
//   - The value is an absolute URI referencing the Request Object.
//   - Only network URIs are supported, URNs registered by pushed authorization requests are handled elsewhere.
func IsValidRequestURI(uri *url.URL) bool {
	if uri == nil {
		return false
	}

	location := *uri
	location.Fragment, location.RawFragment = "", ""

	return urls.IsAbsoluteNetworkURL(location.String())
}

// IsRequestURISecure returns true if the request_uri uses the 'https' scheme, or the 'http' scheme when insecure
// request_uri values are allowed.
func IsRequestURISecure(uri *url.URL, allowInsecure bool) bool {
	switch uri.Scheme {
	case consts.SchemeHTTPS:
		return true
	case consts.SchemeHTTP:
		return allowInsecure
	default:
		return false
	}
}

// IsMatchingRequestURI matches a request_uri against the values registered by a client using simple string
// comparison as defined in RFC3986 Section 6.2.1.
func IsMatchingRequestURI(needle string, haystack []string) bool {
	return needle != "" && slices.Contains(haystack, needle)
}
