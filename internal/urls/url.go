package urls

import (
	"net/url"
)

// IsAbsoluteNetworkURL checks if the string raw is an absolute URL conforming to RFC 3986 which names a host. Opaque
// URIs such as URNs are rejected.
func IsAbsoluteNetworkURL(raw string) bool {
	uri, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}

	return uri.IsAbs() && uri.Host != ""
}
