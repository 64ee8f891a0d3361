// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package errorsx

// RFCError is implemented by errors which can be rendered as an OAuth 2.0 error response.
type RFCError interface {
	GetDescription() string
	Error() string
	Reason() string
}

// DebugCarrier can be implemented by an error to expose debug information.
type DebugCarrier interface {
	Debug() string
}

// ReasonCarrier can be implemented by an error to expose a human readable reason.
type ReasonCarrier interface {
	Reason() string
}

// StatusCodeCarrier can be implemented by an error to expose the HTTP status code.
type StatusCodeCarrier interface {
	StatusCode() int
}

// StatusCarrier can be implemented by an error to expose the HTTP status text.
type StatusCarrier interface {
	Status() string
}
