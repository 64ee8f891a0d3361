// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package errorsx

import (
	"github.com/pkg/errors"
)

// StackTracer is implemented by errors carrying a github.com/pkg/errors stack.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// WithStack adds a stack trace to the error unless it already carries one.
func WithStack(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := err.(StackTracer); ok {
		return err
	}

	return errors.WithStack(err)
}
