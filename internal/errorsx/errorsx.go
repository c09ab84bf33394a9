// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package errorsx

import (
	"github.com/pkg/errors"
)

// StackTracer is implemented by errors which carry a stack trace.
type StackTracer interface {
	StackTrace() errors.StackTrace
}

// WithStack mirrors github.com/pkg/errors.WithStack but avoids wrapping an
// error which already carries a stack trace, keeping the original trace
// intact for the reporting layer.
func WithStack(err error) error {
	if _, ok := err.(StackTracer); ok {
		return err
	}

	return errors.WithStack(err)
}

// Cause traverses the error chain and returns the innermost cause.
func Cause(err error) error {
	type causer interface {
		Cause() error
	}

	for err != nil {
		c, ok := err.(causer)
		if !ok {
			break
		}

		cause := c.Cause()
		if cause == nil {
			break
		}

		err = cause
	}

	return err
}

// DebugCarrier is implemented by errors exposing debug information.
type DebugCarrier interface {
	error
	Debug() string
}

// ReasonCarrier is implemented by errors exposing a human readable reason.
type ReasonCarrier interface {
	error
	Reason() string
}

// RequestIDCarrier is implemented by errors exposing a request identifier.
type RequestIDCarrier interface {
	error
	RequestID() string
}

// StatusCarrier is implemented by errors exposing a textual status.
type StatusCarrier interface {
	error
	Status() string
}

// StatusCodeCarrier is implemented by errors exposing a HTTP status code.
type StatusCodeCarrier interface {
	error
	StatusCode() int
}

// DetailsCarrier is implemented by errors exposing structured details.
type DetailsCarrier interface {
	error
	Details() map[string]any
}
