// Copyright © 2023 Ory Corp
// SPDX-License-Identifier: Apache-2.0

package randx

import (
	"crypto/rand"
	"io"

	"github.com/pkg/errors"
)

// Bytes returns n bytes from a cryptographically secure random source.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)

	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, errors.WithStack(err)
	}

	return b, nil
}
