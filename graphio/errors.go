// SPDX-License-Identifier: MIT

package graphio

import "errors"

var (
	// ErrMalformedRow is returned by a strict CSV read for a row that is not a
	// header and does not parse.
	ErrMalformedRow = errors.New("graphio: malformed row")

	// ErrUnsupportedFormat is returned for a format name or extension graphio
	// cannot read or write.
	ErrUnsupportedFormat = errors.New("graphio: unsupported format")
)
