// SPDX-License-Identifier: MIT

package chainio

import "errors"

var (
	// ErrParse indicates a chain file that is not a rectangular numeric CSV.
	ErrParse = errors.New("chainio: malformed chain file")

	// ErrNoHeader indicates an empty chain file.
	ErrNoHeader = errors.New("chainio: missing header row")

	// ErrUnsupportedFormat indicates an output format other than csv or yaml.
	ErrUnsupportedFormat = errors.New("chainio: unsupported format")
)
