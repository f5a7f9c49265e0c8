// SPDX-License-Identifier: MIT

package tidy

import "errors"

// ErrInvalidRecord is returned by NewTable for a record with a non-positive
// iteration or chain, or an empty parameter name.
var ErrInvalidRecord = errors.New("tidy: invalid record")
