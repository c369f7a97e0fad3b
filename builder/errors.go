// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewNodes indicates that a size parameter is below the allowed minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrConstructFailed indicates that a constructor could not complete,
// typically because the underlying tree rejected a node.
var ErrConstructFailed = errors.New("builder: construction failed")

// wrapf attaches method context to err while keeping errors.Is intact.
func wrapf(method, what string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, what, err)
}
