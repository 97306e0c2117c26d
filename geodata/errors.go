// SPDX-License-Identifier: GPL-3.0-only

package geodata

import (
	"errors"
	"fmt"
)

var (
	ErrDatasetLoad        = errors.New("dataset load failed")
	ErrDatasetUnavailable = errors.New("dataset unavailable")
	ErrNotFound           = errors.New("not found")

	errEmptyInput  = errors.New("empty input")
	errNotSequence = errors.New("top-level value is not a sequence")
)

// LoadError reports why a dataset source could not be turned into a tree.
// It matches ErrDatasetLoad as well as the underlying cause.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrDatasetLoad, e.Err}
}
