package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr so Is(err, markErr) holds while keeping the
// original cause and stack. Marks are not part of the Unwrap chain, so
// matching marked errors must go through Is.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches target through the wrap chain or a mark.
func Is(err error, target error) bool {
	return cr.Is(err, target)
}
