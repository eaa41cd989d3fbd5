//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"aqualux-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("invalid status transition")

	t.Run("marked error matches the mark through Is", func(t *testing.T) {
		cause := errs.New("cancelled bookings are terminal")
		marked := errs.Mark(cause, sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		assert.True(t, errs.Is(marked, cause))
		assert.Contains(t, marked.Error(), "cancelled bookings are terminal")
	})

	t.Run("marks live outside the unwrap chain", func(t *testing.T) {
		marked := errs.Mark(errs.New("cause"), sentinel)

		assert.False(t, errors.Is(marked, sentinel))
	})

	t.Run("nil error yields the mark itself", func(t *testing.T) {
		require.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})
}

func TestIs(t *testing.T) {
	sentinel := errs.New("booking not found")

	t.Run("sees through wrap chains", func(t *testing.T) {
		wrapped := errs.Wrap(sentinel, "loading booking")

		assert.True(t, errs.Is(wrapped, sentinel))
	})

	t.Run("direct sentinel matches itself", func(t *testing.T) {
		assert.True(t, errs.Is(sentinel, sentinel))
	})

	t.Run("unrelated errors do not match", func(t *testing.T) {
		assert.False(t, errs.Is(errs.New("other"), sentinel))
	})
}
