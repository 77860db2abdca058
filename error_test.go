package markotravel_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/markotravel"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := markotravel.Errorf(markotravel.ENOTFOUND, "document %q not found", "doc.kml")

	assert.Equal(t, markotravel.ENOTFOUND, markotravel.ErrorCode(err))
	assert.Equal(t, "document \"doc.kml\" not found", markotravel.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, markotravel.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, markotravel.ErrorMessage(nil))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	t.Run("unwraps application error", func(t *testing.T) {
		t.Parallel()

		err := fmt.Errorf("loading: %w", markotravel.Errorf(markotravel.EPARSE, "bad markup"))

		assert.Equal(t, markotravel.EPARSE, markotravel.ErrorCode(err))
		assert.Equal(t, "bad markup", markotravel.ErrorMessage(err))
	})

	t.Run("reports internal for foreign errors", func(t *testing.T) {
		t.Parallel()

		err := errors.New("boom")

		assert.Equal(t, markotravel.EINTERNAL, markotravel.ErrorCode(err))
		assert.Equal(t, "Internal error.", markotravel.ErrorMessage(err))
	})
}
