// accesscontrol/principal/resolver_test.go
package principal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rohanverma/dashgate/accesscontrol/attribute"
	"github.com/rohanverma/dashgate/accesscontrol/principal"
	dashgate_errors "github.com/rohanverma/dashgate/errors"
)

func TestResolve(t *testing.T) {
	t.Run("ResolvesUser", func(t *testing.T) {
		resolved, err := principal.Resolve("be_user:7")
		assert.NoError(t, err)
		assert.Equal(t, attribute.User(7), resolved)
	})

	t.Run("ResolvesGroup", func(t *testing.T) {
		resolved, err := principal.Resolve("be_group:12")
		assert.NoError(t, err)
		assert.Equal(t, attribute.Group(12), resolved)
	})

	t.Run("ResolvesZeroID", func(t *testing.T) {
		resolved, err := principal.Resolve("be_user:0")
		assert.NoError(t, err)
		assert.Equal(t, attribute.User(0), resolved)
	})

	t.Run("MissingSeparator", func(t *testing.T) {
		_, err := principal.Resolve("be_user7")
		assert.ErrorIs(t, err, dashgate_errors.ErrMalformedIdentifier)
	})

	t.Run("TooManySegments", func(t *testing.T) {
		_, err := principal.Resolve("be_user:7:extra")
		assert.ErrorIs(t, err, dashgate_errors.ErrMalformedIdentifier)
	})

	t.Run("UnknownType", func(t *testing.T) {
		_, err := principal.Resolve("be_robot:7")
		assert.ErrorIs(t, err, dashgate_errors.ErrUnknownPrincipalType)
	})

	t.Run("UnknownTypeWinsOverBadID", func(t *testing.T) {
		_, err := principal.Resolve("be_robot:xyz")
		assert.ErrorIs(t, err, dashgate_errors.ErrUnknownPrincipalType)
	})

	t.Run("NonNumericID", func(t *testing.T) {
		_, err := principal.Resolve("be_user:abc")
		assert.ErrorIs(t, err, dashgate_errors.ErrInvalidPrincipalID)
	})

	t.Run("NegativeID", func(t *testing.T) {
		_, err := principal.Resolve("be_group:-3")
		assert.ErrorIs(t, err, dashgate_errors.ErrInvalidPrincipalID)
	})

	t.Run("EmptyIdentifier", func(t *testing.T) {
		_, err := principal.Resolve("")
		assert.ErrorIs(t, err, dashgate_errors.ErrMalformedIdentifier)
	})
}
