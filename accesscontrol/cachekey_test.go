// accesscontrol/cachekey_test.go
package accesscontrol_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rohanverma/dashgate/accesscontrol"
)

func TestBuildCacheKey(t *testing.T) {
	providerID := "dashgate/permission-attribute-provider"
	resourceName := "dashboard:42"

	t.Run("PermutationIndependent", func(t *testing.T) {
		keyA := accesscontrol.BuildCacheKey(providerID, resourceName, []string{"be_user:1", "be_group:2", "be_group:9"})
		keyB := accesscontrol.BuildCacheKey(providerID, resourceName, []string{"be_group:9", "be_user:1", "be_group:2"})
		keyC := accesscontrol.BuildCacheKey(providerID, resourceName, []string{"be_group:2", "be_group:9", "be_user:1"})

		assert.Equal(t, keyA, keyB)
		assert.Equal(t, keyA, keyC)
	})

	t.Run("HexEncodedDigest", func(t *testing.T) {
		key := accesscontrol.BuildCacheKey(providerID, resourceName, []string{"be_user:1"})
		assert.Len(t, key, 40)
		assert.Regexp(t, "^[0-9a-f]{40}$", key)
	})

	t.Run("SensitiveToPrincipalSet", func(t *testing.T) {
		keyA := accesscontrol.BuildCacheKey(providerID, resourceName, []string{"be_user:1"})
		keyB := accesscontrol.BuildCacheKey(providerID, resourceName, []string{"be_user:1", "be_group:2"})
		assert.NotEqual(t, keyA, keyB)
	})

	t.Run("SensitiveToResource", func(t *testing.T) {
		keyA := accesscontrol.BuildCacheKey(providerID, "dashboard:42", []string{"be_user:1"})
		keyB := accesscontrol.BuildCacheKey(providerID, "dashboard:43", []string{"be_user:1"})
		assert.NotEqual(t, keyA, keyB)
	})

	t.Run("SensitiveToProvider", func(t *testing.T) {
		keyA := accesscontrol.BuildCacheKey(providerID, resourceName, []string{"be_user:1"})
		keyB := accesscontrol.BuildCacheKey("other-provider", resourceName, []string{"be_user:1"})
		assert.NotEqual(t, keyA, keyB)
	})

	t.Run("InputSliceNotMutated", func(t *testing.T) {
		identifiers := []string{"be_user:9", "be_group:1"}
		accesscontrol.BuildCacheKey(providerID, resourceName, identifiers)
		assert.Equal(t, []string{"be_user:9", "be_group:1"}, identifiers)
	})
}
