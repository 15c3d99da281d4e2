// accesscontrol/cachekey.go
package accesscontrol

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// BuildCacheKey derives a deterministic cache key from a provider identity,
// a resource name and the full candidate principal set. Permission sets
// depend on the principal combination, not just the resource, so the
// principal identifiers are part of the key. The identifiers are sorted
// before hashing; two requests presenting the same set in different order
// produce the same key.
func BuildCacheKey(providerID, resourceName string, principalIdentifiers []string) string {
	sorted := make([]string, len(principalIdentifiers))
	copy(sorted, principalIdentifiers)
	sort.Strings(sorted)

	sum := sha1.Sum([]byte(providerID + "_permissions_" + strings.Join(sorted, "_") + resourceName))
	return hex.EncodeToString(sum[:])
}
