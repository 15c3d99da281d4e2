// accesscontrol/provider/permission_provider.go
package provider

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rohanverma/dashgate/accesscontrol"
	"github.com/rohanverma/dashgate/accesscontrol/attribute"
	"github.com/rohanverma/dashgate/accesscontrol/principal"
	dashgate_errors "github.com/rohanverma/dashgate/errors"
	logger "github.com/rohanverma/dashgate/logging"
	"github.com/rohanverma/dashgate/model"
)

// AttributeProvider reacts to an attribute-retrieval pass for a protected
// resource. Implementations must only mutate the resource attribute they
// are handed, by appending permission attributes.
type AttributeProvider interface {
	OnAttributeRetrieval(ctx context.Context, resource attribute.Resource, subject []attribute.PrincipalAttribute) error
}

// PermissionLookup reads the permission tables embedded in the
// configuration store. Both entry points are read-only; an absent table is
// an empty result, not an error.
type PermissionLookup interface {
	WidgetPermissions(ctx context.Context, widgetHash string) (model.PermissionTable, error)
	DashboardPermissions(ctx context.Context, dashboardIdentifier string) (model.PermissionTable, error)
}

// EntryCache stores the raw permission entries computed for one
// (resource, principal-set) combination. Writes are best effort; the value
// is a pure function of the store state, so duplicate concurrent fills are
// idempotent.
type EntryCache interface {
	GetPermissionEntries(ctx context.Context, key string) ([]model.PermissionEntry, bool, error)
	SetPermissionEntries(ctx context.Context, key string, entries []model.PermissionEntry) error
}

// PermissionAttributeProvider resolves the permission grants stored for
// dashboards and widget instances into typed permission attributes.
type PermissionAttributeProvider struct {
	lookup PermissionLookup
	cache  EntryCache
}

const providerID = "dashgate/permission-attribute-provider"

func NewPermissionAttributeProvider(lookup PermissionLookup, cache EntryCache) *PermissionAttributeProvider {
	return &PermissionAttributeProvider{
		lookup: lookup,
		cache:  cache,
	}
}

// OnAttributeRetrieval appends the permission attributes applicable to the
// current subject to the given resource attribute. Resources the provider
// does not govern and subjects without user or group principals are a
// no-op. A store read failure aborts the whole call; a malformed stored
// entry is skipped so that one bad grant cannot block the others.
func (p *PermissionAttributeProvider) OnAttributeRetrieval(ctx context.Context, resource attribute.Resource, subject []attribute.PrincipalAttribute) error {
	switch resource.(type) {
	case *attribute.DashboardAttribute, *attribute.WidgetAttribute:
	default:
		return nil
	}

	principals := attribute.FilterPrincipals(subject, func(principal attribute.PrincipalAttribute) bool {
		return principal.Kind == attribute.KindUser || principal.Kind == attribute.KindGroup
	})
	if len(principals) == 0 {
		return nil
	}

	subjectSet := make(map[string]attribute.PrincipalAttribute, len(principals))
	identifiers := make([]string, 0, len(principals))
	for _, principalAttribute := range principals {
		identifier := principalAttribute.Identifier()
		if _, exists := subjectSet[identifier]; exists {
			continue
		}
		subjectSet[identifier] = principalAttribute
		identifiers = append(identifiers, identifier)
	}

	cacheKey := accesscontrol.BuildCacheKey(providerID, resource.Name(), identifiers)

	entries, hit, err := p.cache.GetPermissionEntries(ctx, cacheKey)
	if err != nil {
		return fmt.Errorf("failed to read permission entry cache: %w", err)
	}
	if !hit {
		table, err := p.lookupPermissions(ctx, resource)
		if err != nil {
			return fmt.Errorf("%w: %v", dashgate_errors.ErrStoreUnavailable, err)
		}
		entries = table.Flatten()
		if err := p.cache.SetPermissionEntries(ctx, cacheKey, entries); err != nil {
			logger.Warn("Failed to cache permission entries",
				zap.Error(err),
				zap.String("cacheKey", cacheKey),
				zap.String("resource", resource.Name()))
		}
	}

	var permissions []attribute.Permission
	for _, entry := range entries {
		if _, relevant := subjectSet[entry.Principal]; !relevant {
			continue
		}
		principalAttribute, err := principal.Resolve(entry.Principal)
		if err != nil {
			logger.Warn("Skipping unresolvable permission entry",
				zap.Error(err),
				zap.String("principal", entry.Principal),
				zap.String("resource", resource.Name()))
			continue
		}
		permissions = append(permissions, attribute.Permission{
			Principal: principalAttribute,
			Resource:  resource.Name(),
			Action:    entry.Action,
			State:     entry.State,
		})
	}

	resource.AddPermissions(permissions...)
	return nil
}

func (p *PermissionAttributeProvider) lookupPermissions(ctx context.Context, resource attribute.Resource) (model.PermissionTable, error) {
	switch resource.(type) {
	case *attribute.WidgetAttribute:
		return p.lookup.WidgetPermissions(ctx, resource.Identifier())
	default:
		return p.lookup.DashboardPermissions(ctx, resource.Identifier())
	}
}
