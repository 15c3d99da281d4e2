// accesscontrol/provider/permission_provider_test.go
package provider_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rohanverma/dashgate/accesscontrol/attribute"
	"github.com/rohanverma/dashgate/accesscontrol/provider"
	dashgate_errors "github.com/rohanverma/dashgate/errors"
	logger "github.com/rohanverma/dashgate/logging"
	"github.com/rohanverma/dashgate/model"
)

type fakeLookup struct {
	widgetTables    map[string]model.PermissionTable
	dashboardTables map[string]model.PermissionTable
	err             error
	widgetCalls     int
	dashboardCalls  int
}

func (f *fakeLookup) WidgetPermissions(ctx context.Context, widgetHash string) (model.PermissionTable, error) {
	f.widgetCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.widgetTables[widgetHash], nil
}

func (f *fakeLookup) DashboardPermissions(ctx context.Context, dashboardIdentifier string) (model.PermissionTable, error) {
	f.dashboardCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.dashboardTables[dashboardIdentifier], nil
}

type fakeCache struct {
	entries  map[string][]model.PermissionEntry
	getErr   error
	setErr   error
	setCalls int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]model.PermissionEntry{}}
}

func (f *fakeCache) GetPermissionEntries(ctx context.Context, key string) ([]model.PermissionEntry, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	entries, hit := f.entries[key]
	return entries, hit, nil
}

func (f *fakeCache) SetPermissionEntries(ctx context.Context, key string, entries []model.PermissionEntry) error {
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.entries[key] = entries
	return nil
}

// unmanagedResource is a resource type the provider does not govern.
type unmanagedResource struct {
	permissions []attribute.Permission
}

func (r *unmanagedResource) Name() string       { return "report:1" }
func (r *unmanagedResource) Identifier() string { return "1" }

func (r *unmanagedResource) AddPermissions(p ...attribute.Permission) {
	r.permissions = append(r.permissions, p...)
}

func (r *unmanagedResource) Permissions() []attribute.Permission { return r.permissions }

func TestPermissionAttributeProvider(t *testing.T) {
	logger.InitLogger(t.TempDir())
	defer logger.Sync()

	ctx := context.Background()

	t.Run("AttachesMatchingDashboardGrants", func(t *testing.T) {
		lookup := &fakeLookup{
			dashboardTables: map[string]model.PermissionTable{
				"d1": {
					"be_user:1":  {"dashboard:view": model.StatePermit},
					"be_group:2": {"dashboard:edit": model.StateDeny},
					"be_user:99": {"dashboard:view": model.StatePermit},
				},
			},
		}
		p := provider.NewPermissionAttributeProvider(lookup, newFakeCache())

		resource := attribute.NewDashboard("d1")
		subject := []attribute.PrincipalAttribute{attribute.User(1), attribute.Group(2)}
		assert.NoError(t, p.OnAttributeRetrieval(ctx, resource, subject))

		permissions := resource.Permissions()
		assert.Len(t, permissions, 2)
		for _, permission := range permissions {
			assert.Equal(t, "dashboard:d1", permission.Resource)
		}
		// Grants for principals outside the subject never reach the resource.
		for _, permission := range permissions {
			assert.NotEqual(t, attribute.User(99), permission.Principal)
		}
	})

	t.Run("WidgetLookupIsHashAddressed", func(t *testing.T) {
		lookup := &fakeLookup{
			widgetTables: map[string]model.PermissionTable{
				"w-abc": {"be_user:1": {"widget:view": model.StatePermit}},
			},
		}
		p := provider.NewPermissionAttributeProvider(lookup, newFakeCache())

		resource := attribute.NewWidget("rss-news", "w-abc", attribute.NewDashboard("d1"))
		assert.NoError(t, p.OnAttributeRetrieval(ctx, resource, []attribute.PrincipalAttribute{attribute.User(1)}))

		assert.Equal(t, 1, lookup.widgetCalls)
		assert.Equal(t, 0, lookup.dashboardCalls)
		assert.Len(t, resource.Permissions(), 1)
		assert.Equal(t, "widget:w-abc", resource.Permissions()[0].Resource)
	})

	t.Run("AbsentTableYieldsNoGrants", func(t *testing.T) {
		lookup := &fakeLookup{dashboardTables: map[string]model.PermissionTable{}}
		p := provider.NewPermissionAttributeProvider(lookup, newFakeCache())

		resource := attribute.NewDashboard("missing")
		assert.NoError(t, p.OnAttributeRetrieval(ctx, resource, []attribute.PrincipalAttribute{attribute.User(1)}))
		assert.Empty(t, resource.Permissions())
	})

	t.Run("SecondCallServedFromCache", func(t *testing.T) {
		lookup := &fakeLookup{
			dashboardTables: map[string]model.PermissionTable{
				"d1": {"be_user:1": {"dashboard:view": model.StatePermit}},
			},
		}
		cache := newFakeCache()
		p := provider.NewPermissionAttributeProvider(lookup, cache)
		subject := []attribute.PrincipalAttribute{attribute.User(1)}

		first := attribute.NewDashboard("d1")
		assert.NoError(t, p.OnAttributeRetrieval(ctx, first, subject))

		second := attribute.NewDashboard("d1")
		assert.NoError(t, p.OnAttributeRetrieval(ctx, second, subject))

		assert.Equal(t, 1, lookup.dashboardCalls)
		assert.Equal(t, first.Permissions(), second.Permissions())
	})

	t.Run("MalformedStoredEntrySkipped", func(t *testing.T) {
		lookup := &fakeLookup{
			dashboardTables: map[string]model.PermissionTable{
				"d1": {
					"be_user:1": {"dashboard:view": model.StatePermit},
				},
			},
		}
		cache := newFakeCache()
		p := provider.NewPermissionAttributeProvider(lookup, cache)

		// Seed the cache with one well-formed and one malformed entry under
		// the key the provider will compute.
		resource := attribute.NewDashboard("d1")
		subject := []attribute.PrincipalAttribute{attribute.User(1)}
		assert.NoError(t, p.OnAttributeRetrieval(ctx, resource, subject))
		for key := range cache.entries {
			cache.entries[key] = append(cache.entries[key], model.PermissionEntry{
				Principal: "be_user:1",
				Action:    "dashboard:edit",
				State:     model.StateDeny,
			})
			cache.entries[key] = append(cache.entries[key], model.PermissionEntry{
				Principal: "be_user:not-a-number",
				Action:    "dashboard:view",
				State:     model.StatePermit,
			})
		}

		fresh := attribute.NewDashboard("d1")
		assert.NoError(t, p.OnAttributeRetrieval(ctx, fresh, subject))
		assert.Len(t, fresh.Permissions(), 2)
	})

	t.Run("UnmanagedResourceIsNoOp", func(t *testing.T) {
		lookup := &fakeLookup{}
		p := provider.NewPermissionAttributeProvider(lookup, newFakeCache())

		resource := &unmanagedResource{}
		assert.NoError(t, p.OnAttributeRetrieval(ctx, resource, []attribute.PrincipalAttribute{attribute.User(1)}))
		assert.Empty(t, resource.Permissions())
		assert.Equal(t, 0, lookup.dashboardCalls)
		assert.Equal(t, 0, lookup.widgetCalls)
	})

	t.Run("EmptySubjectIsNoOp", func(t *testing.T) {
		lookup := &fakeLookup{}
		p := provider.NewPermissionAttributeProvider(lookup, newFakeCache())

		resource := attribute.NewDashboard("d1")
		assert.NoError(t, p.OnAttributeRetrieval(ctx, resource, nil))
		assert.Empty(t, resource.Permissions())
		assert.Equal(t, 0, lookup.dashboardCalls)
	})

	t.Run("StoreFailureFailsFast", func(t *testing.T) {
		lookup := &fakeLookup{err: errors.New("connection refused")}
		p := provider.NewPermissionAttributeProvider(lookup, newFakeCache())

		resource := attribute.NewDashboard("d1")
		err := p.OnAttributeRetrieval(ctx, resource, []attribute.PrincipalAttribute{attribute.User(1)})
		assert.ErrorIs(t, err, dashgate_errors.ErrStoreUnavailable)
		assert.Empty(t, resource.Permissions())
	})

	t.Run("CacheWriteFailureIsBestEffort", func(t *testing.T) {
		lookup := &fakeLookup{
			dashboardTables: map[string]model.PermissionTable{
				"d1": {"be_user:1": {"dashboard:view": model.StatePermit}},
			},
		}
		cache := newFakeCache()
		cache.setErr = errors.New("redis down")
		p := provider.NewPermissionAttributeProvider(lookup, cache)

		resource := attribute.NewDashboard("d1")
		assert.NoError(t, p.OnAttributeRetrieval(ctx, resource, []attribute.PrincipalAttribute{attribute.User(1)}))
		assert.Len(t, resource.Permissions(), 1)
	})
}
