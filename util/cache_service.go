// util/cache_service.go

package util

import (
	"context"
	"time"

	"github.com/rohanverma/dashgate/db"
	"github.com/rohanverma/dashgate/model"
)

// CacheService is the Redis-backed cache facade. It satisfies the
// permission entry cache used by the attribute provider and also carries
// dashboard rows and the per-user current dashboard selection.
type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetPermissionEntries(ctx context.Context, key string) ([]model.PermissionEntry, bool, error) {
	return db.GetCachedPermissionEntries(ctx, key)
}

func (c *CacheService) SetPermissionEntries(ctx context.Context, key string, entries []model.PermissionEntry) error {
	return db.CachePermissionEntries(ctx, key, entries)
}

func (c *CacheService) DeletePermissionEntries(ctx context.Context, key string) error {
	return db.DeleteCachedPermissionEntries(ctx, key)
}

func (c *CacheService) GetDashboard(ctx context.Context, identifier string) (*model.Dashboard, error) {
	return db.GetCachedDashboard(ctx, identifier)
}

func (c *CacheService) SetDashboard(ctx context.Context, dashboard model.Dashboard) error {
	return db.CacheDashboard(ctx, &dashboard)
}

func (c *CacheService) DeleteDashboard(ctx context.Context, identifier string) error {
	return db.DeleteCachedDashboard(ctx, identifier)
}

func (c *CacheService) GetCurrentDashboard(ctx context.Context, userID string) (string, error) {
	return db.GetCurrentDashboard(ctx, userID)
}

func (c *CacheService) SetCurrentDashboard(ctx context.Context, userID, identifier string) error {
	return db.SetCurrentDashboard(ctx, userID, identifier)
}

func (c *CacheService) LockResource(ctx context.Context, resourceName string, ttl time.Duration) (bool, error) {
	return db.LockResource(ctx, resourceName, ttl)
}

func (c *CacheService) UnlockResource(ctx context.Context, resourceName string) error {
	return db.UnlockResource(ctx, resourceName)
}
