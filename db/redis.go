// db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/rohanverma/dashgate/logging"
	"github.com/rohanverma/dashgate/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	encryptionKey = []byte(viper.GetString("redis.encryptionKey"))
	if len(encryptionKey) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// CachePermissionEntries stores the raw permission entries for one
// resolution key. Grants are security data, so the value is encrypted at
// rest in Redis. An empty entry list is a valid cached value; it marks a
// resource without grants.
func CachePermissionEntries(ctx context.Context, key string, entries []model.PermissionEntry) error {
	if entries == nil {
		entries = []model.PermissionEntry{}
	}
	entriesJSON, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal permission entries: %w", err)
	}

	encryptedEntries, err := encrypt(entriesJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt permission entries: %w", err)
	}

	redisKey := fmt.Sprintf("permissions:%s", key)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, redisKey, base64.StdEncoding.EncodeToString(encryptedEntries), defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache permission entries: %w", err)
	}

	logger.Debug("Permission entries cached successfully", zap.String("key", key))
	return nil
}

// GetCachedPermissionEntries returns the cached entries for a resolution
// key. The second return value reports whether the key was present.
func GetCachedPermissionEntries(ctx context.Context, key string) ([]model.PermissionEntry, bool, error) {
	redisKey := fmt.Sprintf("permissions:%s", key)
	encryptedEntriesStr, err := RedisClient.Get(ctx, redisKey).Result()
	if err == redis.Nil {
		logger.Debug("Permission entries not found in cache", zap.String("key", key))
		return nil, false, nil
	} else if err != nil {
		return nil, false, fmt.Errorf("failed to get permission entries from cache: %w", err)
	}

	encryptedEntries, err := base64.StdEncoding.DecodeString(encryptedEntriesStr)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode permission entries: %w", err)
	}

	entriesJSON, err := decrypt(encryptedEntries)
	if err != nil {
		return nil, false, fmt.Errorf("failed to decrypt permission entries: %w", err)
	}

	var entries []model.PermissionEntry
	err = json.Unmarshal(entriesJSON, &entries)
	if err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal permission entries: %w", err)
	}

	logger.Debug("Permission entries retrieved from cache", zap.String("key", key))
	return entries, true, nil
}

func DeleteCachedPermissionEntries(ctx context.Context, key string) error {
	redisKey := fmt.Sprintf("permissions:%s", key)
	err := RedisClient.Del(ctx, redisKey).Err()
	if err != nil {
		return fmt.Errorf("failed to delete permission entries from cache: %w", err)
	}
	logger.Debug("Permission entries deleted from cache", zap.String("key", key))
	return nil
}

func CacheDashboard(ctx context.Context, dashboard *model.Dashboard) error {
	dashboardJSON, err := json.Marshal(dashboard)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard: %w", err)
	}

	key := fmt.Sprintf("dashboard:%s", dashboard.Identifier)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, dashboardJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache dashboard: %w", err)
	}

	logger.Debug("Dashboard cached successfully", zap.String("dashboardID", dashboard.Identifier))
	return nil
}

func GetCachedDashboard(ctx context.Context, identifier string) (*model.Dashboard, error) {
	key := fmt.Sprintf("dashboard:%s", identifier)
	dashboardJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Dashboard not found in cache", zap.String("dashboardID", identifier))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get dashboard from cache: %w", err)
	}

	var dashboard model.Dashboard
	err = json.Unmarshal([]byte(dashboardJSON), &dashboard)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal dashboard: %w", err)
	}

	logger.Debug("Dashboard retrieved from cache", zap.String("dashboardID", identifier))
	return &dashboard, nil
}

func DeleteCachedDashboard(ctx context.Context, identifier string) error {
	key := fmt.Sprintf("dashboard:%s", identifier)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete dashboard from cache: %w", err)
	}
	logger.Debug("Dashboard deleted from cache", zap.String("dashboardID", identifier))
	return nil
}

// SetCurrentDashboard persists the per-user current dashboard selection.
// The selection is explicit request state; handlers read it here and pass
// the identifier down instead of relying on ambient session data.
func SetCurrentDashboard(ctx context.Context, userID, identifier string) error {
	key := fmt.Sprintf("currentdashboard:%s", userID)
	err := RedisClient.Set(ctx, key, identifier, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set current dashboard: %w", err)
	}
	logger.Debug("Current dashboard set",
		zap.String("userID", userID),
		zap.String("dashboardID", identifier))
	return nil
}

func GetCurrentDashboard(ctx context.Context, userID string) (string, error) {
	key := fmt.Sprintf("currentdashboard:%s", userID)
	identifier, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("failed to get current dashboard: %w", err)
	}
	return identifier, nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

func LockResource(ctx context.Context, resourceName string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:%s", resourceName)
	locked, err := RedisClient.SetNX(ctx, key, "locked", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	logger.Debug("Lock acquisition attempt",
		zap.String("resource", resourceName),
		zap.Bool("locked", locked))
	return locked, nil
}

func UnlockResource(ctx context.Context, resourceName string) error {
	key := fmt.Sprintf("lock:%s", resourceName)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	logger.Debug("Lock released", zap.String("resource", resourceName))
	return nil
}
