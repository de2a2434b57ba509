package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/wildfire_notifier/internal/models"
	"github.com/shenikar/wildfire_notifier/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	activeFiresCacheKey   = "fires:active"
	activeFiresVersionKey = "fires:active:version"
)

// CachedFireRepository кэширует список активных пожаров в Redis.
// Ключ снимка содержит версию, которую UpsertFires увеличивает после записи,
// поэтому снимок, прочитанный до записи, уже никто не прочитает.
// Ошибки Redis не фатальны: чтение уходит в основное хранилище.
type CachedFireRepository struct {
	next        service.FireRepository
	redisClient *redis.Client
	ttl         time.Duration
	logger      *logrus.Logger
}

func NewCachedFireRepository(next service.FireRepository, redisClient *redis.Client, ttl time.Duration, logger *logrus.Logger) service.FireRepository {
	return &CachedFireRepository{
		next:        next,
		redisClient: redisClient,
		ttl:         ttl,
		logger:      logger,
	}
}

func (r *CachedFireRepository) ListActiveFires(ctx context.Context) ([]*models.FireRecord, error) {
	version, err := r.currentVersion(ctx)
	if err != nil {
		r.logger.WithError(err).Warn("Failed to read active fires cache version")
		return r.next.ListActiveFires(ctx)
	}
	key := snapshotKey(version)
	log := r.logger.WithField("cache_key", key)

	fires, err := r.getFromCache(ctx, key)
	switch {
	case err != nil:
		log.WithError(err).Warn("Failed to read active fires from cache")
	case fires != nil:
		log.Debug("Active fires served from cache")
		return fires, nil
	}

	fires, err = r.next.ListActiveFires(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.setCache(ctx, key, fires); err != nil {
		log.WithError(err).Warn("Failed to store active fires in cache")
	}
	return fires, nil
}

// UpsertFires пишет в хранилище и сбрасывает кэш
func (r *CachedFireRepository) UpsertFires(ctx context.Context, fires []*models.FireRecord) error {
	if err := r.next.UpsertFires(ctx, fires); err != nil {
		return err
	}
	if err := r.invalidate(ctx); err != nil {
		r.logger.WithError(err).Warn("Failed to invalidate active fires cache")
	}
	return nil
}

func snapshotKey(version int64) string {
	return fmt.Sprintf("%s:%d", activeFiresCacheKey, version)
}

// currentVersion возвращает 0, пока UpsertFires ни разу не вызывался
func (r *CachedFireRepository) currentVersion(ctx context.Context) (int64, error) {
	version, err := r.redisClient.Get(ctx, activeFiresVersionKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get active fires cache version: %w", err)
	}
	return version, nil
}

// getFromCache возвращает nil, nil при промахе
func (r *CachedFireRepository) getFromCache(ctx context.Context, key string) ([]*models.FireRecord, error) {
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active fires from cache: %w", err)
	}

	fires := make([]*models.FireRecord, 0)
	if err := json.Unmarshal(val, &fires); err != nil {
		return nil, fmt.Errorf("failed to unmarshal active fires from cache: %w", err)
	}
	return fires, nil
}

func (r *CachedFireRepository) setCache(ctx context.Context, key string, fires []*models.FireRecord) error {
	if fires == nil {
		fires = []*models.FireRecord{}
	}
	val, err := json.Marshal(fires)
	if err != nil {
		return fmt.Errorf("failed to marshal active fires for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, key, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set active fires in cache: %w", err)
	}
	return nil
}

// invalidate переводит чтения на новый ключ. Старый снимок удаляется сразу,
// а запоздавшая запись в него истечёт по TTL.
func (r *CachedFireRepository) invalidate(ctx context.Context) error {
	version, err := r.redisClient.Incr(ctx, activeFiresVersionKey).Result()
	if err != nil {
		return fmt.Errorf("failed to invalidate active fires cache: %w", err)
	}
	if err := r.redisClient.Del(ctx, snapshotKey(version-1)).Err(); err != nil {
		return fmt.Errorf("failed to delete stale active fires snapshot: %w", err)
	}
	return nil
}
