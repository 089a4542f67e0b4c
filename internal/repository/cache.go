package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/DoctFaust/campus-info-system/internal/models"
	"github.com/DoctFaust/campus-info-system/internal/service"
)

func incidentCacheKey(id int64) string {
	return "incident:" + strconv.FormatInt(id, 10)
}

// RedisIncidentCache хранит инциденты в Redis в виде JSON с TTL
type RedisIncidentCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisIncidentCache(redisClient *redis.Client, ttl time.Duration) service.IncidentCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisIncidentCache{redisClient: redisClient, ttl: ttl}
}

// GetIncidentFromCache пытается получить инцидент из Redis
func (c *RedisIncidentCache) GetIncidentFromCache(ctx context.Context, id int64) (*models.Incident, error) {
	val, err := c.redisClient.Get(ctx, incidentCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncidentCache сохраняет инцидент в Redis
func (c *RedisIncidentCache) SetIncidentCache(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, incidentCacheKey(incident.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}

// InvalidateIncidentCache удаляет инцидент из Redis кэша
func (c *RedisIncidentCache) InvalidateIncidentCache(ctx context.Context, id int64) error {
	if err := c.redisClient.Del(ctx, incidentCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incident cache: %w", err)
	}
	return nil
}

// NopIncidentCache - кеш-заглушка, когда Redis не настроен: всегда промах
type NopIncidentCache struct{}

func (NopIncidentCache) GetIncidentFromCache(context.Context, int64) (*models.Incident, error) {
	return nil, nil
}

func (NopIncidentCache) SetIncidentCache(context.Context, *models.Incident) error { return nil }

func (NopIncidentCache) InvalidateIncidentCache(context.Context, int64) error { return nil }
