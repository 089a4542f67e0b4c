package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/DoctFaust/campus-info-system/internal/analysis"
	"github.com/DoctFaust/campus-info-system/internal/models"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "webhook_events"
)

// WebhookEvent - событие "пользователь находится в опасной зоне"
type WebhookEvent struct {
	ID          string                `json:"id"`
	UserID      string                `json:"user_id"`
	Latitude    float64               `json:"latitude"`
	Longitude   float64               `json:"longitude"`
	IsDangerous bool                  `json:"is_dangerous"`
	Timestamp   time.Time             `json:"timestamp"`
	Incidents   []*models.Incident    `json:"incidents,omitempty"`
	Zones       []analysis.BufferZone `json:"zones,omitempty"`
}

// NewWebhookEvent собирает событие опасной зоны с новым идентификатором
func NewWebhookEvent(userID string, lat, lon float64, incidents []*models.Incident, zones []analysis.BufferZone, at time.Time) WebhookEvent {
	return WebhookEvent{
		ID:          uuid.NewString(),
		UserID:      userID,
		Latitude:    lat,
		Longitude:   lon,
		IsDangerous: len(incidents) > 0,
		Timestamp:   at,
		Incidents:   incidents,
		Zones:       zones,
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH кладёт событие в голову очереди, воркер забирает с хвоста
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда Redis не настроен
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, WebhookEvent) error { return nil }
