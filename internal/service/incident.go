package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/DoctFaust/campus-info-system/internal/analysis"
	"github.com/DoctFaust/campus-info-system/internal/config"
	"github.com/DoctFaust/campus-info-system/internal/models"
	"github.com/DoctFaust/campus-info-system/internal/webhook"
)

//go:generate mockgen -source=incident.go -destination=mocks/mock_incident.go -package=mocks

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id int64) (*models.Incident, error)
	Update(ctx context.Context, incident *models.Incident) error
	Resolve(ctx context.Context, id int64) error
	ListIncidents(ctx context.Context, filter models.IncidentFilter) ([]*models.Incident, error)
	Snapshot(ctx context.Context, filter models.IncidentFilter) ([]models.Incident, error)
	FindActiveNear(ctx context.Context, lat, lon, radiusMeters float64) ([]*models.Incident, error)
	SaveLocationCheck(ctx context.Context, check *models.LocationCheck) error
	GetLocationCheckStats(ctx context.Context, minutes int) (int, error)
}

// IncidentCache определяет контракт кеша инцидентов. Промах кеша - (nil, nil).
type IncidentCache interface {
	GetIncidentFromCache(ctx context.Context, id int64) (*models.Incident, error)
	SetIncidentCache(ctx context.Context, incident *models.Incident) error
	InvalidateIncidentCache(ctx context.Context, id int64) error
}

// IncidentService определяет контракт бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, incident *models.Incident) error
	GetIncident(ctx context.Context, id int64) (*models.Incident, error)
	UpdateIncident(ctx context.Context, id int64, patch models.IncidentPatch) (*models.Incident, error)
	ResolveIncident(ctx context.Context, id int64) error
	ListIncidents(ctx context.Context, filter models.IncidentFilter, page, pageSize int) ([]*models.Incident, error)
	CheckLocation(ctx context.Context, userID string, lat, lon float64) ([]*models.Incident, error)
	GetStats(ctx context.Context) (int, error)
}

type incidentService struct {
	repo      IncidentRepository
	cache     IncidentCache
	logger    *logrus.Logger
	cfg       *config.Config
	publisher webhook.WebhookPublisher
	params    analysis.Params
}

func NewIncidentService(repo IncidentRepository, cache IncidentCache, logger *logrus.Logger, cfg *config.Config, publisher webhook.WebhookPublisher) IncidentService {
	return &incidentService{
		repo:      repo,
		cache:     cache,
		logger:    logger,
		cfg:       cfg,
		publisher: publisher,
		params:    cfg.AnalysisParams(),
	}
}

// CreateIncident создает инцидент
func (s *incidentService) CreateIncident(ctx context.Context, incident *models.Incident) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CreateIncident",
		"type":    incident.Type,
	})
	log.Info("Attempting to create a new incident")

	incident.Status = models.StatusActive
	if incident.ReporterName == "" {
		incident.ReporterName = models.DefaultReporterName
	}
	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return fmt.Errorf("service: could not create incident: %w", err)
	}

	if err := s.cache.InvalidateIncidentCache(ctx, incident.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.WithField("incident_id", incident.ID).Info("Incident created successfully")
	return nil
}

// GetIncident получает инцидент по ID, сначала из кеша
func (s *incidentService) GetIncident(ctx context.Context, id int64) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	cached, err := s.cache.GetIncidentFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read incident from cache")
	}
	if cached != nil {
		log.Debug("Incident served from cache")
		return cached, nil
	}

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if err := s.cache.SetIncidentCache(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to write incident to cache")
	}

	log.Info("Incident fetched successfully")
	return incident, nil
}

// UpdateIncident частично обновляет существующий инцидент
func (s *incidentService) UpdateIncident(ctx context.Context, id int64, patch models.IncidentPatch) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "UpdateIncident",
		"incident_id": id,
	})
	log.Info("Attempting to update incident")

	if patch.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent incident")
		return nil, fmt.Errorf("service: incident with id %d not found for update: %w", id, err)
	}

	patch.Apply(existing)

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update incident in repository")
		return nil, fmt.Errorf("service: could not update incident: %w", err)
	}

	if err := s.cache.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident updated successfully")
	return existing, nil
}

// ResolveIncident переводит инцидент в статус resolved
func (s *incidentService) ResolveIncident(ctx context.Context, id int64) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "ResolveIncident",
		"incident_id": id,
	})
	log.Info("Attempting to resolve incident")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to resolve a non-existent incident")
		return fmt.Errorf("service: incident with id %d not found for resolve: %w", id, err)
	}

	if err := s.repo.Resolve(ctx, id); err != nil {
		log.WithError(err).Error("Failed to resolve incident in repository")
		return fmt.Errorf("service: could not resolve incident: %w", err)
	}

	if err := s.cache.InvalidateIncidentCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate incident cache")
	}

	log.Info("Incident resolved successfully")
	return nil
}

// ListIncidents возвращает список инцидентов с фильтрацией и пагинацией
func (s *incidentService) ListIncidents(ctx context.Context, filter models.IncidentFilter, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	log := s.logger.WithFields(logrus.Fields{
		"service":   "incident",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing incidents")

	incidents, err := s.repo.ListIncidents(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// CheckLocation находит активные инциденты, в буферную зону которых попадает точка.
// Если точка опасна, публикуется вебхук.
func (s *incidentService) CheckLocation(ctx context.Context, userID string, lat, lon float64) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CheckLocation",
		"user_id": userID,
	})
	log.Info("Checking user location")

	searchRadius := s.params.BufferRadius * analysis.MaxSeverityMultiplier
	candidates, err := s.repo.FindActiveNear(ctx, lat, lon, searchRadius)
	if err != nil {
		log.WithError(err).Error("Failed to find active incidents near location")
		return nil, fmt.Errorf("service: failed to find active incidents: %w", err)
	}

	snapshot := make([]models.Incident, 0, len(candidates))
	byID := make(map[int64]*models.Incident, len(candidates))
	for _, inc := range candidates {
		snapshot = append(snapshot, *inc)
		byID[inc.ID] = inc
	}

	point := analysis.LatLng{Lat: lat, Lng: lon}
	zones := analysis.ZonesContaining(point, analysis.Buffers(snapshot, s.params.BufferRadius))

	dangerous := make([]*models.Incident, 0, len(zones))
	for _, z := range zones {
		if inc, ok := byID[z.IncidentID]; ok {
			dangerous = append(dangerous, inc)
		}
	}
	isDanger := len(dangerous) > 0

	check := &models.LocationCheck{
		UserID:      userID,
		Latitude:    lat,
		Longitude:   lon,
		IsDangerous: isDanger,
	}
	if err := s.repo.SaveLocationCheck(ctx, check); err != nil {
		log.WithError(err).Warn("Failed to save location check")
	}

	if isDanger {
		event := webhook.NewWebhookEvent(userID, lat, lon, dangerous, zones, time.Now().UTC())
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish webhook event")
		}
	}

	log.WithField("is_danger", isDanger).Info("Location check completed")
	return dangerous, nil
}

// GetStats возвращает количество уникальных пользователей, проверивших геолокацию за окно статистики
func (s *incidentService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetStats",
		"window":  s.cfg.StatsTimeWindowMinutes,
	})

	count, err := s.repo.GetLocationCheckStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get location check stats")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}
