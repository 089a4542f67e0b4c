package service

import (
	"context"
	"fmt"
	"time"

	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"

	"github.com/DoctFaust/campus-info-system/internal/analysis"
	"github.com/DoctFaust/campus-info-system/internal/config"
	"github.com/DoctFaust/campus-info-system/internal/models"
)

//go:generate mockgen -source=analytics.go -destination=mocks/mock_analytics.go -package=mocks

// Слои GeoJSON-экспорта
const (
	LayerClusters  = "clusters"
	LayerBuffers   = "buffers"
	LayerDensity   = "density"
	LayerEllipses  = "ellipses"
	LayerIncidents = "incidents"
)

// AnalyticsService - пространственный и статистический анализ снимка инцидентов
type AnalyticsService interface {
	Summary(ctx context.Context, q analysis.Query) (analysis.Summary, error)
	TypeFrequencies(ctx context.Context, q analysis.Query) ([]analysis.TypeCount, error)
	Overview(ctx context.Context, q analysis.Query) (analysis.Overview, error)
	Clusters(ctx context.Context, q analysis.Query) ([]analysis.Cluster, error)
	Buffers(ctx context.Context, q analysis.Query) ([]analysis.BufferZone, error)
	Density(ctx context.Context, q analysis.Query) ([]analysis.DensityCell, error)
	Ellipses(ctx context.Context, q analysis.Query) ([]analysis.Ellipse, error)
	Heatmap(ctx context.Context, q analysis.Query) ([]analysis.HeatPoint, error)
	Trends(ctx context.Context, q analysis.Query) (analysis.TrendReport, error)
	GeoJSON(ctx context.Context, layer string, q analysis.Query) (*geojson.FeatureCollection, error)
}

type analyticsService struct {
	repo   IncidentRepository
	logger *logrus.Logger
	cfg    *config.Config
	params analysis.Params
	now    func() time.Time
}

func NewAnalyticsService(repo IncidentRepository, logger *logrus.Logger, cfg *config.Config) AnalyticsService {
	return &analyticsService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
		params: cfg.AnalysisParams(),
		now:    time.Now,
	}
}

// snapshot читает инциденты по фильтру и отбрасывает записи с некорректными координатами
func (s *analyticsService) snapshot(ctx context.Context, method string, q analysis.Query) ([]models.Incident, *logrus.Entry, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  method,
	})

	filter := q.Filter
	if filter.Limit <= 0 || filter.Limit > s.cfg.SnapshotLimit {
		filter.Limit = s.cfg.SnapshotLimit
	}
	filter.Offset = 0

	rows, err := s.repo.Snapshot(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to load incident snapshot")
		return nil, log, fmt.Errorf("service: could not load snapshot: %w", err)
	}

	snap := analysis.Snapshot(rows)
	log.WithField("count", len(snap)).Debug("Snapshot loaded")
	return snap, log, nil
}

func (s *analyticsService) Summary(ctx context.Context, q analysis.Query) (analysis.Summary, error) {
	snap, _, err := s.snapshot(ctx, "Summary", q)
	if err != nil {
		return analysis.Summary{}, err
	}
	return analysis.Summarize(snap, s.now()), nil
}

func (s *analyticsService) TypeFrequencies(ctx context.Context, q analysis.Query) ([]analysis.TypeCount, error) {
	snap, _, err := s.snapshot(ctx, "TypeFrequencies", q)
	if err != nil {
		return nil, err
	}
	return analysis.TypeFrequencies(snap), nil
}

// Overview возвращает сводку, частоты и тренды, посчитанные по одному снимку
func (s *analyticsService) Overview(ctx context.Context, q analysis.Query) (analysis.Overview, error) {
	snap, _, err := s.snapshot(ctx, "Overview", q)
	if err != nil {
		return analysis.Overview{}, err
	}
	return analysis.BuildOverview(snap, s.now(), s.params.TrendDays), nil
}

// Clusters группирует инциденты по порогу расстояния в градусах
func (s *analyticsService) Clusters(ctx context.Context, q analysis.Query) ([]analysis.Cluster, error) {
	snap, log, err := s.snapshot(ctx, "Clusters", q)
	if err != nil {
		return nil, err
	}
	p := s.params.With(q)
	clusters := analysis.Clusters(snap, p.ClusterDistance)
	log.WithFields(logrus.Fields{
		"threshold": p.ClusterDistance,
		"clusters":  len(clusters),
	}).Info("Clusters computed")
	return clusters, nil
}

// Buffers строит зоны влияния с радиусом, зависящим от срочности
func (s *analyticsService) Buffers(ctx context.Context, q analysis.Query) ([]analysis.BufferZone, error) {
	snap, _, err := s.snapshot(ctx, "Buffers", q)
	if err != nil {
		return nil, err
	}
	return analysis.Buffers(snap, s.params.With(q).BufferRadius), nil
}

// Density возвращает непустые ячейки сетки в порядке строк и столбцов
func (s *analyticsService) Density(ctx context.Context, q analysis.Query) ([]analysis.DensityCell, error) {
	snap, log, err := s.snapshot(ctx, "Density", q)
	if err != nil {
		return nil, err
	}
	p := s.params.With(q)
	grid := analysis.Density(snap, p.GridCellSize, p.DensityNormalization)
	log.WithField("cells", len(grid)).Info("Density grid computed")
	return grid.Cells(), nil
}

// Ellipses строит эллипсы стандартного отклонения по категориям
func (s *analyticsService) Ellipses(ctx context.Context, q analysis.Query) ([]analysis.Ellipse, error) {
	snap, _, err := s.snapshot(ctx, "Ellipses", q)
	if err != nil {
		return nil, err
	}
	return analysis.FitEllipses(snap, s.params.EllipseOptions()), nil
}

func (s *analyticsService) Heatmap(ctx context.Context, q analysis.Query) ([]analysis.HeatPoint, error) {
	snap, _, err := s.snapshot(ctx, "Heatmap", q)
	if err != nil {
		return nil, err
	}
	return analysis.HeatPoints(snap), nil
}

func (s *analyticsService) Trends(ctx context.Context, q analysis.Query) (analysis.TrendReport, error) {
	snap, _, err := s.snapshot(ctx, "Trends", q)
	if err != nil {
		return analysis.TrendReport{}, err
	}
	return analysis.Trends(snap, s.now(), s.params.TrendDays), nil
}

// GeoJSON экспортирует один слой анализа как FeatureCollection
func (s *analyticsService) GeoJSON(ctx context.Context, layer string, q analysis.Query) (*geojson.FeatureCollection, error) {
	switch layer {
	case LayerClusters, LayerBuffers, LayerDensity, LayerEllipses, LayerIncidents:
	default:
		return nil, fmt.Errorf("service: layer %q: %w", layer, ErrUnknownLayer)
	}

	snap, log, err := s.snapshot(ctx, "GeoJSON", q)
	if err != nil {
		return nil, err
	}
	p := s.params.With(q)

	var fc *geojson.FeatureCollection
	switch layer {
	case LayerClusters:
		fc = analysis.ClustersGeoJSON(analysis.Clusters(snap, p.ClusterDistance))
	case LayerBuffers:
		fc = analysis.BuffersGeoJSON(analysis.Buffers(snap, p.BufferRadius))
	case LayerDensity:
		fc = analysis.DensityGeoJSON(analysis.Density(snap, p.GridCellSize, p.DensityNormalization))
	case LayerEllipses:
		fc = analysis.EllipsesGeoJSON(analysis.FitEllipses(snap, p.EllipseOptions()))
	default:
		fc = analysis.IncidentsGeoJSON(snap)
	}

	log.WithFields(logrus.Fields{
		"layer":    layer,
		"features": len(fc.Features),
	}).Info("GeoJSON layer exported")
	return fc, nil
}
