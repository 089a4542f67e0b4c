package v1

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DoctFaust/campus-info-system/internal/analysis"
	"github.com/DoctFaust/campus-info-system/internal/service"
)

// positiveFloat возвращает значение query-параметра, если это конечное положительное число, иначе 0
func positiveFloat(c *gin.Context, key string) float64 {
	v, err := strconv.ParseFloat(c.Query(key), 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

// analysisQuery собирает фильтр снимка и переопределения параметров анализа
func analysisQuery(c *gin.Context) (analysis.Query, bool) {
	filter, ok := parseIncidentFilter(c)
	if !ok {
		return analysis.Query{}, false
	}
	return analysis.Query{
		Filter:          filter,
		ClusterDistance: positiveFloat(c, "distance"),
		BufferRadius:    positiveFloat(c, "radius"),
		CellSize:        positiveFloat(c, "cell_size"),
	}, true
}

func (h *Handler) analyticsError(c *gin.Context, method string, err error) {
	h.logger.WithField("method", method).WithError(err).Error("Failed to run analysis")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// @Summary Incident summary
// @Description Counts by type, severity and status, resolution rate and type frequencies.
// @Tags Analytics
// @Produce json
// @Param type query string false "Incident type"
// @Param status query string false "Incident status"
// @Param severity query string false "Severity"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	q, ok := analysisQuery(c)
	if !ok {
		return
	}

	overview, err := h.analyticsService.Overview(c.Request.Context(), q)
	if err != nil {
		h.analyticsError(c, "getSummary", err)
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Summary: overview.Summary, TypeFrequencies: overview.TypeFrequencies})
}

// @Summary Proximity clusters
// @Description Group incidents whose coordinates are closer than the threshold (degrees).
// @Tags Analytics
// @Produce json
// @Param distance query number false "Cluster threshold in degrees"
// @Success 200 {object} ClustersResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/clusters [get]
func (h *Handler) getClusters(c *gin.Context) {
	q, ok := analysisQuery(c)
	if !ok {
		return
	}

	clusters, err := h.analyticsService.Clusters(c.Request.Context(), q)
	if err != nil {
		h.analyticsError(c, "getClusters", err)
		return
	}

	c.JSON(http.StatusOK, ClustersResponse{
		Threshold: h.cfg.AnalysisParams().With(q).ClusterDistance,
		Clusters:  clusters,
	})
}

// @Summary Buffer zones
// @Description Circular influence zone per incident in the snapshot, radius scaled by severity. Pass status=active to limit it to open incidents.
// @Tags Analytics
// @Produce json
// @Param status query string false "Incident status"
// @Param radius query number false "Base buffer radius in metres"
// @Success 200 {object} BuffersResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/buffers [get]
func (h *Handler) getBuffers(c *gin.Context) {
	q, ok := analysisQuery(c)
	if !ok {
		return
	}

	zones, err := h.analyticsService.Buffers(c.Request.Context(), q)
	if err != nil {
		h.analyticsError(c, "getBuffers", err)
		return
	}

	c.JSON(http.StatusOK, BuffersResponse{
		BaseRadius: h.cfg.AnalysisParams().With(q).BufferRadius,
		Zones:      zones,
	})
}

// @Summary Density grid
// @Description Incident counts per square grid cell with normalized intensity.
// @Tags Analytics
// @Produce json
// @Param cell_size query number false "Cell size in degrees"
// @Success 200 {object} DensityResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/density [get]
func (h *Handler) getDensity(c *gin.Context) {
	q, ok := analysisQuery(c)
	if !ok {
		return
	}

	cells, err := h.analyticsService.Density(c.Request.Context(), q)
	if err != nil {
		h.analyticsError(c, "getDensity", err)
		return
	}

	total := 0
	for _, cell := range cells {
		total += cell.Count
	}
	c.JSON(http.StatusOK, DensityResponse{
		CellSize: h.cfg.AnalysisParams().With(q).GridCellSize,
		Total:    total,
		Cells:    cells,
	})
}

// @Summary Standard deviational ellipses
// @Description One ellipse per incident type with enough points.
// @Tags Analytics
// @Produce json
// @Success 200 {array} analysis.Ellipse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/ellipses [get]
func (h *Handler) getEllipses(c *gin.Context) {
	q, ok := analysisQuery(c)
	if !ok {
		return
	}

	ellipses, err := h.analyticsService.Ellipses(c.Request.Context(), q)
	if err != nil {
		h.analyticsError(c, "getEllipses", err)
		return
	}
	c.JSON(http.StatusOK, ellipses)
}

// @Summary Heatmap points
// @Description Active incidents weighted by severity.
// @Tags Analytics
// @Produce json
// @Success 200 {array} analysis.HeatPoint
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/heatmap [get]
func (h *Handler) getHeatmap(c *gin.Context) {
	q, ok := analysisQuery(c)
	if !ok {
		return
	}

	points, err := h.analyticsService.Heatmap(c.Request.Context(), q)
	if err != nil {
		h.analyticsError(c, "getHeatmap", err)
		return
	}
	c.JSON(http.StatusOK, points)
}

// @Summary Temporal trends
// @Description Daily counts per type for the last days and hour-of-day distribution.
// @Tags Analytics
// @Produce json
// @Success 200 {object} analysis.TrendReport
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/trends [get]
func (h *Handler) getTrends(c *gin.Context) {
	q, ok := analysisQuery(c)
	if !ok {
		return
	}

	report, err := h.analyticsService.Trends(c.Request.Context(), q)
	if err != nil {
		h.analyticsError(c, "getTrends", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary GeoJSON export
// @Description Export an analysis layer as a GeoJSON FeatureCollection.
// @Tags Analytics
// @Produce json
// @Param layer path string true "Layer" Enums(incidents, clusters, buffers, density, ellipses)
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]string "Unknown layer"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /analytics/geojson/{layer} [get]
func (h *Handler) getGeoJSON(c *gin.Context) {
	q, ok := analysisQuery(c)
	if !ok {
		return
	}
	layer := c.Param("layer")

	fc, err := h.analyticsService.GeoJSON(c.Request.Context(), layer, q)
	if err != nil {
		if errors.Is(err, service.ErrUnknownLayer) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown layer " + layer})
			return
		}
		h.analyticsError(c, "getGeoJSON", err)
		return
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		h.analyticsError(c, "getGeoJSON", err)
		return
	}
	c.Data(http.StatusOK, "application/geo+json", data)
}
