package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/DoctFaust/campus-info-system/internal/analysis"
	"github.com/DoctFaust/campus-info-system/internal/config"
	"github.com/DoctFaust/campus-info-system/internal/models"
	"github.com/DoctFaust/campus-info-system/internal/service"
	"github.com/DoctFaust/campus-info-system/internal/service/mocks"
)

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*mocks.MockIncidentService, *mocks.MockAnalyticsService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockIncidentService(ctrl)
	mockAnalytics := mocks.NewMockAnalyticsService(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		StatsTimeWindowMinutes: 60,
		UploadDir:              t.TempDir(),
		MaxUploadBytes:         1024,
	}

	handler := NewHandler(mockService, mockAnalytics, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return mockService, mockAnalytics, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateIncident_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	reportedAt := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	reqBody := CreateIncidentRequest{
		Type:        "noise",
		Description: "Loud music in dormitory B",
		Latitude:    floatPtr(40.7589),
		Longitude:   floatPtr(-73.9851),
		Severity:    "medium",
	}

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Equal(t, models.TypeNoise, inc.Type)
			assert.Equal(t, models.SeverityMedium, inc.Severity)
			inc.ID = 9
			inc.Status = models.StatusActive
			inc.ReporterName = models.DefaultReporterName
			inc.Timestamp = reportedAt
			return nil
		}).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(9), resp.ID)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, "NOISE", resp.TypeLabel)
	assert.Equal(t, "#795548", resp.Color)
	assert.Equal(t, "Anonymous", resp.ReporterName)
}

func TestCreateIncident_ZeroCoordinatesAccepted(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inc *models.Incident) error {
			assert.Zero(t, inc.Latitude)
			assert.Zero(t, inc.Longitude)
			return nil
		}).Times(1)

	body := `{"type":"other","description":"Null island","latitude":0,"longitude":0,"severity":"low"}`
	w := makeRequest(router, "POST", "/api/v1/incidents", strings.NewReader(body))

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"type": "noise"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	cases := map[string]struct {
		body  string
		field string
		tag   string
	}{
		"unknown type": {
			body:  `{"type":"fire","description":"Smoke","latitude":1,"longitude":1,"severity":"low"}`,
			field: "Type", tag: "incident_type",
		},
		"unknown severity": {
			body:  `{"type":"noise","description":"Drums","latitude":1,"longitude":1,"severity":"extreme"}`,
			field: "Severity", tag: "severity",
		},
		"latitude out of range": {
			body:  `{"type":"noise","description":"Drums","latitude":91,"longitude":1,"severity":"low"}`,
			field: "Latitude", tag: "latitude",
		},
		"missing longitude": {
			body:  `{"type":"noise","description":"Drums","latitude":1,"severity":"low"}`,
			field: "Longitude", tag: "required",
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			mockService, _, router := newTestHandler(t)
			mockService.EXPECT().CreateIncident(gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, "POST", "/api/v1/incidents", strings.NewReader(tc.body))

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(),
				fmt.Sprintf("Error:Field validation for '%s' failed on the '%s' tag", tc.field, tc.tag))
		})
	}
}

func TestCreateIncident_ServiceError(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Type:        "security",
		Description: "Unlocked lab door",
		Latitude:    floatPtr(40.7575),
		Longitude:   floatPtr(-73.9855),
		Severity:    "high",
	}

	mockService.EXPECT().
		CreateIncident(gomock.Any(), gomock.Any()).
		Return(errors.New("failed to create incident in service")).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	expectedIncident := &models.Incident{
		ID:        3,
		Type:      models.TypeBrokenFacility,
		Latitude:  40.7580,
		Longitude: -73.9870,
		Severity:  models.SeverityLow,
		Status:    models.StatusActive,
	}

	mockService.EXPECT().GetIncident(gomock.Any(), int64(3)).Return(expectedIncident, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/3", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "BROKEN FACILITY", resp.TypeLabel)
}

func TestGetIncident_InvalidID(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	for _, id := range []string{"abc", "0", "-5"} {
		w := makeRequest(router, "GET", "/api/v1/incidents/"+id, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code, id)
		assert.Contains(t, w.Body.String(), "invalid incident ID")
	}
}

func TestGetIncident_NotFound(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	serviceError := fmt.Errorf("service: could not get incident: %w", service.ErrNotFound)

	mockService.EXPECT().GetIncident(gomock.Any(), int64(42)).Return(nil, serviceError).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestGetIncident_ServiceError(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().GetIncident(gomock.Any(), int64(42)).Return(nil, errors.New("database error")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/42", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListIncidents_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	expectedIncidents := []*models.Incident{
		{ID: 6, Type: models.TypeNoise, Status: models.StatusActive},
		{ID: 5, Type: models.TypeNoise, Status: models.StatusActive},
	}
	wantFilter := models.IncidentFilter{Type: models.TypeNoise, Status: models.StatusActive}

	mockService.EXPECT().ListIncidents(gomock.Any(), wantFilter, 2, 10).Return(expectedIncidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents?type=noise&status=active&page=2&pageSize=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, int64(6), resp[0].ID)
}

func TestListIncidents_InvalidFilter(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ListIncidents(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents?severity=extreme", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown severity")
}

func TestListIncidents_ServiceError(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().
		ListIncidents(gomock.Any(), models.IncidentFilter{}, 1, 20).
		Return(nil, errors.New("failed to list incidents")).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestUpdateIncident_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), int64(4), gomock.Any()).
		DoAndReturn(func(_ context.Context, id int64, patch models.IncidentPatch) (*models.Incident, error) {
			require.NotNil(t, patch.Status)
			assert.Equal(t, models.StatusResolved, *patch.Status)
			assert.Nil(t, patch.Severity)
			assert.Nil(t, patch.Description)
			return &models.Incident{ID: id, Type: models.TypeTrafficJam, Status: models.StatusResolved}, nil
		}).Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/4", strings.NewReader(`{"status":"resolved"}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "resolved", resp.Status)
}

func TestUpdateIncident_InvalidStatus(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().UpdateIncident(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/4", strings.NewReader(`{"status":"closed"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "failed on the 'oneof' tag")
}

func TestUpdateIncident_NoFields(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), int64(4), models.IncidentPatch{}).
		Return(nil, fmt.Errorf("service: %w", service.ErrNoFieldsToUpdate)).
		Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/4", strings.NewReader(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no valid fields to update")
}

func TestUpdateIncident_NotFound(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), int64(77), gomock.Any()).
		Return(nil, service.ErrNotFound).
		Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/77", strings.NewReader(`{"severity":"critical"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateIncident_ServiceError(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().
		UpdateIncident(gomock.Any(), int64(4), gomock.Any()).
		Return(nil, errors.New("db down")).
		Times(1)

	w := makeRequest(router, "PATCH", "/api/v1/incidents/4", strings.NewReader(`{"description":"Fixed by staff"}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "failed to update incident")
}

func TestDeleteIncident_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ResolveIncident(gomock.Any(), int64(2)).Return(nil).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/incidents/2", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteIncident_InvalidID(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ResolveIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "DELETE", "/api/v1/incidents/two", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestDeleteIncident_NotFound(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().ResolveIncident(gomock.Any(), int64(99)).Return(service.ErrNotFound).Times(1)

	w := makeRequest(router, "DELETE", "/api/v1/incidents/99", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestCheckLocation_Success_Danger(t *testing.T) {
	mockService, _, router := newTestHandler(t)
	incidentsFound := []*models.Incident{
		{ID: 1, Type: models.TypeTrafficAccident, Severity: models.SeverityHigh, Status: models.StatusActive},
	}

	mockService.EXPECT().CheckLocation(gomock.Any(), "user123", 40.7589, -73.9851).Return(incidentsFound, nil).Times(1)

	body := `{"user_id":"user123","latitude":40.7589,"longitude":-73.9851}`
	w := makeRequest(router, "POST", "/api/v1/location/check", strings.NewReader(body))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LocationCheckResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.True(t, resp.IsDangerous)
	require.Len(t, resp.Incidents, 1)
	assert.Equal(t, int64(1), resp.Incidents[0].ID)
}

func TestCheckLocation_Success_Safe(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().CheckLocation(gomock.Any(), "user123", 0.0, 0.0).Return(nil, nil).Times(1)

	body := `{"user_id":"user123","latitude":0,"longitude":0}`
	w := makeRequest(router, "POST", "/api/v1/location/check", strings.NewReader(body))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp LocationCheckResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.False(t, resp.IsDangerous)
	assert.Empty(t, resp.Incidents)
}

func TestCheckLocation_ValidationError(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().CheckLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/location/check", strings.NewReader(`{"latitude":50,"longitude":50}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'UserID' failed on the 'required' tag")
}

func TestCheckLocation_ServiceError(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().
		CheckLocation(gomock.Any(), "user123", 50.0, 50.0).
		Return(nil, errors.New("failed to check location")).
		Times(1)

	body := `{"user_id":"user123","latitude":50,"longitude":50}`
	w := makeRequest(router, "POST", "/api/v1/location/check", strings.NewReader(body))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetStats_Success(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Return(123, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 123, resp.UserCount)
}

func TestGetStats_ServiceError(t *testing.T) {
	mockService, _, router := newTestHandler(t)

	mockService.EXPECT().GetStats(gomock.Any()).Return(0, errors.New("failed to get stats")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestGetSummary_Success(t *testing.T) {
	_, mockAnalytics, router := newTestHandler(t)
	q := analysis.Query{Filter: models.IncidentFilter{Status: models.StatusActive}}

	// Сводка и частоты берутся из одного вызова сервиса, то есть из одного снимка
	mockAnalytics.EXPECT().Overview(gomock.Any(), q).Return(analysis.Overview{
		Summary: analysis.Summary{Total: 5, Active: 5},
		TypeFrequencies: []analysis.TypeCount{
			{Type: models.TypeNoise, Label: "NOISE", Color: "#795548", Count: 2},
		},
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics/summary?status=active", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.EqualValues(t, 5, resp["total"])
	assert.Len(t, resp["type_frequencies"], 1)
}

func TestGetClusters_DistanceOverride(t *testing.T) {
	_, mockAnalytics, router := newTestHandler(t)

	mockAnalytics.EXPECT().
		Clusters(gomock.Any(), analysis.Query{ClusterDistance: 0.005}).
		Return([]analysis.Cluster{{ID: 0, Count: 3}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics/clusters?distance=0.005", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ClustersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0.005, resp.Threshold)
	require.Len(t, resp.Clusters, 1)
	assert.Equal(t, 3, resp.Clusters[0].Count)
}

func TestGetBuffers_IgnoresInvalidRadius(t *testing.T) {
	_, mockAnalytics, router := newTestHandler(t)

	mockAnalytics.EXPECT().Buffers(gomock.Any(), analysis.Query{}).Return([]analysis.BufferZone{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics/buffers?radius=-10", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp BuffersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, analysis.DefaultParams().BufferRadius, resp.BaseRadius)
	assert.Empty(t, resp.Zones)
}

func TestGetBuffers_IgnoresNonFiniteRadius(t *testing.T) {
	for _, raw := range []string{"Inf", "%2BInf", "-Inf", "NaN", "1e400"} {
		t.Run(raw, func(t *testing.T) {
			_, mockAnalytics, router := newTestHandler(t)

			// Бесконечный радиус не доходит до анализа, берётся значение по умолчанию
			mockAnalytics.EXPECT().
				Buffers(gomock.Any(), analysis.Query{}).
				DoAndReturn(func(_ context.Context, q analysis.Query) ([]analysis.BufferZone, error) {
					incidents := []models.Incident{{ID: 1, Latitude: 55.75, Longitude: 37.61, Severity: models.SeverityHigh}}
					return analysis.Buffers(incidents, analysis.DefaultParams().With(q).BufferRadius), nil
				}).
				Times(1)

			w := makeRequest(router, "GET", "/api/v1/analytics/buffers?radius="+raw, nil)

			assert.Equal(t, http.StatusOK, w.Code)
			require.NotEmpty(t, w.Body.Bytes())
			var resp BuffersResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, analysis.DefaultParams().BufferRadius, resp.BaseRadius)
			assert.NotEmpty(t, resp.Zones)
		})
	}
}

func TestGetBuffers_StatusFilter(t *testing.T) {
	_, mockAnalytics, router := newTestHandler(t)
	q := analysis.Query{Filter: models.IncidentFilter{Status: models.StatusActive}}

	mockAnalytics.EXPECT().Buffers(gomock.Any(), q).Return([]analysis.BufferZone{{IncidentID: 1, RadiusMeters: 100}}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics/buffers?status=active", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp BuffersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Zones, 1)
}

func TestGetDensity_IgnoresInfiniteCellSize(t *testing.T) {
	_, mockAnalytics, router := newTestHandler(t)

	mockAnalytics.EXPECT().Density(gomock.Any(), analysis.Query{}).Return([]analysis.DensityCell{}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics/density?cell_size=Inf", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DensityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, analysis.DefaultParams().GridCellSize, resp.CellSize)
}

func TestGetDensity_Total(t *testing.T) {
	_, mockAnalytics, router := newTestHandler(t)

	mockAnalytics.EXPECT().
		Density(gomock.Any(), analysis.Query{CellSize: 0.01}).
		Return([]analysis.DensityCell{{Count: 2}, {Count: 3}}, nil).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics/density?cell_size=0.01", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp DensityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 0.01, resp.CellSize)
}

func TestGetTrends_ServiceError(t *testing.T) {
	_, mockAnalytics, router := newTestHandler(t)

	mockAnalytics.EXPECT().Trends(gomock.Any(), gomock.Any()).Return(analysis.TrendReport{}, errors.New("db down")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics/trends", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetGeoJSON_Success(t *testing.T) {
	_, mockAnalytics, router := newTestHandler(t)
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{-73.9851, 40.7589}))

	mockAnalytics.EXPECT().GeoJSON(gomock.Any(), "incidents", gomock.Any()).Return(fc, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics/geojson/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/geo+json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"type":"FeatureCollection"`)
}

func TestGetGeoJSON_UnknownLayer(t *testing.T) {
	_, mockAnalytics, router := newTestHandler(t)

	mockAnalytics.EXPECT().
		GeoJSON(gomock.Any(), "rivers", gomock.Any()).
		Return(nil, fmt.Errorf("service: layer %q: %w", "rivers", service.ErrUnknownLayer)).
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics/geojson/rivers", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "unknown layer rivers")
}

func TestGetCharts_RendersHTML(t *testing.T) {
	_, mockAnalytics, router := newTestHandler(t)
	report := analysis.TrendReport{Daily: map[string]map[models.IncidentType]int{}}
	report.Hourly[9] = 2

	mockAnalytics.EXPECT().Overview(gomock.Any(), gomock.Any()).Return(analysis.Overview{
		TypeFrequencies: []analysis.TypeCount{
			{Type: models.TypeNoise, Label: "NOISE", Color: "#795548", Count: 2},
		},
		Trends: report,
	}, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics/charts", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "NOISE")
	assert.Contains(t, w.Body.String(), "09:00")
}

func TestGetCharts_ServiceError(t *testing.T) {
	_, mockAnalytics, router := newTestHandler(t)

	mockAnalytics.EXPECT().Overview(gomock.Any(), gomock.Any()).Return(analysis.Overview{}, errors.New("db down")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/analytics/charts", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

// multipartUpload собирает multipart-запрос с одним полем file
func multipartUpload(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/v1/upload", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadImage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	dir := t.TempDir()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	handler := NewHandler(mocks.NewMockIncidentService(ctrl), mocks.NewMockAnalyticsService(ctrl), logger,
		&config.Config{UploadDir: dir, MaxUploadBytes: 1024})

	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(router.Group("/api/v1"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, multipartUpload(t, "pothole.PNG", []byte("fake png bytes")))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp UploadResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, strings.HasSuffix(resp.Filename, "_pothole.PNG"))
	assert.Equal(t, "/uploads/"+resp.Filename, resp.ImagePath)

	saved, err := os.ReadFile(filepath.Join(dir, resp.Filename))
	require.NoError(t, err)
	assert.Equal(t, "fake png bytes", string(saved))
}

func TestUploadImage_Rejected(t *testing.T) {
	_, _, router := newTestHandler(t)

	cases := []struct {
		name     string
		filename string
		content  []byte
		code     int
	}{
		{"unsupported extension", "notes.txt", []byte("hello"), http.StatusBadRequest},
		{"too large", "big.jpg", bytes.Repeat([]byte("x"), 2048), http.StatusRequestEntityTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, multipartUpload(t, tc.filename, tc.content))

			assert.Equal(t, tc.code, w.Code)
		})
	}
}

func TestUploadImage_NoFile(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "POST", "/api/v1/upload", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no file provided")
}
