package v1

import (
	"time"

	"github.com/DoctFaust/campus-info-system/internal/analysis"
)

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	Type         string   `json:"type" validate:"required,incident_type" example:"noise"`
	Description  string   `json:"description" validate:"required,min=2,max=2000" example:"Loud construction work near dormitory"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude" example:"40.7585"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude" example:"-73.9875"`
	Severity     string   `json:"severity" validate:"required,severity" example:"medium"`
	ReporterName string   `json:"reporter_name,omitempty" validate:"omitempty,max=255"`
	ImagePath    string   `json:"image_path,omitempty" validate:"omitempty,max=512"`
}

// UpdateIncidentRequest DTO для частичного обновления инцидента
// @Description DTO для частичного обновления инцидента, отсутствующие поля не меняются
type UpdateIncidentRequest struct {
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active resolved"`
	Severity    *string `json:"severity,omitempty" validate:"omitempty,severity"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=2,max=2000"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID           int64     `json:"id"`
	Type         string    `json:"type"`
	TypeLabel    string    `json:"type_label"`
	Color        string    `json:"color"`
	Description  string    `json:"description"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	Severity     string    `json:"severity"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	ReporterName string    `json:"reporter_name"`
	ImagePath    string    `json:"image_path,omitempty"`
}

// LocationCheckRequest DTO для проверки координат
// @Description DTO для проверки координат
type LocationCheckRequest struct {
	UserID    string   `json:"user_id" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// LocationCheckResponse DTO ответа проверки координат
// @Description DTO ответа проверки координат
type LocationCheckResponse struct {
	IsDangerous bool                `json:"is_dangerous"`
	Incidents   []*IncidentResponse `json:"incidents"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount int `json:"user_count"`
}

// SummaryResponse DTO сводной аналитики
// @Description DTO сводной аналитики
type SummaryResponse struct {
	analysis.Summary
	TypeFrequencies []analysis.TypeCount `json:"type_frequencies"`
}

// ClustersResponse DTO результата кластеризации
// @Description DTO результата кластеризации
type ClustersResponse struct {
	Threshold float64            `json:"threshold_degrees"`
	Clusters  []analysis.Cluster `json:"clusters"`
}

// BuffersResponse DTO буферных зон
// @Description DTO буферных зон
type BuffersResponse struct {
	BaseRadius float64               `json:"base_radius_meters"`
	Zones      []analysis.BufferZone `json:"zones"`
}

// DensityResponse DTO сетки плотности
// @Description DTO сетки плотности
type DensityResponse struct {
	CellSize float64                `json:"cell_size_degrees"`
	Total    int                    `json:"total"`
	Cells    []analysis.DensityCell `json:"cells"`
}

// UploadResponse DTO ответа загрузки изображения
// @Description DTO ответа загрузки изображения
type UploadResponse struct {
	Filename  string `json:"filename"`
	ImagePath string `json:"image_path"`
}
