package v1

import (
	"github.com/DoctFaust/campus-info-system/internal/models"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) *models.Incident {
	incident := &models.Incident{
		Type:         models.IncidentType(dto.Type),
		Description:  dto.Description,
		Severity:     models.Severity(dto.Severity),
		ReporterName: dto.ReporterName,
		ImagePath:    dto.ImagePath,
	}
	if dto.Latitude != nil {
		incident.Latitude = *dto.Latitude
	}
	if dto.Longitude != nil {
		incident.Longitude = *dto.Longitude
	}
	return incident
}

// DTOToIncidentPatch преобразует DTO обновления в патч
func DTOToIncidentPatch(dto UpdateIncidentRequest) models.IncidentPatch {
	var patch models.IncidentPatch
	if dto.Status != nil {
		s := models.Status(*dto.Status)
		patch.Status = &s
	}
	if dto.Severity != nil {
		s := models.Severity(*dto.Severity)
		patch.Severity = &s
	}
	patch.Description = dto.Description
	return patch
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:           model.ID,
		Type:         string(model.Type),
		TypeLabel:    model.Type.Label(),
		Color:        model.Type.Color(),
		Description:  model.Description,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		Severity:     string(model.Severity),
		Status:       string(model.Status),
		Timestamp:    model.Timestamp,
		ReporterName: model.ReporterName,
		ImagePath:    model.ImagePath,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}
