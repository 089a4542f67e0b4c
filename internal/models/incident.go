package models

import (
	"time"
)

// DefaultReporterName подставляется, когда автор сообщения не указан
const DefaultReporterName = "Anonymous"

type Incident struct {
	ID           int64        `json:"id"`
	Type         IncidentType `json:"type"`
	Description  string       `json:"description"`
	Latitude     float64      `json:"latitude"`
	Longitude    float64      `json:"longitude"`
	Severity     Severity     `json:"severity"`
	Status       Status       `json:"status"`
	Timestamp    time.Time    `json:"timestamp"`
	ReporterName string       `json:"reporter_name"`
	ImagePath    string       `json:"image_path,omitempty"`
}

// IncidentFilter описывает выборку инцидентов. Пустые поля не ограничивают выборку,
// Limit == 0 означает отсутствие ограничения.
type IncidentFilter struct {
	Type     IncidentType
	Status   Status
	Severity Severity
	Limit    int
	Offset   int
}

// IncidentPatch - частичное обновление инцидента, nil поля не меняются
type IncidentPatch struct {
	Status      *Status
	Severity    *Severity
	Description *string
}

// Empty сообщает, что в патче нет ни одного поля
func (p IncidentPatch) Empty() bool {
	return p.Status == nil && p.Severity == nil && p.Description == nil
}

// Apply применяет патч к инциденту
func (p IncidentPatch) Apply(incident *Incident) {
	if p.Status != nil {
		incident.Status = *p.Status
	}
	if p.Severity != nil {
		incident.Severity = *p.Severity
	}
	if p.Description != nil {
		incident.Description = *p.Description
	}
}
