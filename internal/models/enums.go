package models

import "strings"

// IncidentType - категория инцидента
type IncidentType string

const (
	TypeTrafficAccident IncidentType = "traffic_accident"
	TypeTrafficJam      IncidentType = "traffic_jam"
	TypeBrokenFacility  IncidentType = "broken_facility"
	TypeCampusActivity  IncidentType = "campus_activity"
	TypeRoadBlock       IncidentType = "road_block"
	TypeNoise           IncidentType = "noise"
	TypeSecurity        IncidentType = "security"
	TypeMaintenance     IncidentType = "maintenance"
	TypeOther           IncidentType = "other"
)

// IncidentTypes перечисляет все известные категории
var IncidentTypes = []IncidentType{
	TypeTrafficAccident,
	TypeTrafficJam,
	TypeBrokenFacility,
	TypeCampusActivity,
	TypeRoadBlock,
	TypeNoise,
	TypeSecurity,
	TypeMaintenance,
	TypeOther,
}

// Valid сообщает, входит ли категория в перечисление
func (t IncidentType) Valid() bool {
	switch t {
	case TypeTrafficAccident, TypeTrafficJam, TypeBrokenFacility, TypeCampusActivity,
		TypeRoadBlock, TypeNoise, TypeSecurity, TypeMaintenance, TypeOther:
		return true
	default:
		return false
	}
}

// Label возвращает подпись категории для графиков, например "TRAFFIC ACCIDENT"
func (t IncidentType) Label() string {
	if t == "" {
		return strings.ToUpper(string(TypeOther))
	}
	return strings.ToUpper(strings.ReplaceAll(string(t), "_", " "))
}

// Color возвращает цвет маркера категории. Неизвестные категории получают серый цвет.
func (t IncidentType) Color() string {
	switch t {
	case TypeTrafficAccident:
		return "#ff4444"
	case TypeTrafficJam:
		return "#ff8800"
	case TypeBrokenFacility:
		return "#9C27B0"
	case TypeNoise:
		return "#795548"
	case TypeRoadBlock:
		return "#607D8B"
	case TypeCampusActivity:
		return "#4CAF50"
	case TypeSecurity:
		return "#f44336"
	case TypeMaintenance:
		return "#2196F3"
	default:
		return "#9E9E9E"
	}
}

// Severity - упорядоченный уровень срочности
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Severities перечисляет уровни по возрастанию
var Severities = []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

// Rank возвращает порядковый номер уровня: low=1 ... critical=4, неизвестный уровень = 0
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

func (s Severity) Valid() bool {
	return s.Rank() > 0
}

// HeatWeight - вес точки на тепловой карте
func (s Severity) HeatWeight() int {
	if r := s.Rank(); r > 0 {
		return r
	}
	return 1
}

// Status - состояние инцидента
type Status string

const (
	StatusActive   Status = "active"
	StatusResolved Status = "resolved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusResolved:
		return true
	default:
		return false
	}
}
