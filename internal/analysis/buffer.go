package analysis

import "github.com/DoctFaust/campus-info-system/internal/models"

// BufferZone - круговая зона влияния инцидента
type BufferZone struct {
	IncidentID   int64           `json:"incident_id"`
	Center       LatLng          `json:"center"`
	Severity     models.Severity `json:"severity"`
	RadiusMeters float64         `json:"radius_meters"`
}

// MaxSeverityMultiplier - наибольший из множителей SeverityMultiplier
const MaxSeverityMultiplier = 2.5

// SeverityMultiplier возвращает множитель радиуса для уровня срочности.
// Неизвестный уровень получает множитель 1.
func SeverityMultiplier(s models.Severity) float64 {
	switch s {
	case models.SeverityLow:
		return 1.0
	case models.SeverityMedium:
		return 1.5
	case models.SeverityHigh:
		return 2.0
	case models.SeverityCritical:
		return MaxSeverityMultiplier
	default:
		return 1.0
	}
}

// Buffers строит по одной зоне на инцидент в порядке входа, без слияния пересекающихся зон
func Buffers(incidents []models.Incident, baseRadius float64) []BufferZone {
	points := Snapshot(incidents)
	zones := make([]BufferZone, 0, len(points))
	for _, inc := range points {
		zones = append(zones, BufferZone{
			IncidentID:   inc.ID,
			Center:       location(inc),
			Severity:     inc.Severity,
			RadiusMeters: baseRadius * SeverityMultiplier(inc.Severity),
		})
	}
	return zones
}

// ZonesContaining возвращает зоны, в круг которых попадает точка p
func ZonesContaining(p LatLng, zones []BufferZone) []BufferZone {
	hits := make([]BufferZone, 0)
	for _, z := range zones {
		if DistanceMeters(p, z.Center) <= z.RadiusMeters {
			hits = append(hits, z)
		}
	}
	return hits
}
