package analysis

import (
	"math/rand"
	"time"

	"github.com/DoctFaust/campus-info-system/internal/models"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newIncident(id int64, typ models.IncidentType, sev models.Severity, lat, lng float64) models.Incident {
	return models.Incident{
		ID:           id,
		Type:         typ,
		Description:  "test incident",
		Latitude:     lat,
		Longitude:    lng,
		Severity:     sev,
		Status:       models.StatusActive,
		Timestamp:    testNow.Add(-time.Duration(id) * time.Hour),
		ReporterName: "tester",
	}
}

func at(id int64, lat, lng float64) models.Incident {
	return newIncident(id, models.TypeOther, models.SeverityLow, lat, lng)
}

// sampleCampus - инциденты из демонстрационного набора
func sampleCampus() []models.Incident {
	return []models.Incident{
		newIncident(1, models.TypeTrafficAccident, models.SeverityMedium, 40.7589, -73.9851),
		newIncident(2, models.TypeBrokenFacility, models.SeverityLow, 40.7599, -73.9841),
		newIncident(3, models.TypeCampusActivity, models.SeverityLow, 40.7579, -73.9861),
		newIncident(4, models.TypeRoadBlock, models.SeverityHigh, 40.7605, -73.9835),
		newIncident(5, models.TypeNoise, models.SeverityMedium, 40.7585, -73.9875),
		newIncident(6, models.TypeMaintenance, models.SeverityLow, 40.7595, -73.9845),
		newIncident(7, models.TypeSecurity, models.SeverityHigh, 40.7575, -73.9855),
		newIncident(8, models.TypeTrafficJam, models.SeverityMedium, 40.7580, -73.9870),
	}
}

func shuffled(in []models.Incident, seed int64) []models.Incident {
	out := append([]models.Incident(nil), in...)
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
