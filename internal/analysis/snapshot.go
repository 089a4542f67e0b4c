package analysis

import "github.com/DoctFaust/campus-info-system/internal/models"

// Snapshot возвращает независимую копию входной коллекции без записей с
// некорректными координатами. Пустое имя автора заменяется на "Anonymous".
func Snapshot(incidents []models.Incident) []models.Incident {
	out := make([]models.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if !validCoordinate(inc.Latitude, inc.Longitude) {
			continue
		}
		if inc.ReporterName == "" {
			inc.ReporterName = models.DefaultReporterName
		}
		out = append(out, inc)
	}
	return out
}

func location(inc models.Incident) LatLng {
	return LatLng{Lat: inc.Latitude, Lng: inc.Longitude}
}
