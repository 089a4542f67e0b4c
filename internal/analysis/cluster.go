package analysis

import (
	"math"

	"github.com/DoctFaust/campus-info-system/internal/models"
)

// Cluster - группа инцидентов вокруг затравочной точки
type Cluster struct {
	ID                   int                         `json:"id"`
	Center               LatLng                      `json:"center"`
	Count                int                         `json:"count"`
	Members              []models.Incident           `json:"members"`
	Types                map[models.IncidentType]int `json:"types"`
	SeverityDistribution map[models.Severity]int     `json:"severity_distribution"`
}

// Clusters группирует инциденты за один проход в порядке входа. Каждый ещё не
// распределённый инцидент становится затравкой и поглощает все нераспределённые
// инциденты, евклидово расстояние до которых в градусах строго меньше threshold.
// Связность не транзитивна: сравнение идёт только с затравкой. Одиночки в результат
// не попадают.
func Clusters(incidents []models.Incident, threshold float64) []Cluster {
	points := Snapshot(incidents)
	if threshold <= 0 || len(points) < 2 {
		return []Cluster{}
	}

	assigned := make([]bool, len(points))
	clusters := make([]Cluster, 0)

	for i, seed := range points {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		members := []models.Incident{seed}

		for j := i + 1; j < len(points); j++ {
			if assigned[j] {
				continue
			}
			if degreeDistance(seed, points[j]) < threshold {
				assigned[j] = true
				members = append(members, points[j])
			}
		}

		if len(members) < 2 {
			continue
		}
		clusters = append(clusters, newCluster(len(clusters), members))
	}
	return clusters
}

func degreeDistance(a, b models.Incident) float64 {
	return math.Hypot(a.Latitude-b.Latitude, a.Longitude-b.Longitude)
}

func newCluster(id int, members []models.Incident) Cluster {
	c := Cluster{
		ID:                   id,
		Count:                len(members),
		Members:              members,
		Types:                make(map[models.IncidentType]int),
		SeverityDistribution: make(map[models.Severity]int),
	}
	var sumLat, sumLng float64
	for _, m := range members {
		sumLat += m.Latitude
		sumLng += m.Longitude
		c.Types[m.Type]++
		c.SeverityDistribution[m.Severity]++
	}
	n := float64(len(members))
	c.Center = LatLng{Lat: sumLat / n, Lng: sumLng / n}
	return c
}
