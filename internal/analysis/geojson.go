package analysis

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/DoctFaust/campus-info-system/internal/models"
)

const circleSegments = 64

// ClustersGeoJSON - центроиды кластеров точками
func ClustersGeoJSON(clusters []Cluster) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range clusters {
		f := geojson.NewFeature(toPoint(c.Center))
		f.Properties["layer"] = "cluster"
		f.Properties["id"] = c.ID
		f.Properties["count"] = c.Count
		f.Properties["types"] = c.Types
		f.Properties["severity_distribution"] = c.SeverityDistribution
		fc.Append(f)
	}
	return fc
}

// BuffersGeoJSON - буферные зоны многоугольниками, аппроксимирующими окружность
func BuffersGeoJSON(zones []BufferZone) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, z := range zones {
		ring := make([]LatLng, circleSegments)
		for k := range ring {
			theta := 2 * math.Pi * float64(k) / circleSegments
			ring[k] = FromMeters(z.RadiusMeters*math.Cos(theta), z.RadiusMeters*math.Sin(theta), z.Center)
		}
		f := geojson.NewFeature(toPolygon(ring))
		f.Properties["layer"] = "buffer"
		f.Properties["incident_id"] = z.IncidentID
		f.Properties["severity"] = z.Severity
		f.Properties["radius_meters"] = z.RadiusMeters
		fc.Append(f)
	}
	return fc
}

// DensityGeoJSON - ячейки сетки квадратами
func DensityGeoJSON(grid Grid) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, c := range grid.Cells() {
		o := c.Origin
		square := []LatLng{
			o,
			{Lat: o.Lat, Lng: o.Lng + c.Size},
			{Lat: o.Lat + c.Size, Lng: o.Lng + c.Size},
			{Lat: o.Lat + c.Size, Lng: o.Lng},
		}
		f := geojson.NewFeature(toPolygon(square))
		f.Properties["layer"] = "density"
		f.Properties["row"] = c.Key.Row
		f.Properties["col"] = c.Key.Col
		f.Properties["count"] = c.Count
		f.Properties["intensity"] = c.Intensity
		fc.Append(f)
	}
	return fc
}

// EllipsesGeoJSON - эллипсы многоугольниками; вырожденные эллипсы пропускаются
func EllipsesGeoJSON(ellipses []Ellipse) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, e := range ellipses {
		if e.Degenerate() || len(e.Polygon) < 3 {
			continue
		}
		f := geojson.NewFeature(toPolygon(e.Polygon))
		f.Properties["layer"] = "ellipse"
		f.Properties["type"] = e.Type
		f.Properties["color"] = e.Type.Color()
		f.Properties["semi_major_meters"] = e.SemiMajorMeters
		f.Properties["semi_minor_meters"] = e.SemiMinorMeters
		f.Properties["rotation_deg"] = e.RotationDeg
		f.Properties["point_count"] = e.PointCount
		fc.Append(f)
	}
	return fc
}

// IncidentsGeoJSON - сами инциденты точками с цветом категории
func IncidentsGeoJSON(incidents []models.Incident) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, inc := range Snapshot(incidents) {
		f := geojson.NewFeature(toPoint(location(inc)))
		f.Properties["layer"] = "incident"
		f.Properties["id"] = inc.ID
		f.Properties["type"] = inc.Type
		f.Properties["severity"] = inc.Severity
		f.Properties["status"] = inc.Status
		f.Properties["color"] = inc.Type.Color()
		fc.Append(f)
	}
	return fc
}

func toPoint(p LatLng) orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// toPolygon строит замкнутое кольцо из вершин
func toPolygon(vertices []LatLng) orb.Polygon {
	ring := make(orb.Ring, 0, len(vertices)+1)
	for _, v := range vertices {
		ring = append(ring, toPoint(v))
	}
	ring = append(ring, toPoint(vertices[0]))
	return orb.Polygon{ring}
}
