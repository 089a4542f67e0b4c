package analysis

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/DoctFaust/campus-info-system/internal/models"
)

// EllipseOptions - параметры построения эллипса стандартного отклонения
type EllipseOptions struct {
	MinPoints int
	Segments  int
	// Epsilon - ковариация по модулю меньше Epsilon считается нулевой
	Epsilon float64
}

// Ellipse - эллипс одного стандартного отклонения для категории инцидентов
type Ellipse struct {
	Type            models.IncidentType `json:"type"`
	Center          LatLng              `json:"center"`
	SemiMajorMeters float64             `json:"semi_major_meters"`
	SemiMinorMeters float64             `json:"semi_minor_meters"`
	RotationDeg     float64             `json:"rotation_deg"`
	PointCount      int                 `json:"point_count"`
	Polygon         []LatLng            `json:"polygon"`
}

// Degenerate сообщает, что эллипс вырожден (все точки совпадают) и рисовать его не нужно
func (e Ellipse) Degenerate() bool {
	return e.SemiMajorMeters == 0
}

// FitEllipse строит эллипс по точкам одной категории. Если точек меньше MinPoints,
// возвращает false.
func FitEllipse(incidents []models.Incident, opts EllipseOptions) (Ellipse, bool) {
	opts = opts.withDefaults()
	points := Snapshot(incidents)
	n := len(points)
	if n < opts.MinPoints || n < 2 {
		return Ellipse{}, false
	}

	lats := make([]float64, n)
	lngs := make([]float64, n)
	for i, p := range points {
		lats[i] = p.Latitude
		lngs[i] = p.Longitude
	}
	center := LatLng{Lat: stat.Mean(lats, nil), Lng: stat.Mean(lngs, nil)}

	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		xs[i], ys[i] = ToMeters(location(p), center)
	}

	df := float64(n - 1)
	varX := floats.Dot(xs, xs) / df
	varY := floats.Dot(ys, ys) / df
	covXY := floats.Dot(xs, ys) / df

	l1, l2 := symmetricEigenvalues(varX, varY, covXY)
	semiMajor := math.Sqrt(math.Max(math.Max(l1, l2), 0))
	semiMinor := math.Sqrt(math.Max(math.Min(l1, l2), 0))

	rotation := rotationDegrees(varX, varY, covXY, opts.Epsilon)

	e := Ellipse{
		Type:            points[0].Type,
		Center:          center,
		SemiMajorMeters: semiMajor,
		SemiMinorMeters: semiMinor,
		RotationDeg:     rotation,
		PointCount:      n,
	}
	e.Polygon = ellipsePolygon(center, semiMajor, semiMinor, rotation, opts.Segments)
	return e, true
}

// FitEllipses группирует инциденты по категории и строит эллипс для каждой группы,
// в которой достаточно точек. Категории обходятся в лексикографическом порядке.
func FitEllipses(incidents []models.Incident, opts EllipseOptions) []Ellipse {
	groups := make(map[models.IncidentType][]models.Incident)
	for _, inc := range Snapshot(incidents) {
		groups[inc.Type] = append(groups[inc.Type], inc)
	}

	types := make([]models.IncidentType, 0, len(groups))
	for t := range groups {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	ellipses := make([]Ellipse, 0, len(types))
	for _, t := range types {
		if e, ok := FitEllipse(groups[t], opts); ok {
			e.Type = t
			ellipses = append(ellipses, e)
		}
	}
	return ellipses
}

// symmetricEigenvalues возвращает собственные числа матрицы [[a, c], [c, b]]
func symmetricEigenvalues(a, b, c float64) (float64, float64) {
	trace := a + b
	det := a*b - c*c
	// для симметричной матрицы дискриминант неотрицателен, отрицательное значение - ошибка округления
	disc := math.Sqrt(math.Max(trace*trace-4*det, 0))
	return (trace + disc) / 2, (trace - disc) / 2
}

func rotationDegrees(varX, varY, covXY, eps float64) float64 {
	if math.Abs(covXY) < eps {
		if varX >= varY {
			return 0
		}
		return 90
	}
	return math.Atan2(2*covXY, varX-varY) / 2 * 180 / math.Pi
}

func ellipsePolygon(center LatLng, a, b, rotationDeg float64, segments int) []LatLng {
	rot := rotationDeg * math.Pi / 180
	sinR, cosR := math.Sincos(rot)

	polygon := make([]LatLng, segments)
	for k := 0; k < segments; k++ {
		theta := 2 * math.Pi * float64(k) / float64(segments)
		ex := a * math.Cos(theta)
		ey := b * math.Sin(theta)
		x := ex*cosR - ey*sinR
		y := ex*sinR + ey*cosR
		polygon[k] = FromMeters(x, y, center)
	}
	return polygon
}

func (o EllipseOptions) withDefaults() EllipseOptions {
	def := DefaultParams()
	if o.MinPoints <= 0 {
		o.MinPoints = def.EllipseMinPoints
	}
	if o.Segments <= 0 {
		o.Segments = def.EllipseSegments
	}
	if o.Epsilon <= 0 {
		o.Epsilon = def.CovarianceEpsilon
	}
	return o
}
