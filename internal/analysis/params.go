package analysis

import (
	"math"

	"github.com/DoctFaust/campus-info-system/internal/models"
)

// Params собирает все настраиваемые константы анализа. Значения по умолчанию -
// подобранные вручную величины, а не выведенные из данных.
type Params struct {
	// ClusterDistance - порог кластеризации в градусах (сырые единицы координат)
	ClusterDistance float64
	// BufferRadius - базовый радиус буферной зоны в метрах
	BufferRadius float64
	// GridCellSize - размер ячейки сетки плотности в градусах
	GridCellSize float64
	// DensityNormalization - число инцидентов, при котором интенсивность ячейки достигает 1
	DensityNormalization float64

	EllipseMinPoints  int
	EllipseSegments   int
	CovarianceEpsilon float64

	// TrendDays - глубина дневной статистики
	TrendDays int
}

// DefaultParams возвращает эталонные значения
func DefaultParams() Params {
	return Params{
		ClusterDistance:      0.001,
		BufferRadius:         100,
		GridCellSize:         0.001,
		DensityNormalization: 3,
		EllipseMinPoints:     3,
		EllipseSegments:      64,
		CovarianceEpsilon:    1e-9,
		TrendDays:            30,
	}
}

// EllipseOptions выделяет из Params параметры построения эллипса
func (p Params) EllipseOptions() EllipseOptions {
	return EllipseOptions{
		MinPoints: p.EllipseMinPoints,
		Segments:  p.EllipseSegments,
		Epsilon:   p.CovarianceEpsilon,
	}
}

// Query - фильтр снимка и переопределения параметров из запроса.
// Неположительные и бесконечные значения означают "оставить как есть".
type Query struct {
	Filter          models.IncidentFilter
	ClusterDistance float64
	BufferRadius    float64
	CellSize        float64
}

func usable(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// With применяет переопределения запроса
func (p Params) With(q Query) Params {
	if usable(q.ClusterDistance) {
		p.ClusterDistance = q.ClusterDistance
	}
	if usable(q.BufferRadius) {
		p.BufferRadius = q.BufferRadius
	}
	if usable(q.CellSize) {
		p.GridCellSize = q.CellSize
	}
	return p
}
