// Package analysis содержит чистые пространственные вычисления над снимком инцидентов:
// кластеризацию, буферные зоны, сетку плотности, эллипсы стандартного отклонения и
// агрегированную статистику. Функции пакета не выполняют ввод-вывод, не логируют и не
// изменяют входные данные.
//
// Перевод градусов в метры выполняется в локальной касательной плоскости
// (равнопромежуточная проекция вокруг опорной широты). Приближение корректно для
// областей размером в несколько километров (масштаб кампуса); геодезическая поправка
// не применяется.
package analysis

import (
	"math"

	"github.com/golang/geo/s2"
)

const (
	// LatDegreesToMeters - метров в одном градусе широты
	LatDegreesToMeters = 111320.0

	earthRadiusMeters = 6371008.8
)

// LatLng - точка в десятичных градусах WGS84
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// LngDegreesToMeters возвращает число метров в одном градусе долготы на широте refLat
func LngDegreesToMeters(refLat float64) float64 {
	return math.Cos(refLat*math.Pi/180) * LatDegreesToMeters
}

// ToMeters переводит смещение точки p относительно ref в метры (x - на восток, y - на север)
func ToMeters(p, ref LatLng) (x, y float64) {
	x = (p.Lng - ref.Lng) * LngDegreesToMeters(ref.Lat)
	y = (p.Lat - ref.Lat) * LatDegreesToMeters
	return x, y
}

// FromMeters - обратное к ToMeters преобразование
func FromMeters(x, y float64, ref LatLng) LatLng {
	return LatLng{
		Lat: ref.Lat + y/LatDegreesToMeters,
		Lng: ref.Lng + x/LngDegreesToMeters(ref.Lat),
	}
}

// DistanceMeters возвращает расстояние по большому кругу между двумя точками
func DistanceMeters(a, b LatLng) float64 {
	angle := s2.LatLngFromDegrees(a.Lat, a.Lng).Distance(s2.LatLngFromDegrees(b.Lat, b.Lng))
	return angle.Radians() * earthRadiusMeters
}

func validCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
