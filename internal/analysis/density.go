package analysis

import (
	"math"
	"sort"

	"github.com/DoctFaust/campus-info-system/internal/models"
)

// CellKey - индекс ячейки сетки: floor(lat/cellSize), floor(lng/cellSize)
type CellKey struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// DensityCell - ячейка сетки плотности. Origin - юго-западный угол ячейки.
type DensityCell struct {
	Key       CellKey `json:"key"`
	Origin    LatLng  `json:"origin"`
	Size      float64 `json:"size"`
	Count     int     `json:"count"`
	Intensity float64 `json:"intensity"`
}

// maxCellIndex - предел индекса ячейки, в котором float64 ещё точно представляет целое
// и преобразование в int не переполняется
const maxCellIndex = 1 << 53

// cellIndex возвращает floor(v/cellSize) или false, если индекс вне допустимого диапазона
func cellIndex(v, cellSize float64) (int, bool) {
	idx := math.Floor(v / cellSize)
	if math.IsNaN(idx) || math.Abs(idx) > maxCellIndex {
		return 0, false
	}
	return int(idx), true
}

// Grid отображает ключ ячейки на её содержимое
type Grid map[CellKey]DensityCell

// Density раскладывает инциденты по ячейкам размера cellSize градусов.
// Интенсивность ячейки = min(count/normalization, 1).
// Если размер ячейки так мал, что индекс не помещается в int, сетка пуста.
func Density(incidents []models.Incident, cellSize, normalization float64) Grid {
	grid := make(Grid)
	if !(cellSize > 0) || math.IsInf(cellSize, 0) || normalization <= 0 {
		return grid
	}

	for _, inc := range Snapshot(incidents) {
		row, okRow := cellIndex(inc.Latitude, cellSize)
		col, okCol := cellIndex(inc.Longitude, cellSize)
		if !okRow || !okCol {
			return make(Grid)
		}
		key := CellKey{Row: row, Col: col}
		cell, ok := grid[key]
		if !ok {
			cell = DensityCell{
				Key:    key,
				Origin: LatLng{Lat: float64(key.Row) * cellSize, Lng: float64(key.Col) * cellSize},
				Size:   cellSize,
			}
		}
		cell.Count++
		grid[key] = cell
	}

	for key, cell := range grid {
		cell.Intensity = math.Min(float64(cell.Count)/normalization, 1.0)
		grid[key] = cell
	}
	return grid
}

// Cells возвращает ячейки, упорядоченные по (Row, Col)
func (g Grid) Cells() []DensityCell {
	cells := make([]DensityCell, 0, len(g))
	for _, c := range g {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Key.Row != cells[j].Key.Row {
			return cells[i].Key.Row < cells[j].Key.Row
		}
		return cells[i].Key.Col < cells[j].Key.Col
	})
	return cells
}

// Total - сумма счётчиков по всем ячейкам
func (g Grid) Total() int {
	total := 0
	for _, c := range g {
		total += c.Count
	}
	return total
}
