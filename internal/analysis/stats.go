package analysis

import (
	"sort"
	"time"

	"github.com/DoctFaust/campus-info-system/internal/models"
)

// Summary - агрегированная статистика по снимку
type Summary struct {
	Total          int                         `json:"total"`
	Active         int                         `json:"active"`
	Resolved       int                         `json:"resolved"`
	HighSeverity   int                         `json:"high_severity"`
	Recent24h      int                         `json:"recent_24h"`
	ByType         map[models.IncidentType]int `json:"by_type"`
	BySeverity     map[models.Severity]int     `json:"by_severity"`
	ByStatus       map[models.Status]int       `json:"by_status"`
	ResolutionRate float64                     `json:"resolution_rate"`
}

// TypeCount - строка частотной таблицы по категориям
type TypeCount struct {
	Type  models.IncidentType `json:"type"`
	Label string              `json:"label"`
	Color string              `json:"color"`
	Count int                 `json:"count"`
}

// HeatPoint - взвешенная точка тепловой карты
type HeatPoint struct {
	Lat    float64             `json:"lat"`
	Lng    float64             `json:"lng"`
	Weight int                 `json:"weight"`
	Type   models.IncidentType `json:"type"`
}

// TrendReport - дневная статистика по категориям и распределение по часам суток
type TrendReport struct {
	Daily  map[string]map[models.IncidentType]int `json:"daily_trends"`
	Hourly [24]int                                `json:"hourly_distribution"`
}

// Overview - сводка, частоты категорий и тренды, посчитанные по одному снимку
type Overview struct {
	Summary         Summary
	TypeFrequencies []TypeCount
	Trends          TrendReport
}

// BuildOverview считает все агрегаты панели за один проход по снимку
func BuildOverview(incidents []models.Incident, now time.Time, trendDays int) Overview {
	return Overview{
		Summary:         Summarize(incidents, now),
		TypeFrequencies: TypeFrequencies(incidents),
		Trends:          Trends(incidents, now, trendDays),
	}
}

// Summarize считает агрегаты. now задаёт границу окна "последние 24 часа".
func Summarize(incidents []models.Incident, now time.Time) Summary {
	s := Summary{
		ByType:     make(map[models.IncidentType]int),
		BySeverity: make(map[models.Severity]int),
		ByStatus:   make(map[models.Status]int),
	}
	dayAgo := now.Add(-24 * time.Hour)

	for _, inc := range incidents {
		s.Total++
		switch inc.Status {
		case models.StatusActive:
			s.Active++
		case models.StatusResolved:
			s.Resolved++
		}
		if inc.Severity.Rank() >= models.SeverityHigh.Rank() {
			s.HighSeverity++
		}
		if inc.Timestamp.After(dayAgo) {
			s.Recent24h++
		}
		s.ByType[inc.Type]++
		s.BySeverity[inc.Severity]++
		s.ByStatus[inc.Status]++
	}
	s.ResolutionRate = ResolutionRate(s.Resolved, s.Total)
	return s
}

// ResolutionRate возвращает resolved/total и 0 для пустой коллекции
func ResolutionRate(resolved, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(resolved) / float64(total)
}

// TypeFrequencies строит частотную таблицу по убыванию количества
func TypeFrequencies(incidents []models.Incident) []TypeCount {
	counts := make(map[models.IncidentType]int)
	for _, inc := range incidents {
		counts[inc.Type]++
	}
	out := make([]TypeCount, 0, len(counts))
	for t, c := range counts {
		out = append(out, TypeCount{Type: t, Label: t.Label(), Color: t.Color(), Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	return out
}

// HeatPoints возвращает активные инциденты с весом по срочности
func HeatPoints(incidents []models.Incident) []HeatPoint {
	points := make([]HeatPoint, 0)
	for _, inc := range Snapshot(incidents) {
		if inc.Status != models.StatusActive {
			continue
		}
		points = append(points, HeatPoint{
			Lat:    inc.Latitude,
			Lng:    inc.Longitude,
			Weight: inc.Severity.HeatWeight(),
			Type:   inc.Type,
		})
	}
	return points
}

// Trends считает количество инцидентов по дням (UTC) за последние days дней и
// распределение по часам суток за всё время
func Trends(incidents []models.Incident, now time.Time, days int) TrendReport {
	report := TrendReport{Daily: make(map[string]map[models.IncidentType]int)}
	since := now.Add(-time.Duration(days) * 24 * time.Hour)

	for _, inc := range incidents {
		ts := inc.Timestamp.UTC()
		report.Hourly[ts.Hour()]++

		if days <= 0 || !ts.After(since) {
			continue
		}
		date := ts.Format("2006-01-02")
		if report.Daily[date] == nil {
			report.Daily[date] = make(map[models.IncidentType]int)
		}
		report.Daily[date][inc.Type]++
	}
	return report
}
