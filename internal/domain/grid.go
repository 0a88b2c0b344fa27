package domain

import "math"

type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Valid проверяет согласованность границ bbox
func (b BoundingBox) Valid() bool {
	if b.MinLat < -90 || b.MaxLat > 90 || b.MinLon < -180 || b.MaxLon > 180 {
		return false
	}
	return b.MinLat <= b.MaxLat && b.MinLon <= b.MaxLon
}

func (b BoundingBox) Center() (lat, lon float64) {
	return (b.MinLat + b.MaxLat) / 2, (b.MinLon + b.MaxLon) / 2
}

func (b BoundingBox) LatSpan() float64 { return b.MaxLat - b.MinLat }
func (b BoundingBox) LonSpan() float64 { return b.MaxLon - b.MinLon }

// GlobalBBox покрывает весь земной шар
var GlobalBBox = BoundingBox{MinLat: -90, MinLon: -180, MaxLat: 90, MaxLon: 180}

// GridPoint - одна ячейка сетки с валидным значением индекса
type GridPoint struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Value float64 `json:"value"`
}

// GridSlice - двумерный срез датасета для одного месяца.
// Values индексируется как [lat][lon]; отсутствующие ячейки - NaN.
type GridSlice struct {
	Year   int
	Month  int
	Lats   []float64
	Lons   []float64
	Values [][]float64
}

// TotalCells возвращает размер среза включая пустые ячейки
func (s *GridSlice) TotalCells() int {
	return len(s.Lats) * len(s.Lons)
}

// ValidValues возвращает все значения среза без NaN
func (s *GridSlice) ValidValues() []float64 {
	out := make([]float64, 0, s.TotalCells())
	for _, row := range s.Values {
		for _, v := range row {
			if !math.IsNaN(v) {
				out = append(out, v)
			}
		}
	}
	return out
}

// Points разворачивает срез в список точек для карты, отбрасывая NaN
func (s *GridSlice) Points() []GridPoint {
	points := make([]GridPoint, 0, s.TotalCells())
	for i, lat := range s.Lats {
		for j, lon := range s.Lons {
			v := s.Values[i][j]
			if math.IsNaN(v) {
				continue
			}
			points = append(points, GridPoint{Lat: lat, Lon: lon, Value: v})
		}
	}
	return points
}

// Window возвращает валидные значения в квадратном окне size x size ячеек
// вокруг ближайшей к (lat, lon) точки сетки. Окно обрезается по краям среза.
func (s *GridSlice) Window(lat, lon float64, size int) []float64 {
	if len(s.Lats) == 0 || len(s.Lons) == 0 {
		return nil
	}

	latIdx := nearestIndex(s.Lats, lat)
	lonIdx := nearestIndex(s.Lons, lon)

	half := size / 2
	latStart := max(0, latIdx-half)
	latEnd := min(len(s.Lats), latIdx+half+1)
	lonStart := max(0, lonIdx-half)
	lonEnd := min(len(s.Lons), lonIdx+half+1)

	var values []float64
	for i := latStart; i < latEnd; i++ {
		for j := lonStart; j < lonEnd; j++ {
			if v := s.Values[i][j]; !math.IsNaN(v) {
				values = append(values, v)
			}
		}
	}
	return values
}

func nearestIndex(axis []float64, target float64) int {
	best := 0
	bestDist := math.Abs(axis[0] - target)
	for i := 1; i < len(axis); i++ {
		if d := math.Abs(axis[i] - target); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// TimeRange - покрытие датасета в месяцах, включительно с обеих сторон
type TimeRange struct {
	StartYear  int `json:"start_year"`
	StartMonth int `json:"start_month"`
	EndYear    int `json:"end_year"`
	EndMonth   int `json:"end_month"`
}

// Contains проверяет, попадает ли (year, month) в покрытие датасета
func (r TimeRange) Contains(year, month int) bool {
	if month < 1 || month > 12 {
		return false
	}
	ym := year*12 + month - 1
	return ym >= r.StartYear*12+r.StartMonth-1 && ym <= r.EndYear*12+r.EndMonth-1
}

// Months возвращает число месячных шагов в покрытии
func (r TimeRange) Months() int {
	return (r.EndYear*12 + r.EndMonth) - (r.StartYear*12 + r.StartMonth) + 1
}
