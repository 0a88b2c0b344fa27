package domain

import (
	"math"
	"sort"
)

// Statistics - описательная статистика по валидным ячейкам региона
type Statistics struct {
	Mean       float64 `json:"mean"`
	Median     float64 `json:"median"`
	StdDev     float64 `json:"std_dev"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	ValidCells int     `json:"valid_cells"`
	TotalCells int     `json:"total_cells"`
}

// ComputeStatistics считает статистику, игнорируя NaN.
// Второе значение false означает отсутствие валидных ячеек:
// вызывающий код обязан отдать "no data", а не нулевой артефакт.
func ComputeStatistics(values []float64) (Statistics, bool) {
	valid := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}

	if len(valid) == 0 {
		return Statistics{TotalCells: len(values)}, false
	}

	sort.Float64s(valid)

	sum := 0.0
	for _, v := range valid {
		sum += v
	}
	mean := sum / float64(len(valid))

	variance := 0.0
	for _, v := range valid {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(valid))

	return Statistics{
		Mean:       mean,
		Median:     median(valid),
		StdDev:     math.Sqrt(variance),
		Min:        valid[0],
		Max:        valid[len(valid)-1],
		ValidCells: len(valid),
		TotalCells: len(values),
	}, true
}

// median ожидает отсортированный непустой срез
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
