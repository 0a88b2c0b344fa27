package domain

import "math"

// Category - категория засушливости по значению SPEI
type Category int

const (
	CategoryExtremeDrought Category = iota
	CategorySevereDrought
	CategoryModerateDrought
	CategoryMildDrought
	CategoryNormal
	CategoryWet
	CategoryVeryWet

	NumCategories = 7
)

var categoryNames = [NumCategories]string{
	"Extreme Drought",
	"Severe Drought",
	"Moderate Drought",
	"Mild Drought",
	"Normal",
	"Wet",
	"Very Wet",
}

// Цветовая шкала засушливости для карты
var categoryColors = [NumCategories]string{
	"#8B0000",
	"#FF4500",
	"#FFA500",
	"#FFD700",
	"#90EE90",
	"#00FF00",
	"#0000FF",
}

func (c Category) String() string {
	if c < 0 || c >= NumCategories {
		return "Unknown"
	}
	return categoryNames[c]
}

func (c Category) Color() string {
	if c < 0 || c >= NumCategories {
		return categoryColors[CategoryNormal]
	}
	return categoryColors[c]
}

// Categorize относит значение SPEI к категории засушливости.
// NaN считается Normal: такие ячейки не должны искажать картину как засуха.
func Categorize(spei float64) Category {
	switch {
	case math.IsNaN(spei):
		return CategoryNormal
	case spei < -2:
		return CategoryExtremeDrought
	case spei < -1.5:
		return CategorySevereDrought
	case spei < -1:
		return CategoryModerateDrought
	case spei < -0.5:
		return CategoryMildDrought
	case spei <= 0.5:
		return CategoryNormal
	case spei <= 1.5:
		return CategoryWet
	default:
		return CategoryVeryWet
	}
}

// CategoryCounts считает валидные значения по категориям, NaN пропускаются
func CategoryCounts(values []float64) [NumCategories]int {
	var counts [NumCategories]int
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		counts[Categorize(v)]++
	}
	return counts
}

// DominantCategory возвращает категорию с наибольшим числом ячеек.
// При равенстве побеждает более засушливая (меньший индекс).
func DominantCategory(values []float64) Category {
	counts := CategoryCounts(values)
	best := CategoryExtremeDrought
	for c := Category(1); c < NumCategories; c++ {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best
}

// MeanCategory категоризует регион по среднему SPEI его валидных ячеек
func MeanCategory(values []float64) Category {
	sum := 0.0
	n := 0
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return CategoryNormal
	}
	return Categorize(sum / float64(n))
}
