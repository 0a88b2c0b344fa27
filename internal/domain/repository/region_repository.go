package repository

import (
	"github.com/drought-monitor/internal/domain"
)

// RegionRepository - статические справочники регионов.
// Данные загружаются при старте и неизменяемы во время работы.
type RegionRepository interface {
	// Regions возвращает все именованные регионы (Global + континенты + пресеты)
	Regions() []domain.Region

	// Region возвращает регион по имени
	Region(name string) (*domain.Region, error)

	// Continent возвращает континент со списком стран по имени
	Continent(name string) (*domain.Continent, error)

	// Continents возвращает все континенты в стабильном порядке
	Continents() []*domain.Continent

	// Centroids возвращает центроиды стран континента
	Centroids(continent string) (map[string]domain.Centroid, error)
}
