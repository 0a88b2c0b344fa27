package dto

import (
	"time"

	"github.com/drought-monitor/internal/domain"
)

// SlicePoint - ячейка сетки, готовая к отрисовке на карте
type SlicePoint struct {
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Value    float64 `json:"value"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
}

// SliceResponse - срез датасета за выбранный месяц
type SliceResponse struct {
	Region string       `json:"region"`
	Year   int          `json:"year"`
	Month  int          `json:"month"`
	Points []SlicePoint `json:"points"`
	Total  int          `json:"total"`
}

// StatsResponse - описательная статистика региона.
// При NoData=true числовые поля отсутствуют, а не обнулены.
type StatsResponse struct {
	Region      string             `json:"region"`
	Year        int                `json:"year"`
	Month       int                `json:"month"`
	NoData      bool               `json:"no_data"`
	Statistics  *domain.Statistics `json:"statistics,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
}

// CategoryShare - доля ячеек региона в одной категории
type CategoryShare struct {
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}

// DivisionGroup - страны или штаты, отнесённые к одной категории
type DivisionGroup struct {
	Category  string   `json:"category"`
	Color     string   `json:"color"`
	Divisions []string `json:"divisions"`
}

// BreakdownResponse - распределение засушливости по континенту
type BreakdownResponse struct {
	Continent     string          `json:"continent"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	DivisionLabel string          `json:"division_label"`
	NoData        bool            `json:"no_data"`
	Shares        []CategoryShare `json:"shares,omitempty"`
	Groups        []DivisionGroup `json:"groups,omitempty"`
}

// RegionInfo - элемент каталога регионов
type RegionInfo struct {
	Name string             `json:"name"`
	Kind string             `json:"kind"`
	BBox domain.BoundingBox `json:"bbox"`
}

// RegionsResponse - каталог доступных регионов
type RegionsResponse struct {
	Regions []RegionInfo `json:"regions"`
	Total   int          `json:"total"`
}

// TimeRangeResponse - покрытие датасета
type TimeRangeResponse struct {
	Variable  string           `json:"variable"`
	TimeRange domain.TimeRange `json:"time_range"`
	Months    int              `json:"months"`
}

// MapboxConfigResponse - конфигурация клиентской карты
type MapboxConfigResponse struct {
	Token string `json:"token"`
	Style string `json:"style"`
}
