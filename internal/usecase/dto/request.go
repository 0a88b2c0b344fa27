package dto

// SliceRequest - параметры выборки среза сетки.
// Указывается либо именованный регион, либо явный bbox.
type SliceRequest struct {
	Year   int    `json:"year" validate:"required"`
	Month  int    `json:"month" validate:"required,min=1,max=12"`
	Region string `json:"region"`

	// Пользовательский bbox, используется при пустом Region
	MinLat *float64 `json:"min_lat" validate:"omitempty,min=-90,max=90"`
	MaxLat *float64 `json:"max_lat" validate:"omitempty,min=-90,max=90"`
	MinLon *float64 `json:"min_lon" validate:"omitempty,min=-180,max=180"`
	MaxLon *float64 `json:"max_lon" validate:"omitempty,min=-180,max=180"`
}

// HasCustomBBox сообщает, задан ли полный пользовательский bbox
func (r *SliceRequest) HasCustomBBox() bool {
	return r.MinLat != nil && r.MaxLat != nil && r.MinLon != nil && r.MaxLon != nil
}

// StatsRequest - параметры региональной статистики
type StatsRequest struct {
	Region string `json:"region" validate:"required"`
	Year   int    `json:"year" validate:"required"`
	Month  int    `json:"month" validate:"required,min=1,max=12"`
}

// BreakdownRequest - параметры распределения по категориям для континента
type BreakdownRequest struct {
	Continent string `json:"continent" validate:"required"`
	Year      int    `json:"year" validate:"required"`
	Month     int    `json:"month" validate:"required,min=1,max=12"`
}

// PreviewRequest - параметры статического превью карты
type PreviewRequest struct {
	Region string `json:"region" validate:"required"`
	Width  int    `json:"width" validate:"min=1,max=1280"`
	Height int    `json:"height" validate:"min=1,max=1280"`
}
