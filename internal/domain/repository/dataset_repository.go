package repository

import (
	"context"

	"github.com/drought-monitor/internal/domain"
)

// DatasetRepository - доступ к гридированному SPEI-датасету.
// Датасет открывается один раз и далее только читается.
type DatasetRepository interface {
	// TimeRange возвращает покрытие датасета в месяцах
	TimeRange() domain.TimeRange

	// SliceAt читает двумерный срез за (year, month), ограниченный bbox.
	// Дата вне покрытия отклоняется до обращения к файлу.
	SliceAt(ctx context.Context, year, month int, bbox domain.BoundingBox) (*domain.GridSlice, error)

	// Variable возвращает имя читаемой переменной датасета
	Variable() string

	Close() error
}
