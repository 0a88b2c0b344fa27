package repository

import (
	"context"
)

// MapboxRepository - клиент внешнего картографического сервиса
type MapboxRepository interface {
	// ValidateToken проверяет access token. Вызывается при старте:
	// невалидный токен фатален.
	ValidateToken(ctx context.Context) error

	// StaticMap возвращает PNG-превью карты через Static Images API
	StaticMap(ctx context.Context, centerLat, centerLon float64, zoom, width, height int) ([]byte, error)
}
