package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/drought-monitor/internal/domain/repository"
	"github.com/drought-monitor/internal/pkg/metrics"
	"github.com/drought-monitor/internal/pkg/utils"
	"github.com/drought-monitor/internal/usecase/dto"
)

// MapUseCase строит статические превью карты через Mapbox
type MapUseCase struct {
	regionRepo repository.RegionRepository
	mapboxRepo repository.MapboxRepository
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewMapUseCase - создание нового MapUseCase
func NewMapUseCase(
	regionRepo repository.RegionRepository,
	mapboxRepo repository.MapboxRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *MapUseCase {
	return &MapUseCase{
		regionRepo: regionRepo,
		mapboxRepo: mapboxRepo,
		metrics:    m,
		logger:     logger,
	}
}

// GetRegionPreview возвращает PNG-превью региона.
// Центр и зум выводятся из bbox региона.
func (uc *MapUseCase) GetRegionPreview(ctx context.Context, req dto.PreviewRequest) ([]byte, error) {
	region, err := uc.regionRepo.Region(req.Region)
	if err != nil {
		return nil, err
	}

	centerLat, centerLon := region.BBox.Center()
	zoom := utils.ZoomForSpan(region.BBox.LatSpan(), region.BBox.LonSpan())

	image, err := uc.mapboxRepo.StaticMap(ctx, centerLat, centerLon, zoom, req.Width, req.Height)
	if err != nil {
		uc.metrics.MapboxRequests.WithLabelValues("error").Inc()
		uc.logger.Error("Failed to fetch static map",
			zap.String("region", region.Name),
			zap.Int("zoom", zoom),
			zap.Error(err),
		)
		return nil, err
	}

	uc.metrics.MapboxRequests.WithLabelValues("success").Inc()
	return image, nil
}
