package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/drought-monitor/internal/domain"
	"github.com/drought-monitor/internal/domain/repository"
	"github.com/drought-monitor/internal/pkg/errors"
	"github.com/drought-monitor/internal/pkg/metrics"
	"github.com/drought-monitor/internal/repository/cache"
	"github.com/drought-monitor/internal/usecase/dto"
)

// SliceUseCase отдаёт очищенные срезы сетки для отрисовки на карте
type SliceUseCase struct {
	datasetRepo repository.DatasetRepository
	regionRepo  repository.RegionRepository
	cacheRepo   repository.CacheRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewSliceUseCase - создание нового SliceUseCase
func NewSliceUseCase(
	datasetRepo repository.DatasetRepository,
	regionRepo repository.RegionRepository,
	cacheRepo repository.CacheRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SliceUseCase {
	return &SliceUseCase{
		datasetRepo: datasetRepo,
		regionRepo:  regionRepo,
		cacheRepo:   cacheRepo,
		metrics:     m,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// GetSlice возвращает точки среза за (year, month) для региона или bbox.
// NaN-ячейки отбрасываются, каждая точка несёт категорию и цвет.
func (uc *SliceUseCase) GetSlice(ctx context.Context, req dto.SliceRequest) (*dto.SliceResponse, error) {
	region, err := uc.resolveRegion(req)
	if err != nil {
		return nil, err
	}

	// Пользовательские bbox не кешируются: ключевое пространство неограничено
	cacheable := region.Kind != domain.RegionKindCustom

	if cacheable {
		if cached := uc.fromCache(ctx, region.Name, req.Year, req.Month); cached != nil {
			return cached, nil
		}
	}

	slice, err := uc.datasetRepo.SliceAt(ctx, req.Year, req.Month, region.BBox)
	if err != nil {
		uc.metrics.SliceLoadErrors.Inc()
		uc.logger.Error("Failed to read slice",
			zap.String("region", region.Name),
			zap.Int("year", req.Year),
			zap.Int("month", req.Month),
			zap.Error(err),
		)
		return nil, err
	}
	uc.metrics.SliceLoads.Inc()

	resp := buildSliceResponse(region.Name, slice)

	if cacheable {
		uc.toCache(ctx, region.Name, req.Year, req.Month, resp)
	}

	return resp, nil
}

func (uc *SliceUseCase) resolveRegion(req dto.SliceRequest) (*domain.Region, error) {
	if req.Region != "" {
		return uc.regionRepo.Region(req.Region)
	}

	if !req.HasCustomBBox() {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "either region or a full bounding box is required",
		})
	}

	bbox := domain.BoundingBox{
		MinLat: *req.MinLat,
		MaxLat: *req.MaxLat,
		MinLon: *req.MinLon,
		MaxLon: *req.MaxLon,
	}
	if !bbox.Valid() {
		return nil, errors.ErrInvalidBoundingBox
	}

	region := domain.CustomRegion(bbox)
	return &region, nil
}

func (uc *SliceUseCase) fromCache(ctx context.Context, region string, year, month int) *dto.SliceResponse {
	data, err := uc.cacheRepo.Get(ctx, cache.SliceKey(region, year, month))
	if err != nil {
		uc.logger.Warn("Failed to get slice from cache", zap.Error(err))
		return nil
	}
	if data == nil {
		uc.metrics.CacheLookups.WithLabelValues("slice", "miss").Inc()
		return nil
	}

	var resp dto.SliceResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		uc.logger.Warn("Failed to unmarshal cached slice", zap.Error(err))
		return nil
	}

	uc.metrics.CacheLookups.WithLabelValues("slice", "hit").Inc()
	return &resp
}

func (uc *SliceUseCase) toCache(ctx context.Context, region string, year, month int, resp *dto.SliceResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("Failed to marshal slice for cache", zap.Error(err))
		return
	}
	if err := uc.cacheRepo.Set(ctx, cache.SliceKey(region, year, month), data, uc.cacheTTL); err != nil {
		// Данные уже получены, сбой кеша не фатален
		uc.logger.Warn("Failed to cache slice", zap.Error(err))
	}
}

func buildSliceResponse(region string, slice *domain.GridSlice) *dto.SliceResponse {
	points := slice.Points()
	out := make([]dto.SlicePoint, 0, len(points))
	for _, p := range points {
		category := domain.Categorize(p.Value)
		out = append(out, dto.SlicePoint{
			Lat:      p.Lat,
			Lon:      p.Lon,
			Value:    p.Value,
			Category: category.String(),
			Color:    category.Color(),
		})
	}

	return &dto.SliceResponse{
		Region: region,
		Year:   slice.Year,
		Month:  slice.Month,
		Points: out,
		Total:  len(out),
	}
}
