package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/drought-monitor/internal/domain"
	"github.com/drought-monitor/internal/domain/repository"
	"github.com/drought-monitor/internal/pkg/metrics"
	"github.com/drought-monitor/internal/repository/cache"
	"github.com/drought-monitor/internal/usecase/dto"
)

// StatsUseCase считает описательную статистику по региону
type StatsUseCase struct {
	datasetRepo repository.DatasetRepository
	regionRepo  repository.RegionRepository
	cacheRepo   repository.CacheRepository
	clock       clockwork.Clock
	metrics     *metrics.Metrics
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewStatsUseCase - создание нового StatsUseCase
func NewStatsUseCase(
	datasetRepo repository.DatasetRepository,
	regionRepo repository.RegionRepository,
	cacheRepo repository.CacheRepository,
	clock clockwork.Clock,
	m *metrics.Metrics,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		datasetRepo: datasetRepo,
		regionRepo:  regionRepo,
		cacheRepo:   cacheRepo,
		clock:       clock,
		metrics:     m,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// GetRegionStatistics возвращает статистику региона за (year, month).
// Регион без валидных ячеек даёт NoData, а не нулевые значения.
func (uc *StatsUseCase) GetRegionStatistics(ctx context.Context, req dto.StatsRequest) (*dto.StatsResponse, error) {
	region, err := uc.regionRepo.Region(req.Region)
	if err != nil {
		return nil, err
	}

	// 1. Проверяем кеш
	key := cache.StatsKey(region.Name, req.Year, req.Month)
	if data, err := uc.cacheRepo.Get(ctx, key); err == nil && data != nil {
		var resp dto.StatsResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			uc.metrics.CacheLookups.WithLabelValues("stats", "hit").Inc()
			uc.logger.Debug("Statistics fetched from cache", zap.String("key", key))
			return &resp, nil
		}
		uc.logger.Warn("Failed to unmarshal cached stats", zap.Error(err))
	} else if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	} else {
		uc.metrics.CacheLookups.WithLabelValues("stats", "miss").Inc()
	}

	// 2. Читаем срез и считаем
	slice, err := uc.datasetRepo.SliceAt(ctx, req.Year, req.Month, region.BBox)
	if err != nil {
		uc.logger.Error("Failed to read slice for statistics",
			zap.String("region", region.Name),
			zap.Error(err),
		)
		return nil, err
	}

	resp := &dto.StatsResponse{
		Region:      region.Name,
		Year:        req.Year,
		Month:       req.Month,
		GeneratedAt: uc.clock.Now().UTC(),
	}

	stats, ok := domain.ComputeStatistics(flatten(slice))
	if !ok {
		resp.NoData = true
		uc.logger.Info("Region has no valid cells",
			zap.String("region", region.Name),
			zap.Int("year", req.Year),
			zap.Int("month", req.Month),
		)
	} else {
		resp.Statistics = &stats
	}

	// 3. Кешируем, сбой не фатален
	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache stats", zap.Error(err))
		}
	}

	return resp, nil
}

func flatten(slice *domain.GridSlice) []float64 {
	out := make([]float64, 0, slice.TotalCells())
	for _, row := range slice.Values {
		out = append(out, row...)
	}
	return out
}
