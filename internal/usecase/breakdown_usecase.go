package usecase

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/drought-monitor/internal/domain"
	"github.com/drought-monitor/internal/domain/repository"
	"github.com/drought-monitor/internal/pkg/metrics"
	"github.com/drought-monitor/internal/repository/cache"
	"github.com/drought-monitor/internal/usecase/dto"
)

// BreakdownUseCase строит распределение засушливости по континенту:
// доли категорий по ячейкам и группировку стран/штатов по категориям
type BreakdownUseCase struct {
	datasetRepo repository.DatasetRepository
	regionRepo  repository.RegionRepository
	cacheRepo   repository.CacheRepository
	metrics     *metrics.Metrics
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewBreakdownUseCase - создание нового BreakdownUseCase
func NewBreakdownUseCase(
	datasetRepo repository.DatasetRepository,
	regionRepo repository.RegionRepository,
	cacheRepo repository.CacheRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *BreakdownUseCase {
	return &BreakdownUseCase{
		datasetRepo: datasetRepo,
		regionRepo:  regionRepo,
		cacheRepo:   cacheRepo,
		metrics:     m,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// GetBreakdown возвращает распределение по категориям за (year, month)
func (uc *BreakdownUseCase) GetBreakdown(ctx context.Context, req dto.BreakdownRequest) (*dto.BreakdownResponse, error) {
	continent, err := uc.regionRepo.Continent(req.Continent)
	if err != nil {
		return nil, err
	}

	key := cache.BreakdownKey(continent.Region.Name, req.Year, req.Month)
	if data, err := uc.cacheRepo.Get(ctx, key); err != nil {
		uc.logger.Warn("Failed to get breakdown from cache", zap.Error(err))
	} else if data != nil {
		var resp dto.BreakdownResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			uc.metrics.CacheLookups.WithLabelValues("breakdown", "hit").Inc()
			return &resp, nil
		}
		uc.logger.Warn("Failed to unmarshal cached breakdown", zap.Error(err))
	} else {
		uc.metrics.CacheLookups.WithLabelValues("breakdown", "miss").Inc()
	}

	slice, err := uc.datasetRepo.SliceAt(ctx, req.Year, req.Month, continent.Region.BBox)
	if err != nil {
		uc.logger.Error("Failed to read slice for breakdown",
			zap.String("continent", continent.Region.Name),
			zap.Error(err),
		)
		return nil, err
	}

	resp := &dto.BreakdownResponse{
		Continent:     continent.Region.Name,
		Year:          req.Year,
		Month:         req.Month,
		DivisionLabel: continent.DivisionLabel,
	}

	valid := slice.ValidValues()
	if len(valid) == 0 {
		resp.NoData = true
		return resp, nil
	}

	resp.Shares = buildShares(valid)

	centroids, err := uc.regionRepo.Centroids(continent.Region.Name)
	if err != nil {
		return nil, err
	}
	resp.Groups = uc.groupDivisions(continent, centroids, slice, valid)

	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
			uc.logger.Warn("Failed to cache breakdown", zap.Error(err))
		}
	}

	return resp, nil
}

func buildShares(valid []float64) []dto.CategoryShare {
	counts := domain.CategoryCounts(valid)
	shares := make([]dto.CategoryShare, domain.NumCategories)
	for c := domain.Category(0); c < domain.NumCategories; c++ {
		shares[c] = dto.CategoryShare{
			Category: c.String(),
			Color:    c.Color(),
			Count:    counts[c],
			Percent:  float64(counts[c]) / float64(len(valid)) * 100,
		}
	}
	return shares
}

// groupDivisions относит каждую страну (или штат) к категории.
// Страны категоризуются по доминирующей категории окна вокруг центроида,
// австралийские штаты - по среднему SPEI окна. Страна без центроида или
// без валидных ячеек наследует категорию среднего по континенту.
func (uc *BreakdownUseCase) groupDivisions(
	continent *domain.Continent,
	centroids map[string]domain.Centroid,
	slice *domain.GridSlice,
	valid []float64,
) []dto.DivisionGroup {
	fallback := domain.MeanCategory(valid)

	byCategory := make(map[domain.Category][]string, domain.NumCategories)
	for _, division := range continent.Countries {
		category := fallback

		if centroid, ok := centroids[division]; ok {
			window := slice.Window(centroid.Lat, centroid.Lon, continent.SampleWindow)
			if len(window) > 0 {
				if continent.UsesMeanRule() {
					category = domain.MeanCategory(window)
				} else {
					category = domain.DominantCategory(window)
				}
			} else {
				uc.logger.Debug("No valid cells around centroid",
					zap.String("division", division))
			}
		} else {
			uc.logger.Debug("No centroid for division",
				zap.String("division", division))
		}

		byCategory[category] = append(byCategory[category], division)
	}

	groups := make([]dto.DivisionGroup, domain.NumCategories)
	for c := domain.Category(0); c < domain.NumCategories; c++ {
		groups[c] = dto.DivisionGroup{
			Category:  c.String(),
			Color:     c.Color(),
			Divisions: byCategory[c],
		}
	}
	return groups
}
