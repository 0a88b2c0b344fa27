package usecase_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/drought-monitor/internal/domain"
	"github.com/drought-monitor/internal/pkg/metrics"
	"github.com/drought-monitor/internal/usecase"
	"github.com/drought-monitor/internal/usecase/dto"
)

func testContinent() *domain.Continent {
	return &domain.Continent{
		Region: domain.Region{
			Name: "Africa",
			Kind: domain.RegionKindContinent,
			BBox: domain.BoundingBox{MinLat: -35, MaxLat: 37, MinLon: -20, MaxLon: 52},
		},
		Countries:     []string{"Algeria", "Kenya", "Ghost Land"},
		DivisionLabel: "Country",
		SampleWindow:  domain.DefaultSampleWindow,
	}
}

func TestBreakdownUseCase_GetBreakdown(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	newUseCase := func(d *MockDatasetRepository, r *MockRegionRepository, c *MockCacheRepository) *usecase.BreakdownUseCase {
		return usecase.NewBreakdownUseCase(d, r, c,
			metrics.NewForTesting(), logger, time.Hour)
	}

	t.Run("shares cover every category and sum to 100", func(t *testing.T) {
		mockDataset := &MockDatasetRepository{}
		mockRegions := &MockRegionRepository{}
		mockCache := &MockCacheRepository{}
		uc := newUseCase(mockDataset, mockRegions, mockCache)

		continent := testContinent()
		mockRegions.On("Continent", "Africa").Return(continent, nil)
		mockCache.On("Get", ctx, "breakdown:Africa:2000-01").Return(nil, nil)
		mockDataset.On("SliceAt", ctx, 2000, 1, continent.Region.BBox).Return(testSlice(2000, 1), nil)
		mockRegions.On("Centroids", "Africa").Return(map[string]domain.Centroid{
			"Algeria": {Lat: -1, Lon: 10},
			"Kenya":   {Lat: 1, Lon: 12},
		}, nil)
		mockCache.On("Set", ctx, "breakdown:Africa:2000-01", mock.Anything, time.Hour).Return(nil)

		resp, err := uc.GetBreakdown(ctx, dto.BreakdownRequest{Continent: "Africa", Year: 2000, Month: 1})
		require.NoError(t, err)
		require.NotNil(t, resp)

		assert.False(t, resp.NoData)
		assert.Equal(t, "Country", resp.DivisionLabel)
		require.Len(t, resp.Shares, domain.NumCategories)

		totalPercent := 0.0
		totalCount := 0
		for _, s := range resp.Shares {
			totalPercent += s.Percent
			totalCount += s.Count
		}
		assert.InDelta(t, 100.0, totalPercent, 1e-9)
		assert.Equal(t, 8, totalCount)

		// Каждая страна ровно в одной группе
		require.Len(t, resp.Groups, domain.NumCategories)
		seen := map[string]int{}
		for _, g := range resp.Groups {
			for _, d := range g.Divisions {
				seen[d]++
			}
		}
		assert.Equal(t, map[string]int{"Algeria": 1, "Kenya": 1, "Ghost Land": 1}, seen)

		mockCache.AssertExpectations(t)
	})

	t.Run("division without centroid falls back to continental mean", func(t *testing.T) {
		mockDataset := &MockDatasetRepository{}
		mockRegions := &MockRegionRepository{}
		mockCache := &MockCacheRepository{}
		uc := newUseCase(mockDataset, mockRegions, mockCache)

		continent := testContinent()
		slice := &domain.GridSlice{
			Year: 2000, Month: 1,
			Lats:   []float64{0},
			Lons:   []float64{10},
			Values: [][]float64{{-1.8}},
		}

		mockRegions.On("Continent", "Africa").Return(continent, nil)
		mockCache.On("Get", ctx, "breakdown:Africa:2000-01").Return(nil, nil)
		mockDataset.On("SliceAt", ctx, 2000, 1, continent.Region.BBox).Return(slice, nil)
		mockRegions.On("Centroids", "Africa").Return(map[string]domain.Centroid{}, nil)
		mockCache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		resp, err := uc.GetBreakdown(ctx, dto.BreakdownRequest{Continent: "Africa", Year: 2000, Month: 1})
		require.NoError(t, err)

		// Среднее по континенту -1.8 -> Severe Drought, все страны там
		severe := resp.Groups[domain.CategorySevereDrought]
		assert.Equal(t, "Severe Drought", severe.Category)
		assert.ElementsMatch(t, continent.Countries, severe.Divisions)
	})

	t.Run("mean rule applies to Australian states", func(t *testing.T) {
		mockDataset := &MockDatasetRepository{}
		mockRegions := &MockRegionRepository{}
		mockCache := &MockCacheRepository{}
		uc := newUseCase(mockDataset, mockRegions, mockCache)

		australia := &domain.Continent{
			Region: domain.Region{
				Name: "Australia",
				Kind: domain.RegionKindContinent,
				BBox: domain.BoundingBox{MinLat: -45, MaxLat: -10, MinLon: 110, MaxLon: 155},
			},
			Countries:     []string{"Queensland"},
			DivisionLabel: "State",
			SampleWindow:  domain.AustraliaSampleWindow,
		}

		// Две засушливые ячейки и одна очень влажная: доминирующая категория
		// была бы Moderate Drought, но среднее (-1.1-1.2+2.9)/3 = 0.2 -> Normal
		slice := &domain.GridSlice{
			Year: 2005, Month: 7,
			Lats:   []float64{-20},
			Lons:   []float64{140, 141, 142},
			Values: [][]float64{{-1.1, -1.2, 2.9}},
		}

		mockRegions.On("Continent", "Australia").Return(australia, nil)
		mockCache.On("Get", ctx, "breakdown:Australia:2005-07").Return(nil, nil)
		mockDataset.On("SliceAt", ctx, 2005, 7, australia.Region.BBox).Return(slice, nil)
		mockRegions.On("Centroids", "Australia").Return(map[string]domain.Centroid{
			"Queensland": {Lat: -20, Lon: 141},
		}, nil)
		mockCache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		resp, err := uc.GetBreakdown(ctx, dto.BreakdownRequest{Continent: "Australia", Year: 2005, Month: 7})
		require.NoError(t, err)

		normal := resp.Groups[domain.CategoryNormal]
		assert.Contains(t, normal.Divisions, "Queensland")
	})

	t.Run("slice without valid cells gives NoData", func(t *testing.T) {
		mockDataset := &MockDatasetRepository{}
		mockRegions := &MockRegionRepository{}
		mockCache := &MockCacheRepository{}
		uc := newUseCase(mockDataset, mockRegions, mockCache)

		continent := testContinent()
		empty := &domain.GridSlice{
			Year: 2000, Month: 1,
			Lats:   []float64{0},
			Lons:   []float64{10},
			Values: [][]float64{{math.NaN()}},
		}

		mockRegions.On("Continent", "Africa").Return(continent, nil)
		mockCache.On("Get", ctx, "breakdown:Africa:2000-01").Return(nil, nil)
		mockDataset.On("SliceAt", ctx, 2000, 1, continent.Region.BBox).Return(empty, nil)

		resp, err := uc.GetBreakdown(ctx, dto.BreakdownRequest{Continent: "Africa", Year: 2000, Month: 1})
		require.NoError(t, err)

		assert.True(t, resp.NoData)
		assert.Empty(t, resp.Shares)
		assert.Empty(t, resp.Groups)
		mockRegions.AssertNotCalled(t, "Centroids", mock.Anything)
	})
}
