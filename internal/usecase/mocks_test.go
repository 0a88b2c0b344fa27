package usecase_test

import (
	"context"
	"math"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/drought-monitor/internal/domain"
)

// MockDatasetRepository is a mock of DatasetRepository
type MockDatasetRepository struct {
	mock.Mock
}

func (m *MockDatasetRepository) TimeRange() domain.TimeRange {
	args := m.Called()
	return args.Get(0).(domain.TimeRange)
}

func (m *MockDatasetRepository) SliceAt(ctx context.Context, year, month int, bbox domain.BoundingBox) (*domain.GridSlice, error) {
	args := m.Called(ctx, year, month, bbox)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GridSlice), args.Error(1)
}

func (m *MockDatasetRepository) Variable() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockDatasetRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockRegionRepository is a mock of RegionRepository
type MockRegionRepository struct {
	mock.Mock
}

func (m *MockRegionRepository) Regions() []domain.Region {
	args := m.Called()
	return args.Get(0).([]domain.Region)
}

func (m *MockRegionRepository) Region(name string) (*domain.Region, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Region), args.Error(1)
}

func (m *MockRegionRepository) Continent(name string) (*domain.Continent, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Continent), args.Error(1)
}

func (m *MockRegionRepository) Continents() []*domain.Continent {
	args := m.Called()
	return args.Get(0).([]*domain.Continent)
}

func (m *MockRegionRepository) Centroids(continent string) (map[string]domain.Centroid, error) {
	args := m.Called(continent)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Centroid), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockMapboxRepository is a mock of MapboxRepository
type MockMapboxRepository struct {
	mock.Mock
}

func (m *MockMapboxRepository) ValidateToken(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMapboxRepository) StaticMap(ctx context.Context, centerLat, centerLon float64, zoom, width, height int) ([]byte, error) {
	args := m.Called(ctx, centerLat, centerLon, zoom, width, height)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// testSlice строит небольшой срез 3x3 с одной пустой ячейкой
func testSlice(year, month int) *domain.GridSlice {
	return &domain.GridSlice{
		Year:  year,
		Month: month,
		Lats:  []float64{-1, 0, 1},
		Lons:  []float64{10, 11, 12},
		Values: [][]float64{
			{-2.5, -1.2, 0.1},
			{0.3, math.NaN(), 0.8},
			{1.7, -0.6, 0.0},
		},
	}
}

func ptrFloat64(v float64) *float64 { return &v }
