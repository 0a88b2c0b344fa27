package netcdf

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ctessum/cdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/drought-monitor/internal/config"
	"github.com/drought-monitor/internal/domain"
	apperrors "github.com/drought-monitor/internal/pkg/errors"
)

const testFillValue = float32(1e30)

var (
	testLats = []float64{-0.75, -0.25, 0.25, 0.75}
	testLons = []float64{10.25, 10.75, 11.25}
)

// testValue - детерминированное значение ячейки тестового датасета.
// Ячейка (lat=0, lon=0) каждого шага - fill.
func testValue(t, i, j int) float32 {
	if i == 0 && j == 0 {
		return testFillValue
	}
	return float32(t)*0.01 + float32(i)*0.1 - float32(j)*0.05
}

// writeTestDataset собирает маленький классический NetCDF:
// 24 месячных шага (2000-01..2001-12) на сетке 4x3
func writeTestDataset(t *testing.T) string {
	t.Helper()

	nTime, nLat, nLon := 24, len(testLats), len(testLons)

	h := cdf.NewHeader(
		[]string{"time", "lat", "lon"},
		[]int{nTime, nLat, nLon},
	)
	h.AddVariable("time", []string{"time"}, []float64{0})
	h.AddAttribute("time", "units", "days since 1900-01-01")
	h.AddVariable("lat", []string{"lat"}, []float64{0})
	h.AddAttribute("lat", "units", "degrees_north")
	h.AddVariable("lon", []string{"lon"}, []float64{0})
	h.AddAttribute("lon", "units", "degrees_east")
	h.AddVariable("spei", []string{"time", "lat", "lon"}, []float32{0})
	h.AddAttribute("spei", "_FillValue", []float32{testFillValue})
	h.Define()

	path := filepath.Join(t.TempDir(), "spei_test.nc")
	ff, err := os.Create(path)
	require.NoError(t, err)
	defer ff.Close()

	f, err := cdf.Create(ff, h)
	require.NoError(t, err)

	// Ось времени: 16-е число каждого месяца, как в SPEIbase
	base := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	times := make([]float64, nTime)
	for i := range times {
		ts := time.Date(2000+i/12, time.Month(i%12+1), 16, 0, 0, 0, 0, time.UTC)
		times[i] = ts.Sub(base).Hours() / 24
	}
	writeVar(t, f, "time", []int{nTime}, times)
	writeVar(t, f, "lat", []int{nLat}, append([]float64(nil), testLats...))
	writeVar(t, f, "lon", []int{nLon}, append([]float64(nil), testLons...))

	values := make([]float32, nTime*nLat*nLon)
	for ti := 0; ti < nTime; ti++ {
		for i := 0; i < nLat; i++ {
			for j := 0; j < nLon; j++ {
				values[ti*nLat*nLon+i*nLon+j] = testValue(ti, i, j)
			}
		}
	}
	writeVar(t, f, "spei", []int{nTime, nLat, nLon}, values)

	return path
}

func writeVar(t *testing.T, f *cdf.File, name string, shape []int, data interface{}) {
	t.Helper()
	begin := make([]int, len(shape))
	w := f.Writer(name, begin, shape)
	_, err := w.Write(data)
	require.NoError(t, err)
}

func openTestDataset(t *testing.T) *Dataset {
	t.Helper()
	d, err := Open(&config.DatasetConfig{
		Path:     writeTestDataset(t),
		Variable: "spei",
	}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestOpen(t *testing.T) {
	t.Run("valid dataset", func(t *testing.T) {
		d := openTestDataset(t)

		assert.Equal(t, "spei", d.Variable())
		assert.Equal(t, domain.TimeRange{
			StartYear: 2000, StartMonth: 1,
			EndYear: 2001, EndMonth: 12,
		}, d.TimeRange())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(&config.DatasetConfig{
			Path:     "/nonexistent/spei.nc",
			Variable: "spei",
		}, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("unknown variable", func(t *testing.T) {
		_, err := Open(&config.DatasetConfig{
			Path:     writeTestDataset(t),
			Variable: "precipitation",
		}, zap.NewNop())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestDataset_SliceAt(t *testing.T) {
	d := openTestDataset(t)
	ctx := context.Background()

	t.Run("every in-range month loads without error", func(t *testing.T) {
		tr := d.TimeRange()
		for year := tr.StartYear; year <= tr.EndYear; year++ {
			for month := 1; month <= 12; month++ {
				slice, err := d.SliceAt(ctx, year, month, domain.GlobalBBox)
				require.NoError(t, err, "%04d-%02d", year, month)
				assert.Len(t, slice.Lats, len(testLats))
				assert.Len(t, slice.Lons, len(testLons))
			}
		}
	})

	t.Run("values round-trip including fill as NaN", func(t *testing.T) {
		slice, err := d.SliceAt(ctx, 2000, 3, domain.GlobalBBox)
		require.NoError(t, err)

		// Шаг t=2 для 2000-03
		assert.True(t, math.IsNaN(slice.Values[0][0]), "fill cell must become NaN")
		assert.InDelta(t, float64(testValue(2, 1, 2)), slice.Values[1][2], 1e-6)
		assert.InDelta(t, float64(testValue(2, 3, 0)), slice.Values[3][0], 1e-6)
		assert.Equal(t, 11, len(slice.ValidValues()))
	})

	t.Run("bbox restricts the slab", func(t *testing.T) {
		bbox := domain.BoundingBox{MinLat: 0, MinLon: 10.5, MaxLat: 1, MaxLon: 11.5}
		slice, err := d.SliceAt(ctx, 2001, 6, bbox)
		require.NoError(t, err)

		assert.Equal(t, []float64{0.25, 0.75}, slice.Lats)
		assert.Equal(t, []float64{10.75, 11.25}, slice.Lons)
		// t=17 для 2001-06; lat idx 2..3, lon idx 1..2
		assert.InDelta(t, float64(testValue(17, 2, 1)), slice.Values[0][0], 1e-6)
		assert.InDelta(t, float64(testValue(17, 3, 2)), slice.Values[1][1], 1e-6)
	})

	t.Run("bbox outside the grid yields empty slice", func(t *testing.T) {
		bbox := domain.BoundingBox{MinLat: 50, MinLon: 50, MaxLat: 60, MaxLon: 60}
		slice, err := d.SliceAt(ctx, 2000, 1, bbox)
		require.NoError(t, err)
		assert.Empty(t, slice.Lats)
		assert.Equal(t, 0, slice.TotalCells())
	})

	t.Run("date before coverage is rejected", func(t *testing.T) {
		_, err := d.SliceAt(ctx, 1999, 12, domain.GlobalBBox)
		requireAppError(t, err, "DATE_OUT_OF_RANGE")
	})

	t.Run("date after coverage is rejected", func(t *testing.T) {
		_, err := d.SliceAt(ctx, 2002, 1, domain.GlobalBBox)
		requireAppError(t, err, "DATE_OUT_OF_RANGE")
	})

	t.Run("invalid bbox is rejected", func(t *testing.T) {
		bbox := domain.BoundingBox{MinLat: 10, MinLon: 0, MaxLat: -10, MaxLon: 1}
		_, err := d.SliceAt(ctx, 2000, 1, bbox)
		requireAppError(t, err, "INVALID_BOUNDING_BOX")
	})

	t.Run("repeated reads are deterministic", func(t *testing.T) {
		first, err := d.SliceAt(ctx, 2000, 7, domain.GlobalBBox)
		require.NoError(t, err)
		second, err := d.SliceAt(ctx, 2000, 7, domain.GlobalBBox)
		require.NoError(t, err)

		assert.Equal(t, first.Lats, second.Lats)
		assert.Equal(t, first.Lons, second.Lons)
		assert.Equal(t, len(first.ValidValues()), len(second.ValidValues()))
	})
}

func TestParseTimeUnits(t *testing.T) {
	tests := []struct {
		name    string
		units   string
		wantErr bool
	}{
		{"plain date", "days since 1900-01-01", false},
		{"date with time of day", "days since 1900-1-1 00:00:00", false},
		{"hours unsupported", "hours since 1900-01-01", true},
		{"empty", "", true},
		{"garbage", "fortnights", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseTimeUnits(tt.units)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAxisRange(t *testing.T) {
	ascending := []float64{-1.5, -0.5, 0.5, 1.5}

	t.Run("ascending axis", func(t *testing.T) {
		start, end := axisRange(ascending, -1, 1)
		assert.Equal(t, 1, start)
		assert.Equal(t, 3, end)
	})

	t.Run("descending axis", func(t *testing.T) {
		descending := []float64{1.5, 0.5, -0.5, -1.5}
		start, end := axisRange(descending, -1, 1)
		assert.Equal(t, 1, start)
		assert.Equal(t, 3, end)
	})

	t.Run("no overlap", func(t *testing.T) {
		start, end := axisRange(ascending, 10, 20)
		assert.Equal(t, 0, start)
		assert.Equal(t, 0, end)
	})

	t.Run("full cover", func(t *testing.T) {
		start, end := axisRange(ascending, -90, 90)
		assert.Equal(t, 0, start)
		assert.Equal(t, 4, end)
	})
}

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok, "expected AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
}
