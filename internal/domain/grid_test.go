package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSlice() *GridSlice {
	nan := math.NaN()
	return &GridSlice{
		Year:  2000,
		Month: 1,
		Lats:  []float64{-0.75, -0.25, 0.25, 0.75},
		Lons:  []float64{10.25, 10.75, 11.25},
		Values: [][]float64{
			{-2.1, nan, 0.3},
			{-1.2, 0.0, nan},
			{nan, 1.1, 1.8},
			{0.4, -0.6, 2.2},
		},
	}
}

func TestGridSlice_Points(t *testing.T) {
	s := testSlice()

	points := s.Points()

	assert.Len(t, points, 9, "NaN cells must be dropped")
	assert.Equal(t, GridPoint{Lat: -0.75, Lon: 10.25, Value: -2.1}, points[0])
	for _, p := range points {
		assert.False(t, math.IsNaN(p.Value))
	}
}

func TestGridSlice_ValidValues(t *testing.T) {
	s := testSlice()
	assert.Len(t, s.ValidValues(), 9)
	assert.Equal(t, 12, s.TotalCells())
}

func TestGridSlice_Window(t *testing.T) {
	s := testSlice()

	t.Run("window clips at slice edges", func(t *testing.T) {
		// Nearest cell to (-0.8, 10.2) is the corner (-0.75, 10.25)
		values := s.Window(-0.8, 10.2, 3)
		// 2x2 corner window: -2.1, NaN, -1.2, 0.0
		assert.ElementsMatch(t, []float64{-2.1, -1.2, 0.0}, values)
	})

	t.Run("window size one returns single cell", func(t *testing.T) {
		values := s.Window(0.25, 10.75, 1)
		assert.Equal(t, []float64{1.1}, values)
	})

	t.Run("oversized window covers whole slice", func(t *testing.T) {
		values := s.Window(0, 10.75, 100)
		assert.Len(t, values, 9)
	})

	t.Run("empty slice returns nil", func(t *testing.T) {
		empty := &GridSlice{}
		assert.Nil(t, empty.Window(0, 0, 5))
	})
}

func TestGridSlice_Window_Deterministic(t *testing.T) {
	s := testSlice()

	first := s.Window(0.3, 11.0, 3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Window(0.3, 11.0, 3))
	}
}

func TestTimeRange_Contains(t *testing.T) {
	r := TimeRange{StartYear: 1901, StartMonth: 1, EndYear: 2023, EndMonth: 12}

	tests := []struct {
		name  string
		year  int
		month int
		want  bool
	}{
		{"first month of coverage", 1901, 1, true},
		{"last month of coverage", 2023, 12, true},
		{"middle of coverage", 2000, 6, true},
		{"month before coverage", 1900, 12, false},
		{"month after coverage", 2024, 1, false},
		{"invalid month zero", 2000, 0, false},
		{"invalid month thirteen", 2000, 13, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.year, tt.month))
		})
	}
}

func TestTimeRange_Months(t *testing.T) {
	r := TimeRange{StartYear: 1901, StartMonth: 1, EndYear: 2023, EndMonth: 12}
	assert.Equal(t, 1476, r.Months())

	single := TimeRange{StartYear: 2000, StartMonth: 5, EndYear: 2000, EndMonth: 5}
	assert.Equal(t, 1, single.Months())
}

func TestBoundingBox(t *testing.T) {
	t.Run("valid box", func(t *testing.T) {
		b := BoundingBox{MinLat: -40, MinLon: -20, MaxLat: 40, MaxLon: 55}
		require.True(t, b.Valid())

		lat, lon := b.Center()
		assert.Equal(t, 0.0, lat)
		assert.Equal(t, 17.5, lon)
		assert.Equal(t, 80.0, b.LatSpan())
		assert.Equal(t, 75.0, b.LonSpan())
	})

	t.Run("inverted bounds are invalid", func(t *testing.T) {
		b := BoundingBox{MinLat: 40, MinLon: 0, MaxLat: -40, MaxLon: 10}
		assert.False(t, b.Valid())
	})

	t.Run("out of range latitude is invalid", func(t *testing.T) {
		b := BoundingBox{MinLat: -91, MinLon: 0, MaxLat: 0, MaxLon: 10}
		assert.False(t, b.Valid())
	})

	t.Run("global box is valid", func(t *testing.T) {
		assert.True(t, GlobalBBox.Valid())
	})
}
