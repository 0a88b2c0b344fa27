package netcdf

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/ctessum/cdf"
	"go.uber.org/zap"

	"github.com/drought-monitor/internal/config"
	"github.com/drought-monitor/internal/domain"
	"github.com/drought-monitor/internal/domain/repository"
	apperrors "github.com/drought-monitor/internal/pkg/errors"
)

// Имена осей по конвенции COARDS, их использует SPEIbase
const (
	latVar  = "lat"
	lonVar  = "lon"
	timeVar = "time"
)

type yearMonth struct {
	year  int
	month int
}

// Dataset - репозиторий поверх классического NetCDF-файла.
// Оси и временной индекс читаются один раз при открытии,
// срезы данных - по запросу гиперслабами в один временной шаг.
type Dataset struct {
	file     *os.File
	cdf      *cdf.File
	variable string

	lats []float64
	lons []float64

	timeIndex map[yearMonth]int
	timeRange domain.TimeRange

	fillValue   float64
	hasFill     bool
	scaleFactor float64
	addOffset   float64

	logger *zap.Logger
}

// Open открывает датасет и валидирует его структуру.
// Отсутствующий или нечитаемый файл фатален для сервиса.
func Open(cfg *config.DatasetConfig, logger *zap.Logger) (*Dataset, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}

	cf, err := cdf.Open(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read netcdf header: %w", err)
	}

	d := &Dataset{
		file:        f,
		cdf:         cf,
		variable:    cfg.Variable,
		scaleFactor: 1,
		logger:      logger,
	}

	if err := d.init(); err != nil {
		f.Close()
		return nil, err
	}

	logger.Info("Dataset opened",
		zap.String("path", cfg.Path),
		zap.String("variable", d.variable),
		zap.Int("lat_cells", len(d.lats)),
		zap.Int("lon_cells", len(d.lons)),
		zap.Int("time_steps", len(d.timeIndex)),
	)

	return d, nil
}

func (d *Dataset) init() error {
	if !d.hasVariable(d.variable) {
		return fmt.Errorf("variable %q not found in dataset", d.variable)
	}

	dims := d.cdf.Header.Dimensions(d.variable)
	if len(dims) != 3 || dims[0] != timeVar || dims[1] != latVar || dims[2] != lonVar {
		return fmt.Errorf("variable %q must have dimensions (time, lat, lon), got %v", d.variable, dims)
	}

	var err error
	if d.lats, err = d.readAxis(latVar); err != nil {
		return err
	}
	if d.lons, err = d.readAxis(lonVar); err != nil {
		return err
	}

	if err = d.buildTimeIndex(); err != nil {
		return err
	}

	d.readFillValue()
	d.readPacking()

	return nil
}

func (d *Dataset) hasVariable(name string) bool {
	for _, v := range d.cdf.Header.Variables() {
		if v == name {
			return true
		}
	}
	return false
}

// readAxis читает одномерную координатную ось в float64
// независимо от типа хранения
func (d *Dataset) readAxis(name string) ([]float64, error) {
	if !d.hasVariable(name) {
		return nil, fmt.Errorf("axis variable %q not found", name)
	}

	r := d.cdf.Reader(name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, fmt.Errorf("read axis %q: %w", name, err)
	}

	values, err := toFloat64(buf)
	if err != nil {
		return nil, fmt.Errorf("axis %q: %w", name, err)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("axis %q is empty", name)
	}
	return values, nil
}

// buildTimeIndex декодирует ось времени из "days since ..." в (год, месяц).
// Датасет месячный, каждому шагу соответствует ровно один месяц.
func (d *Dataset) buildTimeIndex() error {
	raw, err := d.readAxis(timeVar)
	if err != nil {
		return err
	}

	base, err := parseTimeUnits(d.attrString(timeVar, "units"))
	if err != nil {
		return err
	}

	d.timeIndex = make(map[yearMonth]int, len(raw))
	for i, days := range raw {
		ts := base.AddDate(0, 0, int(days))
		ym := yearMonth{year: ts.Year(), month: int(ts.Month())}
		if _, dup := d.timeIndex[ym]; dup {
			return fmt.Errorf("duplicate time step for %04d-%02d", ym.year, ym.month)
		}
		d.timeIndex[ym] = i

		if i == 0 {
			d.timeRange.StartYear = ym.year
			d.timeRange.StartMonth = ym.month
		}
		d.timeRange.EndYear = ym.year
		d.timeRange.EndMonth = ym.month
	}

	if d.timeRange.Months() != len(raw) {
		return fmt.Errorf("time axis is not contiguous monthly: %d steps for range %04d-%02d..%04d-%02d",
			len(raw), d.timeRange.StartYear, d.timeRange.StartMonth, d.timeRange.EndYear, d.timeRange.EndMonth)
	}

	return nil
}

// parseTimeUnits разбирает COARDS-строку вида "days since 1900-01-01 00:00:00"
func parseTimeUnits(units string) (time.Time, error) {
	if units == "" {
		return time.Time{}, fmt.Errorf("time axis has no units attribute")
	}

	fields := strings.Fields(units)
	if len(fields) < 3 || fields[0] != "days" || fields[1] != "since" {
		return time.Time{}, fmt.Errorf("unsupported time units %q", units)
	}

	base, err := time.Parse("2006-1-2", fields[2])
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time base date %q: %w", fields[2], err)
	}
	return base, nil
}

func (d *Dataset) readFillValue() {
	for _, attr := range []string{"_FillValue", "missing_value"} {
		if v, ok := d.attrFloat(d.variable, attr); ok {
			d.fillValue = v
			d.hasFill = true
			return
		}
	}
}

func (d *Dataset) readPacking() {
	if v, ok := d.attrFloat(d.variable, "scale_factor"); ok {
		d.scaleFactor = v
	}
	if v, ok := d.attrFloat(d.variable, "add_offset"); ok {
		d.addOffset = v
	}
}

func (d *Dataset) attrString(v, name string) string {
	attr := d.cdf.Header.GetAttribute(v, name)
	if attr == nil {
		return ""
	}
	if s, ok := attr.(string); ok {
		return s
	}
	return ""
}

func (d *Dataset) attrFloat(v, name string) (float64, bool) {
	attr := d.cdf.Header.GetAttribute(v, name)
	if attr == nil {
		return 0, false
	}
	switch a := attr.(type) {
	case []float64:
		if len(a) > 0 {
			return a[0], true
		}
	case []float32:
		if len(a) > 0 {
			return float64(a[0]), true
		}
	case []int32:
		if len(a) > 0 {
			return float64(a[0]), true
		}
	}
	return 0, false
}

// TimeRange возвращает покрытие датасета
func (d *Dataset) TimeRange() domain.TimeRange {
	return d.timeRange
}

// Variable возвращает имя читаемой переменной
func (d *Dataset) Variable() string {
	return d.variable
}

// SliceAt читает срез за (year, month), ограниченный bbox.
// Дата вне покрытия отклоняется до чтения файла.
func (d *Dataset) SliceAt(ctx context.Context, year, month int, bbox domain.BoundingBox) (*domain.GridSlice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !bbox.Valid() {
		return nil, apperrors.ErrInvalidBoundingBox
	}

	t, ok := d.timeIndex[yearMonth{year: year, month: month}]
	if !ok {
		return nil, apperrors.ErrDateOutOfRange.WithDetails(map[string]interface{}{
			"year":     year,
			"month":    month,
			"coverage": d.timeRange,
		})
	}

	latStart, latEnd := axisRange(d.lats, bbox.MinLat, bbox.MaxLat)
	lonStart, lonEnd := axisRange(d.lons, bbox.MinLon, bbox.MaxLon)
	if latStart >= latEnd || lonStart >= lonEnd {
		// bbox не пересекается с сеткой - пустой срез, не ошибка
		return &domain.GridSlice{Year: year, Month: month}, nil
	}

	nLat := latEnd - latStart
	nLon := lonEnd - lonStart

	r := d.cdf.Reader(d.variable,
		[]int{t, latStart, lonStart},
		[]int{t + 1, latEnd, lonEnd},
	)
	buf := r.Zero(nLat * nLon)
	if _, err := r.Read(buf); err != nil {
		d.logger.Error("Failed to read dataset slab",
			zap.Int("year", year),
			zap.Int("month", month),
			zap.Error(err),
		)
		return nil, fmt.Errorf("read slab at %04d-%02d: %w", year, month, err)
	}

	flat, err := toFloat64(buf)
	if err != nil {
		return nil, fmt.Errorf("variable %q: %w", d.variable, err)
	}
	if len(flat) != nLat*nLon {
		return nil, fmt.Errorf("slab size mismatch: want %d values, got %d", nLat*nLon, len(flat))
	}

	slice := &domain.GridSlice{
		Year:   year,
		Month:  month,
		Lats:   append([]float64(nil), d.lats[latStart:latEnd]...),
		Lons:   append([]float64(nil), d.lons[lonStart:lonEnd]...),
		Values: make([][]float64, nLat),
	}

	for i := 0; i < nLat; i++ {
		row := make([]float64, nLon)
		for j := 0; j < nLon; j++ {
			row[j] = d.decode(flat[i*nLon+j])
		}
		slice.Values[i] = row
	}

	return slice, nil
}

// decode переводит хранимое значение в SPEI, fill -> NaN
func (d *Dataset) decode(v float64) float64 {
	if math.IsNaN(v) {
		return v
	}
	if d.hasFill && sameFill(v, d.fillValue) {
		return math.NaN()
	}
	return v*d.scaleFactor + d.addOffset
}

// sameFill сравнивает с допуском: fill часто хранится как float32 1e30
func sameFill(v, fill float64) bool {
	if v == fill {
		return true
	}
	if fill == 0 {
		return false
	}
	return math.Abs(v-fill) <= math.Abs(fill)*1e-6
}

// axisRange возвращает полуоткрытый диапазон индексов оси, попадающих
// в [lo, hi]. Ось может быть как возрастающей, так и убывающей.
func axisRange(axis []float64, lo, hi float64) (start, end int) {
	start = -1
	for i, v := range axis {
		if v >= lo && v <= hi {
			if start < 0 {
				start = i
			}
			end = i + 1
		}
	}
	if start < 0 {
		return 0, 0
	}
	return start, end
}

func toFloat64(buf interface{}) ([]float64, error) {
	switch b := buf.(type) {
	case []float64:
		return b, nil
	case []float32:
		out := make([]float64, len(b))
		for i, v := range b {
			out[i] = float64(v)
		}
		return out, nil
	case []int32:
		out := make([]float64, len(b))
		for i, v := range b {
			out[i] = float64(v)
		}
		return out, nil
	case []int16:
		out := make([]float64, len(b))
		for i, v := range b {
			out[i] = float64(v)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", buf)
	}
}

func (d *Dataset) Close() error {
	d.logger.Info("Closing dataset")
	return d.file.Close()
}

var _ repository.DatasetRepository = (*Dataset)(nil)
