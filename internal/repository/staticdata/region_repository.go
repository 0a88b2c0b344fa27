package staticdata

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/drought-monitor/internal/config"
	"github.com/drought-monitor/internal/domain"
	"github.com/drought-monitor/internal/domain/repository"
	apperrors "github.com/drought-monitor/internal/pkg/errors"
)

// Порядок пресетов в каталоге регионов
var presetOrder = []string{
	"Global",
	"North America",
	"Europe",
	"Asia",
	"Africa",
	"South America",
	"Australia",
}

// continentFile - схема записи в continents.json
type continentFile struct {
	Region struct {
		Lat [2]float64 `json:"lat"`
		Lon [2]float64 `json:"lon"`
	} `json:"region"`
	Countries []string `json:"countries"`
}

// regionRepository держит справочники в памяти, неизменяемые после загрузки
type regionRepository struct {
	regions    map[string]domain.Region
	continents map[string]*domain.Continent
	centroids  map[string]map[string]domain.Centroid
	ordered    []domain.Region
	logger     *zap.Logger
}

// NewRegionRepository загружает справочные JSON-файлы.
// Нечитаемые справочники фатальны: без них агрегация невозможна.
func NewRegionRepository(cfg *config.RegionsConfig, logger *zap.Logger) (repository.RegionRepository, error) {
	r := &regionRepository{
		regions:    make(map[string]domain.Region),
		continents: make(map[string]*domain.Continent),
		centroids:  make(map[string]map[string]domain.Centroid),
		logger:     logger,
	}

	if err := r.loadContinents(cfg.ContinentsPath); err != nil {
		return nil, fmt.Errorf("load continents: %w", err)
	}
	if err := r.loadCentroids(cfg.CentroidsPath); err != nil {
		return nil, fmt.Errorf("load centroids: %w", err)
	}

	r.buildCatalog()

	logger.Info("Region reference data loaded",
		zap.Int("continents", len(r.continents)),
		zap.Int("regions", len(r.regions)),
	)

	return r, nil
}

func (r *regionRepository) loadContinents(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var parsed map[string]continentFile
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for name, c := range parsed {
		bbox := domain.BoundingBox{
			MinLat: c.Region.Lat[0],
			MaxLat: c.Region.Lat[1],
			MinLon: c.Region.Lon[0],
			MaxLon: c.Region.Lon[1],
		}
		if !bbox.Valid() {
			return fmt.Errorf("continent %q has invalid bbox", name)
		}

		continent := &domain.Continent{
			Region: domain.Region{
				Name: name,
				Kind: domain.RegionKindContinent,
				BBox: bbox,
			},
			Countries:     append([]string(nil), c.Countries...),
			DivisionLabel: "Country",
			SampleWindow:  domain.DefaultSampleWindow,
		}
		// Австралия делится на штаты, а не страны
		if name == "Australia" {
			continent.DivisionLabel = "State"
			continent.SampleWindow = domain.AustraliaSampleWindow
		}

		r.continents[name] = continent
	}

	return nil
}

func (r *regionRepository) loadCentroids(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var parsed map[string]map[string][2]float64
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for continent, entries := range parsed {
		m := make(map[string]domain.Centroid, len(entries))
		for country, coords := range entries {
			m[country] = domain.Centroid{Lat: coords[0], Lon: coords[1]}
		}
		r.centroids[continent] = m
	}

	return nil
}

// buildCatalog собирает каталог регионов: Global + континенты
func (r *regionRepository) buildCatalog() {
	r.regions["Global"] = domain.Region{
		Name: "Global",
		Kind: domain.RegionKindGlobal,
		BBox: domain.GlobalBBox,
	}
	for name, c := range r.continents {
		r.regions[name] = c.Region
	}

	// Стабильный порядок: известные пресеты, затем остальное по алфавиту
	seen := make(map[string]bool)
	for _, name := range presetOrder {
		if reg, ok := r.regions[name]; ok {
			r.ordered = append(r.ordered, reg)
			seen[name] = true
		}
	}
	var rest []string
	for name := range r.regions {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		r.ordered = append(r.ordered, r.regions[name])
	}
}

func (r *regionRepository) Regions() []domain.Region {
	return append([]domain.Region(nil), r.ordered...)
}

func (r *regionRepository) Region(name string) (*domain.Region, error) {
	reg, ok := r.regions[name]
	if !ok {
		return nil, apperrors.ErrRegionNotFound.WithDetails(map[string]interface{}{
			"region": name,
		})
	}
	return &reg, nil
}

func (r *regionRepository) Continent(name string) (*domain.Continent, error) {
	c, ok := r.continents[name]
	if !ok {
		return nil, apperrors.ErrRegionNotFound.WithDetails(map[string]interface{}{
			"continent": name,
		})
	}
	return c, nil
}

func (r *regionRepository) Continents() []*domain.Continent {
	out := make([]*domain.Continent, 0, len(r.continents))
	for _, reg := range r.ordered {
		if c, ok := r.continents[reg.Name]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (r *regionRepository) Centroids(continent string) (map[string]domain.Centroid, error) {
	if _, ok := r.continents[continent]; !ok {
		return nil, apperrors.ErrRegionNotFound.WithDetails(map[string]interface{}{
			"continent": continent,
		})
	}
	return r.centroids[continent], nil
}
