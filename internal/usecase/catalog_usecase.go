package usecase

import (
	"github.com/drought-monitor/internal/domain/repository"
	"github.com/drought-monitor/internal/usecase/dto"
)

// CatalogUseCase отдаёт справочные данные: регионы и покрытие датасета
type CatalogUseCase struct {
	datasetRepo repository.DatasetRepository
	regionRepo  repository.RegionRepository
}

// NewCatalogUseCase - создание нового CatalogUseCase
func NewCatalogUseCase(
	datasetRepo repository.DatasetRepository,
	regionRepo repository.RegionRepository,
) *CatalogUseCase {
	return &CatalogUseCase{
		datasetRepo: datasetRepo,
		regionRepo:  regionRepo,
	}
}

// ListRegions возвращает каталог именованных регионов в стабильном порядке
func (uc *CatalogUseCase) ListRegions() *dto.RegionsResponse {
	regions := uc.regionRepo.Regions()

	out := make([]dto.RegionInfo, 0, len(regions))
	for _, r := range regions {
		out = append(out, dto.RegionInfo{
			Name: r.Name,
			Kind: string(r.Kind),
			BBox: r.BBox,
		})
	}

	return &dto.RegionsResponse{
		Regions: out,
		Total:   len(out),
	}
}

// GetTimeRange возвращает временное покрытие датасета
func (uc *CatalogUseCase) GetTimeRange() *dto.TimeRangeResponse {
	tr := uc.datasetRepo.TimeRange()
	return &dto.TimeRangeResponse{
		Variable:  uc.datasetRepo.Variable(),
		TimeRange: tr,
		Months:    tr.Months(),
	}
}
