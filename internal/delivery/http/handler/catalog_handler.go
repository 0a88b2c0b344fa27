package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/drought-monitor/internal/pkg/utils"
	"github.com/drought-monitor/internal/usecase"
)

// CatalogHandler - обработчик справочных запросов
type CatalogHandler struct {
	catalogUC *usecase.CatalogUseCase
	logger    *zap.Logger
}

// NewCatalogHandler - создание нового CatalogHandler
func NewCatalogHandler(catalogUC *usecase.CatalogUseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: catalogUC,
		logger:    logger,
	}
}

// ListRegions godoc
// @Summary Каталог регионов
// @Description Возвращает все именованные регионы с их границами: Global и континенты
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.RegionsResponse}
// @Router /api/v1/catalog/regions [get]
func (h *CatalogHandler) ListRegions(c *fiber.Ctx) error {
	result := h.catalogUC.ListRegions()
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetTimeRange godoc
// @Summary Покрытие датасета
// @Description Возвращает переменную датасета и диапазон доступных месяцев
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.TimeRangeResponse}
// @Router /api/v1/catalog/time-range [get]
func (h *CatalogHandler) GetTimeRange(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.catalogUC.GetTimeRange(), nil)
}
