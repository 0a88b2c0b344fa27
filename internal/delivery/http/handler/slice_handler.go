package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/drought-monitor/internal/pkg/utils"
	"github.com/drought-monitor/internal/pkg/validator"
	"github.com/drought-monitor/internal/usecase"
	"github.com/drought-monitor/internal/usecase/dto"
)

// SliceHandler - обработчик запросов срезов сетки
type SliceHandler struct {
	sliceUC *usecase.SliceUseCase
	logger  *zap.Logger
}

// NewSliceHandler - создание нового SliceHandler
func NewSliceHandler(sliceUC *usecase.SliceUseCase, logger *zap.Logger) *SliceHandler {
	return &SliceHandler{
		sliceUC: sliceUC,
		logger:  logger,
	}
}

// GetSlice godoc
// @Summary Срез индекса засушливости за месяц
// @Description Возвращает точки сетки SPEI за выбранный месяц с категорией и цветом для каждой ячейки. Регион задаётся именем или явным bounding box; ячейки без данных не включаются.
// @Tags Slice
// @Accept json
// @Produce json
// @Param year query int true "Год"
// @Param month query int true "Месяц (1-12)"
// @Param region query string false "Именованный регион" default(Global)
// @Param min_lat query number false "Южная граница bbox"
// @Param max_lat query number false "Северная граница bbox"
// @Param min_lon query number false "Западная граница bbox"
// @Param max_lon query number false "Восточная граница bbox"
// @Success 200 {object} utils.SuccessResponse{data=dto.SliceResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/slice [get]
func (h *SliceHandler) GetSlice(c *fiber.Ctx) error {
	var req dto.SliceRequest
	req.Year = c.QueryInt("year")
	req.Month = c.QueryInt("month")
	req.Region = c.Query("region")

	if req.Region == "" {
		req.MinLat = queryFloat(c, "min_lat")
		req.MaxLat = queryFloat(c, "max_lat")
		req.MinLon = queryFloat(c, "min_lon")
		req.MaxLon = queryFloat(c, "max_lon")

		// Без региона и bbox по умолчанию отдаём глобальный срез
		if !req.HasCustomBBox() && req.MinLat == nil && req.MaxLat == nil &&
			req.MinLon == nil && req.MaxLon == nil {
			req.Region = "Global"
		}
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.sliceUC.GetSlice(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
