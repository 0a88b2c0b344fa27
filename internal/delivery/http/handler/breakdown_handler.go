package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/drought-monitor/internal/pkg/utils"
	"github.com/drought-monitor/internal/pkg/validator"
	"github.com/drought-monitor/internal/usecase"
	"github.com/drought-monitor/internal/usecase/dto"
)

// BreakdownHandler - обработчик распределения засушливости по континенту
type BreakdownHandler struct {
	breakdownUC *usecase.BreakdownUseCase
	logger      *zap.Logger
}

// NewBreakdownHandler - создание нового BreakdownHandler
func NewBreakdownHandler(breakdownUC *usecase.BreakdownUseCase, logger *zap.Logger) *BreakdownHandler {
	return &BreakdownHandler{
		breakdownUC: breakdownUC,
		logger:      logger,
	}
}

// GetBreakdown godoc
// @Summary Распределение категорий засушливости по континенту
// @Description Возвращает доли категорий SPEI по ячейкам континента и группировку стран (для Австралии - штатов) по категориям за выбранный месяц.
// @Tags Breakdown
// @Accept json
// @Produce json
// @Param name path string true "Имя континента"
// @Param year query int true "Год"
// @Param month query int true "Месяц (1-12)"
// @Success 200 {object} utils.SuccessResponse{data=dto.BreakdownResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/regions/{name}/breakdown [get]
func (h *BreakdownHandler) GetBreakdown(c *fiber.Ctx) error {
	req := dto.BreakdownRequest{
		Continent: paramName(c, "name"),
		Year:      c.QueryInt("year"),
		Month:     c.QueryInt("month"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.breakdownUC.GetBreakdown(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
