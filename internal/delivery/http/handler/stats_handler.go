package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/drought-monitor/internal/pkg/utils"
	"github.com/drought-monitor/internal/pkg/validator"
	"github.com/drought-monitor/internal/usecase"
	"github.com/drought-monitor/internal/usecase/dto"
)

// StatsHandler - обработчик запросов региональной статистики
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler - создание нового StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetRegionStatistics godoc
// @Summary Статистика региона за месяц
// @Description Возвращает описательную статистику SPEI (среднее, медиана, стандартное отклонение, минимум, максимум) по валидным ячейкам региона за выбранный месяц. Регион без данных помечается no_data.
// @Tags Statistics
// @Accept json
// @Produce json
// @Param name path string true "Имя региона"
// @Param year query int true "Год"
// @Param month query int true "Месяц (1-12)"
// @Success 200 {object} utils.SuccessResponse{data=dto.StatsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/regions/{name}/stats [get]
func (h *StatsHandler) GetRegionStatistics(c *fiber.Ctx) error {
	req := dto.StatsRequest{
		Region: paramName(c, "name"),
		Year:   c.QueryInt("year"),
		Month:  c.QueryInt("month"),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.statsUC.GetRegionStatistics(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
