package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/drought-monitor/internal/config"
	"github.com/drought-monitor/internal/pkg/utils"
	"github.com/drought-monitor/internal/pkg/validator"
	"github.com/drought-monitor/internal/usecase"
	"github.com/drought-monitor/internal/usecase/dto"
)

// MapHandler - обработчик карт: превью и конфигурация клиента
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	config *config.Config
	logger *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC *usecase.MapUseCase, cfg *config.Config, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		config: cfg,
		logger: logger,
	}
}

// GetRegionPreview godoc
// @Summary Статическое превью карты региона
// @Description Возвращает PNG-превью региона через Mapbox Static Images API. Центр и зум подбираются по границам региона.
// @Tags Map
// @Produce png
// @Param region query string true "Имя региона"
// @Param width query int false "Ширина изображения" default(800)
// @Param height query int false "Высота изображения" default(600)
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/map/preview [get]
func (h *MapHandler) GetRegionPreview(c *fiber.Ctx) error {
	req := dto.PreviewRequest{
		Region: c.Query("region"),
		Width:  c.QueryInt("width", 800),
		Height: c.QueryInt("height", 600),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	image, err := h.mapUC.GetRegionPreview(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(image)
}

// GetMapboxConfig godoc
// @Summary Конфигурация клиентской карты
// @Description Возвращает access token и стиль Mapbox для инициализации карты на клиенте
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MapboxConfigResponse}
// @Router /api/v1/config/mapbox [get]
func (h *MapHandler) GetMapboxConfig(c *fiber.Ctx) error {
	return utils.SendSuccess(c, dto.MapboxConfigResponse{
		Token: h.config.Mapbox.AccessToken,
		Style: h.config.Mapbox.Style,
	}, nil)
}
