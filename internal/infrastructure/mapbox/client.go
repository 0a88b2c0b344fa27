package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/drought-monitor/internal/config"
	"github.com/drought-monitor/internal/domain/repository"
)

type client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	style       string
	logger      *zap.Logger
}

// tokenResponse - ответ Mapbox Tokens API
type tokenResponse struct {
	Code string `json:"code"`
}

// NewMapboxClient создает новый клиент для Mapbox API
func NewMapboxClient(cfg *config.MapboxConfig, logger *zap.Logger) repository.MapboxRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		style:       cfg.Style,
		logger:      logger,
	}
}

// ValidateToken проверяет access token через Tokens API.
// Любой код кроме "TokenValid" считается ошибкой.
func (c *client) ValidateToken(ctx context.Context) error {
	reqURL := fmt.Sprintf("%s/tokens/v2?access_token=%s",
		c.baseURL,
		url.QueryEscape(c.accessToken),
	)

	c.logger.Debug("Validating Mapbox access token")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("mapbox API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var tokenResp tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if tokenResp.Code != "TokenValid" {
		c.logger.Error("Mapbox token rejected", zap.String("code", tokenResp.Code))
		return fmt.Errorf("mapbox token invalid: %s", tokenResp.Code)
	}

	c.logger.Debug("Mapbox access token is valid")
	return nil
}

// StaticMap запрашивает PNG-превью через Static Images API
func (c *client) StaticMap(ctx context.Context, centerLat, centerLon float64, zoom, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	// Static Images API принимает lon,lat
	reqURL := fmt.Sprintf("%s/styles/v1/%s/static/%f,%f,%d/%dx%d?access_token=%s",
		c.baseURL,
		c.style,
		centerLon,
		centerLat,
		zoom,
		width,
		height,
		url.QueryEscape(c.accessToken),
	)

	c.logger.Debug("Calling Mapbox Static Images API",
		zap.Float64("center_lat", centerLat),
		zap.Float64("center_lon", centerLon),
		zap.Int("zoom", zoom))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Mapbox API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("mapbox API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	png, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}

	c.logger.Debug("Mapbox Static Images API call successful",
		zap.Int("bytes", len(png)))

	return png, nil
}
