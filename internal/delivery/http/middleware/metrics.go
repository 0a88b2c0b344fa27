package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/drought-monitor/internal/pkg/metrics"
)

// Metrics - middleware для сбора HTTP-метрик Prometheus.
// Метки используют шаблон маршрута, а не сырой путь, чтобы не раздувать кардинальность.
func Metrics(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		status := strconv.Itoa(c.Response().StatusCode())

		m.HTTPRequests.WithLabelValues(c.Method(), route, status).Inc()
		m.HTTPDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())

		return err
	}
}
