package handler

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// paramName читает path-параметр с именем региона.
// Имена содержат пробелы ("North America"), поэтому значение unescape-ится.
func paramName(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

// queryFloat читает опциональный float-параметр, nil при отсутствии или мусоре
func queryFloat(c *fiber.Ctx, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
