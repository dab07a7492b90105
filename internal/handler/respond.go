package handler

import (
	"github.com/gofiber/fiber/v2"

	"workforce-backend/internal/apperr"
)

// respondError petakan taksonomi apperr ke status HTTP.
// Error di luar taksonomi dianggap kegagalan internal.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case apperr.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case apperr.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case apperr.IsConflict(err):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Terjadi kesalahan pada server"})
}

// localUint ambil claim numerik dari context. Claims JWT selalu float64
// setelah decode JSON.
func localUint(c *fiber.Ctx, key string) uint {
	if v, ok := c.Locals(key).(float64); ok {
		return uint(v)
	}
	return 0
}
