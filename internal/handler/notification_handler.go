package handler

import (
	"github.com/gofiber/fiber/v2"

	"workforce-backend/internal/repository"
)

type NotificationHandler struct {
	repo repository.NotificationRepository
}

func NewNotificationHandler(repo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

func (h *NotificationHandler) GetMine(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")

	notifications, err := h.repo.GetByStaff(staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil notifikasi"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil notifikasi",
		"data":    notifications,
	})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	if err := h.repo.MarkRead(uint(id), staffID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menandai notifikasi"})
	}
	return c.JSON(fiber.Map{"message": "Notifikasi ditandai terbaca"})
}
