package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"workforce-backend/config"
	"workforce-backend/internal/repository"
)

type DashboardHandler struct {
	repo repository.DashboardRepository
}

func NewDashboardHandler(repo repository.DashboardRepository) *DashboardHandler {
	return &DashboardHandler{repo: repo}
}

// GetStats: ringkasan kehadiran store untuk layar utama manager.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	storeID := uint(c.QueryInt("store_id", int(localUint(c, "store_id"))))
	now := time.Now().In(config.OrgLocation())
	date := c.Query("date", now.Format("2006-01-02"))
	month := c.Query("month", now.Format("01"))
	year := c.Query("year", now.Format("2006"))

	stats, err := h.repo.GetDashboardStats(storeID, date, month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil statistik"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil statistik",
		"data":    stats,
	})
}
