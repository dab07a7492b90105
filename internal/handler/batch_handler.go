package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"workforce-backend/internal/usecase"
)

// BatchHandler: entry point privileged untuk proses batch manual.
// Rutenya dikunci role Admin.
type BatchHandler struct {
	sweeper *usecase.Sweeper
	scanner *usecase.CorrectionScanner
}

func NewBatchHandler(sweeper *usecase.Sweeper, scanner *usecase.CorrectionScanner) *BatchHandler {
	return &BatchHandler{sweeper: sweeper, scanner: scanner}
}

type BackfillRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD, kosong = 30 hari lalu
	EndDate   string `json:"end_date"`   // YYYY-MM-DD, kosong = kemarin
}

// Backfill: tutup paksa record nyangkut dalam rentang tanggal.
func (h *BatchHandler) Backfill(c *fiber.Ctx) error {
	var req BackfillRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	result := h.sweeper.Backfill(req.StartDate, req.EndDate, time.Now())
	return c.JSON(fiber.Map{
		"message": "Backfill selesai",
		"data":    result,
	})
}

// RunSweep: jalankan pass sweeper harian di luar jadwal cron.
func (h *BatchHandler) RunSweep(c *fiber.Ctx) error {
	result := h.sweeper.Run(time.Now())
	return c.JSON(fiber.Map{
		"message": "Sweep selesai",
		"data":    result,
	})
}

// RunCorrectionScan: jalankan scan koreksi di luar jadwal cron.
func (h *BatchHandler) RunCorrectionScan(c *fiber.Ctx) error {
	result := h.scanner.Scan(time.Now())
	return c.JSON(fiber.Map{
		"message": "Scan koreksi selesai",
		"data":    result,
	})
}
