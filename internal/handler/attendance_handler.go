package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"workforce-backend/config"
	"workforce-backend/internal/repository"
	"workforce-backend/internal/usecase"
)

type AttendanceHandler struct {
	svc  *usecase.AttendanceService
	repo repository.AttendanceRepository
}

func NewAttendanceHandler(svc *usecase.AttendanceService, repo repository.AttendanceRepository) *AttendanceHandler {
	return &AttendanceHandler{svc: svc, repo: repo}
}

func (h *AttendanceHandler) CheckIn(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")

	record, err := h.svc.CheckIn(staffID, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Check-in berhasil",
		"data":    record,
	})
}

func (h *AttendanceHandler) CheckOut(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")

	record, err := h.svc.CheckOut(staffID, time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Check-out berhasil",
		"data": fiber.Map{
			"record":         record,
			"work_hours":     record.WorkHours,
			"overtime_hours": record.OvertimeHours,
			"night_hours":    record.NightHours,
		},
	})
}

func (h *AttendanceHandler) GetToday(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")
	today := time.Now().In(config.OrgLocation()).Format("2006-01-02")

	record, err := h.repo.GetByStaffAndDate(staffID, today)
	if err != nil {
		return c.JSON(fiber.Map{
			"message": "Belum ada absensi hari ini",
			"data":    nil,
		})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil absensi hari ini",
		"data":    record,
	})
}

func (h *AttendanceHandler) GetHistory(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")

	// Filter opsional per bulan (?month=06&year=2024)
	month := c.Query("month")
	year := c.Query("year")
	if month != "" && year != "" {
		records, err := h.repo.GetByStaffAndMonth(staffID, month, year)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat"})
		}
		return c.JSON(fiber.Map{
			"message": "Berhasil mengambil riwayat absensi",
			"data":    records,
		})
	}

	records, err := h.repo.GetHistory(staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil riwayat absensi",
		"data":    records,
	})
}
