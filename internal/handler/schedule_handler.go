package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"workforce-backend/config"
	"workforce-backend/internal/model"
	"workforce-backend/internal/repository"
)

type ScheduleHandler struct {
	repo      repository.ScheduleRepository
	staffRepo repository.StaffRepository
}

func NewScheduleHandler(repo repository.ScheduleRepository, staffRepo repository.StaffRepository) *ScheduleHandler {
	return &ScheduleHandler{repo: repo, staffRepo: staffRepo}
}

// GetMine: jadwal saya sebulan (?month=06&year=2024, default bulan berjalan).
func (h *ScheduleHandler) GetMine(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")
	now := time.Now().In(config.OrgLocation())
	month := c.Query("month", now.Format("01"))
	year := c.Query("year", now.Format("2006"))

	entries, err := h.repo.GetByStaffAndMonth(staffID, month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jadwal"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil jadwal",
		"data":    entries,
	})
}

// GetDaily: jadwal satu store per tanggal (tampilan manager).
func (h *ScheduleHandler) GetDaily(c *fiber.Ctx) error {
	date := c.Query("date", time.Now().In(config.OrgLocation()).Format("2006-01-02"))
	storeID := uint(c.QueryInt("store_id", int(localUint(c, "store_id"))))

	entries, err := h.repo.GetByDateAndStore(date, storeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil jadwal"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil jadwal harian",
		"data":    entries,
	})
}

type CreateScheduleRequest struct {
	StaffID      uint   `json:"staff_id"`
	WorkDate     string `json:"work_date"`  // YYYY-MM-DD
	StartTime    string `json:"start_time"` // HH:MM
	EndTime      string `json:"end_time"`   // HH:MM
	BreakMinutes int    `json:"break_minutes"`
}

// Create: entry jadwal manual oleh manager, di luar pola kontrak.
func (h *ScheduleHandler) Create(c *fiber.Ctx) error {
	var req CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	staff, err := h.staffRepo.FindByID(req.StaffID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data staff tidak ditemukan"})
	}

	loc := config.OrgLocation()
	day, err := time.ParseInLocation("2006-01-02", req.WorkDate, loc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Tanggal tidak valid (format YYYY-MM-DD)"})
	}
	start, errStart := time.ParseInLocation("2006-01-02 15:04", req.WorkDate+" "+req.StartTime, loc)
	end, errEnd := time.ParseInLocation("2006-01-02 15:04", req.WorkDate+" "+req.EndTime, loc)
	if errStart != nil || errEnd != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Jam tidak valid (format HH:MM)"})
	}
	// Jam pulang <= jam masuk berarti shift lintas hari
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	entry := model.ScheduleEntry{
		StaffID:      staff.ID,
		CompanyID:    staff.CompanyID,
		BrandID:      staff.BrandID,
		StoreID:      staff.StoreID,
		WorkDate:     day.Format("2006-01-02"),
		StartTime:    start,
		EndTime:      end,
		BreakMinutes: req.BreakMinutes,
		Status:       model.ScheduleStatusScheduled,
		GeneratedBy:  model.ScheduleSourceManual,
	}
	if err := h.repo.Upsert(&entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan jadwal"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Jadwal %s untuk %s berhasil dibuat", entry.WorkDate, staff.Name),
		"data":    entry,
	})
}

// Cancel: batalkan satu entry jadwal (soft, statusnya jadi CANCELLED).
func (h *ScheduleHandler) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID jadwal tidak valid"})
	}

	entry, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Jadwal tidak ditemukan"})
	}

	entry.Status = model.ScheduleStatusCancelled
	if err := h.repo.Update(entry); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membatalkan jadwal"})
	}
	return c.JSON(fiber.Map{
		"message": "Jadwal dibatalkan",
		"data":    entry,
	})
}
