package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"workforce-backend/config"
	"workforce-backend/internal/model"
	"workforce-backend/internal/repository"
)

type CorrectionHandler struct {
	repo           repository.CorrectionRepository
	attendanceRepo repository.AttendanceRepository
}

func NewCorrectionHandler(repo repository.CorrectionRepository, attendanceRepo repository.AttendanceRepository) *CorrectionHandler {
	return &CorrectionHandler{repo: repo, attendanceRepo: attendanceRepo}
}

func (h *CorrectionHandler) GetMine(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")

	requests, err := h.repo.GetByStaff(staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data koreksi"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data koreksi",
		"data":    requests,
	})
}

type FillCorrectionRequest struct {
	Reason            string `json:"reason"`
	RequestedCheckIn  string `json:"requested_check_in"`  // RFC3339, opsional
	RequestedCheckOut string `json:"requested_check_out"` // RFC3339, opsional
}

// Fill: pegawai isi alasan (dan usulan jam) pada request yang dibuat scanner.
func (h *CorrectionHandler) Fill(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req FillCorrectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}
	if req.Reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Alasan wajib diisi"})
	}

	request, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data koreksi tidak ditemukan"})
	}
	if request.StaffID != staffID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Bukan data koreksi Anda"})
	}
	if request.Status != model.CorrectionStatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Data koreksi sudah diproses"})
	}

	request.Reason = req.Reason
	if req.RequestedCheckIn != "" {
		t, err := time.Parse(time.RFC3339, req.RequestedCheckIn)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "requested_check_in tidak valid"})
		}
		request.RequestedCheckIn = &t
	}
	if req.RequestedCheckOut != "" {
		t, err := time.Parse(time.RFC3339, req.RequestedCheckOut)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "requested_check_out tidak valid"})
		}
		request.RequestedCheckOut = &t
	}

	if err := h.repo.Update(request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan koreksi"})
	}
	return c.JSON(fiber.Map{
		"message": "Alasan koreksi tersimpan, menunggu keputusan manager",
		"data":    request,
	})
}

// GetPending: daftar koreksi PENDING satu company (tampilan manager).
func (h *CorrectionHandler) GetPending(c *fiber.Ctx) error {
	companyID := localUint(c, "company_id")

	requests, err := h.repo.GetPendingByCompany(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data koreksi"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data koreksi pending",
		"data":    requests,
	})
}

type DecideCorrectionRequest struct {
	Approve bool   `json:"approve"`
	Comment string `json:"comment"`
}

// Decide: keputusan manager. Approve menerapkan jam usulan ke record
// absensi (kalau ada usulan).
func (h *CorrectionHandler) Decide(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req DecideCorrectionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	request, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Data koreksi tidak ditemukan"})
	}
	if request.Status != model.CorrectionStatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Data koreksi sudah diproses"})
	}

	if !req.Approve {
		request.Status = model.CorrectionStatusRejected
		if err := h.repo.Update(request); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan keputusan"})
		}
		return c.JSON(fiber.Map{"message": "Koreksi ditolak", "data": request})
	}

	request.Status = model.CorrectionStatusApproved
	if err := h.repo.Update(request); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan keputusan"})
	}

	// Terapkan jam usulan ke record absensi
	if request.RequestedCheckIn != nil || request.RequestedCheckOut != nil {
		record, err := h.attendanceRepo.GetByID(request.AttendanceID)
		if err == nil {
			if request.RequestedCheckIn != nil {
				record.ActualCheckIn = request.RequestedCheckIn
			}
			if request.RequestedCheckOut != nil {
				record.ActualCheckOut = request.RequestedCheckOut
			}
			record.SetExtensions(map[string]interface{}{
				"corrected_by_request": request.ID,
				"corrected_at":         time.Now().In(config.OrgLocation()).Format(time.RFC3339),
			})
			h.attendanceRepo.Update(record)
		}
	}

	return c.JSON(fiber.Map{"message": "Koreksi disetujui", "data": request})
}
