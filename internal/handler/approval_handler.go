package handler

import (
	"github.com/gofiber/fiber/v2"

	"workforce-backend/internal/model"
	"workforce-backend/internal/repository"
)

// ApprovalHandler: antrian persetujuan shift di luar jadwal (UNSCHEDULED).
type ApprovalHandler struct {
	repo           repository.ApprovalRepository
	attendanceRepo repository.AttendanceRepository
}

func NewApprovalHandler(repo repository.ApprovalRepository, attendanceRepo repository.AttendanceRepository) *ApprovalHandler {
	return &ApprovalHandler{repo: repo, attendanceRepo: attendanceRepo}
}

func (h *ApprovalHandler) GetPending(c *fiber.Ctx) error {
	companyID := localUint(c, "company_id")

	approvals, err := h.repo.GetPendingByCompany(companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil antrian persetujuan"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil antrian persetujuan",
		"data":    approvals,
	})
}

type DecideApprovalRequest struct {
	Approve bool   `json:"approve"`
	Comment string `json:"comment"`
}

// Decide: keputusan manager atas shift UNSCHEDULED. Approve menormalkan
// status record absensinya supaya masuk perhitungan gaji.
func (h *ApprovalHandler) Decide(c *fiber.Ctx) error {
	managerID := localUint(c, "user_id")
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req DecideApprovalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	approval, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Persetujuan tidak ditemukan"})
	}
	if approval.Status != model.ApprovalStatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Persetujuan sudah diproses"})
	}

	approval.Status = model.ApprovalStatusRejected
	if req.Approve {
		approval.Status = model.ApprovalStatusApproved
	}
	approval.ManagerID = &managerID
	approval.Comment = req.Comment
	if err := h.repo.Update(approval); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan keputusan"})
	}

	if req.Approve {
		record, err := h.attendanceRepo.GetByStaffAndDate(approval.StaffID, approval.WorkDate)
		if err == nil && record.Status == model.AttendanceStatusUnscheduled {
			record.Status = model.AttendanceStatusNormal
			record.SetExtensions(map[string]interface{}{
				"unscheduled_approved_by": managerID,
			})
			h.attendanceRepo.Update(record)
		}
	}

	return c.JSON(fiber.Map{
		"message": "Keputusan tersimpan",
		"data":    approval,
	})
}
