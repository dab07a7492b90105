package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"workforce-backend/config"
	"workforce-backend/internal/model"
	"workforce-backend/internal/notification"
	"workforce-backend/internal/repository"
)

type LeaveHandler struct {
	repo           repository.LeaveRepository
	staffRepo      repository.StaffRepository
	attendanceRepo repository.AttendanceRepository
	notifier       notification.Gateway
}

func NewLeaveHandler(
	repo repository.LeaveRepository,
	staffRepo repository.StaffRepository,
	attendanceRepo repository.AttendanceRepository,
	notifier notification.Gateway,
) *LeaveHandler {
	return &LeaveHandler{repo: repo, staffRepo: staffRepo, attendanceRepo: attendanceRepo, notifier: notifier}
}

type CreateLeaveRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD
	EndDate   string `json:"end_date"`
	LeaveType string `json:"leave_type"`
	Reason    string `json:"reason"`
}

func (h *LeaveHandler) Create(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")

	var req CreateLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	loc := config.OrgLocation()
	start, errStart := time.ParseInLocation("2006-01-02", req.StartDate, loc)
	end, errEnd := time.ParseInLocation("2006-01-02", req.EndDate, loc)
	if errStart != nil || errEnd != nil || end.Before(start) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rentang tanggal tidak valid"})
	}

	leave := model.LeaveRequest{
		StaffID:   staffID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		LeaveType: req.LeaveType,
		Reason:    req.Reason,
		Status:    model.ApprovalStatusPending,
	}
	if err := h.repo.Create(&leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan pengajuan"})
	}

	// Beritahu atasan langsung (kalau ada)
	staff, err := h.staffRepo.FindByID(staffID)
	if err == nil && staff.ManagerID != nil {
		h.notifier.Send(*staff.ManagerID, notification.Intent{
			Title:    "Pengajuan cuti baru",
			Body:     fmt.Sprintf("%s mengajukan %s dari %s sampai %s.", staff.Name, req.LeaveType, req.StartDate, req.EndDate),
			Category: model.NotificationCategoryLeave,
			DeepLink: fmt.Sprintf("/leaves/%d", leave.ID),
			Actions:  []string{"APPROVE", "REJECT"},
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Pengajuan cuti terkirim",
		"data":    leave,
	})
}

func (h *LeaveHandler) GetMine(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")

	leaves, err := h.repo.GetByStaff(staffID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data cuti"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil data cuti",
		"data":    leaves,
	})
}

// GetPending: pengajuan yang menunggu keputusan saya sebagai atasan.
func (h *LeaveHandler) GetPending(c *fiber.Ctx) error {
	managerID := localUint(c, "user_id")

	leaves, err := h.repo.GetPendingByManager(managerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data cuti"})
	}
	return c.JSON(fiber.Map{
		"message": "Berhasil mengambil pengajuan cuti",
		"data":    leaves,
	})
}

type DecideLeaveRequest struct {
	Approve bool   `json:"approve"`
	Comment string `json:"comment"`
}

// Decide: approve menandai record absensi VACATION untuk tiap tanggal
// dalam rentang cuti, sehingga check-in di hari itu ditolak.
func (h *LeaveHandler) Decide(c *fiber.Ctx) error {
	managerID := localUint(c, "user_id")
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "ID tidak valid"})
	}

	var req DecideLeaveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	leave, err := h.repo.GetByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pengajuan tidak ditemukan"})
	}
	if leave.Status != model.ApprovalStatusPending {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Pengajuan sudah diproses"})
	}

	leave.Status = model.ApprovalStatusRejected
	if req.Approve {
		leave.Status = model.ApprovalStatusApproved
	}
	leave.ManagerID = &managerID
	leave.Comment = req.Comment
	if err := h.repo.Update(leave); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyimpan keputusan"})
	}

	if req.Approve {
		h.markVacation(leave)
	}

	h.notifier.Send(leave.StaffID, notification.Intent{
		Title:    "Keputusan cuti",
		Body:     fmt.Sprintf("Pengajuan cuti Anda %s.", statusLabel(leave.Status)),
		Category: model.NotificationCategoryLeave,
		DeepLink: fmt.Sprintf("/leaves/%d", leave.ID),
	})

	return c.JSON(fiber.Map{
		"message": "Keputusan tersimpan",
		"data":    leave,
	})
}

func (h *LeaveHandler) markVacation(leave *model.LeaveRequest) {
	loc := config.OrgLocation()
	start, errStart := time.ParseInLocation("2006-01-02", leave.StartDate, loc)
	end, errEnd := time.ParseInLocation("2006-01-02", leave.EndDate, loc)
	if errStart != nil || errEnd != nil {
		return
	}

	staff, err := h.staffRepo.FindByID(leave.StaffID)
	if err != nil {
		return
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		record := model.AttendanceRecord{
			StaffID:   leave.StaffID,
			CompanyID: staff.CompanyID,
			StoreID:   staff.StoreID,
			WorkDate:  d.Format("2006-01-02"),
			Status:    model.AttendanceStatusVacation,
		}
		record.SetExtensions(map[string]interface{}{
			"leave_request_id": leave.ID,
			"leave_type":       leave.LeaveType,
		})
		h.attendanceRepo.Upsert(&record)
	}
}

func statusLabel(status string) string {
	if status == model.ApprovalStatusApproved {
		return "disetujui"
	}
	return "ditolak"
}
