package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"workforce-backend/config"
	"workforce-backend/internal/model"
	"workforce-backend/internal/repository"
)

type ReportHandler struct {
	attendanceRepo repository.AttendanceRepository
	staffRepo      repository.StaffRepository
}

func NewReportHandler(attendanceRepo repository.AttendanceRepository, staffRepo repository.StaffRepository) *ReportHandler {
	return &ReportHandler{attendanceRepo: attendanceRepo, staffRepo: staffRepo}
}

type staffReportRow struct {
	StaffID       uint    `json:"staff_id"`
	Name          string  `json:"name"`
	EmployeeNo    string  `json:"employee_no"`
	DaysPresent   int     `json:"days_present"`
	DaysLate      int     `json:"days_late"`
	WorkHours     float64 `json:"work_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	NightHours    float64 `json:"night_hours"`
}

// GetMonthly: rekap jam kerja per pegawai untuk satu store dalam sebulan.
// Basis data penggajian, dihitung dari record absensi yang sudah tertutup.
func (h *ReportHandler) GetMonthly(c *fiber.Ctx) error {
	storeID := uint(c.QueryInt("store_id", int(localUint(c, "store_id"))))
	now := time.Now().In(config.OrgLocation())
	month := c.Query("month", now.Format("01"))
	year := c.Query("year", now.Format("2006"))

	records, err := h.attendanceRepo.GetByStoreAndMonth(storeID, month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data absensi"})
	}

	rows := map[uint]*staffReportRow{}
	for _, r := range records {
		row, ok := rows[r.StaffID]
		if !ok {
			row = &staffReportRow{StaffID: r.StaffID}
			if staff, err := h.staffRepo.FindByID(r.StaffID); err == nil {
				row.Name = staff.Name
				row.EmployeeNo = staff.EmployeeNo
			}
			rows[r.StaffID] = row
		}
		if r.ActualCheckIn != nil {
			row.DaysPresent++
		}
		if r.Status == model.AttendanceStatusLate {
			row.DaysLate++
		}
		row.WorkHours += r.WorkHours
		row.OvertimeHours += r.OvertimeHours
		row.NightHours += r.NightHours
	}

	report := make([]staffReportRow, 0, len(rows))
	for _, row := range rows {
		report = append(report, *row)
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil membuat rekap bulanan",
		"data": fiber.Map{
			"store_id": storeID,
			"month":    month,
			"year":     year,
			"rows":     report,
		},
	})
}

// GetMine: rekap bulanan pegawai yang sedang login.
func (h *ReportHandler) GetMine(c *fiber.Ctx) error {
	staffID := localUint(c, "user_id")
	now := time.Now().In(config.OrgLocation())
	month := c.Query("month", now.Format("01"))
	year := c.Query("year", now.Format("2006"))

	records, err := h.attendanceRepo.GetByStaffAndMonth(staffID, month, year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data absensi"})
	}

	summary := staffReportRow{StaffID: staffID}
	for _, r := range records {
		if r.ActualCheckIn != nil {
			summary.DaysPresent++
		}
		if r.Status == model.AttendanceStatusLate {
			summary.DaysLate++
		}
		summary.WorkHours += r.WorkHours
		summary.OvertimeHours += r.OvertimeHours
		summary.NightHours += r.NightHours
	}

	return c.JSON(fiber.Map{
		"message": "Berhasil membuat rekap bulanan",
		"data": fiber.Map{
			"month":   month,
			"year":    year,
			"summary": summary,
			"records": records,
		},
	})
}
