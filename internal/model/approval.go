package model

import "gorm.io/gorm"

const (
	ApprovalStatusPending  = "PENDING"
	ApprovalStatusApproved = "APPROVED"
	ApprovalStatusRejected = "REJECTED"
)

const (
	ApprovalKindUnscheduledShift = "UNSCHEDULED_SHIFT"
)

// ShiftApproval: permintaan persetujuan manager, dibuat otomatis saat
// check-in tanpa jadwal (agar shift tetap bisa dibayar setelah disetujui).
type ShiftApproval struct {
	gorm.Model
	StaffID   uint   `json:"staff_id"`
	CompanyID uint   `json:"company_id"`
	WorkDate  string `json:"work_date"` // Format YYYY-MM-DD
	Kind      string `json:"kind"`      // UNSCHEDULED_SHIFT
	Status    string `json:"status" gorm:"default:PENDING"`
	ManagerID *uint  `json:"manager_id"`
	Comment   string `json:"comment"`

	// Relasi
	Staff Staff `gorm:"foreignKey:StaffID" json:"staff"`
}

// LeaveRequest: pengajuan cuti/izin. Approval manager menandai record
// absensi pada rentang tanggal tersebut dengan status VACATION.
type LeaveRequest struct {
	gorm.Model
	StaffID   uint   `json:"staff_id"`
	StartDate string `json:"start_date"` // Format YYYY-MM-DD
	EndDate   string `json:"end_date"`
	LeaveType string `json:"leave_type"` // Tahunan, Sakit, dll
	Reason    string `json:"reason"`
	Status    string `json:"status" gorm:"default:PENDING"`
	ManagerID *uint  `json:"manager_id"`
	Comment   string `json:"comment"`

	// Relasi
	Staff Staff `gorm:"foreignKey:StaffID" json:"staff"`
}
