package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	CorrectionTypeLateCheckIn   = "LATE_CHECKIN"
	CorrectionTypeEarlyCheckOut = "EARLY_CHECKOUT"
)

const (
	CorrectionStatusPending  = "PENDING"
	CorrectionStatusApproved = "APPROVED"
	CorrectionStatusRejected = "REJECTED"
)

type CorrectionRequest struct {
	gorm.Model
	AttendanceID uint   `json:"attendance_id"`
	StaffID      uint   `json:"staff_id"`
	RequestType  string `json:"request_type"` // LATE_CHECKIN / EARLY_CHECKOUT

	OriginalCheckIn   *time.Time `json:"original_check_in"`
	OriginalCheckOut  *time.Time `json:"original_check_out"`
	RequestedCheckIn  *time.Time `json:"requested_check_in"`
	RequestedCheckOut *time.Time `json:"requested_check_out"`

	Reason           string `json:"reason"` // Kosong saat auto-generate, diisi pegawai
	Status           string `json:"status" gorm:"default:PENDING"`
	AutoGenerated    bool   `json:"auto_generated"`
	NotificationSent bool   `json:"notification_sent"`

	// Relasi
	Staff      Staff            `gorm:"foreignKey:StaffID" json:"staff"`
	Attendance AttendanceRecord `gorm:"foreignKey:AttendanceID" json:"attendance"`
}
