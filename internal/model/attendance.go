package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AttendanceStatusWorking      = "WORKING" // Provisional: masih bekerja, diresolve saat checkout
	AttendanceStatusUnscheduled  = "UNSCHEDULED"
	AttendanceStatusEarlyCheckIn = "EARLY_CHECK_IN"
	AttendanceStatusLate         = "LATE"
	AttendanceStatusNormal       = "NORMAL"
	AttendanceStatusOvertime     = "OVERTIME"
	AttendanceStatusEarlyLeave   = "EARLY_LEAVE"
	AttendanceStatusAbsent       = "ABSENT"
	AttendanceStatusVacation     = "VACATION"
)

type AttendanceRecord struct {
	gorm.Model
	StaffID   uint   `json:"staff_id" gorm:"uniqueIndex:idx_attendance_staff_date"`
	CompanyID uint   `json:"company_id"`
	StoreID   uint   `json:"store_id"`
	WorkDate  string `json:"work_date" gorm:"uniqueIndex:idx_attendance_staff_date"` // Format YYYY-MM-DD

	ScheduledCheckIn  *time.Time `json:"scheduled_check_in"`
	ScheduledCheckOut *time.Time `json:"scheduled_check_out"`
	ActualCheckIn     *time.Time `json:"actual_check_in"`
	ActualCheckOut    *time.Time `json:"actual_check_out"`
	BreakMinutes      int        `json:"break_minutes"` // Diresolve dari jadwal/kontrak saat check-in

	Status        string  `json:"status"`
	WorkHours     float64 `json:"work_hours"`
	OvertimeHours float64 `json:"overtime_hours"`
	NightHours    float64 `json:"night_hours"`

	// Metadata audit (siapa/apa yang menutup record dan kenapa)
	Extensions datatypes.JSON `json:"extensions"`

	// Relasi
	Staff Staff `gorm:"foreignKey:StaffID" json:"staff"`
}

// SetExtensions merge key-value audit ke kolom extensions tanpa menghapus isi lama.
func (a *AttendanceRecord) SetExtensions(kv map[string]interface{}) {
	ext := map[string]interface{}{}
	if len(a.Extensions) > 0 {
		json.Unmarshal(a.Extensions, &ext)
	}
	for k, v := range kv {
		ext[k] = v
	}
	raw, err := json.Marshal(ext)
	if err != nil {
		return
	}
	a.Extensions = raw
}
