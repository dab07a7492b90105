package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	ScheduleStatusScheduled = "SCHEDULED"
	ScheduleStatusConfirmed = "CONFIRMED"
	ScheduleStatusCompleted = "COMPLETED"
	ScheduleStatusCancelled = "CANCELLED"
)

const (
	ScheduleSourceContract = "CONTRACT"
	ScheduleSourceManual   = "MANUAL"
)

type ScheduleEntry struct {
	gorm.Model
	StaffID   uint `json:"staff_id" gorm:"uniqueIndex:idx_schedule_staff_date_source"`
	CompanyID uint `json:"company_id"`
	BrandID   uint `json:"brand_id"`
	StoreID   uint `json:"store_id"`

	WorkDate     string    `json:"work_date" gorm:"uniqueIndex:idx_schedule_staff_date_source"` // Format YYYY-MM-DD (timezone organisasi)
	StartTime    time.Time `json:"start_time" gorm:"uniqueIndex:idx_schedule_staff_date_source"` // Ikut unique index agar split shift (pola overlap) tetap boleh
	EndTime      time.Time `json:"end_time"`
	BreakMinutes int       `json:"break_minutes"`
	Status       string    `json:"status" gorm:"default:SCHEDULED"`
	GeneratedBy  string    `json:"generated_by" gorm:"uniqueIndex:idx_schedule_staff_date_source"` // CONTRACT / MANUAL

	// Lineage tukar shift (diisi HANYA oleh Shift Trade Workflow)
	TradedFromID    *uint `json:"traded_from_id"`
	OriginalStaffID *uint `json:"original_staff_id"`

	// Relasi
	Staff Staff `gorm:"foreignKey:StaffID" json:"staff"`
}
