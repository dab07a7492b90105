package model

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ContractStatusDraft      = "DRAFT"
	ContractStatusSigned     = "SIGNED"
	ContractStatusTerminated = "TERMINATED"
)

type Contract struct {
	gorm.Model
	StaffID   uint `json:"staff_id"`
	CompanyID uint `json:"company_id"`
	BrandID   uint `json:"brand_id"`
	StoreID   uint `json:"store_id"`

	Position  string `json:"position"`
	StartDate string `json:"start_date"`          // Format YYYY-MM-DD
	EndDate   string `json:"end_date"`            // Kosong = default start + 3 bulan
	Status    string `json:"status" gorm:"default:DRAFT"`

	// Pola kerja mingguan, disimpan sebagai JSON:
	// [{"days_of_week":[1,3,5],"start_time":"09:00","end_time":"18:00","break_minutes":60}]
	WorkSchedules datatypes.JSON `json:"work_schedules"`

	// Relasi
	Staff Staff `gorm:"foreignKey:StaffID" json:"staff"`
}

// WorkPatternEntry adalah satu baris pola kerja mingguan.
// Validasi dilakukan di boundary ingestion (handler), bukan di core.
type WorkPatternEntry struct {
	DaysOfWeek   []int  `json:"days_of_week" validate:"required,min=1,dive,min=0,max=6"` // 0=Minggu .. 6=Sabtu
	StartTime    string `json:"start_time" validate:"required,len=5"`                    // Format HH:MM
	EndTime      string `json:"end_time" validate:"required,len=5"`
	BreakMinutes int    `json:"break_minutes" validate:"min=0"`
}

// WorkPattern parse kolom JSON work_schedules menjadi struct bertipe.
func (c *Contract) WorkPattern() ([]WorkPatternEntry, error) {
	var pattern []WorkPatternEntry
	if len(c.WorkSchedules) == 0 {
		return pattern, nil
	}
	if err := json.Unmarshal(c.WorkSchedules, &pattern); err != nil {
		return nil, err
	}
	return pattern, nil
}
