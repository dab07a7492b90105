package model

import "gorm.io/gorm"

const (
	TradeStatusPending          = "PENDING"
	TradeStatusRejected         = "REJECTED"
	TradeStatusAwaitingApproval = "AWAITING_APPROVAL"
	TradeStatusApproved         = "APPROVED"
	TradeStatusManagerRejected  = "MANAGER_REJECTED"
)

type ShiftTradeRequest struct {
	gorm.Model
	RequesterID         uint   `json:"requester_id"`
	RequesterScheduleID uint   `json:"requester_schedule_id"`
	TargetID            uint   `json:"target_id"`
	TargetScheduleID    uint   `json:"target_schedule_id"`
	Reason              string `json:"reason"`

	Status                  string `json:"status" gorm:"default:PENDING"`
	RequiresManagerApproval bool   `json:"requires_manager_approval"`
	ResponseComment         string `json:"response_comment"`
	ManagerID               *uint  `json:"manager_id"`
	ManagerComment          string `json:"manager_comment"`

	// Relasi
	Requester         Staff         `gorm:"foreignKey:RequesterID" json:"requester"`
	Target            Staff         `gorm:"foreignKey:TargetID" json:"target"`
	RequesterSchedule ScheduleEntry `gorm:"foreignKey:RequesterScheduleID" json:"requester_schedule"`
	TargetSchedule    ScheduleEntry `gorm:"foreignKey:TargetScheduleID" json:"target_schedule"`
}

// IsTerminal: status yang tidak bisa berubah lagi.
func (t *ShiftTradeRequest) IsTerminal() bool {
	switch t.Status {
	case TradeStatusRejected, TradeStatusApproved, TradeStatusManagerRejected:
		return true
	}
	return false
}
