package repository

import (
	"workforce-backend/internal/model"

	"gorm.io/gorm"
)

type TradeRepository interface {
	Create(trade *model.ShiftTradeRequest) error
	GetByID(id uint) (*model.ShiftTradeRequest, error)
	GetByStaff(staffID uint) ([]model.ShiftTradeRequest, error)
	GetAwaitingApprovalByCompany(companyID uint) ([]model.ShiftTradeRequest, error)
	ExistsOpenBySchedule(scheduleID uint) (bool, error)
	UpdateStatusIf(id uint, expectedStatus string, updates map[string]interface{}) (bool, error)
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db}
}

func (r *tradeRepository) Create(trade *model.ShiftTradeRequest) error {
	return r.db.Create(trade).Error
}

func (r *tradeRepository) GetByID(id uint) (*model.ShiftTradeRequest, error) {
	var trade model.ShiftTradeRequest
	err := r.db.Preload("Requester").Preload("Target").
		Preload("RequesterSchedule").Preload("TargetSchedule").
		First(&trade, id).Error
	if err != nil {
		return nil, err
	}
	return &trade, nil
}

func (r *tradeRepository) GetByStaff(staffID uint) ([]model.ShiftTradeRequest, error) {
	var list []model.ShiftTradeRequest
	err := r.db.Preload("Requester").Preload("Target").
		Preload("RequesterSchedule").Preload("TargetSchedule").
		Where("requester_id = ? OR target_id = ?", staffID, staffID).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *tradeRepository) GetAwaitingApprovalByCompany(companyID uint) ([]model.ShiftTradeRequest, error) {
	var list []model.ShiftTradeRequest
	err := r.db.Preload("Requester").Preload("Target").
		Preload("RequesterSchedule").Preload("TargetSchedule").
		Joins("JOIN staffs ON staffs.id = shift_trade_requests.requester_id").
		Where("shift_trade_requests.status = ? AND staffs.company_id = ?", model.TradeStatusAwaitingApproval, companyID).
		Order("shift_trade_requests.created_at asc").Find(&list).Error
	return list, err
}

// ExistsOpenBySchedule: maksimal satu request non-terminal per shift sumber.
func (r *tradeRepository) ExistsOpenBySchedule(scheduleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.ShiftTradeRequest{}).
		Where("requester_schedule_id = ? AND status IN ?", scheduleID,
			[]string{model.TradeStatusPending, model.TradeStatusAwaitingApproval}).
		Count(&count).Error
	return count > 0, err
}

// UpdateStatusIf: guard transisi optimistik. Update hanya jalan kalau status
// di DB masih sama dengan expectedStatus; dua writer yang balapan: yang kedua
// dapat RowsAffected 0 dan harus lapor Conflict, bukan menimpa diam-diam.
func (r *tradeRepository) UpdateStatusIf(id uint, expectedStatus string, updates map[string]interface{}) (bool, error) {
	result := r.db.Model(&model.ShiftTradeRequest{}).
		Where("id = ? AND status = ?", id, expectedStatus).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
