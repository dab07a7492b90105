package repository

import (
	"workforce-backend/internal/model"

	"gorm.io/gorm"
)

type ApprovalRepository interface {
	Create(approval *model.ShiftApproval) error
	GetByID(id uint) (*model.ShiftApproval, error)
	Update(approval *model.ShiftApproval) error
	GetPendingByCompany(companyID uint) ([]model.ShiftApproval, error)
	ExistsByStaffDateKind(staffID uint, workDate string, kind string) (bool, error)
}

type approvalRepository struct {
	db *gorm.DB
}

func NewApprovalRepository(db *gorm.DB) ApprovalRepository {
	return &approvalRepository{db}
}

func (r *approvalRepository) Create(approval *model.ShiftApproval) error {
	return r.db.Create(approval).Error
}

func (r *approvalRepository) GetByID(id uint) (*model.ShiftApproval, error) {
	var approval model.ShiftApproval
	err := r.db.Preload("Staff").First(&approval, id).Error
	if err != nil {
		return nil, err
	}
	return &approval, nil
}

func (r *approvalRepository) Update(approval *model.ShiftApproval) error {
	return r.db.Save(approval).Error
}

func (r *approvalRepository) GetPendingByCompany(companyID uint) ([]model.ShiftApproval, error) {
	var list []model.ShiftApproval
	err := r.db.Preload("Staff").
		Where("company_id = ? AND status = ?", companyID, model.ApprovalStatusPending).
		Order("created_at asc").Find(&list).Error
	return list, err
}

// ExistsByStaffDateKind: cegah approval request dobel untuk staff+tanggal yang sama.
func (r *approvalRepository) ExistsByStaffDateKind(staffID uint, workDate string, kind string) (bool, error) {
	var count int64
	err := r.db.Model(&model.ShiftApproval{}).
		Where("staff_id = ? AND work_date = ? AND kind = ?", staffID, workDate, kind).
		Count(&count).Error
	return count > 0, err
}
