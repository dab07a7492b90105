package repository

import (
	"workforce-backend/internal/model"

	"gorm.io/gorm"
)

type LeaveRepository interface {
	Create(leave *model.LeaveRequest) error
	GetByID(id uint) (*model.LeaveRequest, error)
	Update(leave *model.LeaveRequest) error
	GetByStaff(staffID uint) ([]model.LeaveRequest, error)
	GetPendingByManager(managerID uint) ([]model.LeaveRequest, error)
}

type leaveRepository struct {
	db *gorm.DB
}

func NewLeaveRepository(db *gorm.DB) LeaveRepository {
	return &leaveRepository{db}
}

func (r *leaveRepository) Create(leave *model.LeaveRequest) error {
	return r.db.Create(leave).Error
}

func (r *leaveRepository) GetByID(id uint) (*model.LeaveRequest, error) {
	var leave model.LeaveRequest
	err := r.db.Preload("Staff").First(&leave, id).Error
	if err != nil {
		return nil, err
	}
	return &leave, nil
}

func (r *leaveRepository) Update(leave *model.LeaveRequest) error {
	return r.db.Save(leave).Error
}

func (r *leaveRepository) GetByStaff(staffID uint) ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Where("staff_id = ?", staffID).Order("created_at desc").Find(&list).Error
	return list, err
}

// GetPendingByManager: pengajuan cuti bawahan langsung yang masih PENDING.
func (r *leaveRepository) GetPendingByManager(managerID uint) ([]model.LeaveRequest, error) {
	var list []model.LeaveRequest
	err := r.db.Preload("Staff").
		Joins("JOIN staffs ON staffs.id = leave_requests.staff_id").
		Where("leave_requests.status = ? AND staffs.manager_id = ?", model.ApprovalStatusPending, managerID).
		Order("leave_requests.created_at asc").Find(&list).Error
	return list, err
}
