package repository

import (
	"workforce-backend/internal/model"

	"gorm.io/gorm"
)

type CorrectionRepository interface {
	Create(request *model.CorrectionRequest) error
	GetByID(id uint) (*model.CorrectionRequest, error)
	Update(request *model.CorrectionRequest) error
	GetByStaff(staffID uint) ([]model.CorrectionRequest, error)
	GetPendingByCompany(companyID uint) ([]model.CorrectionRequest, error)
	ExistsByAttendanceAndType(attendanceID uint, requestType string) (bool, error)
}

type correctionRepository struct {
	db *gorm.DB
}

func NewCorrectionRepository(db *gorm.DB) CorrectionRepository {
	return &correctionRepository{db}
}

func (r *correctionRepository) Create(request *model.CorrectionRequest) error {
	return r.db.Create(request).Error
}

func (r *correctionRepository) GetByID(id uint) (*model.CorrectionRequest, error) {
	var request model.CorrectionRequest
	err := r.db.Preload("Attendance").First(&request, id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *correctionRepository) Update(request *model.CorrectionRequest) error {
	return r.db.Save(request).Error
}

func (r *correctionRepository) GetByStaff(staffID uint) ([]model.CorrectionRequest, error) {
	var list []model.CorrectionRequest
	err := r.db.Preload("Attendance").Where("staff_id = ?", staffID).
		Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *correctionRepository) GetPendingByCompany(companyID uint) ([]model.CorrectionRequest, error) {
	var list []model.CorrectionRequest
	err := r.db.Preload("Staff").Preload("Attendance").
		Joins("JOIN staffs ON staffs.id = correction_requests.staff_id").
		Where("correction_requests.status = ? AND staffs.company_id = ?", model.CorrectionStatusPending, companyID).
		Order("correction_requests.created_at asc").Find(&list).Error
	return list, err
}

// ExistsByAttendanceAndType: dedup: maksimal satu request per (attendance_id, request_type).
func (r *correctionRepository) ExistsByAttendanceAndType(attendanceID uint, requestType string) (bool, error) {
	var count int64
	err := r.db.Model(&model.CorrectionRequest{}).
		Where("attendance_id = ? AND request_type = ?", attendanceID, requestType).
		Count(&count).Error
	return count > 0, err
}
