package repository

import (
	"workforce-backend/internal/model"

	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(staff *model.Staff) error
	FindByID(id uint) (*model.Staff, error)
	FindByEmployeeNo(employeeNo string) (*model.Staff, error)
	Update(staff *model.Staff) error
	AddDevice(device *model.Device) error
	GetByStore(storeID uint) ([]model.Staff, error)
	FindManagersByCompany(companyID uint) ([]model.Staff, error)
	FindManagersByStore(storeID uint) ([]model.Staff, error)
}

type staffRepository struct {
	db *gorm.DB
}

func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db}
}

func (r *staffRepository) Create(staff *model.Staff) error {
	return r.db.Create(staff).Error
}

func (r *staffRepository) FindByID(id uint) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.Preload("Role").Preload("Company").Preload("Store").Preload("Manager").Preload("Devices").First(&staff, id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) FindByEmployeeNo(employeeNo string) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.Preload("Role").Preload("Company").Preload("Store").Preload("Devices").
		Where("employee_no = ?", employeeNo).First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepository) Update(staff *model.Staff) error {
	return r.db.Save(staff).Error
}

func (r *staffRepository) AddDevice(device *model.Device) error {
	return r.db.Create(device).Error
}

func (r *staffRepository) GetByStore(storeID uint) ([]model.Staff, error) {
	var list []model.Staff
	err := r.db.Preload("Role").Where("store_id = ? AND is_active = ?", storeID, true).Order("name asc").Find(&list).Error
	return list, err
}

// FindManagersByCompany: semua staff aktif dengan role Manager/Admin di satu company.
// Dipakai Sweeper untuk notifikasi ringkasan per company (bukan per record).
func (r *staffRepository) FindManagersByCompany(companyID uint) ([]model.Staff, error) {
	var list []model.Staff
	err := r.db.Joins("JOIN roles ON roles.id = staffs.role_id").
		Where("staffs.company_id = ? AND staffs.is_active = ? AND roles.name IN ?",
			companyID, true, []string{model.RoleManager, model.RoleAdmin}).
		Find(&list).Error
	return list, err
}

func (r *staffRepository) FindManagersByStore(storeID uint) ([]model.Staff, error) {
	var list []model.Staff
	err := r.db.Joins("JOIN roles ON roles.id = staffs.role_id").
		Where("staffs.store_id = ? AND staffs.is_active = ? AND roles.name IN ?",
			storeID, true, []string{model.RoleManager, model.RoleAdmin}).
		Find(&list).Error
	return list, err
}
