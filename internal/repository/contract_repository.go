package repository

import (
	"workforce-backend/internal/model"

	"gorm.io/gorm"
)

type ContractRepository interface {
	Create(contract *model.Contract) error
	GetByID(id uint) (*model.Contract, error)
	Update(contract *model.Contract) error
	GetByStaff(staffID uint) ([]model.Contract, error)
	GetActiveByStaffAndDate(staffID uint, date string) (*model.Contract, error)
}

type contractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db}
}

func (r *contractRepository) Create(contract *model.Contract) error {
	return r.db.Create(contract).Error
}

func (r *contractRepository) GetByID(id uint) (*model.Contract, error) {
	var contract model.Contract
	err := r.db.Preload("Staff").First(&contract, id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) Update(contract *model.Contract) error {
	return r.db.Save(contract).Error
}

func (r *contractRepository) GetByStaff(staffID uint) ([]model.Contract, error) {
	var list []model.Contract
	err := r.db.Where("staff_id = ?", staffID).Order("start_date desc").Find(&list).Error
	return list, err
}

// GetActiveByStaffAndDate: kontrak SIGNED yang mencakup tanggal tertentu.
// Dipakai Attendance Recorder sebagai fallback resolusi jadwal (pola mingguan).
func (r *contractRepository) GetActiveByStaffAndDate(staffID uint, date string) (*model.Contract, error) {
	var contract model.Contract
	// Gunakan Find + Limit(1) agar GORM tidak mencetak log error "record not found"
	err := r.db.Where("staff_id = ? AND status = ? AND start_date <= ? AND (end_date = '' OR end_date >= ?)",
		staffID, model.ContractStatusSigned, date, date).
		Order("start_date desc").Limit(1).Find(&contract).Error
	if err != nil {
		return nil, err
	}
	if contract.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &contract, nil
}
