package repository

import (
	"workforce-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository interface {
	Upsert(record *model.AttendanceRecord) error
	Update(record *model.AttendanceRecord) error
	GetByID(id uint) (*model.AttendanceRecord, error)
	GetByStaffAndDate(staffID uint, date string) (*model.AttendanceRecord, error)
	GetHistory(staffID uint) ([]model.AttendanceRecord, error)
	GetByStaffAndMonth(staffID uint, month string, year string) ([]model.AttendanceRecord, error)
	GetByStoreAndMonth(storeID uint, month string, year string) ([]model.AttendanceRecord, error)
	GetByDate(date string) ([]model.AttendanceRecord, error)
	GetOpenBefore(date string) ([]model.AttendanceRecord, error)
	GetOpenByDate(date string) ([]model.AttendanceRecord, error)
	GetOpenInRange(startDate string, endDate string) ([]model.AttendanceRecord, error)
	CountByStoreDateAndStatus(storeID uint, date string, status string) (int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

// Upsert keyed (staff_id, work_date): check-in berulang/konkuren konvergen, bukan duplikat.
func (r *attendanceRepository) Upsert(record *model.AttendanceRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "staff_id"}, {Name: "work_date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"scheduled_check_in", "scheduled_check_out", "actual_check_in", "actual_check_out",
			"break_minutes", "status", "work_hours", "overtime_hours", "night_hours",
			"extensions", "updated_at",
		}),
	}).Create(record).Error
}

func (r *attendanceRepository) Update(record *model.AttendanceRecord) error {
	return r.db.Save(record).Error
}

func (r *attendanceRepository) GetByID(id uint) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *attendanceRepository) GetByStaffAndDate(staffID uint, date string) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	// Gunakan Find + Limit(1) agar GORM tidak mencetak log error "record not found"
	err := r.db.Where("staff_id = ? AND work_date = ?", staffID, date).Limit(1).Find(&record).Error
	if err != nil {
		return nil, err
	}
	if record.ID == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &record, nil
}

func (r *attendanceRepository) GetHistory(staffID uint) ([]model.AttendanceRecord, error) {
	var history []model.AttendanceRecord
	err := r.db.Where("staff_id = ?", staffID).Order("work_date desc").Find(&history).Error
	return history, err
}

func (r *attendanceRepository) GetByStaffAndMonth(staffID uint, month string, year string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	datePattern := year + "-" + month + "%"
	err := r.db.Where("staff_id = ? AND work_date LIKE ?", staffID, datePattern).
		Order("work_date asc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByStoreAndMonth(storeID uint, month string, year string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	datePattern := year + "-" + month + "%"
	err := r.db.Preload("Staff").
		Where("store_id = ? AND work_date LIKE ?", storeID, datePattern).
		Order("staff_id asc, work_date asc").Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetByDate(date string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	err := r.db.Where("work_date = ?", date).Find(&list).Error
	return list, err
}

// GetOpenBefore: record nyangkut (sudah check-in, belum check-out) sebelum tanggal tertentu.
// Guard actual_check_out IS NULL bikin sweep idempoten: run kedua tidak dapat apa-apa.
func (r *attendanceRepository) GetOpenBefore(date string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	err := r.db.Where("actual_check_in IS NOT NULL AND actual_check_out IS NULL AND work_date < ?", date).
		Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetOpenByDate(date string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	err := r.db.Where("actual_check_in IS NOT NULL AND actual_check_out IS NULL AND work_date = ?", date).
		Find(&list).Error
	return list, err
}

func (r *attendanceRepository) GetOpenInRange(startDate string, endDate string) ([]model.AttendanceRecord, error) {
	var list []model.AttendanceRecord
	err := r.db.Where("actual_check_in IS NOT NULL AND actual_check_out IS NULL AND work_date >= ? AND work_date <= ?",
		startDate, endDate).Find(&list).Error
	return list, err
}

func (r *attendanceRepository) CountByStoreDateAndStatus(storeID uint, date string, status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.AttendanceRecord{}).
		Where("store_id = ? AND work_date = ? AND status = ?", storeID, date, status).
		Count(&count).Error
	return count, err
}
