package repository

import (
	"workforce-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScheduleRepository interface {
	Create(entry *model.ScheduleEntry) error
	GetByID(id uint) (*model.ScheduleEntry, error)
	Update(entry *model.ScheduleEntry) error
	GetByStaffAndDate(staffID uint, date string) ([]model.ScheduleEntry, error)
	GetByDateAndStore(date string, storeID uint) ([]model.ScheduleEntry, error)
	GetByStaffAndMonth(staffID uint, month string, year string) ([]model.ScheduleEntry, error)
	UpsertBatch(entries []model.ScheduleEntry) error
	Upsert(entry *model.ScheduleEntry) error
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db}
}

func (r *scheduleRepository) Create(entry *model.ScheduleEntry) error {
	return r.db.Create(entry).Error
}

func (r *scheduleRepository) GetByID(id uint) (*model.ScheduleEntry, error) {
	var entry model.ScheduleEntry
	err := r.db.Preload("Staff").First(&entry, id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleRepository) Update(entry *model.ScheduleEntry) error {
	return r.db.Save(entry).Error
}

// GetByStaffAndDate: semua shift staff di satu tanggal, urut jam mulai.
// Bisa lebih dari satu kalau split shift (pola kontrak overlap).
func (r *scheduleRepository) GetByStaffAndDate(staffID uint, date string) ([]model.ScheduleEntry, error) {
	var list []model.ScheduleEntry
	err := r.db.Where("staff_id = ? AND work_date = ? AND status <> ?",
		staffID, date, model.ScheduleStatusCancelled).
		Order("start_time asc").Find(&list).Error
	return list, err
}

func (r *scheduleRepository) GetByDateAndStore(date string, storeID uint) ([]model.ScheduleEntry, error) {
	var list []model.ScheduleEntry
	err := r.db.Preload("Staff").
		Where("work_date = ? AND store_id = ?", date, storeID).
		Order("start_time asc").Find(&list).Error
	return list, err
}

func (r *scheduleRepository) GetByStaffAndMonth(staffID uint, month string, year string) ([]model.ScheduleEntry, error) {
	var list []model.ScheduleEntry
	datePattern := year + "-" + month + "%"
	err := r.db.Where("staff_id = ? AND work_date LIKE ?", staffID, datePattern).
		Order("work_date asc").Find(&list).Error
	return list, err
}

// UpsertBatch: generate ulang jadwal untuk range yang sama TIDAK boleh bikin duplikat.
// Constraint unik ada di (staff_id, work_date, generated_by, start_time).
func (r *scheduleRepository) UpsertBatch(entries []model.ScheduleEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "staff_id"}, {Name: "work_date"}, {Name: "generated_by"}, {Name: "start_time"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"end_time", "break_minutes", "status", "updated_at", "deleted_at"}),
	}).Create(&entries).Error
}

// Upsert satu entry: dipakai fallback per-entry kalau batch gagal.
func (r *scheduleRepository) Upsert(entry *model.ScheduleEntry) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "staff_id"}, {Name: "work_date"}, {Name: "generated_by"}, {Name: "start_time"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"end_time", "break_minutes", "status", "updated_at", "deleted_at"}),
	}).Create(entry).Error
}
