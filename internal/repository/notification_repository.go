package repository

import (
	"workforce-backend/internal/model"

	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(notification *model.Notification) error
	GetByStaff(staffID uint) ([]model.Notification, error)
	MarkRead(id uint, staffID uint) error
	ExistsByTitleAndDate(staffID uint, category string, title string, date string) (bool, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db}
}

func (r *notificationRepository) Create(notification *model.Notification) error {
	return r.db.Create(notification).Error
}

func (r *notificationRepository) GetByStaff(staffID uint) ([]model.Notification, error) {
	var list []model.Notification
	err := r.db.Where("staff_id = ?", staffID).Order("sent_at desc").Limit(100).Find(&list).Error
	return list, err
}

func (r *notificationRepository) MarkRead(id uint, staffID uint) error {
	return r.db.Model(&model.Notification{}).
		Where("id = ? AND staff_id = ?", id, staffID).
		Update("is_read", true).Error
}

// ExistsByTitleAndDate: dedup notifikasi per (staff, category, title, tanggal).
// Dipakai Correction Workflow agar prompt lembur tidak dikirim ulang tiap scan.
func (r *notificationRepository) ExistsByTitleAndDate(staffID uint, category string, title string, date string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Notification{}).
		Where("staff_id = ? AND category = ? AND title = ? AND DATE(sent_at) = ?",
			staffID, category, title, date).
		Count(&count).Error
	return count > 0, err
}
