package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	NotificationCategoryAttendance = "ATTENDANCE"
	NotificationCategoryCorrection = "CORRECTION"
	NotificationCategoryTrade      = "SHIFT_TRADE"
	NotificationCategoryLeave      = "LEAVE"
	NotificationCategoryBatch      = "BATCH"
)

const (
	NotificationPriorityNormal = "NORMAL"
	NotificationPriorityHigh   = "HIGH"
)

// Notification: feed notifikasi user sekaligus index dedup
// (cek existensi by staff_id + category + title + tanggal sebelum kirim ulang).
type Notification struct {
	gorm.Model
	StaffID  uint   `json:"staff_id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
	Priority string `json:"priority" gorm:"default:NORMAL"`
	DeepLink string `json:"deep_link"`

	// Aksi yang ditawarkan ke user, contoh: ["REQUEST_OVERTIME","CHECKOUT_NOW"]
	Actions datatypes.JSON `json:"actions"`

	IsRead bool      `json:"is_read" gorm:"default:false"`
	SentAt time.Time `json:"sent_at"`
}
