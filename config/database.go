package config

import (
	"fmt"
	"workforce-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "workforce_db"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration: Membuat tabel otomatis berdasarkan struct di folder model
	db.AutoMigrate(&model.Company{})
	db.AutoMigrate(&model.Brand{})
	db.AutoMigrate(&model.Store{})
	db.AutoMigrate(&model.Role{})
	db.AutoMigrate(&model.Staff{})
	db.AutoMigrate(&model.Device{})
	db.AutoMigrate(&model.Contract{})
	db.AutoMigrate(&model.ScheduleEntry{})
	db.AutoMigrate(&model.AttendanceRecord{})
	db.AutoMigrate(&model.CorrectionRequest{})
	db.AutoMigrate(&model.ShiftTradeRequest{})
	db.AutoMigrate(&model.ShiftApproval{})
	db.AutoMigrate(&model.LeaveRequest{})
	db.AutoMigrate(&model.Notification{})

	DB = db
}
