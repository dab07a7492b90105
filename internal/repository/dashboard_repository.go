package repository

import (
	"workforce-backend/internal/model"

	"gorm.io/gorm"
)

type DashboardRepository interface {
	GetDashboardStats(storeID uint, date string, month string, year string) (map[string]interface{}, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db}
}

func (r *dashboardRepository) GetDashboardStats(storeID uint, date string, month string, year string) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	// 1. Total Staff Aktif di Store
	var totalStaff int64
	r.db.Model(&model.Staff{}).Where("store_id = ? AND is_active = ?", storeID, true).Count(&totalStaff)
	stats["total_staff"] = totalStaff

	// 2. Statistik Harian (Hari Ini)
	var daily []struct {
		Status string
		Count  int64
	}
	r.db.Table("attendance_records").
		Where("store_id = ? AND work_date = ?", storeID, date).
		Group("status").Select("status, count(*) as count").Scan(&daily)

	dailyMap := map[string]int64{}
	for _, s := range []string{
		model.AttendanceStatusWorking, model.AttendanceStatusLate, model.AttendanceStatusNormal,
		model.AttendanceStatusOvertime, model.AttendanceStatusEarlyLeave,
		model.AttendanceStatusUnscheduled, model.AttendanceStatusVacation,
	} {
		dailyMap[s] = 0
	}
	for _, d := range daily {
		dailyMap[d.Status] = d.Count
	}
	stats["today"] = dailyMap

	// 3. Statistik Bulanan
	var monthly []struct {
		Status string
		Count  int64
	}
	datePattern := year + "-" + month + "%"
	r.db.Table("attendance_records").
		Where("store_id = ? AND work_date LIKE ?", storeID, datePattern).
		Group("status").Select("status, count(*) as count").Scan(&monthly)

	monthlyMap := map[string]int64{}
	for _, m := range monthly {
		monthlyMap[m.Status] = m.Count
	}
	stats["this_month"] = monthlyMap

	return stats, nil
}
