package usecase

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"workforce-backend/internal/model"
	"workforce-backend/internal/notification"
	"workforce-backend/internal/repository"
)

// Record hari ini baru boleh ditutup paksa kalau jam pulang terjadwal
// sudah lewat sejauh ini.
const todayGracePeriod = 2 * time.Hour

// SweepResult: hasil terstruktur satu kali sweep. Kegagalan parsial
// dilaporkan per-record, tidak menggagalkan keseluruhan batch.
type SweepResult struct {
	Processed int      `json:"processed"`
	Closed    int      `json:"closed"`
	Failures  []string `json:"failures,omitempty"`
}

// Sweeper menutup record absensi yang nyangkut (sudah check-in, lupa
// check-out) pakai perhitungan fallback deterministik. Aman dijalankan
// berulang: hanya menyentuh record yang actual_check_out-nya masih NULL.
type Sweeper struct {
	attendanceRepo repository.AttendanceRepository
	staffRepo      repository.StaffRepository
	notifier       notification.Gateway
	loc            *time.Location
}

func NewSweeper(
	attendanceRepo repository.AttendanceRepository,
	staffRepo repository.StaffRepository,
	notifier notification.Gateway,
	loc *time.Location,
) *Sweeper {
	return &Sweeper{attendanceRepo: attendanceRepo, staffRepo: staffRepo, notifier: notifier, loc: loc}
}

func (s *Sweeper) Run(now time.Time) SweepResult {
	now = now.In(s.loc)
	today := now.Format(dateFormat)
	batchID := uuid.NewString()

	var result SweepResult
	var closed []model.AttendanceRecord

	// Pass 1: record hari-hari sebelumnya yang masih terbuka
	stale, err := s.attendanceRepo.GetOpenBefore(today)
	if err != nil {
		result.Failures = append(result.Failures, fmt.Sprintf("query past-due gagal: %v", err))
	}
	for i := range stale {
		record := &stale[i]
		result.Processed++
		closeAt := pastDueCloseTime(record)
		if s.closeRecord(record, closeAt, batchID, false, &result) {
			closed = append(closed, *record)
		}
	}

	// Pass 2: record hari ini yang jam pulang terjadwalnya sudah lewat > 2 jam.
	// Ditutup di jam pulang terjadwal, BUKAN di "sekarang".
	open, err := s.attendanceRepo.GetOpenByDate(today)
	if err != nil {
		result.Failures = append(result.Failures, fmt.Sprintf("query hari ini gagal: %v", err))
	}
	for i := range open {
		record := &open[i]
		if record.ScheduledCheckOut == nil {
			continue
		}
		if now.Sub(*record.ScheduledCheckOut) < todayGracePeriod {
			continue
		}
		result.Processed++
		if s.closeRecord(record, *record.ScheduledCheckOut, batchID, false, &result) {
			closed = append(closed, *record)
		}
	}

	s.notifySummary(closed)
	return result
}

// Backfill: entry point privileged untuk menutup ulang range tanggal tertentu
// (default 30 hari terakhir s/d kemarin). Logika sama dengan pass past-due,
// plus tag manual_batch_process di audit.
func (s *Sweeper) Backfill(startDate, endDate string, now time.Time) SweepResult {
	now = now.In(s.loc)
	if endDate == "" {
		endDate = now.AddDate(0, 0, -1).Format(dateFormat)
	}
	if startDate == "" {
		startDate = now.AddDate(0, 0, -30).Format(dateFormat)
	}
	batchID := uuid.NewString()

	var result SweepResult
	var closed []model.AttendanceRecord

	records, err := s.attendanceRepo.GetOpenInRange(startDate, endDate)
	if err != nil {
		result.Failures = append(result.Failures, fmt.Sprintf("query range gagal: %v", err))
		return result
	}
	for i := range records {
		record := &records[i]
		result.Processed++
		closeAt := pastDueCloseTime(record)
		if s.closeRecord(record, closeAt, batchID, true, &result) {
			closed = append(closed, *record)
		}
	}

	s.notifySummary(closed)
	return result
}

// pastDueCloseTime: jam pulang terjadwal kalau ada; kalau tidak ada, atau
// hasilnya tidak lebih besar dari jam masuk, fallback check-in + 8 jam.
func pastDueCloseTime(record *model.AttendanceRecord) time.Time {
	fallback := record.ActualCheckIn.Add(8 * time.Hour)
	if record.ScheduledCheckOut == nil {
		return fallback
	}
	if !record.ScheduledCheckOut.After(*record.ActualCheckIn) {
		return fallback
	}
	return *record.ScheduledCheckOut
}

func (s *Sweeper) closeRecord(record *model.AttendanceRecord, closeAt time.Time, batchID string, manual bool, result *SweepResult) bool {
	applyCheckOut(record, closeAt, s.loc)
	record.Status = model.AttendanceStatusNormal

	ext := map[string]interface{}{
		"auto_checkout":        true,
		"auto_checkout_reason": fmt.Sprintf("Ditutup otomatis oleh sweeper pada jam pulang fallback %s", closeAt.In(s.loc).Format("2006-01-02 15:04")),
		"batch_id":             batchID,
	}
	if manual {
		ext["manual_batch_process"] = true
	}
	record.SetExtensions(ext)

	if err := s.attendanceRepo.Update(record); err != nil {
		result.Failures = append(result.Failures, fmt.Sprintf("record %d (%s): %v", record.ID, record.WorkDate, err))
		return false
	}
	result.Closed++
	return true
}

// notifySummary: satu notifikasi ringkasan per company ke para manager,
// bukan satu per record: mencegah badai notifikasi.
func (s *Sweeper) notifySummary(closed []model.AttendanceRecord) {
	if len(closed) == 0 {
		return
	}
	perCompany := map[uint]int{}
	for _, r := range closed {
		perCompany[r.CompanyID]++
	}
	for companyID, count := range perCompany {
		managers, err := s.staffRepo.FindManagersByCompany(companyID)
		if err != nil {
			log.Printf("[SWEEPER] gagal ambil manager company=%d: %v", companyID, err)
			continue
		}
		for _, m := range managers {
			s.notifier.Send(m.ID, notification.Intent{
				Title:    "Ringkasan auto-checkout",
				Body:     fmt.Sprintf("%d record absensi ditutup otomatis karena lupa check-out.", count),
				Category: model.NotificationCategoryBatch,
				DeepLink: "/attendance/auto-closed",
			})
		}
	}
}
