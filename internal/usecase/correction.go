package usecase

import (
	"fmt"
	"log"
	"time"

	"workforce-backend/internal/model"
	"workforce-backend/internal/notification"
	"workforce-backend/internal/repository"
)

const (
	lateCorrectionThreshold  = 5 * time.Minute  // telat >= 5 menit => minta alasan
	earlyCheckoutThreshold   = 10 * time.Minute // pulang cepat >= 10 menit
	overtimePromptWindowFrom = 30 * time.Minute // jendela prompt lembur [30,40) menit
	overtimePromptWindowTo   = 40 * time.Minute
)

const overtimePromptTitle = "Konfirmasi lembur"

// ScanResult: ringkasan satu kali scan koreksi.
type ScanResult struct {
	Scanned         int `json:"scanned"`
	LateRequests    int `json:"late_requests"`
	EarlyRequests   int `json:"early_requests"`
	OvertimePrompts int `json:"overtime_prompts"`
}

// CorrectionScanner memeriksa absensi HARI INI dan membuat correction request
// / prompt untuk anomali jam. Record lama yang belum beres urusan Sweeper.
// Aman dipanggil lebih sering dari kadensnya: semua artefak dicek dedup dulu.
type CorrectionScanner struct {
	attendanceRepo repository.AttendanceRepository
	correctionRepo repository.CorrectionRepository
	notifRepo      repository.NotificationRepository
	notifier       notification.Gateway
	loc            *time.Location
}

func NewCorrectionScanner(
	attendanceRepo repository.AttendanceRepository,
	correctionRepo repository.CorrectionRepository,
	notifRepo repository.NotificationRepository,
	notifier notification.Gateway,
	loc *time.Location,
) *CorrectionScanner {
	return &CorrectionScanner{
		attendanceRepo: attendanceRepo,
		correctionRepo: correctionRepo,
		notifRepo:      notifRepo,
		notifier:       notifier,
		loc:            loc,
	}
}

func (s *CorrectionScanner) Scan(now time.Time) ScanResult {
	now = now.In(s.loc)
	today := now.Format(dateFormat)

	var result ScanResult
	records, err := s.attendanceRepo.GetByDate(today)
	if err != nil {
		log.Printf("[CORRECTION] gagal ambil absensi %s: %v", today, err)
		return result
	}
	result.Scanned = len(records)

	for i := range records {
		record := &records[i]
		if s.scanLateCheckIn(record) {
			result.LateRequests++
		}
		if s.scanEarlyCheckout(record) {
			result.EarlyRequests++
		}
		if s.scanOvertimePrompt(record, now, today) {
			result.OvertimePrompts++
		}
	}
	return result
}

func (s *CorrectionScanner) scanLateCheckIn(record *model.AttendanceRecord) bool {
	if record.ScheduledCheckIn == nil || record.ActualCheckIn == nil {
		return false
	}
	lateBy := record.ActualCheckIn.Sub(*record.ScheduledCheckIn)
	if lateBy < lateCorrectionThreshold {
		return false
	}
	return s.createRequest(record, model.CorrectionTypeLateCheckIn, notification.Intent{
		Title:    "Keterlambatan terdeteksi",
		Body:     fmt.Sprintf("Anda tercatat telat %d menit hari ini. Mohon isi alasan keterlambatan.", int(lateBy.Minutes())),
		Category: model.NotificationCategoryCorrection,
	})
}

func (s *CorrectionScanner) scanEarlyCheckout(record *model.AttendanceRecord) bool {
	if record.ScheduledCheckOut == nil || record.ActualCheckOut == nil {
		return false
	}
	earlyBy := record.ScheduledCheckOut.Sub(*record.ActualCheckOut)
	if earlyBy < earlyCheckoutThreshold {
		return false
	}
	return s.createRequest(record, model.CorrectionTypeEarlyCheckOut, notification.Intent{
		Title:    "Pulang cepat terdeteksi",
		Body:     fmt.Sprintf("Anda check-out %d menit sebelum jadwal. Mohon isi alasannya.", int(earlyBy.Minutes())),
		Category: model.NotificationCategoryCorrection,
	})
}

// createRequest: dedup by (attendance_id, request_type): scan boleh jalan
// berkali-kali, request-nya tetap satu.
func (s *CorrectionScanner) createRequest(record *model.AttendanceRecord, requestType string, intent notification.Intent) bool {
	exists, err := s.correctionRepo.ExistsByAttendanceAndType(record.ID, requestType)
	if err != nil || exists {
		return false
	}

	request := model.CorrectionRequest{
		AttendanceID:     record.ID,
		StaffID:          record.StaffID,
		RequestType:      requestType,
		OriginalCheckIn:  record.ActualCheckIn,
		OriginalCheckOut: record.ActualCheckOut,
		Status:           model.CorrectionStatusPending,
		AutoGenerated:    true,
		NotificationSent: true,
	}
	if err := s.correctionRepo.Create(&request); err != nil {
		log.Printf("[CORRECTION] gagal buat request %s attendance=%d: %v", requestType, record.ID, err)
		return false
	}

	intent.DeepLink = fmt.Sprintf("/corrections/%d", request.ID)
	s.notifier.Send(record.StaffID, intent)
	return true
}

// scanOvertimePrompt: record masih terbuka dan sudah [30,40) menit lewat jam
// pulang terjadwal => tawarkan "ajukan lembur" / "check-out sekarang".
// Advisory saja, tidak ada CorrectionRequest. Jendela setengah-terbuka ini
// berpasangan dengan kadens scan supaya tidak re-alert tiap tick.
func (s *CorrectionScanner) scanOvertimePrompt(record *model.AttendanceRecord, now time.Time, today string) bool {
	if record.ActualCheckOut != nil || record.ActualCheckIn == nil || record.ScheduledCheckOut == nil {
		return false
	}
	elapsed := now.Sub(*record.ScheduledCheckOut)
	if elapsed < overtimePromptWindowFrom || elapsed >= overtimePromptWindowTo {
		return false
	}

	sent, err := s.notifRepo.ExistsByTitleAndDate(record.StaffID, model.NotificationCategoryAttendance, overtimePromptTitle, today)
	if err != nil || sent {
		return false
	}

	s.notifier.Send(record.StaffID, notification.Intent{
		Title:    overtimePromptTitle,
		Body:     "Jam pulang Anda sudah lewat. Ajukan lembur atau check-out sekarang?",
		Category: model.NotificationCategoryAttendance,
		Priority: model.NotificationPriorityHigh,
		DeepLink: "/attendance/today",
		Actions:  []string{"REQUEST_OVERTIME", "CHECKOUT_NOW"},
	})
	return true
}
