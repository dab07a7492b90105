package usecase

import (
	"testing"

	"workforce-backend/internal/model"
)

type correctionFixture struct {
	scanner        *CorrectionScanner
	attendanceRepo *mockAttendanceRepo
	correctionRepo *mockCorrectionRepo
	notifRepo      *mockNotificationRepo
	gateway        *mockGateway
}

func newCorrectionFixture() *correctionFixture {
	f := &correctionFixture{
		attendanceRepo: newMockAttendanceRepo(),
		correctionRepo: newMockCorrectionRepo(),
		notifRepo:      newMockNotificationRepo(),
	}
	// Gateway menulis ke repo notifikasi, seperti notification.Service di
	// produksi: dedup prompt lembur membaca dari sana.
	f.gateway = &mockGateway{notifRepo: f.notifRepo, now: at("2024-06-10", "12:00")}
	f.scanner = NewCorrectionScanner(f.attendanceRepo, f.correctionRepo, f.notifRepo, f.gateway, testLoc)
	return f
}

func (f *correctionFixture) seedRecord(schedIn, actualIn string, schedOut, actualOut string) *model.AttendanceRecord {
	record := &model.AttendanceRecord{
		StaffID:   1,
		CompanyID: 1,
		WorkDate:  "2024-06-10",
		Status:    model.AttendanceStatusWorking,
	}
	if schedIn != "" {
		record.ScheduledCheckIn = ptrTime(at("2024-06-10", schedIn))
	}
	if actualIn != "" {
		record.ActualCheckIn = ptrTime(at("2024-06-10", actualIn))
	}
	if schedOut != "" {
		record.ScheduledCheckOut = ptrTime(at("2024-06-10", schedOut))
	}
	if actualOut != "" {
		record.ActualCheckOut = ptrTime(at("2024-06-10", actualOut))
	}
	f.attendanceRepo.Upsert(record)
	return record
}

// Telat >= 5 menit menghasilkan tepat satu LATE_CHECKIN request,
// berapa kali pun scan dijalankan.
func TestScanLateCheckInOnce(t *testing.T) {
	f := newCorrectionFixture()
	f.seedRecord("09:00", "09:12", "18:00", "")

	first := f.scanner.Scan(at("2024-06-10", "09:15"))
	if first.LateRequests != 1 {
		t.Fatalf("late_requests = %d, harusnya 1", first.LateRequests)
	}

	second := f.scanner.Scan(at("2024-06-10", "09:20"))
	if second.LateRequests != 0 {
		t.Fatalf("scan kedua bikin request lagi (late_requests=%d)", second.LateRequests)
	}
	if got := f.correctionRepo.countByType(model.CorrectionTypeLateCheckIn); got != 1 {
		t.Fatalf("total request LATE_CHECKIN = %d, harusnya 1", got)
	}

	var request *model.CorrectionRequest
	for _, r := range f.correctionRepo.byID {
		request = r
	}
	if !request.AutoGenerated || !request.NotificationSent {
		t.Errorf("request harus bertanda auto_generated + notification_sent")
	}
	if request.Status != model.CorrectionStatusPending {
		t.Errorf("status = %s, harusnya PENDING", request.Status)
	}
	if request.OriginalCheckIn == nil || !request.OriginalCheckIn.Equal(at("2024-06-10", "09:12")) {
		t.Errorf("original_check_in harus jam masuk aktual")
	}
}

func TestScanLateBelowThreshold(t *testing.T) {
	f := newCorrectionFixture()
	f.seedRecord("09:00", "09:04", "18:00", "")

	result := f.scanner.Scan(at("2024-06-10", "09:30"))
	if result.LateRequests != 0 {
		t.Fatalf("telat 4 menit tidak boleh bikin request")
	}
}

// Pulang >= 10 menit sebelum jadwal menghasilkan EARLY_CHECKOUT request.
func TestScanEarlyCheckout(t *testing.T) {
	f := newCorrectionFixture()
	f.seedRecord("09:00", "09:00", "18:00", "17:45")

	result := f.scanner.Scan(at("2024-06-10", "18:00"))
	if result.EarlyRequests != 1 {
		t.Fatalf("early_requests = %d, harusnya 1", result.EarlyRequests)
	}
	if got := f.correctionRepo.countByType(model.CorrectionTypeEarlyCheckOut); got != 1 {
		t.Fatalf("total request EARLY_CHECKOUT = %d", got)
	}
}

func TestScanEarlyCheckoutBelowThreshold(t *testing.T) {
	f := newCorrectionFixture()
	f.seedRecord("09:00", "09:00", "18:00", "17:55")

	result := f.scanner.Scan(at("2024-06-10", "18:00"))
	if result.EarlyRequests != 0 {
		t.Fatalf("pulang cepat 5 menit tidak boleh bikin request")
	}
}

// Prompt lembur: record masih terbuka dan 30-40 menit lewat jam pulang
// terjadwal. Advisory saja, tanpa CorrectionRequest, dan dedup per hari.
func TestScanOvertimePrompt(t *testing.T) {
	f := newCorrectionFixture()
	f.seedRecord("09:00", "09:00", "18:00", "")

	result := f.scanner.Scan(at("2024-06-10", "18:35"))
	if result.OvertimePrompts != 1 {
		t.Fatalf("overtime_prompts = %d, harusnya 1", result.OvertimePrompts)
	}
	if len(f.correctionRepo.byID) != 0 {
		t.Fatalf("prompt lembur tidak boleh membuat CorrectionRequest")
	}

	// Masih di jendela, tapi notifikasi sudah pernah dikirim hari ini
	second := f.scanner.Scan(at("2024-06-10", "18:39"))
	if second.OvertimePrompts != 0 {
		t.Fatalf("prompt kedua di hari yang sama harus di-dedup")
	}
	if got := f.gateway.countByTitle("Konfirmasi lembur"); got != 1 {
		t.Fatalf("notifikasi lembur terkirim %d kali, harusnya 1", got)
	}
}

func TestScanOvertimePromptOutsideWindow(t *testing.T) {
	cases := []string{"18:20", "18:29", "18:40", "19:00"}
	for _, hhmm := range cases {
		f := newCorrectionFixture()
		f.seedRecord("09:00", "09:00", "18:00", "")

		result := f.scanner.Scan(at("2024-06-10", hhmm))
		if result.OvertimePrompts != 0 {
			t.Errorf("scan %s: prompt terkirim di luar jendela [30,40)", hhmm)
		}
	}
}

// Record yang sudah check-out tidak pernah dapat prompt lembur.
func TestScanOvertimePromptClosedRecord(t *testing.T) {
	f := newCorrectionFixture()
	f.seedRecord("09:00", "09:00", "18:00", "18:05")

	result := f.scanner.Scan(at("2024-06-10", "18:35"))
	if result.OvertimePrompts != 0 {
		t.Fatalf("record tertutup dapat prompt lembur")
	}
}
