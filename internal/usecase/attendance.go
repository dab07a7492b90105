package usecase

import (
	"fmt"
	"time"

	"workforce-backend/internal/apperr"
	"workforce-backend/internal/model"
	"workforce-backend/internal/notification"
	"workforce-backend/internal/repository"
)

// Threshold klasifikasi absensi
const (
	earlyCheckInThreshold = 30 * time.Minute // <= jadwal - 30 menit => EARLY_CHECK_IN
	lateCheckInThreshold  = 5 * time.Minute  // >= jadwal + 5 menit => LATE
	standardWorkHours     = 8.0
)

type AttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	scheduleRepo   repository.ScheduleRepository
	contractRepo   repository.ContractRepository
	approvalRepo   repository.ApprovalRepository
	staffRepo      repository.StaffRepository
	notifier       notification.Gateway
	loc            *time.Location
}

func NewAttendanceService(
	attendanceRepo repository.AttendanceRepository,
	scheduleRepo repository.ScheduleRepository,
	contractRepo repository.ContractRepository,
	approvalRepo repository.ApprovalRepository,
	staffRepo repository.StaffRepository,
	notifier notification.Gateway,
	loc *time.Location,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
		contractRepo:   contractRepo,
		approvalRepo:   approvalRepo,
		staffRepo:      staffRepo,
		notifier:       notifier,
		loc:            loc,
	}
}

// resolvedSchedule: hasil resolusi jadwal untuk satu tanggal.
// Prioritas: ScheduleEntry > pola mingguan kontrak > tidak ada jadwal.
type resolvedSchedule struct {
	checkIn      time.Time
	checkOut     time.Time
	breakMinutes int
	storeID      uint
}

func (s *AttendanceService) resolveSchedule(staffID uint, day time.Time) *resolvedSchedule {
	date := day.Format(dateFormat)

	entries, err := s.scheduleRepo.GetByStaffAndDate(staffID, date)
	if err == nil && len(entries) > 0 {
		// Split shift: pakai shift paling awal untuk jam masuk,
		// jam pulang dari shift terakhir hari itu.
		first := entries[0]
		last := entries[len(entries)-1]
		return &resolvedSchedule{
			checkIn:      first.StartTime,
			checkOut:     last.EndTime,
			breakMinutes: first.BreakMinutes,
			storeID:      first.StoreID,
		}
	}

	// Fallback: pola mingguan kontrak aktif
	contract, err := s.contractRepo.GetActiveByStaffAndDate(staffID, date)
	if err != nil {
		return nil
	}
	pattern, err := contract.WorkPattern()
	if err != nil {
		return nil
	}
	for _, p := range pattern {
		if !containsDay(p.DaysOfWeek, int(day.Weekday())) {
			continue
		}
		start, errStart := combineDateTime(day, p.StartTime, s.loc)
		end, errEnd := combineDateTime(day, p.EndTime, s.loc)
		if errStart != nil || errEnd != nil {
			return nil
		}
		if !end.After(start) {
			end = end.AddDate(0, 0, 1)
		}
		return &resolvedSchedule{
			checkIn:      start,
			checkOut:     end,
			breakMinutes: p.BreakMinutes,
			storeID:      contract.StoreID,
		}
	}
	return nil
}

func (s *AttendanceService) CheckIn(staffID uint, now time.Time) (*model.AttendanceRecord, error) {
	now = now.In(s.loc)
	today := now.Format(dateFormat)

	staff, err := s.staffRepo.FindByID(staffID)
	if err != nil {
		return nil, apperr.NotFound("Data staff tidak ditemukan")
	}

	// Cek double check-in
	existing, err := s.attendanceRepo.GetByStaffAndDate(staffID, today)
	if err == nil && existing != nil {
		if existing.Status == model.AttendanceStatusVacation {
			return nil, apperr.Conflict("Anda sedang cuti hari ini")
		}
		if existing.ActualCheckIn != nil {
			return nil, apperr.Conflict("Anda sudah melakukan check-in hari ini")
		}
	}

	resolved := s.resolveSchedule(staffID, now)

	record := model.AttendanceRecord{
		StaffID:       staffID,
		CompanyID:     staff.CompanyID,
		WorkDate:      today,
		ActualCheckIn: &now,
	}
	if existing != nil && existing.ID != 0 {
		record = *existing
		record.ActualCheckIn = &now
	}

	if resolved == nil {
		// Tanpa jadwal dan tanpa pola kontrak yang cocok hari ini
		record.Status = model.AttendanceStatusUnscheduled
		record.StoreID = ResolveStoreID(0, 0, staff.StoreID, 0)
		s.requestUnscheduledApproval(staff, today)
	} else {
		record.ScheduledCheckIn = &resolved.checkIn
		record.ScheduledCheckOut = &resolved.checkOut
		record.BreakMinutes = resolved.breakMinutes
		record.StoreID = ResolveStoreID(0, resolved.storeID, staff.StoreID, 0)
		record.Status = classifyCheckIn(now, resolved.checkIn)
	}

	if err := s.attendanceRepo.Upsert(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func classifyCheckIn(now, scheduledCheckIn time.Time) string {
	// Batas bawah: 08:30 untuk jadwal 09:00 => EARLY_CHECK_IN, 08:31 => WORKING
	if !now.After(scheduledCheckIn.Add(-earlyCheckInThreshold)) {
		return model.AttendanceStatusEarlyCheckIn
	}
	// Batas atas: 09:05 => LATE, 09:04 => WORKING
	if !now.Before(scheduledCheckIn.Add(lateCheckInThreshold)) {
		return model.AttendanceStatusLate
	}
	return model.AttendanceStatusWorking
}

// requestUnscheduledApproval: check-in tanpa jadwal tetap dicatat, tapi butuh
// persetujuan manager supaya shiftnya bisa dibayar. Notifikasi best-effort.
func (s *AttendanceService) requestUnscheduledApproval(staff *model.Staff, workDate string) {
	exists, err := s.approvalRepo.ExistsByStaffDateKind(staff.ID, workDate, model.ApprovalKindUnscheduledShift)
	if err == nil && !exists {
		s.approvalRepo.Create(&model.ShiftApproval{
			StaffID:   staff.ID,
			CompanyID: staff.CompanyID,
			WorkDate:  workDate,
			Kind:      model.ApprovalKindUnscheduledShift,
			Status:    model.ApprovalStatusPending,
		})
	}

	s.notifier.Send(staff.ID, notification.Intent{
		Title:    "Check-in di luar jadwal",
		Body:     "Check-in Anda hari ini tidak sesuai jadwal dan menunggu persetujuan manager.",
		Category: model.NotificationCategoryAttendance,
		Priority: model.NotificationPriorityHigh,
	})
	managers, err := s.staffRepo.FindManagersByStore(staff.StoreID)
	if err != nil {
		return
	}
	for _, m := range managers {
		s.notifier.Send(m.ID, notification.Intent{
			Title:    "Persetujuan shift dibutuhkan",
			Body:     fmt.Sprintf("%s check-in tanpa jadwal pada %s. Mohon ditinjau.", staff.Name, workDate),
			Category: model.NotificationCategoryAttendance,
			Priority: model.NotificationPriorityHigh,
			DeepLink: "/approvals",
			Actions:  []string{"APPROVE", "REJECT"},
		})
	}
}

func (s *AttendanceService) CheckOut(staffID uint, now time.Time) (*model.AttendanceRecord, error) {
	now = now.In(s.loc)
	today := now.Format(dateFormat)

	record, err := s.attendanceRepo.GetByStaffAndDate(staffID, today)
	if err != nil || record == nil || record.ActualCheckIn == nil {
		// Cek kemarin: shift lintas hari yang belum ditutup
		yesterday := now.AddDate(0, 0, -1).Format(dateFormat)
		prev, errPrev := s.attendanceRepo.GetByStaffAndDate(staffID, yesterday)
		if errPrev != nil || prev == nil || prev.ActualCheckIn == nil {
			return nil, apperr.NotFound("Anda belum melakukan check-in (hari ini maupun shift kemarin)")
		}
		record = prev
	}

	if record.Status == model.AttendanceStatusVacation {
		return nil, apperr.Conflict("Anda sedang cuti, tidak perlu check-out")
	}
	if record.ActualCheckOut != nil {
		return nil, apperr.Conflict("Anda sudah melakukan check-out")
	}

	applyCheckOut(record, now, s.loc)
	record.SetExtensions(map[string]interface{}{
		"checkout_classification": record.Status,
		"checked_out_at":          now.Format(time.RFC3339),
	})

	if err := s.attendanceRepo.Update(record); err != nil {
		return nil, err
	}
	return record, nil
}

// applyCheckOut isi jam pulang + perhitungan jam kerja/lembur/malam dan
// status akhir. Dipakai check-out manual DAN auto-checkout Sweeper,
// supaya accounting-nya identik.
func applyCheckOut(record *model.AttendanceRecord, checkOut time.Time, loc *time.Location) {
	record.ActualCheckOut = &checkOut

	workedMinutes := checkOut.Sub(*record.ActualCheckIn).Minutes() - float64(record.BreakMinutes)
	workHours := workedMinutes / 60.0
	if workHours < 0 {
		workHours = 0
	}
	record.WorkHours = workHours

	overtime := workHours - standardWorkHours
	if overtime < 0 {
		overtime = 0
	}
	record.OvertimeHours = overtime

	record.NightHours = nightHours(*record.ActualCheckIn, checkOut, loc)

	record.Status = classifyCheckOut(record, checkOut)
}

func classifyCheckOut(record *model.AttendanceRecord, checkOut time.Time) string {
	if record.ScheduledCheckOut == nil {
		// Tanpa jadwal: status UNSCHEDULED dipertahankan sampai diproses approval
		if record.Status == model.AttendanceStatusUnscheduled {
			return model.AttendanceStatusUnscheduled
		}
		return model.AttendanceStatusNormal
	}
	if checkOut.Before(*record.ScheduledCheckOut) {
		return model.AttendanceStatusEarlyLeave
	}
	if record.OvertimeHours > 0 {
		return model.AttendanceStatusOvertime
	}
	return model.AttendanceStatusNormal
}
