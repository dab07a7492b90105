package usecase

import (
	"fmt"
	"time"

	"workforce-backend/internal/model"
	"workforce-backend/internal/repository"
)

// GenerateResult: hasil terstruktur materialisasi jadwal. Kegagalan parsial
// dilaporkan di sini, BUKAN sebagai error: pembuatan kontrak harus tetap
// sukses walau generate jadwalnya sebagian gagal.
type GenerateResult struct {
	Attempted int      `json:"attempted"`
	Created   int      `json:"created"`
	Failures  []string `json:"failures,omitempty"`
}

// Materializer meng-expand pola kerja mingguan kontrak menjadi
// ScheduleEntry konkret per tanggal.
type Materializer struct {
	scheduleRepo repository.ScheduleRepository
	loc          *time.Location
}

func NewMaterializer(scheduleRepo repository.ScheduleRepository, loc *time.Location) *Materializer {
	return &Materializer{scheduleRepo: scheduleRepo, loc: loc}
}

func (m *Materializer) Generate(contract *model.Contract) GenerateResult {
	var result GenerateResult

	pattern, err := contract.WorkPattern()
	if err != nil {
		result.Failures = append(result.Failures, fmt.Sprintf("pola kerja tidak valid: %v", err))
		return result
	}
	if len(pattern) == 0 {
		return result
	}

	startDate, err := time.ParseInLocation(dateFormat, contract.StartDate, m.loc)
	if err != nil {
		result.Failures = append(result.Failures, fmt.Sprintf("start_date tidak valid: %v", err))
		return result
	}

	// Default masa berlaku: 3 bulan dari tanggal mulai
	endDate := startDate.AddDate(0, 3, 0)
	if contract.EndDate != "" {
		endDate, err = time.ParseInLocation(dateFormat, contract.EndDate, m.loc)
		if err != nil {
			result.Failures = append(result.Failures, fmt.Sprintf("end_date tidak valid: %v", err))
			return result
		}
	}

	// Loop tanggal inklusif; satu hari bisa menghasilkan lebih dari satu entry
	// kalau pola overlap (split shift): memang tidak dideduplikasi.
	var entries []model.ScheduleEntry
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		for _, p := range pattern {
			if !containsDay(p.DaysOfWeek, int(d.Weekday())) {
				continue
			}
			start, errStart := combineDateTime(d, p.StartTime, m.loc)
			end, errEnd := combineDateTime(d, p.EndTime, m.loc)
			if errStart != nil || errEnd != nil {
				result.Failures = append(result.Failures, fmt.Sprintf("%s: jam pola tidak valid", d.Format(dateFormat)))
				continue
			}
			// Jam pulang <= jam masuk berarti shift berakhir di hari berikutnya
			if !end.After(start) {
				end = end.AddDate(0, 0, 1)
			}
			entries = append(entries, model.ScheduleEntry{
				StaffID:      contract.StaffID,
				CompanyID:    contract.CompanyID,
				BrandID:      contract.BrandID,
				StoreID:      contract.StoreID,
				WorkDate:     d.Format(dateFormat),
				StartTime:    start,
				EndTime:      end,
				BreakMinutes: p.BreakMinutes,
				Status:       model.ScheduleStatusScheduled,
				GeneratedBy:  model.ScheduleSourceContract,
			})
		}
	}

	result.Attempted = len(entries)
	if len(entries) == 0 {
		return result
	}

	if err := m.scheduleRepo.UpsertBatch(entries); err == nil {
		result.Created = len(entries)
		return result
	}

	// Batch gagal: fallback insert per-entry, skip yang konflik,
	// dan catat tiap kegagalan individual.
	for i := range entries {
		entry := entries[i]
		if err := m.scheduleRepo.Upsert(&entry); err != nil {
			result.Failures = append(result.Failures, fmt.Sprintf("%s: %v", entry.WorkDate, err))
			continue
		}
		result.Created++
	}
	return result
}
