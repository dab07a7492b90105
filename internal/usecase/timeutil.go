package usecase

import (
	"fmt"
	"time"
)

const dateFormat = "2006-01-02"

// combineDateTime gabungkan tanggal + jam "HH:MM" jadi timestamp absolut
// di timezone organisasi. Jangan pakai wall-clock mesin/UTC: batas hari
// itu sendiri tergantung timezone.
func combineDateTime(day time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation("15:04", hhmm, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("jam %q tidak valid: %w", hhmm, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

func containsDay(days []int, weekday int) bool {
	for _, d := range days {
		if d == weekday {
			return true
		}
	}
	return false
}

// nightHours hitung overlap interval kerja dengan jendela malam 22:00-06:00,
// maksimal 2 jam. Jendela malam bisa lebih dari satu kalau shift lintas hari,
// jadi dicek per malam mulai dari H-1 check-in sampai hari check-out.
func nightHours(checkIn, checkOut time.Time, loc *time.Location) float64 {
	if !checkOut.After(checkIn) {
		return 0
	}
	checkIn = checkIn.In(loc)
	checkOut = checkOut.In(loc)

	total := 0.0
	day := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, loc).AddDate(0, 0, -1)
	lastDay := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, loc)

	for !day.After(lastDay) {
		nightStart := time.Date(day.Year(), day.Month(), day.Day(), 22, 0, 0, 0, loc)
		nightEnd := nightStart.Add(8 * time.Hour) // 06:00 hari berikutnya
		total += overlapHours(checkIn, checkOut, nightStart, nightEnd)
		day = day.AddDate(0, 0, 1)
	}

	if total > 2.0 {
		total = 2.0
	}
	return total
}

func overlapHours(aStart, aEnd, bStart, bEnd time.Time) float64 {
	start := aStart
	if bStart.After(start) {
		start = bStart
	}
	end := aEnd
	if bEnd.Before(end) {
		end = bEnd
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start).Hours()
}
