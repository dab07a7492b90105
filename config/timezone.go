package config

import (
	"log"
	"sync"
	"time"
)

var (
	orgLoc     *time.Location
	orgLocOnce sync.Once
)

// OrgLocation mengembalikan timezone organisasi (fixed, bukan timezone server).
// Semua perhitungan tanggal kerja & threshold absensi WAJIB pakai timezone ini,
// karena identitas "hari kerja" tergantung timezone (lihat unique key work_date).
func OrgLocation() *time.Location {
	orgLocOnce.Do(func() {
		name := GetEnv("ORG_TIMEZONE", "Asia/Jakarta")
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Printf("Warning: ORG_TIMEZONE %q tidak valid, fallback ke Asia/Jakarta: %v", name, err)
			loc, err = time.LoadLocation("Asia/Jakarta")
			if err != nil {
				loc = time.FixedZone("WIB", 7*3600)
			}
		}
		orgLoc = loc
	})
	return orgLoc
}
