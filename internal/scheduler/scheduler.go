package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"workforce-backend/config"
	"workforce-backend/internal/notification"
	"workforce-backend/internal/repository"
	"workforce-backend/internal/usecase"
)

// Scheduler menjalankan dua job latar:
//   - sweeper harian yang menutup absensi nyangkut (default 02:30)
//   - scan koreksi tiap beberapa menit untuk absensi hari ini
//
// SkipIfStillRunning: tick berikutnya dilewati kalau job sebelumnya
// belum selesai, jadi dua sweep tidak pernah jalan bersamaan.
type Scheduler struct {
	cron    *cron.Cron
	sweeper *usecase.Sweeper
	scanner *usecase.CorrectionScanner
}

func New(db *gorm.DB) *Scheduler {
	attendanceRepo := repository.NewAttendanceRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	notifier := notification.NewService(notifRepo, staffRepo, notification.NewMailerFromEnv())
	loc := config.OrgLocation()

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		sweeper: usecase.NewSweeper(attendanceRepo, staffRepo, notifier, loc),
		scanner: usecase.NewCorrectionScanner(attendanceRepo, repository.NewCorrectionRepository(db), notifRepo, notifier, loc),
	}
}

func (s *Scheduler) Start() error {
	sweepSpec := config.GetEnv("SWEEPER_CRON", "30 2 * * *")
	if _, err := s.cron.AddFunc(sweepSpec, s.runSweep); err != nil {
		return err
	}

	scanSpec := config.GetEnv("CORRECTION_CRON", "*/5 * * * *")
	if _, err := s.cron.AddFunc(scanSpec, s.runCorrectionScan); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("[SCHEDULER] aktif: sweeper=%q correction=%q", sweepSpec, scanSpec)
	return nil
}

func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) runSweep() {
	result := s.sweeper.Run(time.Now())
	log.Printf("[SWEEPER] processed=%d closed=%d failures=%d", result.Processed, result.Closed, len(result.Failures))
	for _, f := range result.Failures {
		log.Printf("[SWEEPER] %s", f)
	}
}

func (s *Scheduler) runCorrectionScan() {
	result := s.scanner.Scan(time.Now())
	if result.LateRequests+result.EarlyRequests+result.OvertimePrompts > 0 {
		log.Printf("[CORRECTION] scanned=%d late=%d early=%d overtime_prompts=%d",
			result.Scanned, result.LateRequests, result.EarlyRequests, result.OvertimePrompts)
	}
}
