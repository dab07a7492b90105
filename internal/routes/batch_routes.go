package routes

import (
	"workforce-backend/config"
	"workforce-backend/internal/handler"
	"workforce-backend/internal/middleware"
	"workforce-backend/internal/model"
	"workforce-backend/internal/notification"
	"workforce-backend/internal/repository"
	"workforce-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBatchRoutes(app *fiber.App, db *gorm.DB) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	notifier := notification.NewService(notifRepo, staffRepo, notification.NewMailerFromEnv())
	loc := config.OrgLocation()

	sweeper := usecase.NewSweeper(attendanceRepo, staffRepo, notifier, loc)
	scanner := usecase.NewCorrectionScanner(attendanceRepo, repository.NewCorrectionRepository(db), notifRepo, notifier, loc)
	hdl := handler.NewBatchHandler(sweeper, scanner)

	api := app.Group("/api/admin/batch", middleware.Auth, middleware.Role(model.RoleAdmin))
	api.Post("/backfill", hdl.Backfill)
	api.Post("/sweep", hdl.RunSweep)
	api.Post("/correction-scan", hdl.RunCorrectionScan)
}
