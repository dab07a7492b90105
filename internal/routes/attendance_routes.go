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

func SetupAttendanceRoutes(app *fiber.App, db *gorm.DB) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	contractRepo := repository.NewContractRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	notifier := notification.NewService(repository.NewNotificationRepository(db), staffRepo, notification.NewMailerFromEnv())

	svc := usecase.NewAttendanceService(attendanceRepo, scheduleRepo, contractRepo, approvalRepo, staffRepo, notifier, config.OrgLocation())
	hdl := handler.NewAttendanceHandler(svc, attendanceRepo)

	api := app.Group("/api/attendance", middleware.Auth)
	api.Post("/checkin", hdl.CheckIn)
	api.Post("/checkout", hdl.CheckOut)
	api.Get("/today", hdl.GetToday)
	api.Get("/history", hdl.GetHistory)

	// Antrian persetujuan shift UNSCHEDULED (manager)
	approvalHdl := handler.NewApprovalHandler(approvalRepo, attendanceRepo)
	approvals := app.Group("/api/approvals", middleware.Auth, middleware.Role(model.RoleManager, model.RoleAdmin))
	approvals.Get("/", approvalHdl.GetPending)
	approvals.Post("/:id/decide", approvalHdl.Decide)
}
