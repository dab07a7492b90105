package routes

import (
	"workforce-backend/internal/handler"
	"workforce-backend/internal/middleware"
	"workforce-backend/internal/model"
	"workforce-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupReportRoutes(app *fiber.App, db *gorm.DB) {
	attendanceRepo := repository.NewAttendanceRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	hdl := handler.NewReportHandler(attendanceRepo, staffRepo)

	app.Get("/api/reports/mine", middleware.Auth, hdl.GetMine)

	api := app.Group("/api/admin/reports", middleware.Auth, middleware.Role(model.RoleManager, model.RoleAdmin))
	api.Get("/monthly", hdl.GetMonthly)
}
