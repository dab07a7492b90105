package routes

import (
	"workforce-backend/internal/handler"
	"workforce-backend/internal/middleware"
	"workforce-backend/internal/model"
	"workforce-backend/internal/notification"
	"workforce-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupLeaveRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewLeaveRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	notifier := notification.NewService(repository.NewNotificationRepository(db), staffRepo, notification.NewMailerFromEnv())
	hdl := handler.NewLeaveHandler(repo, staffRepo, attendanceRepo, notifier)

	api := app.Group("/api/leaves", middleware.Auth)
	api.Post("/", hdl.Create)
	api.Get("/mine", hdl.GetMine)

	admin := app.Group("/api/admin/leaves", middleware.Auth, middleware.Role(model.RoleManager, model.RoleAdmin))
	admin.Get("/pending", hdl.GetPending)
	admin.Post("/:id/decide", hdl.Decide)
}
