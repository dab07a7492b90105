package routes

import (
	"workforce-backend/internal/handler"
	"workforce-backend/internal/middleware"
	"workforce-backend/internal/model"
	"workforce-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCorrectionRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewCorrectionRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	hdl := handler.NewCorrectionHandler(repo, attendanceRepo)

	api := app.Group("/api/corrections", middleware.Auth)
	api.Get("/mine", hdl.GetMine)
	api.Put("/:id", hdl.Fill)

	admin := app.Group("/api/admin/corrections", middleware.Auth, middleware.Role(model.RoleManager, model.RoleAdmin))
	admin.Get("/pending", hdl.GetPending)
	admin.Post("/:id/decide", hdl.Decide)
}
