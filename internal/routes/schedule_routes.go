package routes

import (
	"workforce-backend/internal/handler"
	"workforce-backend/internal/middleware"
	"workforce-backend/internal/model"
	"workforce-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupScheduleRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewScheduleRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	hdl := handler.NewScheduleHandler(repo, staffRepo)

	// Mobile: jadwal saya
	app.Get("/api/schedules/mine", middleware.Auth, hdl.GetMine)

	api := app.Group("/api/admin/schedules", middleware.Auth, middleware.Role(model.RoleManager, model.RoleAdmin))
	api.Get("/", hdl.GetDaily)
	api.Post("/", hdl.Create)
	api.Delete("/:id", hdl.Cancel)
}
