package routes

import (
	"workforce-backend/internal/handler"
	"workforce-backend/internal/middleware"
	"workforce-backend/internal/model"
	"workforce-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupStaffRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewStaffRepository(db)
	hdl := handler.NewStaffHandler(repo)

	app.Post("/api/login", hdl.Login)

	api := app.Group("/api/staff", middleware.Auth)
	api.Get("/profile", hdl.GetProfile)
	api.Put("/profile", hdl.UpdateProfile)
	api.Put("/password", hdl.ChangePassword)
	api.Get("/store", middleware.Role(model.RoleManager, model.RoleAdmin), hdl.GetByStore)
}
