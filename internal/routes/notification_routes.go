package routes

import (
	"workforce-backend/internal/handler"
	"workforce-backend/internal/middleware"
	"workforce-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupNotificationRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewNotificationRepository(db)
	hdl := handler.NewNotificationHandler(repo)

	api := app.Group("/api/notifications", middleware.Auth)
	api.Get("/", hdl.GetMine)
	api.Put("/:id/read", hdl.MarkRead)
}
