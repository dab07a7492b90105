package routes

import (
	"workforce-backend/config"
	"workforce-backend/internal/handler"
	"workforce-backend/internal/middleware"
	"workforce-backend/internal/model"
	"workforce-backend/internal/repository"
	"workforce-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupContractRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewContractRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	materializer := usecase.NewMaterializer(scheduleRepo, config.OrgLocation())
	hdl := handler.NewContractHandler(repo, staffRepo, materializer)

	// Mobile: pegawai lihat kontraknya sendiri
	app.Get("/api/contracts/mine", middleware.Auth, hdl.GetMine)

	api := app.Group("/api/admin/contracts", middleware.Auth, middleware.Role(model.RoleManager, model.RoleAdmin))
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetDetail)
	api.Post("/:id/sign", hdl.Sign)
	api.Post("/:id/regenerate", hdl.Regenerate)
}
