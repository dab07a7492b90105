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

func SetupTradeRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewTradeRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	notifier := notification.NewService(repository.NewNotificationRepository(db), staffRepo, notification.NewMailerFromEnv())

	// TRADE_REQUIRE_APPROVAL=1 => semua trade butuh persetujuan manager.
	// Trade lintas store selalu butuh, apapun setting ini.
	requireApproval := config.GetEnvAsInt("TRADE_REQUIRE_APPROVAL", 0) == 1
	svc := usecase.NewTradeService(repo, scheduleRepo, staffRepo, notifier, requireApproval)
	hdl := handler.NewTradeHandler(svc, repo)

	api := app.Group("/api/trades", middleware.Auth)
	api.Post("/", hdl.Create)
	api.Get("/mine", hdl.GetMine)
	api.Post("/:id/respond", hdl.Respond)

	admin := app.Group("/api/admin/trades", middleware.Auth, middleware.Role(model.RoleManager, model.RoleAdmin))
	admin.Get("/awaiting", hdl.GetAwaiting)
	admin.Post("/:id/approve", hdl.Approve)
}
