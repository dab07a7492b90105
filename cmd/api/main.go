package main

import (
	"fmt"
	"log"

	"workforce-backend/config"
	"workforce-backend/internal/routes"
	"workforce-backend/internal/scheduler"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("1. Memulai aplikasi... Mencoba load .env...")
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	fmt.Println("2. Mencoba koneksi ke Database...")
	config.ConnectDB()
	fmt.Println("3. Database berhasil terhubung! Menyiapkan routes...")

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupStaffRoutes(app, config.DB)
	routes.SetupContractRoutes(app, config.DB)
	routes.SetupScheduleRoutes(app, config.DB)
	routes.SetupAttendanceRoutes(app, config.DB)
	routes.SetupCorrectionRoutes(app, config.DB)
	routes.SetupTradeRoutes(app, config.DB)
	routes.SetupLeaveRoutes(app, config.DB)
	routes.SetupBatchRoutes(app, config.DB)
	routes.SetupNotificationRoutes(app, config.DB)
	routes.SetupDashboardRoutes(app, config.DB)
	routes.SetupReportRoutes(app, config.DB)

	// Job latar: sweeper harian + scan koreksi
	sched := scheduler.New(config.DB)
	if err := sched.Start(); err != nil {
		log.Fatalf("Gagal memulai scheduler: %v", err)
	}

	port := config.GetEnv("PORT", "3000")
	fmt.Println("4. Server siap! Menunggu request di port :" + port)
	app.Listen(":" + port)
}
