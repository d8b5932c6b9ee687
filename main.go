package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/robfig/cron/v3"

	"rentku_backend/internals/configs"
	database "rentku_backend/internals/databases"
	billService "rentku_backend/internals/features/billing/bills/service"
	billScheduler "rentku_backend/internals/features/billing/scheduler"
	authScheduler "rentku_backend/internals/features/users/auth/scheduler"
	"rentku_backend/internals/helpers/dbtime"
	"rentku_backend/internals/helpers/logging"
	"rentku_backend/internals/helpers/mailer"
	middlewares "rentku_backend/internals/middlewares"
	routes "rentku_backend/internals/route"
	"rentku_backend/internals/seeds"
)

func main() {
	logging.Setup()
	configs.LoadEnv()
	dbtime.SetTimezone(configs.AppTimezone)

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          middlewares.ErrorHandler,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
	})

	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool
	if err := database.ConnectDB(); err != nil {
		slog.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	database.TunePool()
	if err := database.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	if configs.AutoMigrateOnStart {
		if err := database.Migrate(database.DB); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}
	if configs.SeedOnStartup {
		if err := seeds.RunAllSeeds(database.DB, configs.GetEnv("SEED_DIR", "internals/seeds")); err != nil {
			slog.Error("seeding failed", "error", err)
		}
	}

	m := mailer.New(mailer.SMTPConfig{
		Host:     configs.SMTPHost,
		Port:     configs.SMTPPort,
		Username: configs.SMTPUsername,
		Password: configs.SMTPPassword,
		From:     configs.MailFrom,
	})

	// ✅ Routes
	routes.SetupRoutes(app, database.DB, m)

	// ⏱ scheduler setelah DB siap
	c := cron.New(
		cron.WithLocation(dbtime.Location()),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)
	if err := billScheduler.StartBillGenerationScheduler(c, billService.NewBillService(database.DB, m), configs.BillCronSchedule); err != nil {
		slog.Error("invalid BILL_CRON_SCHEDULE", "spec", configs.BillCronSchedule, "error", err)
		os.Exit(1)
	}
	if err := authScheduler.StartBlacklistCleanupScheduler(c, database.DB, configs.BlacklistCronSpec); err != nil {
		slog.Error("invalid BLACKLIST_CLEANUP_CRON", "spec", configs.BlacklistCronSpec, "error", err)
		os.Exit(1)
	}
	c.Start()

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := configs.GetEnv("PORT", "3000")

	// Start server non-blocking
	go func() {
		slog.Info("listening", "port", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	<-c.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		slog.Warn("shutdown", "error", err)
	}
	database.Close()
}
