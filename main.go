package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lunarfavor/habitkit/internal/config"
	"github.com/lunarfavor/habitkit/internal/database"
	"github.com/lunarfavor/habitkit/internal/database/repositories"
	"github.com/lunarfavor/habitkit/internal/logger"
	"github.com/lunarfavor/habitkit/internal/services"
	"github.com/lunarfavor/habitkit/internal/web/handlers"
	"github.com/lunarfavor/habitkit/internal/web/middleware"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := config.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	customHandler := logger.NewHandler("HabitKit", cfg.Log.Level)
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting HabitKit API",
		slog.String("version", version),
		slog.String("commit", commit))

	slog.Info("Initializing database connection...")
	dbStartTime := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Database connection failed",
			slog.String("error", err.Error()),
			slog.Duration("attempted_for", time.Since(dbStartTime)))
		os.Exit(-1)
	}
	defer db.Close()

	slog.Info("Database connected successfully",
		slog.String("database", cfg.DB.Database),
		slog.Duration("took", time.Since(dbStartTime)))

	slog.Info("Initializing database schema...")
	if err := db.InitSchema(ctx); err != nil {
		slog.Error("Failed to initialize database schema",
			slog.String("error", err.Error()))
		os.Exit(-1)
	}
	slog.Info("Database schema initialized successfully")

	// Repositories
	habitRepo := repositories.NewHabitRepository(db.BunDB())
	completionRepo := repositories.NewCompletionRepository(db.BunDB())
	freezeRepo := repositories.NewFreezeRepository(db.BunDB())
	rewardRepo := repositories.NewRewardRepository(db.BunDB())
	userRepo := repositories.NewUserRepository(db.BunDB())

	// Services
	statsService := services.NewStatsService(habitRepo, completionRepo, freezeRepo)
	freezeService := services.NewFreezeService(habitRepo, freezeRepo)
	rewardService := services.NewRewardService(rewardRepo, freezeRepo)
	leaderboardService := services.NewLeaderboardService(userRepo, statsService)
	searchService := services.NewSearchService(habitRepo)

	app := fiber.New(fiber.Config{
		AppName:      "HabitKit API",
		ServerHeader: "HabitKit",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000,http://localhost:8080",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Requested-With",
	}))
	app.Use(middleware.LoggingMiddleware())

	webApp := &handlers.WebApp{
		DB:          db,
		Stats:       statsService,
		Freeze:      freezeService,
		Reward:      rewardService,
		Leaderboard: leaderboardService,
		Search:      searchService,
		Version:     version,
		Commit:      commit,
	}

	setupRoutes(app, webApp)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	slog.Info("Starting server", slog.String("address", address))

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := app.Listen(address); err != nil {
			slog.Error("Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-c
	slog.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", slog.String("error", err.Error()))
	}

	slog.Info("Server shutdown complete")
}

// setupRoutes configures all application routes
func setupRoutes(app *fiber.App, webApp *handlers.WebApp) {
	app.Get("/health", handlers.HealthCheck(webApp))

	api := app.Group("/api")
	api.Use(middleware.APIRateLimit())

	api.Get("/leaderboard", handlers.LeaderboardView(webApp))

	users := api.Group("/users/:id")
	users.Get("/stats", handlers.UserStats(webApp))
	users.Post("/freezes", handlers.ApplyFreeze(webApp))
	users.Get("/rewards", handlers.RewardStatus(webApp))
	users.Post("/rewards/claim", handlers.RewardClaim(webApp))
	users.Get("/habits/search", handlers.HabitSearch(webApp))
}
