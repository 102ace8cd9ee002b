// Command habitkit-seed loads a small demo dataset into a fresh database so
// the API has something to serve during local development.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/lunarfavor/habitkit/internal/config"
	"github.com/lunarfavor/habitkit/internal/database"
	"github.com/lunarfavor/habitkit/internal/database/models"
	"github.com/lunarfavor/habitkit/internal/database/repositories"
	"github.com/lunarfavor/habitkit/internal/engine"
	"github.com/lunarfavor/habitkit/internal/logger"
)

func main() {
	path := flag.String("config", "config.toml", "path to config")
	days := flag.Int("days", 14, "days of completion history to generate")
	flag.Parse()

	slog.SetDefault(slog.New(logger.NewHandler("HabitKit-Seed", slog.LevelInfo)))

	cfg, err := config.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := database.New(ctx, cfg.DB)
	if err != nil {
		slog.Error("Failed to connect to database", slog.Any("error", err))
		os.Exit(-1)
	}
	defer db.Close()

	if err := db.InitSchema(ctx); err != nil {
		slog.Error("Failed to initialize schema", slog.Any("error", err))
		os.Exit(-1)
	}

	if err := seed(ctx, db, *days); err != nil {
		logger.LogError("Seeding failed", err)
		os.Exit(-1)
	}

	logger.LogSystem("Seeding completed successfully")
}

func seed(ctx context.Context, db *database.DB, days int) error {
	userRepo := repositories.NewUserRepository(db.BunDB())
	habitRepo := repositories.NewHabitRepository(db.BunDB())
	completionRepo := repositories.NewCompletionRepository(db.BunDB())

	today := engine.Day(time.Now().UTC())
	start := today.AddDate(0, 0, -days)

	demoUsers := []*models.User{
		{ID: "demo-alice", Username: "alice", DisplayName: "Alice", FreezeBalance: 3},
		{ID: "demo-bob", Username: "bob", FreezeBalance: 1},
	}

	demoHabits := map[string][]*models.Habit{
		"demo-alice": {
			{ID: uuid.New(), Name: "Morning Run", Schedule: models.ScheduleDaily, StartDate: start},
			{ID: uuid.New(), Name: "Strength Training", Schedule: models.ScheduleWeekly, Weekdays: []int{1, 3, 5}, StartDate: start},
		},
		"demo-bob": {
			{ID: uuid.New(), Name: "Read 20 Pages", Schedule: models.ScheduleDaily, StartDate: start},
		},
	}

	for _, user := range demoUsers {
		if err := userRepo.Create(ctx, user); err != nil {
			return err
		}

		for _, habit := range demoHabits[user.ID] {
			habit.OwnerID = user.ID
			if err := habitRepo.Create(ctx, habit); err != nil {
				return err
			}

			// Every scheduled day except the most recent two, so the demo
			// data has a live streak and a couple of freezable gaps.
			for d := start; d.Before(today.AddDate(0, 0, -2)); d = d.AddDate(0, 0, 1) {
				if !engine.IsScheduled(habit, d) {
					continue
				}
				if _, err := completionRepo.Toggle(ctx, &models.CompletionRecord{
					HabitID: habit.ID,
					OwnerID: user.ID,
					Date:    d,
				}); err != nil {
					return err
				}
			}

			slog.Info("Seeded habit",
				slog.String("owner_id", user.ID),
				slog.String("habit", habit.Name))
		}
	}

	return nil
}
