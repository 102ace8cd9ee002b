package handlers

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/lunarfavor/habitkit/internal/database"
	"github.com/lunarfavor/habitkit/internal/engine"
	"github.com/lunarfavor/habitkit/internal/services"
	"github.com/lunarfavor/habitkit/internal/web/utils"
)

// WebApp represents the web application with all dependencies
type WebApp struct {
	DB          *database.DB
	Stats       *services.StatsService
	Freeze      *services.FreezeService
	Reward      *services.RewardService
	Leaderboard *services.LeaderboardService
	Search      *services.SearchService
	Version     string
	Commit      string
}

// resolveToday picks the calendar day every computation in the request uses.
// An explicit ?today=YYYY-MM-DD override keeps responses reproducible; the
// clock is read exactly once otherwise.
func resolveToday(c *fiber.Ctx) (time.Time, error) {
	if raw := c.Query("today"); raw != "" {
		return engine.ParseDay(raw)
	}
	return engine.Day(time.Now().UTC()), nil
}

func HealthCheck(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return utils.SendSuccess(c, fiber.Map{
			"status":  "healthy",
			"version": webApp.Version,
			"commit":  webApp.Commit,
		}, "Health check successful")
	}
}

// UserStats returns the per-habit streak and completion breakdown plus the
// owner's freeze token balance.
func UserStats(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID := c.Params("id")

		today, err := resolveToday(c)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid today parameter, expected YYYY-MM-DD", nil)
		}

		stats, err := webApp.Stats.HabitStats(c.Context(), ownerID, today)
		if err != nil {
			slog.Error("Failed to compute habit stats",
				slog.String("owner_id", ownerID),
				slog.String("error", err.Error()))
			return utils.SendDomainError(c, err)
		}

		balance, err := webApp.Freeze.Balance(c.Context(), ownerID)
		if err != nil {
			slog.Error("Failed to fetch freeze balance",
				slog.String("owner_id", ownerID),
				slog.String("error", err.Error()))
			return utils.SendDomainError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{
			"today":          engine.DayKey(today),
			"habits":         stats,
			"freeze_balance": balance,
		}, "Habit stats retrieved")
	}
}

// ApplyFreezeRequest is the body of POST /api/users/:id/freezes.
type ApplyFreezeRequest struct {
	HabitID string `json:"habit_id"`
	Date    string `json:"date"`
}

// ApplyFreeze spends one freeze token to protect a missed day.
func ApplyFreeze(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID := c.Params("id")

		var req ApplyFreezeRequest
		if err := c.BodyParser(&req); err != nil {
			return utils.SendBadRequest(c, "Invalid request body", nil)
		}

		habitID, err := uuid.Parse(req.HabitID)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid habit_id", map[string]string{
				"habit_id": req.HabitID,
			})
		}

		date, err := engine.ParseDay(req.Date)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid date, expected YYYY-MM-DD", map[string]string{
				"date": req.Date,
			})
		}

		today, err := resolveToday(c)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid today parameter, expected YYYY-MM-DD", nil)
		}

		if err := webApp.Freeze.ApplyFreeze(c.Context(), ownerID, habitID, date, today); err != nil {
			return utils.SendDomainError(c, err)
		}

		balance, err := webApp.Freeze.Balance(c.Context(), ownerID)
		if err != nil {
			return utils.SendDomainError(c, err)
		}

		slog.Info("Freeze applied",
			slog.String("owner_id", ownerID),
			slog.String("habit_id", habitID.String()),
			slog.String("date", engine.DayKey(date)))

		return utils.SendSuccess(c, fiber.Map{
			"habit_id":       habitID,
			"date":           engine.DayKey(date),
			"freeze_balance": balance,
		}, "Freeze applied")
	}
}

// RewardStatus reports the current sign-in cycle without advancing it.
func RewardStatus(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID := c.Params("id")

		today, err := resolveToday(c)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid today parameter, expected YYYY-MM-DD", nil)
		}

		status, err := webApp.Reward.Status(c.Context(), ownerID, today)
		if err != nil {
			return utils.SendDomainError(c, err)
		}

		return utils.SendSuccess(c, status, "Reward status retrieved")
	}
}

// RewardClaim claims today's daily reward.
func RewardClaim(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID := c.Params("id")

		today, err := resolveToday(c)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid today parameter, expected YYYY-MM-DD", nil)
		}

		result, err := webApp.Reward.Claim(c.Context(), ownerID, today)
		if err != nil {
			return utils.SendDomainError(c, err)
		}

		return utils.SendSuccess(c, result, "Daily reward claimed")
	}
}

// LeaderboardView builds the ranked view for the requested metric. The
// requester query parameter pins that user's own entry below the cutoff.
func LeaderboardView(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		metric := services.Metric(c.Query("metric", string(services.MetricStreak)))
		if metric != services.MetricStreak && metric != services.MetricCompletion {
			return utils.SendBadRequest(c, "Unknown metric", map[string]string{
				"metric": string(metric),
			})
		}

		limit := 10
		if raw := c.Query("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > 100 {
				return utils.SendBadRequest(c, "Limit must be between 1 and 100", nil)
			}
			limit = parsed
		}

		today, err := resolveToday(c)
		if err != nil {
			return utils.SendBadRequest(c, "Invalid today parameter, expected YYYY-MM-DD", nil)
		}

		board, err := webApp.Leaderboard.Build(c.Context(), metric, limit, c.Query("requester"), today)
		if err != nil {
			slog.Error("Failed to build leaderboard",
				slog.String("metric", string(metric)),
				slog.String("error", err.Error()))
			return utils.SendDomainError(c, err)
		}

		return utils.SendSuccess(c, board, "Leaderboard retrieved")
	}
}

// HabitSearch fuzzy-matches the owner's habits by name.
func HabitSearch(webApp *WebApp) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID := c.Params("id")

		results, err := webApp.Search.SearchHabits(c.Context(), ownerID, c.Query("q"))
		if err != nil {
			return utils.SendDomainError(c, err)
		}

		return utils.SendSuccess(c, fiber.Map{
			"query":  c.Query("q"),
			"habits": results,
		}, "Habit search completed")
	}
}
