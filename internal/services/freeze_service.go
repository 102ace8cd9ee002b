package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lunarfavor/habitkit/internal/database/repositories"
	"github.com/lunarfavor/habitkit/internal/engine"
	"github.com/lunarfavor/habitkit/internal/habits"
)

// FreezeService is the consumable-token ledger. Spending a token and
// recording the protected day happen in one storage transaction; this layer
// only validates the deterministic preconditions first.
type FreezeService struct {
	habitRepo  repositories.HabitRepository
	freezeRepo repositories.FreezeRepository
}

func NewFreezeService(habitRepo repositories.HabitRepository, freezeRepo repositories.FreezeRepository) *FreezeService {
	return &FreezeService{habitRepo: habitRepo, freezeRepo: freezeRepo}
}

// ApplyFreeze protects one missed day for one of the owner's habits. Fails
// without any state change when the date is in the future, precedes the
// habit, is already protected or completed, or the owner has no tokens left.
func (s *FreezeService) ApplyFreeze(ctx context.Context, ownerID string, habitID uuid.UUID, date, today time.Time) error {
	date, today = engine.Day(date), engine.Day(today)

	habit, err := s.habitRepo.GetOwned(ctx, ownerID, habitID)
	if err != nil {
		return err
	}
	if date.After(today) {
		return habits.ErrFutureDate
	}
	if date.Before(engine.Day(habit.StartDate)) {
		return habits.ErrBeforeHabitStart
	}

	if err := s.freezeRepo.DecrementBalanceAndInsert(ctx, ownerID, habitID, date); err != nil {
		return err
	}

	slog.Info("Freeze token spent",
		slog.String("type", "sys"),
		slog.String("owner_id", ownerID),
		slog.String("habit_id", habitID.String()),
		slog.String("date", engine.DayKey(date)))
	return nil
}

// AwardFreezeTokens credits tokens to the owner's balance. Referral and
// reward-cycle collaborators share this primitive.
func (s *FreezeService) AwardFreezeTokens(ctx context.Context, ownerID string, count int) error {
	if count <= 0 {
		return nil
	}
	if err := s.freezeRepo.IncrementBalance(ctx, ownerID, count); err != nil {
		return err
	}
	slog.Info("Freeze tokens awarded",
		slog.String("type", "sys"),
		slog.String("owner_id", ownerID),
		slog.Int("count", count))
	return nil
}

// Balance reports the owner's current token count.
func (s *FreezeService) Balance(ctx context.Context, ownerID string) (int, error) {
	return s.freezeRepo.GetBalance(ctx, ownerID)
}
