package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lunarfavor/habitkit/internal/database/models"
	"github.com/lunarfavor/habitkit/internal/database/repositories"
	"github.com/lunarfavor/habitkit/internal/engine"
)

// HabitStats is the per-habit projection served to dashboards.
type HabitStats struct {
	HabitID           uuid.UUID `json:"habit_id"`
	Name              string    `json:"name"`
	Schedule          string    `json:"schedule"`
	CurrentStreak     int       `json:"current_streak"`
	LongestStreak     int       `json:"longest_streak"`
	MonthCompletion   int       `json:"month_completion"`
	ElapsedCompletion int       `json:"elapsed_completion"`
	SatisfiedToday    bool      `json:"satisfied_today"`
	ScheduledToday    bool      `json:"scheduled_today"`
}

// StatsService derives streaks and completion percentages from a per-owner
// snapshot fetched once per request. All computation after the fetch is pure;
// "today" always comes from the caller.
type StatsService struct {
	habitRepo      repositories.HabitRepository
	completionRepo repositories.CompletionRepository
	freezeRepo     repositories.FreezeRepository
}

func NewStatsService(
	habitRepo repositories.HabitRepository,
	completionRepo repositories.CompletionRepository,
	freezeRepo repositories.FreezeRepository,
) *StatsService {
	return &StatsService{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		freezeRepo:     freezeRepo,
	}
}

// OwnerSnapshot returns the owner's habits with the merged satisfied-day set
// per habit. Completions and freezes land in one set, so a day backed by
// both records counts once.
func (s *StatsService) OwnerSnapshot(ctx context.Context, ownerID string) ([]*models.Habit, map[uuid.UUID]engine.DateSet, error) {
	habitList, err := s.habitRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}

	completions, err := s.completionRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}

	freezes, err := s.freezeRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, nil, err
	}

	sets := make(map[uuid.UUID]engine.DateSet, len(habitList))
	for _, h := range habitList {
		sets[h.ID] = make(engine.DateSet)
	}
	for _, c := range completions {
		if set, ok := sets[c.HabitID]; ok {
			set.Add(c.Date)
		}
	}
	for _, f := range freezes {
		if set, ok := sets[f.HabitID]; ok {
			set.Add(f.Date)
		}
	}
	return habitList, sets, nil
}

// HabitStats computes the dashboard projection for every habit the owner
// has, as of the given day.
func (s *StatsService) HabitStats(ctx context.Context, ownerID string, today time.Time) ([]*HabitStats, error) {
	start := time.Now()

	habitList, sets, err := s.OwnerSnapshot(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	monthStart, monthEnd := engine.MonthBounds(today)

	stats := make([]*HabitStats, 0, len(habitList))
	for _, h := range habitList {
		set := sets[h.ID]
		stats = append(stats, &HabitStats{
			HabitID:           h.ID,
			Name:              h.Name,
			Schedule:          string(h.Schedule),
			CurrentStreak:     engine.CurrentStreak(h, set, today),
			LongestStreak:     engine.LongestStreak(h, set),
			MonthCompletion:   engine.MonthCompletion(h, set, monthStart, monthEnd),
			ElapsedCompletion: engine.ElapsedCompletion(h, set, monthStart, today),
			SatisfiedToday:    set.Contains(today),
			ScheduledToday:    engine.IsScheduled(h, today),
		})
	}

	slog.Debug("Habit stats computed",
		slog.String("type", "sys"),
		slog.String("owner_id", ownerID),
		slog.Int("habits", len(stats)),
		slog.Duration("took", time.Since(start)))
	return stats, nil
}
