package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/lunarfavor/habitkit/internal/database/models"
	"github.com/lunarfavor/habitkit/internal/database/repositories"
	"github.com/lunarfavor/habitkit/internal/engine"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

type Metric string

const (
	MetricStreak     Metric = "streak"
	MetricCompletion Metric = "completion"
)

const (
	leaderboardCacheSize = 64
	leaderboardCacheTTL  = time.Minute
	parallelSnapshots    = 8
)

// LeaderboardEntry is derived per request and never persisted.
type LeaderboardEntry struct {
	OwnerID       string `json:"owner_id"`
	DisplayName   string `json:"display_name"`
	HighestStreak int    `json:"highest_streak"`
	AvgCompletion int    `json:"avg_completion"`
	HabitCount    int    `json:"habit_count"`
	Rank          int    `json:"rank"`
}

// Leaderboard is the capped view plus the requester's own entry when their
// rank falls outside the visible list.
type Leaderboard struct {
	Top        []*LeaderboardEntry `json:"top"`
	Requester  *LeaderboardEntry   `json:"requester,omitempty"`
	TotalUsers int                 `json:"total_users"`
}

type cachedRanking struct {
	entries   []*LeaderboardEntry
	timestamp time.Time
}

// LeaderboardService ranks all users by their habit consistency. The per-user
// computation is pure over a snapshot, so users are scored in parallel; the
// full ranking is cached briefly since every requester shares it.
type LeaderboardService struct {
	userRepo repositories.UserRepository
	stats    *StatsService
	cache    *lru.Cache
}

func NewLeaderboardService(userRepo repositories.UserRepository, stats *StatsService) *LeaderboardService {
	cache, _ := lru.New(leaderboardCacheSize)
	return &LeaderboardService{
		userRepo: userRepo,
		stats:    stats,
		cache:    cache,
	}
}

// Build ranks every user descending by the chosen metric and returns the
// first cap entries. Ranking uses the longest-streak definition, not the
// live current streak, and the completion metric is the mean full-month
// percentage for the month containing today. Ties break ascending by owner
// id so the ordering is deterministic across runs.
func (s *LeaderboardService) Build(ctx context.Context, metric Metric, cap int, requesterID string, today time.Time) (*Leaderboard, error) {
	if cap <= 0 {
		cap = 10
	}
	today = engine.Day(today)

	entries, err := s.ranking(ctx, metric, today)
	if err != nil {
		return nil, err
	}

	board := &Leaderboard{TotalUsers: len(entries)}
	if len(entries) > cap {
		board.Top = entries[:cap]
	} else {
		board.Top = entries
	}

	for _, e := range entries {
		if e.OwnerID == requesterID {
			if e.Rank > cap {
				board.Requester = e
			}
			break
		}
	}
	return board, nil
}

func (s *LeaderboardService) ranking(ctx context.Context, metric Metric, today time.Time) ([]*LeaderboardEntry, error) {
	key := fmt.Sprintf("%s:%s", metric, engine.DayKey(today))
	if v, ok := s.cache.Get(key); ok {
		cached := v.(cachedRanking)
		if time.Since(cached.timestamp) < leaderboardCacheTTL {
			return cached.entries, nil
		}
		s.cache.Remove(key)
	}

	start := time.Now()

	// GetAll orders by owner id, and the stable sort below preserves that
	// order among ties.
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]*LeaderboardEntry, len(users))
	monthStart, monthEnd := engine.MonthBounds(today)

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(parallelSnapshots)

	for i, user := range users {
		i, user := i, user
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			entry, err := s.scoreUser(gctx, user, monthStart, monthEnd)
			if err != nil {
				return fmt.Errorf("scoring user %s: %w", user.ID, err)
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if metric == MetricCompletion {
			return entries[i].AvgCompletion > entries[j].AvgCompletion
		}
		return entries[i].HighestStreak > entries[j].HighestStreak
	})
	for i, e := range entries {
		e.Rank = i + 1
	}

	slog.Debug("Leaderboard built",
		slog.String("type", "sys"),
		slog.String("metric", string(metric)),
		slog.Int("users", len(entries)),
		slog.Duration("took", time.Since(start)))

	s.cache.Add(key, cachedRanking{entries: entries, timestamp: time.Now()})
	return entries, nil
}

func (s *LeaderboardService) scoreUser(ctx context.Context, user *models.User, monthStart, monthEnd time.Time) (*LeaderboardEntry, error) {
	habitList, sets, err := s.stats.OwnerSnapshot(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	entry := &LeaderboardEntry{
		OwnerID:     user.ID,
		DisplayName: user.Name(),
		HabitCount:  len(habitList),
	}
	if len(habitList) == 0 {
		return entry, nil
	}

	completionSum := 0
	for _, h := range habitList {
		set := sets[h.ID]
		if streak := engine.LongestStreak(h, set); streak > entry.HighestStreak {
			entry.HighestStreak = streak
		}
		completionSum += engine.MonthCompletion(h, set, monthStart, monthEnd)
	}
	entry.AvgCompletion = (completionSum + len(habitList)/2) / len(habitList)
	return entry, nil
}
