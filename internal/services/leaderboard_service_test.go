package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lunarfavor/habitkit/internal/database/models"
	"github.com/lunarfavor/habitkit/internal/database/repositories/mock"
	"github.com/lunarfavor/habitkit/internal/engine"
	"go.uber.org/mock/gomock"
)

type boardFixture struct {
	users          []*models.User
	habitsByOwner  map[string][]*models.Habit
	streakByOwner  map[string]int // consecutive completed days from Jan 1
}

func newBoardService(t *testing.T, fx boardFixture) *LeaderboardService {
	t.Helper()
	ctrl := gomock.NewController(t)
	userRepo := mock.NewMockUserRepository(ctrl)
	habitRepo := mock.NewMockHabitRepository(ctrl)
	completionRepo := mock.NewMockCompletionRepository(ctrl)
	freezeRepo := mock.NewMockFreezeRepository(ctrl)

	userRepo.EXPECT().GetAll(gomock.Any()).Return(fx.users, nil).AnyTimes()

	for _, u := range fx.users {
		owner := u.ID
		habitList := fx.habitsByOwner[owner]
		habitRepo.EXPECT().GetByOwner(gomock.Any(), owner).Return(habitList, nil).AnyTimes()

		var completions []*models.CompletionRecord
		if len(habitList) > 0 {
			start, _ := engine.ParseDay("2024-01-01")
			for i := 0; i < fx.streakByOwner[owner]; i++ {
				completions = append(completions, &models.CompletionRecord{
					HabitID: habitList[0].ID,
					OwnerID: owner,
					Date:    start.AddDate(0, 0, i),
				})
			}
		}
		completionRepo.EXPECT().GetByOwner(gomock.Any(), owner).Return(completions, nil).AnyTimes()
		freezeRepo.EXPECT().GetByOwner(gomock.Any(), owner).Return(nil, nil).AnyTimes()
	}

	stats := NewStatsService(habitRepo, completionRepo, freezeRepo)
	return NewLeaderboardService(userRepo, stats)
}

func boardUser(id string) *models.User {
	return &models.User{ID: id, Username: id}
}

func dailyHabit(t *testing.T, owner string) []*models.Habit {
	return []*models.Habit{{
		ID:        uuid.New(),
		OwnerID:   owner,
		Name:      owner + " habit",
		Schedule:  models.ScheduleDaily,
		StartDate: mustDay(t, "2024-01-01"),
	}}
}

func TestLeaderboardService_Build(t *testing.T) {
	fx := boardFixture{
		users: []*models.User{boardUser("alice"), boardUser("bob"), boardUser("carol")},
		habitsByOwner: map[string][]*models.Habit{},
		streakByOwner: map[string]int{"alice": 10, "bob": 20},
	}
	fx.habitsByOwner["alice"] = dailyHabit(t, "alice")
	fx.habitsByOwner["bob"] = dailyHabit(t, "bob")

	s := newBoardService(t, fx)
	today := mustDay(t, "2024-01-31")

	board, err := s.Build(context.Background(), MetricStreak, 2, "alice", today)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if board.TotalUsers != 3 {
		t.Errorf("TotalUsers = %d, want 3", board.TotalUsers)
	}
	if len(board.Top) != 2 {
		t.Fatalf("len(Top) = %d, want 2", len(board.Top))
	}
	if board.Top[0].OwnerID != "bob" || board.Top[0].HighestStreak != 20 {
		t.Errorf("Top[0] = %s/%d, want bob/20", board.Top[0].OwnerID, board.Top[0].HighestStreak)
	}
	if board.Top[1].OwnerID != "alice" {
		t.Errorf("Top[1] = %s, want alice", board.Top[1].OwnerID)
	}
	// Requester is visible in the top list, so no separate entry.
	if board.Requester != nil {
		t.Errorf("Requester = %+v, want nil", board.Requester)
	}

	// Ranks form a strict permutation 1..N.
	seen := map[int]bool{}
	full, err := s.Build(context.Background(), MetricStreak, 10, "alice", today)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	for _, e := range full.Top {
		if seen[e.Rank] {
			t.Errorf("duplicate rank %d", e.Rank)
		}
		seen[e.Rank] = true
	}
	for r := 1; r <= 3; r++ {
		if !seen[r] {
			t.Errorf("missing rank %d", r)
		}
	}
}

func TestLeaderboardService_RequesterBelowCap(t *testing.T) {
	fx := boardFixture{
		users: []*models.User{boardUser("alice"), boardUser("bob"), boardUser("carol")},
		habitsByOwner: map[string][]*models.Habit{},
		streakByOwner: map[string]int{"alice": 10, "bob": 20},
	}
	fx.habitsByOwner["alice"] = dailyHabit(t, "alice")
	fx.habitsByOwner["bob"] = dailyHabit(t, "bob")

	s := newBoardService(t, fx)
	board, err := s.Build(context.Background(), MetricStreak, 2, "carol", mustDay(t, "2024-01-31"))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if board.Requester == nil {
		t.Fatal("Requester = nil, want carol's entry")
	}
	if board.Requester.OwnerID != "carol" || board.Requester.Rank != 3 {
		t.Errorf("Requester = %s/rank %d, want carol/rank 3", board.Requester.OwnerID, board.Requester.Rank)
	}
	for _, e := range board.Top {
		if e.OwnerID == "carol" {
			t.Error("carol appears in Top despite ranking below the cap")
		}
	}
	if board.Requester.HabitCount != 0 || board.Requester.HighestStreak != 0 {
		t.Errorf("habit-less user scored %d/%d, want 0/0", board.Requester.HabitCount, board.Requester.HighestStreak)
	}
}

// Equal scores keep the storage order, which is ascending owner id, so the
// ranking is reproducible across runs.
func TestLeaderboardService_DeterministicTieBreak(t *testing.T) {
	fx := boardFixture{
		users:         []*models.User{boardUser("u1"), boardUser("u2"), boardUser("u3")},
		habitsByOwner: map[string][]*models.Habit{},
		streakByOwner: map[string]int{},
	}

	s := newBoardService(t, fx)
	board, err := s.Build(context.Background(), MetricCompletion, 3, "", mustDay(t, "2024-01-31"))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	want := []string{"u1", "u2", "u3"}
	for i, e := range board.Top {
		if e.OwnerID != want[i] {
			t.Errorf("Top[%d] = %s, want %s", i, e.OwnerID, want[i])
		}
		if e.Rank != i+1 {
			t.Errorf("Top[%d].Rank = %d, want %d", i, e.Rank, i+1)
		}
	}
}

func TestLeaderboardService_CompletionMetric(t *testing.T) {
	fx := boardFixture{
		users: []*models.User{boardUser("alice"), boardUser("bob")},
		habitsByOwner: map[string][]*models.Habit{},
		streakByOwner: map[string]int{"alice": 31, "bob": 15},
	}
	fx.habitsByOwner["alice"] = dailyHabit(t, "alice")
	fx.habitsByOwner["bob"] = dailyHabit(t, "bob")

	s := newBoardService(t, fx)
	board, err := s.Build(context.Background(), MetricCompletion, 10, "", mustDay(t, "2024-01-31"))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if board.Top[0].OwnerID != "alice" || board.Top[0].AvgCompletion != 100 {
		t.Errorf("Top[0] = %s/%d%%, want alice/100%%", board.Top[0].OwnerID, board.Top[0].AvgCompletion)
	}
	if board.Top[1].AvgCompletion != 48 {
		t.Errorf("Top[1].AvgCompletion = %d, want 48", board.Top[1].AvgCompletion)
	}
}
