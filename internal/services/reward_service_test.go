package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lunarfavor/habitkit/internal/database/models"
	"github.com/lunarfavor/habitkit/internal/database/repositories/mock"
	"github.com/lunarfavor/habitkit/internal/engine"
	"github.com/lunarfavor/habitkit/internal/habits"
	"go.uber.org/mock/gomock"
)

func mustDay(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := engine.ParseDay(s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func rewardState(t *testing.T, day int, lastClaimed string, points int64, tokens int) *models.RewardState {
	return &models.RewardState{
		OwnerID:            "owner-1",
		CurrentDay:         day,
		LastClaimedDate:    mustDay(t, lastClaimed),
		TotalPoints:        points,
		FreezeTokensEarned: tokens,
	}
}

func TestRewardService_FirstClaim(t *testing.T) {
	ctrl := gomock.NewController(t)
	rewardRepo := mock.NewMockRewardRepository(ctrl)
	freezeRepo := mock.NewMockFreezeRepository(ctrl)

	today := mustDay(t, "2024-03-01")

	rewardRepo.EXPECT().Get(gomock.Any(), "owner-1").Return(nil, nil)
	rewardRepo.EXPECT().CreateFirstClaim(gomock.Any(), gomock.Any()).Return(true, nil)

	s := NewRewardService(rewardRepo, freezeRepo)
	res, err := s.Claim(context.Background(), "owner-1", today)
	if err != nil {
		t.Fatalf("Claim() error = %v", err)
	}
	if res.State.CurrentDay != 1 {
		t.Errorf("CurrentDay = %d, want 1", res.State.CurrentDay)
	}
	if res.PointsEarned != BasePointsPerClaim {
		t.Errorf("PointsEarned = %d, want %d", res.PointsEarned, BasePointsPerClaim)
	}
	if res.FreezeTokenEarned {
		t.Error("FreezeTokenEarned = true on first claim")
	}
}

func TestRewardService_ClaimGapRules(t *testing.T) {
	tests := []struct {
		name       string
		today      string
		wantDay    int
		wantTokens int
		wantErr    error
	}{
		{
			name:    "same day is rejected",
			today:   "2024-03-01",
			wantErr: habits.ErrAlreadyClaimedToday,
		},
		{
			name:    "consecutive day advances",
			today:   "2024-03-02",
			wantDay: 3,
		},
		{
			name:       "day six advances into seven and grants a token",
			today:      "2024-03-02",
			wantDay:    7,
			wantTokens: 1,
		},
		{
			name:    "day seven wraps to one",
			today:   "2024-03-02",
			wantDay: 1,
		},
		{
			name:    "gap of two resets to day one but still pays",
			today:   "2024-03-03",
			wantDay: 1,
		},
		{
			name:    "claim dated before the last claim is invalid",
			today:   "2024-02-28",
			wantErr: habits.ErrInvalidDate,
		},
	}

	startDays := []int{2, 2, 6, 7, 4, 4}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rewardRepo := mock.NewMockRewardRepository(ctrl)
			freezeRepo := mock.NewMockFreezeRepository(ctrl)

			state := rewardState(t, startDays[i], "2024-03-01", 100, 0)
			rewardRepo.EXPECT().Get(gomock.Any(), "owner-1").Return(state, nil)

			if tt.wantErr == nil {
				rewardRepo.EXPECT().
					ApplyClaim(gomock.Any(), "owner-1", mustDay(t, "2024-03-01"), tt.wantDay, mustDay(t, tt.today), int64(BasePointsPerClaim), tt.wantTokens).
					Return(true, nil)
				if tt.wantTokens > 0 {
					freezeRepo.EXPECT().IncrementBalance(gomock.Any(), "owner-1", tt.wantTokens).Return(nil)
				}
			}

			s := NewRewardService(rewardRepo, freezeRepo)
			res, err := s.Claim(context.Background(), "owner-1", mustDay(t, tt.today))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Claim() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Claim() error = %v", err)
			}
			if res.State.CurrentDay != tt.wantDay {
				t.Errorf("CurrentDay = %d, want %d", res.State.CurrentDay, tt.wantDay)
			}
			if got := res.FreezeTokenEarned; got != (tt.wantTokens > 0) {
				t.Errorf("FreezeTokenEarned = %v, want %v", got, tt.wantTokens > 0)
			}
		})
	}
}

// Seven consecutive claims starting from a day-1 state walk the cycle
// 2,3,4,5,6,7,1 and grant exactly one freeze token, at the entry into day 7.
func TestRewardService_SevenDaySequence(t *testing.T) {
	state := rewardState(t, 1, "2024-03-01", 10, 0)
	today := mustDay(t, "2024-03-02")

	wantDays := []int{2, 3, 4, 5, 6, 7, 1}
	tokens := 0

	for i, want := range wantDays {
		ctrl := gomock.NewController(t)
		rewardRepo := mock.NewMockRewardRepository(ctrl)
		freezeRepo := mock.NewMockFreezeRepository(ctrl)

		cur := *state
		rewardRepo.EXPECT().Get(gomock.Any(), "owner-1").Return(&cur, nil)
		rewardRepo.EXPECT().
			ApplyClaim(gomock.Any(), "owner-1", gomock.Any(), want, today, int64(BasePointsPerClaim), gomock.Any()).
			Return(true, nil)
		freezeRepo.EXPECT().IncrementBalance(gomock.Any(), "owner-1", gomock.Any()).Return(nil).AnyTimes()

		s := NewRewardService(rewardRepo, freezeRepo)
		res, err := s.Claim(context.Background(), "owner-1", today)
		if err != nil {
			t.Fatalf("claim %d: error = %v", i+1, err)
		}
		if res.State.CurrentDay != want {
			t.Fatalf("claim %d: CurrentDay = %d, want %d", i+1, res.State.CurrentDay, want)
		}
		if res.FreezeTokenEarned {
			tokens++
			if want != 7 {
				t.Errorf("claim %d: token granted on day %d, want only day 7", i+1, want)
			}
		}

		state = res.State
		today = today.AddDate(0, 0, 1)
	}

	if tokens != 1 {
		t.Errorf("freeze tokens earned = %d, want exactly 1", tokens)
	}
}

// A conditional update that affects zero rows means another claim landed
// first; the caller sees the same conflict as a plain double claim.
func TestRewardService_ConcurrentClaimLosesCleanly(t *testing.T) {
	ctrl := gomock.NewController(t)
	rewardRepo := mock.NewMockRewardRepository(ctrl)
	freezeRepo := mock.NewMockFreezeRepository(ctrl)

	state := rewardState(t, 3, "2024-03-01", 30, 0)
	rewardRepo.EXPECT().Get(gomock.Any(), "owner-1").Return(state, nil)
	rewardRepo.EXPECT().
		ApplyClaim(gomock.Any(), "owner-1", gomock.Any(), 4, gomock.Any(), int64(BasePointsPerClaim), 0).
		Return(false, nil)

	s := NewRewardService(rewardRepo, freezeRepo)
	_, err := s.Claim(context.Background(), "owner-1", mustDay(t, "2024-03-02"))
	if !errors.Is(err, habits.ErrAlreadyClaimedToday) {
		t.Fatalf("Claim() error = %v, want %v", err, habits.ErrAlreadyClaimedToday)
	}
}

func TestRewardService_Status(t *testing.T) {
	tests := []struct {
		name      string
		hasState  bool
		today     string
		wantClaim bool
		wantNext  int
		wantCur   int
	}{
		{
			name:      "no state is virtually day one",
			today:     "2024-03-01",
			wantClaim: true,
			wantNext:  1,
			wantCur:   1,
		},
		{
			name:      "claimed today",
			hasState:  true,
			today:     "2024-03-01",
			wantClaim: false,
			wantNext:  3,
			wantCur:   3,
		},
		{
			name:      "next consecutive day",
			hasState:  true,
			today:     "2024-03-02",
			wantClaim: true,
			wantNext:  4,
			wantCur:   3,
		},
		{
			name:      "broken chain would reset",
			hasState:  true,
			today:     "2024-03-05",
			wantClaim: true,
			wantNext:  1,
			wantCur:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			rewardRepo := mock.NewMockRewardRepository(ctrl)
			freezeRepo := mock.NewMockFreezeRepository(ctrl)

			var state *models.RewardState
			if tt.hasState {
				state = rewardState(t, 3, "2024-03-01", 30, 0)
			}
			rewardRepo.EXPECT().Get(gomock.Any(), "owner-1").Return(state, nil)

			s := NewRewardService(rewardRepo, freezeRepo)
			status, err := s.Status(context.Background(), "owner-1", mustDay(t, tt.today))
			if err != nil {
				t.Fatalf("Status() error = %v", err)
			}
			if status.CanClaimToday != tt.wantClaim {
				t.Errorf("CanClaimToday = %v, want %v", status.CanClaimToday, tt.wantClaim)
			}
			if status.NextDay != tt.wantNext {
				t.Errorf("NextDay = %d, want %d", status.NextDay, tt.wantNext)
			}
			if status.CurrentDay != tt.wantCur {
				t.Errorf("CurrentDay = %d, want %d", status.CurrentDay, tt.wantCur)
			}
		})
	}
}
