package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/lunarfavor/habitkit/internal/database/models"
	"github.com/lunarfavor/habitkit/internal/database/repositories"
	"github.com/lunarfavor/habitkit/internal/engine"
	"github.com/lunarfavor/habitkit/internal/habits"
)

const (
	// BasePointsPerClaim is awarded on every successful claim, including the
	// one that resets a broken cycle.
	BasePointsPerClaim = 10

	// RewardCycleLength is the length of the rolling sign-in cycle; reaching
	// the final day grants one freeze token.
	RewardCycleLength = 7
)

// RewardStatus is the read-only projection of the cycle. NextDay is the day
// a claim made today would record, using the same gap logic as Claim.
type RewardStatus struct {
	CurrentDay         int       `json:"current_day"`
	NextDay            int       `json:"next_day"`
	CanClaimToday      bool      `json:"can_claim_today"`
	LastClaimedDate    string    `json:"last_claimed_date,omitempty"`
	TotalPoints        int64     `json:"total_points"`
	FreezeTokensEarned int       `json:"freeze_tokens_earned"`
	Today              time.Time `json:"-"`
}

// ClaimResult reports the outcome of a successful claim.
type ClaimResult struct {
	State             *models.RewardState `json:"state"`
	PointsEarned      int64               `json:"points_earned"`
	FreezeTokenEarned bool                `json:"freeze_token_earned"`
}

// RewardService runs the 7-day sign-in cycle. The write path is a single
// conditional insert or update keyed on the last claimed date, so two
// concurrent claims on the same day produce exactly one award.
type RewardService struct {
	rewardRepo repositories.RewardRepository
	freezeRepo repositories.FreezeRepository
}

func NewRewardService(rewardRepo repositories.RewardRepository, freezeRepo repositories.FreezeRepository) *RewardService {
	return &RewardService{rewardRepo: rewardRepo, freezeRepo: freezeRepo}
}

// nextCycleDay applies the gap rules: same-day claims are rejected upstream,
// an unbroken chain advances and wraps 7 -> 1, and any longer gap restarts
// the cycle at day 1.
func nextCycleDay(currentDay, gap int) int {
	if gap == 1 {
		return (currentDay % RewardCycleLength) + 1
	}
	return 1
}

// Status projects the cycle state without mutating it. An owner with no
// state yet is virtually on day 1 and claimable.
func (s *RewardService) Status(ctx context.Context, ownerID string, today time.Time) (*RewardStatus, error) {
	today = engine.Day(today)

	state, err := s.rewardRepo.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return &RewardStatus{
			CurrentDay:    1,
			NextDay:       1,
			CanClaimToday: true,
			Today:         today,
		}, nil
	}

	gap := engine.DaysBetween(state.LastClaimedDate, today)
	status := &RewardStatus{
		CurrentDay:         state.CurrentDay,
		LastClaimedDate:    engine.DayKey(state.LastClaimedDate),
		TotalPoints:        state.TotalPoints,
		FreezeTokensEarned: state.FreezeTokensEarned,
		Today:              today,
	}
	if gap <= 0 {
		status.NextDay = state.CurrentDay
		return status, nil
	}

	status.CanClaimToday = true
	status.NextDay = nextCycleDay(state.CurrentDay, gap)
	return status, nil
}

// Claim advances the cycle for today. Base points are awarded on every
// successful claim, even when a gap broke the chain; finishing day 7 of an
// unbroken chain also credits one freeze token to the owner's balance.
func (s *RewardService) Claim(ctx context.Context, ownerID string, today time.Time) (*ClaimResult, error) {
	today = engine.Day(today)

	state, err := s.rewardRepo.Get(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if state == nil {
		return s.firstClaim(ctx, ownerID, today)
	}

	gap := engine.DaysBetween(state.LastClaimedDate, today)
	if gap == 0 {
		return nil, habits.ErrAlreadyClaimedToday
	}
	if gap < 0 {
		return nil, habits.ErrInvalidDate
	}

	newDay := nextCycleDay(state.CurrentDay, gap)
	freezeTokens := 0
	if gap == 1 && newDay == RewardCycleLength {
		freezeTokens = 1
	}

	ok, err := s.rewardRepo.ApplyClaim(ctx, ownerID, state.LastClaimedDate, newDay, today, BasePointsPerClaim, freezeTokens)
	if err != nil {
		return nil, err
	}
	if !ok {
		// A concurrent claim advanced the state first.
		return nil, habits.ErrAlreadyClaimedToday
	}

	if freezeTokens > 0 {
		if err := s.freezeRepo.IncrementBalance(ctx, ownerID, freezeTokens); err != nil {
			return nil, err
		}
	}

	state.CurrentDay = newDay
	state.LastClaimedDate = today
	state.TotalPoints += BasePointsPerClaim
	state.FreezeTokensEarned += freezeTokens

	slog.Info("Daily reward claimed",
		slog.String("type", "sys"),
		slog.String("owner_id", ownerID),
		slog.Int("day", newDay),
		slog.Bool("freeze_token", freezeTokens > 0))

	return &ClaimResult{
		State:             state,
		PointsEarned:      BasePointsPerClaim,
		FreezeTokenEarned: freezeTokens > 0,
	}, nil
}

func (s *RewardService) firstClaim(ctx context.Context, ownerID string, today time.Time) (*ClaimResult, error) {
	state := &models.RewardState{
		OwnerID:         ownerID,
		CurrentDay:      1,
		LastClaimedDate: today,
		TotalPoints:     BasePointsPerClaim,
	}

	created, err := s.rewardRepo.CreateFirstClaim(ctx, state)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, habits.ErrAlreadyClaimedToday
	}

	slog.Info("Daily reward cycle started",
		slog.String("type", "sys"),
		slog.String("owner_id", ownerID))

	return &ClaimResult{
		State:        state,
		PointsEarned: BasePointsPerClaim,
	}, nil
}
