package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lunarfavor/habitkit/internal/database/models"
	"github.com/lunarfavor/habitkit/internal/habits"
	"github.com/uptrace/bun"
)

type RewardRepository interface {
	Get(ctx context.Context, ownerID string) (*models.RewardState, error)
	CreateFirstClaim(ctx context.Context, state *models.RewardState) (bool, error)
	ApplyClaim(ctx context.Context, ownerID string, prevClaimed time.Time, newDay int, today time.Time, points int64, freezeTokens int) (bool, error)
}

type rewardRepository struct {
	db *bun.DB
}

func NewRewardRepository(db *bun.DB) RewardRepository {
	return &rewardRepository{db: db}
}

// Get returns (nil, nil) when the owner has no reward state yet; the cycle
// state is created lazily on first claim.
func (r *rewardRepository) Get(ctx context.Context, ownerID string) (*models.RewardState, error) {
	state := new(models.RewardState)
	err := r.db.NewSelect().
		Model(state).
		Where("owner_id = ?", ownerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	return state, nil
}

// CreateFirstClaim inserts the day-1 state. The primary key absorbs a
// concurrent first claim: the loser's insert affects zero rows and reports
// false instead of double-awarding points.
func (r *rewardRepository) CreateFirstClaim(ctx context.Context, state *models.RewardState) (bool, error) {
	state.CreatedAt = time.Now()
	state.UpdatedAt = time.Now()
	res, err := r.db.NewInsert().
		Model(state).
		On("CONFLICT (owner_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ApplyClaim advances the cycle with an optimistic conditional update keyed
// on the last claimed date read by the caller. Zero rows affected means
// another claim landed in between; nothing is partially applied.
func (r *rewardRepository) ApplyClaim(ctx context.Context, ownerID string, prevClaimed time.Time, newDay int, today time.Time, points int64, freezeTokens int) (bool, error) {
	res, err := r.db.NewUpdate().
		Model((*models.RewardState)(nil)).
		Set("current_day = ?", newDay).
		Set("last_claimed_date = ?", today).
		Set("total_points = total_points + ?", points).
		Set("freeze_tokens_earned = freeze_tokens_earned + ?", freezeTokens).
		Set("updated_at = ?", time.Now()).
		Where("owner_id = ?", ownerID).
		Where("last_claimed_date = ?", prevClaimed).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
