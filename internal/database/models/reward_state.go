package models

import (
	"time"

	"github.com/uptrace/bun"
)

// RewardState tracks a user's position in the rolling 7-day sign-in cycle.
// Created lazily on first status check or claim; TotalPoints and
// FreezeTokensEarned only ever grow.
type RewardState struct {
	bun.BaseModel `bun:"table:reward_states,alias:rs"`

	OwnerID            string    `bun:"owner_id,pk,notnull"`
	CurrentDay         int       `bun:"current_day,notnull,default:1"`
	LastClaimedDate    time.Time `bun:"last_claimed_date,notnull,type:date"`
	TotalPoints        int64     `bun:"total_points,notnull,default:0"`
	FreezeTokensEarned int       `bun:"freeze_tokens_earned,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
