package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CompletionRecord marks a habit as done on a calendar day. At most one row
// exists per (habit, date); the user toggle deletes it again.
type CompletionRecord struct {
	bun.BaseModel `bun:"table:completions,alias:c"`

	ID      int64     `bun:"id,pk,autoincrement"`
	HabitID uuid.UUID `bun:"habit_id,notnull,type:uuid"`
	OwnerID string    `bun:"owner_id,notnull"`
	Date    time.Time `bun:"date,notnull,type:date"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// FreezeRecord retroactively marks a missed scheduled day as satisfied. Rows
// are only ever created by the freeze ledger, never updated or deleted, and
// the (habit_id, date) pair is unique.
type FreezeRecord struct {
	bun.BaseModel `bun:"table:freezes,alias:f"`

	ID      int64     `bun:"id,pk,autoincrement"`
	HabitID uuid.UUID `bun:"habit_id,notnull,type:uuid"`
	OwnerID string    `bun:"owner_id,notnull"`
	Date    time.Time `bun:"date,notnull,type:date"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
