package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type ScheduleKind string

const (
	ScheduleDaily  ScheduleKind = "daily"
	ScheduleWeekly ScheduleKind = "weekly"
	ScheduleCustom ScheduleKind = "custom"
)

type Habit struct {
	bun.BaseModel `bun:"table:habits,alias:h"`

	ID      uuid.UUID `bun:"id,pk,type:uuid"`
	OwnerID string    `bun:"owner_id,notnull"`
	Name    string    `bun:"name,notnull"`

	Schedule ScheduleKind `bun:"schedule,notnull,default:'daily'"`

	// Weekday indices 0 (Sunday) through 6 (Saturday); only meaningful for
	// weekly/custom schedules. Stored as JSONB like the other array columns.
	Weekdays []int `bun:"weekdays,type:jsonb"`

	StartDate time.Time `bun:"start_date,notnull,type:date"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}
