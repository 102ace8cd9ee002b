package models

import (
	"time"

	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID          string `bun:"id,pk,notnull"`
	Username    string `bun:"username,notnull"`
	DisplayName string `bun:"display_name"`

	// Consumable streak-protection tokens. Mutated only by atomic
	// increment/decrement, never read-then-written.
	FreezeBalance int `bun:"freeze_balance,notnull,default:0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:"updated_at,notnull"`
}

func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
