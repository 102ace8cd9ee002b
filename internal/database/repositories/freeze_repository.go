package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/lunarfavor/habitkit/internal/database/models"
	"github.com/lunarfavor/habitkit/internal/habits"
	"github.com/uptrace/bun"
)

type FreezeRepository interface {
	GetByOwner(ctx context.Context, ownerID string) ([]*models.FreezeRecord, error)
	GetByHabit(ctx context.Context, habitID uuid.UUID) ([]*models.FreezeRecord, error)
	GetBalance(ctx context.Context, ownerID string) (int, error)
	DecrementBalanceAndInsert(ctx context.Context, ownerID string, habitID uuid.UUID, date time.Time) error
	IncrementBalance(ctx context.Context, ownerID string, count int) error
}

type freezeRepository struct {
	db *bun.DB
}

func NewFreezeRepository(db *bun.DB) FreezeRepository {
	return &freezeRepository{db: db}
}

func (r *freezeRepository) GetByOwner(ctx context.Context, ownerID string) ([]*models.FreezeRecord, error) {
	var list []*models.FreezeRecord
	err := r.db.NewSelect().
		Model(&list).
		Where("owner_id = ?", ownerID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	return list, nil
}

func (r *freezeRepository) GetByHabit(ctx context.Context, habitID uuid.UUID) ([]*models.FreezeRecord, error) {
	var list []*models.FreezeRecord
	err := r.db.NewSelect().
		Model(&list).
		Where("habit_id = ?", habitID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	return list, nil
}

func (r *freezeRepository) GetBalance(ctx context.Context, ownerID string) (int, error) {
	var user models.User
	err := r.db.NewSelect().
		Model(&user).
		Column("freeze_balance").
		Where("id = ?", ownerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	return user.FreezeBalance, nil
}

// DecrementBalanceAndInsert spends one freeze token and records the freeze
// in a single transaction. The decrement is a conditional UPDATE guarded by
// the balance itself, never a read followed by a write: two concurrent
// spends against a balance of 1 yield exactly one success. Any failure
// rolls the whole transaction back, so the balance and the record move
// together or not at all.
func (r *freezeRepository) DecrementBalanceAndInsert(ctx context.Context, ownerID string, habitID uuid.UUID, date time.Time) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	defer tx.Rollback()

	// A day with a completion record needs no protection.
	exists, err := tx.NewSelect().
		Model((*models.CompletionRecord)(nil)).
		Where("habit_id = ?", habitID).
		Where("date = ?", date).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	if exists {
		return habits.ErrAlreadyProtected
	}

	res, err := tx.NewUpdate().
		Model((*models.User)(nil)).
		Set("freeze_balance = freeze_balance - 1").
		Set("updated_at = ?", time.Now()).
		Where("id = ?", ownerID).
		Where("freeze_balance >= 1").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return habits.ErrInsufficientFreezeTokens
	}

	rec := &models.FreezeRecord{
		HabitID:   habitID,
		OwnerID:   ownerID,
		Date:      date,
		CreatedAt: time.Now(),
	}
	ins, err := tx.NewInsert().
		Model(rec).
		On("CONFLICT (habit_id, date) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	if n, _ := ins.RowsAffected(); n == 0 {
		// Duplicate freeze; rolling back restores the spent token.
		return habits.ErrAlreadyProtected
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}

	slog.Debug("Freeze applied",
		slog.String("type", "db"),
		slog.String("owner_id", ownerID),
		slog.String("habit_id", habitID.String()),
		slog.Time("date", date))
	return nil
}

func (r *freezeRepository) IncrementBalance(ctx context.Context, ownerID string, count int) error {
	if count <= 0 {
		return nil
	}
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("freeze_balance = freeze_balance + ?", count).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", ownerID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	return nil
}
