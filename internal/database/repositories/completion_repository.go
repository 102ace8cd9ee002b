package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lunarfavor/habitkit/internal/database/models"
	"github.com/lunarfavor/habitkit/internal/habits"
	"github.com/uptrace/bun"
)

type CompletionRepository interface {
	GetByOwner(ctx context.Context, ownerID string) ([]*models.CompletionRecord, error)
	GetByHabit(ctx context.Context, habitID uuid.UUID) ([]*models.CompletionRecord, error)
	GetByHabitInRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]*models.CompletionRecord, error)
	Toggle(ctx context.Context, rec *models.CompletionRecord) (created bool, err error)
}

type completionRepository struct {
	db *bun.DB
}

func NewCompletionRepository(db *bun.DB) CompletionRepository {
	return &completionRepository{db: db}
}

func (r *completionRepository) GetByOwner(ctx context.Context, ownerID string) ([]*models.CompletionRecord, error) {
	var list []*models.CompletionRecord
	err := r.db.NewSelect().
		Model(&list).
		Where("owner_id = ?", ownerID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	return list, nil
}

func (r *completionRepository) GetByHabit(ctx context.Context, habitID uuid.UUID) ([]*models.CompletionRecord, error) {
	var list []*models.CompletionRecord
	err := r.db.NewSelect().
		Model(&list).
		Where("habit_id = ?", habitID).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	return list, nil
}

func (r *completionRepository) GetByHabitInRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]*models.CompletionRecord, error) {
	var list []*models.CompletionRecord
	err := r.db.NewSelect().
		Model(&list).
		Where("habit_id = ?", habitID).
		Where("date >= ? AND date <= ?", from, to).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	return list, nil
}

// Toggle inserts the completion, or deletes the existing row when the day is
// already completed. At most one row per (habit, date) either way.
func (r *completionRepository) Toggle(ctx context.Context, rec *models.CompletionRecord) (bool, error) {
	res, err := r.db.NewDelete().
		Model((*models.CompletionRecord)(nil)).
		Where("habit_id = ?", rec.HabitID).
		Where("date = ?", rec.Date).
		Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return false, nil
	}

	rec.CreatedAt = time.Now()
	if _, err := r.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		return false, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	return true, nil
}
