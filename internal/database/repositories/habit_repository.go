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

type HabitRepository interface {
	Create(ctx context.Context, habit *models.Habit) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Habit, error)
	GetOwned(ctx context.Context, ownerID string, id uuid.UUID) (*models.Habit, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*models.Habit, error)
}

type habitRepository struct {
	db *bun.DB
}

func NewHabitRepository(db *bun.DB) HabitRepository {
	return &habitRepository{db: db}
}

func (r *habitRepository) Create(ctx context.Context, habit *models.Habit) error {
	if habit.ID == uuid.Nil {
		habit.ID = uuid.New()
	}
	habit.CreatedAt = time.Now()
	habit.UpdatedAt = time.Now()
	_, err := r.db.NewInsert().Model(habit).Exec(ctx)
	return err
}

func (r *habitRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Habit, error) {
	habit := new(models.Habit)
	err := r.db.NewSelect().
		Model(habit).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, habits.ErrHabitNotFound
		}
		return nil, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	return habit, nil
}

// GetOwned resolves a habit only when it belongs to the given owner. A habit
// owned by someone else is indistinguishable from a missing one.
func (r *habitRepository) GetOwned(ctx context.Context, ownerID string, id uuid.UUID) (*models.Habit, error) {
	habit := new(models.Habit)
	err := r.db.NewSelect().
		Model(habit).
		Where("id = ?", id).
		Where("owner_id = ?", ownerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, habits.ErrHabitNotFound
		}
		return nil, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	return habit, nil
}

func (r *habitRepository) GetByOwner(ctx context.Context, ownerID string) ([]*models.Habit, error) {
	slog.Debug("HabitRepository.GetByOwner called",
		slog.String("type", "db"),
		slog.String("operation", "GetByOwner"),
		slog.String("owner_id", ownerID))

	var list []*models.Habit
	err := r.db.NewSelect().
		Model(&list).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", habits.ErrTransient, err)
	}
	return list, nil
}
