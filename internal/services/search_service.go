package services

import (
	"context"
	"strings"

	"github.com/lunarfavor/habitkit/internal/database/models"
	"github.com/lunarfavor/habitkit/internal/database/repositories"
	"github.com/sahilm/fuzzy"
)

// habitSource implements fuzzy.Source over a habit list.
type habitSource []*models.Habit

func (h habitSource) String(i int) string { return strings.ToLower(h[i].Name) }
func (h habitSource) Len() int            { return len(h) }

// SearchService resolves habit names fuzzily so clients can jump to a habit
// without an exact name.
type SearchService struct {
	habitRepo repositories.HabitRepository
}

func NewSearchService(habitRepo repositories.HabitRepository) *SearchService {
	return &SearchService{habitRepo: habitRepo}
}

// SearchHabits returns the owner's habits matching the query, best match
// first. An empty query returns everything in creation order.
func (s *SearchService) SearchHabits(ctx context.Context, ownerID, query string) ([]*models.Habit, error) {
	habitList, err := s.habitRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return habitList, nil
	}

	source := habitSource(habitList)
	matches := fuzzy.FindFrom(query, source)

	out := make([]*models.Habit, 0, len(matches))
	for _, m := range matches {
		out = append(out, habitList[m.Index])
	}
	return out, nil
}
