package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// memoryResult keeps results for the lifetime of the process, used when Redis is disabled.
type memoryResult struct {
	mu      sync.Mutex
	results map[string]entity.GameResult
	stats   map[string]map[entity.Cell]int
}

func NewMemoryResultRepository() ResultRepository {
	return &memoryResult{
		results: make(map[string]entity.GameResult),
		stats:   make(map[string]map[entity.Cell]int),
	}
}

func (that *memoryResult) Save(_ context.Context, result *entity.GameResult) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.results[result.ID] = *result

	matchup := result.Matchup()
	counts, ok := that.stats[matchup]
	if !ok {
		counts = make(map[entity.Cell]int)
		that.stats[matchup] = counts
	}
	counts[result.Winner]++

	return nil
}

func (that *memoryResult) GetByID(_ context.Context, id string) (*entity.GameResult, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	result, ok := that.results[id]
	if !ok {
		return nil, ErrResultNotFound
	}

	return &result, nil
}

func (that *memoryResult) Stats(_ context.Context) ([]entity.Stats, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	stats := make([]entity.Stats, 0, len(that.stats))
	for matchup, counts := range that.stats {
		cp := make(map[entity.Cell]int, len(counts))
		for mark, n := range counts {
			cp[mark] = n
		}
		stats = append(stats, entity.Stats{Matchup: matchup, Counts: cp})
	}

	sortStats(stats)

	return stats, nil
}

func sortStats(stats []entity.Stats) {
	slices.SortFunc(stats, func(a, b entity.Stats) int {
		return strings.Compare(a.Matchup, b.Matchup)
	})
}
