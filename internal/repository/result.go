package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	resultKeyPrefix = "result:"
	statsKeyPrefix  = "stats:"
	matchupsKey     = "matchups"
)

var ErrResultNotFound = fmt.Errorf("result %w", apperror.ErrNotFound)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.GameResult) error
	GetByID(ctx context.Context, id string) (*entity.GameResult, error)
	Stats(ctx context.Context) ([]entity.Stats, error)
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save stores the result and bumps the tally of its matchup in one transaction.
func (that *dbResult) Save(ctx context.Context, result *entity.GameResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal result: %w", err)
	}

	matchup := result.Matchup()

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, resultKeyPrefix+result.ID, resultJSON, 0)
		pipe.HIncrBy(ctx, statsKeyPrefix+matchup, string(result.Winner), 1)
		pipe.SAdd(ctx, matchupsKey, matchup)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.GameResult, error) {
	response, err := that.client.Get(ctx, resultKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get result by id: %w", err)
	}

	var result entity.GameResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

func (that *dbResult) Stats(ctx context.Context) ([]entity.Stats, error) {
	matchups, err := that.client.SMembers(ctx, matchupsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list matchups: %w", err)
	}

	stats := make([]entity.Stats, 0, len(matchups))
	for _, matchup := range matchups {
		fields, err := that.client.HGetAll(ctx, statsKeyPrefix+matchup).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get stats for %s: %w", matchup, err)
		}

		counts := make(map[entity.Cell]int, len(fields))
		for mark, value := range fields {
			n, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("bad counter %s for %s: %w", mark, matchup, err)
			}
			counts[entity.Cell(mark)] = n
		}

		stats = append(stats, entity.Stats{Matchup: matchup, Counts: counts})
	}

	sortStats(stats)

	return stats, nil
}
