package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.GameResult) error
	Stats(ctx context.Context) ([]entity.Stats, error)
}

type GameUseCase struct {
	logger  *slog.Logger
	results resultRepo
	rng     *rand.Rand
	input   service.InputSource
}

func NewGameUseCase(logger *slog.Logger, results resultRepo, rng *rand.Rand, input service.InputSource) *GameUseCase {
	return &GameUseCase{
		logger:  logger,
		results: results,
		rng:     rng,
		input:   input,
	}
}

// Play - creates a fresh board and both sides for a start command, plays it out and records the result.
func (that *GameUseCase) Play(ctx context.Context, cmd Command, listener tictactoe.Listener) (*entity.GameResult, error) {
	if cmd.Name != CommandStart {
		return nil, fmt.Errorf("%w: %q is not a start command", apperror.ErrInvalidCommand, cmd.Name)
	}

	log := that.logger.With("method", "Play", "side1", cmd.Side1, "side2", cmd.Side2)

	board := entity.NewBoard()

	side1, err := service.NewStrategy(cmd.Side1, board, that.rng, that.input)
	if err != nil {
		return nil, fmt.Errorf("failed to create first side: %w", err)
	}

	side2, err := service.NewStrategy(cmd.Side2, board, that.rng, that.input)
	if err != nil {
		return nil, fmt.Errorf("failed to create second side: %w", err)
	}

	log.Info("game started")

	session := tictactoe.NewSession(that.logger, board, side1, side2, listener)

	winner, err := session.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to play game: %w", err)
	}

	result := &entity.GameResult{
		ID:         uuid.NewString(),
		Side1:      cmd.Side1,
		Side2:      cmd.Side2,
		Winner:     winner,
		Moves:      session.Moves(),
		Board:      *board,
		FinishedAt: time.Now().UTC(),
	}

	if err = that.results.Save(ctx, result); err != nil {
		log.Error("failed to save result", "error", err, "result", result.ID)
	}

	return result, nil
}

func (that *GameUseCase) Stats(ctx context.Context) ([]entity.Stats, error) {
	stats, err := that.results.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}
