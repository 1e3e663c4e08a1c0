package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

// MoveStrategy picks the next cell for the side it plays. The caller applies the move.
type MoveStrategy interface {
	ChooseMove(ctx context.Context, board *entity.Board) (int, error)
	Level() string
}

// InputSource is where a human player's answers come from.
type InputSource interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
	Notify(message string)
}

// NewStrategy - creates the strategy for one of the levels user, easy, medium or hard.
func NewStrategy(level string, board *entity.Board, rng *rand.Rand, input InputSource) (MoveStrategy, error) {
	switch level {
	case entity.LevelUser:
		return NewHumanStrategy(input), nil
	case entity.LevelEasy:
		return NewRandomStrategy(rng), nil
	case entity.LevelMedium:
		return NewHeuristicStrategy(rng), nil
	case entity.LevelHard:
		return NewOptimalStrategy(board), nil
	default:
		return nil, fmt.Errorf("%w: unknown level %q", apperror.ErrInvalidCommand, level)
	}
}

// IsLevel reports whether NewStrategy knows the level.
func IsLevel(level string) bool {
	switch level {
	case entity.LevelUser, entity.LevelEasy, entity.LevelMedium, entity.LevelHard:
		return true
	default:
		return false
	}
}
