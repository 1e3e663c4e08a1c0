package service

import (
	"context"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type randomStrategy struct {
	rng *rand.Rand
}

func NewRandomStrategy(rng *rand.Rand) MoveStrategy {
	return &randomStrategy{rng: rng}
}

func (that *randomStrategy) Level() string {
	return entity.LevelEasy
}

func (that *randomStrategy) ChooseMove(_ context.Context, board *entity.Board) (int, error) {
	return that.randomMove(board)
}

func (that *randomStrategy) randomMove(board *entity.Board) (int, error) {
	availableCells := board.EmptyIndices()
	if len(availableCells) == 0 {
		return -1, ErrNoAvailableMoves
	}

	return availableCells[that.rng.Intn(len(availableCells))], nil
}
