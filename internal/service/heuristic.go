package service

import (
	"context"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// heuristicStrategy looks one ply ahead: win if it can, block if it must, otherwise play at random.
type heuristicStrategy struct {
	fallback *randomStrategy
}

func NewHeuristicStrategy(rng *rand.Rand) MoveStrategy {
	return &heuristicStrategy{fallback: &randomStrategy{rng: rng}}
}

func (that *heuristicStrategy) Level() string {
	return entity.LevelMedium
}

func (that *heuristicStrategy) ChooseMove(_ context.Context, board *entity.Board) (int, error) {
	me := board.NextSymbol()

	if cell, ok := completePair(board, me); ok {
		return cell, nil
	}

	if cell, ok := completePair(board, me.Opponent()); ok {
		return cell, nil
	}

	return that.fallback.randomMove(board)
}

// completePair returns the empty cell of the first line where symbol already has two marks.
func completePair(board *entity.Board, symbol entity.Cell) (int, bool) {
	pairs := board.PairsThreatenedBy(symbol)
	if len(pairs) == 0 {
		return -1, false
	}

	return board.EmptyCellOf(pairs[0])
}
