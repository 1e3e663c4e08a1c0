package service

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	winScore  = 10
	lossScore = -10
	drawScore = 0

	worstForMax = -100
	worstForMin = 100
)

// optimalStrategy searches the whole game tree. The player and opponent marks are
// fixed when the strategy is created and give the score its sign at every depth.
type optimalStrategy struct {
	player   entity.Cell
	opponent entity.Cell
}

type scoredMove struct {
	index int
	score int
}

func NewOptimalStrategy(board *entity.Board) MoveStrategy {
	player := board.NextSymbol()

	return &optimalStrategy{
		player:   player,
		opponent: player.Opponent(),
	}
}

func (that *optimalStrategy) Level() string {
	return entity.LevelHard
}

func (that *optimalStrategy) ChooseMove(_ context.Context, board *entity.Board) (int, error) {
	if len(board.EmptyIndices()) == 0 {
		return -1, ErrNoAvailableMoves
	}

	// the search owns its copy, the caller's board is never touched
	sim := *board
	best := that.minimax(&sim, board.NextSymbol())

	return best.index, nil
}

func (that *optimalStrategy) minimax(board *entity.Board, toMove entity.Cell) scoredMove {
	availableCells := board.EmptyIndices()

	switch {
	case board.IsWinning(that.opponent):
		return scoredMove{index: -1, score: lossScore}
	case board.IsWinning(that.player):
		return scoredMove{index: -1, score: winScore}
	case len(availableCells) == 0:
		return scoredMove{index: -1, score: drawScore}
	}

	moves := make([]scoredMove, 0, len(availableCells))
	for _, idx := range availableCells {
		board[idx] = toMove
		result := that.minimax(board, toMove.Opponent())
		board.Undo(idx)

		moves = append(moves, scoredMove{index: idx, score: result.score})
	}

	if toMove == that.player {
		best := scoredMove{index: -1, score: worstForMax}
		for _, move := range moves {
			if move.score > best.score {
				best = move
			}
		}
		return best
	}

	best := scoredMove{index: -1, score: worstForMin}
	for _, move := range moves {
		if move.score < best.score {
			best = move
		}
	}
	return best
}
