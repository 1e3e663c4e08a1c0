package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

type moveChooser interface {
	ChooseMove(ctx context.Context, board *entity.Board) (int, error)
	Level() string
}

// Listener is told about every step of a session, the console uses it to print the game.
type Listener interface {
	OnStart(board *entity.Board)
	OnTurn(level string, symbol entity.Cell)
	OnMove(board *entity.Board, index int)
	OnFinish(winner entity.Cell)
}

type nopListener struct{}

func (nopListener) OnStart(*entity.Board)      {}
func (nopListener) OnTurn(string, entity.Cell) {}
func (nopListener) OnMove(*entity.Board, int)  {}
func (nopListener) OnFinish(entity.Cell)       {}

// Session alternates two sides on one board until somebody wins or the board is full.
type Session struct {
	logger   *slog.Logger
	listener Listener

	board *entity.Board
	sides [2]moveChooser

	turn   int
	status string
	winner entity.Cell
}

func NewSession(logger *slog.Logger, board *entity.Board, side1, side2 moveChooser, listener Listener) *Session {
	if listener == nil {
		listener = nopListener{}
	}

	return &Session{
		logger:   logger.With("component", "session"),
		listener: listener,
		board:    board,
		sides:    [2]moveChooser{side1, side2},
		turn:     1,
		status:   StatusOngoing,
		winner:   entity.EmptyCell,
	}
}

// Run plays turns until the game is over and returns the winner, PlayerTie on a draw.
func (that *Session) Run(ctx context.Context) (entity.Cell, error) {
	that.listener.OnStart(that.board)

	for !that.IsFinished() {
		if err := that.Step(ctx); err != nil {
			return entity.EmptyCell, fmt.Errorf("session stopped at turn %d: %w", that.turn, err)
		}
	}

	return that.winner, nil
}

// Step - asks the side on turn for a move, applies it and checks for the end of the game.
func (that *Session) Step(ctx context.Context) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	side := that.activeSide()
	symbol := that.board.NextSymbol()
	that.listener.OnTurn(side.Level(), symbol)

	index, err := side.ChooseMove(ctx, that.board)
	if err != nil {
		return fmt.Errorf("%s failed to choose a move: %w", side.Level(), err)
	}

	if err = that.board.Place(index, symbol); err != nil {
		return fmt.Errorf("%s made an illegal move: %w", side.Level(), err)
	}

	that.logger.Debug("move accepted", "turn", that.turn, "level", side.Level(), "symbol", symbol, "cell", index)

	that.turn++
	that.listener.OnMove(that.board, index)
	that.updateGameStatus()

	return nil
}

func (that *Session) Board() *entity.Board {
	return that.board
}

// Turn is 1 before the first move and grows by one with every accepted move.
func (that *Session) Turn() int {
	return that.turn
}

func (that *Session) Moves() int {
	return that.turn - 1
}

func (that *Session) Winner() entity.Cell {
	return that.winner
}

func (that *Session) Status() string {
	return that.status
}

func (that *Session) IsFinished() bool {
	return that.status == StatusFinished
}

// activeSide - side 1 plays on odd turns, side 2 on even ones.
func (that *Session) activeSide() moveChooser {
	if that.turn%2 == 1 {
		return that.sides[0]
	}
	return that.sides[1]
}

func (that *Session) updateGameStatus() {
	switch winner := that.board.Result(); winner {
	case entity.PlayerX, entity.PlayerO, entity.PlayerTie:
		that.winner = winner
		that.status = StatusFinished
		that.logger.Info("game finished", "winner", winner, "moves", that.Moves())
		that.listener.OnFinish(winner)
	default:
		that.status = StatusOngoing
	}
}
