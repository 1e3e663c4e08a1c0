package apperror

import "errors"

var (
	ErrInvalidMove    = errors.New("invalid move")
	ErrInvalidCell    = errors.New("invalid cell index")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrInvalidCommand = errors.New("invalid command")
	ErrGameFinished   = errors.New("game is already finished")
	ErrNotFound       = errors.New("not found")
)
