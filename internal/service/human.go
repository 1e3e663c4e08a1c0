package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	PromptCoordinates = "Enter the coordinates: "

	MsgNotNumbers = "You should enter numbers!"
	MsgOutOfRange = "Coordinates should be from 1 to 3!"
	MsgOccupied   = "This cell is occupied! Choose another one!"
)

var (
	errNotNumbers = errors.New("coordinates are not numbers")
	errOutOfRange = errors.New("coordinates out of range")
	errOccupied   = errors.New("cell is occupied")
)

type humanStrategy struct {
	input InputSource
}

func NewHumanStrategy(input InputSource) MoveStrategy {
	return &humanStrategy{input: input}
}

func (that *humanStrategy) Level() string {
	return entity.LevelUser
}

// ChooseMove keeps asking until the answer names an empty cell. It fails only when the input does.
func (that *humanStrategy) ChooseMove(ctx context.Context, board *entity.Board) (int, error) {
	for {
		line, err := that.input.ReadLine(ctx, PromptCoordinates)
		if err != nil {
			return -1, fmt.Errorf("failed to read coordinates: %w", err)
		}

		index, err := parseCoordinates(board, line)
		switch {
		case err == nil:
			return index, nil
		case errors.Is(err, errNotNumbers):
			that.input.Notify(MsgNotNumbers)
		case errors.Is(err, errOutOfRange):
			that.input.Notify(MsgOutOfRange)
		case errors.Is(err, errOccupied):
			that.input.Notify(MsgOccupied)
		}
	}
}

// parseCoordinates - resolves "col row" to an empty board index.
func parseCoordinates(board *entity.Board, line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 { //nolint: mnd // column and row
		return -1, errNotNumbers
	}

	col, err := strconv.Atoi(fields[0])
	if err != nil {
		return -1, errNotNumbers
	}

	row, err := strconv.Atoi(fields[1])
	if err != nil {
		return -1, errNotNumbers
	}

	index, err := entity.IndexFromCoordinates(col, row)
	if err != nil {
		return -1, errOutOfRange
	}

	if board[index] != entity.EmptyCell {
		return -1, errOccupied
	}

	return index, nil
}
