package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Cell is the content of a single board square.
type Cell string

const (
	PlayerX   Cell = "X"
	PlayerO   Cell = "O"
	PlayerTie Cell = "-"

	EmptyCell Cell = ""
)

const (
	BoardSize = 9
	sideSize  = 3
)

// Line is a row, column or diagonal of three board indices.
type Line [3]int

// WinCombos lists every line in scan order: rows, then columns, then diagonals.
var WinCombos = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Opponent returns the other player's mark.
func (that Cell) Opponent() Cell {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Board is the 3x3 grid stored row-major, index 0 is top-left.
type Board [BoardSize]Cell

func NewBoard() *Board {
	return &Board{}
}

// ParseBoard builds a board from nine characters, '_' or ' ' marking an empty cell.
func ParseBoard(cells string) (*Board, error) {
	if len(cells) != BoardSize {
		return nil, fmt.Errorf("%w: board must have %d cells, got %d", apperror.ErrInvalidMove, BoardSize, len(cells))
	}

	board := NewBoard()
	for i, r := range cells {
		switch r {
		case 'X':
			board[i] = PlayerX
		case 'O':
			board[i] = PlayerO
		case '_', ' ':
			board[i] = EmptyCell
		default:
			return nil, fmt.Errorf("%w: unknown symbol %q at %d", apperror.ErrInvalidMove, r, i)
		}
	}

	return board, nil
}

// IndexFromCoordinates maps 1-indexed (column, row) to a board index, row 1 is the bottom row.
func IndexFromCoordinates(col, row int) (int, error) {
	if col < 1 || col > sideSize || row < 1 || row > sideSize {
		return -1, fmt.Errorf("%w: coordinates (%d, %d)", apperror.ErrInvalidMove, col, row)
	}

	return (sideSize-row)*sideSize + (col - 1), nil
}

// LinesContaining returns the lines passing through index, in scan order.
func (that *Board) LinesContaining(index int) []Line {
	lines := make([]Line, 0, 4) //nolint: mnd // the center belongs to four lines
	for _, line := range WinCombos {
		if line[0] == index || line[1] == index || line[2] == index {
			lines = append(lines, line)
		}
	}

	return lines
}

func (that *Board) EmptyIndices() []int {
	indices := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			indices = append(indices, i)
		}
	}

	return indices
}

// NextSymbol - X moves when both marks are equal in number, otherwise O.
func (that *Board) NextSymbol() Cell {
	if that.count(PlayerX) == that.count(PlayerO) {
		return PlayerX
	}
	return PlayerO
}

// PairsThreatenedBy returns lines holding exactly two symbol marks and an empty cell.
func (that *Board) PairsThreatenedBy(symbol Cell) []Line {
	var lines []Line
	for _, line := range WinCombos {
		marks, empty := 0, 0
		for _, idx := range line {
			switch that[idx] {
			case symbol:
				marks++
			case EmptyCell:
				empty++
			}
		}

		if marks == 2 && empty > 0 {
			lines = append(lines, line)
		}
	}

	return lines
}

// EmptyCellOf returns the first empty index of the line.
func (that *Board) EmptyCellOf(line Line) (int, bool) {
	for _, idx := range line {
		if that[idx] == EmptyCell {
			return idx, true
		}
	}

	return -1, false
}

func (that *Board) IsWinning(symbol Cell) bool {
	for _, line := range WinCombos {
		if that[line[0]] == symbol && that[line[1]] == symbol && that[line[2]] == symbol {
			return true
		}
	}

	return false
}

func (that *Board) IsFull() bool {
	return len(that.EmptyIndices()) == 0
}

// Result - X or O when that mark owns a line, PlayerTie on a full board, EmptyCell while the game goes on.
func (that *Board) Result() Cell {
	switch {
	case that.IsWinning(PlayerX):
		return PlayerX
	case that.IsWinning(PlayerO):
		return PlayerO
	case that.IsFull():
		return PlayerTie
	default:
		return EmptyCell
	}
}

func (that *Board) Place(index int, symbol Cell) error {
	if index < 0 || index >= BoardSize {
		return fmt.Errorf("%w: %w %d", apperror.ErrInvalidMove, apperror.ErrInvalidCell, index)
	}

	if that[index] != EmptyCell {
		return fmt.Errorf("%w: %w %d", apperror.ErrInvalidMove, apperror.ErrCellOccupied, index)
	}

	that[index] = symbol

	return nil
}

// Undo empties a cell again, search uses it to take back a simulated move.
func (that *Board) Undo(index int) {
	that[index] = EmptyCell
}

// Render draws the framed grid, empty cells shown as blanks.
func (that *Board) Render() string {
	var sb strings.Builder

	sb.WriteString("---------\n")
	for row := 0; row < sideSize; row++ {
		marks := make([]string, 0, sideSize)
		for col := 0; col < sideSize; col++ {
			cell := that[row*sideSize+col]
			if cell == EmptyCell {
				marks = append(marks, " ")
				continue
			}
			marks = append(marks, string(cell))
		}
		sb.WriteString("| " + strings.Join(marks, " ") + " |\n")
	}
	sb.WriteString("---------")

	return sb.String()
}

func (that *Board) String() string {
	return that.Render()
}

func (that *Board) count(symbol Cell) int {
	n := 0
	for _, cell := range that {
		if cell == symbol {
			n++
		}
	}

	return n
}
