package console

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Terminal reads answers line by line and prints the game as it goes.
type Terminal struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// ReadLine prints the prompt and waits for one line, io.EOF once the input is closed.
func (that *Terminal) ReadLine(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	fmt.Fprint(that.out, prompt)

	if !that.scanner.Scan() {
		if err := that.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}

	return that.scanner.Text(), nil
}

func (that *Terminal) Notify(message string) {
	fmt.Fprintln(that.out, message)
}

func (that *Terminal) OnStart(board *entity.Board) {
	fmt.Fprintln(that.out, board.Render())
}

func (that *Terminal) OnTurn(level string, _ entity.Cell) {
	if level == entity.LevelUser {
		return
	}

	fmt.Fprintf(that.out, "Making move level %q\n", level)
}

func (that *Terminal) OnMove(board *entity.Board, _ int) {
	fmt.Fprintln(that.out, board.Render())
}

func (that *Terminal) OnFinish(winner entity.Cell) {
	if winner == entity.PlayerTie {
		fmt.Fprintln(that.out, "Draw")
		return
	}

	fmt.Fprintf(that.out, "%s wins\n", winner)
}
