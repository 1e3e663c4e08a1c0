package usecase

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/service"
)

const (
	CommandStart = "start"
	CommandExit  = "exit"
	CommandStats = "stats"
)

type Command struct {
	Name  string
	Side1 string
	Side2 string
}

// ParseCommand - accepts "exit", "stats" and "start <side1> <side2>" with single spaces between words.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)

	switch line {
	case CommandExit:
		return Command{Name: CommandExit}, nil
	case CommandStats:
		return Command{Name: CommandStats}, nil
	}

	words := strings.Split(line, " ")
	if len(words) != 3 || words[0] != CommandStart { //nolint: mnd // start and two sides
		return Command{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCommand, line)
	}

	for _, side := range words[1:] {
		if !service.IsLevel(side) {
			return Command{}, fmt.Errorf("%w: unknown side %q", apperror.ErrInvalidCommand, side)
		}
	}

	return Command{Name: CommandStart, Side1: words[1], Side2: words[2]}, nil
}
