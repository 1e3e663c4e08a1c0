package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

const (
	PromptCommand = "Input command: "

	MsgBadParameters = "Bad parameters"
	MsgNoGames       = "No games played"
)

type gameUseCase interface {
	Play(ctx context.Context, cmd usecase.Command, listener tictactoe.Listener) (*entity.GameResult, error)
	Stats(ctx context.Context) ([]entity.Stats, error)
}

type Server struct {
	logger   *slog.Logger
	useCase  gameUseCase
	terminal *Terminal
}

func New(logger *slog.Logger, useCase gameUseCase, terminal *Terminal) *Server {
	return &Server{
		logger:   logger.With("component", "console"),
		useCase:  useCase,
		terminal: terminal,
	}
}

// Start runs the command loop until "exit", the end of input or a cancelled context.
func (that *Server) Start(ctx context.Context) error {
	for {
		line, err := that.terminal.ReadLine(ctx, PromptCommand)
		if err != nil {
			return stopReason(err)
		}

		cmd, err := usecase.ParseCommand(line)
		if err != nil {
			that.logger.Debug("rejected command", "line", line, "error", err)
			that.terminal.Notify(MsgBadParameters)
			continue
		}

		switch cmd.Name {
		case usecase.CommandExit:
			return nil
		case usecase.CommandStats:
			if err = that.printStats(ctx); err != nil {
				return err
			}
		case usecase.CommandStart:
			if _, err = that.useCase.Play(ctx, cmd, that.terminal); err != nil {
				return stopReason(err)
			}
		}
	}
}

func (that *Server) printStats(ctx context.Context) error {
	stats, err := that.useCase.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to print stats: %w", err)
	}

	if len(stats) == 0 {
		that.terminal.Notify(MsgNoGames)
		return nil
	}

	for _, s := range stats {
		that.terminal.Notify(formatStats(s))
	}

	return nil
}

// formatStats - "hard:easy X=2 O=0 Draw=1".
func formatStats(s entity.Stats) string {
	var sb strings.Builder

	sb.WriteString(s.Matchup)
	fmt.Fprintf(&sb, " X=%d", s.Counts[entity.PlayerX])
	fmt.Fprintf(&sb, " O=%d", s.Counts[entity.PlayerO])
	fmt.Fprintf(&sb, " Draw=%d", s.Counts[entity.PlayerTie])

	return sb.String()
}

// stopReason - closed input or shutdown end the loop quietly, anything else is returned.
func stopReason(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		return nil
	}

	return fmt.Errorf("console stopped: %w", err)
}
