package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

var errRedisDown = errors.New("redis down")

type mockResultRepo struct {
	mock.Mock
}

func (that *mockResultRepo) Save(ctx context.Context, result *entity.GameResult) error {
	return that.Called(ctx, result).Error(0)
}

func (that *mockResultRepo) Stats(ctx context.Context) ([]entity.Stats, error) {
	args := that.Called(ctx)
	stats, _ := args.Get(0).([]entity.Stats)
	return stats, args.Error(1)
}

// linesInput answers prompts from a fixed list.
type linesInput struct {
	lines []string
}

func (that *linesInput) ReadLine(context.Context, string) (string, error) {
	if len(that.lines) == 0 {
		return "", io.EOF
	}

	line := that.lines[0]
	that.lines = that.lines[1:]

	return line, nil
}

func (that *linesInput) Notify(string) {}

func newUseCase(results resultRepo, input *linesInput) *GameUseCase {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rng := rand.New(rand.NewSource(1)) //nolint: gosec // deterministic tests

	return NewGameUseCase(logger, results, rng, input)
}

func TestGameUseCase_Play(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays easy against easy and saves the result", func(t *testing.T) {
		// Given: a repository that accepts the result
		mockRepo := &mockResultRepo{}
		mockRepo.On("Save", ctx, mock.AnythingOfType("*entity.GameResult")).Return(nil).Once()
		useCaseInstance := newUseCase(mockRepo, &linesInput{})

		// When: starting a game between two random players
		result, err := useCaseInstance.Play(ctx, Command{Name: CommandStart, Side1: "easy", Side2: "easy"}, nil)

		// Then: the game ends in at most nine moves and is recorded
		require.NoError(t, err)
		assert.NotEmpty(t, result.ID)
		assert.LessOrEqual(t, result.Moves, entity.BoardSize)
		assert.Equal(t, result.Winner, result.Board.Result())
		assert.Equal(t, "easy:easy", result.Matchup())
		mockRepo.AssertExpectations(t)
	})

	t.Run("Hard against hard is a draw", func(t *testing.T) {
		mockRepo := &mockResultRepo{}
		mockRepo.On("Save", ctx, mock.MatchedBy(func(r *entity.GameResult) bool { return r.IsDraw() })).Return(nil).Once()
		useCaseInstance := newUseCase(mockRepo, &linesInput{})

		result, err := useCaseInstance.Play(ctx, Command{Name: CommandStart, Side1: "hard", Side2: "hard"}, nil)

		require.NoError(t, err)
		assert.Equal(t, entity.PlayerTie, result.Winner)
		assert.Equal(t, entity.BoardSize, result.Moves)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Human moves come from the input", func(t *testing.T) {
		// Given: a human playing X on the left column against itself as O on the middle column
		mockRepo := &mockResultRepo{}
		mockRepo.On("Save", ctx, mock.Anything).Return(nil).Once()
		input := &linesInput{lines: []string{"1 1", "2 1", "1 2", "2 2", "1 3"}}
		useCaseInstance := newUseCase(mockRepo, input)

		// When: playing user against user
		result, err := useCaseInstance.Play(ctx, Command{Name: CommandStart, Side1: "user", Side2: "user"}, nil)

		// Then: X completes the left column
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, result.Winner)
		assert.Equal(t, 5, result.Moves)
		assert.Empty(t, input.lines)
	})

	t.Run("Saving failure does not fail the game", func(t *testing.T) {
		mockRepo := &mockResultRepo{}
		mockRepo.On("Save", ctx, mock.Anything).Return(errRedisDown).Once()
		useCaseInstance := newUseCase(mockRepo, &linesInput{})

		result, err := useCaseInstance.Play(ctx, Command{Name: CommandStart, Side1: "medium", Side2: "easy"}, nil)

		require.NoError(t, err)
		assert.NotNil(t, result)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Closed input stops the game", func(t *testing.T) {
		mockRepo := &mockResultRepo{}
		useCaseInstance := newUseCase(mockRepo, &linesInput{})

		result, err := useCaseInstance.Play(ctx, Command{Name: CommandStart, Side1: "user", Side2: "easy"}, nil)

		require.ErrorIs(t, err, io.EOF)
		assert.Nil(t, result)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("Not a start command", func(t *testing.T) {
		mockRepo := &mockResultRepo{}
		useCaseInstance := newUseCase(mockRepo, &linesInput{})

		_, err := useCaseInstance.Play(ctx, Command{Name: CommandExit}, nil)

		require.ErrorIs(t, err, apperror.ErrInvalidCommand)
	})

	t.Run("Unknown side creates no game", func(t *testing.T) {
		mockRepo := &mockResultRepo{}
		useCaseInstance := newUseCase(mockRepo, &linesInput{})

		_, err := useCaseInstance.Play(ctx, Command{Name: CommandStart, Side1: "bogus", Side2: "user"}, nil)

		require.ErrorIs(t, err, apperror.ErrInvalidCommand)
		mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestGameUseCase_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the repository stats", func(t *testing.T) {
		expected := []entity.Stats{{Matchup: "hard:easy", Counts: map[entity.Cell]int{entity.PlayerX: 3}}}
		mockRepo := &mockResultRepo{}
		mockRepo.On("Stats", ctx).Return(expected, nil).Once()

		stats, err := newUseCase(mockRepo, &linesInput{}).Stats(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, stats)
	})

	t.Run("Returns error if the repository fails", func(t *testing.T) {
		mockRepo := &mockResultRepo{}
		mockRepo.On("Stats", ctx).Return(nil, errRedisDown).Once()

		stats, err := newUseCase(mockRepo, &linesInput{}).Stats(ctx)

		require.ErrorIs(t, err, errRedisDown)
		assert.Nil(t, stats)
	})
}
