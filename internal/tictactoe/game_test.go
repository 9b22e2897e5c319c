package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

func play(t *testing.T, cells ...int) entity.Session {
	t.Helper()

	session := Reset()
	for _, cell := range cells {
		var err error
		session, err = ApplyMove(session, cell)
		require.NoError(t, err, "move to cell %d", cell)
	}

	return session
}

func TestReset(t *testing.T) {
	// When: resetting a game
	session := Reset()

	// Then: the board is empty, X moves first and the game is in progress
	expected := entity.Session{
		Board:         entity.Board{"", "", "", "", "", "", "", "", ""},
		CurrentPlayer: entity.PlayerX,
		Status:        entity.Status{State: entity.StateInProgress},
	}

	require.Equal(t, expected, session)
}

func TestApplyMove(t *testing.T) {
	t.Run("First move", func(t *testing.T) {
		// Given: a fresh session
		session := Reset()

		// When: X moves to cell 0
		next, err := ApplyMove(session, 0)
		require.NoError(t, err)

		// Then: the mark is written and the turn passes to O
		expected := entity.Session{
			Board:         entity.Board{entity.PlayerX, "", "", "", "", "", "", "", ""},
			CurrentPlayer: entity.PlayerO,
			Status:        entity.InProgress(),
		}
		require.Equal(t, expected, next)

		// Then: the input session is not modified
		require.Equal(t, Reset(), session)
	})

	t.Run("X wins on the top row", func(t *testing.T) {
		// When: X,O,X,O,X play cells 0,4,1,5,2
		session := play(t, 0, 4, 1, 5, 2)

		// Then: X wins with line 0,1,2 and X stays the current player
		assert.Equal(t, entity.Won(entity.PlayerX, entity.Line{0, 1, 2}), session.Status)
		assert.Equal(t, entity.PlayerX, session.CurrentPlayer)
		assert.Equal(t, "Player X wins!", session.StatusText())
	})

	t.Run("O wins on a column", func(t *testing.T) {
		// When: O completes the middle column
		session := play(t, 0, 1, 2, 4, 3, 7)

		// Then: O is the winner
		assert.Equal(t, entity.Won(entity.PlayerO, entity.Line{1, 4, 7}), session.Status)
	})

	t.Run("Winning on the last free cell is a win, not a draw", func(t *testing.T) {
		// When: the ninth move completes column 2,5,8
		session := play(t, 0, 1, 2, 3, 5, 6, 4, 7, 8)

		// Then: X wins
		assert.Equal(t, entity.Won(entity.PlayerX, entity.Line{2, 5, 8}), session.Status)
	})

	t.Run("Draw after nine moves without a line", func(t *testing.T) {
		// When: the board fills up without three in a row
		session := play(t, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// Then: the game is a draw
		assert.Equal(t, entity.Draw(), session.Status)
		assert.False(t, session.Board.HasEmptyCell())
		assert.Equal(t, "It's a draw!", session.StatusText())
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X has taken cell 0
		session := play(t, 0)

		// When: O tries to take the same cell
		next, err := ApplyMove(session, 0)

		// Then: ErrCellOccupied is returned and the session is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, session, next)
	})

	t.Run("Error on move after win", func(t *testing.T) {
		// Given: a session X has won
		session := play(t, 0, 4, 1, 5, 2)

		// When: O tries a free cell
		next, err := ApplyMove(session, 8)

		// Then: ErrGameOver is returned and the session is unchanged
		require.ErrorIs(t, err, apperror.ErrGameOver)
		require.Equal(t, session, next)
	})

	t.Run("Game over takes precedence over occupied cell", func(t *testing.T) {
		// Given: a finished game
		session := play(t, 0, 4, 1, 5, 2)

		// When: a move targets an occupied cell
		_, err := ApplyMove(session, 0)

		// Then: the game over error is reported
		require.ErrorIs(t, err, apperror.ErrGameOver)
	})

	t.Run("Error on move after draw", func(t *testing.T) {
		// Given: a drawn session
		session := play(t, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		// When: another move is attempted
		next, err := ApplyMove(session, 0)

		// Then: ErrGameOver is returned
		require.ErrorIs(t, err, apperror.ErrGameOver)
		require.Equal(t, session, next)
	})

	t.Run("Invalid Cell", func(t *testing.T) {
		// Given: a fresh session
		session := Reset()

		// When: an index outside the board is passed
		for _, cell := range []int{-1, 9, 20} {
			next, err := ApplyMove(session, cell)

			// Then: ErrInvalidCell is returned
			require.ErrorIs(t, err, apperror.ErrInvalidCell)
			require.Equal(t, session, next)
		}
	})

	t.Run("Never overwrites a mark", func(t *testing.T) {
		// Given: a partly played game
		session := play(t, 4, 0, 8)

		// When: every cell is tried in turn
		for cell := 0; cell < entity.BoardSize; cell++ {
			before := session.Board
			next, err := ApplyMove(session, cell)

			// Then: occupied cells keep their mark
			for i, mark := range before {
				if mark != entity.EmptyCell {
					require.Equal(t, mark, next.Board[i])
				}
			}

			if err == nil && next.IsInProgress() {
				session = next
			}
		}
	})
}

func TestEvaluate(t *testing.T) {
	t.Run("Winner X", func(t *testing.T) {
		// Given: X holds the left column
		board := entity.Board{entity.PlayerX, entity.PlayerO, "", entity.PlayerX, entity.PlayerO, "", entity.PlayerX, "", ""}

		// Then: X wins on line 0,3,6
		require.Equal(t, entity.Won(entity.PlayerX, entity.Line{0, 3, 6}), Evaluate(board))
	})

	t.Run("Ongoing Game", func(t *testing.T) {
		// Given: a board with no line yet
		board := entity.Board{entity.PlayerX, entity.PlayerO, entity.PlayerX, "", entity.PlayerO, "", entity.PlayerX, "", ""}

		// Then: the game is still in progress
		require.Equal(t, entity.InProgress(), Evaluate(board))
	})

	t.Run("Tie", func(t *testing.T) {
		// Given: a full board with no line
		board := entity.Board{entity.PlayerO, entity.PlayerX, entity.PlayerO, entity.PlayerO, entity.PlayerX, entity.PlayerX, entity.PlayerX, entity.PlayerO, entity.PlayerX}

		// Then: the game is a draw
		assert.Equal(t, entity.Draw(), Evaluate(board))
	})

	t.Run("Lowest listed line wins when several are complete", func(t *testing.T) {
		// Given: X holds both the top row and the left column
		board := entity.Board{
			entity.PlayerX, entity.PlayerX, entity.PlayerX,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
			entity.PlayerX, entity.PlayerO, entity.PlayerO,
		}

		// Then: the row is reported because rows come first
		assert.Equal(t, entity.Won(entity.PlayerX, entity.Line{0, 1, 2}), Evaluate(board))
	})

	t.Run("Every winning line is detected", func(t *testing.T) {
		for _, line := range entity.WinningLines {
			// Given: a board where only this line is filled with O
			var board entity.Board
			for _, cell := range line {
				board[cell] = entity.PlayerO
			}

			// Then: O wins on exactly that line
			assert.Equal(t, entity.Won(entity.PlayerO, line), Evaluate(board))
		}
	})
}
