package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Reset - returns a fresh session: empty board, X to move.
func Reset() entity.Session {
	return entity.Session{
		CurrentPlayer: entity.PlayerX,
		Status:        entity.InProgress(),
	}
}

// ApplyMove places the current player's mark on cell and evaluates the result.
// On error the returned session is the unchanged input.
func ApplyMove(session entity.Session, cell int) (entity.Session, error) {
	if err := validateMove(session, cell); err != nil {
		return session, err
	}

	next := session
	next.Board[cell] = session.CurrentPlayer

	next.Status = Evaluate(next.Board)
	if next.IsInProgress() {
		next.CurrentPlayer = session.CurrentPlayer.Other()
	}

	return next, nil
}

// validateMove - checks if the move is valid.
func validateMove(session entity.Session, cell int) error {
	if !session.IsInProgress() {
		return apperror.ErrGameOver
	}

	if cell < 0 || cell >= len(session.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if session.Board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, cell)
	}

	return nil
}

// Evaluate - classifies a board. The first complete line in
// entity.WinningLines order wins.
func Evaluate(board entity.Board) entity.Status {
	for _, line := range entity.WinningLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.Won(a, line)
		}
	}

	// the game will continue until all the squares are full
	if board.HasEmptyCell() {
		return entity.InProgress()
	}

	return entity.Draw()
}
