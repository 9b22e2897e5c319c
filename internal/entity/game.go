package entity

import "fmt"

// Mark is the content of a single cell and also identifies a player.
type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// Other - returns the opponent of the mark.
func (that Mark) Other() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

const BoardSize = 9

// Board - cells 0..8, row by row.
type Board [BoardSize]Mark

// HasEmptyCell reports whether at least one cell is still free.
func (that Board) HasEmptyCell() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return true
		}
	}
	return false
}

// Line is an index-triple of board cells.
type Line [3]int

// WinningLines - rows, columns, diagonals in evaluation order.
var WinningLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type State string

const (
	StateInProgress State = "in_progress"
	StateWon        State = "won"
	StateDraw       State = "draw"
)

// Status - Winner and Line are set only when State is StateWon.
type Status struct {
	State  State `json:"state"`
	Winner Mark  `json:"winner,omitempty"`
	Line   *Line `json:"line,omitempty"`
}

func InProgress() Status {
	return Status{State: StateInProgress}
}

func Won(player Mark, line Line) Status {
	return Status{State: StateWon, Winner: player, Line: &line}
}

func Draw() Status {
	return Status{State: StateDraw}
}

// Session is a whole game: board, player to move and status.
type Session struct {
	Board         Board  `json:"board"`
	CurrentPlayer Mark   `json:"current_player"`
	Status        Status `json:"status"`
}

// IsInProgress - true while moves are still accepted.
func (that Session) IsInProgress() bool {
	return that.Status.State == StateInProgress
}

// IsWinningCell reports whether the cell is part of the winning line.
func (that Session) IsWinningCell(cell int) bool {
	if that.Status.State != StateWon || that.Status.Line == nil {
		return false
	}

	for _, index := range that.Status.Line {
		if index == cell {
			return true
		}
	}
	return false
}

// StatusText - human readable status line shown under the board.
func (that Session) StatusText() string {
	switch that.Status.State {
	case StateWon:
		return fmt.Sprintf("Player %s wins!", that.Status.Winner)
	case StateDraw:
		return "It's a draw!"
	default:
		return fmt.Sprintf("Player %s's turn", that.CurrentPlayer)
	}
}
