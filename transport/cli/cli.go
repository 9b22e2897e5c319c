package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const helpText = `Commands:
  0-8        place your mark on that cell
  r, reset   start a new game
  h, help    show this help
  q, quit    exit
`

type game interface {
	Current(ctx context.Context) (entity.Session, error)
	MakeTurn(ctx context.Context, cell int) (entity.Session, error)
	Reset(ctx context.Context) (entity.Session, error)
}

// Terminal is a hot-seat UI: both players type cell numbers into the same terminal.
type Terminal struct {
	logger *slog.Logger
	game   game

	in  io.Reader
	out io.Writer
}

func New(logger *slog.Logger, game game, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		logger: logger.With("component", "cli"),
		game:   game,
		in:     in,
		out:    out,
	}
}

// Run - reads commands until quit, EOF or ctx cancellation.
func (that *Terminal) Run(ctx context.Context) error {
	session, err := that.game.Current(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current game: %w", err)
	}

	that.printf("%s", helpText)
	that.render(session)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go that.readLines(ctx, lines, readErr)

	for {
		that.printf("> ")

		var line string
		select {
		case <-ctx.Done():
			return nil
		case err = <-readErr:
			if err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			return nil
		case line = <-lines:
		}

		quit, err := that.handle(ctx, strings.TrimSpace(line))
		if err != nil {
			return err
		}

		if quit {
			return nil
		}
	}
}

func (that *Terminal) readLines(ctx context.Context, lines chan<- string, readErr chan<- error) {
	scanner := bufio.NewScanner(that.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}

	readErr <- scanner.Err()
}

// handle - executes one command. It returns true when the user asked to quit.
func (that *Terminal) handle(ctx context.Context, command string) (bool, error) {
	switch strings.ToLower(command) {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "h", "help":
		that.printf("%s", helpText)
		return false, nil
	case "r", "reset":
		session, err := that.game.Reset(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to reset game: %w", err)
		}

		that.render(session)
		return false, nil
	}

	cell, err := strconv.Atoi(command)
	if err != nil {
		that.printf("unknown command %q, type h for help\n", command)
		return false, nil
	}

	session, err := that.game.MakeTurn(ctx, cell)
	switch {
	case err == nil:
		that.render(session)
	case errors.Is(err, apperror.ErrGameOver):
		that.printf("game is over, type r to play again\n")
	case errors.Is(err, apperror.ErrCellOccupied):
		that.printf("cell %d is already occupied\n", cell)
	case errors.Is(err, apperror.ErrInvalidCell):
		that.printf("invalid cell index %d, use 0-8\n", cell)
	default:
		return false, fmt.Errorf("failed to make turn: %w", err)
	}

	return false, nil
}

// render - draws the board. Free cells show their index, winning cells are bracketed.
func (that *Terminal) render(session entity.Session) {
	var sb strings.Builder

	sb.WriteString("\n")
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := row*3 + col

			label := strconv.Itoa(cell)
			if mark := session.Board[cell]; mark != entity.EmptyCell {
				label = string(mark)
			}

			if session.IsWinningCell(cell) {
				sb.WriteString("[" + label + "]")
			} else {
				sb.WriteString(" " + label + " ")
			}

			if col < 2 {
				sb.WriteString("|")
			}
		}

		sb.WriteString("\n")
		if row < 2 {
			sb.WriteString("---+---+---\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(session.StatusText())
	sb.WriteString("\n")

	that.printf("%s", sb.String())
}

func (that *Terminal) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
