package websocket

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

func (that *Server) handleState(ctx context.Context, _ *Message) (ResponsePayload, error) {
	session, err := that.game.Current(ctx)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Game: newGamePayload(session)}, nil
}

// handleTurn - rejected moves are answered with the unchanged board and the reason.
func (that *Server) handleTurn(ctx context.Context, msg *Message) (ResponsePayload, error) {
	var req TurnRequest
	if err := json.Unmarshal(msg.Payload, &req); err != nil || req.Cell == nil {
		return ResponsePayload{Error: "cell is required"}, nil
	}

	session, err := that.game.MakeTurn(ctx, *req.Cell)
	if err == nil {
		return ResponsePayload{Game: newGamePayload(session)}, nil
	}

	for _, rejection := range []error{apperror.ErrGameOver, apperror.ErrCellOccupied, apperror.ErrInvalidCell} {
		if errors.Is(err, rejection) {
			return ResponsePayload{Game: newGamePayload(session), Error: rejection.Error()}, nil
		}
	}

	return ResponsePayload{}, err
}

func (that *Server) handleReset(ctx context.Context, _ *Message) (ResponsePayload, error) {
	session, err := that.game.Reset(ctx)
	if err != nil {
		return ResponsePayload{}, err
	}

	return ResponsePayload{Game: newGamePayload(session)}, nil
}
