package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const (
	actionState = "game:state"
	actionTurn  = "game:turn"
	actionReset = "game:reset"
	actionError = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type TurnRequest struct {
	Cell *int `json:"cell"`
}

type GamePayload struct {
	Board         entity.Board  `json:"board"`
	CurrentPlayer entity.Mark   `json:"current_player"`
	Status        entity.Status `json:"status"`
	Text          string        `json:"text"`
}

type ResponsePayload struct {
	Game  *GamePayload `json:"game,omitempty"`
	Error string       `json:"error,omitempty"`
}

func newGamePayload(session entity.Session) *GamePayload {
	return &GamePayload{
		Board:         session.Board,
		CurrentPlayer: session.CurrentPlayer,
		Status:        session.Status,
		Text:          session.StatusText(),
	}
}
