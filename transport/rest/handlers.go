package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

type game interface {
	Current(ctx context.Context) (entity.Session, error)
	MakeTurn(ctx context.Context, cell int) (entity.Session, error)
	Reset(ctx context.Context) (entity.Session, error)
}

// GameResponse is the session as rendered for the browser.
type GameResponse struct {
	entity.Session
	Text string `json:"text"`
}

type moveRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string        `json:"error"`
	Game  *GameResponse `json:"game,omitempty"`
}

type gameHandler struct {
	logger *slog.Logger
	game   game
}

func newGameHandler(logger *slog.Logger, game game) *gameHandler {
	return &gameHandler{
		logger: logger,
		game:   game,
	}
}

func (that *gameHandler) getGame(w http.ResponseWriter, r *http.Request) {
	session, err := that.game.Current(r.Context())
	if err != nil {
		that.internalError(w, "getGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(session))
}

func (that *gameHandler) makeMove(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Cell == nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be {\"cell\": 0-8}"})
		return
	}

	session, err := that.game.MakeTurn(r.Context(), *req.Cell)
	switch {
	case err == nil:
		that.writeJSON(w, http.StatusOK, newGameResponse(session))
	case errors.Is(err, apperror.ErrCellOccupied), errors.Is(err, apperror.ErrGameOver):
		resp := newGameResponse(session)
		that.writeJSON(w, http.StatusConflict, errorResponse{Error: rejectionText(err), Game: &resp})
	case errors.Is(err, apperror.ErrInvalidCell):
		resp := newGameResponse(session)
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: rejectionText(err), Game: &resp})
	default:
		that.internalError(w, "makeMove", err)
	}
}

func (that *gameHandler) resetGame(w http.ResponseWriter, r *http.Request) {
	session, err := that.game.Reset(r.Context())
	if err != nil {
		that.internalError(w, "resetGame", err)
		return
	}

	that.writeJSON(w, http.StatusOK, newGameResponse(session))
}

func (that *gameHandler) internalError(w http.ResponseWriter, method string, err error) {
	that.logger.Error("request failed", "method", method, "error", err)
	that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal Server Error"})
}

func (that *gameHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to encode response", "error", err)
	}
}

func newGameResponse(session entity.Session) GameResponse {
	return GameResponse{
		Session: session,
		Text:    session.StatusText(),
	}
}

// rejectionText - the sentinel message without the wrapping context.
func rejectionText(err error) string {
	for _, target := range []error{apperror.ErrGameOver, apperror.ErrCellOccupied, apperror.ErrInvalidCell} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return err.Error()
}
