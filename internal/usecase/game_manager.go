package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

type sessionRepo interface {
	Save(ctx context.Context, id string, session entity.Session) error
	GetByID(ctx context.Context, id string) (entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager owns the single board of the process. All calls are serialized.
type GameManager struct {
	logger      *slog.Logger
	sessionRepo sessionRepo
	sessionID   string

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, sessionRepo sessionRepo, sessionID string) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager", "session_id", sessionID),

		sessionRepo: sessionRepo,
		sessionID:   sessionID,
	}
}

// Start - stores a fresh session, replacing whatever was there.
func (that *GameManager) Start(ctx context.Context) (entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.reset(ctx)
}

// Current - returns the stored session, starting one if nothing is stored yet.
func (that *GameManager) Current(ctx context.Context) (entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.load(ctx)
}

// MakeTurn - applies a move for the player whose turn it is.
// A rejected move returns the unchanged session along with the error.
func (that *GameManager) MakeTurn(ctx context.Context, cell int) (entity.Session, error) {
	log := that.logger.With("method", "MakeTurn", "cell", cell)

	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.load(ctx)
	if err != nil {
		return entity.Session{}, err
	}

	next, err := tictactoe.ApplyMove(session, cell)
	if err != nil {
		log.Debug("move rejected", "error", err)
		return session, fmt.Errorf("failed make turn: %w", err)
	}

	if err = that.save(ctx, next); err != nil {
		return session, err
	}

	switch next.Status.State {
	case entity.StateWon:
		log.Info("game won", "winner", next.Status.Winner, "line", *next.Status.Line)
	case entity.StateDraw:
		log.Info("game drawn")
	case entity.StateInProgress:
		log.Debug("move accepted", "player", session.CurrentPlayer)
	}

	return next, nil
}

// Reset - replaces the stored session with a fresh one.
func (that *GameManager) Reset(ctx context.Context) (entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.reset(ctx)
}

// Close - removes the stored session.
func (that *GameManager) Close(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.sessionRepo.DeleteByID(ctx, that.sessionID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	that.logger.Info("session closed")

	return nil
}

func (that *GameManager) reset(ctx context.Context) (entity.Session, error) {
	session := tictactoe.Reset()
	if err := that.save(ctx, session); err != nil {
		return entity.Session{}, err
	}

	that.logger.Info("new game started")

	return session, nil
}

func (that *GameManager) load(ctx context.Context) (entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, that.sessionID)
	if errors.Is(err, repository.ErrSessionNotFound) {
		return that.reset(ctx)
	}

	if err != nil {
		return entity.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (that *GameManager) save(ctx context.Context, session entity.Session) error {
	if err := that.sessionRepo.Save(ctx, that.sessionID, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
