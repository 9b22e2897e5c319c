package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-local/internal/config"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository"
	"github.com/rocketscienceinc/tictactoe-local/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-local/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-local/transport/cli"
	"github.com/rocketscienceinc/tictactoe-local/transport/rest"
	"github.com/rocketscienceinc/tictactoe-local/transport/websocket"
)

const closeTimeout = 5 * time.Second

// RunApp - runs the application until the adapter returns or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sessionRepo, closeRepo, err := newSessionRepository(ctx, conf)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := closeRepo(); closeErr != nil {
			log.Error("could not close storage", "error", closeErr)
		}
	}()

	// a new id per process keeps a restarted app from picking up an old board
	sessionID := uuid.NewString()
	gameManager := usecase.NewGameManager(logger, sessionRepo, sessionID)

	if _, err = gameManager.Start(ctx); err != nil {
		return fmt.Errorf("could not start game: %w", err)
	}

	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), closeTimeout)
		defer closeCancel()

		if closeErr := gameManager.Close(closeCtx); closeErr != nil {
			log.Error("could not close game session", "error", closeErr)
		}
	}()

	switch conf.Mode {
	case config.ModeHTTP:
		wsServer := websocket.New(logger, gameManager)
		router := rest.NewRouter(logger, gameManager, wsServer)

		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	default:
		terminal := cli.New(logger, gameManager, in, out)
		if err = terminal.Run(ctx); err != nil {
			return fmt.Errorf("terminal error: %w", err)
		}
	}

	log.Info("Application stopped")

	return nil
}

func newSessionRepository(ctx context.Context, conf *config.Config) (repository.SessionRepository, func() error, error) {
	if conf.Storage != config.StorageRedis {
		return repository.NewMemorySessionRepository(), func() error { return nil }, nil
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	return repository.NewSessionRepository(redisStorage, conf.SessionTTL), redisStorage.Close, nil
}
