package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/reversi-backend/internal/config"
	"github.com/rocketscienceinc/reversi-backend/internal/repository"
	"github.com/rocketscienceinc/reversi-backend/internal/repository/storage"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
	"github.com/rocketscienceinc/reversi-backend/internal/service"
	"github.com/rocketscienceinc/reversi-backend/internal/usecase"
	"github.com/rocketscienceinc/reversi-backend/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	defaults, err := gameDefaults(conf.Game)
	if err != nil {
		return err
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage, conf.Game.SessionTTL)
	gameService := service.NewGameService(gameRepo)
	advisor := service.NewAdvisor(service.NewSource(conf.Game.AdvisorSeed))
	gamePlayService := service.NewGamePlayService(logger, gameService, advisor)
	gameUseCase := usecase.NewGameUseCase(logger, defaults, gameService, gamePlayService)

	server := rest.New(logger, gameUseCase, conf.DevMode)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = server.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func gameDefaults(conf config.Game) (usecase.Defaults, error) {
	layout, err := reversi.ParseLayout(conf.Layout)
	if err != nil {
		return usecase.Defaults{}, fmt.Errorf("invalid game config: %w", err)
	}

	// fail at startup rather than on the first create request
	if _, err = reversi.New(conf.BoardSize, layout); err != nil {
		return usecase.Defaults{}, fmt.Errorf("invalid game config: %w", err)
	}

	return usecase.Defaults{BoardSize: conf.BoardSize, Layout: layout}, nil
}
