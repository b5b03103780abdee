// reversi-tui is a hot-seat Reversi game for the terminal.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/adrg/xdg"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/reversi-backend/internal/config"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
	"github.com/rocketscienceinc/reversi-backend/internal/service"
	"github.com/rocketscienceinc/reversi-backend/internal/tui"
)

const logFile = "reversi/tui.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "reversi-tui: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	conf, err := config.LoadTUI()
	if err != nil {
		return err
	}

	logger, closeLog, err := initLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	layout, err := reversi.ParseLayout(conf.Layout)
	if err != nil {
		return fmt.Errorf("invalid layout in config: %w", err)
	}

	controller, err := tui.NewController(service.NewAdvisor(service.NewSource(conf.AdvisorSeed)), conf.BoardSize, layout)
	if err != nil {
		return err
	}

	app := tview.NewApplication()
	view := tui.NewView(logger, app, controller, conf.Symbols)
	app.SetInputCapture(view.HandleKey)

	logger.Info("starting", "size", conf.BoardSize, "layout", layout.String())

	if err = app.SetRoot(view.Root(), true).Run(); err != nil {
		return fmt.Errorf("terminal UI failed: %w", err)
	}

	return nil
}

// the screen belongs to tview, logs go to $XDG_STATE_HOME/reversi/tui.log
func initLogger() (*slog.Logger, func(), error) {
	path, err := xdg.StateFile(logFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve log file: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: slog.LevelInfo}))

	return logger, func() { _ = file.Close() }, nil
}
