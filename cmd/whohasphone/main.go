package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/whohasphone/internal/config"
	"github.com/jask/whohasphone/internal/controller"
	"github.com/jask/whohasphone/internal/database"
	"github.com/jask/whohasphone/internal/database/repository"
	"github.com/jask/whohasphone/internal/logging"
	"github.com/jask/whohasphone/internal/service"
	"github.com/jask/whohasphone/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logFile, err := logging.OpenFile(cfg.Log.Path)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logFile.Close()
	logger := logging.New(logFile, cfg.Log.Level, false)

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	states := &service.StateService{KV: repository.NewKVRepo(db), Logger: logger}
	state := states.Load(ctx)
	ctl := controller.New(state, logger)
	app := tui.New(ctl, cfg.UI.Theme)

	logger.Info("starting", "db", cfg.Database.Path, "people", len(state.People))
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}

	if err := states.Save(ctx, ctl.State()); err != nil {
		logger.Error("save state", "error", err)
		fmt.Printf("error: %v\n", err)
	}
	if app.Theme() != cfg.UI.Theme {
		cfg.UI.Theme = app.Theme()
		if err := config.Save(cfg); err != nil {
			logger.Warn("save theme preference", "error", err)
		}
	}
	logger.Info("stopped", "people", len(ctl.State().People))
}
