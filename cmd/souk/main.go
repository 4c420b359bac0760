package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/soukapp/souk/internal/catalog"
	"github.com/soukapp/souk/internal/config"
	"github.com/soukapp/souk/internal/database"
	"github.com/soukapp/souk/internal/logging"
	"github.com/soukapp/souk/internal/service"
	"github.com/soukapp/souk/internal/session"
	"github.com/soukapp/souk/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		log.Fatalf("mkdir log dir: %v", err)
	}

	// The TUI owns the terminal, so logs go to a file.
	logger, err := logging.New(cfg.Log.Path)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDemo(ctx, db); err != nil {
		log.Fatalf("seed catalog: %v", err)
	}

	repo := catalog.NewRepo(db)

	bookings := &service.BookingService{Log: logger}
	payments := &service.PaymentSimulator{Delay: cfg.Payment.Delay(), Log: logger}

	state := session.NewSeededState(cfg.Demo.Email, cfg.Demo.Name, cfg.Demo.Location)
	store := session.NewStore(state)

	logger.Info("starting",
		zap.String("db", cfg.Database.Path),
		zap.Int("screens", session.ScreenCount()))

	app := tui.New(ctx, cfg, store,
		tui.Services{Catalog: repo, Bookings: bookings, Payments: payments},
		logger,
	)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
