package main

import (
	"fmt"

	"github.com/agdealers8/learn-and-conquer/internal/library"
	"github.com/agdealers8/learn-and-conquer/internal/notes"
	"github.com/agdealers8/learn-and-conquer/internal/session"
	"github.com/agdealers8/learn-and-conquer/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// runApp starts the interactive terminal application.
func runApp() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := newGeminiClient(cfg)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	catalog, err := library.NewCatalog()
	if err != nil {
		return fmt.Errorf("library.NewCatalog() > %w", err)
	}

	store := session.NewStore(cfg.Admin.OwnerEmail, cfg.Admin.Secret)
	app := ui.NewApp(store, client, catalog, notes.NewStore(), cfg.Outputs.ExportDirectory)

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("program.Run() > %w", err)
	}
	return nil
}
