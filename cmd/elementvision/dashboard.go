package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"elementvision/cmd/elementvision/ui"
	"elementvision/internal/present"
	"elementvision/internal/resolve"
)

// runDashboard starts the interactive terminal UI.
func runDashboard() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	locale, err := present.ParseLocale(cfg.UI.Locale)
	if err != nil {
		return err
	}

	mode := resolve.ModeEnriched
	if cfg.Resolver.Mode == "strict" {
		mode = resolve.ModeStrict
	}

	resolver, cleanup, err := buildResolver(cfg, mode)
	if err != nil {
		return err
	}
	defer cleanup()

	program := tea.NewProgram(ui.New(resolver, locale), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
