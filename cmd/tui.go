package cmd

import (
	"fmt"

	"github.com/jkhomeclaw/tripview/internal/config"
	"github.com/jkhomeclaw/tripview/internal/tui"
	"github.com/jkhomeclaw/tripview/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagTUIDay int

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive itinerary viewer",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&flagTUIDay, "day", 0, "Day to open (default from config)")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	theme.SetActive(s.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	day := s.cfg.General.DefaultDay
	if flagTUIDay > 0 {
		day = flagTUIDay
	}

	app := tui.NewApp(tui.Options{
		Location:   s.location,
		Defaults:   s.defaults,
		NoCache:    flagNoCache,
		DefaultDay: day,
		NeedSetup:  !config.Exists(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
