package cmd

import (
	"fmt"
	"strings"

	"github.com/jkhomeclaw/tripview/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	cfg := s.cfg

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Itinerary:    %s\n", s.location)
	fmt.Printf("    Default day:  %d\n", cfg.General.DefaultDay)
	fmt.Println()

	fmt.Println("  [Currency]")
	fmt.Printf("    Home:         %s\n", s.defaults.HomeCurrency)
	fmt.Printf("    Destination:  %s\n", s.defaults.DestinationCurrency)
	fmt.Printf("    Rate:         %g\n", s.defaults.ExchangeRate)
	fmt.Println("    (used only when the itinerary omits them)")
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:         %s\n", cfg.Server.Addr)
	fmt.Printf("    Reload interval: %ds\n", cfg.Server.ReloadIntervalSec)
	if len(cfg.Server.AllowedOrigins) > 0 {
		fmt.Printf("    CORS origins:    %s\n", strings.Join(cfg.Server.AllowedOrigins, ", "))
	} else {
		fmt.Println("    CORS origins:    none")
	}
	fmt.Println()

	fmt.Println("  [Package]")
	fmt.Printf("    App ID:   %s\n", cfg.Package.AppID)
	fmt.Printf("    App name: %s\n", cfg.Package.AppName)
	fmt.Printf("    Web dir:  %s\n", cfg.Package.WebDir)
	fmt.Println()

	fmt.Println("  Run `tripview setup` to reconfigure.")
	return nil
}
