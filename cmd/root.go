// Package cmd implements the tripview CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jkhomeclaw/tripview/internal/config"
	"github.com/jkhomeclaw/tripview/internal/model"
	"github.com/jkhomeclaw/tripview/internal/pipeline"
	"github.com/jkhomeclaw/tripview/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagData    string
	flagNoCache bool
	flagQuiet   bool
	flagHome    string
	flagDest    string
	flagRate    float64
)

var rootCmd = &cobra.Command{
	Use:   "tripview",
	Short: "Travel itinerary viewer",
	Long:  "View a trip itinerary day by day, with a four-way budget converted to your home currency.",
	RunE:  runSummary,

	SilenceUsage: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagData, "data", "d", "", "Itinerary file path or http(s) URL (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "Skip the SQLite cache")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagHome, "home", "", "Home currency used when the file omits one")
	rootCmd.PersistentFlags().StringVar(&flagDest, "dest", "", "Destination currency used when the file omits one")
	rootCmd.PersistentFlags().Float64Var(&flagRate, "rate", 0, "Exchange rate used when the file omits one")
}

// settings resolves config file, environment and flags, in that order.
type settings struct {
	cfg      config.Config
	location string
	defaults model.Defaults
}

func loadSettings() (settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return settings{}, err
	}

	s := settings{cfg: cfg, location: cfg.General.Data, defaults: cfg.Defaults()}
	if flagData != "" {
		s.location = flagData
	}
	if flagHome != "" {
		s.defaults.HomeCurrency = flagHome
	}
	if flagDest != "" {
		s.defaults.DestinationCurrency = flagDest
	}
	if flagRate > 0 {
		s.defaults.ExchangeRate = flagRate
	}
	return s, nil
}

// loadTrip is the shared loading path used by all commands.
// Uses the SQLite cache when available.
func loadTrip(ctx context.Context) (model.Trip, settings, error) {
	s, err := loadSettings()
	if err != nil {
		return model.Trip{}, s, err
	}

	if !flagNoCache {
		cache, err := store.Open(pipeline.CachePath())
		if err != nil {
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache unavailable, loading directly\n")
			}
		} else {
			defer func() { _ = cache.Close() }()

			res, err := pipeline.LoadWithCache(ctx, s.location, s.defaults, cache)
			if err == nil {
				if !flagQuiet && res.Stale {
					fmt.Fprintf(os.Stderr, "  Offline (%v), showing cached copy\n", res.FetchErr)
				}
				return res.Trip, s, nil
			}
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "  Cache error, loading directly\n")
			}
		}
	}

	trip, err := pipeline.Load(ctx, s.location, s.defaults)
	return trip, s, err
}
