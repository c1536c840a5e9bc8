package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jkhomeclaw/tripview/internal/config"
	"github.com/jkhomeclaw/tripview/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the fields edited by the first-run form.
// Everything is a string so huh inputs can bind to it directly.
type SetupValues struct {
	Data        string
	Home        string
	Destination string
	Rate        string
	Theme       string
}

// NewSetupValues seeds the form from an existing config.
func NewSetupValues(cfg config.Config) SetupValues {
	return SetupValues{
		Data:        cfg.General.Data,
		Home:        cfg.Currency.Home,
		Destination: cfg.Currency.Destination,
		Rate:        strconv.FormatFloat(cfg.Currency.ExchangeRate, 'f', -1, 64),
		Theme:       cfg.Appearance.Theme,
	}
}

// NewSetupForm builds the setup form bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	themeOpts := huh.NewOptions(theme.Names()...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to tripview").
				Description("A few settings before we open your itinerary."),
			huh.NewInput().
				Title("Itinerary").
				Description("Path or http(s) URL of the trip JSON").
				Value(&vals.Data).
				Validate(notBlank("itinerary")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Home currency").
				Value(&vals.Home).
				Validate(currencyCode),
			huh.NewInput().
				Title("Destination currency").
				Value(&vals.Destination).
				Validate(currencyCode),
			huh.NewInput().
				Title("Exchange rate").
				Description("Home currency per one unit of destination currency").
				Value(&vals.Rate).
				Validate(func(s string) error {
					_, err := parseRate(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	).WithShowHelp(true)
}

// Apply copies the form values into cfg.
func (v SetupValues) Apply(cfg *config.Config) error {
	rate, err := parseRate(v.Rate)
	if err != nil {
		return err
	}
	if err := notBlank("itinerary")(v.Data); err != nil {
		return err
	}
	cfg.General.Data = strings.TrimSpace(v.Data)
	cfg.Currency.Home = strings.ToUpper(strings.TrimSpace(v.Home))
	cfg.Currency.Destination = strings.ToUpper(strings.TrimSpace(v.Destination))
	cfg.Currency.ExchangeRate = rate
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
	return nil
}

func parseRate(s string) (float64, error) {
	rate, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("exchange rate %q is not a number", s)
	}
	if rate <= 0 {
		return 0, errors.New("exchange rate must be positive")
	}
	return rate, nil
}

func notBlank(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func currencyCode(s string) error {
	s = strings.TrimSpace(s)
	if len(s) != 3 {
		return errors.New("use a three-letter code like TWD")
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return errors.New("use a three-letter code like TWD")
		}
	}
	return nil
}
