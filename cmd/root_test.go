package cmd

import (
	"testing"

	"github.com/jkhomeclaw/tripview/internal/config"
)

func TestLoadSettingsFlagPrecedence(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvData, "env.json")

	defer func() { flagData, flagHome, flagDest, flagRate = "", "", "", 0 }()

	s, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.location != "env.json" {
		t.Errorf("location = %q, want env value", s.location)
	}
	if s.defaults.HomeCurrency != "TWD" || s.defaults.ExchangeRate != 0.215 {
		t.Errorf("defaults = %+v", s.defaults)
	}

	flagData = "flag.json"
	flagHome = "USD"
	flagRate = 0.0067
	s, err = loadSettings()
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.location != "flag.json" || s.defaults.HomeCurrency != "USD" || s.defaults.ExchangeRate != 0.0067 {
		t.Errorf("flags not applied: %q %+v", s.location, s.defaults)
	}
	if s.defaults.DestinationCurrency != "JPY" {
		t.Errorf("dest = %q, want config default", s.defaults.DestinationCurrency)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := []string{"summary", "days", "day", "budget", "tags", "tui", "serve", "export", "config", "setup"}
	for _, name := range want {
		c, _, err := rootCmd.Find([]string{name})
		if err != nil || c == rootCmd {
			t.Errorf("command %q not registered", name)
		}
	}
}
