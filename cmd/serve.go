package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jkhomeclaw/tripview/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var (
	flagServeAddr     string
	flagServeInterval time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the itinerary as a mobile web page and JSON API",
	RunE:  runServe,
}

var serveStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Query a running server's status",
	RunE:  runServeStatus,
}

func init() {
	serveCmd.PersistentFlags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config)")
	serveCmd.Flags().DurationVar(&flagServeInterval, "interval", 0, "Reload interval (default from config)")

	serveCmd.AddCommand(serveStatusCmd)
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	addr := s.cfg.Server.Addr
	if flagServeAddr != "" {
		addr = flagServeAddr
	}
	interval := time.Duration(s.cfg.Server.ReloadIntervalSec) * time.Second
	if flagServeInterval > 0 {
		interval = flagServeInterval
	}

	gin.SetMode(gin.ReleaseMode)
	svc := web.New(web.Config{
		Location:       s.location,
		Defaults:       s.defaults,
		Addr:           addr,
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		Interval:       interval,
		UseCache:       !flagNoCache,
	})

	fmt.Printf("  tripview listening on http://%s\n", addr)
	fmt.Printf("  Reloading %s every %s\n", s.location, interval)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runServeStatus(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}
	addr := s.cfg.Server.Addr
	if flagServeAddr != "" {
		addr = flagServeAddr
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://"+addr+"/api/status", nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Printf("  Server: unreachable (%v)\n", err)
		return nil
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("  Server: HTTP %d\n", resp.StatusCode)
		return nil
	}

	var st web.Status
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		fmt.Printf("  Server: malformed response (%v)\n", err)
		return nil
	}

	fmt.Printf("  Address:    http://%s\n", addr)
	fmt.Printf("  Location:   %s\n", st.Location)
	if st.Title != "" {
		fmt.Printf("  Trip:       %s (%d days, %d stops)\n", st.Title, st.Days, st.Stops)
	}
	if st.LastLoadAt.IsZero() {
		fmt.Printf("  Last load:  pending\n")
	} else {
		fmt.Printf("  Last load:  %s\n", st.LastLoadAt.Local().Format(time.RFC3339))
	}
	fmt.Printf("  Loads:      %d\n", st.LoadCount)
	if st.Stale {
		fmt.Printf("  Serving cached copy\n")
	}
	if st.LastError != "" {
		fmt.Printf("  Last error: %s\n", st.LastError)
	}
	return nil
}
