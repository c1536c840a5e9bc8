// Package export writes the itinerary as a static web bundle or a PDF.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jkhomeclaw/tripview/internal/config"
	"github.com/jkhomeclaw/tripview/internal/model"
	"github.com/jkhomeclaw/tripview/internal/web"
)

// CapacitorConfig is the subset of capacitor.config.json a wrapper app needs.
type CapacitorConfig struct {
	AppID   string `json:"appId"`
	AppName string `json:"appName"`
	WebDir  string `json:"webDir"`
}

// HTML writes a static bundle under dir: capacitor.config.json at the top
// and index.html plus data.json inside the web dir. It returns the web dir.
func HTML(dir string, trip model.Trip, pkg config.PackageConfig) (string, error) {
	webDir := pkg.WebDir
	if webDir == "" {
		webDir = "out"
	}
	out := filepath.Join(dir, webDir)
	if err := os.MkdirAll(out, 0o750); err != nil {
		return "", fmt.Errorf("creating %s: %w", out, err)
	}

	var page bytes.Buffer
	if err := web.RenderPage(&page, web.NewStandalonePage(trip)); err != nil {
		return "", fmt.Errorf("rendering page: %w", err)
	}
	if err := writeFile(filepath.Join(out, "index.html"), page.Bytes()); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(trip, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding trip: %w", err)
	}
	if err := writeFile(filepath.Join(out, "data.json"), data); err != nil {
		return "", err
	}

	capCfg, err := json.MarshalIndent(CapacitorConfig{
		AppID:   pkg.AppID,
		AppName: pkg.AppName,
		WebDir:  webDir,
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding capacitor config: %w", err)
	}
	if err := writeFile(filepath.Join(dir, "capacitor.config.json"), capCfg); err != nil {
		return "", err
	}
	return out, nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil { //nolint:gosec // exported bundle is meant to be readable
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
