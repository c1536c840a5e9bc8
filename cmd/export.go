package cmd

import (
	"fmt"
	"os"

	"github.com/jkhomeclaw/tripview/internal/export"

	"github.com/spf13/cobra"
)

var flagPDFFont string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the itinerary as a static web bundle or a PDF",
}

var exportHTMLCmd = &cobra.Command{
	Use:   "html [dir]",
	Short: "Write index.html, data.json and capacitor.config.json",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExportHTML,
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf [file]",
	Short: "Write a printable PDF itinerary",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExportPDF,
}

func init() {
	exportPDFCmd.Flags().StringVar(&flagPDFFont, "font", os.Getenv("TRIPVIEW_PDF_FONT"), "UTF-8 TrueType font for non-Latin text")

	exportCmd.AddCommand(exportHTMLCmd)
	exportCmd.AddCommand(exportPDFCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExportHTML(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	trip, s, err := loadTrip(cmd.Context())
	if err != nil {
		return err
	}

	out, err := export.HTML(dir, trip, s.cfg.Package)
	if err != nil {
		return err
	}
	fmt.Printf("  Wrote %s/index.html and data.json\n", out)
	fmt.Printf("  App %s (%s), webDir %s\n", s.cfg.Package.AppName, s.cfg.Package.AppID, s.cfg.Package.WebDir)
	return nil
}

func runExportPDF(cmd *cobra.Command, args []string) error {
	path := "itinerary.pdf"
	if len(args) == 1 {
		path = args[0]
	}

	trip, _, err := loadTrip(cmd.Context())
	if err != nil {
		return err
	}

	f, err := os.Create(path) //nolint:gosec // output path is user-controlled
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := export.PDF(f, trip, export.PDFOptions{FontPath: flagPDFFont}); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	fmt.Printf("  Wrote %s\n", path)
	return nil
}
