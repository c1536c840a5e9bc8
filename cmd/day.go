package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jkhomeclaw/tripview/internal/cli"
	"github.com/jkhomeclaw/tripview/internal/money"
	"github.com/jkhomeclaw/tripview/internal/pipeline"

	"github.com/spf13/cobra"
)

var dayCmd = &cobra.Command{
	Use:   "day <number>",
	Short: "Stops, checklist and rain plan for one day",
	Args:  cobra.ExactArgs(1),
	RunE:  runDay,
}

func init() {
	rootCmd.AddCommand(dayCmd)
}

func runDay(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("day must be a number, got %q", args[0])
	}

	trip, _, err := loadTrip(cmd.Context())
	if err != nil {
		return err
	}
	day, ok := pipeline.DayByNumber(trip, n)
	if !ok {
		return fmt.Errorf("day %d not found (trip has %d days)", n, len(trip.Days))
	}
	conv := money.NewConverter(trip.Meta)

	title := "DAY " + strconv.Itoa(day.DayNumber)
	if day.Theme != "" {
		title += "  " + day.Theme
	}
	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	if date := cli.FormatDate(day.Date, day.ParsedDate); date != "" {
		fmt.Printf("  Date:       %s\n", date)
	}
	if day.HasAccommodation() {
		stay := day.Accommodation
		if day.AccommodationCost > 0 {
			stay += "  " + cli.FormatConverted(conv, day.AccommodationCost, day.AccommodationCurrency)
		}
		fmt.Printf("  Stay:       %s\n", stay)
	}
	if day.Alternatives != "" {
		fmt.Printf("  Rain plan:  %s\n", day.Alternatives)
	}
	fmt.Printf("  Day total:  %s\n", cli.FormatHome(trip.Meta.HomeCurrency, pipeline.DayCost(trip, day)))

	if len(day.Checklist) > 0 {
		fmt.Println()
		fmt.Println(cli.RenderSubtitle("Checklist"))
		for _, item := range day.Checklist {
			fmt.Printf("  [ ] %s\n", item)
		}
	}
	fmt.Println()

	rows := make([][]string, 0, len(day.Stops))
	for _, s := range pipeline.SortStops(day) {
		cost := ""
		if s.Cost > 0 {
			cost = cli.FormatConverted(conv, s.Cost, s.Currency)
		}
		name := s.Name
		if s.Transport != "" {
			name += " (" + s.Transport + ")"
		}
		rows = append(rows, []string{s.Time, name, strings.Join(s.Tags, " "), cost})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Stops",
		Headers: []string{"Time", "Stop", "Tags", "Cost"},
		Rows:    rows,
	}))

	for _, s := range pipeline.SortStops(day) {
		if s.Description == "" && s.MapURL() == "" {
			continue
		}
		fmt.Printf("\n  %s %s\n", s.Time, s.Name)
		if s.Description != "" {
			fmt.Printf("    %s\n", s.Description)
		}
		if url := s.MapURL(); url != "" {
			fmt.Printf("    %s\n", url)
		}
	}
	fmt.Println()
	return nil
}
