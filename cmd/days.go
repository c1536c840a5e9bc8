package cmd

import (
	"fmt"
	"strconv"

	"github.com/jkhomeclaw/tripview/internal/cli"
	"github.com/jkhomeclaw/tripview/internal/pipeline"

	"github.com/spf13/cobra"
)

var daysCmd = &cobra.Command{
	Use:   "days",
	Short: "One line per day with its cost",
	RunE:  runDays,
}

func init() {
	rootCmd.AddCommand(daysCmd)
}

func runDays(cmd *cobra.Command, _ []string) error {
	trip, _, err := loadTrip(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("DAYS  " + trip.Meta.Title))
	fmt.Println()

	rows := make([][]string, 0, len(trip.Days)+2)
	var total int64
	for _, d := range trip.Days {
		cost := pipeline.DayCost(trip, d)
		total += cost
		rows = append(rows, []string{
			strconv.Itoa(d.DayNumber),
			cli.FormatDate(d.Date, d.ParsedDate),
			d.Theme,
			strconv.Itoa(len(d.Stops)),
			d.Accommodation,
			cli.FormatHome(trip.Meta.HomeCurrency, cost),
		})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "TOTAL", strconv.Itoa(trip.StopCount()), "", cli.FormatHome(trip.Meta.HomeCurrency, total)})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Day", "Date", "Theme", "Stops", "Stay", "Cost"},
		Rows:    rows,
	}))
	return nil
}
