package cmd

import (
	"fmt"

	"github.com/jkhomeclaw/tripview/internal/cli"
	"github.com/jkhomeclaw/tripview/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Trip overview with budget totals",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	trip, _, err := loadTrip(cmd.Context())
	if err != nil {
		return err
	}

	m := trip.Meta
	s := pipeline.BudgetAll(trip)

	fmt.Println()
	fmt.Println(cli.RenderTitle(m.Title))
	fmt.Println()

	rows := [][]string{}
	if m.Location != "" {
		rows = append(rows, []string{"Location", m.Location})
	}
	if m.StartDateRaw != "" {
		rows = append(rows, []string{"Starts", cli.FormatDate(m.StartDateRaw, m.StartDate)})
	}
	rows = append(rows,
		[]string{"Days", cli.FormatNumber(int64(m.DaysCount))},
		[]string{"Travelers", cli.FormatNumber(int64(m.Travelers))},
		[]string{"Stops", cli.FormatNumber(int64(trip.StopCount()))},
		[]string{"Exchange", fmt.Sprintf("1 %s = %g %s", m.DestinationCurrency, m.ExchangeRate, m.HomeCurrency)},
		[]string{"---"},
	)
	for _, d := range s.Categories {
		rows = append(rows, []string{d.Title, cli.FormatHome(d.Currency, d.Total)})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total", cli.FormatHome(s.HomeCurrency, s.Total)},
		[]string{"Per traveler", cli.FormatHome(s.HomeCurrency, s.PerTraveler)},
	)
	if s.Budget > 0 {
		rows = append(rows, []string{"Budget", cli.FormatHome(s.HomeCurrency, int64(s.Budget))})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Trip", "Value"},
		Rows:    rows,
	}))

	if s.Budget > 0 {
		fmt.Println()
		fmt.Println("  Budget used " + cli.RenderProgressBar(s.BudgetUsed, 30))
	}

	costs := make([]int64, len(trip.Days))
	for i, d := range trip.Days {
		costs[i] = pipeline.DayCost(trip, d)
	}
	if len(costs) > 1 {
		fmt.Println()
		fmt.Println("  Daily spend  " + cli.RenderSparkline(costs))
	}
	fmt.Println()
	return nil
}
