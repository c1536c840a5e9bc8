package cmd

import (
	"fmt"
	"strconv"

	"github.com/jkhomeclaw/tripview/internal/cli"
	"github.com/jkhomeclaw/tripview/internal/model"
	"github.com/jkhomeclaw/tripview/internal/pipeline"

	"github.com/spf13/cobra"
)

var budgetCmd = &cobra.Command{
	Use:   "budget [category]",
	Short: "Budget breakdown, or the items of one category",
	Long:  "Categories: accommodation, transport, food, attraction (aliases: stay, transit, meals, tickets).",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBudget,
}

func init() {
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, args []string) error {
	var cat model.Category
	if len(args) == 1 {
		c, err := model.ParseCategory(args[0])
		if err != nil {
			return err
		}
		cat = c
	}

	trip, _, err := loadTrip(cmd.Context())
	if err != nil {
		return err
	}

	if cat != "" {
		return printBudgetDetails(pipeline.Budget(trip, cat))
	}

	s := pipeline.BudgetAll(trip)
	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET  " + trip.Meta.Title))
	fmt.Println()

	rows := make([][]string, 0, len(s.Categories)+2)
	for _, d := range s.Categories {
		share := ""
		if s.Total > 0 {
			share = cli.FormatPercent(float64(d.Total) / float64(s.Total))
		}
		rows = append(rows, []string{d.Title, strconv.Itoa(len(d.Items)), cli.FormatHome(d.Currency, d.Total), share})
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"TOTAL", "", cli.FormatHome(s.HomeCurrency, s.Total), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Items", "Total", "Share"},
		Rows:    rows,
	}))

	var top int64
	for _, d := range s.Categories {
		top = max(top, d.Total)
	}
	fmt.Println()
	for _, d := range s.Categories {
		fmt.Println(cli.RenderHorizontalBar(d.Title, float64(d.Total), float64(top), 30, cli.FormatHome(d.Currency, d.Total)))
	}

	fmt.Println()
	fmt.Printf("  Per traveler: %s\n", cli.FormatHome(s.HomeCurrency, s.PerTraveler))
	if s.Budget > 0 {
		fmt.Printf("  Budget used:  %s\n", cli.RenderProgressBar(s.BudgetUsed, 30))
	}
	fmt.Println()
	return nil
}

func printBudgetDetails(d model.BudgetDetails) error {
	fmt.Println()
	fmt.Println(cli.RenderTitle(d.Title + "  " + cli.FormatHome(d.Currency, d.Total)))
	fmt.Println()

	if len(d.Items) == 0 {
		fmt.Println("  No items.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(d.Items))
	for _, it := range d.Items {
		rows = append(rows, []string{
			strconv.Itoa(it.DayNumber),
			it.Name,
			cli.FormatMoney(it.Currency, it.Cost),
			cli.FormatMoney(d.Currency, it.Converted),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Day", "Item", "Cost", "Converted"},
		Rows:    rows,
	}))
	return nil
}
