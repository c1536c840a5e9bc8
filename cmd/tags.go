package cmd

import (
	"fmt"
	"strconv"

	"github.com/jkhomeclaw/tripview/internal/cli"
	"github.com/jkhomeclaw/tripview/internal/pipeline"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags [tag]",
	Short: "List tags, or the stops carrying one tag",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTags,
}

func init() {
	rootCmd.AddCommand(tagsCmd)
}

func runTags(cmd *cobra.Command, args []string) error {
	trip, _, err := loadTrip(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println()
	if len(args) == 0 {
		counts := pipeline.Tags(trip)
		if len(counts) == 0 {
			fmt.Println("  No tagged stops.")
			fmt.Println()
			return nil
		}
		rows := make([][]string, 0, len(counts))
		for _, tc := range counts {
			rows = append(rows, []string{tc.Tag, strconv.Itoa(tc.Count)})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Tags",
			Headers: []string{"Tag", "Stops"},
			Rows:    rows,
		}))
		return nil
	}

	stops := pipeline.FilterStopsByTag(trip, args[0])
	if len(stops) == 0 {
		fmt.Printf("  No stops tagged %q.\n\n", args[0])
		return nil
	}
	rows := make([][]string, 0, len(stops))
	for _, ts := range stops {
		rows = append(rows, []string{strconv.Itoa(ts.DayNumber), ts.Stop.Time, ts.Stop.Name, ts.Stop.MapURL()})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   args[0],
		Headers: []string{"Day", "Time", "Stop", "Map"},
		Rows:    rows,
	}))
	return nil
}
