package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show platform-wide record counts",
	Long: `Platform overview: record counts from both backing stores.

Example:
  stackctl stats`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	client, _, err := getClient()
	if err != nil {
		return err
	}

	stats, err := client.Unified.Stats(context.Background())
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(stats)
	}

	w := newTable()
	printTableHeader(w, "STORE", "COLLECTION", "COUNT")
	fmt.Fprintf(w, "postgresql\tfilms\t%d\n", stats.PostgreSQL.Films)
	fmt.Fprintf(w, "postgresql\tactors\t%d\n", stats.PostgreSQL.Actors)
	fmt.Fprintf(w, "postgresql\tcategories\t%d\n", stats.PostgreSQL.Categories)
	fmt.Fprintf(w, "postgresql\tusers\t%d\n", stats.PostgreSQL.Users)
	fmt.Fprintf(w, "postgresql\trentals\t%d\n", stats.PostgreSQL.Rentals)
	fmt.Fprintf(w, "postgresql\tpayments\t%d\n", stats.PostgreSQL.Payments)
	fmt.Fprintf(w, "mongodb\tpublications\t%d\n", stats.MongoDB.Publications)
	fmt.Fprintf(w, "mongodb\treviews\t%d\n", stats.MongoDB.Reviews)
	fmt.Fprintf(w, "total\t\t%d\n", stats.Total)
	return w.Flush()
}
