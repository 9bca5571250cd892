package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show the signed-in user's orders",
	Long: `Order history commands.

Both subcommands require a session; run "stackctl auth login" first.`,
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your orders",
	RunE:  runOrdersList,
}

var ordersStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show your order statistics",
	RunE:  runOrdersStats,
}

func init() {
	ordersCmd.AddCommand(ordersListCmd)
	ordersCmd.AddCommand(ordersStatsCmd)
	rootCmd.AddCommand(ordersCmd)
}

func runOrdersList(cmd *cobra.Command, args []string) error {
	client, store, err := getClient()
	if err != nil {
		return err
	}
	if store.Token() == "" {
		return fmt.Errorf("not logged in; run `stackctl auth login` first")
	}

	orders, err := client.Orders.List(context.Background())
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(orders)
	}
	if len(orders) == 0 {
		fmt.Println("No orders yet")
		return nil
	}

	w := newTable()
	printTableHeader(w, "ID", "DATE", "STATUS")
	for _, o := range orders {
		status := "pending"
		if o.ReturnDate != nil {
			status = "completed"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\n", o.RentalID, o.RentalDate.Format("2006-01-02"), status)
	}
	return w.Flush()
}

func runOrdersStats(cmd *cobra.Command, args []string) error {
	client, store, err := getClient()
	if err != nil {
		return err
	}
	if store.Token() == "" {
		return fmt.Errorf("not logged in; run `stackctl auth login` first")
	}

	stats, err := client.Orders.Stats(context.Background())
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(stats)
	}

	w := newTable()
	printTableHeader(w, "METRIC", "VALUE")
	fmt.Fprintf(w, "total orders\t%d\n", stats.TotalOrders)
	fmt.Fprintf(w, "pending\t%d\n", stats.PendingOrders)
	fmt.Fprintf(w, "completed\t%d\n", stats.CompletedOrders)
	if err := w.Flush(); err != nil {
		return err
	}
	if stats.Message != "" {
		fmt.Println(stats.Message)
	}
	return nil
}
