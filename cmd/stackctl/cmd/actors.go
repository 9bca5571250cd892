package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ganeshdatta23/skillstacker"
	"github.com/ganeshdatta23/skillstacker/browse"
)

var actorsCmd = &cobra.Command{
	Use:   "actors",
	Short: "Browse actors",
}

var actorsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List actors, optionally filtered by name",
	RunE:  runActorsList,
}

var actorsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one actor",
	Args:  cobra.ExactArgs(1),
	RunE:  runActorsGet,
}

var actorsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show actor statistics",
	RunE:  runActorsStats,
}

func init() {
	actorsListCmd.Flags().String("search", "", "search in first and last name")
	actorsListCmd.Flags().Int("limit", 50, "maximum number of actors")
	actorsListCmd.Flags().Int("skip", 0, "number of actors to skip")

	actorsCmd.AddCommand(actorsListCmd)
	actorsCmd.AddCommand(actorsGetCmd)
	actorsCmd.AddCommand(actorsStatsCmd)

	rootCmd.AddCommand(actorsCmd)
}

func runActorsList(cmd *cobra.Command, args []string) error {
	client, _, err := getClient()
	if err != nil {
		return err
	}

	filters := &skillstacker.ActorFilters{}
	filters.Search, _ = cmd.Flags().GetString("search")
	filters.Limit, _ = cmd.Flags().GetInt("limit")
	filters.Skip, _ = cmd.Flags().GetInt("skip")

	view := browse.NewView(func(ctx context.Context) ([]skillstacker.Actor, error) {
		return client.Actors.List(ctx, filters)
	})

	snap := view.Reload(context.Background())
	if wantJSON() {
		return printStructured(snap.Items)
	}

	switch snap.Phase() {
	case browse.PhaseError:
		return snap.Err
	case browse.PhaseEmpty:
		fmt.Println("No actors match the current filters")
		return nil
	}

	w := newTable()
	printTableHeader(w, "ID", "NAME")
	for _, a := range snap.Items {
		fmt.Fprintf(w, "%d\t%s\n", a.ActorID, a.Name())
	}
	return w.Flush()
}

func runActorsGet(cmd *cobra.Command, args []string) error {
	actorID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid actor ID %q", args[0])
	}

	client, _, err := getClient()
	if err != nil {
		return err
	}

	actor, err := client.Actors.Get(context.Background(), actorID)
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(actor)
	}
	fmt.Printf("%d\t%s\n", actor.ActorID, actor.Name())
	return nil
}

func runActorsStats(cmd *cobra.Command, args []string) error {
	client, _, err := getClient()
	if err != nil {
		return err
	}

	stats, err := client.Actors.Stats(context.Background())
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(stats)
	}
	fmt.Printf("total actors: %d\n", stats.TotalActors)
	return nil
}
