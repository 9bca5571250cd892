package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ganeshdatta23/skillstacker"
	"github.com/ganeshdatta23/skillstacker/browse"
)

var publicationsCmd = &cobra.Command{
	Use:     "publications",
	Aliases: []string{"pubs"},
	Short:   "Browse editorial publications",
	Long: `Editorial publication commands.

Examples:
  stackctl publications list
  stackctl publications list --search dinosaur
  stackctl publications stats`,
}

var publicationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List publications, optionally filtered",
	RunE:  runPublicationsList,
}

var publicationsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show publication and review counts",
	RunE:  runPublicationsStats,
}

func init() {
	publicationsListCmd.Flags().String("search", "", "search in publication titles")
	publicationsListCmd.Flags().Int("limit", 50, "maximum number of publications")

	publicationsCmd.AddCommand(publicationsListCmd)
	publicationsCmd.AddCommand(publicationsStatsCmd)

	rootCmd.AddCommand(publicationsCmd)
}

func runPublicationsList(cmd *cobra.Command, args []string) error {
	client, _, err := getClient()
	if err != nil {
		return err
	}

	filters := &skillstacker.PublicationFilters{}
	filters.Search, _ = cmd.Flags().GetString("search")
	filters.Limit, _ = cmd.Flags().GetInt("limit")

	view := browse.NewView(func(ctx context.Context) ([]skillstacker.Publication, error) {
		return client.Unified.SearchPublications(ctx, filters)
	})

	snap := view.Reload(context.Background())
	if wantJSON() {
		return printStructured(snap.Items)
	}

	switch snap.Phase() {
	case browse.PhaseError:
		return snap.Err
	case browse.PhaseEmpty:
		fmt.Println("No publications found")
		return nil
	}

	w := newTable()
	printTableHeader(w, "TITLE", "TYPE", "AUTHOR", "GROUPS")
	for _, p := range snap.Items {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			truncate(p.Title, 40), p.Type, p.Author,
			truncate(strings.Join(p.Groups, ", "), 30))
	}
	return w.Flush()
}

func runPublicationsStats(cmd *cobra.Command, args []string) error {
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
	printTableHeader(w, "METRIC", "VALUE")
	fmt.Fprintf(w, "publications\t%d\n", stats.MongoDB.Publications)
	fmt.Fprintf(w, "reviews\t%d\n", stats.MongoDB.Reviews)
	return w.Flush()
}
