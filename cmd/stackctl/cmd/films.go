package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ganeshdatta23/skillstacker"
	"github.com/ganeshdatta23/skillstacker/browse"
)

var filmsCmd = &cobra.Command{
	Use:   "films",
	Short: "Browse the film catalog",
	Long: `Film catalog commands.

Examples:
  stackctl films list --rating PG --min-year 2000
  stackctl films list --search dinosaur
  stackctl films get 42
  stackctl films stats`,
}

var filmsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List films, optionally filtered",
	RunE:  runFilmsList,
}

var filmsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one film",
	Args:  cobra.ExactArgs(1),
	RunE:  runFilmsGet,
}

var filmsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show film catalog statistics",
	RunE:  runFilmsStats,
}

func init() {
	filmsListCmd.Flags().String("search", "", "search in title and description")
	filmsListCmd.Flags().String("rating", "", "filter by rating (G, PG, PG-13, R, NC-17)")
	filmsListCmd.Flags().Int("min-year", 0, "minimum release year")
	filmsListCmd.Flags().Int("max-year", 0, "maximum release year")
	filmsListCmd.Flags().Int("limit", 50, "maximum number of films")
	filmsListCmd.Flags().Int("skip", 0, "number of films to skip")
	filmsListCmd.Flags().Bool("all", false, "fetch the entire catalog, ignoring filters")

	filmsCmd.AddCommand(filmsListCmd)
	filmsCmd.AddCommand(filmsGetCmd)
	filmsCmd.AddCommand(filmsStatsCmd)

	rootCmd.AddCommand(filmsCmd)
}

// placeholderFilms keeps `films list` output non-blank when the backend
// is down, mirroring the static demo rows the web catalog fell back to.
var placeholderFilms = []skillstacker.Film{
	{FilmID: 1, Title: "Academy Dinosaur", ReleaseYear: 2006, RentalRate: "0.99", Length: 86, Rating: "PG"},
	{FilmID: 2, Title: "Ace Goldfinger", ReleaseYear: 2006, RentalRate: "4.99", Length: 48, Rating: "G"},
	{FilmID: 3, Title: "Adaptation Holes", ReleaseYear: 2006, RentalRate: "2.99", Length: 50, Rating: "NC-17"},
}

func runFilmsList(cmd *cobra.Command, args []string) error {
	client, _, err := getClient()
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	filters := &skillstacker.FilmFilters{}
	filters.Search, _ = cmd.Flags().GetString("search")
	filters.Rating, _ = cmd.Flags().GetString("rating")
	filters.MinYear, _ = cmd.Flags().GetInt("min-year")
	filters.MaxYear, _ = cmd.Flags().GetInt("max-year")
	filters.Limit, _ = cmd.Flags().GetInt("limit")
	filters.Skip, _ = cmd.Flags().GetInt("skip")

	view := browse.NewView(func(ctx context.Context) ([]skillstacker.Film, error) {
		if all {
			return client.Films.All(ctx)
		}
		return client.Films.List(ctx, filters)
	}, browse.WithFallback(placeholderFilms))

	snap := view.Reload(context.Background())
	return renderFilms(snap)
}

func renderFilms(snap browse.Snapshot[skillstacker.Film]) error {
	if wantJSON() {
		return printStructured(snap.Items)
	}

	switch snap.Phase() {
	case browse.PhaseError:
		return snap.Err
	case browse.PhaseEmpty:
		fmt.Println("No films match the current filters")
		return nil
	}

	if snap.UsedFallback {
		fmt.Println("Backend unreachable; showing sample data")
	}

	w := newTable()
	printTableHeader(w, "ID", "TITLE", "YEAR", "RATING", "LENGTH", "RATE")
	for _, f := range snap.Items {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%d\t%s\n",
			f.FilmID, truncate(f.Title, 40), f.ReleaseYear, f.Rating, f.Length, f.RentalRate)
	}
	return w.Flush()
}

func runFilmsGet(cmd *cobra.Command, args []string) error {
	filmID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid film ID %q", args[0])
	}

	client, _, err := getClient()
	if err != nil {
		return err
	}

	film, err := client.Films.Get(context.Background(), filmID)
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(film)
	}
	fmt.Printf("%s (%d)\n", film.Title, film.ReleaseYear)
	if film.Description != "" {
		fmt.Println(film.Description)
	}
	fmt.Printf("rating %s, %d min, rents at %s\n", film.Rating, film.Length, film.RentalRate)
	return nil
}

func runFilmsStats(cmd *cobra.Command, args []string) error {
	client, _, err := getClient()
	if err != nil {
		return err
	}

	stats, err := client.Films.Stats(context.Background())
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(stats)
	}

	w := newTable()
	printTableHeader(w, "METRIC", "VALUE")
	fmt.Fprintf(w, "total films\t%d\n", stats.TotalFilms)
	for rating, count := range stats.Ratings {
		fmt.Fprintf(w, "rated %s\t%d\n", rating, count)
	}
	if stats.YearRange.Min != nil && stats.YearRange.Max != nil {
		fmt.Fprintf(w, "years\t%d-%d\n", *stats.YearRange.Min, *stats.YearRange.Max)
	}
	fmt.Fprintf(w, "avg rental rate\t%.2f\n", stats.AvgRentalRate)
	return w.Flush()
}
