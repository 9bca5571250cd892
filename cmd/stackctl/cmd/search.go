package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ganeshdatta23/skillstacker"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search films, actors, users, publications and reviews at once",
	Long: `Unified search across the relational catalog and the document store.

Examples:
  stackctl search dinosaur
  stackctl search academy --category films --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("category", "", "restrict to one category: films, actors, users, publications, reviews (default: all)")
	searchCmd.Flags().Int("limit", 10, "maximum hits per category")
	searchCmd.Flags().Int("skip", 0, "number of hits to skip per category")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, _, err := getClient()
	if err != nil {
		return err
	}

	req := skillstacker.SearchRequest{Query: args[0]}
	req.Category, _ = cmd.Flags().GetString("category")
	req.Limit, _ = cmd.Flags().GetInt("limit")
	req.Skip, _ = cmd.Flags().GetInt("skip")

	result, err := client.Unified.Search(context.Background(), req)
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(result)
	}

	if result.TotalResults == 0 {
		fmt.Printf("No results for %q\n", result.Query)
		return nil
	}
	fmt.Printf("%d results for %q\n", result.TotalResults, result.Query)

	if len(result.Films) > 0 {
		fmt.Println("\nFilms:")
		for _, f := range result.Films {
			fmt.Printf("  %s (%s)\n", f.Title, f.Rating)
		}
	}
	if len(result.Actors) > 0 {
		fmt.Println("\nActors:")
		for _, a := range result.Actors {
			fmt.Printf("  %s\n", a.Name)
		}
	}
	if len(result.Users) > 0 {
		fmt.Println("\nUsers:")
		for _, u := range result.Users {
			fmt.Printf("  %s <%s>\n", u.Name, u.Email)
		}
	}
	if len(result.Publications) > 0 {
		fmt.Println("\nPublications:")
		for _, p := range result.Publications {
			fmt.Printf("  %s (%s)\n", p.Title, p.Type)
		}
	}
	if len(result.Reviews) > 0 {
		fmt.Println("\nReviews:")
		for _, r := range result.Reviews {
			fmt.Printf("  %s (%d/5)\n", truncate(r.Title, 50), r.Rating)
		}
	}
	return nil
}
