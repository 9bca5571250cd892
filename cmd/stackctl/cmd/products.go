package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ganeshdatta23/skillstacker"
	"github.com/ganeshdatta23/skillstacker/browse"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Browse the product storefront",
	Long: `Product storefront commands.

Examples:
  stackctl products list --search academy --limit 20
  stackctl products get 42
  stackctl products categories
  stackctl products stats`,
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products, optionally filtered",
	RunE:  runProductsList,
}

var productsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsGet,
}

var productsCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the distinct product categories",
	RunE:  runProductsCategories,
}

var productsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show product catalog statistics",
	RunE:  runProductsStats,
}

func init() {
	productsListCmd.Flags().String("search", "", "search in product name")
	productsListCmd.Flags().String("category", "", "filter by category")
	productsListCmd.Flags().Float64("min-rating", 0, "minimum rating")
	productsListCmd.Flags().Int("limit", 50, "maximum number of products")
	productsListCmd.Flags().Int("skip", 0, "number of products to skip")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsGetCmd)
	productsCmd.AddCommand(productsCategoriesCmd)
	productsCmd.AddCommand(productsStatsCmd)

	rootCmd.AddCommand(productsCmd)
}

// placeholderProducts is the storefront's offline sample, like
// placeholderFilms.
var placeholderProducts = []skillstacker.Product{
	{FilmID: 1, Title: "Academy Dinosaur", Rating: "PG", Length: 86},
	{FilmID: 2, Title: "Ace Goldfinger", Rating: "G", Length: 48},
	{FilmID: 3, Title: "Adaptation Holes", Rating: "NC-17", Length: 50},
}

func runProductsList(cmd *cobra.Command, args []string) error {
	client, _, err := getClient()
	if err != nil {
		return err
	}

	filters := &skillstacker.ProductFilters{}
	filters.Search, _ = cmd.Flags().GetString("search")
	filters.Category, _ = cmd.Flags().GetString("category")
	filters.MinRating, _ = cmd.Flags().GetFloat64("min-rating")
	filters.Limit, _ = cmd.Flags().GetInt("limit")
	filters.Skip, _ = cmd.Flags().GetInt("skip")

	view := browse.NewView(func(ctx context.Context) ([]skillstacker.Product, error) {
		return client.Products.List(ctx, filters)
	}, browse.WithFallback(placeholderProducts))

	snap := view.Reload(context.Background())
	if wantJSON() {
		return printStructured(snap.Items)
	}

	switch snap.Phase() {
	case browse.PhaseError:
		return snap.Err
	case browse.PhaseEmpty:
		fmt.Println("No products match the current filters")
		return nil
	}

	if snap.UsedFallback {
		fmt.Println("Backend unreachable; showing sample data")
	}

	w := newTable()
	printTableHeader(w, "ID", "TITLE", "RATING", "LENGTH")
	for _, p := range snap.Items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", p.FilmID, truncate(p.Title, 40), p.Rating, p.Length)
	}
	return w.Flush()
}

func runProductsGet(cmd *cobra.Command, args []string) error {
	productID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid product ID %q", args[0])
	}

	client, _, err := getClient()
	if err != nil {
		return err
	}

	product, err := client.Products.Get(context.Background(), productID)
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(product)
	}
	fmt.Printf("%s\n", product.Title)
	if product.Description != "" {
		fmt.Println(product.Description)
	}
	fmt.Printf("rating %s, %d min\n", product.Rating, product.Length)
	return nil
}

func runProductsCategories(cmd *cobra.Command, args []string) error {
	client, _, err := getClient()
	if err != nil {
		return err
	}

	categories, err := client.Products.Categories(context.Background())
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(categories)
	}
	if len(categories) == 0 {
		fmt.Println("No categories found")
		return nil
	}
	fmt.Println(strings.Join(categories, "\n"))
	return nil
}

func runProductsStats(cmd *cobra.Command, args []string) error {
	client, _, err := getClient()
	if err != nil {
		return err
	}

	stats, err := client.Products.Stats(context.Background())
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(stats)
	}

	w := newTable()
	printTableHeader(w, "METRIC", "VALUE")
	fmt.Fprintf(w, "total products\t%d\n", stats.TotalProducts)
	fmt.Fprintf(w, "ratings\t%s\n", strings.Join(stats.Ratings, ", "))
	return w.Flush()
}
