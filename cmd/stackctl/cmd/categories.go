package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Browse film categories",
}

var categoriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all categories",
	RunE:  runCategoriesList,
}

var categoriesGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one category",
	Args:  cobra.ExactArgs(1),
	RunE:  runCategoriesGet,
}

var categoriesStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show category statistics",
	RunE:  runCategoriesStats,
}

func init() {
	categoriesCmd.AddCommand(categoriesListCmd)
	categoriesCmd.AddCommand(categoriesGetCmd)
	categoriesCmd.AddCommand(categoriesStatsCmd)

	rootCmd.AddCommand(categoriesCmd)
}

func runCategoriesList(cmd *cobra.Command, args []string) error {
	client, _, err := getClient()
	if err != nil {
		return err
	}

	categories, err := client.Categories.List(context.Background())
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

	w := newTable()
	printTableHeader(w, "ID", "NAME")
	for _, c := range categories {
		fmt.Fprintf(w, "%d\t%s\n", c.CategoryID, c.Name)
	}
	return w.Flush()
}

func runCategoriesGet(cmd *cobra.Command, args []string) error {
	categoryID, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid category ID %q", args[0])
	}

	client, _, err := getClient()
	if err != nil {
		return err
	}

	category, err := client.Categories.Get(context.Background(), categoryID)
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(category)
	}
	fmt.Printf("%d\t%s\n", category.CategoryID, category.Name)
	return nil
}

func runCategoriesStats(cmd *cobra.Command, args []string) error {
	client, _, err := getClient()
	if err != nil {
		return err
	}

	stats, err := client.Categories.Stats(context.Background())
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(stats)
	}
	fmt.Printf("total categories: %d\n", stats.TotalCategories)
	return nil
}
