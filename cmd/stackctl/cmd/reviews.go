package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ganeshdatta23/skillstacker"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Read and write product reviews",
	Long: `Product review commands.

Listing and summaries are public. Adding a review requires a
session; run "stackctl auth login" first.

Examples:
  stackctl reviews list 42
  stackctl reviews summary 42
  stackctl reviews add 42 --rating 5 --title "Great" --content "Loved it"`,
}

var reviewsListCmd = &cobra.Command{
	Use:   "list <product-id>",
	Short: "List reviews for a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewsList,
}

var reviewsSummaryCmd = &cobra.Command{
	Use:   "summary <product-id>",
	Short: "Show the rating summary for a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewsSummary,
}

var reviewsAddCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a review for a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runReviewsAdd,
}

func init() {
	reviewsAddCmd.Flags().Int("rating", 0, "star rating, 1 to 5")
	reviewsAddCmd.Flags().String("title", "", "review title")
	reviewsAddCmd.Flags().String("content", "", "review body")
	reviewsAddCmd.MarkFlagRequired("rating")
	reviewsAddCmd.MarkFlagRequired("title")
	reviewsAddCmd.MarkFlagRequired("content")

	reviewsCmd.AddCommand(reviewsListCmd)
	reviewsCmd.AddCommand(reviewsSummaryCmd)
	reviewsCmd.AddCommand(reviewsAddCmd)

	rootCmd.AddCommand(reviewsCmd)
}

func parseProductID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid product ID %q", arg)
	}
	return id, nil
}

func runReviewsList(cmd *cobra.Command, args []string) error {
	productID, err := parseProductID(args[0])
	if err != nil {
		return err
	}

	client, _, err := getClient()
	if err != nil {
		return err
	}

	reviews, err := client.Reviews.ForProduct(context.Background(), productID)
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(reviews)
	}
	if len(reviews) == 0 {
		fmt.Println("No reviews yet for this product")
		return nil
	}

	w := newTable()
	printTableHeader(w, "RATING", "TITLE", "CONTENT", "DATE")
	for _, r := range reviews {
		fmt.Fprintf(w, "%d/5\t%s\t%s\t%s\n",
			r.Rating, truncate(r.Title, 30), truncate(r.Content, 50),
			r.CreatedAt.Format("2006-01-02"))
	}
	return w.Flush()
}

func runReviewsSummary(cmd *cobra.Command, args []string) error {
	productID, err := parseProductID(args[0])
	if err != nil {
		return err
	}

	client, _, err := getClient()
	if err != nil {
		return err
	}

	summary, err := client.Reviews.Summary(context.Background(), productID)
	if err != nil {
		return err
	}

	if wantJSON() {
		return printStructured(summary)
	}
	fmt.Printf("%.1f/5 across %d reviews\n", summary.AverageRating, summary.TotalReviews)
	for stars := 5; stars >= 1; stars-- {
		key := strconv.Itoa(stars)
		fmt.Printf("  %d star: %d\n", stars, summary.Distribution[key])
	}
	return nil
}

func runReviewsAdd(cmd *cobra.Command, args []string) error {
	productID, err := parseProductID(args[0])
	if err != nil {
		return err
	}

	client, store, err := getClient()
	if err != nil {
		return err
	}
	if store.Token() == "" {
		return fmt.Errorf("not logged in; run `stackctl auth login` first")
	}

	req := skillstacker.CreateReviewRequest{}
	req.Rating, _ = cmd.Flags().GetInt("rating")
	req.Title, _ = cmd.Flags().GetString("title")
	req.Content, _ = cmd.Flags().GetString("content")

	review, err := client.Products.CreateReview(context.Background(), productID, req)
	if err != nil {
		var verr *skillstacker.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid review: %s", verr.Error())
		}
		return err
	}

	if wantJSON() {
		return printStructured(review)
	}
	fmt.Printf("Review %s created\n", review.ID)
	return nil
}
