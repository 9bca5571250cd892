package skillstacker

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// validate checks write payloads before they reach the wire.
var validate = validator.New(validator.WithRequiredStructEnabled())

// ProductsService handles storefront reads and review creation.
type ProductsService struct {
	client *Client
}

// ProductFilters narrows a product listing.
type ProductFilters struct {
	// Search matches against the product name.
	Search string
	// Category filters by product category.
	Category string
	// MinRating filters by minimum numeric rating.
	MinRating float64
	Skip      int
	Limit     int
}

func (f *ProductFilters) query() url.Values {
	q := url.Values{}
	if f == nil {
		return q
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.MinRating > 0 {
		q.Set("min_rating", strconv.FormatFloat(f.MinRating, 'f', -1, 64))
	}
	if f.Skip > 0 {
		q.Set("skip", strconv.Itoa(f.Skip))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// List returns products matching the filters.
func (s *ProductsService) List(ctx context.Context, filters *ProductFilters) ([]Product, error) {
	var resp []Product
	if err := s.client.get(ctx, "/products/", filters.query(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// All returns the entire product catalog.
func (s *ProductsService) All(ctx context.Context) ([]Product, error) {
	var resp []Product
	if err := s.client.get(ctx, "/products/all", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Get retrieves a product by ID.
func (s *ProductsService) Get(ctx context.Context, productID int) (*Product, error) {
	var resp Product
	if err := s.client.get(ctx, fmt.Sprintf("/products/%d", productID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Categories returns the distinct product categories.
func (s *ProductsService) Categories(ctx context.Context) ([]string, error) {
	var resp []string
	if err := s.client.get(ctx, "/products/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Stats returns catalog-wide product statistics.
func (s *ProductsService) Stats(ctx context.Context) (*ProductStats, error) {
	var resp ProductStats
	if err := s.client.get(ctx, "/products/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ProductReviews returns the reviews of one product.
func (s *ProductsService) ProductReviews(ctx context.Context, productID int) ([]Review, error) {
	var resp []Review
	if err := s.client.get(ctx, fmt.Sprintf("/products/%d/reviews", productID), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateReviewRequest is the payload for posting a review. Requires an
// authenticated session.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required,max=2000"`
}

// CreateReview posts a review against a product and returns the created
// review. The payload is validated before the request goes out; a reject,
// whether local or from the backend, is reported as a *ValidationError.
//
// Example:
//
//	review, err := client.Products.CreateReview(ctx, 42, skillstacker.CreateReviewRequest{
//	    Rating:  5,
//	    Title:   "Great film",
//	    Content: "Watched it twice.",
//	})
func (s *ProductsService) CreateReview(ctx context.Context, productID int, req CreateReviewRequest) (*Review, error) {
	if err := validate.Struct(req); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return nil, NewValidationError(errs[0].Field(), fmt.Sprintf("failed on %q", errs[0].Tag()))
		}
		return nil, err
	}

	var resp Review
	if err := s.client.post(ctx, fmt.Sprintf("/products/%d/reviews", productID), req, &resp); err != nil {
		return nil, asValidationError(err)
	}
	return &resp, nil
}
