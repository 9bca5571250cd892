package skillstacker

import (
	"context"
	"fmt"
)

// ReviewsService handles review reads from the document store.
type ReviewsService struct {
	client *Client
}

// ForProduct returns the reviews of one product, newest first.
func (s *ReviewsService) ForProduct(ctx context.Context, productID int) ([]Review, error) {
	var resp []Review
	if err := s.client.get(ctx, fmt.Sprintf("/reviews/product/%d", productID), nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Summary returns the aggregate rating of one product.
func (s *ReviewsService) Summary(ctx context.Context, productID int) (*ReviewSummary, error) {
	var resp ReviewSummary
	if err := s.client.get(ctx, fmt.Sprintf("/reviews/product/%d/summary", productID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
