package skillstacker

import (
	"context"
	"fmt"
)

// CategoriesService handles category reads.
type CategoriesService struct {
	client *Client
}

// List returns all categories.
func (s *CategoriesService) List(ctx context.Context) ([]Category, error) {
	var resp []Category
	if err := s.client.get(ctx, "/categories/", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// All returns all categories. The backend serves /categories/ and
// /categories/all identically; both are kept so either path can be
// exercised.
func (s *CategoriesService) All(ctx context.Context) ([]Category, error) {
	var resp []Category
	if err := s.client.get(ctx, "/categories/all", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Get retrieves a category by ID.
func (s *CategoriesService) Get(ctx context.Context, categoryID int) (*Category, error) {
	var resp Category
	if err := s.client.get(ctx, fmt.Sprintf("/categories/%d", categoryID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stats returns the category count.
func (s *CategoriesService) Stats(ctx context.Context) (*CategoryStats, error) {
	var resp CategoryStats
	if err := s.client.get(ctx, "/categories/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
