package skillstacker

import "context"

// OrdersService handles order reads.
type OrdersService struct {
	client *Client
}

// List returns the current user's orders.
func (s *OrdersService) List(ctx context.Context) ([]Order, error) {
	var resp []Order
	if err := s.client.get(ctx, "/orders/", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Stats returns summary counts over the user's orders.
func (s *OrdersService) Stats(ctx context.Context) (*OrderStats, error) {
	var resp OrderStats
	if err := s.client.get(ctx, "/orders/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
