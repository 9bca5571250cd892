package skillstacker

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// ActorsService handles actor reads.
type ActorsService struct {
	client *Client
}

// ActorFilters narrows an actor listing.
type ActorFilters struct {
	// Search matches against first and last name.
	Search string
	Skip   int
	Limit  int
}

func (f *ActorFilters) query() url.Values {
	q := url.Values{}
	if f == nil {
		return q
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Skip > 0 {
		q.Set("skip", strconv.Itoa(f.Skip))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// List returns actors matching the filters.
func (s *ActorsService) List(ctx context.Context, filters *ActorFilters) ([]Actor, error) {
	var resp []Actor
	if err := s.client.get(ctx, "/actors/", filters.query(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// All returns every actor.
func (s *ActorsService) All(ctx context.Context) ([]Actor, error) {
	var resp []Actor
	if err := s.client.get(ctx, "/actors/all", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Get retrieves an actor by ID.
func (s *ActorsService) Get(ctx context.Context, actorID int) (*Actor, error) {
	var resp Actor
	if err := s.client.get(ctx, fmt.Sprintf("/actors/%d", actorID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stats returns the actor count.
func (s *ActorsService) Stats(ctx context.Context) (*ActorStats, error) {
	var resp ActorStats
	if err := s.client.get(ctx, "/actors/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
