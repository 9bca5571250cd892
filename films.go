package skillstacker

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// FilmsService handles film catalog reads.
type FilmsService struct {
	client *Client
}

// FilmFilters narrows a film listing. Zero values are omitted from the
// query entirely.
type FilmFilters struct {
	// Search matches against title and description.
	Search string
	// Rating filters by MPAA rating (G, PG, PG-13, R, NC-17).
	Rating string
	// MinYear / MaxYear bound the release year.
	MinYear int
	MaxYear int
	// Skip / Limit page through the result set.
	Skip  int
	Limit int
}

func (f *FilmFilters) query() url.Values {
	q := url.Values{}
	if f == nil {
		return q
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.Rating != "" {
		q.Set("rating", f.Rating)
	}
	if f.MinYear > 0 {
		q.Set("min_year", strconv.Itoa(f.MinYear))
	}
	if f.MaxYear > 0 {
		q.Set("max_year", strconv.Itoa(f.MaxYear))
	}
	if f.Skip > 0 {
		q.Set("skip", strconv.Itoa(f.Skip))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// List returns films matching the filters.
//
// Example:
//
//	films, err := client.Films.List(ctx, &skillstacker.FilmFilters{
//	    Rating:  "PG",
//	    MinYear: 2000,
//	})
func (s *FilmsService) List(ctx context.Context, filters *FilmFilters) ([]Film, error) {
	var resp []Film
	if err := s.client.get(ctx, "/films/", filters.query(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// All returns the entire film catalog without pagination.
func (s *FilmsService) All(ctx context.Context) ([]Film, error) {
	var resp []Film
	if err := s.client.get(ctx, "/films/all", nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Get retrieves a film by ID.
func (s *FilmsService) Get(ctx context.Context, filmID int) (*Film, error) {
	var resp Film
	if err := s.client.get(ctx, fmt.Sprintf("/films/%d", filmID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Stats returns catalog-wide film statistics.
func (s *FilmsService) Stats(ctx context.Context) (*FilmStats, error) {
	var resp FilmStats
	if err := s.client.get(ctx, "/films/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
