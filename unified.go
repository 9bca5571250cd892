package skillstacker

import (
	"context"
	"net/url"
	"strconv"
)

// UnifiedService searches and aggregates across both backing stores.
type UnifiedService struct {
	client *Client
}

// defaultPublicationQuery is sent when a publication listing has no
// search term. The backend's search endpoint rejects an empty q, so a
// term that matches nearly every document stands in for "all".
// TODO(backend): drop once /unified/search accepts an empty query.
const defaultPublicationQuery = "a"

// SearchRequest is a unified search across films, actors, users,
// publications and reviews.
type SearchRequest struct {
	// Query is the search term (required).
	Query string
	// Category limits the search to one resource type: films, actors,
	// users, publications or reviews. Empty searches everything.
	Category string
	// Limit / Skip page through each category's results.
	Limit int
	Skip  int
}

func (r SearchRequest) query() url.Values {
	q := url.Values{}
	q.Set("q", r.Query)
	// The backend searches every store only when category is absent;
	// "all" is accepted here as an alias for that.
	if r.Category != "" && r.Category != "all" {
		q.Set("category", r.Category)
	}
	if r.Limit > 0 {
		q.Set("limit", strconv.Itoa(r.Limit))
	}
	if r.Skip > 0 {
		q.Set("skip", strconv.Itoa(r.Skip))
	}
	return q
}

// Search queries every store at once and returns matches per category.
func (s *UnifiedService) Search(ctx context.Context, req SearchRequest) (*UnifiedSearchResult, error) {
	var resp UnifiedSearchResult
	if err := s.client.get(ctx, "/unified/search", req.query(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PublicationFilters narrows a publication listing.
type PublicationFilters struct {
	Search string
	Limit  int
}

// SearchPublications lists publications via the unified search endpoint.
// When no search term is given the default query term is used, since the
// endpoint requires a non-empty one.
func (s *UnifiedService) SearchPublications(ctx context.Context, filters *PublicationFilters) ([]Publication, error) {
	req := SearchRequest{Query: defaultPublicationQuery, Category: "publications"}
	if filters != nil {
		if filters.Search != "" {
			req.Query = filters.Search
		}
		req.Limit = filters.Limit
	}

	result, err := s.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	return result.Publications, nil
}

// Stats returns counts across both stores.
func (s *UnifiedService) Stats(ctx context.Context) (*UnifiedStats, error) {
	var resp UnifiedStats
	if err := s.client.get(ctx, "/unified/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
