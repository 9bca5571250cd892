// Package skillstacker provides a Go client for the SkillStacker content
// platform API.
//
// SkillStacker exposes a product catalog, a film/actor/category data
// explorer backed by PostgreSQL, and publications and reviews backed by
// MongoDB, all under a single REST surface at /api/v1.
package skillstacker

import "time"

// User is an authenticated customer account.
//
// Display fields returned by the backend are untrusted profile data;
// session.Sanitize strips markup-significant characters before they are
// rendered anywhere.
type User struct {
	CustomerID int    `json:"customer_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"is_admin"`
	Active     bool   `json:"activebool"`
}

// FullName returns the user's display name.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// AuthResponse is returned by the login and register endpoints.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// RegisterRequest is the payload for creating an account.
type RegisterRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Film is a catalog entry from the relational store.
// RentalRate is transferred as a decimal string by the backend.
type Film struct {
	FilmID      int    `json:"film_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ReleaseYear int    `json:"release_year,omitempty"`
	RentalRate  string `json:"rental_rate"`
	Length      int    `json:"length,omitempty"`
	Rating      string `json:"rating,omitempty"`
}

// Actor is a person appearing in films.
type Actor struct {
	ActorID   int    `json:"actor_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Name returns the actor's display name.
func (a Actor) Name() string {
	return a.FirstName + " " + a.LastName
}

// Category is a film category.
type Category struct {
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
}

// Product is a storefront item. The products API serves films under a
// product shape; Rating here is the MPAA rating string (G, PG, ...), not
// a numeric score.
type Product struct {
	FilmID      int    `json:"film_id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Rating      string `json:"rating,omitempty"`
	Length      int    `json:"length,omitempty"`
}

// Review is a user review stored in the document store.
type Review struct {
	ID           string    `json:"id"`
	ProductID    int       `json:"product_id"`
	UserID       int       `json:"user_id"`
	Rating       int       `json:"rating"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	HelpfulCount int       `json:"helpful_count"`
}

// ReviewSummary aggregates the reviews of one product.
type ReviewSummary struct {
	AverageRating float64        `json:"average_rating"`
	TotalReviews  int            `json:"total_reviews"`
	Distribution  map[string]int `json:"rating_distribution,omitempty"`
}

// Order is a rental record, read-only in this client.
type Order struct {
	RentalID   int        `json:"rental_id"`
	RentalDate time.Time  `json:"rental_date"`
	CustomerID int        `json:"customer_id"`
	ReturnDate *time.Time `json:"return_date,omitempty"`
}

// Publication is an article from the document store.
type Publication struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Content      string   `json:"content,omitempty"`
	RelatedTitle string   `json:"related_title,omitempty"`
	Type         string   `json:"type"`
	Groups       []string `json:"groups,omitempty"`
	Subgroups    []string `json:"subgroups,omitempty"`
	Author       string   `json:"author,omitempty"`
}

// Per-endpoint stats results. The backend returns loosely shaped JSON for
// these; the client pins each one to an explicit type.

// YearRange is the min/max release year across the catalog. Either bound
// may be absent when the catalog is empty.
type YearRange struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// FilmStats summarizes the film catalog.
type FilmStats struct {
	TotalFilms    int            `json:"total_films"`
	Ratings       map[string]int `json:"ratings"`
	YearRange     YearRange      `json:"year_range"`
	AvgRentalRate float64        `json:"avg_rental_rate"`
}

// ActorStats summarizes the actor table.
type ActorStats struct {
	TotalActors int `json:"total_actors"`
}

// CategoryStats summarizes the category table.
type CategoryStats struct {
	TotalCategories int `json:"total_categories"`
}

// ProductStats summarizes the storefront catalog.
type ProductStats struct {
	TotalProducts int      `json:"total_products"`
	TotalRatings  int      `json:"total_ratings"`
	Ratings       []string `json:"ratings"`
}

// OrderStats summarizes orders for the current user.
type OrderStats struct {
	TotalOrders     int    `json:"total_orders"`
	PendingOrders   int    `json:"pending_orders"`
	CompletedOrders int    `json:"completed_orders"`
	Message         string `json:"message,omitempty"`
}

// RelationalStats is the relational-store half of the unified stats.
type RelationalStats struct {
	Films      int `json:"films"`
	Actors     int `json:"actors"`
	Categories int `json:"categories"`
	Users      int `json:"users"`
	Rentals    int `json:"rentals"`
	Payments   int `json:"payments"`
}

// DocumentStats is the document-store half of the unified stats.
type DocumentStats struct {
	Publications int `json:"publications"`
	Reviews      int `json:"reviews"`
}

// UnifiedStats reports counts across both backing stores.
type UnifiedStats struct {
	PostgreSQL RelationalStats `json:"postgresql"`
	MongoDB    DocumentStats   `json:"mongodb"`
	Total      int             `json:"total"`
}

// Unified search hit shapes. The search endpoint flattens each store's
// rows into its own result form rather than reusing the resource types.

// FilmHit is a film match from unified search.
type FilmHit struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Rating      string `json:"rating,omitempty"`
	Length      int    `json:"length,omitempty"`
}

// ActorHit is an actor match from unified search.
type ActorHit struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserHit is a customer match from unified search.
type UserHit struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

// ReviewHit is a review match from unified search. Content is truncated
// server-side.
type ReviewHit struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Rating    int    `json:"rating"`
	ProductID int    `json:"product_id"`
}

// UnifiedSearchResult holds one search response across every store.
type UnifiedSearchResult struct {
	Query        string        `json:"query"`
	TotalResults int           `json:"total_results"`
	Films        []FilmHit     `json:"films"`
	Actors       []ActorHit    `json:"actors"`
	Users        []UserHit     `json:"users"`
	Publications []Publication `json:"publications"`
	Reviews      []ReviewHit   `json:"reviews"`
}
