package skillstacker

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the default SkillStacker API endpoint.
	DefaultBaseURL = "http://localhost:8000/api/v1"
	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 10 * time.Second
)

// TokenSource supplies the bearer token attached to outgoing requests.
// Invalidate is called when the backend answers 401; implementations must
// discard any persisted token so the next request goes out anonymous.
// session.Store satisfies this interface.
type TokenSource interface {
	Token() string
	Invalidate()
}

// Client is the SkillStacker API client.
//
// Use NewClient to create a client:
//
//	client := skillstacker.NewClient()
//	films, err := client.Films.List(ctx, &skillstacker.FilmFilters{Rating: "PG"})
type Client struct {
	baseURL       string
	userAgent     string
	httpClient    *http.Client
	tokens        TokenSource
	onAuthExpired func()

	// Services
	Auth       *AuthService
	Films      *FilmsService
	Actors     *ActorsService
	Categories *CategoriesService
	Products   *ProductsService
	Reviews    *ReviewsService
	Orders     *OrdersService
	Unified    *UnifiedService
}

// Option configures the client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL.
//
// Example:
//
//	client := skillstacker.NewClient(skillstacker.WithBaseURL("https://api.example.com/api/v1"))
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithSession binds a token source. Its token is attached to every
// outgoing request and it is invalidated when the backend answers 401.
func WithSession(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithAuthExpiredHandler registers a callback invoked after a 401 clears
// the session. The web frontend navigated to the login page here; the CLI
// prints a re-login hint.
func WithAuthExpiredHandler(fn func()) Option {
	return func(c *Client) {
		c.onAuthExpired = fn
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new SkillStacker API client.
//
// Example:
//
//	store, _ := session.NewStore(session.DefaultPath())
//	client := skillstacker.NewClient(
//	    skillstacker.WithBaseURL(cfg.APIURL),
//	    skillstacker.WithSession(store),
//	)
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: sdkUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Initialize services
	c.Auth = &AuthService{client: c}
	c.Films = &FilmsService{client: c}
	c.Actors = &ActorsService{client: c}
	c.Categories = &CategoriesService{client: c}
	c.Products = &ProductsService{client: c}
	c.Reviews = &ReviewsService{client: c}
	c.Orders = &OrdersService{client: c}
	c.Unified = &UnifiedService{client: c}

	return c
}

// BaseURL returns the current base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
