package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/bazaarly/storefront/internal/domain"
)

const maxAttempts = 3

// Client handles communication with the catalog backend.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new catalog backend client. baseURL must not carry a
// trailing slash (config validation enforces this).
func NewClient(baseURL string) *Client {
	// The backend is the storefront's own; 20 req/s with a small burst keeps
	// a misbehaving caller from hammering it.
	limiter := rate.NewLimiter(rate.Limit(20), 40)

	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:     baseURL,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request logging.
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// productsEnvelope mirrors the backend's response for GET /products/all.
type productsEnvelope struct {
	Success  bool             `json:"success"`
	Products []domain.Product `json:"products"`
}

// categoriesEnvelope mirrors the backend's response for GET /categories/get.
type categoriesEnvelope struct {
	Success    bool              `json:"success"`
	Categories []domain.Category `json:"categories"`
}

// FetchProducts retrieves the full product collection. A response without the
// explicit success flag counts as a failure even on HTTP 200.
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	body, err := c.get(ctx, "/products/all")
	if err != nil {
		return nil, err
	}

	var env productsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode products response: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: products response reported success=false", domain.ErrCatalogUnavailable)
	}

	if c.debug {
		log.Printf("[CATALOG] fetched %d products", len(env.Products))
	}
	return env.Products, nil
}

// FetchCategories retrieves the category taxonomy, handed through unfiltered.
func (c *Client) FetchCategories(ctx context.Context) ([]domain.Category, error) {
	body, err := c.get(ctx, "/categories/get")
	if err != nil {
		return nil, err
	}

	var env categoriesEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode categories response: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: categories response reported success=false", domain.ErrCatalogUnavailable)
	}

	if c.debug {
		log.Printf("[CATALOG] fetched %d categories", len(env.Categories))
	}
	return env.Categories, nil
}

// get executes a GET against the backend with rate limiting and retries for
// transient failures.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	reqURL := c.baseURL + path

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", "storefront-browse/1.0")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if c.debug {
				log.Printf("[CATALOG] request error (attempt %d): %v", attempt, err)
			}
			lastErr = fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			if c.debug {
				log.Printf("[CATALOG] backend error (attempt %d) - status: %d, body: %s", attempt, resp.StatusCode, string(body))
			}
			lastErr = fmt.Errorf("%w: status %d", domain.ErrCatalogUnavailable, resp.StatusCode)
			time.Sleep(exponentialBackoff(attempt))
			continue
		}

		return body, nil
	}

	return nil, lastErr
}

// exponentialBackoff returns the wait before the next retry: 500ms, 1s, 2s.
func exponentialBackoff(attempt int) time.Duration {
	return 500 * time.Millisecond << (attempt - 1)
}
