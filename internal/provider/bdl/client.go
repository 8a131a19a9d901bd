// Package bdl provides the BallDontLie NBA client used to ingest per-game
// player stat lines.
//
// BDL uses cursor-based pagination and Authorization header auth.
// Rate limiting is handled via a token bucket limiter, and repeated upstream
// failures open a circuit breaker so a long ingest run fails fast.
package bdl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// Client is the shared HTTP client for all BDL endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	logger     *slog.Logger
}

// NewClient creates a BDL HTTP client with rate limiting.
func NewClient(baseURL, apiKey string, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        "balldontlie",
			MaxRequests: 1,
			Timeout:     time.Minute,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			// Client errors are the caller's fault, not upstream health.
			IsSuccessful: func(err error) bool {
				var se *statusError
				return err == nil || (errors.As(err, &se) && se.code < 500 && se.code != http.StatusTooManyRequests)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("BDL circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
			},
		}),
		logger: logger,
	}
}

// paginatedResponse is the common BDL response wrapper.
type paginatedResponse struct {
	Data json.RawMessage `json:"data"`
	Meta struct {
		NextCursor *int `json:"next_cursor"`
	} `json:"meta"`
}

type statusError struct {
	path string
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("BDL %s returned %d: %s", e.path, e.code, e.body)
}

// get performs a rate-limited GET request to a BDL endpoint.
func (c *Client) get(ctx context.Context, path string, params url.Values) (*paginatedResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	body, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(ctx, path, params)
	})
	if err != nil {
		return nil, err
	}

	var result paginatedResponse
	if err := json.Unmarshal(body.([]byte), &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &result, nil
}

func (c *Client) do(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{path: path, code: resp.StatusCode, body: truncate(body, 200)}
	}
	return body, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
