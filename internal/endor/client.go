// Package endor is a minimal client for the Endor Labs QUERY API: token
// acquisition plus a paginated dependency-usage query that joins
// DependencyMetadata records to their importing Projects server-side.
package endor

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"
)

// Client issues authenticated requests against one API base URL. It holds
// no state beyond the bearer token and is safe to reuse across searches.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	token      string
	logger     *slog.Logger
}

// NewClient creates a client for the given base URL. The timeout applies
// per request; there is no cancellation once a call is in flight.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		timeout:    timeout,
		logger:     logger,
	}
}

// timeoutHeader is the server-side request deadline, in whole seconds.
func (c *Client) timeoutHeader() string {
	return strconv.Itoa(int(c.timeout / time.Second))
}
