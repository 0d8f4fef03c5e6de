package scrape

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"
)

// maxBodyBytes caps how much of a response body is read. Legislature index
// pages and statute PDFs are well under this.
const maxBodyBytes = 50 * 1024 * 1024

// Client fetches pages and files from the legislature site with retries,
// a page cache, and a consistent User-Agent.
type Client struct {
	httpClient *http.Client
	config     Config
	cache      *PageCache
	logger     hclog.Logger
}

// NewClient creates a Client for the given configuration. A nil logger is
// replaced with a no-op logger.
func NewClient(config Config, logger hclog.Logger) *Client {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Client{
		httpClient: &http.Client{Timeout: config.RequestTimeout},
		config:     config,
		cache:      NewPageCache(config.PageCacheTTL),
		logger:     logger,
	}
}

// FetchPage retrieves a page body, consulting the page cache first.
// Transient failures are retried up to MaxRetries times with RetryDelay
// between attempts.
func (client *Client) FetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	if body, found := client.cache.Get(pageURL); found {
		client.logger.Debug("page cache hit", "url", pageURL)
		return body, nil
	}

	body, err := client.fetchWithRetries(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	client.cache.Set(pageURL, body)
	return body, nil
}

// Fetch retrieves a URL without caching. Used for PDF downloads.
func (client *Client) Fetch(ctx context.Context, fileURL string) ([]byte, error) {
	return client.fetchWithRetries(ctx, fileURL)
}

func (client *Client) fetchWithRetries(ctx context.Context, targetURL string) ([]byte, error) {
	maxRetries := client.config.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(client.config.RetryDelay):
			}
		}

		client.logger.Debug("fetching", "url", targetURL, "attempt", attempt, "max_attempts", maxRetries)

		body, err := client.fetchOnce(ctx, targetURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		client.logger.Warn("fetch attempt failed", "url", targetURL, "attempt", attempt, "error", err)
	}

	return nil, fmt.Errorf("failed to fetch %s after %d attempts: %w", targetURL, maxRetries, lastErr)
}

func (client *Client) fetchOnce(ctx context.Context, targetURL string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", targetURL, err)
	}
	request.Header.Set("User-Agent", client.config.UserAgent)

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode >= 400 {
		return nil, fmt.Errorf("unexpected status %d for %s", response.StatusCode, targetURL)
	}

	body, err := io.ReadAll(io.LimitReader(response.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", targetURL, err)
	}
	return body, nil
}
