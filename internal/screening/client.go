package screening

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/riskzero/supplier-registry/internal/config"
	"github.com/riskzero/supplier-registry/internal/domain"
)

// Provider performs watch-list lookups against the external screening API.
type Provider interface {
	Search(ctx context.Context, entityName string, extra url.Values) (*domain.ScreeningReport, error)
}

// Client is the HTTP implementation of Provider. The provider is a black
// box reached with a free-text entity-name query parameter; transient
// failures are retried with exponential backoff up to a configured limit.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
	logger     *zap.Logger
}

// NewClient builds a provider client from screening configuration.
func NewClient(cfg config.ScreeningConfig, logger *zap.Logger) *Client {
	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout()},
		maxRetries: uint64(maxRetries),
		logger:     logger,
	}
}

// Search queries the provider for hits matching the entity name plus any
// caller-supplied filter parameters.
func (c *Client) Search(ctx context.Context, entityName string, extra url.Values) (*domain.ScreeningReport, error) {
	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse screening url: %w", err)
	}

	params := url.Values{}
	for key, values := range extra {
		for _, v := range values {
			params.Add(key, v)
		}
	}
	params.Set("entityName", entityName)
	reqURL.RawQuery = params.Encode()

	var report *domain.ScreeningReport
	operation := func() error {
		var opErr error
		report, opErr = c.doRequest(ctx, reqURL.String())
		return opErr
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}
	return report, nil
}

func (c *Client) doRequest(ctx context.Context, requestURL string) (*domain.ScreeningReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("screening request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		c.logger.Warn("screening provider error",
			zap.Int("status", resp.StatusCode),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, fmt.Errorf("screening provider returned %d", resp.StatusCode)
	case resp.StatusCode >= 400:
		return nil, backoff.Permanent(fmt.Errorf("screening provider rejected request with %d", resp.StatusCode))
	}

	var report domain.ScreeningReport
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("decode screening response: %w", err))
	}
	return &report, nil
}
