// Package client is a Go consumer of the dashboard API. Listing calls degrade
// to empty results on any failure so a dashboard can always render.
package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/guttosm/idxboard/internal/domain/models"
	"github.com/guttosm/idxboard/internal/logger"
	"github.com/guttosm/idxboard/internal/transform"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout is applied to every request unless overridden.
const DefaultTimeout = 10 * time.Second

// envelope mirrors the server response body.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// APIError is returned when the server answers with a failure envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Client calls the dashboard endpoints of one server.
type Client struct {
	http *resty.Client
	now  func() time.Time
}

// New returns a Client for baseURL (e.g., "http://localhost:8080").
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{http: c, now: time.Now}
}

// get performs a GET and decodes a successful envelope's data into T.
func get[T any](ctx context.Context, c *Client, path string, params map[string]string) (T, error) {
	var ok envelope[T]
	var fail envelope[struct{}]

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetResult(&ok).
		SetError(&fail).
		Get(path)
	if err != nil {
		return ok.Data, fmt.Errorf("GET %s: %w", path, err)
	}
	if resp.IsError() {
		return ok.Data, &APIError{Status: resp.StatusCode(), Message: fail.Message}
	}
	if !ok.Success {
		msg := ok.Message
		if msg == "" {
			msg = "API returned unsuccessful response"
		}
		return ok.Data, &APIError{Status: resp.StatusCode(), Message: msg}
	}
	return ok.Data, nil
}

// FetchData returns the snapshot of every ticker. Any failure yields an empty
// snapshot stamped with the current time.
func (c *Client) FetchData(ctx context.Context) models.MarketData {
	data, err := get[models.MarketData](ctx, c, "/api/stock-data", nil)
	if err != nil {
		logger.For("client").Warn().Err(err).Msg("stock data unavailable, using empty snapshot")
		return models.MarketData{
			Stocks:      []models.StockQuote{},
			Charts:      models.EmptyChart(),
			LastUpdated: transform.ISO(c.now()),
		}
	}
	return data
}

// FetchChart returns the close-price chart of stock. Any failure yields an empty chart.
func (c *Client) FetchChart(ctx context.Context, g models.Granularity, stock string) models.Chart {
	data, err := get[models.MarketData](ctx, c, "/api/stock-chart", map[string]string{
		"period": string(g),
		"stock":  stock,
	})
	if err != nil {
		logger.For("client").Warn().Err(err).Str("stock", stock).Msg("chart unavailable, using empty chart")
		return models.EmptyChart()
	}
	return data.Charts
}

// FetchNews returns the latest news items. Any failure yields an empty list.
func (c *Client) FetchNews(ctx context.Context) []models.NewsItem {
	feed, err := get[models.NewsFeed](ctx, c, "/api/news", nil)
	if err != nil || feed.Items == nil {
		if err != nil {
			logger.For("client").Warn().Err(err).Msg("news unavailable, using empty list")
		}
		return []models.NewsItem{}
	}
	return feed.Items
}

// FetchSummary returns the financial statement of stock for the period key
// (e.g., "2024" or "2025-q1"). A missing statement is reported as nil, nil.
func (c *Client) FetchSummary(ctx context.Context, year, stock string) (*models.FinancialSummary, error) {
	summary, err := get[models.FinancialSummary](ctx, c, "/api/financial-summary", map[string]string{
		"year":  year,
		"stock": stock,
	})
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Dashboard is everything one dashboard screen shows.
type Dashboard struct {
	Market  models.MarketData        `json:"market"`
	Chart   models.Chart             `json:"chart"`
	Summary *models.FinancialSummary `json:"summary"`
	News    []models.NewsItem        `json:"news"`
}

// LoadDashboard fetches the four dashboard sections concurrently. Only a
// failed financial summary fails the whole load; the listings fall back to
// empty values.
func (c *Client) LoadDashboard(ctx context.Context, g models.Granularity, stock, year string) (*Dashboard, error) {
	var d Dashboard
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		d.Market = c.FetchData(ctx)
		return nil
	})
	eg.Go(func() error {
		d.Chart = c.FetchChart(ctx, g, stock)
		return nil
	})
	eg.Go(func() error {
		d.News = c.FetchNews(ctx)
		return nil
	})
	eg.Go(func() error {
		s, err := c.FetchSummary(ctx, year, stock)
		if err != nil {
			return fmt.Errorf("financial summary: %w", err)
		}
		d.Summary = s
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
