package service

import (
	"context"
	"time"

	"github.com/guttosm/idxboard/internal/domain/models"
	"github.com/guttosm/idxboard/internal/storage"
)

// NewsLimit caps the news feed.
const NewsLimit = 20

// DashboardService resolves each dashboard request into collection queries
// and shapes the results.
//
// Empty listings are valid answers. FinancialSummary reports a missing
// statement as a nil summary with a nil error.
type DashboardService interface {
	StockSnapshot(ctx context.Context) (*models.MarketData, error)
	StockChart(ctx context.Context, g models.Granularity, ticker string) (*models.MarketData, error)
	FinancialSummary(ctx context.Context, periodKey, ticker string) (*models.FinancialSummary, error)
	News(ctx context.Context) (*models.NewsFeed, error)
}

// Options carries the deployment-specific collection names and defaults.
type Options struct {
	PriceCollection string
	DefaultStock    string
}

type dashboardService struct {
	prices     storage.PriceRepository
	financials storage.FinancialRepository
	news       storage.NewsRepository
	opts       Options
	now        func() time.Time
}

func NewDashboardService(prices storage.PriceRepository, financials storage.FinancialRepository, news storage.NewsRepository, opts Options) DashboardService {
	return &dashboardService{
		prices:     prices,
		financials: financials,
		news:       news,
		opts:       opts,
		now:        time.Now,
	}
}
