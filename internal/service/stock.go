package service

import (
	"context"
	"fmt"

	"github.com/guttosm/idxboard/internal/domain/models"
	"github.com/guttosm/idxboard/internal/transform"
)

// StockSnapshot returns one quote per ticker found in the price-history collection.
func (s *dashboardService) StockSnapshot(ctx context.Context) (*models.MarketData, error) {
	groups, err := s.prices.Snapshot(ctx, s.opts.PriceCollection, "")
	if err != nil {
		return nil, fmt.Errorf("stock snapshot: %w", err)
	}

	now := s.now()
	return &models.MarketData{
		Stocks:      transform.Quotes(groups, now),
		Charts:      models.EmptyChart(),
		LastUpdated: transform.ISO(now),
	}, nil
}

// StockChart returns the close-price series of ticker at granularity g, along
// with the ticker's snapshot over the same collection. An empty ticker spans
// every ticker in the collection.
func (s *dashboardService) StockChart(ctx context.Context, g models.Granularity, ticker string) (*models.MarketData, error) {
	collection := ChartCollection(g)

	buckets, err := s.prices.ChartBuckets(ctx, collection, g, ticker)
	if err != nil {
		return nil, fmt.Errorf("stock chart %s: %w", g, err)
	}
	groups, err := s.prices.Snapshot(ctx, collection, ticker)
	if err != nil {
		return nil, fmt.Errorf("stock chart snapshot %s: %w", g, err)
	}

	now := s.now()
	return &models.MarketData{
		Stocks:      transform.Quotes(groups, now),
		Charts:      transform.Chart(g, buckets),
		LastUpdated: transform.ISO(now),
	}, nil
}
