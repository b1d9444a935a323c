package service

import (
	"context"
	"fmt"

	"github.com/guttosm/idxboard/internal/domain/models"
	"github.com/guttosm/idxboard/internal/transform"
)

// FinancialSummary returns ticker's statement for periodKey. Empty arguments
// fall back to DefaultPeriodKey and the configured default stock. A missing
// statement yields nil, nil.
func (s *dashboardService) FinancialSummary(ctx context.Context, periodKey, ticker string) (*models.FinancialSummary, error) {
	if periodKey == "" {
		periodKey = DefaultPeriodKey
	}
	if ticker == "" {
		ticker = s.opts.DefaultStock
	}
	collection := FinancialCollection(periodKey)

	doc, err := s.financials.FindByIssuer(ctx, collection, ticker)
	if err != nil {
		return nil, fmt.Errorf("financial summary %s/%s: %w", periodKey, ticker, err)
	}
	if doc == nil {
		return nil, nil
	}

	summary := transform.Summary(doc)
	return &summary, nil
}
