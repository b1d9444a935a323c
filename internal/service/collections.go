package service

import "github.com/guttosm/idxboard/internal/domain/models"

// DefaultPeriodKey is used when the request names no period or an unknown one.
const DefaultPeriodKey = "2025-q1"

var chartCollections = map[models.Granularity]string{
	models.Daily:    "yfinance_d",
	models.Monthly:  "yfinance_m",
	models.Annually: "yfinance_y",
}

var financialCollections = map[string]string{
	"2021":    "idx_2021",
	"2022":    "idx_2022",
	"2023":    "idx_2023",
	"2024":    "idx_2024",
	"2025-q1": "idx_2025_q1",
}

// ChartCollection returns the price collection for a granularity; unknown
// granularities read the daily collection.
func ChartCollection(g models.Granularity) string {
	if name, ok := chartCollections[g]; ok {
		return name
	}
	return chartCollections[models.Daily]
}

// FinancialCollection returns the statement collection for a period key;
// unknown keys read the 2025-q1 collection.
func FinancialCollection(periodKey string) string {
	if name, ok := financialCollections[periodKey]; ok {
		return name
	}
	return financialCollections[DefaultPeriodKey]
}
