package transform

import (
	"math"
	"time"

	"github.com/guttosm/idxboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Quote shapes one ticker group (first Open, last Close, summed Volume, last Date)
// into a StockQuote. Missing numbers count as 0; a missing Date falls back to now.
//
// Group document → StockQuote:
//
//	ticker (or _id) → Symbol
//	Close           → Price
//	Close − Open    → Change
//	Change / Open   → ChangePercent (×100, 0 when Open is 0)
//	Volume          → Volume (rounded)
//	Date            → Timestamp (ISO-8601)
func Quote(doc bson.M, now time.Time) models.StockQuote {
	open := Float(doc, "Open", "open")
	closing := Float(doc, "Close", "close")
	change := closing - open

	q := models.StockQuote{
		Symbol:        String(doc, "", "ticker", "_id"),
		Price:         closing,
		Change:        change,
		ChangePercent: changePercent(change, open),
		Volume:        int64(math.Round(Float(doc, "Volume", "volume"))),
		Timestamp:     ISO(now),
	}

	if v, ok := lookup(doc, "Date", "date"); ok {
		if ts, ok := text(v); ok && ts != "" {
			q.Timestamp = ts
		}
	}
	return q
}

// Quotes shapes every group document, preserving order. It never returns nil.
func Quotes(docs []bson.M, now time.Time) []models.StockQuote {
	out := make([]models.StockQuote, 0, len(docs))
	for _, d := range docs {
		out = append(out, Quote(d, now))
	}
	return out
}

func changePercent(change, open float64) float64 {
	if open == 0 {
		return 0
	}
	p := change / open * 100
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return 0
	}
	return p
}
