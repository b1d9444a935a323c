package models

// StockQuote is the per-ticker snapshot derived from a window of price documents.
//
// Fields:
//   - Symbol: ticker code (e.g., "AALI").
//   - Price: last close observed in the window.
//   - Change: last close minus first open.
//   - ChangePercent: Change relative to the first open, in percent; 0 when open is 0.
//   - Volume: summed traded volume.
//   - Timestamp: date of the last document in ISO-8601.
//
// swagger:model StockQuote
type StockQuote struct {
	Symbol        string  `json:"symbol" example:"AALI"`
	Price         float64 `json:"price" example:"6450"`
	Change        float64 `json:"change" example:"-75"`
	ChangePercent float64 `json:"changePercent" example:"-1.15"`
	Volume        int64   `json:"volume" example:"1532000"`
	Timestamp     string  `json:"timestamp" example:"2025-03-31T00:00:00.000Z"`
}

// MarketData is the payload of the stock snapshot and stock chart endpoints.
type MarketData struct {
	Stocks      []StockQuote `json:"stocks"`
	Charts      Chart        `json:"charts"`
	LastUpdated string       `json:"lastUpdated" example:"2025-04-01T08:00:00.000Z"`
}
