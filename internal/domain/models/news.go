package models

// NewsVariant names the schema the news documents of a deployment are stored in.
type NewsVariant string

const (
	// NewsIQPlus documents carry judul, ringkasan, isi and tanggal.
	NewsIQPlus NewsVariant = "iqplus"
	// NewsHeadline documents carry ticker, title, summary, content and date.
	NewsHeadline NewsVariant = "headline"
)

// NewsItem is a news document normalized from either variant.
// Ticker is only populated for the headline variant.
type NewsItem struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Body    string `json:"body"`
	Date    string `json:"date"`
	Ticker  string `json:"ticker,omitempty"`
}

// NewsFeed is the newest-first list of news items, tagged with the variant
// they were read from.
//
// swagger:model NewsFeed
type NewsFeed struct {
	Variant NewsVariant `json:"variant" example:"iqplus"`
	Items   []NewsItem  `json:"items"`
}

// Fields lists the stored document fields a variant displays, in display order.
func (v NewsVariant) Fields() []string {
	if v == NewsHeadline {
		return []string{"ticker", "title", "summary", "content", "date"}
	}
	return []string{"judul", "ringkasan", "isi", "tanggal"}
}
