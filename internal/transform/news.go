package transform

import (
	"github.com/guttosm/idxboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// News normalizes stored news documents of one variant, keeping their order.
//
//	iqplus:   judul → Title, ringkasan → Summary, isi → Body, tanggal → Date
//	headline: title → Title, summary → Summary, content → Body, date → Date, ticker → Ticker
func News(variant models.NewsVariant, docs []bson.M) models.NewsFeed {
	items := make([]models.NewsItem, 0, len(docs))
	for _, d := range docs {
		if variant == models.NewsHeadline {
			items = append(items, models.NewsItem{
				Title:   String(d, "", "title"),
				Summary: String(d, "", "summary"),
				Body:    String(d, "", "content"),
				Date:    String(d, "", "date"),
				Ticker:  String(d, "", "ticker"),
			})
			continue
		}
		items = append(items, models.NewsItem{
			Title:   String(d, "", "judul"),
			Summary: String(d, "", "ringkasan"),
			Body:    String(d, "", "isi"),
			Date:    String(d, "", "tanggal"),
		})
	}
	return models.NewsFeed{Variant: variant, Items: items}
}
