package storage

import (
	"context"
	"fmt"

	"github.com/guttosm/idxboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PriceRepository reads aggregated price history.
type PriceRepository interface {
	// Snapshot groups the collection's price documents by ticker (first Open,
	// last Close, summed Volume, last Date). An empty ticker covers all tickers.
	Snapshot(ctx context.Context, collection, ticker string) ([]bson.M, error)
	// ChartBuckets sums Close per date, (year, month) or year bucket, sorted by bucket.
	ChartBuckets(ctx context.Context, collection string, g models.Granularity, ticker string) ([]bson.M, error)
}

type priceRepository struct {
	store CollectionProvider
	// orderField, when set, sorts documents before first/last grouping.
	orderField string
}

// NewPriceRepository builds a PriceRepository over the default database.
//
// First and last are taken in the store's natural order unless orderField is
// set. Natural order is insertion order only as long as documents are never
// moved, so a non-chronological load can skew Open and Close.
func NewPriceRepository(store CollectionProvider, orderField string) PriceRepository {
	return &priceRepository{store: store, orderField: orderField}
}

func (r *priceRepository) Snapshot(ctx context.Context, collection, ticker string) ([]bson.M, error) {
	pipeline := mongo.Pipeline{}
	if ticker != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{{Key: "ticker", Value: ticker}}}})
	}
	if r.orderField != "" {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: r.orderField, Value: 1}}}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$ticker"},
			{Key: "ticker", Value: bson.D{{Key: "$first", Value: "$ticker"}}},
			{Key: "Open", Value: bson.D{{Key: "$first", Value: "$Open"}}},
			{Key: "Close", Value: bson.D{{Key: "$last", Value: "$Close"}}},
			{Key: "Volume", Value: bson.D{{Key: "$sum", Value: "$Volume"}}},
			{Key: "Date", Value: bson.D{{Key: "$last", Value: "$Date"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	)

	return r.aggregate(ctx, collection, pipeline)
}

func (r *priceRepository) ChartBuckets(ctx context.Context, collection string, g models.Granularity, ticker string) ([]bson.M, error) {
	pipeline := mongo.Pipeline{}
	if ticker != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{{Key: "ticker", Value: ticker}}}})
	}
	pipeline = append(pipeline,
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bucketKey(g)},
			{Key: "value", Value: bson.D{{Key: "$sum", Value: "$Close"}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	)

	return r.aggregate(ctx, collection, pipeline)
}

// bucketKey is the $group _id expression for a granularity.
func bucketKey(g models.Granularity) bson.D {
	switch g {
	case models.Monthly:
		return bson.D{{Key: "year", Value: "$Year"}, {Key: "month", Value: "$Month"}}
	case models.Annually:
		return bson.D{{Key: "year", Value: "$Year"}}
	default:
		return bson.D{{Key: "date", Value: "$Date"}}
	}
}

func (r *priceRepository) aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline) ([]bson.M, error) {
	coll, err := r.store.Collection(ctx, "", collection)
	if err != nil {
		return nil, err
	}

	cur, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate %s: %w", collection, err)
	}

	out := []bson.M{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", collection, err)
	}
	return out, nil
}
