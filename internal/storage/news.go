package storage

import (
	"context"
	"fmt"

	"github.com/guttosm/idxboard/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// NewsRepository reads the news collection of one schema variant.
type NewsRepository interface {
	// Latest returns at most limit documents, newest first, projected to the
	// variant's display fields.
	Latest(ctx context.Context, limit int64) ([]bson.M, error)
	Variant() models.NewsVariant
}

type newsRepository struct {
	store      CollectionProvider
	database   string
	collection string
	variant    models.NewsVariant
}

func NewNewsRepository(store CollectionProvider, database, collection string, variant models.NewsVariant) NewsRepository {
	return &newsRepository{store: store, database: database, collection: collection, variant: variant}
}

func (r *newsRepository) Variant() models.NewsVariant { return r.variant }

func (r *newsRepository) Latest(ctx context.Context, limit int64) ([]bson.M, error) {
	coll, err := r.store.Collection(ctx, r.database, r.collection)
	if err != nil {
		return nil, err
	}

	projection := bson.D{{Key: "_id", Value: 0}}
	for _, f := range r.variant.Fields() {
		projection = append(projection, bson.E{Key: f, Value: 1})
	}

	opts := options.Find().
		SetProjection(projection).
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit)

	cur, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find news in %s.%s: %w", r.database, r.collection, err)
	}

	out := []bson.M{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode news: %w", err)
	}
	return out, nil
}
