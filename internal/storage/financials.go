package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FinancialRepository reads per-period financial statements.
type FinancialRepository interface {
	// FindByIssuer returns the statement of emitten in collection, or nil, nil
	// when there is none.
	FindByIssuer(ctx context.Context, collection, emitten string) (bson.M, error)
}

type financialRepository struct {
	store CollectionProvider
}

func NewFinancialRepository(store CollectionProvider) FinancialRepository {
	return &financialRepository{store: store}
}

func (r *financialRepository) FindByIssuer(ctx context.Context, collection, emitten string) (bson.M, error) {
	coll, err := r.store.Collection(ctx, "", collection)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	err = coll.FindOne(ctx, bson.D{{Key: "emitten", Value: emitten}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find %s in %s: %w", emitten, collection, err)
	}
	return doc, nil
}
