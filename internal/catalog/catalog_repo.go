package catalog

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository is a thin pass-through over the document store; the
// service layers query semantics (filters, sort fallback, paging) on
// top of it.
type Repository interface {
	Find(ctx context.Context, collection string, filter bson.M, sort bson.D, skip, limit int64) ([]bson.M, error)
	Count(ctx context.Context, collection string, filter bson.M) (int64, error)
	SampleOne(ctx context.Context, collection string) (bson.M, error)
}

type mongoRepository struct {
	db *mongo.Database
}

func NewRepository(db *mongo.Database) Repository {
	return &mongoRepository{db: db}
}

func (r *mongoRepository) Find(
	ctx context.Context,
	collection string,
	filter bson.M,
	sort bson.D,
	skip, limit int64,
) ([]bson.M, error) {
	opts := options.Find().SetSort(sort)
	if skip > 0 {
		opts = opts.SetSkip(skip)
	}
	if limit > 0 {
		opts = opts.SetLimit(limit)
	}

	cursor, err := r.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []bson.M
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []bson.M{}
	}
	return results, nil
}

func (r *mongoRepository) Count(ctx context.Context, collection string, filter bson.M) (int64, error) {
	return r.db.Collection(collection).CountDocuments(ctx, filter)
}

// SampleOne fetches an arbitrary document so the service can check
// which fields the collection actually carries. Empty collections
// yield nil without error.
func (r *mongoRepository) SampleOne(ctx context.Context, collection string) (bson.M, error) {
	var doc bson.M
	err := r.db.Collection(collection).FindOne(ctx, bson.M{}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}
