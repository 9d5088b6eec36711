// Package mongostore contains the MongoDB plumbing shared by the document
// repositories: collection names, indexes and generic find helpers.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/muhammadheryan/verified-commerce/repository"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	ColUsers         = "users"
	ColCategories    = "categories"
	ColProducts      = "products"
	ColVerifications = "verifications"
)

// NewID returns a fresh ObjectID in its hex form; documents use string ids.
func NewID() string {
	return bson.NewObjectID().Hex()
}

// WrapError maps driver errors to repository sentinels.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}

// FindOne decodes the first match. A missing document is (nil, nil).
func FindOne[T any](ctx context.Context, col *mongo.Collection, filter bson.D) (*T, error) {
	var result T
	err := col.FindOne(ctx, filter).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, WrapError(err)
	}
	return &result, nil
}

// FindMany decodes every match, newest first.
func FindMany[T any](ctx context.Context, col *mongo.Collection, filter bson.D) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, WrapError(err)
	}
	defer cursor.Close(ctx)

	results := make([]T, 0)
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// ReplaceByID overwrites the document with the given id.
func ReplaceByID(ctx context.Context, col *mongo.Collection, id string, doc interface{}) error {
	res, err := col.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, doc)
	if err != nil {
		return WrapError(err)
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteByID removes the document and returns it as it was.
func DeleteByID[T any](ctx context.Context, col *mongo.Collection, id string) (*T, error) {
	var deleted T
	if err := col.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&deleted); err != nil {
		return nil, WrapError(err)
	}
	return &deleted, nil
}

// ContainsFold matches field values containing value, ignoring case.
func ContainsFold(field, value string) bson.E {
	return bson.E{Key: field, Value: bson.D{
		{Key: "$regex", Value: regexp.QuoteMeta(value)},
		{Key: "$options", Value: "i"},
	}}
}

// In matches field values that are members of values.
func In(field string, values []string) bson.E {
	if values == nil {
		values = []string{}
	}
	return bson.E{Key: field, Value: bson.D{{Key: "$in", Value: values}}}
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	type idx struct {
		col    string
		keys   bson.D
		unique bool
	}

	indexes := []idx{
		{ColUsers, bson.D{{Key: "email", Value: 1}}, true},
		{ColUsers, bson.D{{Key: "role", Value: 1}}, false},
		{ColCategories, bson.D{{Key: "name", Value: 1}}, true},
		{ColProducts, bson.D{{Key: "category", Value: 1}}, false},
		{ColProducts, bson.D{{Key: "created_at", Value: -1}}, false},
		{ColVerifications, bson.D{{Key: "user_id", Value: 1}}, false},
		{ColVerifications, bson.D{{Key: "product_id", Value: 1}}, false},
	}

	for _, i := range indexes {
		model := mongo.IndexModel{Keys: i.keys}
		if i.unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, err := db.Collection(i.col).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create index on %s: %w", i.col, err)
		}
	}
	return nil
}
