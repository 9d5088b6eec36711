package category

import (
	"context"
	"time"

	"github.com/muhammadheryan/verified-commerce/model"
	"github.com/muhammadheryan/verified-commerce/repository/mongostore"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type Mongo struct {
	col *mongo.Collection
}

func NewMongoCategoryRepository(db *mongo.Database) CategoryRepository {
	return &Mongo{col: db.Collection(mongostore.ColCategories)}
}

func categoryFilter(filter *model.CategoryFilter) bson.D {
	query := bson.D{}
	if filter == nil {
		return query
	}
	if filter.ID != "" {
		query = append(query, bson.E{Key: "_id", Value: filter.ID})
	}
	if filter.Name != "" {
		query = append(query, mongostore.ContainsFold("name", filter.Name))
	}
	if filter.IDs != nil {
		query = append(query, mongostore.In("_id", filter.IDs))
	}
	return query
}

func (m *Mongo) Create(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error) {
	if data.ID == "" {
		data.ID = mongostore.NewID()
	}
	data.CreatedAt = time.Now().UTC()

	if _, err := m.col.InsertOne(ctx, data); err != nil {
		return nil, mongostore.WrapError(err)
	}
	return data, nil
}

func (m *Mongo) List(ctx context.Context, filter *model.CategoryFilter) ([]model.CategoryEntity, error) {
	return mongostore.FindMany[model.CategoryEntity](ctx, m.col, categoryFilter(filter))
}

func (m *Mongo) Get(ctx context.Context, filter *model.CategoryFilter) (*model.CategoryEntity, error) {
	return mongostore.FindOne[model.CategoryEntity](ctx, m.col, categoryFilter(filter))
}

func (m *Mongo) Update(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error) {
	now := time.Now().UTC()
	data.UpdatedAt = &now
	if err := mongostore.ReplaceByID(ctx, m.col, data.ID, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (m *Mongo) Delete(ctx context.Context, id string) (*model.CategoryEntity, error) {
	return mongostore.DeleteByID[model.CategoryEntity](ctx, m.col, id)
}
