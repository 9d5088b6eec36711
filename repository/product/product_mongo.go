package product

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

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &Mongo{col: db.Collection(mongostore.ColProducts)}
}

func productFilter(filter *model.ProductFilter) bson.D {
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
	if filter.Model != "" {
		query = append(query, mongostore.ContainsFold("model", filter.Model))
	}
	if filter.CategoryID != "" {
		query = append(query, bson.E{Key: "category", Value: filter.CategoryID})
	}
	if filter.IDs != nil {
		query = append(query, mongostore.In("_id", filter.IDs))
	}
	return query
}

func (m *Mongo) Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error) {
	if data.ID == "" {
		data.ID = mongostore.NewID()
	}
	if data.Images == nil {
		data.Images = model.StringList{}
	}
	data.CreatedAt = time.Now().UTC()

	if _, err := m.col.InsertOne(ctx, data); err != nil {
		return nil, mongostore.WrapError(err)
	}
	return data, nil
}

func (m *Mongo) List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductEntity, error) {
	return mongostore.FindMany[model.ProductEntity](ctx, m.col, productFilter(filter))
}

func (m *Mongo) Get(ctx context.Context, filter *model.ProductFilter) (*model.ProductEntity, error) {
	return mongostore.FindOne[model.ProductEntity](ctx, m.col, productFilter(filter))
}

func (m *Mongo) Update(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error) {
	if data.Images == nil {
		data.Images = model.StringList{}
	}
	now := time.Now().UTC()
	data.UpdatedAt = &now
	if err := mongostore.ReplaceByID(ctx, m.col, data.ID, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (m *Mongo) Delete(ctx context.Context, id string) (*model.ProductEntity, error) {
	return mongostore.DeleteByID[model.ProductEntity](ctx, m.col, id)
}
