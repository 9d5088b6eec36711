package user

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

func NewMongoUserRepository(db *mongo.Database) UserRepository {
	return &Mongo{col: db.Collection(mongostore.ColUsers)}
}

func userFilter(filter *model.UserFilter) bson.D {
	query := bson.D{}
	if filter == nil {
		return query
	}
	if filter.ID != "" {
		query = append(query, bson.E{Key: "_id", Value: filter.ID})
	}
	if filter.Email != "" {
		query = append(query, bson.E{Key: "email", Value: filter.Email})
	}
	if filter.Role != "" {
		query = append(query, bson.E{Key: "role", Value: filter.Role})
	}
	if filter.IDs != nil {
		query = append(query, mongostore.In("_id", filter.IDs))
	}
	return query
}

func (m *Mongo) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	if data.ID == "" {
		data.ID = mongostore.NewID()
	}
	data.CreatedAt = time.Now().UTC()

	if _, err := m.col.InsertOne(ctx, data); err != nil {
		return nil, mongostore.WrapError(err)
	}
	return data, nil
}

func (m *Mongo) List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error) {
	return mongostore.FindMany[model.UserEntity](ctx, m.col, userFilter(filter))
}

func (m *Mongo) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	return mongostore.FindOne[model.UserEntity](ctx, m.col, userFilter(filter))
}

func (m *Mongo) Update(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	now := time.Now().UTC()
	data.UpdatedAt = &now
	if err := mongostore.ReplaceByID(ctx, m.col, data.ID, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (m *Mongo) Delete(ctx context.Context, id string) (*model.UserEntity, error) {
	return mongostore.DeleteByID[model.UserEntity](ctx, m.col, id)
}
