package verification

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

func NewMongoVerificationRepository(db *mongo.Database) VerificationRepository {
	return &Mongo{col: db.Collection(mongostore.ColVerifications)}
}

func verificationFilter(filter *model.VerificationFilter) bson.D {
	query := bson.D{}
	if filter == nil {
		return query
	}
	if filter.UserID != "" {
		query = append(query, bson.E{Key: "user_id", Value: filter.UserID})
	}
	if filter.ProductID != "" {
		query = append(query, bson.E{Key: "product_id", Value: filter.ProductID})
	}
	if filter.Phone != "" {
		query = append(query, bson.E{Key: "phone", Value: filter.Phone})
	}
	return query
}

func (m *Mongo) Create(ctx context.Context, data *model.VerificationEntity) (*model.VerificationEntity, error) {
	if data.ID == "" {
		data.ID = mongostore.NewID()
	}
	data.CreatedAt = time.Now().UTC()
	if data.VerifiedAt.IsZero() {
		data.VerifiedAt = data.CreatedAt
	}

	if _, err := m.col.InsertOne(ctx, data); err != nil {
		return nil, mongostore.WrapError(err)
	}
	return data, nil
}

func (m *Mongo) List(ctx context.Context, filter *model.VerificationFilter) ([]model.VerificationEntity, error) {
	return mongostore.FindMany[model.VerificationEntity](ctx, m.col, verificationFilter(filter))
}
