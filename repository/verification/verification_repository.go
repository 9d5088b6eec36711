package verification

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/verified-commerce/model"
	"github.com/muhammadheryan/verified-commerce/repository/sqlstore"
)

// VerificationRepository is append-only: records are never updated or deleted.
type VerificationRepository interface {
	Create(ctx context.Context, data *model.VerificationEntity) (*model.VerificationEntity, error)
	List(ctx context.Context, filter *model.VerificationFilter) ([]model.VerificationEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewVerificationRepository(conn *sqlx.DB) VerificationRepository {
	return &SQL{conn: conn}
}

const (
	insertVerificationQuery = `INSERT INTO verifications (id, user_id, product_id, phone, image, verified_at, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`
	selectVerificationBase  = `SELECT id, user_id, product_id, phone, image, verified_at, created_at FROM verifications WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.VerificationEntity) (*model.VerificationEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	data.CreatedAt = time.Now().UTC().Truncate(time.Second)
	if data.VerifiedAt.IsZero() {
		data.VerifiedAt = data.CreatedAt
	}

	_, err := s.conn.ExecContext(ctx, insertVerificationQuery,
		data.ID, data.UserID, data.ProductID, data.Phone, data.Image, data.VerifiedAt, data.CreatedAt)
	if err != nil {
		return nil, sqlstore.WrapError(err)
	}
	return data, nil
}

func (s *SQL) List(ctx context.Context, filter *model.VerificationFilter) ([]model.VerificationEntity, error) {
	query := selectVerificationBase
	args := make([]any, 0, 3)
	if filter != nil {
		if filter.UserID != "" {
			query += " AND user_id = ?"
			args = append(args, filter.UserID)
		}
		if filter.ProductID != "" {
			query += " AND product_id = ?"
			args = append(args, filter.ProductID)
		}
		if filter.Phone != "" {
			query += " AND phone = ?"
			args = append(args, filter.Phone)
		}
	}

	verifications := make([]model.VerificationEntity, 0)
	if err := s.conn.SelectContext(ctx, &verifications, query+" ORDER BY created_at DESC", args...); err != nil {
		return nil, sqlstore.WrapError(err)
	}
	return verifications, nil
}
