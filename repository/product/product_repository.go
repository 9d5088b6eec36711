package product

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/verified-commerce/model"
	"github.com/muhammadheryan/verified-commerce/repository"
	"github.com/muhammadheryan/verified-commerce/repository/sqlstore"
)

type ProductRepository interface {
	Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error)
	List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductEntity, error)
	Get(ctx context.Context, filter *model.ProductFilter) (*model.ProductEntity, error)
	Update(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error)
	Delete(ctx context.Context, id string) (*model.ProductEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	insertProductQuery = `INSERT INTO products (id, name, description, price, model, image_cover, images, stock, category_id, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	selectProductBase = `SELECT id, name, description, price, model, image_cover, images, stock, category_id, created_at, updated_at
FROM products WHERE true`

	updateProductQuery = `UPDATE products SET name = ?, description = ?, price = ?, model = ?, image_cover = ?, images = ?, stock = ?, category_id = ?, updated_at = ?
WHERE id = ?`

	deleteProductQuery = `DELETE FROM products WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	if data.Images == nil {
		data.Images = model.StringList{}
	}
	data.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.conn.ExecContext(ctx, insertProductQuery,
		data.ID, data.Name, data.Description, data.Price, data.Model, data.ImageCover, data.Images, data.Stock, data.CategoryID, data.CreatedAt)
	if err != nil {
		return nil, sqlstore.WrapError(err)
	}
	return data, nil
}

func buildProductQuery(filter *model.ProductFilter) (string, []any, error) {
	query := selectProductBase
	args := make([]any, 0, 4)
	if filter == nil {
		return query, args, nil
	}

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Name != "" {
		query += sqlstore.LikeFold("name")
		args = append(args, sqlstore.ContainsFold(filter.Name))
	}
	if filter.Model != "" {
		query += sqlstore.LikeFold("model")
		args = append(args, sqlstore.ContainsFold(filter.Model))
	}
	if filter.CategoryID != "" {
		query += " AND category_id = ?"
		args = append(args, filter.CategoryID)
	}
	return sqlstore.AppendIn(query, args, "id", filter.IDs)
}

func (s *SQL) List(ctx context.Context, filter *model.ProductFilter) ([]model.ProductEntity, error) {
	query, args, err := buildProductQuery(filter)
	if err != nil {
		return nil, err
	}

	products := make([]model.ProductEntity, 0)
	if err := s.conn.SelectContext(ctx, &products, query+" ORDER BY created_at DESC", args...); err != nil {
		return nil, sqlstore.WrapError(err)
	}
	return products, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.ProductFilter) (*model.ProductEntity, error) {
	query, args, err := buildProductQuery(filter)
	if err != nil {
		return nil, err
	}

	var entity model.ProductEntity
	if err := s.conn.QueryRowxContext(ctx, query+" LIMIT 1", args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error) {
	if data.Images == nil {
		data.Images = model.StringList{}
	}
	now := time.Now().UTC().Truncate(time.Second)
	result, err := s.conn.ExecContext(ctx, updateProductQuery,
		data.Name, data.Description, data.Price, data.Model, data.ImageCover, data.Images, data.Stock, data.CategoryID, now, data.ID)
	if err != nil {
		return nil, sqlstore.WrapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		existing, err := s.Get(ctx, &model.ProductFilter{ID: data.ID})
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, repository.ErrNotFound
		}
	}

	data.UpdatedAt = &now
	return data, nil
}

func (s *SQL) Delete(ctx context.Context, id string) (*model.ProductEntity, error) {
	existing, err := s.Get(ctx, &model.ProductFilter{ID: id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repository.ErrNotFound
	}

	if _, err := s.conn.ExecContext(ctx, deleteProductQuery, id); err != nil {
		return nil, sqlstore.WrapError(err)
	}
	return existing, nil
}
