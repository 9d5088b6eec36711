package category

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

type CategoryRepository interface {
	Create(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error)
	List(ctx context.Context, filter *model.CategoryFilter) ([]model.CategoryEntity, error)
	Get(ctx context.Context, filter *model.CategoryFilter) (*model.CategoryEntity, error)
	Update(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error)
	Delete(ctx context.Context, id string) (*model.CategoryEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

const (
	insertCategoryQuery = `INSERT INTO categories (id, name, image, created_at) VALUES (?, ?, ?, ?)`
	selectCategoryBase  = `SELECT id, name, image, created_at, updated_at FROM categories WHERE true`
	updateCategoryQuery = `UPDATE categories SET name = ?, image = ?, updated_at = ? WHERE id = ?`
	deleteCategoryQuery = `DELETE FROM categories WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	data.CreatedAt = time.Now().UTC().Truncate(time.Second)

	if _, err := s.conn.ExecContext(ctx, insertCategoryQuery, data.ID, data.Name, data.Image, data.CreatedAt); err != nil {
		return nil, sqlstore.WrapError(err)
	}
	return data, nil
}

func buildCategoryQuery(filter *model.CategoryFilter) (string, []any, error) {
	query := selectCategoryBase
	args := make([]any, 0, 2)
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
	return sqlstore.AppendIn(query, args, "id", filter.IDs)
}

func (s *SQL) List(ctx context.Context, filter *model.CategoryFilter) ([]model.CategoryEntity, error) {
	query, args, err := buildCategoryQuery(filter)
	if err != nil {
		return nil, err
	}

	categories := make([]model.CategoryEntity, 0)
	if err := s.conn.SelectContext(ctx, &categories, query+" ORDER BY created_at DESC", args...); err != nil {
		return nil, sqlstore.WrapError(err)
	}
	return categories, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.CategoryFilter) (*model.CategoryEntity, error) {
	query, args, err := buildCategoryQuery(filter)
	if err != nil {
		return nil, err
	}

	var entity model.CategoryEntity
	if err := s.conn.QueryRowxContext(ctx, query+" LIMIT 1", args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error) {
	now := time.Now().UTC().Truncate(time.Second)
	result, err := s.conn.ExecContext(ctx, updateCategoryQuery, data.Name, data.Image, now, data.ID)
	if err != nil {
		return nil, sqlstore.WrapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		existing, err := s.Get(ctx, &model.CategoryFilter{ID: data.ID})
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

func (s *SQL) Delete(ctx context.Context, id string) (*model.CategoryEntity, error) {
	existing, err := s.Get(ctx, &model.CategoryFilter{ID: id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repository.ErrNotFound
	}

	if _, err := s.conn.ExecContext(ctx, deleteCategoryQuery, id); err != nil {
		return nil, sqlstore.WrapError(err)
	}
	return existing, nil
}
