package user

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

type UserRepository interface {
	Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Update(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error)
	Delete(ctx context.Context, id string) (*model.UserEntity, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (id, email, password_hash, first_name, last_name, phone, role, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	selectUserBase  = `SELECT id, email, password_hash, first_name, last_name, phone, role, created_at, updated_at FROM users WHERE true`
	updateUserQuery = `UPDATE users SET email = ?, password_hash = ?, first_name = ?, last_name = ?, phone = ?, role = ?, updated_at = ? WHERE id = ?`
	deleteUserQuery = `DELETE FROM users WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	if data.ID == "" {
		data.ID = uuid.NewString()
	}
	data.CreatedAt = time.Now().UTC().Truncate(time.Second)

	_, err := s.conn.ExecContext(ctx, insertUserQuery,
		data.ID, data.Email, data.PasswordHash, data.FirstName, data.LastName, data.Phone, data.Role, data.CreatedAt)
	if err != nil {
		return nil, sqlstore.WrapError(err)
	}
	return data, nil
}

func buildUserQuery(filter *model.UserFilter) (string, []any, error) {
	query := selectUserBase
	args := make([]any, 0, 4)
	if filter == nil {
		return query, args, nil
	}

	if filter.ID != "" {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.Role != "" {
		query += " AND role = ?"
		args = append(args, filter.Role)
	}
	return sqlstore.AppendIn(query, args, "id", filter.IDs)
}

func (s *SQL) List(ctx context.Context, filter *model.UserFilter) ([]model.UserEntity, error) {
	query, args, err := buildUserQuery(filter)
	if err != nil {
		return nil, err
	}

	users := make([]model.UserEntity, 0)
	if err := s.conn.SelectContext(ctx, &users, query+" ORDER BY created_at DESC", args...); err != nil {
		return nil, sqlstore.WrapError(err)
	}
	return users, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query, args, err := buildUserQuery(filter)
	if err != nil {
		return nil, err
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query+" LIMIT 1", args...).StructScan(&entity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	now := time.Now().UTC().Truncate(time.Second)
	result, err := s.conn.ExecContext(ctx, updateUserQuery,
		data.Email, data.PasswordHash, data.FirstName, data.LastName, data.Phone, data.Role, now, data.ID)
	if err != nil {
		return nil, sqlstore.WrapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		existing, err := s.Get(ctx, &model.UserFilter{ID: data.ID})
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

func (s *SQL) Delete(ctx context.Context, id string) (*model.UserEntity, error) {
	existing, err := s.Get(ctx, &model.UserFilter{ID: id})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, repository.ErrNotFound
	}

	if _, err := s.conn.ExecContext(ctx, deleteUserQuery, id); err != nil {
		return nil, sqlstore.WrapError(err)
	}
	return existing, nil
}
