// Package sqlstore contains the relational plumbing shared by the SQL
// repositories: schema migrations, error mapping and query helpers. The DDL
// and queries stay within the MySQL/SQLite common subset.
package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/verified-commerce/repository"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const mysqlDuplicateEntry = 1062

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// Migrate applies the embedded migrations. dialect is a goose dialect name
// ("mysql", "sqlite3").
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, "migrations")
}

// WrapError maps driver errors to repository sentinels.
func WrapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return repository.ErrDuplicate
	}
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return repository.ErrDuplicate
	}
	return err
}

// ContainsFold returns a LIKE pattern for a case-insensitive substring match.
// Use it with LikeFold.
func ContainsFold(value string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return "%" + r.Replace(strings.ToLower(value)) + "%"
}

// LikeFold is the clause matching column against a ContainsFold pattern.
func LikeFold(column string) string {
	return " AND LOWER(" + column + ") LIKE ? ESCAPE '!'"
}

// AppendIn adds an IN clause for values; an empty non-nil set matches nothing.
func AppendIn(query string, args []any, column string, values []string) (string, []any, error) {
	if values == nil {
		return query, args, nil
	}
	if len(values) == 0 {
		return query + " AND 1 = 0", args, nil
	}
	clause, inArgs, err := sqlx.In(" AND "+column+" IN (?)", values)
	if err != nil {
		return "", nil, err
	}
	return query + clause, append(args, inArgs...), nil
}
