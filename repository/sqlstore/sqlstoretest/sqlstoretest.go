// Package sqlstoretest opens a migrated in-memory SQLite database for
// repository tests.
package sqlstoretest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/verified-commerce/repository/sqlstore"

	_ "modernc.org/sqlite"
)

func NewDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// a second connection would see a different in-memory database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := sqlstore.Migrate(context.Background(), db, "sqlite3"); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return sqlx.NewDb(db, "sqlite3")
}
