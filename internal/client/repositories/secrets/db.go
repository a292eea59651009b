package secrets

import (
	"context"
	"database/sql"

	"github.com/duckycart/companion/internal/client/migrations"
	"github.com/pressly/goose/v3"
)

// OpenDatabase opens the local vault database and brings its schema up to
// date with the embedded goose migrations.
func OpenDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
