// Package migrations holds the database schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var Migrations embed.FS

// gooseUpContext and gooseDownContext are seams for tests.
var (
	gooseUpContext   = goose.UpContext
	gooseDownContext = goose.DownContext
)

func setup() error {
	goose.SetBaseFS(Migrations)
	return goose.SetDialect("pgx")
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// Down rolls back the latest migration.
func Down(ctx context.Context, db *sql.DB) error {
	if err := setup(); err != nil {
		return err
	}
	return gooseDownContext(ctx, db, ".")
}
