package db

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies the goose migrations in dir. Goose works over database/sql,
// so a short-lived stdlib connection is used instead of the pgx pool.
func Migrate(dsn, dir string) error {
	conn, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	defer conn.Close()

	if err := conn.Ping(); err != nil {
		return fmt.Errorf("ping migration connection: %w", err)
	}

	if err := goose.Up(conn, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}
