package postgres

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/httpfs"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/phbpx/hotel"
	"github.com/phbpx/hotel/pkg/database"
)

//go:embed migrations
var migrations embed.FS

// lib/pq errorCodeNames
// https://github.com/lib/pq/blob/master/error.go#L178
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

func pqCode(err error) string {
	var pqerr *pq.Error
	if errors.As(err, &pqerr) {
		return string(pqerr.Code)
	}
	return ""
}

// Migrate attempts to bring the schema for db up to date with the migrations
// defined in this package.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if err := database.StatusCheck(ctx, db); err != nil {
		return fmt.Errorf("db status check: %w", err)
	}

	source, err := httpfs.New(http.FS(migrations), "migrations")
	if err != nil {
		return fmt.Errorf("invalid source instance: %w", err)
	}

	target, err := postgres.WithInstance(db.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("invalid target postgres instance, %w", err)
	}

	m, err := migrate.NewWithInstance("httpfs", source, "postgres", target)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil {
		if err != migrate.ErrNoChange {
			return err
		}
	}
	return nil
}

// SeedAdmin makes sure an admin account named username exists. The
// password hash is only used when the account is created; an existing
// account is left untouched. It reports whether a row was inserted.
func SeedAdmin(ctx context.Context, db *sqlx.DB, username, passwordHash string) (bool, error) {
	const q = `
	INSERT INTO users (
		id, username, password_hash, role
	) VALUES (
		$1, $2, $3, $4
	)
	ON CONFLICT (username) DO NOTHING`

	res, err := db.ExecContext(ctx, q, uuid.NewString(), username, passwordHash, hotel.RoleAdmin)
	if err != nil {
		return false, fmt.Errorf("seeding admin: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
