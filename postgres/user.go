package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/phbpx/hotel"
)

type UserService struct {
	db *sqlx.DB
}

func NewUserService(db *sqlx.DB) hotel.UserService {
	return &UserService{
		db: db,
	}
}

func (us UserService) Create(ctx context.Context, user hotel.User) error {
	query := `
	INSERT INTO users (
		id, username, password_hash, role
	) VALUES (
		$1, $2, $3, $4
	)`

	_, err := us.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Role,
	)
	if err != nil {
		if pqCode(err) == uniqueViolation {
			return hotel.ErrDuplicatedUsername
		}
		return err
	}

	return nil
}

func (us UserService) GetByUsername(ctx context.Context, username string) (hotel.User, error) {
	query := `
	SELECT
		id,
		username,
		password_hash,
		role
	FROM users
	WHERE username = $1`

	var user hotel.User
	if err := us.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, hotel.ErrUserNotFound
		}
		return user, err
	}

	return user, nil
}
