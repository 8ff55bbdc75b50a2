package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/phbpx/hotel"
)

type CustomerService struct {
	db *sqlx.DB
}

func NewCustomerService(db *sqlx.DB) hotel.CustomerService {
	return &CustomerService{
		db: db,
	}
}

func (cs CustomerService) Create(ctx context.Context, customer hotel.Customer) error {
	query := `
	INSERT INTO customers (
		id, name, email, phone, address, created_at
	) VALUES (
		$1, $2, $3, $4, $5, $6
	)`

	_, err := cs.db.ExecContext(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.Phone,
		customer.Address,
		customer.CreatedAt,
	)
	return err
}

func (cs CustomerService) List(ctx context.Context) ([]hotel.Customer, error) {
	query := `
	SELECT
		id,
		name,
		email,
		phone,
		address,
		created_at
	FROM customers
	ORDER BY created_at`

	customers := []hotel.Customer{}
	if err := cs.db.SelectContext(ctx, &customers, query); err != nil {
		return nil, err
	}
	return customers, nil
}
