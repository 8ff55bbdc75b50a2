package hotel

import (
	"context"
	"errors"
	"strings"
	"time"
)

var ErrInvalidCustomer = errors.New("name, email, phone and address are required")

type Customer struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	Address   string    `json:"address" db:"address"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (c Customer) Validate() error {
	for _, f := range []string{c.Name, c.Email, c.Phone, c.Address} {
		if strings.TrimSpace(f) == "" {
			return ErrInvalidCustomer
		}
	}
	return nil
}

type CustomerService interface {
	Create(ctx context.Context, customer Customer) error
	List(ctx context.Context) ([]Customer, error)
}
