// Package auth hashes passwords, issues session tokens and carries the
// authenticated caller through a request context.
package auth

import (
	"context"

	"github.com/phbpx/hotel"
)

type ctxKey int

const identityKey ctxKey = 1

// Identity is the authenticated caller of a request.
type Identity struct {
	UserID   string     `json:"user_id"`
	Username string     `json:"username"`
	Role     hotel.Role `json:"role"`
}

func (id Identity) IsAdmin() bool {
	return id.Role == hotel.RoleAdmin
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// FromContext returns the identity stored by WithIdentity.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
