package middleware

import (
	"context"
	"net/http"

	"github.com/vendora/order-service/pkg/utils"

	"github.com/google/uuid"
)

type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// Identity is the caller identity resolved by the upstream gateway. The
// service trusts these values and does not re-authenticate.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

type identityKey struct{}

// WithIdentity reads X-User-ID and X-User-Role set by the gateway and puts
// the caller identity into the request context.
func WithIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := uuid.Parse(r.Header.Get("X-User-ID"))
		if err != nil {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		role := Role(r.Header.Get("X-User-Role"))
		switch role {
		case RoleUser, RoleSeller, RoleAdmin:
		default:
			role = RoleUser
		}

		ctx := context.WithValue(r.Context(), identityKey{}, Identity{UserID: userID, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
