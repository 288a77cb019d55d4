package middleware

import (
	"context"
	"net/http"

	"github.com/mealio/food-order-service/internal/entities"
	"github.com/mealio/food-order-service/pkg/utils"
)

// Identity is established by the hosted identity service in front of this
// API; the proxy forwards the verified subject and role in these headers.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserRole = "X-User-Role"
)

type userIDKey struct{}
type userRoleKey struct{}

func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}

func UserRole(ctx context.Context) entities.UserRole {
	role, _ := ctx.Value(userRoleKey{}).(entities.UserRole)
	return role
}

// RequireUser rejects requests without a forwarded identity.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		role := entities.UserRole(r.Header.Get(HeaderUserRole))
		if role == "" {
			role = entities.RoleCustomer
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		ctx = context.WithValue(ctx, userRoleKey{}, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin guards the administrative console endpoints.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserRole(r.Context()) != entities.RoleAdmin {
			utils.WriteError(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
