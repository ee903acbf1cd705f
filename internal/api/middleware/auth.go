package middleware

import (
	"context"
	"net/http"

	"github.com/restoh/ReservationService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "userRole"
)

// Заголовки аутентификации. Управление сессиями - забота внешнего слоя,
// сервис доверяет заголовкам, проставленным шлюзом.
const (
	HeaderUserID = "X-User-ID"
	HeaderRole   = "X-User-Role"

	RoleAdmin = "admin"
)

// Auth требует заголовок X-User-ID и кладёт идентификатор вызывающего
// и его роль в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(HeaderUserID)
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "missing X-User-ID header", handlers.CodeAccessDenied)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, r.Header.Get(HeaderRole))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только вызовы с ролью admin.
// Применяется после Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			handlers.RespondForbidden(w, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID возвращает идентификатор вызывающего из контекста
func UserID(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// IsAdmin возвращает true, если вызывающий имеет роль admin
func IsAdmin(ctx context.Context) bool {
	v, ok := ctx.Value(roleKey).(string)
	return ok && v == RoleAdmin
}
