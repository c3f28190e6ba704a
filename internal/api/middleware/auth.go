package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
)

// UserIDHeader заголовок с идентификатором пользователя
// Проверку подлинности выполняет внешний шлюз, сюда приходит уже
// аутентифицированный ID
const UserIDHeader = "X-User-ID"

type userIDKey struct{}

// Auth middleware требует заголовок X-User-ID на защищенных маршрутах
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(UserIDHeader)
		if userID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает идентификатор пользователя из контекста запроса
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey{}).(string)
	return id
}
