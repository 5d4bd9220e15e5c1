package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Wong-WS/swim-scheduler/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// AdminAuth проверяет заголовок X-Admin-Token для админ-маршрутов.
// Сравнение токена выполняется за константное время
func AdminAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if got == "" {
				handlers.RespondUnauthorized(w, "требуется заголовок X-Admin-Token")
				return
			}

			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondForbidden(w, "неверный токен доступа")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
