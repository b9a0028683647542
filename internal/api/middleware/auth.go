package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-LaundryService/internal/api/handlers"
)

// AdminTokenHeader заголовок с административным токеном
const AdminTokenHeader = "X-Admin-Token"

const msgAdminTokenRequired = "admin token required"

// AdminAuth пропускает запрос дальше только при совпадении X-Admin-Token с
// настроенным токеном. Сравнение константное по времени.
func AdminAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminTokenHeader)
			if provided == "" {
				handlers.RespondUnauthorized(w, msgAdminTokenRequired)
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				handlers.RespondForbidden(w, msgAdminTokenRequired)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
