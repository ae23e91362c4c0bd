package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/dev4ox/anti-cafe-reservation/internal/api/handlers"
)

const staffKeyHeader = "X-Staff-Key"

const msgUnauthorized = "требуется ключ доступа персонала"

type Logger interface {
	Warn(format string, v ...interface{})
}

// StaffAuth проверяет ключ персонала в заголовке X-Staff-Key.
// Пустой сконфигурированный ключ закрывает staff API полностью.
func StaffAuth(staffKey string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(staffKeyHeader)
			if staffKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(staffKey)) != 1 {
				logger.Warn("StaffAuth - Rejected request: method=%s, path=%s", r.Method, r.URL.Path)
				handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
