package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
)

// HeaderCronSecret заголовок с общим секретом внешнего планировщика
const HeaderCronSecret = "X-Cron-Secret"

const msgInvalidCronSecret = "некорректный секрет планировщика"

type Logger interface {
	Warn(format string, v ...interface{})
}

// CronSecret пропускает запрос только с правильным X-Cron-Secret.
// Пустой секрет в конфигурации закрывает доступ полностью.
func CronSecret(secret string, logger Logger) mux.MiddlewareFunc {
	expected := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get(HeaderCronSecret))

			if len(expected) == 0 || subtle.ConstantTimeCompare(got, expected) != 1 {
				requestID, _ := GetRequestID(r.Context())
				logger.Warn("%s %s - Invalid cron secret: request_id=%s", r.Method, r.URL.Path, requestID)
				handlers.RespondUnauthorized(w, msgInvalidCronSecret)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
