package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/alurfia/ALK-BookingService/internal/api/handlers"
)

const msgInvalidCredentials = "неверные учетные данные администратора"

// AdminAuth проверяет учетные данные администратора в заголовках запроса
// Фронтенд передает их в заголовках username/password при каждом админском запросе
func AdminAuth(username, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUser := r.Header.Get("username")
			gotPass := r.Header.Get("password")

			userOK := subtle.ConstantTimeCompare([]byte(gotUser), []byte(username)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(gotPass), []byte(password)) == 1

			if !userOK || !passOK {
				handlers.RespondUnauthorized(w, msgInvalidCredentials)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
