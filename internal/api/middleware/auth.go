package middleware

import (
	"net/http"
	"strings"

	"github.com/m04kA/PawsCheckinService/internal/api/handlers"
	"github.com/m04kA/PawsCheckinService/pkg/authctx"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "

	msgMissingToken = "требуется заголовок Authorization: Bearer <token>"
)

// Auth проверяет наличие bearer-токена сотрудника и кладет его в контекст.
// Сам токен проверяет внешний сервис, которому он передается дальше.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(authorizationHeader)
		if !strings.HasPrefix(header, bearerPrefix) {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		if token == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(authctx.WithToken(r.Context(), token)))
	})
}
