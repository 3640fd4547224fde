package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/finledger/internal/common"
	"github.com/dmitrijs2005/finledger/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// accessTokenMiddleware verifies the bearer token on protected routes and
// injects the subject user id into the request context.
func (s *HTTPServer) accessTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get(common.AuthorizationHeaderName)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			writeError(w, http.StatusUnauthorized, "missing token")
			return
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext returns the authenticated user id set by the middleware.
func userIDFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(userIDKey).(string)
	return userID, ok
}
