package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"assetrent-backend/internal/logger"
	"assetrent-backend/internal/security"
)

type contextKey string

const callerKey contextKey = "caller"

// CallerFromContext returns the authenticated caller identity.
func CallerFromContext(ctx context.Context) (string, bool) {
	caller, ok := ctx.Value(callerKey).(string)
	return caller, ok
}

// AuthMiddleware resolves the caller identity from a bearer token and puts
// it on the request context.
func AuthMiddleware(tm security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"})
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Code: "UNAUTHORIZED", Message: "invalid token format"})
				return
			}

			caller, err := tm.ValidateToken(parts[1])
			if err != nil {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Code: "UNAUTHORIZED", Message: "invalid token"})
				return
			}

			ctx := context.WithValue(r.Context(), callerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestLogMiddleware tags every request with a request id and logs it.
func RequestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
