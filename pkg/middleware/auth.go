package middleware

import (
	"net/http"
	"strings"

	"surfcamp-booking/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuth guards back-office routes with a bearer key. The configured value
// is a bcrypt hash so the real key never lives in config files.
func AdminAuth(config utils.AdminConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.APIKeyHash == "" {
				logger.Error("Admin API key hash is not configured")
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			// Extract token
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(config.APIKeyHash), []byte(parts[1])); err != nil {
				logger.Warn("Admin auth rejected", zap.String("ip", r.RemoteAddr))
				utils.ResponseUnauthorized(w, "Invalid admin credentials")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
