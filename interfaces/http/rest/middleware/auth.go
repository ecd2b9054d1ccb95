package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "github.com/Switchdoctorstu/Archimate-Ingester/pkg/errors"
)

// Authenticate validates a Bearer token signed with the shared secret.
// An empty secret disables authentication entirely, which is the
// development default.
func Authenticate(secret, issuer string, logger *zap.Logger) func(next http.Handler) http.Handler {
	errHandler := apperrors.NewErrorHandler(logger, false)

	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				errHandler.Handle(w, r, apperrors.NewUnauthorizedError("missing bearer token"))
				return
			}
			tokenString := strings.TrimPrefix(header, "Bearer ")

			parserOpts := []jwt.ParserOption{
				jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			}
			if issuer != "" {
				parserOpts = append(parserOpts, jwt.WithIssuer(issuer))
			}

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, parserOpts...)
			if err != nil || !token.Valid {
				logger.Warn("token rejected", zap.Error(err))
				errHandler.Handle(w, r, apperrors.NewUnauthorizedError("invalid token"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
