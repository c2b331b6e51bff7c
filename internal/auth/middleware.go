package auth

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
)

// WithUser stores the authenticated user ID on a request context.
func WithUser(ctx huma.Context, userID uuid.UUID) huma.Context {
	return huma.WithValue(ctx, userIDKey, userID)
}

// Middleware verifies the Authorization bearer token and stores the user ID
// on the request context. Requests without a valid token get a 401.
func Middleware(api huma.API, secret string, logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		header := ctx.Header("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing bearer token")
			return
		}

		userID, err := Verify(secret, tokenString)
		if err != nil {
			logger.WithError(err).Warn("Auth.Middleware.rejected")
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid bearer token")
			return
		}

		next(WithUser(ctx, userID))
	}
}
