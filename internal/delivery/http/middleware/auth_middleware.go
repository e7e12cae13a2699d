package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "zapshift/internal/delivery/context"
	"zapshift/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for Firebase ID token authentication.
type AuthMiddleware struct {
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.IdentityVerifier, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, logger: logger}
}

// Authenticate is the core middleware function that validates the ID token
// and stashes the verified email on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		identity, err := m.verifier.VerifyIDToken(c.Request().Context(), tokenString)
		if err != nil {
			m.logger.Warn("ID token verification failed",
				"error", err.Error(),
				"path", c.Request().URL.Path,
			)

			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		if identity.Email == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Token carries no email claim"})
		}

		// Set caller identity on the context for handlers to use
		c.Set(string(deliverycontext.KeyVerifiedEmail), identity.Email)
		ctx := deliverycontext.WithVerifiedEmail(c.Request().Context(), identity.Email)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
