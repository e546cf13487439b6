package middleware

import (
	"strings"

	deliverycontext "todo/internal/delivery/context"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and places the caller's user id in
// both the echo context and the request context. Every failure mode maps to
// the same 401 envelope via the error middleware.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrInvalidToken.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrInvalidToken.WithDetails("Authorization header must use the Bearer scheme")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		userID, err := claims.UserID()
		if err != nil {
			return domainerrors.ErrInvalidToken
		}

		c.Set(string(deliverycontext.KeyUserID), userID)

		ctx := deliverycontext.WithUserID(c.Request().Context(), userID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// UserID extracts the authenticated user's id from the echo context. It is
// only meaningful on routes behind Authenticate.
func UserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(string(deliverycontext.KeyUserID)).(int64)

	return id, ok
}
