package middleware

import (
	"strings"

	"bhwconnect/internal/domain/entity"
	domainerrors "bhwconnect/internal/domain/errors"
	"bhwconnect/internal/domain/repository"
	"bhwconnect/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// ContextUserKey holds the authenticated *entity.User on the echo context.
	ContextUserKey = "currentUser"

	// ContextClaimsKey holds the verified token claims.
	ContextClaimsKey = "authClaims"

	// TokenCookieName is the cookie fallback for clients that do not send an
	// Authorization header.
	TokenCookieName = "token"
)

// AuthMiddleware provides middleware for session token authentication and
// role-based authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// extractToken pulls the session token from the Authorization header, falling
// back to the token cookie.
func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		if tokenString := strings.TrimPrefix(authHeader, "Bearer "); tokenString != authHeader {
			return tokenString
		}
	}

	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	return ""
}

// Authenticate validates the session token and loads the current user onto
// the context. The user lookup guards against tokens for deleted accounts.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := extractToken(c)
		if tokenString == "" {
			return domainerrors.ErrNotAuthenticated.WrapMessage("no token provided")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage("token verification failed")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrInvalidToken.WrapMessage("user no longer exists")
			}

			return errors.Wrap(err, "failed to load authenticated user")
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextClaimsKey, claims)

		return next(c)
	}
}

// RequireRole checks that the authenticated user holds the given role. It
// must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextUserKey).(*entity.User)
			if !ok {
				return domainerrors.ErrNotAuthenticated.WrapMessage("no authenticated user on context")
			}

			if user.Role != requiredRole {
				return domainerrors.ErrForbidden.WrapMessage("requires '" + requiredRole.String() + "' role")
			}

			return next(c)
		}
	}
}

// CurrentUser returns the authenticated user placed on the context by
// Authenticate.
func CurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(ContextUserKey).(*entity.User)

	return user, ok
}
