package router

import (
	"strings"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"tourguide/internal/auth"
	apperrors "tourguide/internal/errors"
	"tourguide/internal/model"
	"tourguide/internal/repository"
)

func unauthorized() error {
	httpErr := apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// Authenticated returns the middleware chain for secured routes: bearer token
// verification followed by principal resolution against the live user record.
// Tampered and expired tokens are indistinguishable to the caller.
func Authenticated(tokens *auth.TokenService, users repository.UserRepository) []echo.MiddlewareFunc {
	return []echo.MiddlewareFunc{
		verifyToken(tokens),
		resolvePrincipal(users),
	}
}

func verifyToken(tokens *auth.TokenService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  auth.ClaimsContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return tokens.Verify(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return unauthorized()
		},
	})
}

// resolvePrincipal re-fetches the user behind the token subject so that role,
// enabled and locked changes since issuance take effect immediately. The
// token proves identity, not current privilege.
func resolvePrincipal(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(auth.ClaimsContextKey).(*auth.Claims)
			if !ok {
				return unauthorized()
			}
			userID, err := claims.UserID()
			if err != nil {
				return unauthorized()
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return unauthorized()
			}
			if !user.Enabled || user.AccountLocked {
				return unauthorized()
			}

			c.Set(auth.ContextKey, auth.NewPrincipal(user))
			return next(c)
		}
	}
}

// OptionalAuthenticated resolves a principal when a valid bearer token is
// present but lets the request proceed anonymously otherwise. Used on public
// routes that personalize their response.
func OptionalAuthenticated(tokens *auth.TokenService, users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return next(c)
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				return next(c)
			}
			userID, err := claims.UserID()
			if err != nil {
				return next(c)
			}
			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil || !user.Enabled || user.AccountLocked {
				return next(c)
			}

			c.Set(auth.ContextKey, auth.NewPrincipal(user))
			return next(c)
		}
	}
}

// RequireRoles rejects requests whose principal holds none of the given
// roles. Must run after resolvePrincipal.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := c.Get(auth.ContextKey).(*auth.Principal)
			if err := auth.RequireRoles(principal, roles...); err != nil {
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}
