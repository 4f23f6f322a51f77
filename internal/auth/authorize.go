package auth

import (
	"errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "schooldir/internal/errors"
	"schooldir/internal/repository"
)

// SubjectKey is the context key under which RequireRole stores the verified
// user row for downstream handlers.
const SubjectKey = "subject"

// RequireRole authorizes the verified token subject against an allow-list of
// roles. The role is re-read from the user store on every request, never
// trusted from the token payload alone, so a role change takes effect without
// requiring re-login.
func RequireRole(users repository.UserRepository, allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*Claims)
			if !ok {
				httpErr := apperrors.MapErrorToHTTP(apperrors.ErrInvalidToken)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				mapped := apperrors.ErrUnauthorized
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					mapped = err
				}
				httpErr := apperrors.MapErrorToHTTP(mapped)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			for _, role := range allowed {
				if user.Role == role {
					c.Set(SubjectKey, user)
					return next(c)
				}
			}

			httpErr := apperrors.MapErrorToHTTP(apperrors.ErrForbiddenRole)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		}
	}
}
