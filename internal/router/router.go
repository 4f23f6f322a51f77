package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"schooldir/internal/auth"
	apperrors "schooldir/internal/errors"
	"schooldir/internal/handler"
	"schooldir/internal/model"
	"schooldir/internal/repository"
	"schooldir/internal/storage"
)

// Register wires routes and middleware. localImageDir, when non-empty, is
// served as static files under the public image path (local store only).
func Register(
	e *echo.Echo,
	tokens *auth.TokenService,
	users repository.UserRepository,
	localImageDir string,
	authHandler *handler.AuthHandler,
	schoolHandler *handler.SchoolHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if localImageDir != "" {
		e.Static(storage.PublicImagePath, localImageDir)
	}

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/auth/me", authHandler.Me)
	api.GET("/get-schools", schoolHandler.GetSchools)
	api.GET("/school-stats", schoolHandler.Stats)

	// Admin routes: bearer header wins over the session cookie, the verified
	// claims land in the context, then the role gate re-reads the role from
	// the user store.
	admin := api.Group("",
		echojwt.WithConfig(echojwt.Config{
			TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + auth.CookieName,
			ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
				return tokens.Verify(token)
			},
			ErrorHandler: authErrorHandler,
		}),
		auth.RequireRole(users, model.RoleAdmin),
	)
	admin.POST("/add-school", schoolHandler.AddSchool)
}

// authErrorHandler maps middleware failures onto the auth taxonomy: a request
// with no token at all is unauthenticated, anything carrying a token that did
// not verify is an invalid token. Both are 401.
func authErrorHandler(c echo.Context, err error) error {
	mapped := apperrors.ErrInvalidToken
	if errors.Is(err, echojwt.ErrJWTMissing) {
		mapped = apperrors.ErrUnauthenticated
	}
	httpErr := apperrors.MapErrorToHTTP(mapped)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
