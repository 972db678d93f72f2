package handler

import (
	"net/http"

	"blogapi/cmd/internal/utils/apierror"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const DefaultBodyLimit = "1M"

type RouterConfig struct {
	CategoryService CategoryService
	PostService     PostService
	ProfileService  ProfileService
	UserService     UserService

	// Auth resolves the actor of each request, see middleware.NewAuthMiddleware.
	Auth      echo.MiddlewareFunc
	BodyLimit string
}

// NewRouter builds the echo instance serving every route of the API.
func NewRouter(cfg *RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = errorHandler

	bodyLimit := cfg.BodyLimit
	if bodyLimit == "" {
		bodyLimit = DefaultBodyLimit
	}

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Infof("%s %s %d %s [%s]", v.Method, v.URI, v.Status, v.Latency, v.RequestID)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(bodyLimit))
	if cfg.Auth != nil {
		e.Use(cfg.Auth)
	}

	NewCategoryRoute(cfg.CategoryService).Register(e)
	NewPostRoute(cfg.PostService).Register(e)
	NewProfileRoute(cfg.ProfileService).Register(e)
	NewUserRoute(cfg.UserService).Register(e)

	e.GET("/health", healthCheckRoute)
	return e
}

// errorHandler keeps echo's own errors (unknown routes, oversized bodies)
// in the same {"message": ...} shape as the API errors.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	he, ok := err.(*echo.HTTPError)
	if !ok {
		log.Errorf("unhandled error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		he = echo.NewHTTPError(apierror.InternalServerError.Code(), apierror.InternalServerError.Message)
	}

	msg, ok := he.Message.(string)
	if !ok {
		msg = http.StatusText(he.Code)
	}

	resp := apierror.NewSimple(he.Code, msg)
	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(he.Code)
	} else {
		werr = c.JSON(resp.Code(), resp)
	}
	if werr != nil {
		log.Errorf("failed to write error response: %v", werr)
	}
}
