package middleware

import (
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/utils"
	"blogapi/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

type ActorResolver interface {
	ResolveActor(id int64) (*entity.User, error)
}

type AuthMiddlewareConfig struct {
	Verifier *utils.TokenVerifier
	Users    ActorResolver
}

// NewAuthMiddleware resolves the actor of every request. Requests without an
// Authorization header go through as anonymous; a header that does not name
// an active user is rejected with 401.
func NewAuthMiddleware(cfg *AuthMiddlewareConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get(echo.HeaderAuthorization) == "" {
				return next(c)
			}

			tokenData, err := cfg.Verifier.ParseTokenDataCtx(c)
			if err != nil {
				log.Debugf("rejected token: %v", err)
				return c.JSON(apierror.InvalidAuthTokenError.Code(), apierror.InvalidAuthTokenError)
			}

			user, err := cfg.Users.ResolveActor(tokenData.UserID)
			if err != nil {
				log.Errorf("failed to resolve actor %d: %v", tokenData.UserID, err)
				return c.JSON(apierror.InternalServerError.Code(), apierror.InternalServerError)
			}

			if user == nil {
				// valid signature, but the user is gone or deactivated
				return c.JSON(apierror.InvalidAuthTokenError.Code(), apierror.InvalidAuthTokenError)
			}

			c.Set(utils.ActorContextKey, user)
			return next(c)
		}
	}
}
