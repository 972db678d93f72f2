package utils

import (
	"blogapi/cmd/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const ActorContextKey = "user"

// GetActorFromContext returns the authenticated user, or nil for anonymous callers.
func GetActorFromContext(c echo.Context) *entity.User {
	val := c.Get(ActorContextKey)
	if val == nil {
		return nil
	}

	user, ok := val.(*entity.User)
	if !ok {
		log.Warnf("expected user type at '%s' context key, got %T", ActorContextKey, val)
		return nil
	}
	return user
}
