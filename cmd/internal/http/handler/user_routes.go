package handler

import (
	"net/http"

	"blogapi/cmd/internal/contract"
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/utils"
	"blogapi/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type UserService interface {
	GetUser(actor *entity.User, rawID string) (*contract.UserResponse, apierror.ErrorResponse)
}

type DefaultUserRoute struct {
	UserService UserService
}

func NewUserRoute(userService UserService) *DefaultUserRoute {
	return &DefaultUserRoute{UserService: userService}
}

func (r *DefaultUserRoute) Register(e *echo.Echo) {
	e.GET("/users/:user_id", r.GetUser)
}

func (r *DefaultUserRoute) GetUser(c echo.Context) error {
	user, apierr := r.UserService.GetUser(utils.GetActorFromContext(c), c.Param("user_id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, user)
}
