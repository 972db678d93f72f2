package handler

import (
	"net/http"

	"blogapi/cmd/internal/contract"
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/representation"
	"blogapi/cmd/internal/utils"
	"blogapi/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ProfileService interface {
	ViewProfile(actor *entity.User, rawUserID string) apierror.ErrorResponse
	CreateProfile(actor *entity.User, rawUserID string, body []byte) (*contract.ProfileResponse, apierror.ErrorResponse)
	UpdateProfile(actor *entity.User, rawUserID string, body []byte, mode representation.Mode) (*contract.ProfileResponse, apierror.ErrorResponse)
	DeleteProfile(actor *entity.User, rawUserID string) apierror.ErrorResponse
}

type DefaultProfileRoute struct {
	ProfileService ProfileService
}

func NewProfileRoute(profileService ProfileService) *DefaultProfileRoute {
	return &DefaultProfileRoute{ProfileService: profileService}
}

func (r *DefaultProfileRoute) Register(e *echo.Echo) {
	e.GET("/users/:user_id/profile", r.GetProfile)
	e.POST("/users/:user_id/profile", r.CreateProfile)
	e.PUT("/users/:user_id/profile", r.UpdateProfile)
	e.PATCH("/users/:user_id/profile", r.PatchProfile)
	e.DELETE("/users/:user_id/profile", r.DeleteProfile)
}

// GetProfile never returns a profile: profiles are read through the user projection.
func (r *DefaultProfileRoute) GetProfile(c echo.Context) error {
	apierr := r.ProfileService.ViewProfile(utils.GetActorFromContext(c), c.Param("user_id"))
	return c.JSON(apierr.Code(), apierr)
}

func (r *DefaultProfileRoute) CreateProfile(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	profile, apierr := r.ProfileService.CreateProfile(utils.GetActorFromContext(c), c.Param("user_id"), body)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, profile)
}

func (r *DefaultProfileRoute) UpdateProfile(c echo.Context) error {
	return r.update(c, representation.ModeFull)
}

func (r *DefaultProfileRoute) PatchProfile(c echo.Context) error {
	return r.update(c, representation.ModePartial)
}

func (r *DefaultProfileRoute) update(c echo.Context, mode representation.Mode) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	profile, apierr := r.ProfileService.UpdateProfile(utils.GetActorFromContext(c), c.Param("user_id"), body, mode)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, profile)
}

func (r *DefaultProfileRoute) DeleteProfile(c echo.Context) error {
	apierr := r.ProfileService.DeleteProfile(utils.GetActorFromContext(c), c.Param("user_id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
