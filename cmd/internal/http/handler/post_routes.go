package handler

import (
	"net/http"

	"blogapi/cmd/internal/contract"
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/domain/policy"
	"blogapi/cmd/internal/representation"
	"blogapi/cmd/internal/utils"
	"blogapi/cmd/internal/utils/apierror"
	"blogapi/cmd/internal/utils/pagination"

	"github.com/labstack/echo/v4"
)

type PostService interface {
	GetPosts(actor *entity.User, params pagination.Params) ([]*contract.PostResponse, int64, apierror.ErrorResponse)
	GetPost(actor *entity.User, rawID string) (*contract.PostResponse, apierror.ErrorResponse)
	CreatePost(actor *entity.User, body []byte) (*contract.PostResponse, apierror.ErrorResponse)
	UpdatePost(actor *entity.User, rawID string, body []byte, mode representation.Mode) (*contract.PostResponse, apierror.ErrorResponse)
	DeletePost(actor *entity.User, rawID string) apierror.ErrorResponse
	RejectWithoutTarget(actor *entity.User, action policy.Action) apierror.ErrorResponse
}

type DefaultPostRoute struct {
	PostService PostService
}

func NewPostRoute(postService PostService) *DefaultPostRoute {
	return &DefaultPostRoute{PostService: postService}
}

func (r *DefaultPostRoute) Register(e *echo.Echo) {
	e.GET("/posts", r.GetPosts)
	e.POST("/posts", r.CreatePost)
	e.PUT("/posts", r.rejectWithoutTarget(policy.ActionUpdateFull))
	e.PATCH("/posts", r.rejectWithoutTarget(policy.ActionUpdatePartial))
	e.DELETE("/posts", r.rejectWithoutTarget(policy.ActionDelete))

	e.GET("/posts/:id", r.GetPost)
	e.PUT("/posts/:id", r.UpdatePost)
	e.PATCH("/posts/:id", r.PatchPost)
	e.DELETE("/posts/:id", r.DeletePost)
}

func (r *DefaultPostRoute) GetPosts(c echo.Context) error {
	params, apierr := pagination.ParseParams(c.QueryParams())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	posts, count, apierr := r.PostService.GetPosts(utils.GetActorFromContext(c), params)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, pagination.NewPage(requestURL(c), params, count, posts))
}

func (r *DefaultPostRoute) GetPost(c echo.Context) error {
	post, apierr := r.PostService.GetPost(utils.GetActorFromContext(c), c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, post)
}

func (r *DefaultPostRoute) CreatePost(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	post, apierr := r.PostService.CreatePost(utils.GetActorFromContext(c), body)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, post)
}

func (r *DefaultPostRoute) UpdatePost(c echo.Context) error {
	return r.update(c, representation.ModeFull)
}

func (r *DefaultPostRoute) PatchPost(c echo.Context) error {
	return r.update(c, representation.ModePartial)
}

func (r *DefaultPostRoute) update(c echo.Context, mode representation.Mode) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	post, apierr := r.PostService.UpdatePost(utils.GetActorFromContext(c), c.Param("id"), body, mode)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, post)
}

func (r *DefaultPostRoute) DeletePost(c echo.Context) error {
	apierr := r.PostService.DeletePost(utils.GetActorFromContext(c), c.Param("id"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultPostRoute) rejectWithoutTarget(action policy.Action) echo.HandlerFunc {
	return func(c echo.Context) error {
		apierr := r.PostService.RejectWithoutTarget(utils.GetActorFromContext(c), action)
		return c.JSON(apierr.Code(), apierr)
	}
}
