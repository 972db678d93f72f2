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

type CategoryService interface {
	GetCategories(actor *entity.User, params pagination.Params) ([]*contract.CategoryResponse, int64, apierror.ErrorResponse)
	GetCategory(actor *entity.User, tag string) (*contract.CategoryResponse, apierror.ErrorResponse)
	CreateCategory(actor *entity.User, body []byte) (*contract.CategoryResponse, apierror.ErrorResponse)
	UpdateCategory(actor *entity.User, tag string, body []byte, mode representation.Mode) (*contract.CategoryResponse, apierror.ErrorResponse)
	DeleteCategory(actor *entity.User, tag string) apierror.ErrorResponse
	RejectWithoutTarget(actor *entity.User, action policy.Action) apierror.ErrorResponse
}

type DefaultCategoryRoute struct {
	CategoryService CategoryService
}

func NewCategoryRoute(categoryService CategoryService) *DefaultCategoryRoute {
	return &DefaultCategoryRoute{CategoryService: categoryService}
}

func (r *DefaultCategoryRoute) Register(e *echo.Echo) {
	e.GET("/categories", r.GetCategories)
	e.POST("/categories", r.CreateCategory)
	e.PUT("/categories", r.rejectWithoutTarget(policy.ActionUpdateFull))
	e.PATCH("/categories", r.rejectWithoutTarget(policy.ActionUpdatePartial))
	e.DELETE("/categories", r.rejectWithoutTarget(policy.ActionDelete))

	e.GET("/categories/:tag", r.GetCategory)
	e.PUT("/categories/:tag", r.UpdateCategory)
	e.PATCH("/categories/:tag", r.PatchCategory)
	e.DELETE("/categories/:tag", r.DeleteCategory)
}

func (r *DefaultCategoryRoute) GetCategories(c echo.Context) error {
	params, apierr := pagination.ParseParams(c.QueryParams())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	categories, count, apierr := r.CategoryService.GetCategories(utils.GetActorFromContext(c), params)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, pagination.NewPage(requestURL(c), params, count, categories))
}

func (r *DefaultCategoryRoute) GetCategory(c echo.Context) error {
	category, apierr := r.CategoryService.GetCategory(utils.GetActorFromContext(c), c.Param("tag"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, category)
}

func (r *DefaultCategoryRoute) CreateCategory(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	category, apierr := r.CategoryService.CreateCategory(utils.GetActorFromContext(c), body)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, category)
}

func (r *DefaultCategoryRoute) UpdateCategory(c echo.Context) error {
	return r.update(c, representation.ModeFull)
}

func (r *DefaultCategoryRoute) PatchCategory(c echo.Context) error {
	return r.update(c, representation.ModePartial)
}

func (r *DefaultCategoryRoute) update(c echo.Context, mode representation.Mode) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}

	category, apierr := r.CategoryService.UpdateCategory(utils.GetActorFromContext(c), c.Param("tag"), body, mode)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, category)
}

func (r *DefaultCategoryRoute) DeleteCategory(c echo.Context) error {
	apierr := r.CategoryService.DeleteCategory(utils.GetActorFromContext(c), c.Param("tag"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}

func (r *DefaultCategoryRoute) rejectWithoutTarget(action policy.Action) echo.HandlerFunc {
	return func(c echo.Context) error {
		apierr := r.CategoryService.RejectWithoutTarget(utils.GetActorFromContext(c), action)
		return c.JSON(apierr.Code(), apierr)
	}
}
