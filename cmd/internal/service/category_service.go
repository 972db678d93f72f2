package service

import (
	"errors"

	"blogapi/cmd/internal/contract"
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/domain/policy"
	"blogapi/cmd/internal/representation"
	"blogapi/cmd/internal/utils/apierror"
	"blogapi/cmd/internal/utils/pagination"

	"github.com/labstack/gommon/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	FindPage(offset, limit int) ([]*entity.Category, int64, error)
	FindByTag(tag string) (*entity.Category, error)
	Create(category *entity.Category) error
	Save(category *entity.Category) error
	Delete(category *entity.Category) error
}

type CategoryService struct {
	CategoryRepo CategoryRepository
	Mapper       *representation.Mapper
	Evaluator    *policy.Evaluator
}

func NewCategoryService(categoryRepo CategoryRepository, mapper *representation.Mapper, evaluator *policy.Evaluator) *CategoryService {
	return &CategoryService{
		CategoryRepo: categoryRepo,
		Mapper:       mapper,
		Evaluator:    evaluator,
	}
}

func (s *CategoryService) check(actor *entity.User, action policy.Action) apierror.ErrorResponse {
	return s.Evaluator.Evaluate(policy.Check{Actor: actor, Action: action, Resource: policy.ResourceCategory})
}

func (s *CategoryService) GetCategories(actor *entity.User, params pagination.Params) ([]*contract.CategoryResponse, int64, apierror.ErrorResponse) {
	if perr := s.check(actor, policy.ActionReadMany); perr != nil {
		return nil, 0, perr
	}

	categories, count, err := s.CategoryRepo.FindPage(params.Offset(), params.Limit())
	if err != nil {
		log.Errorf("failed to fetch categories page %d: %v", params.Page, err)
		return nil, 0, apierror.InternalServerError
	}

	resp := lo.Map(categories, func(c *entity.Category, _ int) *contract.CategoryResponse {
		return representation.ToCategoryResponse(c)
	})
	return resp, count, nil
}

func (s *CategoryService) GetCategory(actor *entity.User, tag string) (*contract.CategoryResponse, apierror.ErrorResponse) {
	if perr := s.check(actor, policy.ActionReadOne); perr != nil {
		return nil, perr
	}

	category, apierr := s.fetchByTag(tag)
	if apierr != nil {
		return nil, apierr
	}
	return representation.ToCategoryResponse(category), nil
}

func (s *CategoryService) CreateCategory(actor *entity.User, body []byte) (*contract.CategoryResponse, apierror.ErrorResponse) {
	if perr := s.check(actor, policy.ActionCreate); perr != nil {
		return nil, perr
	}

	category, apierr := s.Mapper.DecodeCategory(body, representation.ModeCreate, nil)
	if apierr != nil {
		return nil, apierr
	}

	existing, err := s.CategoryRepo.FindByTag(category.Tag)
	if err != nil {
		log.Errorf("failed to check category %q: %v", category.Tag, err)
		return nil, apierror.InternalServerError
	}

	if existing != nil {
		return nil, apierror.CategoryExistsError
	}

	if err = s.CategoryRepo.Create(category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.CategoryExistsError
		}
		log.Errorf("actor %d failed to create category %q: %v", actor.ID, category.Tag, err)
		return nil, apierror.InternalServerError
	}
	return representation.ToCategoryResponse(category), nil
}

func (s *CategoryService) UpdateCategory(actor *entity.User, tag string, body []byte, mode representation.Mode) (*contract.CategoryResponse, apierror.ErrorResponse) {
	if perr := s.check(actor, updateAction(mode)); perr != nil {
		return nil, perr
	}

	existing, apierr := s.fetchByTag(tag)
	if apierr != nil {
		return nil, apierr
	}

	category, apierr := s.Mapper.DecodeCategory(body, mode, existing)
	if apierr != nil {
		return nil, apierr
	}

	if err := s.CategoryRepo.Save(category); err != nil {
		log.Errorf("actor %d failed to update category %q: %v", actor.ID, tag, err)
		return nil, apierror.InternalServerError
	}
	return representation.ToCategoryResponse(category), nil
}

func (s *CategoryService) DeleteCategory(actor *entity.User, tag string) apierror.ErrorResponse {
	if perr := s.check(actor, policy.ActionDelete); perr != nil {
		return perr
	}

	category, apierr := s.fetchByTag(tag)
	if apierr != nil {
		return apierr
	}

	if err := s.CategoryRepo.Delete(category); err != nil {
		log.Errorf("actor %d failed to delete category %q: %v", actor.ID, tag, err)
		return apierror.InternalServerError
	}
	return nil
}

// RejectWithoutTarget answers mutations sent to the collection path: forbidden
// for non-administrators, method not allowed otherwise.
func (s *CategoryService) RejectWithoutTarget(actor *entity.User, action policy.Action) apierror.ErrorResponse {
	if perr := s.check(actor, action); perr != nil {
		return perr
	}
	return apierror.MethodNotAllowedError
}

func (s *CategoryService) fetchByTag(tag string) (*entity.Category, apierror.ErrorResponse) {
	category, err := s.CategoryRepo.FindByTag(tag)
	if err != nil {
		log.Errorf("failed to fetch category %q: %v", tag, err)
		return nil, apierror.InternalServerError
	}

	if category == nil {
		return nil, apierror.NotFoundError
	}
	return category, nil
}

func updateAction(mode representation.Mode) policy.Action {
	if mode == representation.ModePartial {
		return policy.ActionUpdatePartial
	}
	return policy.ActionUpdateFull
}
