package representation

import (
	"blogapi/cmd/internal/contract"
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/utils/apierror"
)

const immutableTagProblem = "Tag identifies the category and cannot be changed"

// DecodeCategory validates 'body' and returns the category to persist.
// 'existing' is ignored for ModeCreate; otherwise it is copied, never mutated.
func (m *Mapper) DecodeCategory(body []byte, mode Mode, existing *entity.Category) (*entity.Category, apierror.ErrorResponse) {
	switch mode {
	case ModeCreate:
		var req contract.CreateCategoryRequest
		if apierr := m.decode(body, &req); apierr != nil {
			return nil, apierr
		}
		return &entity.Category{Tag: req.Tag, Name: req.Name}, nil

	case ModeFull:
		var req contract.UpdateCategoryRequest
		if apierr := m.decode(body, &req); apierr != nil {
			return nil, apierr
		}
		if req.Tag != nil && *req.Tag != existing.Tag {
			return nil, apierror.NewFieldError("tag", immutableTagProblem)
		}

		updated := *existing
		updated.Name = req.Name
		return &updated, nil

	default:
		var req contract.PatchCategoryRequest
		if apierr := m.decode(body, &req); apierr != nil {
			return nil, apierr
		}
		if req.Tag != nil && *req.Tag != existing.Tag {
			return nil, apierror.NewFieldError("tag", immutableTagProblem)
		}

		updated := *existing
		if req.Name != nil {
			updated.Name = *req.Name
		}
		return &updated, nil
	}
}

func ToCategoryResponse(category *entity.Category) *contract.CategoryResponse {
	return &contract.CategoryResponse{
		Tag:  category.Tag,
		Name: category.Name,
	}
}
