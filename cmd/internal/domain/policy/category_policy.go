package policy

import (
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/utils/apierror"
)

// CategoryPolicy: anyone reads, only administrators write.
type CategoryPolicy struct{}

func NewCategoryPolicy() *CategoryPolicy {
	return &CategoryPolicy{}
}

func (p *CategoryPolicy) CanMutate(actor *entity.User) apierror.ErrorResponse {
	if !actor.IsAdmin() {
		return forbiddenError()
	}
	return nil
}
