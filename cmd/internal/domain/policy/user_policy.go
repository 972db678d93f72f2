package policy

import (
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/utils/apierror"
)

// UserPolicy guards the public user projection.
type UserPolicy struct{}

func NewUserPolicy() *UserPolicy {
	return &UserPolicy{}
}

// CanView lets any authenticated actor see any user.
func (p *UserPolicy) CanView(actor *entity.User) apierror.ErrorResponse {
	if actor == nil {
		return forbiddenError()
	}
	return nil
}
