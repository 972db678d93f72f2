package policy

import (
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/utils/apierror"
)

// PostPolicy encapsulates all business rules for post manipulation.
// It returns apierror.ErrorResponse directly for seamless integration with services.
type PostPolicy struct{}

func NewPostPolicy() *PostPolicy {
	return &PostPolicy{}
}

// CanWrite is the class-level gate of every non-read action: the caller must be authenticated.
func (p *PostPolicy) CanWrite(actor *entity.User) apierror.ErrorResponse {
	if actor == nil {
		return forbiddenError()
	}
	return nil
}

// CanModify checks if 'actor' owns 'post'.
func (p *PostPolicy) CanModify(post Owned, actor *entity.User) apierror.ErrorResponse {
	if perr := p.CanWrite(actor); perr != nil {
		return perr
	}

	if post.OwnedBy() != actor.ID {
		return forbiddenError()
	}
	return nil
}
