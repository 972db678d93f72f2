package policy

import (
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/utils/apierror"
)

type ProfilePolicy struct{}

func NewProfilePolicy() *ProfilePolicy {
	return &ProfilePolicy{}
}

// CanAccess rejects anonymous callers and callers addressing another
// user's profile path. It runs before the profile is looked up.
func (p *ProfilePolicy) CanAccess(actor *entity.User, pathUserID int64) apierror.ErrorResponse {
	if actor == nil || actor.ID != pathUserID {
		return forbiddenError()
	}
	return nil
}

// CanModify is the object-level ownership check. Given CanAccess it can
// only fail if the path and the stored owner disagree.
func (p *ProfilePolicy) CanModify(profile Owned, actor *entity.User) apierror.ErrorResponse {
	if actor == nil || profile.OwnedBy() != actor.ID {
		return forbiddenError()
	}
	return nil
}
