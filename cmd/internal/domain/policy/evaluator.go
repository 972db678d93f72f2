package policy

import (
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/utils/apierror"
)

// Check is a single authorization question. Actor is nil for anonymous
// callers. Target is nil for class-level checks, and set to the resolved
// object once it has been looked up.
type Check struct {
	Actor    *entity.User
	Action   Action
	Resource Resource

	// PathUserID is the user id of nested routes (/users/:user_id/profile).
	PathUserID int64
	Target     Owned
}

// Evaluator answers Checks by dispatching to the per-resource policies.
// It holds no state and never inspects request bodies.
type Evaluator struct {
	categories *CategoryPolicy
	posts      *PostPolicy
	profiles   *ProfilePolicy
	users      *UserPolicy
}

func NewEvaluator() *Evaluator {
	return &Evaluator{
		categories: NewCategoryPolicy(),
		posts:      NewPostPolicy(),
		profiles:   NewProfilePolicy(),
		users:      NewUserPolicy(),
	}
}

// Evaluate returns nil when the check is allowed, apierror.ForbiddenError otherwise.
func (e *Evaluator) Evaluate(c Check) apierror.ErrorResponse {
	switch c.Resource {
	case ResourceCategory:
		if c.Action.IsSafe() {
			return nil
		}
		return e.categories.CanMutate(c.Actor)

	case ResourcePost:
		if c.Action.IsSafe() {
			return nil
		}
		if c.Target == nil {
			return e.posts.CanWrite(c.Actor)
		}
		return e.posts.CanModify(c.Target, c.Actor)

	case ResourceProfile:
		if perr := e.profiles.CanAccess(c.Actor, c.PathUserID); perr != nil {
			return perr
		}
		if c.Target == nil {
			return nil
		}
		return e.profiles.CanModify(c.Target, c.Actor)

	case ResourceUser:
		if c.Action != ActionReadOne {
			return forbiddenError()
		}
		return e.users.CanView(c.Actor)
	}
	return forbiddenError()
}

func forbiddenError() *apierror.APIError {
	return apierror.ForbiddenError
}
