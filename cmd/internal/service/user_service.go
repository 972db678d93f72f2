package service

import (
	"blogapi/cmd/internal/contract"
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/domain/policy"
	"blogapi/cmd/internal/representation"
	"blogapi/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

// SelfAlias lets callers address themselves without knowing their id.
const SelfAlias = "@me"

type UserRepository interface {
	FindActiveByID(id int64) (*entity.User, error)
	FindDetailedByID(id int64) (*entity.User, error)
}

type UserService struct {
	UserRepo  UserRepository
	Evaluator *policy.Evaluator
}

func NewUserService(userRepo UserRepository, evaluator *policy.Evaluator) *UserService {
	return &UserService{
		UserRepo:  userRepo,
		Evaluator: evaluator,
	}
}

// GetUser returns the read projection of a user: its profile and posts.
func (s *UserService) GetUser(actor *entity.User, rawID string) (*contract.UserResponse, apierror.ErrorResponse) {
	perr := s.Evaluator.Evaluate(policy.Check{Actor: actor, Action: policy.ActionReadOne, Resource: policy.ResourceUser})
	if perr != nil {
		return nil, perr
	}

	var id int64
	if rawID == SelfAlias {
		id = actor.ID
	} else {
		var ok bool
		if id, ok = parseID(rawID); !ok {
			return nil, apierror.NotFoundError
		}
	}

	user, err := s.UserRepo.FindDetailedByID(id)
	if err != nil {
		log.Errorf("failed to fetch user %d: %v", id, err)
		return nil, apierror.InternalServerError
	}

	if user == nil || !user.Active {
		return nil, apierror.NotFoundError
	}
	return representation.ToUserResponse(user), nil
}

// ResolveActor maps an authenticated subject to an active user. It returns
// nil when the user does not exist or has been deactivated.
func (s *UserService) ResolveActor(id int64) (*entity.User, error) {
	return s.UserRepo.FindActiveByID(id)
}
