package service

import (
	"errors"

	"blogapi/cmd/internal/contract"
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/domain/policy"
	"blogapi/cmd/internal/representation"
	"blogapi/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	FindByOwnerID(ownerID int64) (*entity.Profile, error)
	ExistsByOwnerID(ownerID int64) (bool, error)
	Create(profile *entity.Profile) error
	Save(profile *entity.Profile) error
	Delete(profile *entity.Profile) error
}

// ProfileService handles the profile nested under /users/:user_id/profile.
// The path user must always be the actor.
type ProfileService struct {
	ProfileRepo ProfileRepository
	Mapper      *representation.Mapper
	Evaluator   *policy.Evaluator
}

func NewProfileService(profileRepo ProfileRepository, mapper *representation.Mapper, evaluator *policy.Evaluator) *ProfileService {
	return &ProfileService{
		ProfileRepo: profileRepo,
		Mapper:      mapper,
		Evaluator:   evaluator,
	}
}

func (s *ProfileService) check(actor *entity.User, action policy.Action, rawUserID string, target *entity.Profile) apierror.ErrorResponse {
	// an unparsable id never equals the actor's, so the path check rejects it
	pathUserID, _ := parseID(rawUserID)

	c := policy.Check{
		Actor:      actor,
		Action:     action,
		Resource:   policy.ResourceProfile,
		PathUserID: pathUserID,
	}
	if target != nil {
		c.Target = target
	}
	return s.Evaluator.Evaluate(c)
}

// ViewProfile exists only to answer GET on the nested route: there is no
// read operation, so an allowed caller gets "method not allowed".
func (s *ProfileService) ViewProfile(actor *entity.User, rawUserID string) apierror.ErrorResponse {
	if perr := s.check(actor, policy.ActionReadOne, rawUserID, nil); perr != nil {
		return perr
	}
	return apierror.MethodNotAllowedError
}

func (s *ProfileService) CreateProfile(actor *entity.User, rawUserID string, body []byte) (*contract.ProfileResponse, apierror.ErrorResponse) {
	if perr := s.check(actor, policy.ActionCreate, rawUserID, nil); perr != nil {
		return nil, perr
	}

	profile, apierr := s.Mapper.DecodeProfile(body, representation.ModeCreate, nil)
	if apierr != nil {
		return nil, apierr
	}

	exists, err := s.ProfileRepo.ExistsByOwnerID(actor.ID)
	if err != nil {
		log.Errorf("failed to check profile of user %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}

	if exists {
		return nil, apierror.ProfileExistsError
	}

	profile.OwnerID = actor.ID
	if err = s.ProfileRepo.Create(profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.ProfileExistsError
		}
		log.Errorf("failed to create profile for user %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}
	return representation.ToProfileResponse(profile), nil
}

func (s *ProfileService) UpdateProfile(actor *entity.User, rawUserID string, body []byte, mode representation.Mode) (*contract.ProfileResponse, apierror.ErrorResponse) {
	action := updateAction(mode)
	if perr := s.check(actor, action, rawUserID, nil); perr != nil {
		return nil, perr
	}

	existing, apierr := s.fetchProfile(actor.ID)
	if apierr != nil {
		return nil, apierr
	}

	if perr := s.check(actor, action, rawUserID, existing); perr != nil {
		return nil, perr
	}

	profile, apierr := s.Mapper.DecodeProfile(body, mode, existing)
	if apierr != nil {
		return nil, apierr
	}

	if err := s.ProfileRepo.Save(profile); err != nil {
		log.Errorf("failed to update profile of user %d: %v", actor.ID, err)
		return nil, apierror.InternalServerError
	}
	return representation.ToProfileResponse(profile), nil
}

func (s *ProfileService) DeleteProfile(actor *entity.User, rawUserID string) apierror.ErrorResponse {
	if perr := s.check(actor, policy.ActionDelete, rawUserID, nil); perr != nil {
		return perr
	}

	profile, apierr := s.fetchProfile(actor.ID)
	if apierr != nil {
		return apierr
	}

	if perr := s.check(actor, policy.ActionDelete, rawUserID, profile); perr != nil {
		return perr
	}

	if err := s.ProfileRepo.Delete(profile); err != nil {
		log.Errorf("failed to delete profile of user %d: %v", actor.ID, err)
		return apierror.InternalServerError
	}
	return nil
}

func (s *ProfileService) fetchProfile(ownerID int64) (*entity.Profile, apierror.ErrorResponse) {
	profile, err := s.ProfileRepo.FindByOwnerID(ownerID)
	if err != nil {
		log.Errorf("failed to fetch profile of user %d: %v", ownerID, err)
		return nil, apierror.InternalServerError
	}

	if profile == nil {
		return nil, apierror.NotFoundError
	}
	return profile, nil
}
