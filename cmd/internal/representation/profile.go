package representation

import (
	"blogapi/cmd/internal/contract"
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/utils/apierror"
)

// DecodeProfile validates 'body' and returns the bio/preferences to persist.
// Id and owner come from 'existing' (nil for ModeCreate).
func (m *Mapper) DecodeProfile(body []byte, mode Mode, existing *entity.Profile) (*entity.Profile, apierror.ErrorResponse) {
	var profile entity.Profile
	if existing != nil {
		profile = *existing
	}

	if mode == ModePartial {
		var req contract.PatchProfileRequest
		if apierr := m.decode(body, &req); apierr != nil {
			return nil, apierr
		}

		if req.Bio != nil {
			profile.Bio = *req.Bio
		}
		if req.Preferences != nil {
			profile.Preferences = *req.Preferences
		}
		return &profile, nil
	}

	var req contract.ProfileRequest
	if apierr := m.decode(body, &req); apierr != nil {
		return nil, apierr
	}

	profile.Bio = req.Bio
	profile.Preferences = req.Preferences
	return &profile, nil
}

func ToProfileResponse(profile *entity.Profile) *contract.ProfileResponse {
	return &contract.ProfileResponse{
		ID:          profile.ID,
		Owner:       profile.OwnerID,
		Bio:         profile.Bio,
		Preferences: profile.Preferences,
	}
}
