package representation

import (
	"blogapi/cmd/internal/contract"
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/utils"

	"github.com/samber/lo"
)

// ToUserResponse expects 'user' loaded with its profile and posts.
func ToUserResponse(user *entity.User) *contract.UserResponse {
	resp := &contract.UserResponse{
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Email:      user.Email,
		DateJoined: utils.FormatEpoch(user.DateJoined),
		Posts: lo.Map(user.Posts, func(p *entity.Post, _ int) *contract.UserPostResponse {
			return ToUserPostResponse(p)
		}),
	}

	if user.Profile != nil {
		resp.Profile = &contract.UserProfileResponse{
			Bio:         user.Profile.Bio,
			Preferences: user.Profile.Preferences,
		}
	}
	return resp
}
