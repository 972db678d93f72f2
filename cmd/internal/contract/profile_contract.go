package contract

type ProfileResponse struct {
	ID          int64  `json:"id"`
	Owner       int64  `json:"owner"`
	Bio         string `json:"bio"`
	Preferences string `json:"preferences"`
}

type UserProfileResponse struct {
	Bio         string `json:"bio"`
	Preferences string `json:"preferences"`
}

type ProfileRequest struct {
	Bio         string `json:"bio" validate:"max=20000"`
	Preferences string `json:"preferences" validate:"max=20000"`
}

type PatchProfileRequest struct {
	Bio         *string `json:"bio" validate:"omitempty,max=20000"`
	Preferences *string `json:"preferences" validate:"omitempty,max=20000"`
}
